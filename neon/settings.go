// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package neon

import (
	"time"

	"github.com/neongraph/neongraph/camera"
	"github.com/neongraph/neongraph/codegraph"
	"github.com/neongraph/neongraph/interact"
	"github.com/neongraph/neongraph/scene"
)

// Settings are the tunable parameters of a [Viewer].
type Settings struct {

	// CameraSpeed is the fraction of the remaining distance the camera
	// covers per frame in guided mode.
	CameraSpeed float32 `default:"0.05" min:"0.001" max:"1"`

	// ScaleEase is the fraction of the remaining scale change per frame
	// when a node expands or collapses.
	ScaleEase float32 `default:"0.1" min:"0.001" max:"1"`

	// LinkProbability is the chance of a cosmetic link from each node
	// to the node declared just before it.
	LinkProbability float32 `default:"0.4" min:"0" max:"1"`

	// ScrollDelay is the scroll debounce window in milliseconds.
	ScrollDelay int `default:"30"`

	// Seed makes graph building and particles reproducible when non-zero.
	Seed int64
}

// Defaults sets the default settings.
func (s *Settings) Defaults() {
	s.CameraSpeed = camera.DefaultSpeed
	s.ScaleEase = scene.DefaultScaleEase
	s.LinkProbability = codegraph.DefaultLinkProbability
	s.ScrollDelay = int(interact.DefaultScrollDelay / time.Millisecond)
}

// ScrollDuration returns [Settings.ScrollDelay] as a duration.
func (s *Settings) ScrollDuration() time.Duration {
	return time.Duration(s.ScrollDelay) * time.Millisecond
}

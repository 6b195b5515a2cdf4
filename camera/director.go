// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package camera moves a scene camera, either easing it toward a focus
// target (guided mode) or following user orbit input (free roam mode).
package camera

//go:generate core generate

import (
	"cogentcore.org/core/math32"
	"github.com/neongraph/neongraph/tick"
)

// Modes are the camera control modes.
type Modes int32 //enums:enum

const (
	// Guided eases the camera toward the focus target every frame.
	Guided Modes = iota

	// FreeRoam gives the camera to direct user orbit, pan and zoom.
	FreeRoam
)

// Defaults for a new [Director].
var (
	// DefaultSpeed is the fraction of the remaining distance covered per frame.
	DefaultSpeed float32 = 0.05

	// DefaultOffset is the camera offset from a focused position,
	// giving an elevated angled view.
	DefaultOffset = math32.Vec3(6, 6, 12)

	// StartPos is the initial camera position.
	StartPos = math32.Vec3(0, 20, 40)
)

// Director holds the desired and actual camera transforms.
type Director struct {

	// Mode is the current control mode.
	Mode Modes

	// Speed is the guided mode easing fraction per frame.
	Speed float32

	// Offset is added to a focus position to get the camera target position.
	Offset math32.Vector3

	// Target is the desired camera position.
	Target math32.Vector3

	// TargetLookAt is the desired look-at point.
	TargetLookAt math32.Vector3

	// Pos is the live camera position.
	Pos math32.Vector3

	// LookAt is the live look-at point.
	LookAt math32.Vector3

	// Up is the camera up direction.
	Up math32.Vector3

	// FOV is the vertical field of view in degrees.
	FOV float32

	// Aspect is the viewport width over height.
	Aspect float32

	// Orbit drives the camera in free roam mode.
	Orbit Orbit
}

// NewDirector returns a new guided [Director] at the start position
// looking at the origin.
func NewDirector() *Director {
	d := &Director{
		Speed:  DefaultSpeed,
		Offset: DefaultOffset,
		Target: StartPos,
		Pos:    StartPos,
		Up:     math32.Vec3(0, 1, 0),
		FOV:    60,
		Aspect: 1,
	}
	d.Orbit.Defaults()
	return d
}

// Aim sets the look-at target to the given point and the position
// target to that point plus [Director.Offset].
func (d *Director) Aim(p math32.Vector3) {
	d.TargetLookAt = p
	d.Target = p.Add(d.Offset)
}

// SetMode switches the control mode. Entering free roam starts orbiting
// around the current look-at point from the current position.
func (d *Director) SetMode(m Modes) {
	if m == d.Mode {
		return
	}
	d.Mode = m
	if m == FreeRoam {
		d.Orbit.Reset(d.Pos, d.LookAt)
	}
}

// Step advances the camera by the given number of reference frames.
// In guided mode the position eases toward the target and the look-at
// snaps to its target. In free roam the orbit controls drive both.
func (d *Director) Step(frames float32) {
	if d.Mode == FreeRoam {
		d.Pos, d.LookAt = d.Orbit.Update(frames, d.Up)
		return
	}
	d.Pos = tick.ApproachVector(d.Pos, d.Target, d.Speed, frames)
	d.LookAt = d.TargetLookAt
}

// Resize updates the aspect ratio for a viewport of the given pixel size.
func (d *Director) Resize(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	d.Aspect = float32(width) / float32(height)
}

// Forward returns the unit view direction.
func (d *Director) Forward() math32.Vector3 {
	return d.LookAt.Sub(d.Pos).Normal()
}

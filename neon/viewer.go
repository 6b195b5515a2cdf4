// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package neon ties the graph builder, scene synchronizer, camera director
// and interaction layer together into a [Viewer], the single owner of all
// visualization state. A host drives it by forwarding input events and
// calling [Viewer.Tick] once per frame.
package neon

import (
	"image"
	"log/slog"
	"time"

	"cogentcore.org/lab/base/randx"
	"github.com/neongraph/neongraph/camera"
	"github.com/neongraph/neongraph/codegraph"
	"github.com/neongraph/neongraph/interact"
	"github.com/neongraph/neongraph/scene"
	"github.com/neongraph/neongraph/tick"
)

// Viewer owns the scene state and everything that changes it.
// It is not safe for concurrent use: all calls must come from the frame loop
// or from event handlers running on the same thread.
type Viewer struct {

	// Settings are the parameters the viewer was made with.
	Settings Settings

	// State is the visual state of the current graph.
	State *scene.State

	// Builder turns text into graph nodes.
	Builder *codegraph.Builder

	// Sync materializes nodes into the backend.
	Sync *scene.Synchronizer

	// Backend owns the visual objects.
	Backend scene.Backend

	// Camera is the camera director.
	Camera *camera.Director

	// Pointer is the last pointer position over the viewport.
	Pointer interact.Pointer

	// Chrome are the viewport areas covered by panels and buttons.
	// The host updates them as its layout changes; pointers over them
	// neither hover nor click nodes.
	Chrome interact.Zones

	// Size is the viewport size in pixels.
	Size image.Point

	// Text is the text of the current graph.
	Text string

	// OnChange is called after the graph, focus or mode changes.
	OnChange func()

	hovered int
	tooltip interact.Tooltip
	scroll  interact.Debouncer
	clock   time.Duration
}

// NewViewer returns a new [Viewer] rendering into the given backend.
// It starts with an empty graph holding only the root node.
func NewViewer(be scene.Backend, st Settings) *Viewer {
	v := &Viewer{Settings: st, Backend: be, State: scene.NewState(), hovered: -1}
	if st.Seed != 0 {
		v.Builder = codegraph.NewSeededBuilder(st.Seed)
		v.Sync = &scene.Synchronizer{Backend: be, Rand: randx.NewSysRand(st.Seed + 1)}
	} else {
		v.Builder = codegraph.NewBuilder()
		v.Sync = scene.NewSynchronizer(be)
	}
	v.Builder.LinkProbability = st.LinkProbability
	v.Sync.Focus = v.Focus
	v.Camera = camera.NewDirector()
	v.Camera.Speed = st.CameraSpeed
	v.scroll.Delay = st.ScrollDuration()
	v.Generate("")
	return v
}

// Generate rebuilds the whole scene from the given text and focuses the root.
func (v *Viewer) Generate(text string) {
	v.Text = text
	nodes := v.Builder.Build(text)
	v.hovered = -1
	v.tooltip = interact.Tooltip{}
	v.Sync.Rebuild(v.State, nodes)
	slog.Info("generated graph", "nodes", len(v.State.Nodes), "edges", len(v.State.Edges))
	v.changed()
}

// Clear rebuilds the scene with just the root node.
func (v *Viewer) Clear() {
	v.Generate("")
}

// Focus aims the camera at the node with the given index and toggles its
// expanded state. Invalid indexes are ignored.
func (v *Viewer) Focus(index int) {
	st := v.State
	if !st.ValidIndex(index) {
		return
	}
	st.Focused = index
	n := st.Nodes[index]
	v.Camera.Aim(n.Pos)
	n.Expanded = !n.Expanded
	v.changed()
}

// Focused returns the focused node index, or -1.
func (v *Viewer) Focused() int {
	return v.State.Focused
}

// FreeRoam returns whether free roam mode is on.
func (v *Viewer) FreeRoam() bool {
	return v.State.FreeRoam
}

// SetFreeRoam turns free roam mode on or off. Turning it off focuses the
// last focused node again, or the root if there is none.
func (v *Viewer) SetFreeRoam(on bool) {
	st := v.State
	if st.FreeRoam == on {
		return
	}
	st.FreeRoam = on
	if on {
		v.Camera.SetMode(camera.FreeRoam)
		v.hovered = -1
		v.tooltip = interact.Tooltip{}
		v.scroll.Cancel()
		v.changed()
		return
	}
	v.Camera.SetMode(camera.Guided)
	idx := st.Focused
	if idx < 0 {
		idx = 0
	}
	v.Focus(idx)
}

// ToggleFreeRoam switches between free roam and guided mode.
func (v *Viewer) ToggleFreeRoam() {
	v.SetFreeRoam(!v.State.FreeRoam)
}

// Resize sets the viewport size.
func (v *Viewer) Resize(size image.Point) {
	v.Size = size
	v.Camera.Resize(size.X, size.Y)
}

// PointerMove records the pointer position in viewport pixels.
func (v *Viewer) PointerMove(pos image.Point) {
	v.Pointer.Move(pos, v.Size)
}

// Click focuses the node under the given position. Clicks inside chrome
// or in free roam mode are ignored. It returns whether a node was focused.
func (v *Viewer) Click(pos image.Point, inChrome bool) bool {
	if inChrome || v.State.FreeRoam || v.Chrome.Contains(pos) {
		return false
	}
	v.PointerMove(pos)
	idx, ok := v.pick()
	if !ok {
		return false
	}
	v.Focus(idx)
	return true
}

// Scroll schedules a move of the focus to the next node for a positive
// delta, or the previous one for a negative delta, after the debounce
// window. Scrolling is ignored in free roam mode.
func (v *Viewer) Scroll(dy float32) {
	if v.State.FreeRoam || dy == 0 {
		return
	}
	step := float32(1)
	if dy < 0 {
		step = -1
	}
	v.scroll.Trigger(v.clock, step)
}

// Hovered returns the index of the hovered node, or -1.
func (v *Viewer) Hovered() int {
	return v.hovered
}

// Tooltip returns the current hover tooltip.
func (v *Viewer) Tooltip() interact.Tooltip {
	return v.tooltip
}

// Tick advances everything by one frame of the given duration: pending
// input, picking and cosmetic animation, and then the camera.
func (v *Viewer) Tick(dt time.Duration) {
	v.clock += dt
	frames := tick.Frames(dt)
	st := v.State

	if !st.FreeRoam {
		if step, ok := v.scroll.Poll(v.clock); ok {
			next := st.Focused + int(step)
			if st.ValidIndex(next) {
				v.Focus(next)
			}
		}
	}

	v.hover(frames)
	st.Animate(frames, v.Settings.ScaleEase)
	st.Push(v.Backend)
	v.Camera.Step(frames)
}

// hover updates the hovered node and tooltip, and spins the hovered node.
func (v *Viewer) hover(frames float32) {
	v.hovered = -1
	v.tooltip = interact.Tooltip{}
	if v.State.FreeRoam || !v.Pointer.Valid || v.Chrome.Contains(v.Pointer.Pos) {
		return
	}
	idx, ok := v.pick()
	if !ok {
		return
	}
	n := v.State.Nodes[idx]
	v.hovered = idx
	v.tooltip = interact.NewTooltip(n.Node, v.Pointer.Pos)
	n.Hover(frames)
}

// pick returns the index of the node under the pointer.
func (v *Viewer) pick() (int, bool) {
	if !v.Pointer.Valid {
		return -1, false
	}
	targets := make([]interact.Target, len(v.State.Nodes))
	for i, n := range v.State.Nodes {
		targets[i] = interact.Target{Index: i, Center: n.Pos, Radius: n.Radius()}
	}
	return interact.Pick(interact.CameraRay(v.Camera, v.Pointer.NDC), targets)
}

func (v *Viewer) changed() {
	if v.OnChange != nil {
		v.OnChange()
	}
}

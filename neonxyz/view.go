// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package neonxyz

//go:generate core generate

import (
	"fmt"
	"image"
	"time"

	"cogentcore.org/core/core"
	"cogentcore.org/core/events"
	"cogentcore.org/core/events/key"
	"cogentcore.org/core/xyz/xyzcore"
	"github.com/neongraph/neongraph/camera"
	"github.com/neongraph/neongraph/highlight"
	"github.com/neongraph/neongraph/interact"
	"github.com/neongraph/neongraph/neon"
)

// Input scaling for free roam.
var (
	// RotateSpeed is the orbit rotation in radians per dragged pixel.
	RotateSpeed float32 = 0.005

	// PanSpeed is the pan per dragged pixel, relative to the pivot distance.
	PanSpeed float32 = 0.001

	// ZoomSpeed is the zoom per scrolled pixel.
	ZoomSpeed float32 = 0.002
)

// View is a 3D scene widget driven by a [neon.Viewer]. It replaces the
// standard scene navigation with guided focus and free roam orbiting,
// and advances the viewer on every paint tick.
type View struct {
	xyzcore.Scene

	// Viewer is the viewer that owns the graph state.
	Viewer *neon.Viewer `set:"-"`

	// Backend renders the viewer state into the xyz scene.
	Backend *Backend `set:"-"`

	// ChromeWidgets are panels and buttons that can cover part of the
	// scene. Clicks and hovers over them do not reach the graph.
	ChromeWidgets []core.Widget `set:"-"`
}

func (vw *View) Init() {
	vw.Scene.Init()
	vw.XYZ.NoNav = true
	vw.SelectionMode = xyzcore.NotSelectable
	vw.Backend = NewBackend(vw.XYZ)

	vw.On(events.MouseMove, func(e events.Event) {
		if vw.Viewer != nil {
			vw.Viewer.PointerMove(vw.local(e))
		}
	})
	vw.On(events.Click, func(e events.Event) {
		if vw.Viewer == nil {
			return
		}
		e.SetHandled()
		pos := vw.local(e)
		vw.Viewer.Click(pos, vw.chrome().Contains(pos))
	})
	vw.On(events.Scroll, func(e events.Event) {
		if vw.Viewer == nil {
			return
		}
		e.SetHandled()
		dy := e.(*events.MouseScroll).Delta.Y
		if vw.Viewer.FreeRoam() {
			vw.Viewer.Camera.Orbit.Zoom(1 + dy*ZoomSpeed)
			return
		}
		vw.Viewer.Scroll(dy)
	})
	vw.On(events.SlideMove, func(e events.Event) {
		if vw.Viewer == nil {
			return
		}
		e.SetHandled()
		if !vw.Viewer.FreeRoam() {
			return
		}
		d := e.PrevDelta()
		cam := vw.Viewer.Camera
		if e.HasAnyModifier(key.Shift, key.Meta, key.Control) {
			cam.Orbit.Pan(float32(d.X)*PanSpeed, float32(d.Y)*PanSpeed, cam.Up)
			return
		}
		cam.Orbit.Rotate(float32(d.X)*RotateSpeed, float32(d.Y)*RotateSpeed)
	})
}

func (vw *View) OnAdd() {
	vw.Scene.OnAdd()
	vw.Animate(func(a *core.Animation) {
		vw.step(a)
	})
}

// SetViewer attaches the viewer, which must render into [View.Backend].
func (vw *View) SetViewer(v *neon.Viewer) *View {
	vw.Viewer = v
	return vw
}

// local returns the event position relative to the scene content.
func (vw *View) local(e events.Event) image.Point {
	return e.Pos().Sub(vw.Geom.ContentBBox.Min)
}

// step advances the viewer by one paint tick and copies the camera into
// the xyz scene.
func (vw *View) step(a *core.Animation) {
	v := vw.Viewer
	if v == nil {
		return
	}
	if sz := vw.Geom.ContentBBox.Size(); sz != v.Size && sz.X > 0 && sz.Y > 0 {
		v.Resize(sz)
	}
	v.Chrome = vw.chrome()
	prev := v.Hovered()
	v.Tick(frameDuration(a))
	syncCamera(vw, v.Camera)
	vw.XYZ.SetNeedsUpdate()
	vw.NeedsRender()
	if v.Hovered() != prev {
		vw.SendChange()
	}
}

// frameDuration returns the time since the last paint tick.
func frameDuration(a *core.Animation) time.Duration {
	return time.Duration(a.Dt * float32(time.Millisecond))
}

// chrome returns the areas of the scene covered by visible chrome widgets.
func (vw *View) chrome() interact.Zones {
	var boxes []image.Rectangle
	for _, w := range vw.ChromeWidgets {
		if wb := w.AsWidget(); wb.IsVisible() {
			boxes = append(boxes, wb.Geom.TotalBBox)
		}
	}
	return ChromeZones(vw.Geom.ContentBBox, boxes...)
}

// ChromeZones returns the parts of the boxes that overlap the content box,
// relative to the content box.
func ChromeZones(content image.Rectangle, boxes ...image.Rectangle) interact.Zones {
	var zones interact.Zones
	for _, b := range boxes {
		r := b.Intersect(content)
		if r.Empty() {
			continue
		}
		zones = append(zones, r.Sub(content.Min))
	}
	return zones
}

func syncCamera(vw *View, d *camera.Director) {
	cam := &vw.XYZ.Camera
	cam.FOV = d.FOV
	cam.Pose.Pos = d.Pos
	cam.LookAt(d.LookAt, d.Up)
}

// WidgetTooltip shows the hovered node next to the pointer.
func (vw *View) WidgetTooltip(pos image.Point) (string, image.Point) {
	if vw.Viewer == nil {
		return vw.Scene.WidgetTooltip(pos)
	}
	tt := vw.Viewer.Tooltip()
	if !tt.Visible {
		return "", pos
	}
	return TooltipText(tt), vw.Geom.ContentBBox.Min.Add(tt.Pos)
}

// TooltipText formats the hover information for a node.
func TooltipText(tt interact.Tooltip) string {
	return fmt.Sprintf("%s  [%s]\n%s\n%s", tt.Name, highlight.Badge(tt.Type), tt.Payload, tt.Snippet)
}

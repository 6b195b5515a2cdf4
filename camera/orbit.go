// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package camera

import (
	"cogentcore.org/core/math32"
	"github.com/neongraph/neongraph/tick"
)

// Orbit is an inertial orbit controller: user input accumulates rotation
// and pan deltas that are applied a fraction at a time and decay, so the
// camera keeps gliding briefly after the input stops.
type Orbit struct {

	// Pivot is the point orbited around, which is also the look-at point.
	Pivot math32.Vector3

	// Radius is the distance from the pivot.
	Radius float32

	// Theta is the azimuth around the up axis, in radians.
	Theta float32

	// Phi is the polar angle from the up axis, in radians.
	Phi float32

	// Damping is the fraction of the pending deltas applied per frame.
	Damping float32

	// MinRadius and MaxRadius bound zooming.
	MinRadius, MaxRadius float32

	dTheta, dPhi float32
	dPan         math32.Vector3
}

// Defaults sets the default damping and zoom range.
func (o *Orbit) Defaults() {
	o.Damping = 0.05
	o.MinRadius = 1
	o.MaxRadius = 500
}

// Reset starts orbiting around the given look-at point from the given position.
func (o *Orbit) Reset(pos, lookAt math32.Vector3) {
	o.Pivot = lookAt
	off := pos.Sub(lookAt)
	o.Radius = max(off.Length(), o.MinRadius)
	o.Theta = math32.Atan2(off.X, off.Z)
	o.Phi = math32.Acos(clamp(off.Y/o.Radius, -1, 1))
	o.dTheta, o.dPhi = 0, 0
	o.dPan = math32.Vector3{}
}

// Rotate adds a rotation in radians: dx around the up axis, dy toward it.
func (o *Orbit) Rotate(dx, dy float32) {
	o.dTheta -= dx
	o.dPhi -= dy
}

// Pan adds a pan in view units along the camera right and up directions,
// scaled by the distance from the pivot.
func (o *Orbit) Pan(dx, dy float32, up math32.Vector3) {
	pos := o.position()
	fwd := o.Pivot.Sub(pos).Normal()
	right := fwd.Cross(up).Normal()
	camUp := right.Cross(fwd).Normal()
	o.dPan = o.dPan.Add(right.MulScalar(-dx * o.Radius)).Add(camUp.MulScalar(dy * o.Radius))
}

// Zoom scales the distance to the pivot: values below 1 move closer.
func (o *Orbit) Zoom(scale float32) {
	if scale <= 0 {
		return
	}
	o.Radius = clamp(o.Radius*scale, o.MinRadius, o.MaxRadius)
}

// Update applies the damped share of the pending deltas for the given
// frames and returns the new camera position and look-at point.
func (o *Orbit) Update(frames float32, up math32.Vector3) (pos, lookAt math32.Vector3) {
	f := tick.Factor(o.Damping, frames)
	o.Theta += o.dTheta * f
	o.Phi = clamp(o.Phi+o.dPhi*f, 0.01, math32.Pi-0.01)
	o.Pivot = o.Pivot.Add(o.dPan.MulScalar(f))
	o.dTheta *= 1 - f
	o.dPhi *= 1 - f
	o.dPan = o.dPan.MulScalar(1 - f)
	return o.position(), o.Pivot
}

// Moving returns whether there are pending deltas still being applied.
func (o *Orbit) Moving() bool {
	const eps = 1e-5
	return math32.Abs(o.dTheta) > eps || math32.Abs(o.dPhi) > eps || o.dPan.Length() > eps
}

func (o *Orbit) position() math32.Vector3 {
	sp := math32.Sin(o.Phi)
	off := math32.Vec3(o.Radius*sp*math32.Sin(o.Theta), o.Radius*math32.Cos(o.Phi), o.Radius*sp*math32.Cos(o.Theta))
	return o.Pivot.Add(off)
}

func clamp(v, lo, hi float32) float32 {
	return min(max(v, lo), hi)
}

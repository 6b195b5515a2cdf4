// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package interact maps pointer input onto scene nodes: pointer tracking,
// ray picking, hover tooltips, chrome exclusion zones and debounced scrolling.
package interact

import (
	"cogentcore.org/core/math32"
	"github.com/neongraph/neongraph/camera"
)

// Ray is a half line used for picking.
type Ray struct {
	Origin math32.Vector3

	// Dir is a unit vector.
	Dir math32.Vector3
}

// CameraRay returns the ray from the camera through the given normalized
// device coordinates, where (-1,-1) is the bottom left of the viewport
// and (1,1) the top right.
func CameraRay(d *camera.Director, ndc math32.Vector2) Ray {
	fwd := d.Forward()
	right := fwd.Cross(d.Up).Normal()
	up := right.Cross(fwd).Normal()
	th := math32.Tan(math32.DegToRad(d.FOV) / 2)
	dir := fwd.Add(right.MulScalar(ndc.X * th * d.Aspect)).Add(up.MulScalar(ndc.Y * th))
	return Ray{Origin: d.Pos, Dir: dir.Normal()}
}

// IntersectSphere returns the distance along the ray to the nearest
// intersection with the sphere in front of the origin, and false on a miss.
func (r Ray) IntersectSphere(center math32.Vector3, radius float32) (float32, bool) {
	oc := r.Origin.Sub(center)
	b := oc.Dot(r.Dir)
	c := oc.Dot(oc) - radius*radius
	disc := b*b - c
	if disc < 0 {
		return 0, false
	}
	sq := math32.Sqrt(disc)
	t := -b - sq
	if t < 0 {
		t = -b + sq
	}
	if t < 0 {
		return 0, false
	}
	return t, true
}

// Target is a pickable bounding sphere.
type Target struct {

	// Index identifies the target to the caller.
	Index int

	Center math32.Vector3
	Radius float32
}

// Pick returns the index of the nearest target hit by the ray,
// and false if nothing is hit.
func Pick(r Ray, targets []Target) (int, bool) {
	best := -1
	var bestT float32
	for _, tg := range targets {
		t, ok := r.IntersectSphere(tg.Center, tg.Radius)
		if !ok {
			continue
		}
		if best < 0 || t < bestT {
			best = tg.Index
			bestT = t
		}
	}
	return best, best >= 0
}

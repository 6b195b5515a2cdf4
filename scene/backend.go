// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene

import (
	"image/color"

	"cogentcore.org/core/math32"
)

// Transform is the pose of a visual object.
type Transform struct {

	// Pos is the world position.
	Pos math32.Vector3

	// Scale is the uniform scale.
	Scale float32

	// Rot is the euler rotation in radians.
	Rot math32.Vector3
}

// Backend creates and releases the visual objects of a scene.
// All methods are called from the single frame loop.
type Backend interface {

	// NewShape creates a node shape.
	NewShape(shape Shapes, clr color.RGBA) Handle

	// NewLine creates a line segment between two points.
	NewLine(start, end math32.Vector3, clr color.RGBA) Handle

	// NewMarker creates a particle marker.
	NewMarker(clr color.RGBA) Handle

	// SetTransform updates the pose of a shape or marker.
	SetTransform(h Handle, tr Transform)

	// Release destroys the object for the handle.
	Release(h Handle)
}

// ObjectKinds are the kinds of objects a [CountingBackend] tracks.
type ObjectKinds int32

const (
	// ShapeObject is a node shape.
	ShapeObject ObjectKinds = iota

	// LineObject is an edge line.
	LineObject

	// MarkerObject is an edge particle.
	MarkerObject
)

// Object is a visual object recorded by a [CountingBackend].
type Object struct {
	Kind       ObjectKinds
	Shape      Shapes
	Color      color.RGBA
	Start, End math32.Vector3
	Transform  Transform
}

// CountingBackend is an in-memory [Backend] that records objects without
// drawing them. It is used for headless runs and tests.
type CountingBackend struct {

	// Objects are the live objects by handle.
	Objects Arena[*Object]

	// Released counts all releases over the life of the backend.
	Released int
}

// NewShape records a shape object.
func (cb *CountingBackend) NewShape(shape Shapes, clr color.RGBA) Handle {
	return cb.Objects.Add(&Object{Kind: ShapeObject, Shape: shape, Color: clr})
}

// NewLine records a line object with its end points.
func (cb *CountingBackend) NewLine(start, end math32.Vector3, clr color.RGBA) Handle {
	return cb.Objects.Add(&Object{Kind: LineObject, Color: clr, Start: start, End: end})
}

// NewMarker records a marker object.
func (cb *CountingBackend) NewMarker(clr color.RGBA) Handle {
	return cb.Objects.Add(&Object{Kind: MarkerObject, Color: clr})
}

// SetTransform stores the transform on a live object.
func (cb *CountingBackend) SetTransform(h Handle, tr Transform) {
	if ob, ok := cb.Objects.Get(h); ok {
		ob.Transform = tr
	}
}

// Release drops a live object and counts the release.
// Stale handles are ignored.
func (cb *CountingBackend) Release(h Handle) {
	if _, ok := cb.Objects.Release(h); ok {
		cb.Released++
	}
}

// Count returns the number of live objects of the given kind.
func (cb *CountingBackend) Count(kind ObjectKinds) int {
	n := 0
	for _, ob := range cb.Objects.items {
		if ob.Kind == kind {
			n++
		}
	}
	return n
}

// Object returns the live object for the handle, or nil.
func (cb *CountingBackend) Object(h Handle) *Object {
	ob, _ := cb.Objects.Get(h)
	return ob
}

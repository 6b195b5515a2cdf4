// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package interact

import (
	"image"

	"cogentcore.org/core/math32"
)

// Pointer is the last known pointer position.
type Pointer struct {

	// Pos is the position in viewport pixels, origin top left.
	Pos image.Point

	// NDC is the position in normalized device coordinates.
	NDC math32.Vector2

	// Valid is set once the pointer has moved over the viewport.
	Valid bool
}

// Move records a pointer position within a viewport of the given size.
func (p *Pointer) Move(pos image.Point, size image.Point) {
	p.Pos = pos
	p.Valid = size.X > 0 && size.Y > 0
	if !p.Valid {
		return
	}
	p.NDC.X = float32(pos.X)/float32(size.X)*2 - 1
	p.NDC.Y = -float32(pos.Y)/float32(size.Y)*2 + 1
}

// Zones are screen areas, such as panels and buttons, where clicks do not
// reach the scene.
type Zones []image.Rectangle

// Contains returns whether any zone contains the point.
func (z Zones) Contains(pt image.Point) bool {
	for _, r := range z {
		if pt.In(r) {
			return true
		}
	}
	return false
}

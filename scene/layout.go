// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene

import "cogentcore.org/core/math32"

// Spiral layout constants.
const (
	SpiralRadius     = 6
	SpiralRadiusStep = 0.4
	SpiralAngleStep  = 1.0
	SpiralDrop       = 2
)

// Position returns the layout position of the node at the given index.
// The root is at the origin; every other node sits on an expanding spiral
// that descends by [SpiralDrop] per node. It depends on the index only.
func Position(index int) math32.Vector3 {
	if index <= 0 {
		return math32.Vector3{}
	}
	i := float32(index)
	r := SpiralRadius + i*SpiralRadiusStep
	ang := (i - 1) * SpiralAngleStep
	return math32.Vec3(math32.Cos(ang)*r, -SpiralDrop*i, math32.Sin(ang)*r)
}

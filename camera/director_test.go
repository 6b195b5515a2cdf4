// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package camera

import (
	"testing"

	"cogentcore.org/core/math32"
	"github.com/stretchr/testify/assert"
)

func TestAim(t *testing.T) {
	d := NewDirector()
	p := math32.Vec3(1, -2, 3)
	d.Aim(p)
	assert.Equal(t, p, d.TargetLookAt)
	assert.Equal(t, math32.Vec3(7, 4, 15), d.Target)
}

func TestGuidedStep(t *testing.T) {
	d := NewDirector()
	d.Aim(math32.Vec3(0, 0, 0))
	dist := d.Pos.DistanceTo(d.Target)
	for range 50 {
		d.Step(1)
		nd := d.Pos.DistanceTo(d.Target)
		assert.Less(t, nd, dist)
		assert.Greater(t, nd, float32(0))
		dist = nd
		assert.Equal(t, d.TargetLookAt, d.LookAt)
	}

	d = NewDirector()
	d.Aim(math32.Vec3(0, 0, 0))
	start := d.Pos.DistanceTo(d.Target)
	d.Step(1)
	assert.InDelta(t, start*(1-DefaultSpeed), d.Pos.DistanceTo(d.Target), 1e-3)
}

func TestFreeRoamSuspendsGuided(t *testing.T) {
	d := NewDirector()
	d.Aim(math32.Vec3(5, 0, 0))
	for range 10 {
		d.Step(1)
	}
	d.SetMode(FreeRoam)
	pos, look := d.Pos, d.LookAt
	d.Aim(math32.Vec3(-50, 0, 0))
	d.Step(1)
	assert.InDelta(t, 0, d.Pos.DistanceTo(pos), 1e-3)
	assert.InDelta(t, 0, d.LookAt.DistanceTo(look), 1e-3)

	d.Orbit.Rotate(0.5, 0)
	for range 5 {
		d.Step(1)
	}
	assert.Greater(t, d.Pos.DistanceTo(pos), float32(0.01))
	// orbiting keeps the distance to the pivot
	assert.InDelta(t, pos.DistanceTo(look), d.Pos.DistanceTo(d.LookAt), 1e-2)

	d.SetMode(Guided)
	d.Step(1)
	assert.Equal(t, d.TargetLookAt, d.LookAt)
}

func TestResize(t *testing.T) {
	d := NewDirector()
	d.Resize(800, 400)
	assert.Equal(t, float32(2), d.Aspect)
	d.Resize(0, 10)
	assert.Equal(t, float32(2), d.Aspect)
}

func TestModesString(t *testing.T) {
	assert.Equal(t, "FreeRoam", FreeRoam.String())
}

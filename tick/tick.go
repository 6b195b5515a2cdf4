// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package tick converts elapsed frame time into the per-frame units that
// the animation constants are expressed in, so that animation stays the
// same speed regardless of the actual display refresh rate.
package tick

import (
	"time"

	"cogentcore.org/core/math32"
)

// Rate is the reference frame rate that per-frame constants assume.
const Rate = 60

// MaxFrames bounds the frames consumed by one step, so that a long stall
// (for example a hidden window) does not make everything jump.
const MaxFrames = 10

// Frames returns the number of reference frames covered by the given delta.
func Frames(dt time.Duration) float32 {
	f := float32(dt.Seconds()) * Rate
	if f < 0 {
		return 0
	}
	return min(f, MaxFrames)
}

// Factor returns the fraction of the remaining distance covered after the
// given number of frames when each frame covers the given fraction.
// For one frame it is exactly the per-frame fraction.
func Factor(perFrame, frames float32) float32 {
	if frames == 1 {
		return perFrame
	}
	return 1 - math32.Pow(1-perFrame, frames)
}

// Approach moves cur toward target by the per-frame fraction over the given frames.
func Approach(cur, target, perFrame, frames float32) float32 {
	return cur + (target-cur)*Factor(perFrame, frames)
}

// ApproachVector is [Approach] for vectors.
func ApproachVector(cur, target math32.Vector3, perFrame, frames float32) math32.Vector3 {
	return cur.Lerp(target, Factor(perFrame, frames))
}

// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene

import "github.com/neongraph/neongraph/tick"

// Per-frame animation constants.
const (
	// ExpandedScale is the scale of an expanded node.
	ExpandedScale = 1.5

	// DefaultScaleEase is the fraction of the remaining scale change per frame.
	DefaultScaleEase = 0.1

	// SpinStep is the ambient z rotation per frame, in radians.
	SpinStep = 0.01

	// HoverSpin is the extra x and y rotation per frame of a hovered node.
	HoverSpin = 0.05
)

// Advance moves the particle along its edge by the given frames,
// restarting from the start when it passes the end.
func (p *Particle) Advance(frames float32) {
	p.Progress += p.Speed * frames
	if p.Progress >= 1 {
		p.Progress = 0
	}
}

// TargetScale returns the scale the node is easing toward.
func (n *Node) TargetScale() float32 {
	if n.Expanded {
		return ExpandedScale
	}
	return 1
}

// Animate eases the scale and applies the ambient spin.
func (n *Node) Animate(frames, ease float32) {
	n.Scale = tick.Approach(n.Scale, n.TargetScale(), ease, frames)
	n.Rot.Z += SpinStep * frames
}

// Hover applies the hover rotation.
func (n *Node) Hover(frames float32) {
	n.Rot.X += HoverSpin * frames
	n.Rot.Y += HoverSpin * frames
}

// Animate advances all particles and nodes by the given frames.
func (st *State) Animate(frames, ease float32) {
	for _, p := range st.Particles {
		p.Advance(frames)
	}
	for _, n := range st.Nodes {
		n.Animate(frames, ease)
	}
}

// Push sends the current transforms of all nodes and particles to the backend.
func (st *State) Push(be Backend) {
	for _, n := range st.Nodes {
		be.SetTransform(n.Handle, n.Transform())
	}
	for _, p := range st.Particles {
		be.SetTransform(p.Handle, Transform{Pos: p.Pos(), Scale: 1})
	}
}

// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package scene holds the visual state of a code graph and keeps it in sync
// with the visual objects of a rendering [Backend].
package scene

//go:generate core generate

import (
	"image/color"

	"cogentcore.org/core/math32"
	"github.com/neongraph/neongraph/codegraph"
)

// Node is a graph node together with its visual state.
type Node struct {
	*codegraph.Node

	// Handle is the shape owned by this node.
	Handle Handle

	// Shape is the primitive used to draw the node.
	Shape Shapes

	// Color is the node color.
	Color color.RGBA

	// Pos is the layout position.
	Pos math32.Vector3

	// Scale is the current uniform scale, eased toward 1 or [ExpandedScale].
	Scale float32

	// Rot is the current euler rotation in radians.
	Rot math32.Vector3

	// Expanded is toggled by focusing the node; it only affects Scale.
	Expanded bool
}

// Transform returns the current pose of the node.
func (n *Node) Transform() Transform {
	return Transform{Pos: n.Pos, Scale: n.Scale, Rot: n.Rot}
}

// Radius returns the radius of the bounding sphere at the current scale.
func (n *Node) Radius() float32 {
	return n.Shape.BoundingRadius() * n.Scale
}

// Edge is a dependency link with its line.
type Edge struct {
	codegraph.Edge

	// Handle is the line owned by this edge.
	Handle Handle

	// Particle travels along the edge.
	Particle *Particle
}

// Particle is a marker that travels along an edge from Start to End,
// restarting at Start when it reaches the end.
type Particle struct {

	// Progress is the position along the edge in [0,1).
	Progress float32

	// Speed is the progress per reference frame.
	Speed float32

	// Start is the dependency end of the edge.
	Start math32.Vector3

	// End is the dependent end of the edge.
	End math32.Vector3

	// Handle is the marker owned by this particle.
	Handle Handle
}

// Pos returns the current position of the particle.
func (p *Particle) Pos() math32.Vector3 {
	return p.Start.Lerp(p.End, p.Progress)
}

// State is the whole visual state of one graph.
type State struct {
	Nodes     []*Node
	Edges     []*Edge
	Particles []*Particle

	// Focused is the index of the focused node, or -1 for none.
	Focused int

	// FreeRoam is whether the camera is under direct user control.
	FreeRoam bool
}

// NewState returns a new empty State with nothing focused.
func NewState() *State {
	return &State{Focused: -1}
}

// ValidIndex returns whether i is an index into Nodes.
func (st *State) ValidIndex(i int) bool {
	return i >= 0 && i < len(st.Nodes)
}

// NodeByHandle returns the index of the node owning the shape handle, or -1.
func (st *State) NodeByHandle(h Handle) int {
	for i, n := range st.Nodes {
		if n.Handle == h {
			return i
		}
	}
	return -1
}

// GraphNodes returns the underlying graph nodes.
func (st *State) GraphNodes() []*codegraph.Node {
	gn := make([]*codegraph.Node, len(st.Nodes))
	for i, n := range st.Nodes {
		gn[i] = n.Node
	}
	return gn
}

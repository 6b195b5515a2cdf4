// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene

import (
	"log/slog"

	"cogentcore.org/lab/base/randx"
	"github.com/neongraph/neongraph/codegraph"
)

// Particle speed range, in progress per reference frame.
const (
	MinParticleSpeed   = 0.005
	ParticleSpeedRange = 0.01
)

// Synchronizer materializes graph nodes into a [State] and its [Backend].
// Every rebuild releases everything it owned before creating anything new;
// there is no incremental diffing.
type Synchronizer struct {

	// Backend creates the visual objects.
	Backend Backend

	// Rand is used for particle start positions and speeds.
	// If nil, the global source is used.
	Rand randx.Rand

	// Focus is called with index 0 after every rebuild.
	Focus func(index int)
}

// NewSynchronizer returns a new [Synchronizer] for the backend.
func NewSynchronizer(be Backend) *Synchronizer {
	return &Synchronizer{Backend: be, Rand: randx.NewGlobalRand()}
}

// Release releases every visual object owned by the state and empties it.
func (sy *Synchronizer) Release(st *State) {
	for _, n := range st.Nodes {
		sy.Backend.Release(n.Handle)
	}
	for _, e := range st.Edges {
		sy.Backend.Release(e.Handle)
	}
	for _, p := range st.Particles {
		sy.Backend.Release(p.Handle)
	}
	st.Nodes = nil
	st.Edges = nil
	st.Particles = nil
	st.Focused = -1
}

// Rebuild replaces the contents of the state with the given nodes:
// one shape per node, and one line and one particle for every dependency
// that resolves to an existing node. It then focuses node 0.
func (sy *Synchronizer) Rebuild(st *State, nodes []*codegraph.Node) {
	sy.Release(st)
	rnd := sy.Rand
	if rnd == nil {
		rnd = randx.NewGlobalRand()
	}

	for i, gn := range nodes {
		n := &Node{
			Node:  gn,
			Shape: ShapeFor(gn.Type),
			Color: ColorFor(gn.Type),
			Pos:   Position(i),
			Scale: 1,
		}
		n.Handle = sy.Backend.NewShape(n.Shape, n.Color)
		sy.Backend.SetTransform(n.Handle, n.Transform())
		st.Nodes = append(st.Nodes, n)
	}

	for _, n := range st.Nodes {
		for _, dep := range n.Dependencies {
			if !st.ValidIndex(dep) {
				continue
			}
			start := st.Nodes[dep].Pos
			end := n.Pos
			p := &Particle{
				Progress: rnd.Float32(),
				Speed:    MinParticleSpeed + rnd.Float32()*ParticleSpeedRange,
				Start:    start,
				End:      end,
			}
			p.Handle = sy.Backend.NewMarker(ParticleColor)
			sy.Backend.SetTransform(p.Handle, Transform{Pos: p.Pos(), Scale: 1})
			e := &Edge{
				Edge:     codegraph.Edge{From: n.ID, To: dep},
				Particle: p,
			}
			e.Handle = sy.Backend.NewLine(start, end, EdgeColor)
			st.Edges = append(st.Edges, e)
			st.Particles = append(st.Particles, p)
		}
	}
	slog.Debug("scene rebuilt", "nodes", len(st.Nodes), "edges", len(st.Edges))

	if sy.Focus != nil {
		sy.Focus(0)
	}
}

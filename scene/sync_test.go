// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene

import (
	"testing"

	"cogentcore.org/core/math32"
	"cogentcore.org/lab/base/randx"
	"github.com/neongraph/neongraph/codegraph"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const text = `class A {}
function b() {}
const c = 3;
let d = "four";`

func build(seed int64) []*codegraph.Node {
	return codegraph.NewSeededBuilder(seed).Build(text)
}

func TestRebuild(t *testing.T) {
	be := &CountingBackend{}
	sy := NewSynchronizer(be)
	focused := -1
	sy.Focus = func(i int) { focused = i }
	st := NewState()

	nodes := build(3)
	sy.Rebuild(st, nodes)

	require.Len(t, st.Nodes, len(nodes))
	edges := codegraph.Edges(nodes)
	assert.Len(t, st.Edges, len(edges))
	assert.Len(t, st.Particles, len(st.Edges))
	assert.Equal(t, len(nodes), be.Count(ShapeObject))
	assert.Equal(t, len(edges), be.Count(LineObject))
	assert.Equal(t, len(edges), be.Count(MarkerObject))
	assert.Equal(t, 0, focused)

	for i, n := range st.Nodes {
		assert.Equal(t, Position(i), n.Pos)
		assert.Equal(t, ShapeFor(n.Type), n.Shape)
		assert.Equal(t, n.Pos, be.Object(n.Handle).Transform.Pos)
	}
	assert.Equal(t, Torus, st.Nodes[0].Shape)
	assert.Equal(t, HexPrism, st.Nodes[1].Shape)
	assert.Equal(t, Cube, st.Nodes[2].Shape)
	assert.Equal(t, Sphere, st.Nodes[3].Shape)

	for i, e := range st.Edges {
		assert.Equal(t, edges[i], e.Edge)
		ln := be.Object(e.Handle)
		require.NotNil(t, ln)
		assert.Equal(t, st.Nodes[e.To].Pos, ln.Start)
		assert.Equal(t, st.Nodes[e.From].Pos, ln.End)
		p := e.Particle
		assert.GreaterOrEqual(t, p.Progress, float32(0))
		assert.Less(t, p.Progress, float32(1))
		assert.GreaterOrEqual(t, p.Speed, float32(MinParticleSpeed))
		assert.Less(t, p.Speed, float32(MinParticleSpeed+ParticleSpeedRange))
	}
}

func TestRebuildReleases(t *testing.T) {
	be := &CountingBackend{}
	sy := NewSynchronizer(be)
	st := NewState()

	sy.Rebuild(st, build(1))
	first := be.Objects.Len()
	require.Greater(t, first, 0)

	sy.Rebuild(st, build(1))
	assert.Equal(t, first, be.Objects.Len())
	assert.Equal(t, first, be.Released)

	sy.Rebuild(st, codegraph.NewBuilder().Build(""))
	assert.Equal(t, 1, be.Objects.Len())
	assert.Len(t, st.Nodes, 1)
	assert.Empty(t, st.Edges)
	assert.Empty(t, st.Particles)
}

func TestRebuildIdempotent(t *testing.T) {
	run := func() *State {
		sy := NewSynchronizer(&CountingBackend{})
		sy.Rand = randx.NewSysRand(9)
		st := NewState()
		sy.Rebuild(st, build(5))
		return st
	}
	a, b := run(), run()
	require.Equal(t, len(a.Nodes), len(b.Nodes))
	require.Equal(t, len(a.Edges), len(b.Edges))
	for i := range a.Nodes {
		assert.Equal(t, a.Nodes[i].Pos, b.Nodes[i].Pos)
	}
	for i := range a.Particles {
		assert.Equal(t, a.Particles[i].Speed, b.Particles[i].Speed)
	}
}

func TestRebuildSkipsUnresolved(t *testing.T) {
	be := &CountingBackend{}
	st := NewState()
	nodes := []*codegraph.Node{codegraph.Root(), {ID: 1, Type: codegraph.Variable, Dependencies: []int{0, 12}}}
	NewSynchronizer(be).Rebuild(st, nodes)
	assert.Len(t, st.Edges, 1)
	assert.Equal(t, 1, be.Count(LineObject))
}

func TestUnknownTypeFallsBack(t *testing.T) {
	assert.Equal(t, Sphere, ShapeFor(codegraph.NodeTypes(99)))
	assert.Equal(t, VariableColor, ColorFor(codegraph.NodeTypes(99)))
}

func TestPosition(t *testing.T) {
	assert.Equal(t, math32.Vector3{}, Position(0))
	p1 := Position(1)
	assert.InDelta(t, 6.4, p1.X, 1e-5)
	assert.InDelta(t, -2, p1.Y, 1e-5)
	assert.InDelta(t, 0, p1.Z, 1e-5)
	for i := 1; i < 20; i++ {
		p := Position(i)
		r := math32.Sqrt(p.X*p.X + p.Z*p.Z)
		assert.InDelta(t, 6+0.4*float32(i), r, 1e-4)
		assert.Less(t, p.Y, Position(i-1).Y)
		assert.Equal(t, p, Position(i))
	}
}

// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package codegraph

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const demo = `class CyberDeck {
constructor() {
this.security = "MAX";
}
}
function hackMainframe() {
const firewall = 9000;
bypass(firewall);
}
function bypass(target) {
let success = true;
}
const ICE_BREAKER = "v2.0";
const IS_ACTIVE = true;`

func TestBuildScenario(t *testing.T) {
	nodes := NewBuilder().Build("const a = 1;\nfunction b(){}")
	require.Len(t, nodes, 3)

	assert.Equal(t, Module, nodes[0].Type)
	assert.Equal(t, "Main", nodes[0].Name)

	assert.Equal(t, Variable, nodes[1].Type)
	assert.Equal(t, "a", nodes[1].Name)
	assert.Equal(t, "Number (1)", nodes[1].Payload)
	assert.Equal(t, 1, nodes[1].Line)
	assert.Equal(t, "const a = 1;", nodes[1].Snippet)

	assert.Equal(t, Function, nodes[2].Type)
	assert.Equal(t, "b", nodes[2].Name)
	assert.Equal(t, FunctionPayload, nodes[2].Payload)
	assert.Equal(t, 2, nodes[2].Line)

	assert.Contains(t, nodes[1].Dependencies, 0)
	assert.Contains(t, nodes[2].Dependencies, 0)
}

func TestBuildEmpty(t *testing.T) {
	for _, text := range []string{"", "   ", "\n\n\t\n", "just some words"} {
		nodes := NewBuilder().Build(text)
		require.Len(t, nodes, 1, text)
		assert.Equal(t, Root(), nodes[0])
		assert.Empty(t, Edges(nodes))
	}
}

func TestBuildDemo(t *testing.T) {
	b := NewSeededBuilder(1)
	b.LinkProbability = 0
	nodes := b.Build(demo)

	type want struct {
		typ     NodeTypes
		name    string
		payload string
	}
	wants := []want{
		{Module, "Main", RootPayload},
		{Class, "CyberDeck", ClassPayload},
		{Function, "hackMainframe", FunctionPayload},
		{Variable, "firewall", "Number (9000)"},
		{Function, "bypass", FunctionPayload},
		{Variable, "success", "Boolean (true)"},
		{Variable, "ICE_BREAKER", `String ("v2.0")`},
		{Variable, "IS_ACTIVE", "Boolean (true)"},
	}
	require.Len(t, nodes, len(wants))
	for i, w := range wants {
		assert.Equal(t, i, nodes[i].ID)
		assert.Equal(t, w.typ, nodes[i].Type, w.name)
		assert.Equal(t, w.name, nodes[i].Name)
		assert.Equal(t, w.payload, nodes[i].Payload, w.name)
	}
	assert.Len(t, Edges(nodes), len(nodes)-1)
}

func TestBuildMultipleMatches(t *testing.T) {
	b := NewSeededBuilder(1)
	b.LinkProbability = 0
	nodes := b.Build("const handler = (e) => e;")
	require.Len(t, nodes, 3)
	assert.Equal(t, Function, nodes[1].Type)
	assert.Equal(t, "handler", nodes[1].Name)
	assert.Equal(t, Variable, nodes[2].Type)
	assert.Equal(t, "handler", nodes[2].Name)
	assert.Equal(t, "Reference", nodes[2].Payload)
	assert.Equal(t, 1, nodes[2].Line)
}

func TestBuildObjectMethod(t *testing.T) {
	nodes := NewBuilder().Build("  run: function() {")
	require.Len(t, nodes, 2)
	assert.Equal(t, Function, nodes[1].Type)
	assert.Equal(t, "run", nodes[1].Name)
	assert.Equal(t, "run: function() {", nodes[1].Snippet)
}

func TestBuildLinks(t *testing.T) {
	text := "let a = 1;\nlet b = 2;\nlet c = 3;\nlet d = 4;"

	b := NewSeededBuilder(7)
	b.LinkProbability = 1
	nodes := b.Build(text)
	require.Len(t, nodes, 5)
	assert.Equal(t, []int{0}, nodes[1].Dependencies)
	for i := 2; i < len(nodes); i++ {
		assert.Equal(t, []int{0, i - 1}, nodes[i].Dependencies)
	}
	assert.Len(t, Edges(nodes), 4+3)

	b.LinkProbability = 0
	nodes = b.Build(text)
	for i := 1; i < len(nodes); i++ {
		assert.Equal(t, []int{0}, nodes[i].Dependencies)
	}
}

func TestBuildSeeded(t *testing.T) {
	a := NewSeededBuilder(42).Build(demo)
	b := NewSeededBuilder(42).Build(demo)
	assert.Equal(t, a, b)
	assert.Equal(t, Edges(a), Edges(b))
}

func TestEdgesDropsUnresolved(t *testing.T) {
	nodes := []*Node{Root(), {ID: 1, Dependencies: []int{0, 5, -1}}}
	assert.Equal(t, []Edge{{From: 1, To: 0}}, Edges(nodes))
}

func TestNodeTypesString(t *testing.T) {
	assert.Equal(t, "module", Module.String())
	assert.Equal(t, "variable", Variable.String())
	var nt NodeTypes
	assert.NoError(t, nt.SetString("function"))
	assert.Equal(t, Function, nt)
	assert.Error(t, nt.SetString("struct"))
}

// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package codegraph

import (
	"strings"

	"cogentcore.org/lab/base/randx"
)

// DefaultLinkProbability is the default chance that a node beyond the
// first declaration also depends on the node immediately before it.
const DefaultLinkProbability = 0.4

// Builder converts text into a list of nodes.
//
// The extra links to the preceding node are a cosmetic embellishment,
// not real reference analysis: unless [Builder.Rand] is seeded, two builds
// of the same text can produce different edge sets.
type Builder struct {

	// Rand is the random source for the extra preceding-node links.
	// If nil, the global source is used.
	Rand randx.Rand

	// LinkProbability is the chance in [0,1] of linking each node at
	// position 2 or later to the node immediately before it.
	LinkProbability float32
}

// NewBuilder returns a new [Builder] using the global random source.
func NewBuilder() *Builder {
	return &Builder{Rand: randx.NewGlobalRand(), LinkProbability: DefaultLinkProbability}
}

// NewSeededBuilder returns a new [Builder] with its own random source
// initialized from the given seed, so builds are reproducible.
func NewSeededBuilder(seed int64) *Builder {
	return &Builder{Rand: randx.NewSysRand(seed), LinkProbability: DefaultLinkProbability}
}

// Build returns the nodes for the given text. The result always starts with
// the root module node; every other node depends on the root. Node ids equal
// their position in the result.
func (b *Builder) Build(text string) []*Node {
	nodes := []*Node{Root()}
	for i, line := range strings.Split(text, "\n") {
		for pi := range Patterns {
			p := &Patterns[pi]
			name := p.Match(line)
			if name == "" {
				continue
			}
			nodes = append(nodes, &Node{
				ID:           len(nodes),
				Type:         p.Type,
				Name:         name,
				Line:         i + 1,
				Snippet:      strings.TrimSpace(line),
				Payload:      payload(p.Type, line),
				Dependencies: []int{0},
			})
		}
	}
	b.link(nodes)
	return nodes
}

// link adds the random links to the preceding node.
func (b *Builder) link(nodes []*Node) {
	rnd := b.Rand
	if rnd == nil {
		rnd = randx.NewGlobalRand()
	}
	for i := 2; i < len(nodes); i++ {
		if rnd.Float32() < b.LinkProbability {
			nodes[i].Dependencies = append(nodes[i].Dependencies, i-1)
		}
	}
}

func payload(typ NodeTypes, line string) string {
	switch typ {
	case Variable:
		return VariablePayload(line)
	case Function:
		return FunctionPayload
	case Class:
		return ClassPayload
	}
	return VoidPayload
}

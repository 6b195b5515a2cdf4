// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package codegraph builds a small node / edge graph from pseudo source
// text by matching a fixed sequence of lexical declaration patterns.
// It is not a parser: the dependency edges are cosmetic and partly random.
package codegraph

//go:generate core generate

// NodeTypes are the kinds of declarations a [Node] can represent.
type NodeTypes int32 //enums:enum -transform lower

const (
	// Module is the single root node, always present with id 0.
	Module NodeTypes = iota

	// Class is a class declaration.
	Class

	// Function is a function declaration in any of the supported spellings.
	Function

	// Variable is a const / let / var declaration.
	Variable
)

// Node is one detected declaration, or the root module.
type Node struct {

	// ID is the dense zero-based position of the node in the build output.
	ID int `yaml:"id"`

	// Type is the kind of declaration.
	Type NodeTypes `yaml:"type"`

	// Name is the declared name.
	Name string `yaml:"name"`

	// Line is the 1-based source line the node came from (0 for the root).
	Line int `yaml:"line"`

	// Snippet is the trimmed source line.
	Snippet string `yaml:"snippet"`

	// Payload is a short classification of the declared value.
	Payload string `yaml:"payload"`

	// Dependencies are the ids of the nodes this node depends on.
	Dependencies []int `yaml:"dependencies,flow"`
}

// Edge is a directed dependency link derived from [Node.Dependencies].
type Edge struct {

	// From is the id of the dependent node.
	From int `yaml:"from"`

	// To is the id of the dependency.
	To int `yaml:"to"`
}

// Root returns a new root module node.
func Root() *Node {
	return &Node{
		ID:      0,
		Type:    Module,
		Name:    "Main",
		Line:    0,
		Snippet: "Entry Point",
		Payload: "System Init",
	}
}

// Edges returns the edges implied by the dependencies of the given nodes,
// in node order and then dependency order. Dependencies that do not resolve
// to an existing node are dropped.
func Edges(nodes []*Node) []Edge {
	var edges []Edge
	for _, nd := range nodes {
		for _, dep := range nd.Dependencies {
			if dep < 0 || dep >= len(nodes) {
				continue
			}
			edges = append(edges, Edge{From: nd.ID, To: dep})
		}
	}
	return edges
}

// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"cogentcore.org/core/colors"
	"github.com/muesli/termenv"
	"github.com/neongraph/neongraph/codegraph"
	"github.com/neongraph/neongraph/highlight"
	"github.com/neongraph/neongraph/neon"
	"github.com/neongraph/neongraph/scene"
	"gopkg.in/yaml.v3"
)

// Dump writes the nodes, edges and layout of the viewer graph to w,
// colored when w is a terminal.
func Dump(w io.Writer, v *neon.Viewer) error {
	out := termenv.NewOutput(w)
	var sb strings.Builder
	for _, n := range v.State.Nodes {
		clr := out.Color(colors.AsHex(scene.ColorFor(n.Type)))
		fmt.Fprintf(&sb, "%3d %s %s  %s\n", n.ID,
			out.String(fmt.Sprintf("%-8s", highlight.Badge(n.Type))).Foreground(clr).Bold(),
			n.Name, out.String(n.Payload).Faint())
		fmt.Fprintf(&sb, "    line %d at (%.2f, %.2f, %.2f)  %s\n", n.Line, n.Pos.X, n.Pos.Y, n.Pos.Z, snippet(out, n.Snippet))
	}
	edges := codegraph.Edges(v.State.GraphNodes())
	fmt.Fprintf(&sb, "%d nodes, %d edges\n", len(v.State.Nodes), len(edges))
	for _, e := range edges {
		fmt.Fprintf(&sb, "  %s -> %s\n", v.State.Nodes[e.From].Name, v.State.Nodes[e.To].Name)
	}
	_, err := io.WriteString(w, sb.String())
	return err
}

func snippet(out *termenv.Output, s string) string {
	var sb strings.Builder
	for _, sp := range highlight.Line(s) {
		if sp.Kind == highlight.Plain {
			sb.WriteString(sp.Text)
			continue
		}
		sb.WriteString(out.String(sp.Text).Foreground(out.Color(colors.AsHex(highlight.Colors[sp.Kind]))).String())
	}
	return sb.String()
}

// Placement is the layout of one node in a [Snapshot].
type Placement struct {
	ID    int          `yaml:"id"`
	Shape scene.Shapes `yaml:"shape"`
	X     float32      `yaml:"x"`
	Y     float32      `yaml:"y"`
	Z     float32      `yaml:"z"`
}

// Snapshot is the exported form of a graph.
type Snapshot struct {
	Nodes  []*codegraph.Node `yaml:"nodes"`
	Edges  []codegraph.Edge  `yaml:"edges"`
	Layout []Placement       `yaml:"layout"`
}

// NewSnapshot returns the snapshot of the viewer graph.
func NewSnapshot(v *neon.Viewer) *Snapshot {
	nodes := v.State.GraphNodes()
	s := &Snapshot{Nodes: nodes, Edges: codegraph.Edges(nodes)}
	for _, n := range v.State.Nodes {
		s.Layout = append(s.Layout, Placement{ID: n.ID, Shape: n.Shape, X: n.Pos.X, Y: n.Pos.Y, Z: n.Pos.Z})
	}
	return s
}

// Export writes the YAML snapshot of the viewer graph to w.
func Export(w io.Writer, v *neon.Viewer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(NewSnapshot(v)); err != nil {
		return fmt.Errorf("export: %w", err)
	}
	return enc.Close()
}

// ExportFile writes the YAML snapshot of the viewer graph to a file.
func ExportFile(filename string, v *neon.Viewer) error {
	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	if err := Export(f, v); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package codegraph

import (
	"fmt"
	"strings"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

// declLine generates lines that look like declarations some of the time.
func declLine() gopter.Gen {
	return gen.OneGenOf(
		gen.AlphaString(),
		gen.Identifier().Map(func(s string) string { return "class " + s + " {" }),
		gen.Identifier().Map(func(s string) string { return "function " + s + "() {" }),
		gen.Identifier().Map(func(s string) string { return "let " + s + " = 1;" }),
		gen.IntRange(-1000, 1000).Map(func(v int) string { return fmt.Sprintf("const n = %d;", v) }),
	)
}

func TestBuildProperties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	properties.Property("exactly one root with no dependencies", prop.ForAll(
		func(lines []string) bool {
			nodes := NewBuilder().Build(strings.Join(lines, "\n"))
			roots := 0
			for _, nd := range nodes {
				if nd.Type == Module {
					roots++
				}
			}
			return roots == 1 && nodes[0].ID == 0 && nodes[0].Type == Module &&
				len(nodes[0].Dependencies) == 0
		},
		gen.SliceOf(declLine()),
	))

	properties.Property("ids equal positions", prop.ForAll(
		func(lines []string) bool {
			nodes := NewBuilder().Build(strings.Join(lines, "\n"))
			for i, nd := range nodes {
				if nd.ID != i {
					return false
				}
			}
			return true
		},
		gen.SliceOf(declLine()),
	))

	properties.Property("dependencies point to earlier nodes", prop.ForAll(
		func(lines []string, seed int64) bool {
			b := NewSeededBuilder(seed)
			nodes := b.Build(strings.Join(lines, "\n"))
			for _, nd := range nodes[1:] {
				if len(nd.Dependencies) == 0 || nd.Dependencies[0] != 0 {
					return false
				}
				for _, d := range nd.Dependencies {
					if d < 0 || d >= nd.ID {
						return false
					}
				}
			}
			return len(Edges(nodes)) >= len(nodes)-1
		},
		gen.SliceOf(declLine()),
		gen.Int64(),
	))

	properties.Property("numeric right-hand sides are numbers", prop.ForAll(
		func(v int) bool {
			return VariablePayload(fmt.Sprintf("const x = %d;", v)) == fmt.Sprintf("Number (%d)", v)
		},
		gen.Int(),
	))

	properties.TestingRun(t)
}

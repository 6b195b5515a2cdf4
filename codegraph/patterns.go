// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package codegraph

import "regexp"

// Pattern is one lexical declaration pattern.
type Pattern struct {

	// Type is the node type produced by a match.
	Type NodeTypes

	// Regexp is matched against each line; the first non-empty
	// capture group is the declared name.
	Regexp *regexp.Regexp
}

// Patterns are tested against every line in this order.
// A line can match more than one of them.
var Patterns = []Pattern{
	{Class, regexp.MustCompile(`class\s+(\w+)`)},
	{Function, regexp.MustCompile(`(?:function\s+(\w+)|const\s+(\w+)\s*=\s*\(|(\w+)\s*:\s*function)`)},
	{Variable, regexp.MustCompile(`(?:const|let|var)\s+(\w+)\s*=`)},
}

// Match returns the declared name for the pattern on the given line,
// or "" if the pattern does not match or captures nothing.
func (p *Pattern) Match(line string) string {
	m := p.Regexp.FindStringSubmatch(line)
	if m == nil {
		return ""
	}
	for _, g := range m[1:] {
		if g != "" {
			return g
		}
	}
	return ""
}

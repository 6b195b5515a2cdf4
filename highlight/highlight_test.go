// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package highlight

import (
	"strings"
	"testing"

	"github.com/alecthomas/chroma/v2"
	"github.com/neongraph/neongraph/codegraph"
	"github.com/stretchr/testify/assert"
)

func join(spans []Span) string {
	var sb strings.Builder
	for _, s := range spans {
		sb.WriteString(s.Text)
	}
	return sb.String()
}

func find(spans []Span, k Kinds) []string {
	var s []string
	for _, sp := range spans {
		if sp.Kind == k {
			s = append(s, strings.TrimSpace(sp.Text))
		}
	}
	return s
}

func TestLine(t *testing.T) {
	src := `const ICE_BREAKER = "v2.0";`
	spans := Line(src)
	assert.Equal(t, src, join(spans))
	assert.Contains(t, find(spans, Keyword), "const")
	assert.Contains(t, find(spans, String), `"v2.0"`)

	spans = Line("let firewall = 9000; // max")
	assert.Contains(t, find(spans, Number), "9000")
	assert.Contains(t, find(spans, Comment), "// max")
}

func TestLineMerges(t *testing.T) {
	spans := Line("function bypass(target) {")
	assert.Equal(t, "function bypass(target) {", join(spans))
	for i := 1; i < len(spans); i++ {
		assert.NotEqual(t, spans[i-1].Kind, spans[i].Kind)
	}
}

func TestLineEmpty(t *testing.T) {
	assert.Nil(t, Line(""))
	assert.Nil(t, Line("\n"))
}

func TestKindFromChroma(t *testing.T) {
	assert.Equal(t, Keyword, KindFromChroma(chroma.KeywordDeclaration))
	assert.Equal(t, Name, KindFromChroma(chroma.NameOther))
	assert.Equal(t, String, KindFromChroma(chroma.LiteralStringDouble))
	assert.Equal(t, Number, KindFromChroma(chroma.LiteralNumberInteger))
	assert.Equal(t, Operator, KindFromChroma(chroma.Operator))
	assert.Equal(t, Punctuation, KindFromChroma(chroma.Punctuation))
	assert.Equal(t, Comment, KindFromChroma(chroma.CommentSingle))
	assert.Equal(t, Plain, KindFromChroma(chroma.TextWhitespace))
}

func TestBadge(t *testing.T) {
	assert.Equal(t, "Function", Badge(codegraph.Function))
	assert.Equal(t, "Module", Badge(codegraph.Module))
	assert.Len(t, Colors, int(KindsN))
}

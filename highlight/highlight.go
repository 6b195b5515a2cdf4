// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package highlight classifies the tokens of a code snippet for display
// in tooltips and terminal dumps.
package highlight

//go:generate core generate

import (
	"image/color"
	"log/slog"
	"strings"

	"cogentcore.org/core/colors"
	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/neongraph/neongraph/codegraph"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Language is the chroma lexer used for snippets.
const Language = "javascript"

// Kinds are the token classes of a snippet.
type Kinds int32 //enums:enum -transform lower

const (
	// Plain is whitespace and anything unclassified.
	Plain Kinds = iota

	// Keyword is a reserved word or keyword constant.
	Keyword

	// Name is an identifier.
	Name

	// String is a string literal.
	String

	// Number is a numeric literal.
	Number

	// Operator is an operator.
	Operator

	// Punctuation is a bracket, separator or terminator.
	Punctuation

	// Comment is a comment.
	Comment
)

// Span is a run of snippet text of one kind.
type Span struct {
	Kind Kinds
	Text string
}

// Colors are the display colors for each kind.
var Colors = map[Kinds]color.RGBA{
	Plain:       colors.FromRGB(0xcc, 0xcc, 0xcc),
	Keyword:     colors.FromRGB(0xff, 0x00, 0x55),
	Name:        colors.FromRGB(0x00, 0xff, 0xcc),
	String:      colors.FromRGB(0xff, 0xff, 0x00),
	Number:      colors.FromRGB(0x00, 0x88, 0xff),
	Operator:    colors.FromRGB(0xff, 0xff, 0xff),
	Punctuation: colors.FromRGB(0x88, 0x88, 0x88),
	Comment:     colors.FromRGB(0x66, 0x66, 0x66),
}

var lexer = chroma.Coalesce(lexers.Get(Language))

// KindFromChroma returns the kind for a chroma token type.
func KindFromChroma(tt chroma.TokenType) Kinds {
	switch {
	case tt.InCategory(chroma.Keyword):
		return Keyword
	case tt.InCategory(chroma.Name):
		return Name
	case tt.InSubCategory(chroma.LiteralString):
		return String
	case tt.InSubCategory(chroma.LiteralNumber):
		return Number
	case tt.InCategory(chroma.Operator):
		return Operator
	case tt.InCategory(chroma.Punctuation):
		return Punctuation
	case tt.InCategory(chroma.Comment):
		return Comment
	}
	return Plain
}

// Line splits one line of code into spans. Adjacent tokens of the same kind
// are merged, and the span texts join back to the line.
func Line(txt string) []Span {
	txt = strings.TrimSuffix(txt, "\n")
	if txt == "" {
		return nil
	}
	it, err := lexer.Tokenise(nil, txt+"\n")
	if err != nil {
		slog.Error("highlight", "err", err)
		return []Span{{Kind: Plain, Text: txt}}
	}
	var spans []Span
	for _, tok := range it.Tokens() {
		val := strings.TrimSuffix(tok.Value, "\n")
		if val == "" {
			continue
		}
		k := KindFromChroma(tok.Type)
		if n := len(spans); n > 0 && spans[n-1].Kind == k {
			spans[n-1].Text += val
			continue
		}
		spans = append(spans, Span{Kind: k, Text: val})
	}
	return spans
}

var title = cases.Title(language.English)

// Badge returns the display label for a node type, such as "Function".
func Badge(typ codegraph.NodeTypes) string {
	return title.String(typ.String())
}

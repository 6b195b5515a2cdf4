// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package codegraph

import (
	"fmt"
	"regexp"
	"strings"
)

// Fixed payload labels.
const (
	RootPayload     = "System Init"
	FunctionPayload = "Action / Logic"
	ClassPayload    = "Class Structure"
	VoidPayload     = "Void / Signal"
)

// MaxStringPreview is the number of characters of a string literal
// shown in a String payload before it is elided.
const MaxStringPreview = 15

// numberPrefix matches the leading numeric literal that a lenient
// float parse would accept.
var numberPrefix = regexp.MustCompile(`^[+-]?(Infinity|\d+\.?\d*([eE][+-]?\d+)?|\.\d+([eE][+-]?\d+)?)`)

// VariablePayload classifies the value assigned on the given declaration line.
// The right-hand side is the text between the first '=' and the next one
// (or the end of the line), trimmed, with the first ';' removed. The first matching rule wins: Number, String, Boolean,
// Instance, Array, Object, and otherwise Reference.
func VariablePayload(line string) string {
	_, rhs, ok := strings.Cut(line, "=")
	if !ok {
		return VoidPayload
	}
	rhs, _, _ = strings.Cut(rhs, "=")
	rhs = strings.Replace(strings.TrimSpace(rhs), ";", "", 1)
	return ClassifyValue(rhs)
}

// ClassifyValue classifies an already extracted right-hand side.
func ClassifyValue(rhs string) string {
	switch {
	case numberPrefix.MatchString(rhs):
		return fmt.Sprintf("Number (%s)", rhs)
	case strings.HasPrefix(rhs, `"`), strings.HasPrefix(rhs, "'"), strings.HasPrefix(rhs, "`"):
		return fmt.Sprintf("String (%s)", elide(rhs, MaxStringPreview))
	case rhs == "true" || rhs == "false":
		return fmt.Sprintf("Boolean (%s)", rhs)
	case strings.HasPrefix(rhs, "new "):
		return fmt.Sprintf("Instance (%s)", strings.Replace(rhs, "new ", "", 1))
	case strings.HasPrefix(rhs, "["):
		return "Array"
	case strings.HasPrefix(rhs, "{"):
		return "Object"
	}
	return "Reference"
}

// elide returns the first n runes of s, followed by "..." if s was longer.
func elide(s string, n int) string {
	rs := []rune(s)
	if len(rs) <= n {
		return s
	}
	return string(rs[:n]) + "..."
}

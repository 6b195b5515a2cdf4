// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package interact

import (
	"image"

	"github.com/neongraph/neongraph/codegraph"
)

// TooltipOffset is the tooltip position relative to the pointer.
var TooltipOffset = image.Pt(15, 15)

// Tooltip is the hover information for a node.
type Tooltip struct {

	// Visible is false when nothing is hovered.
	Visible bool

	// Pos is the top left position in viewport pixels.
	Pos image.Point

	Name    string
	Type    codegraph.NodeTypes
	Payload string
	Snippet string
}

// NewTooltip returns a visible tooltip for the node next to the pointer.
func NewTooltip(nd *codegraph.Node, ptr image.Point) Tooltip {
	return Tooltip{
		Visible: true,
		Pos:     ptr.Add(TooltipOffset),
		Name:    nd.Name,
		Type:    nd.Type,
		Payload: nd.Payload,
		Snippet: nd.Snippet,
	}
}

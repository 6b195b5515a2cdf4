// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene

import (
	"image/color"

	"cogentcore.org/core/colors"
	"github.com/neongraph/neongraph/codegraph"
)

// Shapes are the primitive shapes used for nodes.
type Shapes int32 //enums:enum

const (
	// Torus is used for the root module.
	Torus Shapes = iota

	// HexPrism is a six sided cylinder used for classes.
	HexPrism

	// Cube is used for functions.
	Cube

	// Sphere is used for variables and anything unknown.
	Sphere
)

// BoundingRadius returns the radius of a sphere enclosing the shape at unit scale.
func (s Shapes) BoundingRadius() float32 {
	switch s {
	case Torus:
		return 3.5
	case HexPrism:
		return 1.8
	case Cube:
		return 1.75
	}
	return 0.8
}

var (
	// ModuleColor is blue.
	ModuleColor = colors.FromRGB(0x00, 0x88, 0xff)

	// ClassColor is red / pink.
	ClassColor = colors.FromRGB(0xff, 0x00, 0x55)

	// FunctionColor is cyan.
	FunctionColor = colors.FromRGB(0x00, 0xff, 0xcc)

	// VariableColor is yellow.
	VariableColor = colors.FromRGB(0xff, 0xff, 0x00)

	// EdgeColor is a faint grey.
	EdgeColor = colors.WithAF32(colors.FromRGB(0x44, 0x44, 0x44), 0.2)

	// ParticleColor is white.
	ParticleColor = colors.FromRGB(0xff, 0xff, 0xff)
)

// ShapeFor returns the shape for the node type.
func ShapeFor(typ codegraph.NodeTypes) Shapes {
	switch typ {
	case codegraph.Module:
		return Torus
	case codegraph.Class:
		return HexPrism
	case codegraph.Function:
		return Cube
	}
	return Sphere
}

// ColorFor returns the color for the node type.
func ColorFor(typ codegraph.NodeTypes) color.RGBA {
	switch typ {
	case codegraph.Module:
		return ModuleColor
	case codegraph.Class:
		return ClassColor
	case codegraph.Function:
		return FunctionColor
	}
	return VariableColor
}

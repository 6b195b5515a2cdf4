// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package neonxyz renders a code graph with the xyz 3D framework and
// provides the interactive GUI around it.
package neonxyz

import (
	"fmt"
	"image/color"

	"cogentcore.org/core/colors"
	"cogentcore.org/core/math32"
	"cogentcore.org/core/xyz"
	"cogentcore.org/lab/base/randx"
	"github.com/neongraph/neongraph/scene"
)

// Display constants for the scene.
var (
	// Background is the scene background color.
	Background = colors.FromRGB(0x02, 0x02, 0x02)

	// LineWidth is the width of edge lines.
	LineWidth float32 = 0.05

	// ParticleRadius is the radius of the edge particles.
	ParticleRadius float32 = 0.2

	// Shiny is the specular focus of node shapes.
	Shiny float32 = 100

	// Reflective is the specular strength of node shapes.
	Reflective float32 = 0.8
)

// Backend implements [scene.Backend] with solids in an [xyz.Scene].
// Each shape type has one shared mesh.
type Backend struct {

	// Scene is the xyz scene the solids are added to.
	Scene *xyz.Scene

	solids scene.Arena[*xyz.Solid]
	grid   xyz.Texture
	meshes map[scene.Shapes]xyz.Mesh
	marker xyz.Mesh
	serial int
}

// NewBackend sets up the background, lights and shared meshes in the
// given scene and returns a [Backend] for it.
func NewBackend(sc *xyz.Scene) *Backend {
	b := &Backend{Scene: sc}
	sc.Background = colors.Uniform(Background)
	xyz.NewAmbient(sc, "ambient", 0.2, xyz.DirectSun)
	pt := xyz.NewPoint(sc, "point", 1, xyz.DirectSun)
	pt.Pos.Set(0, 20, 20)
	dir := xyz.NewDirectional(sc, "dir", 0.5, xyz.DirectSun)
	dir.Pos.Set(0, 1, 1)

	b.meshes = map[scene.Shapes]xyz.Mesh{
		scene.Torus:    xyz.NewTorus(sc, "neon-torus", 3, 0.5, 48),
		scene.HexPrism: xyz.NewCylinder(sc, "neon-hex", 3, 1, 6, 1, true, true),
		scene.Cube:     xyz.NewBox(sc, "neon-cube", 2, 2, 2),
		scene.Sphere:   xyz.NewSphere(sc, "neon-sphere", 0.8, 32),
	}
	b.marker = xyz.NewSphere(sc, "neon-particle", ParticleRadius, 12)

	b.grid = &xyz.TextureBase{Name: "neon-grid", RGBA: GridImage(randx.NewGlobalRand())}
	sc.SetTexture(b.grid)
	return b
}

func (b *Backend) name(prefix string) string {
	b.serial++
	return fmt.Sprintf("%s-%d", prefix, b.serial)
}

func (b *Backend) add(sld *xyz.Solid) scene.Handle {
	b.Scene.SetNeedsUpdate()
	return b.solids.Add(sld)
}

// NewShape adds a glowing solid of the given shape, covered in the
// neon grid texture with a shiny metallic finish.
func (b *Backend) NewShape(shape scene.Shapes, clr color.RGBA) scene.Handle {
	sld := xyz.NewSolid(b.Scene).SetMesh(b.meshes[shape]).SetColor(clr).SetEmissive(glow(clr, 0.8)).
		SetTexture(b.grid).SetShiny(Shiny).SetReflective(Reflective)
	sld.SetName(b.name(shape.String()))
	return b.add(sld)
}

// NewLine adds a fixed line between two points.
func (b *Backend) NewLine(start, end math32.Vector3, clr color.RGBA) scene.Handle {
	return b.add(xyz.NewLine(b.Scene, b.Scene, b.name("edge"), start, end, LineWidth, clr))
}

// NewMarker adds a small bright sphere.
func (b *Backend) NewMarker(clr color.RGBA) scene.Handle {
	sld := xyz.NewSolid(b.Scene).SetMesh(b.marker).SetColor(clr).SetEmissive(clr)
	sld.SetName(b.name("particle"))
	return b.add(sld)
}

// SetTransform updates the pose of the solid. Rotations are in radians.
func (b *Backend) SetTransform(h scene.Handle, tr scene.Transform) {
	sld, ok := b.solids.Get(h)
	if !ok {
		return
	}
	sld.Pose.Pos = tr.Pos
	sld.Pose.Scale.SetScalar(tr.Scale)
	sld.Pose.SetEulerRotation(math32.RadToDeg(tr.Rot.X), math32.RadToDeg(tr.Rot.Y), math32.RadToDeg(tr.Rot.Z))
}

// Release removes the solid from the scene.
func (b *Backend) Release(h scene.Handle) {
	sld, ok := b.solids.Release(h)
	if !ok {
		return
	}
	sld.Delete()
	b.Scene.SetNeedsUpdate()
}

// Len returns the number of live solids.
func (b *Backend) Len() int {
	return b.solids.Len()
}

// glow returns the color scaled toward black by the given intensity.
func glow(clr color.RGBA, intensity float32) color.RGBA {
	f := func(v uint8) uint8 { return uint8(float32(v) * intensity) }
	return color.RGBA{f(clr.R), f(clr.G), f(clr.B), clr.A}
}

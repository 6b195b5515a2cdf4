// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package neonxyz

import (
	"image"
	"image/color"
	"image/draw"

	"cogentcore.org/lab/base/randx"
)

// Neon grid texture parameters.
var (
	// GridSize is the width and height of the grid texture in pixels.
	GridSize = 512

	// GridCell is the spacing of the grid lines in pixels.
	GridCell = 64

	// GridLineWidth is the width of the grid lines in pixels.
	GridLineWidth = 4

	// GridSquares is how many cells get a filled square.
	GridSquares = 5

	// GridLineColor is the color of the grid lines.
	GridLineColor = color.RGBA{0x00, 0xff, 0xcc, 0xff}

	// GridSquareColor is the color of the filled squares.
	GridSquareColor = color.RGBA{0xff, 0x00, 0x55, 0xff}
)

// GridImage draws the neon grid texture: lines every [GridCell] pixels on
// black, plus up to [GridSquares] filled squares in random cells.
func GridImage(rnd randx.Rand) *image.RGBA {
	sz := GridSize
	img := image.NewRGBA(image.Rect(0, 0, sz, sz))
	draw.Draw(img, img.Bounds(), image.NewUniform(color.Black), image.Point{}, draw.Src)

	line := image.NewUniform(GridLineColor)
	hw := GridLineWidth / 2
	for i := 0; i <= sz; i += GridCell {
		draw.Draw(img, image.Rect(i-hw, 0, i+hw, sz).Intersect(img.Bounds()), line, image.Point{}, draw.Src)
		draw.Draw(img, image.Rect(0, i-hw, sz, i+hw).Intersect(img.Bounds()), line, image.Point{}, draw.Src)
	}

	sq := image.NewUniform(GridSquareColor)
	cells := sz / GridCell
	pad := GridCell * 10 / 64
	for range GridSquares {
		x := rnd.Intn(cells) * GridCell
		y := rnd.Intn(cells) * GridCell
		r := image.Rect(x+pad, y+pad, x+GridCell-pad, y+GridCell-pad)
		draw.Draw(img, r, sq, image.Point{}, draw.Src)
	}
	return img
}

// seehuhn.de/go/font2png - export font glyphs as PNG images
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Package canvas implements the image operations needed to turn glyph
// bitmaps into fixed-height PNG files.
package canvas

import (
	"image"
	"image/color"

	"golang.org/x/image/draw"
)

// Background returns the canvas colour for the given polarity.
func Background(invert bool) color.Gray {
	if invert {
		return color.Gray{Y: 0xFF}
	}
	return color.Gray{Y: 0x00}
}

// Invert replaces every pixel value v of img by 255-v, in place.
func Invert(img *image.Gray) {
	b := img.Rect
	for y := b.Min.Y; y < b.Max.Y; y++ {
		row := img.Pix[img.PixOffset(b.Min.X, y):img.PixOffset(b.Max.X, y)]
		for i, v := range row {
			row[i] = 0xFF - v
		}
	}
}

// Compose returns a new width x height image filled with bg, with src
// pasted at column 0 and row y.  Parts of src which fall outside the canvas
// are clipped.
func Compose(src *image.Gray, width, height, y int, bg color.Gray) *image.Gray {
	dst := image.NewGray(image.Rect(0, 0, width, height))
	draw.Draw(dst, dst.Bounds(), image.NewUniform(bg), image.Point{}, draw.Src)

	sb := src.Bounds()
	r := image.Rect(0, y, sb.Dx(), y+sb.Dy()).Intersect(dst.Bounds())
	if r.Empty() {
		return dst
	}
	sp := sb.Min.Add(r.Min.Sub(image.Pt(0, y)))
	draw.Draw(dst, r, src, sp, draw.Src)
	return dst
}

// TrimColumns removes columns containing only bg from the left and right
// edge of img.  The height is not changed.  If every column is background,
// img is returned unchanged.
func TrimColumns(img *image.Gray, bg color.Gray) *image.Gray {
	b := img.Bounds()
	left, right := b.Min.X, b.Max.X
	for left < right && isBackground(img, left, bg) {
		left++
	}
	if left == right {
		return img
	}
	for isBackground(img, right-1, bg) {
		right--
	}
	if left == b.Min.X && right == b.Max.X {
		return img
	}

	res := image.NewGray(image.Rect(0, 0, right-left, b.Dy()))
	draw.Draw(res, res.Bounds(), img, image.Pt(left, b.Min.Y), draw.Src)
	return res
}

func isBackground(img *image.Gray, x int, bg color.Gray) bool {
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		if img.GrayAt(x, y) != bg {
			return false
		}
	}
	return true
}

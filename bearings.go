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

package font2png

import (
	"seehuhn.de/go/postscript/funit"

	"seehuhn.de/go/font2png/raster"
)

// EmptyBearingReduction is the amount, in design units, by which
// ReduceEmpty shrinks the right side bearing of glyphs without outline.
const EmptyBearingReduction funit.Int16 = 100

// Bearings are the horizontal side bearings of a glyph, in design units.
// For a glyph without outline, LSB is zero and RSB is the advance width.
type Bearings struct {
	LSB funit.Int16
	RSB funit.Int16
}

// NativeBearings returns the side bearings stored in the font.
func (g *Glyph) NativeBearings() Bearings {
	if g.IsBlank() {
		return Bearings{RSB: g.Advance}
	}
	return Bearings{
		LSB: g.BBox.LLx,
		RSB: g.Advance - g.BBox.URx,
	}
}

// Adjust returns the side bearings of g after applying the bearing mode.
// The glyph itself is not modified.
func (m BearingMode) Adjust(g *Glyph) Bearings {
	b := g.NativeBearings()
	switch m {
	case StripBearings:
		if !g.IsBlank() {
			b = Bearings{}
		}
	case ReduceEmpty:
		if g.IsBlank() {
			b.RSB = max(b.RSB-EmptyBearingReduction, 0)
		} else {
			b = Bearings{}
		}
	}
	return b
}

// trimWidth is the number of pixel columns removed from each output image.
func (m BearingMode) trimWidth() int {
	if m == ReduceEmpty {
		return 1
	}
	return 0
}

// Request converts the glyph and the given bearings into a rasterization
// request.
func (g *Glyph) Request(b Bearings) *raster.Request {
	advance := b.LSB + b.RSB
	if !g.IsBlank() {
		advance += g.BBox.URx - g.BBox.LLx
	}
	return &raster.Request{
		GID:     g.GID,
		BBox:    g.BBox,
		LSB:     b.LSB,
		Advance: advance,
	}
}

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
	"bytes"
	"testing"

	"golang.org/x/image/font/gofont/goregular"
	"seehuhn.de/go/postscript/funit"
	"seehuhn.de/go/sfnt"
	sfntcmap "seehuhn.de/go/sfnt/cmap"
	"seehuhn.de/go/sfnt/glyf"
	"seehuhn.de/go/sfnt/glyph"
)

type blankGlyph struct {
	code  rune
	width funit.Int16
}

// blankFont returns a font with em size 1000, ascender 800 and descender
// -200.  Glyph i+1 maps to glyphs[i].code and has no outline.
func blankFont(glyphs ...blankGlyph) *sfnt.Font {
	n := len(glyphs) + 1
	widths := make([]funit.Int16, n)
	cmap := sfntcmap.Format4{}
	for i, g := range glyphs {
		gid := glyph.ID(i + 1)
		widths[gid] = g.width
		cmap[uint16(g.code)] = gid
	}
	return &sfnt.Font{
		FamilyName: "Test",
		UnitsPerEm: 1000,
		Ascent:     800,
		Descent:    -200,
		Outlines: &glyf.Outlines{
			Glyphs: make(glyf.Glyphs, n),
			Widths: widths,
		},
		CMapTable: sfntcmap.Table{
			{PlatformID: 3, EncodingID: 1}: cmap.Encode(0),
		},
	}
}

func goRegular(t *testing.T) *sfnt.Font {
	t.Helper()
	f, err := sfnt.Read(bytes.NewReader(goregular.TTF))
	if err != nil {
		t.Fatal(err)
	}
	return f
}

func intPtr(x int) *int {
	return &x
}

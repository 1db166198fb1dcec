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
	"testing"

	"github.com/google/go-cmp/cmp"
	"seehuhn.de/go/postscript/funit"

	"seehuhn.de/go/font2png/raster"
)

var (
	inkGlyph = &Glyph{
		GID:     3,
		Code:    'A',
		BBox:    funit.Rect16{LLx: 30, LLy: -10, URx: 530, URy: 700},
		Advance: 600,
	}
	spaceGlyph = &Glyph{
		GID:     4,
		Code:    ' ',
		Advance: 150,
	}
	narrowSpace = &Glyph{
		GID:     5,
		Code:    0x2009,
		Advance: 60,
	}
)

func TestAdjust(t *testing.T) {
	tests := []struct {
		mode BearingMode
		g    *Glyph
		want Bearings
	}{
		{KeepBearings, inkGlyph, Bearings{LSB: 30, RSB: 70}},
		{KeepBearings, spaceGlyph, Bearings{RSB: 150}},
		{StripBearings, inkGlyph, Bearings{}},
		{StripBearings, spaceGlyph, Bearings{RSB: 150}},
		{ReduceEmpty, inkGlyph, Bearings{}},
		{ReduceEmpty, spaceGlyph, Bearings{RSB: 50}},
		{ReduceEmpty, narrowSpace, Bearings{}},
	}
	for _, test := range tests {
		got := test.mode.Adjust(test.g)
		if d := cmp.Diff(test.want, got); d != "" {
			t.Errorf("%s, U+%04X (-want +got):\n%s", test.mode, test.g.Code, d)
		}
	}
}

func TestAdjustLeavesGlyph(t *testing.T) {
	before := *spaceGlyph
	ReduceEmpty.Adjust(spaceGlyph)
	if d := cmp.Diff(before, *spaceGlyph); d != "" {
		t.Errorf("glyph modified (-before +after):\n%s", d)
	}
}

func TestRequest(t *testing.T) {
	tests := []struct {
		g    *Glyph
		b    Bearings
		want *raster.Request
	}{
		{
			g: inkGlyph,
			b: Bearings{LSB: 30, RSB: 70},
			want: &raster.Request{
				GID:     3,
				BBox:    inkGlyph.BBox,
				LSB:     30,
				Advance: 600,
			},
		},
		{
			g: inkGlyph,
			b: Bearings{},
			want: &raster.Request{
				GID:     3,
				BBox:    inkGlyph.BBox,
				Advance: 500,
			},
		},
		{
			g: spaceGlyph,
			b: Bearings{RSB: 50},
			want: &raster.Request{
				GID:     4,
				Advance: 50,
			},
		},
	}
	for i, test := range tests {
		got := test.g.Request(test.b)
		if d := cmp.Diff(test.want, got); d != "" {
			t.Errorf("%d (-want +got):\n%s", i, d)
		}
	}
}

func TestTrimWidth(t *testing.T) {
	for _, mode := range []BearingMode{KeepBearings, StripBearings, ReduceEmpty} {
		want := 0
		if mode == ReduceEmpty {
			want = 1
		}
		if got := mode.trimWidth(); got != want {
			t.Errorf("%s: got %d, want %d", mode, got, want)
		}
	}
}

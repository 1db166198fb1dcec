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
	"fmt"

	"seehuhn.de/go/postscript/funit"
	"seehuhn.de/go/sfnt"
	"seehuhn.de/go/sfnt/glyph"
)

// Glyph describes a glyph which is a candidate for export.
type Glyph struct {
	GID     glyph.ID
	Code    rune
	BBox    funit.Rect16
	Advance funit.Int16
}

// IsBlank reports whether the glyph has no visible outline.
func (g *Glyph) IsBlank() bool {
	return g.BBox.IsZero()
}

// worthOutputting reports whether the glyph leaves any trace when rendered.
// The .notdef glyph is never exported.
func (g *Glyph) worthOutputting() bool {
	if g.GID == 0 {
		return false
	}
	return !g.IsBlank() || g.Advance > 0
}

// Glyphs returns the exportable glyphs of f in glyph ID order.
//
// Every glyph is listed under the smallest code point which maps to it in
// the best cmap subtable of the font.  Glyphs without a code point, glyphs
// with nothing to show, and glyphs whose code point is not in cs are
// omitted.  An error is returned if the font has no usable cmap table.
func Glyphs(f *sfnt.Font, cs Charset) ([]*Glyph, error) {
	rev, err := reverseCMap(f)
	if err != nil {
		return nil, err
	}

	numGlyphs := f.NumGlyphs()
	var res []*Glyph
	for i := range numGlyphs {
		gid := glyph.ID(i)
		r, ok := rev[gid]
		if !ok || !cs.Contains(r) {
			continue
		}
		g := &Glyph{
			GID:     gid,
			Code:    r,
			BBox:    f.GlyphBBox(gid),
			Advance: funit.Int16(f.GlyphWidth(gid)),
		}
		if !g.worthOutputting() {
			continue
		}
		res = append(res, g)
	}
	return res, nil
}

func reverseCMap(f *sfnt.Font) (map[glyph.ID]rune, error) {
	if f.CMapTable == nil {
		return nil, errNoCMap
	}
	subtable, err := f.CMapTable.GetBest()
	if err != nil {
		return nil, fmt.Errorf("cmap: %w", err)
	} else if subtable == nil {
		return nil, errNoCMap
	}

	rev := make(map[glyph.ID]rune)
	low, high := subtable.CodeRange()
	for r := low; r <= high; r++ {
		gid := subtable.Lookup(r)
		if gid == 0 {
			continue
		}
		if _, seen := rev[gid]; !seen {
			rev[gid] = r
		}
	}
	return rev, nil
}

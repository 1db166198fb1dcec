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

// Package font2png exports the glyphs of a TrueType or OpenType font as
// individual PNG images.
//
// Every image of one export run has the same height, determined by the
// ascender and descender of the font and the requested point size.  Glyph
// bitmaps are centered vertically on this canvas.  The files are named after
// the Unicode code point of the glyph, using five lower case hexadecimal
// digits, for example "0004e.png" for the letter "N".
//
// Usage:
//
//	res, err := font2png.Export(font2png.Config{
//		FontPath:  "DejaVuSans.ttf",
//		PointSize: 16,
//		Charset:   font2png.ASCIIOnly,
//		Bearings:  font2png.StripBearings,
//	})
//	if err != nil {
//		log.Fatal(err)
//	}
//	for _, err := range res.Skipped {
//		log.Println(err)
//	}
//
// The vertical position of a glyph is found by comparing its centering
// offset with the lowest offset seen so far.  With [Streaming] centering
// this depends on the order of the glyphs in the font; [TwoPass] centering
// looks at all glyphs before the first file is written.
package font2png

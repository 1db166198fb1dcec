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

// Package raster renders glyph outlines into grayscale coverage images.
//
// Glyph images use the conventions of bitmap fonts: the image is as wide as
// the (possibly adjusted) advance width of the glyph and as tall as the ink
// of the glyph.  Pixel values give the fraction of the pixel covered by the
// outline, 0 meaning no ink and 255 meaning full coverage.
package raster

import (
	"errors"
	"fmt"
	"image"
	"math"

	"golang.org/x/image/vector"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/postscript/funit"
	"seehuhn.de/go/sfnt"
	"seehuhn.de/go/sfnt/glyph"
)

// Request describes a glyph to be rendered.
type Request struct {
	GID glyph.ID

	// BBox is the ink bounding box of the glyph, in design units.
	BBox funit.Rect16

	// LSB is the distance between the left image border and the left edge
	// of BBox, in design units.
	LSB funit.Int16

	// Advance is the width of the image, in design units.
	Advance funit.Int16
}

// Size returns the image size for the request, in pixels.
// Both dimensions are at least one pixel.
func (req *Request) Size(scale float64) (width, height int) {
	width = max(int(math.Round(float64(req.Advance)*scale)), 1)
	if req.BBox.IsZero() {
		return width, 1
	}
	top, bottom := req.rows(scale)
	height = max(top-bottom, 1)
	return width, height
}

// rows returns the first pixel row above and below the ink, counted upwards
// from the baseline.
func (req *Request) rows(scale float64) (top, bottom int) {
	top = int(math.Ceil(float64(req.BBox.URy) * scale))
	bottom = int(math.Floor(float64(req.BBox.LLy) * scale))
	return top, bottom
}

// Rasterizer renders glyphs from a single font.
//
// A Rasterizer is not safe for concurrent use.
type Rasterizer struct {
	font  *sfnt.Font
	scale float64
	z     *vector.Rasterizer
}

// New returns a Rasterizer which draws glyphs from f, scaled by the given
// factor from design units to pixels.
func New(f *sfnt.Font, scale float64) *Rasterizer {
	return &Rasterizer{
		font:  f,
		scale: scale,
		z:     vector.NewRasterizer(1, 1),
	}
}

// Rasterize renders the glyph described by req.
func (r *Rasterizer) Rasterize(req *Request) (*image.Gray, error) {
	if req.Advance < 0 {
		return nil, fmt.Errorf("negative advance width %d", req.Advance)
	}

	w, h := req.Size(r.scale)
	img := image.NewGray(image.Rect(0, 0, w, h))
	if req.BBox.IsZero() {
		return img, nil
	}

	p, err := glyphPath(r.font, req.GID)
	if err != nil {
		return nil, err
	}

	top, _ := req.rows(r.scale)
	dx := float64(req.LSB) - float64(req.BBox.LLx)
	tr := func(x, y float64) (float32, float32) {
		return float32((x + dx) * r.scale), float32(float64(top) - y*r.scale)
	}

	z := r.z
	z.Reset(w, h)
	open := false
	for cmd, pts := range p {
		switch cmd {
		case path.CmdMoveTo:
			if open {
				z.ClosePath()
			}
			z.MoveTo(tr(pts[0].X, pts[0].Y))
			open = true
		case path.CmdLineTo:
			z.LineTo(tr(pts[0].X, pts[0].Y))
		case path.CmdQuadTo:
			x1, y1 := tr(pts[0].X, pts[0].Y)
			x2, y2 := tr(pts[1].X, pts[1].Y)
			z.QuadTo(x1, y1, x2, y2)
		case path.CmdCubeTo:
			x1, y1 := tr(pts[0].X, pts[0].Y)
			x2, y2 := tr(pts[1].X, pts[1].Y)
			x3, y3 := tr(pts[2].X, pts[2].Y)
			z.CubeTo(x1, y1, x2, y2, x3, y3)
		case path.CmdClose:
			z.ClosePath()
			open = false
		}
	}
	if open {
		z.ClosePath()
	}

	// The vector package has a fast path for opaque sources drawn onto
	// alpha masks.  The coverage values are then copied into the gray image.
	mask := image.NewAlpha(img.Rect)
	z.Draw(mask, mask.Bounds(), image.Opaque, image.Point{})
	copy(img.Pix, mask.Pix)

	return img, nil
}

func glyphPath(f *sfnt.Font, gid glyph.ID) (path.Path, error) {
	if f.Outlines == nil {
		return nil, errors.New("font has no outlines")
	}
	if int(gid) >= f.NumGlyphs() {
		return nil, fmt.Errorf("glyph %d out of range", gid)
	}
	return f.Outlines.Path(gid), nil
}

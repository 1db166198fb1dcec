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
	"errors"
	"fmt"
	"math"

	"golang.org/x/exp/constraints"
	"seehuhn.de/go/postscript/funit"
	"seehuhn.de/go/sfnt"
)

// Metrics holds the values which are shared by all glyphs of one run.
type Metrics struct {
	UnitsPerEm uint16
	Ascender   funit.Int16
	Descender  funit.Int16

	// Scale converts font design units to pixels.
	Scale float64

	// Height is the height of every output image, in pixels.
	Height int
}

// GetMetrics computes the canvas metrics for the given font.  The ascender
// and descender overrides from cfg are applied and checked against the
// native hhea values.
func GetMetrics(f *sfnt.Font, cfg *Config) (*Metrics, error) {
	if f.UnitsPerEm == 0 {
		return nil, &FontLoadError{Path: cfg.FontPath, Err: errors.New("units per em is zero")}
	}

	asc := f.Ascent
	if cfg.Ascender != nil {
		a := *cfg.Ascender
		if a < int(f.Ascent) {
			return nil, &ConfigurationError{
				Field: "ascender",
				Err:   fmt.Errorf("%d is less than the font ascender %d", a, f.Ascent),
			}
		}
		if a > math.MaxInt16 {
			return nil, &ConfigurationError{Field: "ascender", Err: fmt.Errorf("%d is out of range", a)}
		}
		asc = funit.Int16(a)
	}

	desc := f.Descent
	if cfg.Descender != nil {
		d := *cfg.Descender
		if d > int(f.Descent) {
			return nil, &ConfigurationError{
				Field: "descender",
				Err:   fmt.Errorf("%d is greater than the font descender %d", d, f.Descent),
			}
		}
		if d < math.MinInt16 {
			return nil, &ConfigurationError{Field: "descender", Err: fmt.Errorf("%d is out of range", d)}
		}
		desc = funit.Int16(d)
	}

	scale := float64(cfg.PointSize) / float64(f.UnitsPerEm)
	height := CanvasHeight(asc, desc, scale)
	if height <= 0 {
		return nil, &ConfigurationError{
			Field: "point size",
			Err:   fmt.Errorf("%d gives an empty canvas (ascender %d, descender %d)", cfg.PointSize, asc, desc),
		}
	}

	m := &Metrics{
		UnitsPerEm: f.UnitsPerEm,
		Ascender:   asc,
		Descender:  desc,
		Scale:      scale,
		Height:     height,
	}
	return m, nil
}

// CanvasHeight returns the image height for a vertical extent from desc to
// asc, in pixels.  Halfway cases are rounded to even.
func CanvasHeight(asc, desc funit.Int16, scale float64) int {
	return int(math.RoundToEven(float64(int(asc)-int(desc)) * scale))
}

// floorDiv divides a by b, rounding towards negative infinity.
func floorDiv[T constraints.Signed](a, b T) T {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

func abs[T constraints.Signed](x T) T {
	if x < 0 {
		return -x
	}
	return x
}

// offsetTracker keeps the lowest centering offset seen so far.
type offsetTracker struct {
	height int
	lowest int
	seen   bool
}

// Offset returns the centering offset for an image of height h.
func (t *offsetTracker) Offset(h int) int {
	return floorDiv(t.height-h, 2)
}

// Observe records an image of height h.
func (t *offsetTracker) Observe(h int) {
	off := t.Offset(h)
	if !t.seen || off < t.lowest {
		t.lowest = off
		t.seen = true
	}
}

// Place returns the vertical position of an image of height h on the
// canvas.  Observe must have been called for h before.
func (t *offsetTracker) Place(h int) int {
	return t.Offset(h) - abs(t.lowest)
}

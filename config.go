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
	"log"
	"path/filepath"
	"strings"
)

// Charset restricts the set of exported code points.
type Charset int

// These are the supported character sets.
const (
	All       Charset = iota // every code point from U+0020 upwards
	ASCIIOnly                // U+0020 to U+007F
	ANSIOnly                 // U+0020 to U+00FF
)

func (c Charset) String() string {
	switch c {
	case All:
		return "all"
	case ASCIIOnly:
		return "ascii"
	case ANSIOnly:
		return "ansi"
	default:
		return fmt.Sprintf("Charset(%d)", int(c))
	}
}

// Contains reports whether r belongs to the character set.
// Control characters below U+0020 never belong to any set.
func (c Charset) Contains(r rune) bool {
	if r < 0x20 {
		return false
	}
	switch c {
	case ASCIIOnly:
		return r <= 0x7F
	case ANSIOnly:
		return r <= 0xFF
	default:
		return true
	}
}

// CharsetFromFlags maps the -ascii and -ansi command line switches to a
// Charset.
func CharsetFromFlags(ascii, ansi bool) (Charset, error) {
	switch {
	case ascii && ansi:
		return All, &ConfigurationError{Field: "charset", Err: errBothCharsets}
	case ascii:
		return ASCIIOnly, nil
	case ansi:
		return ANSIOnly, nil
	default:
		return All, nil
	}
}

// BearingMode selects how side bearings are treated before rasterization.
type BearingMode int

// These are the supported bearing modes.
const (
	// KeepBearings renders every glyph with its native advance width.
	KeepBearings BearingMode = iota

	// StripBearings sets the left and right side bearing of every glyph
	// with a visible outline to zero.
	StripBearings

	// ReduceEmpty strips bearings like StripBearings, reduces the right side
	// bearing of glyphs without visible outline by EmptyBearingReduction
	// design units, and removes one pixel column from every output image.
	ReduceEmpty
)

func (m BearingMode) String() string {
	switch m {
	case KeepBearings:
		return "keep"
	case StripBearings:
		return "strip"
	case ReduceEmpty:
		return "reduce-empty"
	default:
		return fmt.Sprintf("BearingMode(%d)", int(m))
	}
}

// Centering selects how the common vertical offset is found.
type Centering int

const (
	// Streaming uses the lowest offset among the glyphs processed so far.
	// The result depends on the glyph order.
	Streaming Centering = iota

	// TwoPass determines the lowest offset over all exported glyphs before
	// the first image is written.
	TwoPass
)

// Config describes one export run.
type Config struct {
	// FontPath is the font file.  Its base name without extension names
	// the output directory.
	FontPath string

	// PointSize is the requested size; one point maps to one pixel.
	PointSize int

	Charset  Charset
	Bearings BearingMode

	// Invert selects dark glyphs on a white background.  By default glyphs
	// are light on a black background.
	Invert bool

	// Ascender and Descender, if non-nil, replace the hhea metrics of the
	// font.  They are given in font design units and may only extend the
	// vertical extent of the font.
	Ascender  *int
	Descender *int

	Centering Centering

	// Trim removes background columns on both sides of every glyph image
	// which contains ink.
	Trim bool

	// OutDir is the directory in which the per-font output directory is
	// created.  The empty string means the current directory.
	OutDir string

	// Log, if not nil, receives progress messages.
	Log *log.Logger
}

// Check validates the settings which do not depend on the font.
func (cfg *Config) Check() error {
	if cfg.FontPath == "" {
		return &ConfigurationError{Field: "font", Err: errors.New("no font file given")}
	}
	if cfg.PointSize <= 0 {
		return &ConfigurationError{
			Field: "point size",
			Err:   fmt.Errorf("%d is not a positive integer", cfg.PointSize),
		}
	}
	switch cfg.Charset {
	case All, ASCIIOnly, ANSIOnly:
		// pass
	default:
		return &ConfigurationError{Field: "charset", Err: fmt.Errorf("unknown value %d", cfg.Charset)}
	}
	switch cfg.Bearings {
	case KeepBearings, StripBearings, ReduceEmpty:
		// pass
	default:
		return &ConfigurationError{Field: "bearing mode", Err: fmt.Errorf("unknown value %d", cfg.Bearings)}
	}
	switch cfg.Centering {
	case Streaming, TwoPass:
		// pass
	default:
		return &ConfigurationError{Field: "centering", Err: fmt.Errorf("unknown value %d", cfg.Centering)}
	}
	return nil
}

// OutputDir returns the directory which receives the PNG files.
func (cfg *Config) OutputDir() string {
	base := filepath.Base(cfg.FontPath)
	stem := strings.TrimSuffix(base, filepath.Ext(base))
	return filepath.Join(cfg.OutDir, stem)
}

func (cfg *Config) logf(format string, args ...any) {
	if cfg.Log != nil {
		cfg.Log.Printf(format, args...)
	}
}

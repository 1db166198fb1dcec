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
	"strconv"

	"seehuhn.de/go/sfnt/glyph"
)

var (
	errBothCharsets = errors.New("-ansi and -ascii cannot be used together")
	errNoOutlines   = errors.New("font has no glyph outlines")
	errNoCMap       = errors.New("font has no usable cmap table")
)

// ConfigurationError indicates an invalid or contradictory setting.
// No output is written when this error is returned.
type ConfigurationError struct {
	Field string
	Err   error
}

func (err *ConfigurationError) Error() string {
	if err.Field == "" {
		return "invalid configuration: " + err.Err.Error()
	}
	return "invalid " + err.Field + ": " + err.Err.Error()
}

func (err *ConfigurationError) Unwrap() error {
	return err.Err
}

// FontLoadError indicates that the font file could not be read.
type FontLoadError struct {
	Path string
	Err  error
}

func (err *FontLoadError) Error() string {
	return "cannot load font " + strconv.Quote(err.Path) + ": " + err.Err.Error()
}

func (err *FontLoadError) Unwrap() error {
	return err.Err
}

// RasterizationError indicates that a single glyph could not be rendered.
// The export continues with the next glyph.
type RasterizationError struct {
	Code rune
	GID  glyph.ID
	Err  error
}

func (err *RasterizationError) Error() string {
	return fmt.Sprintf("U+%04X (glyph %d): %v", err.Code, err.GID, err.Err)
}

func (err *RasterizationError) Unwrap() error {
	return err.Err
}

// FileWriteError indicates that an output file or directory could not be
// written.  Code is zero if the output directory itself failed.
type FileWriteError struct {
	Path string
	Code rune
	Err  error
}

func (err *FileWriteError) Error() string {
	return "cannot write " + strconv.Quote(err.Path) + ": " + err.Err.Error()
}

func (err *FileWriteError) Unwrap() error {
	return err.Err
}

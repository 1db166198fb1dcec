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

// Package fontdir locates font files in a directory.
package fontdir

import (
	"errors"
	"path/filepath"
)

// Patterns lists the file name patterns recognised as font files, in the
// order in which matches are reported.
var Patterns = []string{"*.ttf", "*.otf", "*.woff"}

// ErrNoFonts is returned by Find if the directory contains no font files.
var ErrNoFonts = errors.New("no usable font files found")

// Find returns the font files in dir.  Files are grouped by pattern, see
// [Patterns], and sorted by name within each group.  The returned names
// are relative to dir.
func Find(dir string) ([]string, error) {
	var res []string
	for _, pat := range Patterns {
		matches, err := filepath.Glob(filepath.Join(dir, pat))
		if err != nil {
			return nil, err
		}
		for _, m := range matches {
			rel, err := filepath.Rel(dir, m)
			if err != nil {
				return nil, err
			}
			res = append(res, rel)
		}
	}
	if len(res) == 0 {
		return nil, ErrNoFonts
	}
	return res, nil
}

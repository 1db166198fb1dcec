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

package fontdir

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestFind(t *testing.T) {
	dir := t.TempDir()
	names := []string{
		"b.woff", "z.ttf", "a.ttf", "m.otf", "notes.txt", "font.ttc", "x.ttf.bak",
	}
	for _, name := range names {
		err := os.WriteFile(filepath.Join(dir, name), nil, 0o644)
		if err != nil {
			t.Fatal(err)
		}
	}

	got, err := Find(dir)
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"a.ttf", "z.ttf", "m.otf", "b.woff"}
	if d := cmp.Diff(want, got); d != "" {
		t.Errorf("(-want +got):\n%s", d)
	}
}

func TestFindEmpty(t *testing.T) {
	dir := t.TempDir()
	err := os.WriteFile(filepath.Join(dir, "readme.md"), nil, 0o644)
	if err != nil {
		t.Fatal(err)
	}

	_, err = Find(dir)
	if !errors.Is(err, ErrNoFonts) {
		t.Errorf("expected ErrNoFonts, got %v", err)
	}
}

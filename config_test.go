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
	"path/filepath"
	"testing"
)

func TestCharsetFromFlags(t *testing.T) {
	tests := []struct {
		ascii, ansi bool
		want        Charset
		wantErr     bool
	}{
		{false, false, All, false},
		{true, false, ASCIIOnly, false},
		{false, true, ANSIOnly, false},
		{true, true, All, true},
	}
	for _, test := range tests {
		cs, err := CharsetFromFlags(test.ascii, test.ansi)
		if test.wantErr {
			var cfgErr *ConfigurationError
			if !errors.As(err, &cfgErr) {
				t.Errorf("ascii=%t ansi=%t: expected ConfigurationError, got %v",
					test.ascii, test.ansi, err)
			}
			continue
		}
		if err != nil {
			t.Errorf("ascii=%t ansi=%t: %v", test.ascii, test.ansi, err)
		} else if cs != test.want {
			t.Errorf("ascii=%t ansi=%t: got %s, want %s", test.ascii, test.ansi, cs, test.want)
		}
	}
}

func TestCharsetContains(t *testing.T) {
	tests := []struct {
		cs   Charset
		r    rune
		want bool
	}{
		{All, 0x00, false},
		{All, 0x1F, false},
		{All, 0x20, true},
		{All, 0x1F600, true},
		{ASCIIOnly, 0x1F, false},
		{ASCIIOnly, 0x7F, true},
		{ASCIIOnly, 0x80, false},
		{ANSIOnly, 0x7F, true},
		{ANSIOnly, 0xFF, true},
		{ANSIOnly, 0x100, false},
	}
	for _, test := range tests {
		if got := test.cs.Contains(test.r); got != test.want {
			t.Errorf("%s.Contains(U+%04X) = %t, want %t", test.cs, test.r, got, test.want)
		}
	}
}

func TestConfigCheck(t *testing.T) {
	good := Config{FontPath: "a.ttf", PointSize: 12}
	if err := good.Check(); err != nil {
		t.Fatal(err)
	}

	bad := []Config{
		{PointSize: 12},
		{FontPath: "a.ttf"},
		{FontPath: "a.ttf", PointSize: -3},
		{FontPath: "a.ttf", PointSize: 12, Charset: Charset(7)},
		{FontPath: "a.ttf", PointSize: 12, Bearings: BearingMode(-1)},
		{FontPath: "a.ttf", PointSize: 12, Centering: Centering(2)},
	}
	for i, cfg := range bad {
		err := cfg.Check()
		var cfgErr *ConfigurationError
		if !errors.As(err, &cfgErr) {
			t.Errorf("%d: expected ConfigurationError, got %v", i, err)
		}
	}
}

func TestOutputDir(t *testing.T) {
	tests := []struct {
		fontPath, outDir, want string
	}{
		{"DejaVuSans.ttf", "", "DejaVuSans"},
		{"fonts/Go-Regular.otf", "", "Go-Regular"},
		{"x.y.woff", "out", filepath.Join("out", "x.y")},
	}
	for _, test := range tests {
		cfg := Config{FontPath: test.fontPath, OutDir: test.outDir}
		if got := cfg.OutputDir(); got != test.want {
			t.Errorf("%q in %q: got %q, want %q", test.fontPath, test.outDir, got, test.want)
		}
	}
}

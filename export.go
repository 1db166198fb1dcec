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
	"bytes"
	"fmt"
	"image"
	"image/color"
	"os"
	"path/filepath"

	"golang.org/x/text/unicode/runenames"
	"seehuhn.de/go/sfnt"

	"seehuhn.de/go/font2png/canvas"
	"seehuhn.de/go/font2png/raster"
	"seehuhn.de/go/font2png/woff"
)

// Result summarises an export run.
type Result struct {
	// Dir is the directory containing the PNG files.
	Dir string

	Metrics *Metrics

	// Written lists the exported files in the order they were written.
	Written []File

	// Skipped lists the errors for glyphs which could not be exported.
	// Each error is either a *RasterizationError or a *FileWriteError.
	Skipped []error
}

// File describes one exported glyph image.
type File struct {
	Code   rune
	Path   string
	Width  int
	Height int
}

// FileName returns the name of the PNG file for code point r.
func FileName(r rune) string {
	return fmt.Sprintf("%05x.png", r)
}

// Export loads the font given in cfg and writes one PNG file per eligible
// glyph.
func Export(cfg Config) (*Result, error) {
	err := cfg.Check()
	if err != nil {
		return nil, err
	}

	f, err := LoadFont(cfg.FontPath)
	if err != nil {
		return nil, err
	}
	return exportFont(f, &cfg, nil)
}

// LoadFont reads a TrueType, OpenType or WOFF font file.
func LoadFont(fname string) (*sfnt.Font, error) {
	data, err := os.ReadFile(fname)
	if err != nil {
		return nil, &FontLoadError{Path: fname, Err: err}
	}
	if woff.IsWOFF(data) {
		data, err = woff.ToSFNT(data)
		if err != nil {
			return nil, &FontLoadError{Path: fname, Err: err}
		}
	}
	f, err := sfnt.Read(bytes.NewReader(data))
	if err != nil {
		return nil, &FontLoadError{Path: fname, Err: err}
	}
	return f, nil
}

// ExportFont writes one PNG file per eligible glyph of f.  The font file
// name in cfg is only used to name the output directory.
func ExportFont(f *sfnt.Font, cfg Config) (*Result, error) {
	err := cfg.Check()
	if err != nil {
		return nil, err
	}
	return exportFont(f, &cfg, nil)
}

// rasterizeFunc renders a single glyph.  It can be replaced in tests.
type rasterizeFunc func(*raster.Request) (*image.Gray, error)

func exportFont(f *sfnt.Font, cfg *Config, rasterize rasterizeFunc) (*Result, error) {
	if f.Outlines == nil {
		return nil, &FontLoadError{Path: cfg.FontPath, Err: errNoOutlines}
	}

	m, err := GetMetrics(f, cfg)
	if err != nil {
		return nil, err
	}
	cfg.logf("exporting %s at %dpt: scale %g, canvas height %d",
		cfg.FontPath, cfg.PointSize, m.Scale, m.Height)

	if rasterize == nil {
		rasterize = raster.New(f, m.Scale).Rasterize
	}

	glyphs, err := Glyphs(f, cfg.Charset)
	if err != nil {
		return nil, &FontLoadError{Path: cfg.FontPath, Err: err}
	}

	dir := cfg.OutputDir()
	err = os.MkdirAll(dir, 0o755)
	if err != nil {
		return nil, &FileWriteError{Path: dir, Err: err}
	}

	res := &Result{
		Dir:     dir,
		Metrics: m,
	}

	offsets := &offsetTracker{height: m.Height}
	out := &writer{
		cfg:     cfg,
		dir:     dir,
		height:  m.Height,
		bg:      canvas.Background(cfg.Invert),
		offsets: offsets,
		res:     res,
	}

	var pending []rendered
	for _, g := range glyphs {
		img, err := rasterize(g.Request(cfg.Bearings.Adjust(g)))
		if err != nil {
			res.skip(cfg, &RasterizationError{Code: g.Code, GID: g.GID, Err: err})
			continue
		}
		if cfg.Invert {
			canvas.Invert(img)
		}

		offsets.Observe(img.Bounds().Dy())
		if cfg.Centering == TwoPass {
			pending = append(pending, rendered{g, img})
			continue
		}
		out.write(g, img)
	}
	for _, p := range pending {
		out.write(p.glyph, p.img)
	}

	return res, nil
}

type rendered struct {
	glyph *Glyph
	img   *image.Gray
}

// writer places glyph images on the canvas and stores them as PNG files.
type writer struct {
	cfg     *Config
	dir     string
	height  int
	bg      color.Gray
	offsets *offsetTracker
	res     *Result
}

func (w *writer) write(g *Glyph, img *image.Gray) {
	cfg := w.cfg

	b := img.Bounds()
	y := w.offsets.Place(b.Dy())
	width := max(b.Dx()-cfg.Bearings.trimWidth(), 1)
	out := canvas.Compose(img, width, w.height, y, w.bg)
	if cfg.Trim && !g.IsBlank() {
		out = canvas.TrimColumns(out, w.bg)
	}

	fname := filepath.Join(w.dir, FileName(g.Code))
	err := canvas.WritePNG(fname, out)
	if err != nil {
		w.res.skip(cfg, &FileWriteError{Path: fname, Code: g.Code, Err: err})
		return
	}

	ob := out.Bounds()
	w.res.Written = append(w.res.Written, File{
		Code:   g.Code,
		Path:   fname,
		Width:  ob.Dx(),
		Height: ob.Dy(),
	})
	cfg.logf("%s  U+%04X %s  %dx%d", FileName(g.Code), g.Code, runenames.Name(g.Code), ob.Dx(), ob.Dy())
}

func (res *Result) skip(cfg *Config, err error) {
	res.Skipped = append(res.Skipped, err)
	cfg.logf("skipping %v", err)
}

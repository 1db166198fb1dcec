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

// Font2png exports the glyphs of a font as individual PNG images.
package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"

	"seehuhn.de/go/font2png"
	"seehuhn.de/go/font2png/tools/internal/buildinfo"
	"seehuhn.de/go/font2png/tools/internal/fontdir"
	"seehuhn.de/go/font2png/tools/internal/profile"
	"seehuhn.de/go/font2png/tools/internal/prompt"
)

var (
	ansiArg      = flag.Bool("ansi", false, "export only the ANSI character set (up to U+00FF)")
	asciiArg     = flag.Bool("ascii", false, "export only the basic ASCII character set (up to U+007F)")
	invertArg    = flag.Bool("invert", false, "export dark glyphs on a white background")
	uqmArg       = flag.Bool("uqm", false, "strip bearings, shrink blank glyphs, and remove one pixel column")
	keepArg      = flag.Bool("keep-bearings", false, "keep the side bearings of the font")
	trimArg      = flag.Bool("trim", false, "remove background columns on both sides of each glyph")
	twoPassArg   = flag.Bool("two-pass", false, "center all glyphs using the lowest offset of the whole font")
	fontArg      = flag.String("font", "", "font `file` to export (default: ask)")
	sizeArg      = flag.Int("size", 0, "point size (default: ask)")
	outArg       = flag.String("out", "", "create the output directory inside `dir`")
	verboseArg   = flag.Bool("v", false, "list every exported glyph")
	cpuprofile   = flag.String("cpuprofile", "", "write cpu profile to `file`")
	memprofile   = flag.String("memprofile", "", "write memory profile to `file`")
	ascenderArg  optionalInt
	descenderArg optionalInt
)

func init() {
	flag.Var(&ascenderArg, "ascender", "use `units` instead of the hhea ascender of the font")
	flag.Var(&descenderArg, "descender", "use `units` instead of the hhea descender of the font")
}

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "font2png: export font glyphs as individual PNG files\n")
		fmt.Fprintf(os.Stderr, "%s\n\n", buildinfo.Short("font2png"))
		fmt.Fprintf(os.Stderr, "Usage:\n")
		fmt.Fprintf(os.Stderr, "  font2png [options]\n\n")
		fmt.Fprintf(os.Stderr, "Without -font, the fonts in the current directory are listed\n")
		fmt.Fprintf(os.Stderr, "and one of them can be chosen interactively.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  font2png -ascii -invert\n")
		fmt.Fprintf(os.Stderr, "  font2png -font DejaVuSans.ttf -size 16 -uqm\n")
	}
	flag.Parse()

	if flag.NArg() > 0 {
		flag.Usage()
		os.Exit(1)
	}

	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := configFromFlags()
	if err != nil {
		return err
	}

	session, err := profile.Start(*cpuprofile, *memprofile)
	if err != nil {
		return err
	}
	defer func() {
		if err := session.Stop(); err != nil {
			fmt.Fprintln(os.Stderr, err)
		}
	}()

	var p *prompt.Prompter
	if cfg.FontPath == "" {
		files, err := fontdir.Find(".")
		if errors.Is(err, fontdir.ErrNoFonts) {
			return errors.New("there are no usable font files in the current directory")
		} else if err != nil {
			return err
		}
		p = prompt.Stdio()
		cfg.FontPath, err = p.ChooseFont(files)
		if err != nil {
			return err
		}
	}
	if cfg.PointSize == 0 {
		if p == nil {
			p = prompt.Stdio()
		}
		cfg.PointSize, err = p.PointSize()
		if err != nil {
			return err
		}
	}

	fmt.Printf("\nExporting %s with a size of %dpt\n\n", cfg.FontPath, cfg.PointSize)

	res, err := font2png.Export(cfg)
	if err != nil {
		return err
	}

	fmt.Printf("%d glyphs written to %s (%dpx high)\n",
		len(res.Written), res.Dir, res.Metrics.Height)
	if n := len(res.Skipped); n > 0 {
		if cfg.Log == nil {
			for _, err := range res.Skipped {
				fmt.Fprintf(os.Stderr, "warning: %v\n", err)
			}
		}
		return fmt.Errorf("%d glyphs could not be exported", n)
	}
	return nil
}

// configFromFlags checks the command line options.  No file system access
// happens here, so that contradictory options are reported before any work
// is done.
func configFromFlags() (font2png.Config, error) {
	cfg := font2png.Config{
		FontPath: *fontArg,
		Invert:   *invertArg,
		Trim:     *trimArg,
		OutDir:   *outArg,
	}

	var err error
	cfg.Charset, err = font2png.CharsetFromFlags(*asciiArg, *ansiArg)
	if err != nil {
		return cfg, err
	}

	cfg.Bearings, err = bearingsFromFlags(*keepArg, *uqmArg)
	if err != nil {
		return cfg, err
	}

	if *sizeArg < 0 || (*sizeArg == 0 && isFlagSet("size")) {
		return cfg, &font2png.ConfigurationError{
			Field: "point size",
			Err:   fmt.Errorf("%d is not a positive integer", *sizeArg),
		}
	}
	cfg.PointSize = *sizeArg

	if *twoPassArg {
		cfg.Centering = font2png.TwoPass
	}
	cfg.Ascender = ascenderArg.Ptr()
	cfg.Descender = descenderArg.Ptr()
	if *verboseArg {
		cfg.Log = log.New(os.Stderr, "", 0)
	}
	return cfg, nil
}

func bearingsFromFlags(keep, uqm bool) (font2png.BearingMode, error) {
	switch {
	case keep && uqm:
		return 0, &font2png.ConfigurationError{
			Field: "bearing mode",
			Err:   errors.New("-keep-bearings and -uqm cannot be used together"),
		}
	case keep:
		return font2png.KeepBearings, nil
	case uqm:
		return font2png.ReduceEmpty, nil
	default:
		return font2png.StripBearings, nil
	}
}

func isFlagSet(name string) bool {
	found := false
	flag.Visit(func(f *flag.Flag) {
		if f.Name == name {
			found = true
		}
	})
	return found
}

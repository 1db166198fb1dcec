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

// Package prompt asks the user for the font and point size to export.
package prompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"golang.org/x/term"
)

// ErrInvalid is returned if an answer cannot be used and the prompter does
// not retry.
var ErrInvalid = errors.New("invalid answer")

// Prompter reads answers line by line.
type Prompter struct {
	in  *bufio.Scanner
	out io.Writer

	// Retry makes the prompter repeat a question after an invalid answer
	// instead of failing.
	Retry bool
}

// New returns a Prompter which reads from in and writes questions to out.
func New(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{
		in:  bufio.NewScanner(in),
		out: out,
	}
}

// Stdio returns a Prompter for standard input and output.  Invalid answers
// are only retried if standard input is a terminal.
func Stdio() *Prompter {
	p := New(os.Stdin, os.Stdout)
	p.Retry = term.IsTerminal(int(os.Stdin.Fd()))
	return p
}

// ChooseFont lists the given files and returns the one selected by the user.
func (p *Prompter) ChooseFont(files []string) (string, error) {
	if len(files) == 0 {
		return "", errors.New("no fonts to choose from")
	}

	fmt.Fprintln(p.out)
	fmt.Fprintln(p.out, "Pick a font from the list to work with...")
	fmt.Fprintln(p.out)
	for i, name := range files {
		fmt.Fprintf(p.out, "\t%d) %s\n", i, name)
	}
	fmt.Fprintln(p.out)

	question := fmt.Sprintf("Choose between (0 - %d) : ", len(files)-1)
	idx, err := p.askInt(question, func(i int) bool {
		return i >= 0 && i < len(files)
	})
	if err != nil {
		return "", err
	}
	return files[idx], nil
}

// PointSize asks for a positive point size.
func (p *Prompter) PointSize() (int, error) {
	fmt.Fprintln(p.out)
	return p.askInt("Enter Font Size In Point: ", func(i int) bool {
		return i > 0
	})
}

func (p *Prompter) askInt(question string, valid func(int) bool) (int, error) {
	for {
		fmt.Fprint(p.out, question)
		if !p.in.Scan() {
			if err := p.in.Err(); err != nil {
				return 0, err
			}
			return 0, io.ErrUnexpectedEOF
		}

		answer := strings.TrimSpace(p.in.Text())
		i, err := strconv.Atoi(answer)
		if err == nil && valid(i) {
			return i, nil
		}
		if !p.Retry {
			return 0, fmt.Errorf("%w: %q", ErrInvalid, answer)
		}
	}
}

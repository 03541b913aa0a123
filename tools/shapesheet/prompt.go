// seehuhn.de/go/shapesheet - PDF sheets with randomly placed shapes
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

package main

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"seehuhn.de/go/shapesheet/batch"
	"seehuhn.de/go/shapesheet/shape"
)

// Limits for the interactive prompt.
const (
	maxPromptVersions = 10
	maxPromptShapes   = 20
)

// prompter asks the user for the parameters of a batch.
// Invalid answers are rejected and the question is asked again.
type prompter struct {
	in  *bufio.Scanner
	out io.Writer
}

func newPrompter(r io.Reader, w io.Writer) *prompter {
	return &prompter{
		in:  bufio.NewScanner(r),
		out: w,
	}
}

// fill asks for all fields of req.
func (p *prompter) fill(req *batch.Request) error {
	name, err := p.text("Base name for the PDF files")
	if err != nil {
		return err
	}
	req.BaseName = name

	req.Versions, err = p.number("Number of versions", 1, maxPromptVersions)
	if err != nil {
		return err
	}
	req.ShapesPerPage, err = p.number("Number of shapes per page", 1, maxPromptShapes)
	if err != nil {
		return err
	}

	kinds := shape.All()
	fmt.Fprintln(p.out, "Available shapes:")
	for i, k := range kinds {
		fmt.Fprintf(p.out, "  %d. %s\n", i+1, k)
	}
	choice, err := p.number("Shape", 1, len(kinds))
	if err != nil {
		return err
	}
	req.Shape = kinds[choice-1].String()

	req.Combined = false
	if req.Versions > 1 {
		fmt.Fprintln(p.out, "Output:")
		fmt.Fprintln(p.out, "  1. one file per version")
		fmt.Fprintln(p.out, "  2. all versions in one file")
		choice, err = p.number("Output", 1, 2)
		if err != nil {
			return err
		}
		req.Combined = choice == 2
	}
	return nil
}

// text asks for a non-empty line of text.
func (p *prompter) text(question string) (string, error) {
	for {
		answer, err := p.ask(question)
		if err != nil {
			return "", err
		}
		if answer != "" {
			return answer, nil
		}
		fmt.Fprintln(p.out, "Please enter a name.")
	}
}

// number asks for an integer in the range lo..hi.
func (p *prompter) number(question string, lo, hi int) (int, error) {
	q := fmt.Sprintf("%s (%d-%d)", question, lo, hi)
	for {
		answer, err := p.ask(q)
		if err != nil {
			return 0, err
		}
		n, err := strconv.Atoi(answer)
		if err == nil && n >= lo && n <= hi {
			return n, nil
		}
		fmt.Fprintf(p.out, "Please enter a number between %d and %d.\n", lo, hi)
	}
}

func (p *prompter) ask(question string) (string, error) {
	fmt.Fprintf(p.out, "%s: ", question)
	if !p.in.Scan() {
		if err := p.in.Err(); err != nil {
			return "", err
		}
		return "", io.ErrUnexpectedEOF
	}
	return strings.TrimSpace(p.in.Text()), nil
}

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

// Package inspect reads generated PDF files back and reports what has been
// drawn on each page.
package inspect

import (
	"fmt"

	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/graphics/content"
	"seehuhn.de/go/pdf/pagetree"
)

// Report summarizes the contents of one PDF file.
type Report struct {
	Title string
	Pages []*Page
}

// Page summarizes the contents of one page.
type Page struct {
	// Shapes is the number of painted paths on the page.
	Shapes int

	// Anchors lists the start point of every painted path, in drawing
	// order.  Two pages with the same anchors show the same arrangement.
	Anchors []vec.Vec2
}

// Shapes returns the total number of shapes in the file.
func (r *Report) Shapes() int {
	n := 0
	for _, p := range r.Pages {
		n += p.Shapes
	}
	return n
}

// File reads the named PDF file.
func File(fname string) (*Report, error) {
	r, err := pdf.Open(fname, nil)
	if err != nil {
		return nil, err
	}
	defer r.Close()

	res := &Report{}
	if info := r.GetMeta().Info; info != nil {
		res.Title = string(info.Title)
	}

	numPages, err := pagetree.NumPages(r)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", fname, err)
	}
	for i := range numPages {
		dict, err := pagetree.GetPage(r, i)
		if err != nil {
			return nil, fmt.Errorf("%s: page %d: %w", fname, i+1, err)
		}
		body, err := pagetree.ContentStream(r, dict)
		if err != nil {
			return nil, fmt.Errorf("%s: page %d: %w", fname, i+1, err)
		}
		stream, err := content.ReadStream(body)
		if err != nil {
			return nil, fmt.Errorf("%s: page %d: %w", fname, i+1, err)
		}
		res.Pages = append(res.Pages, summarize(stream))
	}
	return res, nil
}

// summarize counts the painted paths in a content stream.
func summarize(stream content.Stream) *Page {
	p := &Page{}
	var start vec.Vec2
	haveStart := false
	for _, op := range stream {
		switch op.Name {
		case content.OpMoveTo, content.OpRectangle:
			if !haveStart && len(op.Args) >= 2 {
				x, okX := number(op.Args[0])
				y, okY := number(op.Args[1])
				if okX && okY {
					start = vec.Vec2{X: x, Y: y}
					haveStart = true
				}
			}
		case content.OpFill, content.OpFillCompat, content.OpFillEvenOdd,
			content.OpFillAndStroke, content.OpFillAndStrokeEvenOdd,
			content.OpCloseFillAndStroke, content.OpCloseFillAndStrokeEvenOdd:
			p.Shapes++
			p.Anchors = append(p.Anchors, start)
			haveStart = false
		case content.OpStroke, content.OpCloseAndStroke, content.OpEndPath:
			haveStart = false
		}
	}
	return p
}

func number(obj pdf.Object) (float64, bool) {
	switch x := obj.(type) {
	case pdf.Integer:
		return float64(x), true
	case pdf.Real:
		return float64(x), true
	case pdf.Number:
		return float64(x), true
	}
	return 0, false
}

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

// Package fpdfdoc implements a rendering backend based on
// github.com/go-pdf/fpdf.
//
// The fpdf library uses a coordinate system with the origin in the top left
// corner of the page.  Placements are converted from PDF coordinates, with
// y pointing upwards, before drawing.
package fpdfdoc

import (
	"errors"
	"io"

	"github.com/go-pdf/fpdf"

	"seehuhn.de/go/shapesheet/render"
	"seehuhn.de/go/shapesheet/scatter"
	"seehuhn.de/go/shapesheet/shape"
)

func init() {
	render.Register(Backend{})
}

// Backend writes documents using the fpdf library.
type Backend struct{}

// Name implements the [render.Backend] interface.
func (Backend) Name() string {
	return "fpdf"
}

// Create implements the [render.Backend] interface.
func (Backend) Create(w io.Writer, paper render.Paper, style render.Style, info *render.Info) (render.Surface, error) {
	doc := fpdf.NewCustom(&fpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "pt",
		Size:           fpdf.SizeType{Wd: paper.Width, Ht: paper.Height},
	})
	doc.SetAutoPageBreak(false, 0)
	doc.SetMargins(0, 0, 0)
	if info != nil {
		doc.SetTitle(info.Title, true)
		doc.SetSubject(info.Subject, true)
		doc.SetCreator(info.Creator, true)
		doc.SetProducer(info.Producer, true)
		if !info.Created.IsZero() {
			doc.SetCreationDate(info.Created)
			doc.SetModificationDate(info.Created)
		}
	}
	if err := doc.Error(); err != nil {
		return nil, err
	}

	return &document{
		doc:    doc,
		w:      w,
		height: paper.Height,
		style:  style,
	}, nil
}

type document struct {
	doc    *fpdf.Fpdf
	w      io.Writer
	height float64
	style  render.Style
	closed bool
}

var errClosed = errors.New("document already closed")

// NewPage implements the [render.Surface] interface.
func (d *document) NewPage() error {
	if d.closed {
		return errClosed
	}
	d.doc.AddPage()

	s := d.style
	d.doc.SetLineWidth(s.LineWidth)
	r, g, b := s.Stroke.RGB8()
	d.doc.SetDrawColor(r, g, b)
	r, g, b = s.Fill.RGB8()
	d.doc.SetFillColor(r, g, b)
	return d.doc.Error()
}

// DrawShape implements the [render.Surface] interface.
func (d *document) DrawShape(p scatter.Placement) error {
	if d.closed {
		return errClosed
	}
	if d.doc.PageNo() == 0 {
		return render.ErrNoPage
	}

	box := p.Box()
	switch p.Shape.Kind {
	case shape.Circle:
		r := p.Shape.Size / 2
		d.doc.Ellipse(box.LLx+r, d.height-(box.LLy+r), r, r, 0, "DF")
	default:
		outline := p.Shape.Kind.Outline(box)
		if outline == nil {
			return shape.ErrUnsupported
		}
		pts := make([]fpdf.PointType, len(outline))
		for i, v := range outline {
			pts[i] = fpdf.PointType{X: v.X, Y: d.height - v.Y}
		}
		d.doc.Polygon(pts, "DF")
	}
	return d.doc.Error()
}

// Close implements the [render.Surface] interface.
func (d *document) Close() error {
	if d.closed {
		return errClosed
	}
	if d.doc.PageNo() == 0 {
		err := d.NewPage()
		if err != nil {
			return err
		}
	}
	d.closed = true
	return d.doc.Output(d.w)
}

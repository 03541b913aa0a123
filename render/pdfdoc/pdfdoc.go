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

// Package pdfdoc implements the default rendering backend, based on
// seehuhn.de/go/pdf.
//
// Every page gets its own content stream, built with the content stream
// builder of the PDF library.  Document metadata is written both as a
// document information dictionary and as an XMP packet.
package pdfdoc

import (
	"errors"
	"io"

	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/graphics/color"
	"seehuhn.de/go/pdf/graphics/content"
	"seehuhn.de/go/pdf/graphics/content/builder"
	"seehuhn.de/go/pdf/page"
	"seehuhn.de/go/pdf/pagetree"

	"seehuhn.de/go/shapesheet/render"
	"seehuhn.de/go/shapesheet/scatter"
	"seehuhn.de/go/shapesheet/shape"
)

func init() {
	render.Register(Backend{})
}

// Backend writes documents using seehuhn.de/go/pdf.
type Backend struct {
	// Version is the PDF version of generated files.
	// The zero value selects PDF 1.7.
	Version pdf.Version
}

// Name implements the [render.Backend] interface.
func (Backend) Name() string {
	return "pdf"
}

// Create implements the [render.Backend] interface.
//
// If w implements io.Closer, it may be closed when the document is closed.
// Callers which need to keep w open should hide the Close method.
func (b Backend) Create(w io.Writer, paper render.Paper, style render.Style, info *render.Info) (render.Surface, error) {
	v := b.Version
	if v == 0 {
		v = pdf.V1_7
	}
	out, err := pdf.NewWriter(w, v, nil)
	if err != nil {
		return nil, err
	}

	rm := pdf.NewResourceManager(out)
	doc := &document{
		out:   out,
		rm:    rm,
		tree:  pagetree.NewWriter(out, rm),
		paper: &pdf.Rectangle{URx: paper.Width, URy: paper.Height},
		style: style,
		info:  info,
	}
	return doc, nil
}

// document is a multi-page PDF file which is being written.
type document struct {
	out   *pdf.Writer
	rm    *pdf.ResourceManager
	tree  *pagetree.Writer
	paper *pdf.Rectangle
	style render.Style
	info  *render.Info

	// the page currently being drawn, or nil
	b  *builder.Builder
	pg *page.Page

	numPages int
	closed   bool
}

var errClosed = errors.New("document already closed")

// NewPage implements the [render.Surface] interface.
func (d *document) NewPage() error {
	if d.closed {
		return errClosed
	}
	err := d.closePage()
	if err != nil {
		return err
	}

	res := &content.Resources{}
	d.b = builder.New(content.Page, res)
	d.pg = &page.Page{
		MediaBox:  d.paper,
		Resources: res,
	}

	s := d.style
	d.b.SetLineWidth(s.LineWidth)
	d.b.SetStrokeColor(color.DeviceRGB(s.Stroke.R, s.Stroke.G, s.Stroke.B))
	d.b.SetFillColor(color.DeviceRGB(s.Fill.R, s.Fill.G, s.Fill.B))
	return d.b.Err
}

// DrawShape implements the [render.Surface] interface.
func (d *document) DrawShape(p scatter.Placement) error {
	if d.closed {
		return errClosed
	}
	if d.b == nil {
		return render.ErrNoPage
	}

	box := p.Box()
	switch p.Shape.Kind {
	case shape.Circle:
		r := p.Shape.Size / 2
		d.b.Circle(box.LLx+r, box.LLy+r, r)
	default:
		outline := p.Shape.Kind.Outline(box)
		if outline == nil {
			return shape.ErrUnsupported
		}
		d.b.MoveTo(outline[0].X, outline[0].Y)
		for _, v := range outline[1:] {
			d.b.LineTo(v.X, v.Y)
		}
		d.b.ClosePath()
	}
	d.b.FillAndStroke()

	return d.b.Err
}

// closePage appends the current page, if any, to the page tree.
func (d *document) closePage() error {
	if d.b == nil {
		return nil
	}
	if d.b.Err != nil {
		return d.b.Err
	}

	d.pg.Contents = []*page.Content{{Operators: d.b.Stream}}
	err := d.tree.AppendPage(d.pg)
	d.b = nil
	d.pg = nil
	if err != nil {
		return err
	}
	d.numPages++
	return nil
}

// Close implements the [render.Surface] interface.
func (d *document) Close() error {
	if d.closed {
		return errClosed
	}

	// A PDF file needs at least one page.
	if d.b == nil && d.numPages == 0 {
		err := d.NewPage()
		if err != nil {
			return err
		}
	}
	err := d.closePage()
	if err != nil {
		return err
	}
	d.closed = true

	ref, err := d.tree.Close()
	if err != nil {
		return err
	}
	meta := d.out.GetMeta()
	meta.Catalog.Pages = ref

	if d.info != nil {
		meta.Info = &pdf.Info{
			Title:        d.info.Title,
			Subject:      d.info.Subject,
			Creator:      d.info.Creator,
			Producer:     d.info.Producer,
			CreationDate: d.info.Created,
			ModDate:      d.info.Created,
		}
		err = writeMetadata(d.out, d.info)
		if err != nil {
			return err
		}
	}

	err = d.rm.Close()
	if err != nil {
		return err
	}
	return d.out.Close()
}

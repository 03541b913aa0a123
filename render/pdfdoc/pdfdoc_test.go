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

package pdfdoc_test

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf"

	"seehuhn.de/go/shapesheet/inspect"
	"seehuhn.de/go/shapesheet/render"
	"seehuhn.de/go/shapesheet/render/pdfdoc"
	"seehuhn.de/go/shapesheet/scatter"
	"seehuhn.de/go/shapesheet/shape"
)

func writeFile(t *testing.T, b render.Backend, info *render.Info, pages []scatter.Page) string {
	t.Helper()

	fname := filepath.Join(t.TempDir(), "test.pdf")
	buf := &bytes.Buffer{}
	err := render.Write(buf, b, render.A4, render.DefaultStyle, info, pages)
	if err != nil {
		t.Fatal(err)
	}
	err = os.WriteFile(fname, buf.Bytes(), 0o644)
	if err != nil {
		t.Fatal(err)
	}
	return fname
}

func TestRoundTrip(t *testing.T) {
	var pages []scatter.Page
	var want [][]vec.Vec2
	for i, kind := range shape.All() {
		var page scatter.Page
		var anchors []vec.Vec2
		for j := range i + 1 {
			p := scatter.Placement{
				X:     float64(50 + 60*j),
				Y:     float64(100 + 10*i),
				Shape: shape.Spec{Kind: kind, Size: 40},
			}
			page = append(page, p)
			if kind == shape.Circle {
				// the circle path starts at the rightmost point
				anchors = append(anchors, vec.Vec2{X: p.X + 40, Y: p.Y + 20})
			} else {
				anchors = append(anchors, kind.Outline(p.Box())[0])
			}
		}
		pages = append(pages, page)
		want = append(want, anchors)
	}

	info := &render.Info{
		Title:      "round trip",
		Subject:    "test",
		Creator:    "pdfdoc_test",
		Created:    time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC),
		DocumentID: "c5ab4d1e-6a8e-4b8f-9a62-0b0e0f6c1c29",
		InstanceID: "0f1e2d3c-4b5a-4968-8776-655443322110",
	}
	fname := writeFile(t, pdfdoc.Backend{}, info, pages)

	rep, err := inspect.File(fname)
	if err != nil {
		t.Fatal(err)
	}
	if rep.Title != info.Title {
		t.Errorf("got title %q, want %q", rep.Title, info.Title)
	}
	if len(rep.Pages) != len(pages) {
		t.Fatalf("got %d pages, want %d", len(rep.Pages), len(pages))
	}
	for i, page := range rep.Pages {
		if page.Shapes != len(pages[i]) {
			t.Errorf("page %d: got %d shapes, want %d", i+1, page.Shapes, len(pages[i]))
		}
		if d := cmp.Diff(want[i], page.Anchors, cmp.Comparer(closeEnough)); d != "" {
			t.Errorf("page %d: anchors (-want +got):\n%s", i+1, d)
		}
	}
}

func closeEnough(a, b vec.Vec2) bool {
	const ε = 0.1
	d := a.Sub(b)
	return d.X*d.X+d.Y*d.Y < ε*ε
}

func TestEmptyDocument(t *testing.T) {
	fname := writeFile(t, pdfdoc.Backend{}, nil, nil)

	rep, err := inspect.File(fname)
	if err != nil {
		t.Fatal(err)
	}
	if len(rep.Pages) != 1 || rep.Shapes() != 0 {
		t.Errorf("got %d pages with %d shapes, want a single empty page",
			len(rep.Pages), rep.Shapes())
	}
}

func TestNoPage(t *testing.T) {
	s, err := pdfdoc.Backend{}.Create(&bytes.Buffer{}, render.A4, render.DefaultStyle, nil)
	if err != nil {
		t.Fatal(err)
	}
	p := scatter.Placement{X: 10, Y: 10, Shape: shape.Spec{Kind: shape.Triangle, Size: 20}}
	err = s.DrawShape(p)
	if !errors.Is(err, render.ErrNoPage) {
		t.Errorf("got %v, want %v", err, render.ErrNoPage)
	}

	err = s.Close()
	if err != nil {
		t.Fatal(err)
	}
	err = s.Close()
	if err == nil {
		t.Error("second Close succeeded")
	}
}

func TestVersions(t *testing.T) {
	page := scatter.Page{
		{X: 100, Y: 100, Shape: shape.Spec{Kind: shape.Hexagon, Size: 50}},
	}
	for _, v := range []pdf.Version{pdf.V1_3, pdf.V1_7, pdf.V2_0} {
		info := &render.Info{Title: "version " + v.String()}
		fname := writeFile(t, pdfdoc.Backend{Version: v}, info, []scatter.Page{page})

		rep, err := inspect.File(fname)
		if err != nil {
			t.Errorf("%s: %v", v, err)
			continue
		}
		if rep.Shapes() != 1 {
			t.Errorf("%s: got %d shapes, want 1", v, rep.Shapes())
		}
	}
}

func TestInfoDictionary(t *testing.T) {
	info := &render.Info{
		Title:    "sheet, version 2 of 3",
		Subject:  "randomly placed shapes",
		Creator:  "shapesheet",
		Producer: "shapesheet v1.0.0",
		Created:  time.Date(2025, 6, 7, 8, 9, 10, 0, time.UTC),
	}
	page := scatter.Page{
		{X: 100, Y: 100, Shape: shape.Spec{Kind: shape.Pentagon, Size: 50}},
	}
	fname := writeFile(t, pdfdoc.Backend{}, info, []scatter.Page{page})

	r, err := pdf.Open(fname, nil)
	if err != nil {
		t.Fatal(err)
	}
	defer r.Close()

	got := r.GetMeta().Info
	if got == nil {
		t.Fatal("missing document information dictionary")
	}
	want := []string{info.Title, info.Subject, info.Creator, info.Producer}
	have := []string{got.Title, got.Subject, got.Creator, got.Producer}
	if d := cmp.Diff(want, have); d != "" {
		t.Errorf("info dictionary (-want +got):\n%s", d)
	}
	if !got.CreationDate.Equal(info.Created) {
		t.Errorf("got creation date %v, want %v", got.CreationDate, info.Created)
	}
}

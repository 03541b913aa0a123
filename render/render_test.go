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

package render

import (
	"errors"
	"io"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"

	"seehuhn.de/go/shapesheet/scatter"
	"seehuhn.de/go/shapesheet/shape"
)

func TestPaperByName(t *testing.T) {
	for _, name := range []string{"A4", "a4", "A5", "letter", "LETTER"} {
		p, err := PaperByName(name)
		if err != nil {
			t.Errorf("%s: %v", name, err)
			continue
		}
		if p.Width <= 0 || p.Height <= p.Width {
			t.Errorf("%s: unexpected size %gx%g", name, p.Width, p.Height)
		}
	}
	_, err := PaperByName("A0")
	if err == nil {
		t.Error("unknown paper size accepted")
	}
}

func TestMM(t *testing.T) {
	if got := MM(25.4); math.Abs(got-72) > 1e-9 {
		t.Errorf("MM(25.4) = %g", got)
	}
	if got := MM(210); math.Abs(got-A4.Width) > 0.001 {
		t.Errorf("MM(210) = %g, want %g", got, A4.Width)
	}
}

func TestParseColor(t *testing.T) {
	cases := []struct {
		in   string
		want Color
		ok   bool
	}{
		{"#000000", Black, true},
		{"ffffff", White, true},
		{"#FF0000", Color{R: 1}, true},
		{"#00ff00", Color{G: 1}, true},
		{"#fff", Color{}, false},
		{"#gg0000", Color{}, false},
		{"", Color{}, false},
	}
	for _, c := range cases {
		got, err := ParseColor(c.in)
		if (err == nil) != c.ok {
			t.Errorf("%q: unexpected error %v", c.in, err)
			continue
		}
		if got != c.want {
			t.Errorf("%q: got %v, want %v", c.in, got, c.want)
		}
	}
}

func TestRGB8(t *testing.T) {
	r, g, b := Color{R: 1, G: 0.5, B: -1}.RGB8()
	if r != 255 || g != 128 || b != 0 {
		t.Errorf("got %d %d %d", r, g, b)
	}
}

// recorder is a Backend which records the calls it receives.
type recorder struct {
	calls []string
	fail  string
}

func (r *recorder) Name() string {
	return "recorder"
}

func (r *recorder) Create(w io.Writer, paper Paper, style Style, info *Info) (Surface, error) {
	r.calls = append(r.calls, "create "+paper.Name)
	return r, nil
}

func (r *recorder) NewPage() error {
	return r.record("page")
}

func (r *recorder) DrawShape(p scatter.Placement) error {
	return r.record("draw " + p.Shape.Kind.String())
}

func (r *recorder) Close() error {
	return r.record("close")
}

func (r *recorder) record(call string) error {
	r.calls = append(r.calls, call)
	if call == r.fail {
		return errors.New("failed")
	}
	return nil
}

func TestWrite(t *testing.T) {
	circle := scatter.Placement{Shape: shape.Spec{Kind: shape.Circle, Size: 10}}
	square := scatter.Placement{Shape: shape.Spec{Kind: shape.Rectangle, Size: 10}}
	pages := []scatter.Page{
		{circle, circle},
		{square},
	}

	rec := &recorder{}
	err := Write(io.Discard, rec, A5, DefaultStyle, nil, pages)
	if err != nil {
		t.Fatal(err)
	}
	want := []string{
		"create A5",
		"page", "draw Circle", "draw Circle",
		"page", "draw Rectangle",
		"close",
	}
	if d := cmp.Diff(want, rec.calls); d != "" {
		t.Errorf("calls (-want +got):\n%s", d)
	}

	rec = &recorder{fail: "draw Rectangle"}
	err = Write(io.Discard, rec, A5, DefaultStyle, nil, pages)
	if err == nil {
		t.Error("drawing error not reported")
	}
}

func TestRegistry(t *testing.T) {
	Register(&recorder{})
	defer func() {
		backendsMu.Lock()
		delete(backends, "recorder")
		backendsMu.Unlock()
	}()

	b, err := Lookup("Recorder")
	if err != nil {
		t.Fatal(err)
	}
	if b.Name() != "recorder" {
		t.Errorf("got backend %q", b.Name())
	}
	_, err = Lookup("unknown")
	if err == nil {
		t.Error("unknown backend found")
	}

	found := false
	for _, name := range Backends() {
		found = found || name == "recorder"
	}
	if !found {
		t.Error("registered backend not listed")
	}

	defer func() {
		if recover() == nil {
			t.Error("duplicate registration did not panic")
		}
	}()
	Register(&recorder{})
}

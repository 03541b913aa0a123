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

package scatter

import (
	"errors"
	"math/rand/v2"
	"testing"

	"github.com/google/go-cmp/cmp"
	"seehuhn.de/go/shapesheet/shape"
)

var a4 = Canvas{Width: 595.276, Height: 841.890, Margin: 42.52}

func TestGenerateBounds(t *testing.T) {
	const ε = 1e-9
	rng := rand.New(rand.NewPCG(1, 2))
	for _, k := range shape.All() {
		spec := shape.Spec{Kind: k, Size: 42.52, MaxSize: 85.04}
		page, err := Generate(rng, spec, 20, a4)
		if err != nil {
			t.Fatal(err)
		}
		if len(page) != 20 {
			t.Fatalf("%s: got %d placements, want 20", k, len(page))
		}
		for i, p := range page {
			if p.Shape.Kind != k {
				t.Errorf("%s: placement %d has kind %s", k, i, p.Shape.Kind)
			}
			if p.Shape.Size < spec.Size || p.Shape.Size > spec.MaxSize {
				t.Errorf("%s: placement %d has size %g", k, i, p.Shape.Size)
			}
			box := p.Box()
			if box.LLx < a4.Margin-ε || box.LLy < a4.Margin-ε ||
				box.URx > a4.Width-a4.Margin+ε || box.URy > a4.Height-a4.Margin+ε {
				t.Errorf("%s: placement %d at %v leaves the printable area", k, i, box)
			}
		}
	}
}

func TestGenerateFixedSize(t *testing.T) {
	rng := rand.New(rand.NewPCG(3, 4))
	page, err := Generate(rng, shape.Spec{Kind: shape.Circle, Size: 30}, 10, a4)
	if err != nil {
		t.Fatal(err)
	}
	for _, p := range page {
		if p.Shape.Size != 30 {
			t.Errorf("size %g, want 30", p.Shape.Size)
		}
	}
}

func TestGenerateExactFit(t *testing.T) {
	c := Canvas{Width: 50, Height: 50, Margin: 10}
	page, err := Generate(nil, shape.Spec{Kind: shape.Rectangle, Size: 30}, 3, c)
	if err != nil {
		t.Fatal(err)
	}
	for _, p := range page {
		if p.X != 10 || p.Y != 10 {
			t.Errorf("placement at (%g, %g), want (10, 10)", p.X, p.Y)
		}
	}
}

func TestGenerateReproducible(t *testing.T) {
	spec := shape.Spec{Kind: shape.Pentagon, Size: 20, MaxSize: 40}

	p1, err := Generate(rand.New(rand.NewPCG(7, 7)), spec, 10, a4)
	if err != nil {
		t.Fatal(err)
	}
	p2, err := Generate(rand.New(rand.NewPCG(7, 7)), spec, 10, a4)
	if err != nil {
		t.Fatal(err)
	}
	if d := cmp.Diff(p1, p2); d != "" {
		t.Errorf("same seed gives different layouts (-1 +2):\n%s", d)
	}

	p3, err := Generate(rand.New(rand.NewPCG(8, 8)), spec, 10, a4)
	if err != nil {
		t.Fatal(err)
	}
	if cmp.Equal(p1, p3) {
		t.Error("different seeds give identical layouts")
	}
}

func TestGenerateInvalidCount(t *testing.T) {
	spec := shape.Spec{Kind: shape.Circle, Size: 10}
	for _, n := range []int{0, -1, -100} {
		page, err := Generate(nil, spec, n, a4)
		if !errors.Is(err, ErrInvalidCount) {
			t.Errorf("count %d: got error %v, want ErrInvalidCount", n, err)
		}
		if page != nil {
			t.Errorf("count %d: got %d placements", n, len(page))
		}
	}
}

func TestGenerateInvalidCanvas(t *testing.T) {
	spec := shape.Spec{Kind: shape.Hexagon, Size: 40}
	cases := []Canvas{
		{Width: 30, Height: 100},
		{Width: 100, Height: 30},
		{Width: 100, Height: 100, Margin: 35},
		{Width: 0, Height: 100},
		{Width: 100, Height: 100, Margin: -1},
	}
	for _, c := range cases {
		_, err := Generate(nil, spec, 1, c)
		if !errors.Is(err, ErrInvalidCanvas) {
			t.Errorf("%v: got error %v, want ErrInvalidCanvas", c, err)
		}
	}

	// the size range counts, not only the minimum size
	jitter := shape.Spec{Kind: shape.Hexagon, Size: 10, MaxSize: 60}
	_, err := Generate(nil, jitter, 1, Canvas{Width: 50, Height: 50})
	if !errors.Is(err, ErrInvalidCanvas) {
		t.Errorf("size range: got error %v, want ErrInvalidCanvas", err)
	}
}

func TestGenerateInvalidShape(t *testing.T) {
	_, err := Generate(nil, shape.Spec{Kind: 9, Size: 10}, 1, a4)
	if !errors.Is(err, shape.ErrUnsupported) {
		t.Errorf("got error %v, want shape.ErrUnsupported", err)
	}
}

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

// Package shape describes the geometric shapes which can be placed on a
// sheet.
//
// The set of shapes is closed: [Circle], [Triangle], [Rectangle], [Pentagon]
// and [Hexagon].  Every shape is inscribed in a square bounding box, so that
// a single size parameter determines its extent.
package shape

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// Kind identifies one of the supported shapes.
type Kind uint8

// These are the supported shapes.
const (
	Circle Kind = iota + 1
	Triangle
	Rectangle
	Pentagon
	Hexagon
)

var kindNames = [...]string{
	Circle:    "Circle",
	Triangle:  "Triangle",
	Rectangle: "Rectangle",
	Pentagon:  "Pentagon",
	Hexagon:   "Hexagon",
}

// ErrUnsupported is returned when a shape name does not denote one of the
// supported shapes.
var ErrUnsupported = errors.New("unsupported shape")

// ErrInvalidSize indicates a shape size which is not a positive, finite
// number.
var ErrInvalidSize = errors.New("invalid shape size")

// All returns the supported shapes, in menu order.
func All() []Kind {
	return []Kind{Circle, Triangle, Rectangle, Pentagon, Hexagon}
}

// IsValid reports whether k is one of the supported shapes.
func (k Kind) IsValid() bool {
	return k >= Circle && k <= Hexagon
}

func (k Kind) String() string {
	if !k.IsValid() {
		return "Kind(" + strconv.Itoa(int(k)) + ")"
	}
	return kindNames[k]
}

// ParseKind converts a shape name into a Kind.  Names are matched without
// regard to case.  The menu numbers "1" to "5" are accepted as well.
func ParseKind(s string) (Kind, error) {
	s = strings.TrimSpace(s)
	if n, err := strconv.Atoi(s); err == nil {
		k := Kind(n)
		if n > 0 && k.IsValid() {
			return k, nil
		}
		return 0, fmt.Errorf("%w: %q", ErrUnsupported, s)
	}
	for _, k := range All() {
		if strings.EqualFold(s, kindNames[k]) {
			return k, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnsupported, s)
}

// Outline returns the vertices of the polygon inscribed in box, in
// counter-clockwise order, starting at the top vertex where there is one.
// Coordinates use the PDF convention with y pointing upwards.
// For circles, and for invalid kinds, nil is returned.
func (k Kind) Outline(box rect.Rect) []vec.Vec2 {
	switch k {
	case Triangle:
		return []vec.Vec2{
			{X: (box.LLx + box.URx) / 2, Y: box.URy},
			{X: box.LLx, Y: box.LLy},
			{X: box.URx, Y: box.LLy},
		}
	case Rectangle:
		return []vec.Vec2{
			{X: box.LLx, Y: box.LLy},
			{X: box.URx, Y: box.LLy},
			{X: box.URx, Y: box.URy},
			{X: box.LLx, Y: box.URy},
		}
	case Pentagon:
		return regularPolygon(box, 5)
	case Hexagon:
		return regularPolygon(box, 6)
	default:
		return nil
	}
}

// regularPolygon returns the vertices of a regular n-gon inscribed in the
// circle which touches the sides of box.  The first vertex points upwards.
func regularPolygon(box rect.Rect, n int) []vec.Vec2 {
	center := vec.Vec2{X: (box.LLx + box.URx) / 2, Y: (box.LLy + box.URy) / 2}
	r := min(box.URx-box.LLx, box.URy-box.LLy) / 2

	res := make([]vec.Vec2, n)
	for i := range n {
		phi := math.Pi/2 + 2*math.Pi*float64(i)/float64(n)
		res[i] = center.Add(vec.Vec2{X: r * math.Cos(phi), Y: r * math.Sin(phi)})
	}
	return res
}

// Spec describes the shapes to place on a page.
//
// If MaxSize is larger than Size, every placed shape gets its own size,
// chosen uniformly from the range [Size, MaxSize].  Otherwise all shapes
// have size Size.
type Spec struct {
	Kind    Kind
	Size    float64
	MaxSize float64
}

// Validate checks that the kind is supported and that the sizes are
// positive, finite numbers.
func (s Spec) Validate() error {
	if !s.Kind.IsValid() {
		return fmt.Errorf("%w: %s", ErrUnsupported, s.Kind)
	}
	if !(s.Size > 0) || math.IsInf(s.Size, 0) {
		return fmt.Errorf("%w: %g", ErrInvalidSize, s.Size)
	}
	if s.MaxSize != 0 && (math.IsNaN(s.MaxSize) || math.IsInf(s.MaxSize, 0) || s.MaxSize < s.Size) {
		return fmt.Errorf("%w: maximum %g below minimum %g", ErrInvalidSize, s.MaxSize, s.Size)
	}
	return nil
}

// Bound returns the largest side length of the bounding box of any shape
// described by s.
func (s Spec) Bound() float64 {
	return max(s.Size, s.MaxSize)
}

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

// Package scatter chooses random positions for shapes on a page.
//
// Placement is purely random: shapes stay within the printable area of the
// page, but may overlap each other.
package scatter

import (
	"errors"
	"fmt"
	"math"
	"math/rand/v2"

	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/shapesheet/shape"
)

var (
	// ErrInvalidCount is returned when a non-positive number of shapes
	// is requested.
	ErrInvalidCount = errors.New("shape count must be positive")

	// ErrInvalidCanvas is returned when the printable area of a canvas is
	// too small to hold the requested shapes.
	ErrInvalidCanvas = errors.New("canvas too small")
)

// Canvas describes the page area available for placing shapes.
// All lengths are in PDF units (1/72 inch).
type Canvas struct {
	Width  float64
	Height float64

	// Margin is the minimum distance between any shape and the page edges.
	Margin float64
}

// Check verifies that every shape described by spec fits into the printable
// area of c.
func (c Canvas) Check(spec shape.Spec) error {
	if !(c.Width > 0) || !(c.Height > 0) || !(c.Margin >= 0) ||
		math.IsInf(c.Width, 0) || math.IsInf(c.Height, 0) || math.IsInf(c.Margin, 0) {
		return fmt.Errorf("%w: %gx%g with margin %g", ErrInvalidCanvas, c.Width, c.Height, c.Margin)
	}
	b := spec.Bound()
	if c.Width-2*c.Margin < b || c.Height-2*c.Margin < b {
		return fmt.Errorf("%w: %gx%g with margin %g cannot hold shapes of size %g",
			ErrInvalidCanvas, c.Width, c.Height, c.Margin, b)
	}
	return nil
}

// Placement is the position of one shape on a page.
// X and Y give the lower left corner of the bounding box.
type Placement struct {
	X, Y  float64
	Shape shape.Spec
}

// Box returns the bounding box of the placed shape.
func (p Placement) Box() rect.Rect {
	return rect.Rect{
		LLx: p.X,
		LLy: p.Y,
		URx: p.X + p.Shape.Size,
		URy: p.Y + p.Shape.Size,
	}
}

// Page is the list of shapes placed on one page, in drawing order.
type Page []Placement

// Generate places count shapes of the given kind on the canvas.
//
// Positions are drawn independently and uniformly from the printable area.
// If spec has a size range, every shape also gets its own size.  Shapes are
// not checked for overlap.  If rng is nil, the global random source is used.
func Generate(rng *rand.Rand, spec shape.Spec, count int, c Canvas) (Page, error) {
	if count <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidCount, count)
	}
	if err := spec.Validate(); err != nil {
		return nil, err
	}
	if err := c.Check(spec); err != nil {
		return nil, err
	}

	page := make(Page, count)
	for i := range page {
		size := spec.Size
		if spec.MaxSize > spec.Size {
			size = uniform(rng, spec.Size, spec.MaxSize)
		}
		page[i] = Placement{
			X: uniform(rng, c.Margin, c.Width-c.Margin-size),
			Y: uniform(rng, c.Margin, c.Height-c.Margin-size),
			Shape: shape.Spec{
				Kind: spec.Kind,
				Size: size,
			},
		}
	}
	return page, nil
}

// uniform returns a random number in the range [lo, hi].
func uniform(rng *rand.Rand, lo, hi float64) float64 {
	var u float64
	if rng != nil {
		u = rng.Float64()
	} else {
		u = rand.Float64()
	}
	return lo + u*(hi-lo)
}

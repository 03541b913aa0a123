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
	"fmt"
	"strings"
)

// Paper describes a page size, in PDF units (1/72 inch).
type Paper struct {
	Name   string
	Width  float64
	Height float64
}

// Default paper sizes.
var (
	A4     = Paper{Name: "A4", Width: 595.276, Height: 841.890}
	A5     = Paper{Name: "A5", Width: 420.945, Height: 595.276}
	Letter = Paper{Name: "Letter", Width: 612, Height: 792}
)

// PaperByName returns one of the default paper sizes.
// Names are matched without regard to case.
func PaperByName(name string) (Paper, error) {
	for _, p := range []Paper{A4, A5, Letter} {
		if strings.EqualFold(name, p.Name) {
			return p, nil
		}
	}
	return Paper{}, fmt.Errorf("unknown paper size %q", name)
}

// MM converts a length from millimetres to PDF units.
func MM(x float64) float64 {
	return x * 72 / 25.4
}

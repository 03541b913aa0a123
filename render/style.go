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
	"strconv"
	"strings"
)

// Color is an RGB colour with components in the range from 0 to 1.
type Color struct {
	R, G, B float64
}

// Commonly used colours.
var (
	Black = Color{0, 0, 0}
	White = Color{1, 1, 1}
)

// ParseColor parses a colour in the form "#rrggbb" or "rrggbb".
func ParseColor(s string) (Color, error) {
	hex := strings.TrimPrefix(s, "#")
	if len(hex) != 6 {
		return Color{}, fmt.Errorf("invalid colour %q", s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return Color{}, fmt.Errorf("invalid colour %q", s)
	}
	return Color{
		R: float64(v>>16) / 255,
		G: float64((v>>8)&0xFF) / 255,
		B: float64(v&0xFF) / 255,
	}, nil
}

// RGB8 returns the colour components scaled to the range 0 to 255.
func (c Color) RGB8() (r, g, b int) {
	scale := func(x float64) int {
		return int(min(max(x, 0), 1)*255 + 0.5)
	}
	return scale(c.R), scale(c.G), scale(c.B)
}

// Style determines how shapes are painted.
type Style struct {
	Fill      Color
	Stroke    Color
	LineWidth float64
}

// DefaultStyle paints shapes white, with a thin black outline.
var DefaultStyle = Style{
	Fill:      White,
	Stroke:    Black,
	LineWidth: 0.5,
}

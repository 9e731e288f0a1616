// seehuhn.de/go/edgemask - detector aperture masks
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

package edgemask

import (
	"fmt"
	"math"
)

// Rect is an axis-aligned reject rectangle in frame pixel coordinates,
// anchored at its south-west corner.
type Rect struct {
	X, Y          int
	Width, Height int
}

// Command returns the CrysAlisPRO macro command excluding the rectangle.
func (r Rect) Command() string {
	return fmt.Sprintf("dc rejectrect %d %d %d %d", r.X, r.Y, r.Width, r.Height)
}

// roundHalfUp converts a pixel coordinate to an integer, rounding values
// exactly halfway between two integers upward (4.5 -> 5, not to even).
// This matches the rounding used by the macro files in the field.
func roundHalfUp(v float64) int {
	return int(math.Floor(v + 0.5))
}

// SideRect returns the full straight-edge reject rectangle for side s:
// the strip between the ellipse boundary and the frame edge, spanning
// the whole frame in the other direction. Only meaningful when the gap
// on s is positive.
func (m *Mask) SideRect(s Side) Rect {
	w := float64(m.Width)
	h := float64(m.Height)
	g := m.Gap(s)
	switch s {
	case North:
		return Rect{0, roundHalfUp(h - g), roundHalfUp(w), roundHalfUp(g)}
	case East:
		return Rect{roundHalfUp(w - g), 0, roundHalfUp(g), roundHalfUp(h)}
	case South:
		return Rect{0, 0, roundHalfUp(w), roundHalfUp(g)}
	case West:
		return Rect{0, 0, roundHalfUp(g), roundHalfUp(h)}
	default:
		panic("invalid side")
	}
}

// CornerRect returns the reject rectangle spanning from the ellipse
// boundary point at angle phi to the frame corner of quadrant q.
func (m *Mask) CornerRect(q Quadrant, phi float64) Rect {
	p := m.EdgeAt(phi)
	x := roundHalfUp(p.X)
	y := roundHalfUp(p.Y)
	switch q {
	case NE:
		return Rect{x, y, roundHalfUp(float64(m.Width) - p.X), roundHalfUp(float64(m.Height) - p.Y)}
	case SE:
		return Rect{x, 0, roundHalfUp(float64(m.Width) - p.X), y}
	case SW:
		return Rect{0, 0, x, y}
	case NW:
		return Rect{0, y, x, roundHalfUp(float64(m.Height) - p.Y)}
	default:
		panic("invalid quadrant")
	}
}

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

// Package edgemask approximates the accessible (elliptical) area of a
// rectangular detector frame by a set of axis-aligned reject rectangles,
// for consumption by the CrysAlisPRO macro interpreter.
package edgemask

import (
	"errors"
	"fmt"
	"math"

	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// ErrGeometry is returned when a mask has a non-positive frame dimension
// or radius.
var ErrGeometry = errors.New("invalid mask geometry")

// Mask describes the detector-accessible area on a frame: an ellipse
// (a circle when both radii are equal) inscribed in, or overflowing, a
// rectangular pixel frame. Coordinates follow the detector convention
// with the origin in the south-west corner and north in +y direction.
//
// A Mask is read-only after construction; all derived quantities are
// computed on demand.
type Mask struct {
	// Width and Height are the frame dimensions in pixels.
	// Must be positive.
	Width, Height int

	// Rx and Ry are the horizontal and vertical radii of the accessible
	// area. Must be positive.
	Rx, Ry float64

	// Center is the centre of the accessible area in frame coordinates.
	Center vec.Vec2
}

// New returns a Mask for the given frame with the accessible area
// centred and the radii defaulting to half the shorter frame dimension,
// rounded down. Callers adjust Rx, Ry and Center directly for other
// configurations.
func New(width, height int) *Mask {
	r := math.Floor(float64(min(width, height)) / 2)
	return &Mask{
		Width:  width,
		Height: height,
		Rx:     r,
		Ry:     r,
		Center: vec.Vec2{X: float64(width) / 2, Y: float64(height) / 2},
	}
}

// Validate checks the mask parameters. All exported operations that
// derive geometry call this first, so that degenerate input surfaces as
// an error instead of NaN angles in the output.
func (m *Mask) Validate() error {
	if m.Width <= 0 || m.Height <= 0 {
		return fmt.Errorf("%w: frame %dx%d", ErrGeometry, m.Width, m.Height)
	}
	if m.Rx <= 0 || m.Ry <= 0 {
		return fmt.Errorf("%w: radii %g, %g", ErrGeometry, m.Rx, m.Ry)
	}
	return nil
}

// Bounds returns the frame rectangle.
func (m *Mask) Bounds() rect.Rect {
	return rect.Rect{URx: float64(m.Width), URy: float64(m.Height)}
}

// Side identifies one cardinal side of the frame.
type Side int

const (
	North Side = iota
	East
	South
	West
)

func (s Side) String() string {
	switch s {
	case North:
		return "north"
	case East:
		return "east"
	case South:
		return "south"
	case West:
		return "west"
	default:
		return "unknown"
	}
}

// Sides lists the cardinal sides in emission order.
var Sides = []Side{North, East, South, West}

// Gap returns the signed distance between the ellipse boundary and the
// frame edge on side s. A negative gap means the ellipse extends past
// that edge.
func (m *Mask) Gap(s Side) float64 {
	switch s {
	case North:
		return float64(m.Height) - m.Center.Y - m.Ry
	case East:
		return float64(m.Width) - m.Center.X - m.Rx
	case South:
		return m.Center.Y - m.Ry
	case West:
		return m.Center.X - m.Rx
	default:
		panic("invalid side")
	}
}

// Clips reports whether the ellipse extends past the frame edge on side s.
func (m *Mask) Clips(s Side) bool {
	return m.Gap(s) < 0
}

// Quadrant identifies one compass quadrant of the ellipse boundary.
type Quadrant int

const (
	NE Quadrant = iota
	SE
	SW
	NW
)

func (q Quadrant) String() string {
	switch q {
	case NE:
		return "NE"
	case SE:
		return "SE"
	case SW:
		return "SW"
	case NW:
		return "NW"
	default:
		return "unknown"
	}
}

// Quadrants lists the quadrants in sampling order.
var Quadrants = []Quadrant{NE, SE, SW, NW}

// crossing returns the boundary angle offset where the ellipse crosses
// the frame edge with the given gap and radius. The argument is clamped
// so that extreme off-centre configurations degrade to empty arcs
// instead of NaN angles.
func crossing(trig func(float64) float64, gap, radius float64) float64 {
	x := 1 + gap/radius
	if x < -1 {
		x = -1
	} else if x > 1 {
		x = 1
	}
	return trig(x)
}

// Arc returns the start and end angle of the ellipse boundary within
// quadrant q, in radians measured clockwise from north (0 = north,
// pi/2 = east, pi = south, 3*pi/2 = west).
//
// When neither bounding side clips, the angles are the plain
// quarter-circle boundaries. A clipping side pulls the corresponding
// boundary inward to the point where the ellipse crosses the frame edge.
// Under double clipping end may come out smaller than start; ArcLen
// clamps the interval at zero.
func (m *Mask) Arc(q Quadrant) (start, end float64) {
	switch q {
	case NE:
		start = 0
		if m.Clips(North) {
			start = crossing(math.Acos, m.Gap(North), m.Ry)
		}
		end = math.Pi / 2
		if m.Clips(East) {
			end = crossing(math.Asin, m.Gap(East), m.Rx)
		}
	case SE:
		start = math.Pi / 2
		if m.Clips(East) {
			start = math.Pi - crossing(math.Asin, m.Gap(East), m.Rx)
		}
		end = math.Pi
		if m.Clips(South) {
			end = math.Pi - crossing(math.Acos, m.Gap(South), m.Ry)
		}
	case SW:
		start = math.Pi
		if m.Clips(South) {
			start = math.Pi + crossing(math.Acos, m.Gap(South), m.Ry)
		}
		end = 3 * math.Pi / 2
		if m.Clips(West) {
			end = math.Pi + crossing(math.Asin, m.Gap(West), m.Rx)
		}
	case NW:
		start = 3 * math.Pi / 2
		if m.Clips(West) {
			start = 2*math.Pi - crossing(math.Asin, m.Gap(West), m.Rx)
		}
		end = 2 * math.Pi
		if m.Clips(North) {
			end = 2*math.Pi - crossing(math.Acos, m.Gap(North), m.Ry)
		}
	default:
		panic("invalid quadrant")
	}
	return start, end
}

// ArcLen returns the angular length of the boundary arc in quadrant q,
// clamped at zero.
func (m *Mask) ArcLen(q Quadrant) float64 {
	start, end := m.Arc(q)
	return max(end-start, 0)
}

// EdgeLen returns the total angular length of the four quadrant arcs.
// It is 2*pi exactly when no side clips.
func (m *Mask) EdgeLen() float64 {
	var sum float64
	for _, q := range Quadrants {
		sum += m.ArcLen(q)
	}
	return sum
}

// EdgeAt returns the point on the ellipse boundary at angle phi,
// measured clockwise from north.
func (m *Mask) EdgeAt(phi float64) vec.Vec2 {
	return vec.Vec2{
		X: m.Center.X + m.Rx*math.Sin(phi),
		Y: m.Center.Y + m.Ry*math.Cos(phi),
	}
}

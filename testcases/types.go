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

// Package testcases defines named mask configurations shared between the
// tests and the maskpdf preview generator.
package testcases

import "seehuhn.de/go/edgemask"

// Case defines a single mask configuration.
type Case struct {
	Name       string  // lowercase a-z and _ only
	Width      int     // frame width in pixels
	Height     int     // frame height in pixels
	Radius     float64 // horizontal radius; 0 means the default
	RadiusY    float64 // vertical radius; 0 means same as Radius
	OffsetX    float64 // centre shift from the frame centre
	OffsetY    float64
	Resolution int // rectangle budget for exports
}

// Mask builds the mask described by the case.
func (c Case) Mask() *edgemask.Mask {
	m := edgemask.New(c.Width, c.Height)
	if c.Radius != 0 {
		m.Rx = c.Radius
		m.Ry = c.Radius
	}
	if c.RadiusY != 0 {
		m.Ry = c.RadiusY
	}
	m.Center.X += c.OffsetX
	m.Center.Y += c.OffsetY
	return m
}

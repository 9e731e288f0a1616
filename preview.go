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
	"image"
	"image/color"

	"golang.org/x/image/vector"
)

// Preview images use the usual image convention with y growing downward,
// flipped from the detector convention (north = +y). White marks
// accessible pixels, black rejected ones.

// EllipseImage renders the ideal accessible area, clipped to the frame,
// as a binary grayscale image. The ellipse outline is approximated by
// four cubic Bézier arcs.
func EllipseImage(m *Mask) *image.Gray {
	// Magic number for circular arc approximation with cubic Bézier
	const k = 0.5522847498

	cx := float32(m.Center.X)
	cy := float32(float64(m.Height) - m.Center.Y)
	rx := float32(m.Rx)
	ry := float32(m.Ry)
	krx := k * rx
	kry := k * ry

	r := vector.NewRasterizer(m.Width, m.Height)
	r.MoveTo(cx, cy-ry)
	r.CubeTo(cx+krx, cy-ry, cx+rx, cy-kry, cx+rx, cy)
	r.CubeTo(cx+rx, cy+kry, cx+krx, cy+ry, cx, cy+ry)
	r.CubeTo(cx-krx, cy+ry, cx-rx, cy+kry, cx-rx, cy)
	r.CubeTo(cx-rx, cy-kry, cx-krx, cy-ry, cx, cy-ry)
	r.ClosePath()

	dst := image.NewAlpha(image.Rect(0, 0, m.Width, m.Height))
	r.Draw(dst, dst.Bounds(), image.NewUniform(color.Alpha{A: 255}), image.Point{})

	img := image.NewGray(image.Rect(0, 0, m.Width, m.Height))
	for i, a := range dst.Pix {
		if a >= 128 {
			img.Pix[i] = 255
		}
	}
	return img
}

// MaskedImage renders the area left accessible after excluding the given
// reject rectangles from the frame.
func MaskedImage(m *Mask, rects []Rect) *image.Gray {
	img := image.NewGray(image.Rect(0, 0, m.Width, m.Height))
	for i := range img.Pix {
		img.Pix[i] = 255
	}
	for _, rc := range rects {
		x0 := max(rc.X, 0)
		x1 := min(rc.X+rc.Width, m.Width)
		// flip from detector coordinates to image rows
		y0 := max(m.Height-(rc.Y+rc.Height), 0)
		y1 := min(m.Height-rc.Y, m.Height)
		for y := y0; y < y1; y++ {
			row := img.Pix[y*img.Stride:]
			for x := x0; x < x1; x++ {
				row[x] = 0
			}
		}
	}
	return img
}

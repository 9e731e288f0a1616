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

package edgemask_test

import (
	"image"
	"testing"

	"seehuhn.de/go/edgemask"
)

// mismatch returns the fraction of pixels where the two images differ.
func mismatch(a, b *image.Gray) float64 {
	if len(a.Pix) != len(b.Pix) {
		panic("image size mismatch")
	}
	n := 0
	for i := range a.Pix {
		if a.Pix[i] != b.Pix[i] {
			n++
		}
	}
	return float64(n) / float64(len(a.Pix))
}

func maskedImage(t *testing.T, m *edgemask.Mask, budget int) *image.Gray {
	t.Helper()
	rects, err := m.Rects(budget)
	if err != nil {
		t.Fatal(err)
	}
	return edgemask.MaskedImage(m, rects)
}

func TestMaskApproximatesEllipse(t *testing.T) {
	m := edgemask.New(1024, 1024)
	m.Rx, m.Ry = 500, 500

	frac := mismatch(edgemask.EllipseImage(m), maskedImage(t, m, 100))
	if frac > 0.06 {
		t.Errorf("mask differs from ideal ellipse on %.1f%% of the frame", 100*frac)
	}
}

func TestResolutionImprovesCoverage(t *testing.T) {
	m := edgemask.New(512, 512)
	m.Rx, m.Ry = 240, 240

	ideal := edgemask.EllipseImage(m)
	coarse := mismatch(ideal, maskedImage(t, m, 16))
	fine := mismatch(ideal, maskedImage(t, m, 100))
	if coarse <= fine {
		t.Errorf("mismatch %.4f at budget 16 not worse than %.4f at budget 100",
			coarse, fine)
	}
}

func TestInteriorNeverRejected(t *testing.T) {
	m := edgemask.New(1024, 768)
	m.Rx, m.Ry = 450, 350

	img := maskedImage(t, m, 100)

	// every pixel safely inside the ellipse must stay accessible; the
	// 3 pixel margin allows for the half-up coordinate rounding
	cx, cy := m.Center.X, m.Center.Y
	rx, ry := m.Rx-3, m.Ry-3
	for y := 0; y < m.Height; y += 4 {
		for x := 0; x < m.Width; x += 4 {
			px := float64(x) + 0.5
			py := float64(m.Height) - (float64(y) + 0.5)
			dx := (px - cx) / rx
			dy := (py - cy) / ry
			if dx*dx+dy*dy <= 1 && img.GrayAt(x, y).Y != 255 {
				t.Fatalf("interior pixel (%d, %d) rejected", x, y)
			}
		}
	}
}

func TestMaskedImageClamping(t *testing.T) {
	m := edgemask.New(64, 64)

	// rectangles sticking out of the frame are clamped, not wrapped
	rects := []edgemask.Rect{
		{X: -10, Y: -10, Width: 20, Height: 20},
		{X: 60, Y: 60, Width: 50, Height: 50},
	}
	img := edgemask.MaskedImage(m, rects)

	if img.GrayAt(0, 63).Y != 0 {
		t.Error("south-west overhang not painted")
	}
	if img.GrayAt(63, 0).Y != 0 {
		t.Error("north-east overhang not painted")
	}
	if img.GrayAt(32, 32).Y != 255 {
		t.Error("frame centre clobbered")
	}
}

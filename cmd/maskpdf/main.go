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

// Command maskpdf renders every named mask configuration to a one-page
// PDF for visual review: the frame outline, the reject rectangles in
// grey, and the ideal ellipse boundary on top.
package main

import (
	"fmt"
	"maps"
	"os"
	"path/filepath"
	"slices"

	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/document"
	"seehuhn.de/go/pdf/graphics/color"

	"seehuhn.de/go/edgemask/testcases"
)

const outDir = "preview"

func main() {
	if err := os.MkdirAll(outDir, 0755); err != nil {
		panic(err)
	}

	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, c := range testcases.All[category] {
			name := category + "_" + c.Name
			pdfPath := filepath.Join(outDir, name+".pdf")
			if err := generatePDF(c, pdfPath); err != nil {
				panic(fmt.Errorf("%s: %w", name, err))
			}
		}
	}
}

func generatePDF(c testcases.Case, pdfPath string) error {
	m := c.Mask()
	if err := m.Validate(); err != nil {
		return err
	}
	rects, err := m.Rects(c.Resolution)
	if err != nil {
		return err
	}

	// Page size in points (1 point = 1 pixel at 72 DPI). Both the
	// detector and PDF coordinate systems have the origin in the lower
	// left corner with y growing upward, so no flip is needed.
	paper := &pdf.Rectangle{
		URx: float64(m.Width),
		URy: float64(m.Height),
	}

	page, err := document.CreateSinglePage(pdfPath, paper, pdf.V1_7, nil)
	if err != nil {
		return err
	}

	// Reject rectangles in grey.
	page.SetFillColor(color.DeviceGray(0.8))
	for _, r := range rects {
		page.Rectangle(float64(r.X), float64(r.Y), float64(r.Width), float64(r.Height))
	}
	page.Fill()

	// Frame outline.
	page.SetStrokeColor(color.DeviceGray(0.5))
	page.SetLineWidth(1)
	page.Rectangle(0, 0, float64(m.Width), float64(m.Height))
	page.Stroke()

	// Ideal ellipse boundary, as four cubic Bézier arcs.
	const k = 0.5522847498
	cx, cy := m.Center.X, m.Center.Y
	rx, ry := m.Rx, m.Ry
	krx, kry := k*rx, k*ry

	page.SetStrokeColor(color.DeviceGray(0))
	page.SetLineWidth(2)
	page.MoveTo(cx, cy+ry)
	page.CurveTo(cx+krx, cy+ry, cx+rx, cy+kry, cx+rx, cy)
	page.CurveTo(cx+rx, cy-kry, cx+krx, cy-ry, cx, cy-ry)
	page.CurveTo(cx-krx, cy-ry, cx-rx, cy-kry, cx-rx, cy)
	page.CurveTo(cx-rx, cy+kry, cx-krx, cy+ry, cx, cy+ry)
	page.ClosePath()
	page.Stroke()

	return page.Close()
}

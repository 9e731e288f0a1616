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
	"bufio"
	"io"
	"os"
)

const (
	// DefaultFilename is the conventional name for exported mask macros.
	DefaultFilename = "edge_mask.mac"

	// DefaultResolution is the default rectangle budget. CrysAlisPRO
	// accepts only on the order of 100 rejectrect commands per macro,
	// so budgets beyond this are at the caller's risk.
	DefaultResolution = 100

	// minSideGap is the smallest gap, in pixels, for which a full
	// straight-edge rectangle is emitted. Gaps below half a pixel would
	// round to zero-size rectangles.
	minSideGap = 0.5
)

// Rects returns the reject rectangles approximating the inaccessible
// part of the frame, using at most budget rectangles. (The cardinal
// strips, at most four, are always included; for budgets below four
// only the arc sampling honours what is left.)
//
// Each cardinal side with a gap of at least half a pixel contributes one
// full straight-edge rectangle. The remaining budget is distributed over
// the four quadrant arcs in proportion to their angular length; each
// quadrant's share samples evenly spaced interior angles of its arc
// (endpoints excluded, to avoid duplicate or zero-area rectangles at
// quadrant boundaries).
func (m *Mask) Rects(budget int) ([]Rect, error) {
	if err := m.Validate(); err != nil {
		return nil, err
	}

	var rects []Rect
	for _, s := range Sides {
		if m.Gap(s) >= minSideGap {
			rects = append(rects, m.SideRect(s))
		}
	}

	weights := make([]float64, len(Quadrants))
	for i, q := range Quadrants {
		weights[i] = m.ArcLen(q)
	}
	counts := splitInt(budget-len(rects), weights)

	for i, q := range Quadrants {
		if weights[i] <= 0 {
			continue
		}
		start, end := m.Arc(q)
		n := counts[i]
		for k := 1; k <= n; k++ {
			phi := start + (end-start)*float64(k)/float64(n+1)
			rects = append(rects, m.CornerRect(q, phi))
		}
	}
	return rects, nil
}

// WriteMac writes the mask as a CrysAlisPRO macro, one rejectrect
// command per line, using at most budget commands.
func (m *Mask) WriteMac(w io.Writer, budget int) error {
	rects, err := m.Rects(budget)
	if err != nil {
		return err
	}
	return writeRects(w, rects)
}

// Export writes the mask macro to the file at path, overwriting any
// existing file. The geometry is checked before the file is touched, so
// an invalid mask does not clobber a previous export.
func (m *Mask) Export(path string, budget int) (err error) {
	rects, err := m.Rects(budget)
	if err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	return writeRects(f, rects)
}

func writeRects(w io.Writer, rects []Rect) error {
	bw := bufio.NewWriter(w)
	for _, r := range rects {
		if _, err := bw.WriteString(r.Command()); err != nil {
			return err
		}
		if err := bw.WriteByte('\n'); err != nil {
			return err
		}
	}
	return bw.Flush()
}

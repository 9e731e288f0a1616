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
	"cmp"
	"math"
	"slices"
)

// splitInt distributes total across the weights, returning non-negative
// integers in input order which sum to total exactly (for total >= 0)
// and are approximately proportional to the weights.
//
// Weights are processed from largest to smallest, each receiving the
// rounded proportional share of the budget still open; the smallest
// weight absorbs whatever remains, so rounding never loses or invents
// commands. If all weights are zero the result is all zeros.
func splitInt(total int, weights []float64) []int {
	counts := make([]int, len(weights))
	if total <= 0 || len(weights) == 0 {
		return counts
	}

	var sum float64
	for _, w := range weights {
		sum += w
	}
	if sum <= 0 {
		return counts
	}

	// Indices sorted by descending weight.
	order := make([]int, len(weights))
	for i := range order {
		order[i] = i
	}
	slices.SortFunc(order, func(a, b int) int {
		return cmp.Compare(weights[b], weights[a])
	})

	remaining := total
	for i, j := range order {
		if remaining <= 0 || sum <= 0 {
			break
		}
		if i == len(order)-1 {
			counts[j] = remaining
			break
		}
		n := int(math.Round(float64(remaining) * weights[j] / sum))
		counts[j] = n
		remaining -= n
		sum -= weights[j]
	}
	return counts
}

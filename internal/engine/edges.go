// Package engine converts drawn units into production cutlists. Every
// function here is pure: identical inputs produce identical output, and
// malformed geometry yields fewer panels rather than an error.
package engine

import (
	"math"
	"sort"
)

// minCellWidth is the narrowest cell a divider layout may produce, in
// the span's own units. Anything narrower is treated as a drawing error.
func minCellWidth(size float64) float64 {
	return math.Max(10, size*0.02)
}

// BuildEdges returns the count+1 ordered cut positions bounding count
// cells across the span [start, start+size]. User-dragged dividers are
// honored only when they agree with the declared cell count and leave
// every cell at least the minimum width; otherwise the span is split
// evenly. The first position is always start and the last start+size.
func BuildEdges(start, size float64, dividers []float64, count int) []float64 {
	if count < 1 {
		count = 1
	}
	end := start + size
	minCell := minCellWidth(size)

	var interior []float64
	if len(dividers) > 0 {
		candidates := make([]float64, 0, len(dividers))
		for _, d := range dividers {
			if d > start+minCell && d < end-minCell {
				candidates = append(candidates, d)
			}
		}
		sort.Float64s(candidates)
		if len(candidates) == count-1 && gapsWideEnough(start, end, candidates, minCell) {
			interior = candidates
		}
	}

	if interior == nil && count > 1 {
		interior = make([]float64, 0, count-1)
		step := size / float64(count)
		for i := 1; i < count; i++ {
			interior = append(interior, start+step*float64(i))
		}
	}

	edges := make([]float64, 0, count+1)
	edges = append(edges, start)
	edges = append(edges, interior...)
	edges = append(edges, end)
	return edges
}

func gapsWideEnough(start, end float64, positions []float64, minCell float64) bool {
	prev := start
	for _, p := range positions {
		if p-prev < minCell {
			return false
		}
		prev = p
	}
	return end-prev >= minCell
}

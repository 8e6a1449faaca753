// Package heatmap reshapes the room's availability count matrix.
package heatmap

import (
	"fmt"

	"meetgrid/models/grid"
)

// Key returns the "Day-HH:00" lookup key for a day index and hour.
func Key(dayIdx, hour int) string {
	return fmt.Sprintf("%s-%02d:00", grid.DayLabel(dayIdx), hour)
}

// ToSparse turns a [day][hour] count matrix into a "Day-HH:00" -> count map,
// keeping only cells with at least one available participant. Rows beyond
// the seventh day are ignored.
func ToSparse(numAvailable [][]int) map[string]int {
	out := make(map[string]int)
	for d, row := range numAvailable {
		if d >= len(grid.Days) {
			break
		}
		for h, count := range row {
			if count > 0 {
				out[Key(d, h)] = count
			}
		}
	}
	return out
}

// MaxCount returns the largest count in the matrix.
func MaxCount(numAvailable [][]int) int {
	best := 0
	for _, row := range numAvailable {
		for _, v := range row {
			best = max(best, v)
		}
	}
	return best
}

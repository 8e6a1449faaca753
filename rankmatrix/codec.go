// Package rankmatrix encodes a participant's availability and ranked
// preferences into the 7x24 priority matrix understood by the room solver,
// and decodes it back.
package rankmatrix

import (
	"meetgrid/models/grid"
	"meetgrid/timegrid"
)

// DefaultRank is the implicit rank of every available hour that was not
// picked as one of the top three.
const DefaultRank = 4

// valueFromRank is the solver's value table: a higher cell value means a
// stronger preference. Encode and Decode must both go through it.
var valueFromRank = map[int]int{
	1: 4,
	2: 3,
	3: 2,
	DefaultRank: 1,
}

// ValueForRank returns the matrix value for rank 1..4, or 0 for anything else.
func ValueForRank(rank int) int {
	return valueFromRank[rank]
}

// Encode builds the matrix for all selected spans, then overwrites the hours
// of rank1, rank2 and rank3 in that order. Rank spans are not checked
// against all; a later rank wins where ranks overlap. Spans on unknown days
// are skipped.
func Encode(all []grid.TimeSpan, ranks grid.RankSpans) grid.PriorityMatrix {
	m := grid.NewPriorityMatrix()

	for _, s := range all {
		fill(m, s, valueFromRank[DefaultRank])
	}
	for rank := 1; rank <= 3; rank++ {
		if s := ranks.ByRank(rank); s != nil {
			fill(m, *s, valueFromRank[rank])
		}
	}
	return m
}

// Decode returns the first run of hours holding rank's value, scanning days
// in canonical order. Later runs of the same rank are ignored since a
// participant only ever ranks one span per rank. The second result is false
// when the rank is absent or the matrix is malformed.
func Decode(m grid.PriorityMatrix, rank int) (grid.TimeSpan, bool) {
	if rank < 1 || rank > 3 || !m.IsWellFormed() {
		return grid.TimeSpan{}, false
	}
	target := valueFromRank[rank]

	for d, row := range m {
		runs := scanRuns(row, func(v int) bool { return v == target })
		if len(runs) > 0 {
			return hourSpan(d, runs[0]), true
		}
	}
	return grid.TimeSpan{}, false
}

// DecodeAvailability returns one span per maximal run of non-zero hours on
// each day. A malformed matrix decodes to no availability.
func DecodeAvailability(m grid.PriorityMatrix) []grid.TimeSpan {
	if !m.IsWellFormed() {
		return nil
	}

	var spans []grid.TimeSpan
	for d, row := range m {
		for _, r := range scanRuns(row, func(v int) bool { return v != 0 }) {
			spans = append(spans, hourSpan(d, r))
		}
	}
	return spans
}

// DecodeRanks decodes all three ranks at once.
func DecodeRanks(m grid.PriorityMatrix) grid.RankSpans {
	var ranks grid.RankSpans
	if s, ok := Decode(m, 1); ok {
		ranks.Rank1 = &s
	}
	if s, ok := Decode(m, 2); ok {
		ranks.Rank2 = &s
	}
	if s, ok := Decode(m, 3); ok {
		ranks.Rank3 = &s
	}
	return ranks
}

type hourRun struct {
	start, end int
}

// scanRuns finds maximal runs of matching hours. Hour 24 acts as a
// non-matching sentinel so a run reaching midnight is closed.
func scanRuns(row []int, match func(int) bool) []hourRun {
	var runs []hourRun
	start := -1
	for h := 0; h <= grid.MatrixHours; h++ {
		hit := h < grid.MatrixHours && match(row[h])
		if hit && start < 0 {
			start = h
		}
		if !hit && start >= 0 {
			runs = append(runs, hourRun{start: start, end: h})
			start = -1
		}
	}
	return runs
}

func hourSpan(dayIdx int, r hourRun) grid.TimeSpan {
	return grid.TimeSpan{
		Day:       grid.Days[dayIdx],
		StartTime: timegrid.FormatMinutesToTime(r.start * 60),
		EndTime:   timegrid.FormatMinutesToTime(r.end * 60),
	}
}

// fill writes value into every hour touched by s. Only the hour part of the
// span boundaries is used, matching the hourly resolution of the matrix.
func fill(m grid.PriorityMatrix, s grid.TimeSpan, value int) {
	dayIdx := grid.DayIndex(s.Day)
	if dayIdx == grid.UnknownDayIndex {
		return
	}
	start, ok := timegrid.ParseTimeToMinutes(s.StartTime)
	if !ok {
		return
	}
	end, ok := timegrid.ParseTimeToMinutes(s.EndTime)
	if !ok {
		return
	}
	for h := start / 60; h < end/60 && h < grid.MatrixHours; h++ {
		m[dayIdx][h] = value
	}
}

// Package timegrid converts between the interactive grid's discrete cells
// and the compact span form stored per participant.
package timegrid

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"meetgrid/models/grid"
)

const minutesPerDay = 24 * 60

// ParseTimeToMinutes converts "HH:MM" to minutes since midnight.
// "24:00" is accepted as the end of the day.
func ParseTimeToMinutes(t string) (int, bool) {
	hh, mm, ok := strings.Cut(strings.TrimSpace(t), ":")
	if !ok {
		return 0, false
	}
	hours, err := strconv.Atoi(hh)
	if err != nil || hours < 0 || hours > 24 {
		return 0, false
	}
	mins, err := strconv.Atoi(mm)
	if err != nil || mins < 0 || mins > 59 {
		return 0, false
	}
	total := hours*60 + mins
	if total > minutesPerDay {
		return 0, false
	}
	return total, true
}

// FormatMinutesToTime converts minutes since midnight to "HH:MM".
// 1440 formats as "24:00".
func FormatMinutesToTime(m int) string {
	return fmt.Sprintf("%02d:%02d", m/60, m%60)
}

// PointToNextPoint adds minutesToAdd to t and wraps around midnight.
// The day is never advanced; callers that cross midnight keep the same label.
func PointToNextPoint(t string, minutesToAdd int) string {
	current, ok := ParseTimeToMinutes(t)
	if !ok {
		return t
	}
	total := ((current+minutesToAdd)%minutesPerDay + minutesPerDay) % minutesPerDay
	return FormatMinutesToTime(total)
}

// PointsToSpans merges grid cells into the minimal set of contiguous spans.
// Cells on the same day whose offsets differ by exactly interval join one
// span [first, last+interval). Input order does not matter and duplicates
// collapse. Spans come out in canonical day order, then by start time.
// Cells on unknown days, with unparseable times, or that would run past
// midnight are dropped.
func PointsToSpans(points []grid.TimePoint, interval int) []grid.TimeSpan {
	if interval <= 0 || len(points) == 0 {
		return nil
	}

	byDay := make([][]int, len(grid.Days))
	for _, p := range points {
		dayIdx := grid.DayIndex(p.Day)
		if dayIdx == grid.UnknownDayIndex {
			continue
		}
		offset, ok := ParseTimeToMinutes(p.Time)
		if !ok || offset+interval > minutesPerDay {
			continue
		}
		byDay[dayIdx] = append(byDay[dayIdx], offset)
	}

	var spans []grid.TimeSpan
	for dayIdx, offsets := range byDay {
		if len(offsets) == 0 {
			continue
		}
		slices.Sort(offsets)
		offsets = slices.Compact(offsets)

		day := grid.Days[dayIdx]
		start := offsets[0]
		end := start + interval
		for _, cur := range offsets[1:] {
			if cur == end {
				end += interval
				continue
			}
			spans = append(spans, newSpan(day, start, end))
			start = cur
			end = cur + interval
		}
		spans = append(spans, newSpan(day, start, end))
	}
	return spans
}

// SpansToPoints expands spans into one cell per full interval step.
// A trailing partial step is dropped. "24:00" is only valid as an end.
func SpansToPoints(spans []grid.TimeSpan, interval int) []grid.TimePoint {
	if interval <= 0 {
		return nil
	}

	var points []grid.TimePoint
	for _, s := range spans {
		if !grid.IsKnownDay(s.Day) {
			continue
		}
		start, ok := ParseTimeToMinutes(s.StartTime)
		if !ok {
			continue
		}
		end, ok := ParseTimeToMinutes(s.EndTime)
		if !ok || start >= minutesPerDay || start >= end {
			continue
		}
		for t := start; t+interval <= end; t += interval {
			points = append(points, grid.TimePoint{Day: s.Day, Time: FormatMinutesToTime(t)})
		}
	}
	return points
}

// SortSpans orders spans by canonical day, then start, then end.
// Unknown days sort last. The input slice is sorted in place and returned.
func SortSpans(spans []grid.TimeSpan) []grid.TimeSpan {
	slices.SortStableFunc(spans, func(a, b grid.TimeSpan) int {
		if d := grid.DayIndex(a.Day) - grid.DayIndex(b.Day); d != 0 {
			return d
		}
		if d := minutesOrZero(a.StartTime) - minutesOrZero(b.StartTime); d != 0 {
			return d
		}
		return minutesOrZero(a.EndTime) - minutesOrZero(b.EndTime)
	})
	return spans
}

// TimeSlots lists the row labels of a grid from start (inclusive) to end
// (exclusive) in interval steps.
func TimeSlots(start, end string, interval int) []string {
	from, ok := ParseTimeToMinutes(start)
	if !ok || interval <= 0 {
		return nil
	}
	to, ok := ParseTimeToMinutes(end)
	if !ok {
		return nil
	}
	var slots []string
	for t := from; t < to; t += interval {
		slots = append(slots, FormatMinutesToTime(t))
	}
	return slots
}

func newSpan(day string, start, end int) grid.TimeSpan {
	return grid.TimeSpan{
		Day:       day,
		StartTime: FormatMinutesToTime(start),
		EndTime:   FormatMinutesToTime(end),
	}
}

func minutesOrZero(t string) int {
	m, _ := ParseTimeToMinutes(t)
	return m
}

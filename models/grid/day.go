package grid

// Days lists the weekday labels in canonical order. A day's index in this
// slice is its matrix row.
var Days = []string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}

// UnknownDayIndex is returned for labels outside Days so they sort last.
const UnknownDayIndex = 7

// DayIndex returns the canonical position of day, or UnknownDayIndex.
func DayIndex(day string) int {
	for i, d := range Days {
		if d == day {
			return i
		}
	}
	return UnknownDayIndex
}

// IsKnownDay reports whether day is one of the canonical labels.
func IsKnownDay(day string) bool {
	return DayIndex(day) != UnknownDayIndex
}

// DayLabel returns the label for a 0..6 index, or "" when out of range.
func DayLabel(index int) string {
	if index < 0 || index >= len(Days) {
		return ""
	}
	return Days[index]
}

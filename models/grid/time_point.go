package grid

// TimePoint is one selectable cell on the weekly grid.
type TimePoint struct {
	Day  string `json:"day"`
	Time string `json:"time"`
}

// Key returns the "Day-HH:MM" form used for set membership and heatmap lookups.
func (p TimePoint) Key() string {
	return p.Day + "-" + p.Time
}

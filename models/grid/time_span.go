package grid

// TimeSpan is a half-open [StartTime, EndTime) range on one day.
type TimeSpan struct {
	Day       string `json:"day"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
}

// Key identifies a span in rank selections ("Day|HH:MM|HH:MM").
func (s TimeSpan) Key() string {
	return s.Day + "|" + s.StartTime + "|" + s.EndTime
}

// Label is the human readable form shown next to rank choices.
func (s TimeSpan) Label() string {
	return s.Day + " " + s.StartTime + "~" + s.EndTime
}

// RankSpans holds a participant's optional top three preferences.
type RankSpans struct {
	Rank1 *TimeSpan `json:"rank1,omitempty"`
	Rank2 *TimeSpan `json:"rank2,omitempty"`
	Rank3 *TimeSpan `json:"rank3,omitempty"`
}

// ByRank returns the span for rank 1..3, or nil.
func (r RankSpans) ByRank(rank int) *TimeSpan {
	switch rank {
	case 1:
		return r.Rank1
	case 2:
		return r.Rank2
	case 3:
		return r.Rank3
	}
	return nil
}

package grid

import "time"

// Draft is a participant's in-progress grid selection, kept until the
// availability is submitted.
type Draft struct {
	UserID    string     `json:"user_id"`
	Interval  int        `json:"interval"`
	Spans     []TimeSpan `json:"spans"`
	Ranks     RankSpans  `json:"ranks"`
	UpdatedAt time.Time  `json:"updated_at"`
}

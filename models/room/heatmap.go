package room

// HeatmapResponse is the top-level JSON returned by GET /room/heatmap/{link}.
// NumAvailable is indexed [day][hour].
type HeatmapResponse struct {
	Status       string  `json:"status"`
	Message      string  `json:"message"`
	NumUsers     int     `json:"num_users"`
	NumAvailable [][]int `json:"num_available"`
}

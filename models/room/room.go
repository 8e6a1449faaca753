package room

// Room describes a meeting room as returned by GET /room/{link}.
type Room struct {
	Status      string `json:"status"`
	Message     string `json:"message"`
	RoomLink    string `json:"room_link"`
	Title       string `json:"title"`
	Description string `json:"description"`
	NumUsers    int    `json:"num_users"`
}

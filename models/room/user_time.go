package room

import "meetgrid/models/grid"

// RegisterUserTimeRequest is the body of POST /user/time.
type RegisterUserTimeRequest struct {
	UserID       string              `json:"user_id"`
	Availability grid.PriorityMatrix `json:"availability"`
}

// UserTimeResponse is returned by GET /user/time/{user_id}.
type UserTimeResponse struct {
	Status       string              `json:"status"`
	Message      string              `json:"message"`
	Availability grid.PriorityMatrix `json:"availability"`
}

// StatusResponse is the generic acknowledgement of the room service.
type StatusResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

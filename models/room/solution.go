package room

import (
	"encoding/json"
	"fmt"
)

// UnavailableUser names a participant who cannot attend a slot.
type UnavailableUser struct {
	Username string `json:"username"`
}

// UnmarshalJSON accepts both {"username": "..."} and a bare "..." string,
// since older solver builds emitted plain names.
func (u *UnavailableUser) UnmarshalJSON(data []byte) error {
	var name string
	if err := json.Unmarshal(data, &name); err == nil {
		u.Username = name
		return nil
	}

	// Alias avoids recursing into this method.
	type Alias UnavailableUser
	aux := (*Alias)(u)
	if err := json.Unmarshal(data, aux); err != nil {
		return fmt.Errorf("failed to unmarshal unavailable user: %w", err)
	}
	return nil
}

// SolutionRecord is one hour-slot candidate returned by the solver.
// StartHour == EndHour for a single slot.
type SolutionRecord struct {
	Day              int               `json:"day"`
	StartHour        int               `json:"start_hour"`
	EndHour          int               `json:"end_hour"`
	Rank             int               `json:"rank"`
	UnavailableUsers []UnavailableUser `json:"unavailable_users"`
}

// MergedWindow is a maximal run of slots sharing one unavailable-user set.
type MergedWindow struct {
	Day              int               `json:"day"`
	StartHour        int               `json:"start_hour"`
	EndHour          int               `json:"end_hour"`
	Rank             int               `json:"rank"`
	UnavailableUsers []UnavailableUser `json:"unavailable_users"`
}

// SolutionResponse is the top-level JSON returned by GET /room/solution/{link}
type SolutionResponse struct {
	Status   string           `json:"status"`
	Message  string           `json:"message"`
	Solution []SolutionRecord `json:"solution"`
}

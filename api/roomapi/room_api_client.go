package roomapi

import (
	"context"
	"net/url"

	"meetgrid/api"
	"meetgrid/models/grid"
	"meetgrid/models/room"
)

// RoomApiClient embeds the common HTTPClient
type RoomApiClient struct {
	*api.HTTPClient
}

// NewRoomApiClient creates a new instance of RoomApiClient
func NewRoomApiClient(httpClient *api.HTTPClient) *RoomApiClient {
	return &RoomApiClient{
		HTTPClient: httpClient,
	}
}

// GetRoom retrieves the room metadata for a share link
func (c *RoomApiClient) GetRoom(ctx context.Context, roomLink string) (*room.Room, error) {
	var response room.Room
	if err := c.Request(ctx, "GET", "/room/"+url.PathEscape(roomLink), nil, nil, &response); err != nil {
		return nil, err
	}
	return &response, nil
}

// RegisterUserTime stores a participant's priority matrix
func (c *RoomApiClient) RegisterUserTime(ctx context.Context, userID string, availability grid.PriorityMatrix) error {
	body := room.RegisterUserTimeRequest{
		UserID:       userID,
		Availability: availability,
	}
	var response room.StatusResponse
	return c.Request(ctx, "POST", "/user/time", nil, body, &response)
}

// GetUserTime retrieves a participant's stored priority matrix
func (c *RoomApiClient) GetUserTime(ctx context.Context, userID string) (grid.PriorityMatrix, error) {
	var response room.UserTimeResponse
	if err := c.Request(ctx, "GET", "/user/time/"+url.PathEscape(userID), nil, nil, &response); err != nil {
		return nil, err
	}
	return response.Availability, nil
}

// DeleteUser removes a participant from their room
func (c *RoomApiClient) DeleteUser(ctx context.Context, userID string) error {
	var response room.StatusResponse
	return c.Request(ctx, "DELETE", "/user/delete/"+url.PathEscape(userID), nil, nil, &response)
}

// GetRoomSolution retrieves the solver's per-slot records for a room
func (c *RoomApiClient) GetRoomSolution(ctx context.Context, roomLink string) (*room.SolutionResponse, error) {
	var response room.SolutionResponse
	if err := c.Request(ctx, "GET", "/room/solution/"+url.PathEscape(roomLink), nil, nil, &response); err != nil {
		return nil, err
	}
	return &response, nil
}

// GetRoomHeatmap retrieves the per-cell availability counts for a room
func (c *RoomApiClient) GetRoomHeatmap(ctx context.Context, roomLink string) (*room.HeatmapResponse, error) {
	var response room.HeatmapResponse
	if err := c.Request(ctx, "GET", "/room/heatmap/"+url.PathEscape(roomLink), nil, nil, &response); err != nil {
		return nil, err
	}
	return &response, nil
}

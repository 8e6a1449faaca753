package roomapi

import (
	"context"
	"log"
	"sync"

	"meetgrid/config"
	"meetgrid/models/grid"
	"meetgrid/models/room"
	"meetgrid/util"
)

// RoomApiClientMock serves canned responses from the resources directory and
// keeps registered matrices in memory.
type RoomApiClientMock struct {
	mu        sync.RWMutex
	userTimes map[string]grid.PriorityMatrix
}

// NewRoomApiClientMock creates a new instance of RoomApiClientMock
func NewRoomApiClientMock() *RoomApiClientMock {
	return &RoomApiClientMock{userTimes: make(map[string]grid.PriorityMatrix)}
}

// GetRoom returns the room fixture
func (c *RoomApiClientMock) GetRoom(ctx context.Context, roomLink string) (*room.Room, error) {
	r, err := util.ReadRoomFromJSON(config.GetResourcePath(config.ROOM_RESOURCE))
	if err != nil {
		log.Println("[RoomApiClientMock] Could not read room from json")
		return nil, err
	}
	r.RoomLink = roomLink
	return r, nil
}

// RegisterUserTime keeps the matrix in memory
func (c *RoomApiClientMock) RegisterUserTime(ctx context.Context, userID string, availability grid.PriorityMatrix) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.userTimes[userID] = availability
	return nil
}

// GetUserTime returns a registered matrix, falling back to the fixture
func (c *RoomApiClientMock) GetUserTime(ctx context.Context, userID string) (grid.PriorityMatrix, error) {
	c.mu.RLock()
	m, ok := c.userTimes[userID]
	c.mu.RUnlock()
	if ok {
		return m, nil
	}

	resp, err := util.ReadUserTimeResponseFromJSON(config.GetResourcePath(config.USER_TIME_RESPONSE_RESOURCE))
	if err != nil {
		log.Println("[RoomApiClientMock] Could not read user time response from json")
		return nil, err
	}
	return resp.Availability, nil
}

// DeleteUser forgets a registered matrix
func (c *RoomApiClientMock) DeleteUser(ctx context.Context, userID string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.userTimes, userID)
	return nil
}

// GetRoomSolution returns the solution fixture
func (c *RoomApiClientMock) GetRoomSolution(ctx context.Context, roomLink string) (*room.SolutionResponse, error) {
	resp, err := util.ReadSolutionResponseFromJSON(config.GetResourcePath(config.SOLUTION_RESPONSE_RESOURCE))
	if err != nil {
		log.Println("[RoomApiClientMock] Could not read solution response from json")
		return nil, err
	}
	return resp, nil
}

// GetRoomHeatmap returns the heatmap fixture
func (c *RoomApiClientMock) GetRoomHeatmap(ctx context.Context, roomLink string) (*room.HeatmapResponse, error) {
	resp, err := util.ReadHeatmapResponseFromJSON(config.GetResourcePath(config.HEATMAP_RESPONSE_RESOURCE))
	if err != nil {
		log.Println("[RoomApiClientMock] Could not read heatmap response from json")
		return nil, err
	}
	return resp, nil
}

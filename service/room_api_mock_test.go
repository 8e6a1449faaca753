package services

import (
	"context"

	"github.com/stretchr/testify/mock"

	"meetgrid/models/grid"
	"meetgrid/models/room"
)

type mockRoomAPI struct {
	mock.Mock
}

func (m *mockRoomAPI) GetRoom(ctx context.Context, roomLink string) (*room.Room, error) {
	args := m.Called(ctx, roomLink)
	r, _ := args.Get(0).(*room.Room)
	return r, args.Error(1)
}

func (m *mockRoomAPI) RegisterUserTime(ctx context.Context, userID string, availability grid.PriorityMatrix) error {
	return m.Called(ctx, userID, availability).Error(0)
}

func (m *mockRoomAPI) GetUserTime(ctx context.Context, userID string) (grid.PriorityMatrix, error) {
	args := m.Called(ctx, userID)
	pm, _ := args.Get(0).(grid.PriorityMatrix)
	return pm, args.Error(1)
}

func (m *mockRoomAPI) DeleteUser(ctx context.Context, userID string) error {
	return m.Called(ctx, userID).Error(0)
}

func (m *mockRoomAPI) GetRoomSolution(ctx context.Context, roomLink string) (*room.SolutionResponse, error) {
	args := m.Called(ctx, roomLink)
	r, _ := args.Get(0).(*room.SolutionResponse)
	return r, args.Error(1)
}

func (m *mockRoomAPI) GetRoomHeatmap(ctx context.Context, roomLink string) (*room.HeatmapResponse, error) {
	args := m.Called(ctx, roomLink)
	r, _ := args.Get(0).(*room.HeatmapResponse)
	return r, args.Error(1)
}

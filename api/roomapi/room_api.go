package roomapi

import (
	"context"

	"meetgrid/models/grid"
	"meetgrid/models/room"
)

// RoomAPI defines the interface for interacting with the room and solver service
type RoomAPI interface {
	GetRoom(ctx context.Context, roomLink string) (*room.Room, error)
	RegisterUserTime(ctx context.Context, userID string, availability grid.PriorityMatrix) error
	GetUserTime(ctx context.Context, userID string) (grid.PriorityMatrix, error)
	DeleteUser(ctx context.Context, userID string) error
	GetRoomSolution(ctx context.Context, roomLink string) (*room.SolutionResponse, error)
	GetRoomHeatmap(ctx context.Context, roomLink string) (*room.HeatmapResponse, error)
}

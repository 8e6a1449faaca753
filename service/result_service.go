package services

import (
	"context"
	"fmt"
	"log"

	"golang.org/x/sync/errgroup"

	"meetgrid/api/roomapi"
	"meetgrid/heatmap"
	"meetgrid/models/room"
	"meetgrid/solution"
)

// RoomResult is everything the result page shows for a room.
type RoomResult struct {
	Room     room.Room           `json:"room"`
	NumUsers int                 `json:"num_users"`
	Windows  []room.MergedWindow `json:"windows"`
	Heatmap  map[string]int      `json:"heatmap"`
}

// ResultService assembles candidate windows and the availability heatmap.
// Nothing is cached; every call recomputes from the room service.
type ResultService struct {
	roomAPI roomapi.RoomAPI
}

// NewResultService constructs a new ResultService.
func NewResultService(roomAPI roomapi.RoomAPI) *ResultService {
	return &ResultService{roomAPI: roomAPI}
}

// GetResult fetches room info, heatmap and solver records in parallel and
// consolidates the records into merged windows.
func (rs *ResultService) GetResult(ctx context.Context, roomLink string) (*RoomResult, error) {
	var (
		info *room.Room
		hm   *room.HeatmapResponse
		sol  *room.SolutionResponse
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		info, err = rs.roomAPI.GetRoom(gctx, roomLink)
		if err != nil {
			return fmt.Errorf("failed to get room: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		hm, err = rs.roomAPI.GetRoomHeatmap(gctx, roomLink)
		if err != nil {
			return fmt.Errorf("failed to get room heatmap: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		sol, err = rs.roomAPI.GetRoomSolution(gctx, roomLink)
		if err != nil {
			return fmt.Errorf("failed to get room solution: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		log.Printf("[ResultService] GetResult failed for room=%s: %v", roomLink, err)
		return nil, err
	}

	windows := solution.Consolidate(sol.Solution, hm.NumUsers)
	log.Printf("[ResultService] room=%s users=%d records=%d windows=%d",
		roomLink, hm.NumUsers, len(sol.Solution), len(windows))

	if windows == nil {
		windows = []room.MergedWindow{}
	}
	return &RoomResult{
		Room:     *info,
		NumUsers: hm.NumUsers,
		Windows:  windows,
		Heatmap:  heatmap.ToSparse(hm.NumAvailable),
	}, nil
}

// GetHeatmap returns the raw count matrix, used for chart rendering.
func (rs *ResultService) GetHeatmap(ctx context.Context, roomLink string) (*room.HeatmapResponse, error) {
	hm, err := rs.roomAPI.GetRoomHeatmap(ctx, roomLink)
	if err != nil {
		return nil, fmt.Errorf("failed to get room heatmap: %w", err)
	}
	return hm, nil
}

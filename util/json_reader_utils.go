package util

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"meetgrid/models/grid"
	"meetgrid/models/room"
)

func readJSON(filePath string, out interface{}, what string) error {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return fmt.Errorf("failed to read file %q: %w", filePath, err)
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("failed to unmarshal %s: %w", what, err)
	}
	return nil
}

// ReadSolutionResponseFromJSON loads a SolutionResponse from JSON on disk.
func ReadSolutionResponseFromJSON(filePath string) (*room.SolutionResponse, error) {
	var resp room.SolutionResponse
	if err := readJSON(filePath, &resp, "SolutionResponse"); err != nil {
		return nil, err
	}
	return &resp, nil
}

// ReadHeatmapResponseFromJSON loads a HeatmapResponse from JSON on disk.
func ReadHeatmapResponseFromJSON(filePath string) (*room.HeatmapResponse, error) {
	var resp room.HeatmapResponse
	if err := readJSON(filePath, &resp, "HeatmapResponse"); err != nil {
		return nil, err
	}
	return &resp, nil
}

// ReadUserTimeResponseFromJSON loads a UserTimeResponse from JSON on disk.
func ReadUserTimeResponseFromJSON(filePath string) (*room.UserTimeResponse, error) {
	var resp room.UserTimeResponse
	if err := readJSON(filePath, &resp, "UserTimeResponse"); err != nil {
		return nil, err
	}
	return &resp, nil
}

// ReadRoomFromJSON loads a single Room from JSON on disk.
func ReadRoomFromJSON(filePath string) (*room.Room, error) {
	var r room.Room
	if err := readJSON(filePath, &r, "Room"); err != nil {
		return nil, err
	}
	return &r, nil
}

// PrintMergedWindows writes one line per window, e.g.
// "#1 Mon 03:00-05:00 without Alice, Bob".
func PrintMergedWindows(w io.Writer, windows []room.MergedWindow) {
	if len(windows) == 0 {
		fmt.Fprintln(w, "No candidate windows.")
		return
	}
	for _, win := range windows {
		fmt.Fprintf(w, "#%d %s %02d:00-%02d:00", win.Rank, grid.DayLabel(win.Day), win.StartHour, win.EndHour+1)
		if len(win.UnavailableUsers) == 0 {
			fmt.Fprintln(w, " everyone available")
			continue
		}
		names := make([]string, len(win.UnavailableUsers))
		for i, u := range win.UnavailableUsers {
			names[i] = u.Username
		}
		fmt.Fprintf(w, " without %s\n", strings.Join(names, ", "))
	}
}

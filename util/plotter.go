package util

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"meetgrid/heatmap"
	"meetgrid/models/grid"
	"meetgrid/models/room"
	"meetgrid/timegrid"
)

// heatmapColors goes from one available participant to everyone.
var heatmapColors = []string{"#ede9fe", "#c4b5fd", "#8b5cf6", "#6d28d9"}

// NewAvailabilityHeatMap builds an hour-by-day heat map of how many
// participants are available in each cell.
func NewAvailabilityHeatMap(title string, resp room.HeatmapResponse) *charts.HeatMap {
	hours := timegrid.TimeSlots("00:00", "24:00", 60)

	var data []opts.HeatMapData
	for d, row := range resp.NumAvailable {
		if d >= len(grid.Days) {
			break
		}
		for h, count := range row {
			if count <= 0 || h >= len(hours) {
				continue
			}
			data = append(data, opts.HeatMapData{
				Name:  heatmap.Key(d, h),
				Value: [3]interface{}{h, d, count},
			})
		}
	}

	maxCount := max(resp.NumUsers, heatmap.MaxCount(resp.NumAvailable), 1)

	hm := charts.NewHeatMap()
	hm.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			PageTitle: title,
			Width:     "900px",
			Height:    "420px",
		}),
		charts.WithTitleOpts(opts.Title{
			Title:    title,
			Subtitle: fmt.Sprintf("%d participants", resp.NumUsers),
		}),
		charts.WithXAxisOpts(opts.XAxis{
			Type:      "category",
			SplitArea: &opts.SplitArea{Show: opts.Bool(true)},
		}),
		charts.WithYAxisOpts(opts.YAxis{
			Type:      "category",
			Data:      grid.Days,
			SplitArea: &opts.SplitArea{Show: opts.Bool(true)},
		}),
		charts.WithVisualMapOpts(opts.VisualMap{
			Calculable: opts.Bool(true),
			Min:        0,
			Max:        float32(maxCount),
			InRange:    &opts.VisualMapInRange{Color: heatmapColors},
		}),
	)
	hm.SetXAxis(hours).AddSeries("available", data)
	return hm
}

// RenderHeatmap writes the availability heat map as a standalone HTML page.
func RenderHeatmap(w io.Writer, title string, resp room.HeatmapResponse) error {
	if err := NewAvailabilityHeatMap(title, resp).Render(w); err != nil {
		return fmt.Errorf("failed to render heatmap: %w", err)
	}
	return nil
}

// RenderHeatmapFile renders the heat map into an HTML file at path.
func RenderHeatmapFile(path, title string, resp room.HeatmapResponse) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create HTML file %q: %w", path, err)
	}
	defer f.Close()

	if err := RenderHeatmap(f, title, resp); err != nil {
		return err
	}
	log.Printf("Heatmap generated: %s", path)
	return nil
}

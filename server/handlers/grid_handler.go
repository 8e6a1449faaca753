package handlers

import (
	"net/http"
	"strconv"

	"meetgrid/models/grid"
	"meetgrid/timegrid"
)

// SpansRequest is the body of POST /v1/grid/spans.
type SpansRequest struct {
	Interval int              `json:"interval"`
	Points   []grid.TimePoint `json:"points"`
}

// PointsRequest is the body of POST /v1/grid/points.
type PointsRequest struct {
	Interval int             `json:"interval"`
	Spans    []grid.TimeSpan `json:"spans"`
}

// SelectionEvent is one pointer action replayed against a selection.
// Op is one of press, enter, release, toggle, clear.
type SelectionEvent struct {
	Op    string          `json:"op"`
	Point *grid.TimePoint `json:"point,omitempty"`
}

// SelectionRequest is the body of POST /v1/grid/selection.
type SelectionRequest struct {
	Interval int              `json:"interval"`
	Spans    []grid.TimeSpan  `json:"spans"`
	Events   []SelectionEvent `json:"events"`
}

// GridResponse is returned by every grid endpoint.
type GridResponse struct {
	Interval int              `json:"interval"`
	Spans    []grid.TimeSpan  `json:"spans"`
	Points   []grid.TimePoint `json:"points"`
}

// GridHandler exposes the stateless grid codec.
type GridHandler struct {
	defaultInterval int
}

func NewGridHandler(defaultInterval int) *GridHandler {
	return &GridHandler{defaultInterval: defaultInterval}
}

// MergePoints handles POST /v1/grid/spans
func (h *GridHandler) MergePoints(w http.ResponseWriter, r *http.Request) {
	var req SpansRequest
	if !decodeBody(w, r, &req) {
		return
	}
	interval, ok := h.interval(w, req.Interval)
	if !ok {
		return
	}

	spans := timegrid.PointsToSpans(req.Points, interval)
	writeJSON(w, http.StatusOK, GridResponse{
		Interval: interval,
		Spans:    orEmpty(spans),
		Points:   orEmpty(timegrid.SpansToPoints(spans, interval)),
	})
}

// ExpandSpans handles POST /v1/grid/points
func (h *GridHandler) ExpandSpans(w http.ResponseWriter, r *http.Request) {
	var req PointsRequest
	if !decodeBody(w, r, &req) {
		return
	}
	interval, ok := h.interval(w, req.Interval)
	if !ok {
		return
	}

	points := timegrid.SpansToPoints(req.Spans, interval)
	writeJSON(w, http.StatusOK, GridResponse{
		Interval: interval,
		Spans:    orEmpty(timegrid.PointsToSpans(points, interval)),
		Points:   orEmpty(points),
	})
}

// ApplySelection handles POST /v1/grid/selection. It rebuilds a session from
// the given spans, replays the events and returns the resulting selection.
func (h *GridHandler) ApplySelection(w http.ResponseWriter, r *http.Request) {
	var req SelectionRequest
	if !decodeBody(w, r, &req) {
		return
	}
	interval, ok := h.interval(w, req.Interval)
	if !ok {
		return
	}

	session := timegrid.NewSelectionSessionFromSpans(req.Spans, interval)
	for i, ev := range req.Events {
		switch ev.Op {
		case "press":
			if !requirePoint(w, ev, i) {
				return
			}
			session.Press(*ev.Point)
		case "enter":
			if !requirePoint(w, ev, i) {
				return
			}
			session.Enter(*ev.Point)
		case "toggle":
			if !requirePoint(w, ev, i) {
				return
			}
			session.Toggle(*ev.Point)
		case "release":
			session.Release()
		case "clear":
			session.Clear()
		default:
			http.Error(w, "Unknown event op at index "+strconv.Itoa(i), http.StatusBadRequest)
			return
		}
	}

	writeJSON(w, http.StatusOK, GridResponse{
		Interval: interval,
		Spans:    orEmpty(session.Spans()),
		Points:   orEmpty(session.Points()),
	})
}

func (h *GridHandler) interval(w http.ResponseWriter, n int) (int, bool) {
	if n == 0 {
		return h.defaultInterval, true
	}
	if !validInterval(n) {
		http.Error(w, "Invalid argument "+INTERVAL_QUERY_ARG, http.StatusBadRequest)
		return 0, false
	}
	return n, true
}

func requirePoint(w http.ResponseWriter, ev SelectionEvent, i int) bool {
	if ev.Point == nil {
		http.Error(w, "Missing point at index "+strconv.Itoa(i), http.StatusBadRequest)
		return false
	}
	return true
}

func orEmpty[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}

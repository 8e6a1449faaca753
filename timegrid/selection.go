package timegrid

import "meetgrid/models/grid"

// DragMode decides what entering a cell does while the pointer is held.
type DragMode int

const (
	DragSelect DragMode = iota
	DragDeselect
)

func (m DragMode) String() string {
	if m == DragDeselect {
		return "deselect"
	}
	return "select"
}

// SelectionSession holds the state of one participant editing the grid.
// It is owned by a single caller and is not safe for concurrent use.
type SelectionSession struct {
	interval   int
	selected   map[string]grid.TimePoint
	dragMode   DragMode
	isDragging bool
}

// NewSelectionSession returns an empty session for the given slot interval.
func NewSelectionSession(interval int) *SelectionSession {
	return &SelectionSession{
		interval: interval,
		selected: make(map[string]grid.TimePoint),
	}
}

// NewSelectionSessionFromSpans starts a session preloaded with spans, as when
// a participant revisits the grid.
func NewSelectionSessionFromSpans(spans []grid.TimeSpan, interval int) *SelectionSession {
	s := NewSelectionSession(interval)
	s.SetPoints(SpansToPoints(spans, interval))
	return s
}

// Interval returns the slot width in minutes.
func (s *SelectionSession) Interval() int {
	return s.interval
}

// IsSelected reports whether p is part of the selection.
func (s *SelectionSession) IsSelected(p grid.TimePoint) bool {
	_, ok := s.selected[p.Key()]
	return ok
}

// IsDragging reports whether a drag is in progress.
func (s *SelectionSession) IsDragging() bool {
	return s.isDragging
}

// DragMode returns the mode chosen by the last Press.
func (s *SelectionSession) DragMode() DragMode {
	return s.dragMode
}

// Toggle flips a single cell.
func (s *SelectionSession) Toggle(p grid.TimePoint) {
	if s.IsSelected(p) {
		delete(s.selected, p.Key())
		return
	}
	s.selected[p.Key()] = p
}

// Press starts a drag on p. Pressing a selected cell deselects for the rest
// of the drag, pressing an empty one selects.
func (s *SelectionSession) Press(p grid.TimePoint) {
	if s.IsSelected(p) {
		s.dragMode = DragDeselect
	} else {
		s.dragMode = DragSelect
	}
	s.isDragging = true
	s.Toggle(p)
}

// Enter applies the drag mode to p. It is a no-op when no drag is active.
func (s *SelectionSession) Enter(p grid.TimePoint) {
	if !s.isDragging {
		return
	}
	switch s.dragMode {
	case DragSelect:
		s.selected[p.Key()] = p
	case DragDeselect:
		delete(s.selected, p.Key())
	}
}

// Release ends the current drag.
func (s *SelectionSession) Release() {
	s.isDragging = false
}

// Clear drops the whole selection.
func (s *SelectionSession) Clear() {
	s.selected = make(map[string]grid.TimePoint)
	s.isDragging = false
}

// SetPoints replaces the selection.
func (s *SelectionSession) SetPoints(points []grid.TimePoint) {
	s.selected = make(map[string]grid.TimePoint, len(points))
	for _, p := range points {
		s.selected[p.Key()] = p
	}
}

// Points returns the selected cells in canonical order.
func (s *SelectionSession) Points() []grid.TimePoint {
	return SpansToPoints(s.Spans(), s.interval)
}

// Spans returns the merged selection.
func (s *SelectionSession) Spans() []grid.TimeSpan {
	points := make([]grid.TimePoint, 0, len(s.selected))
	for _, p := range s.selected {
		points = append(points, p)
	}
	return PointsToSpans(points, s.interval)
}

// Len returns the number of selected cells.
func (s *SelectionSession) Len() int {
	return len(s.selected)
}

package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"slices"
	"time"

	"meetgrid/api/roomapi"
	"meetgrid/dao/redis"
	"meetgrid/models/grid"
	"meetgrid/rankmatrix"
	"meetgrid/timegrid"
)

var (
	// ErrNoAvailability is returned when a submission selects no time at all.
	ErrNoAvailability = errors.New("no available time selected")

	// ErrInvalidRanks is returned when rank choices break the ordering rules.
	ErrInvalidRanks = errors.New("invalid rank selection")
)

// Availability is a participant's decoded grid state.
type Availability struct {
	Interval int              `json:"interval"`
	Spans    []grid.TimeSpan  `json:"spans"`
	Points   []grid.TimePoint `json:"points"`
	Ranks    grid.RankSpans   `json:"ranks"`
}

// RankOption is one selectable choice for the rank pickers.
type RankOption struct {
	Key   string        `json:"key"`
	Label string        `json:"label"`
	Span  grid.TimeSpan `json:"span"`
}

// AvailabilityService submits and restores participants' weekly availability.
type AvailabilityService struct {
	roomAPI  roomapi.RoomAPI
	draftDao *redis.RedisDraftDAO
	interval int
	now      func() time.Time
}

// NewAvailabilityService constructs a new AvailabilityService. interval is
// the grid slot width used when expanding spans back into cells.
func NewAvailabilityService(
	roomAPI roomapi.RoomAPI,
	draftDao *redis.RedisDraftDAO,
	interval int) *AvailabilityService {

	return &AvailabilityService{
		roomAPI:  roomAPI,
		draftDao: draftDao,
		interval: interval,
		now:      time.Now,
	}
}

// Submit encodes spans and ranks into a priority matrix, registers it with
// the room service and clears the participant's draft.
func (as *AvailabilityService) Submit(ctx context.Context, userID string, spans []grid.TimeSpan, ranks grid.RankSpans) (grid.PriorityMatrix, error) {
	if len(spans) == 0 {
		return nil, ErrNoAvailability
	}
	if err := ValidateRanks(spans, ranks); err != nil {
		return nil, err
	}

	matrix := rankmatrix.Encode(spans, ranks)
	log.Printf("[AvailabilityService] Registering availability for user_id=%s (%d spans)", userID, len(spans))
	if err := as.roomAPI.RegisterUserTime(ctx, userID, matrix); err != nil {
		return nil, fmt.Errorf("failed to register user time: %w", err)
	}

	if err := as.draftDao.DeleteDraft(ctx, userID); err != nil {
		log.Printf("[AvailabilityService] Failed to clear draft for %s: %v", userID, err)
	}
	return matrix, nil
}

// Load fetches the participant's stored matrix and decodes it. A malformed
// matrix is treated as no availability recorded.
func (as *AvailabilityService) Load(ctx context.Context, userID string, interval int) (*Availability, error) {
	if interval <= 0 {
		interval = as.interval
	}

	matrix, err := as.roomAPI.GetUserTime(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get user time: %w", err)
	}
	if !matrix.IsWellFormed() {
		log.Printf("[AvailabilityService] Malformed matrix for user_id=%s, treating as empty", userID)
	}

	spans := rankmatrix.DecodeAvailability(matrix)
	return &Availability{
		Interval: interval,
		Spans:    spans,
		Points:   timegrid.SpansToPoints(spans, interval),
		Ranks:    rankmatrix.DecodeRanks(matrix),
	}, nil
}

// SaveDraft caches an in-progress selection. The spans are normalized through
// the grid codec so the stored draft is always merged.
func (as *AvailabilityService) SaveDraft(ctx context.Context, d grid.Draft) (*grid.Draft, error) {
	if d.Interval <= 0 {
		d.Interval = as.interval
	}
	d.Spans = timegrid.PointsToSpans(timegrid.SpansToPoints(d.Spans, d.Interval), d.Interval)
	d.UpdatedAt = as.now().UTC()

	if err := as.draftDao.SaveDraft(ctx, d); err != nil {
		return nil, err
	}
	return &d, nil
}

// LoadDraft returns the cached draft, or redis.ErrCacheMiss.
func (as *AvailabilityService) LoadDraft(ctx context.Context, userID string) (*grid.Draft, error) {
	return as.draftDao.GetDraft(ctx, userID)
}

// PendingDrafts lists participants holding an unsubmitted draft, sorted.
func (as *AvailabilityService) PendingDrafts(ctx context.Context) ([]string, error) {
	ids, err := as.draftDao.ListDraftUserIDs(ctx)
	if err != nil {
		return nil, err
	}
	slices.Sort(ids)
	log.Printf("[AvailabilityService] %d pending drafts", len(ids))
	return ids, nil
}

// Leave removes the participant from the room and drops their draft.
func (as *AvailabilityService) Leave(ctx context.Context, userID string) error {
	if err := as.roomAPI.DeleteUser(ctx, userID); err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}
	if err := as.draftDao.DeleteDraft(ctx, userID); err != nil {
		log.Printf("[AvailabilityService] Failed to clear draft for %s: %v", userID, err)
	}
	return nil
}

// RankOptions lists the spans a participant may rank, ordered by day, start
// and end. Unknown days go last.
func RankOptions(spans []grid.TimeSpan) []RankOption {
	sorted := timegrid.SortSpans(append([]grid.TimeSpan(nil), spans...))
	options := make([]RankOption, 0, len(sorted))
	for _, s := range sorted {
		options = append(options, RankOption{Key: s.Key(), Label: s.Label(), Span: s})
	}
	return options
}

// ValidateRanks checks that each rank is one of spans, that ranks are
// distinct, and that rank N is only set when rank N-1 is.
func ValidateRanks(spans []grid.TimeSpan, ranks grid.RankSpans) error {
	keys := make(map[string]struct{}, len(spans))
	for _, s := range spans {
		keys[s.Key()] = struct{}{}
	}

	used := make(map[string]int)
	for rank := 1; rank <= 3; rank++ {
		s := ranks.ByRank(rank)
		if s == nil {
			continue
		}
		if rank > 1 && ranks.ByRank(rank-1) == nil {
			return fmt.Errorf("%w: rank %d set without rank %d", ErrInvalidRanks, rank, rank-1)
		}
		if _, ok := keys[s.Key()]; !ok {
			return fmt.Errorf("%w: rank %d (%s) is not a selected span", ErrInvalidRanks, rank, s.Label())
		}
		if prev, dup := used[s.Key()]; dup {
			return fmt.Errorf("%w: rank %d repeats rank %d", ErrInvalidRanks, rank, prev)
		}
		used[s.Key()] = rank
	}
	return nil
}

package solution

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"meetgrid/models/room"
)

func users(names ...string) []room.UnavailableUser {
	out := make([]room.UnavailableUser, len(names))
	for i, n := range names {
		out[i] = room.UnavailableUser{Username: n}
	}
	return out
}

func record(day, start, end, rank int, names ...string) room.SolutionRecord {
	return room.SolutionRecord{Day: day, StartHour: start, EndHour: end, Rank: rank, UnavailableUsers: users(names...)}
}

func window(day, start, end, rank int, names ...string) room.MergedWindow {
	return room.MergedWindow{Day: day, StartHour: start, EndHour: end, Rank: rank, UnavailableUsers: users(names...)}
}

// Three participants, so the Alice+Bob record survives the everyone-away filter.
func TestConsolidate_SubsetGroups(t *testing.T) {
	solutions := []room.SolutionRecord{
		record(0, 3, 3, 1, "Alice"),
		record(0, 4, 4, 1, "Alice", "Bob"),
		record(0, 3, 3, 2),
	}

	got := Consolidate(solutions, 3)

	assert.Equal(t, []room.MergedWindow{
		window(0, 3, 3, 1, "Alice"),
		window(0, 3, 4, 1, "Alice", "Bob"),
		window(0, 3, 3, 2),
	}, got)
}

func TestConsolidate_EveryoneUnavailableIsDropped(t *testing.T) {
	solutions := []room.SolutionRecord{
		record(0, 3, 3, 1, "Alice"),
		record(0, 4, 4, 1, "Alice", "Bob"),
		record(0, 3, 3, 2),
	}

	got := Consolidate(solutions, 2)

	for _, w := range got {
		assert.Less(t, len(w.UnavailableUsers), 2)
	}
	assert.Equal(t, []room.MergedWindow{
		window(0, 3, 3, 1, "Alice"),
		window(0, 3, 3, 2),
	}, got)
}

func TestConsolidate_MergesConsecutiveHours(t *testing.T) {
	solutions := []room.SolutionRecord{
		record(2, 10, 10, 3),
		record(2, 9, 9, 2),
		record(2, 11, 11, 4),
		record(2, 14, 14, 1),
	}

	got := Consolidate(solutions, 4)

	assert.Equal(t, []room.MergedWindow{
		window(2, 9, 11, 1),
		window(2, 14, 14, 1),
	}, got)
}

func TestConsolidate_RankFallsBackToExactMatch(t *testing.T) {
	solutions := []room.SolutionRecord{
		record(1, 8, 8, 1),
		record(1, 9, 9, 5, "Carol"),
	}

	got := Consolidate(solutions, 3)

	require.Len(t, got, 2)
	assert.Equal(t, window(1, 8, 8, 1), got[0])
	// The {Carol} group also absorbs the better empty-set slot but keeps the
	// rank of its exact matches.
	assert.Equal(t, window(1, 8, 9, 5, "Carol"), got[1])
}

func TestConsolidate_DaysAreIndependent(t *testing.T) {
	solutions := []room.SolutionRecord{
		record(3, 5, 5, 2, "Dan"),
		record(1, 5, 5, 2, "Dan"),
		record(1, 6, 6, 2, "Dan"),
	}

	got := Consolidate(solutions, 2)

	assert.Equal(t, []room.MergedWindow{
		window(1, 5, 6, 2, "Dan"),
		window(3, 5, 5, 2, "Dan"),
	}, got)
}

func TestConsolidate_NormalizesMembership(t *testing.T) {
	solutions := []room.SolutionRecord{
		record(0, 1, 1, 2, "Bob", "Alice"),
		record(0, 2, 2, 2, "Alice", "Bob", "Alice"),
	}

	got := Consolidate(solutions, 5)

	assert.Equal(t, []room.MergedWindow{window(0, 1, 2, 2, "Alice", "Bob")}, got)
}

func TestConsolidate_EmptyInput(t *testing.T) {
	assert.Empty(t, Consolidate(nil, 3))
	assert.Empty(t, Consolidate([]room.SolutionRecord{}, 3))
}

func TestConsolidate_ZeroUsersFiltersEverything(t *testing.T) {
	solutions := []room.SolutionRecord{record(0, 1, 1, 1), record(0, 2, 2, 1, "Alice")}

	assert.Empty(t, Consolidate(solutions, 0))
}

func TestConsolidate_DoesNotMutateInput(t *testing.T) {
	solutions := []room.SolutionRecord{
		record(0, 5, 5, 1, "Bob"),
		record(0, 2, 2, 1, "Bob"),
	}
	before := append([]room.SolutionRecord(nil), solutions...)

	Consolidate(solutions, 3)

	assert.Equal(t, before, solutions)
}

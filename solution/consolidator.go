// Package solution turns the solver's per-hour records into the merged
// candidate windows shown to participants.
package solution

import (
	"cmp"
	"slices"
	"strings"

	"meetgrid/models/room"
)

// WorstRank is used when a group has no record to take a rank from.
const WorstRank = 999

// Consolidate merges solution records into maximal windows per distinct
// unavailable-user set.
//
// Records where everyone is unavailable are dropped. For each day and each
// distinct unavailable set U seen on that day, every record whose set is a
// subset of U joins the group: a slot that works while excluding fewer
// people still works while excluding U. Consecutive hour slots in a group
// (end_hour+1 == next start_hour) are merged, and every window of the group
// carries U and the group's representative rank. The result is ordered by
// rank, day and start hour.
func Consolidate(solutions []room.SolutionRecord, totalUsers int) []room.MergedWindow {
	if len(solutions) == 0 {
		return nil
	}

	byDay := make(map[int][]room.SolutionRecord)
	var days []int
	for _, rec := range solutions {
		if len(rec.UnavailableUsers) >= totalUsers {
			continue
		}
		if _, seen := byDay[rec.Day]; !seen {
			days = append(days, rec.Day)
		}
		byDay[rec.Day] = append(byDay[rec.Day], rec)
	}

	var merged []room.MergedWindow
	for _, day := range days {
		merged = append(merged, consolidateDay(byDay[day])...)
	}

	slices.SortStableFunc(merged, func(a, b room.MergedWindow) int {
		return cmp.Or(
			cmp.Compare(a.Rank, b.Rank),
			cmp.Compare(a.Day, b.Day),
			cmp.Compare(a.StartHour, b.StartHour),
			strings.Compare(setKey(a.UnavailableUsers), setKey(b.UnavailableUsers)),
		)
	})
	return merged
}

func setKey(users []room.UnavailableUser) string {
	return newUserSet(users).key
}

// userSet is a normalized unavailable-user set.
type userSet struct {
	key     string
	members map[string]struct{}
	users   []room.UnavailableUser
}

func newUserSet(users []room.UnavailableUser) userSet {
	names := make([]string, 0, len(users))
	members := make(map[string]struct{}, len(users))
	for _, u := range users {
		if _, dup := members[u.Username]; dup {
			continue
		}
		members[u.Username] = struct{}{}
		names = append(names, u.Username)
	}
	slices.Sort(names)

	sorted := make([]room.UnavailableUser, len(names))
	for i, n := range names {
		sorted[i] = room.UnavailableUser{Username: n}
	}
	return userSet{key: strings.Join(names, ","), members: members, users: sorted}
}

// contains reports whether every member of other is in s.
func (s userSet) contains(other userSet) bool {
	for name := range other.members {
		if _, ok := s.members[name]; !ok {
			return false
		}
	}
	return true
}

func consolidateDay(records []room.SolutionRecord) []room.MergedWindow {
	sets := make([]userSet, len(records))
	var distinct []userSet
	seen := make(map[string]struct{})
	for i, rec := range records {
		sets[i] = newUserSet(rec.UnavailableUsers)
		if _, ok := seen[sets[i].key]; ok {
			continue
		}
		seen[sets[i].key] = struct{}{}
		distinct = append(distinct, sets[i])
	}

	var windows []room.MergedWindow
	for _, u := range distinct {
		var compatible []room.SolutionRecord
		exactRank, compatibleRank := WorstRank, WorstRank
		hasExact := false
		for i, rec := range records {
			if !u.contains(sets[i]) {
				continue
			}
			compatible = append(compatible, rec)
			compatibleRank = min(compatibleRank, rec.Rank)
			if sets[i].key == u.key {
				hasExact = true
				exactRank = min(exactRank, rec.Rank)
			}
		}
		if len(compatible) == 0 {
			continue
		}

		rank := compatibleRank
		if hasExact {
			rank = exactRank
		}
		windows = append(windows, mergeRuns(compatible, u, rank)...)
	}
	return windows
}

// mergeRuns joins consecutive hour slots. Records use an inclusive hour
// index, so slot h is followed by slot h+1. A record starting inside the
// current window (the same hour reported under a smaller unavailable set)
// is absorbed.
func mergeRuns(records []room.SolutionRecord, u userSet, rank int) []room.MergedWindow {
	slices.SortStableFunc(records, func(a, b room.SolutionRecord) int {
		return cmp.Compare(a.StartHour, b.StartHour)
	})

	newWindow := func(rec room.SolutionRecord) room.MergedWindow {
		return room.MergedWindow{
			Day:              rec.Day,
			StartHour:        rec.StartHour,
			EndHour:          rec.EndHour,
			Rank:             rank,
			UnavailableUsers: slices.Clone(u.users),
		}
	}

	var windows []room.MergedWindow
	current := newWindow(records[0])
	for _, rec := range records[1:] {
		if rec.StartHour <= current.EndHour+1 {
			current.EndHour = max(current.EndHour, rec.EndHour)
			continue
		}
		windows = append(windows, current)
		current = newWindow(rec)
	}
	return append(windows, current)
}

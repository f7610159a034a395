package models

import (
	"fmt"
	"slices"
	"strconv"
	"strings"
)

// ItemIDSet is a duplicate-free list of item ids in first-seen order.
type ItemIDSet []ItemID

// NewItemIDSet collapses duplicates while keeping the first occurrence of each id.
func NewItemIDSet(ids ...ItemID) ItemIDSet {
	seen := make(map[ItemID]struct{}, len(ids))
	set := make(ItemIDSet, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		set = append(set, id)
	}
	return set
}

// ParseItemIDs parses the comma-separated wire form ("1,3,3") into an ItemIDSet.
// Blank segments are ignored; any other non-positive or non-numeric segment is an error.
// An input with no ids yields an empty set and no error; callers decide whether empty is allowed.
func ParseItemIDs(raw string) (ItemIDSet, error) {
	parts := strings.Split(raw, ",")
	ids := make([]ItemID, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		n, err := strconv.ParseInt(p, 10, 64)
		if err != nil || n <= 0 {
			return nil, fmt.Errorf("invalid item id %q", p)
		}
		ids = append(ids, ItemID(n))
	}
	return NewItemIDSet(ids...), nil
}

// Contains reports whether id is in the set.
func (s ItemIDSet) Contains(id ItemID) bool {
	return slices.Contains(s, id)
}

// Int64s returns the ids as plain int64 values for storage drivers.
func (s ItemIDSet) Int64s() []int64 {
	out := make([]int64, len(s))
	for i, id := range s {
		out[i] = int64(id)
	}
	return out
}

// Package testutil provides instrumentation shared by the test suites.
package testutil

import "sort"

// DropTracker counts drop-hook invocations per element identity. Panic-
// safety tests use it to prove that no element is ever dropped twice and
// that exactly the expected elements were discarded.
type DropTracker struct {
	counts map[int]int
}

// NewDropTracker creates an empty tracker.
func NewDropTracker() *DropTracker {
	return &DropTracker{counts: make(map[int]int)}
}

// Record notes one drop of the element with the given identity.
func (dt *DropTracker) Record(id int) {
	dt.counts[id]++
}

// Count returns how many times the element was dropped.
func (dt *DropTracker) Count(id int) int {
	return dt.counts[id]
}

// Total returns the total number of drop invocations.
func (dt *DropTracker) Total() int {
	n := 0
	for _, c := range dt.counts {
		n += c
	}
	return n
}

// Dropped returns the identities dropped at least once, sorted.
func (dt *DropTracker) Dropped() []int {
	ids := make([]int, 0, len(dt.counts))
	for id := range dt.counts {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids
}

// DoubleDropped returns the identities dropped more than once, sorted.
// A non-empty result is always a container bug.
func (dt *DropTracker) DoubleDropped() []int {
	var ids []int
	for id, c := range dt.counts {
		if c > 1 {
			ids = append(ids, id)
		}
	}
	sort.Ints(ids)
	return ids
}

// Package growth defines the capacity growth policy consulted by a RawBuffer
// when an amortized reserve needs more room. The policy is pure arithmetic on
// element counts; byte-size limits are enforced by the buffer, not here.
package growth

// Strategy computes the capacity a buffer should grow to.
//
// NextCapacity must return a value >= required. current is the buffer's
// present element capacity and required is the minimum capacity the pending
// operation needs.
type Strategy interface {
	NextCapacity(current, required int) int
}

// DefaultFloor is the minimum capacity Doubling grows an empty buffer to.
// Starting at a small fixed floor keeps repeated single-element growth
// amortized O(1) without wasting space on tiny arrays.
const DefaultFloor = 8

// Doubling is the default growth policy: at least double the current
// capacity, never less than the requested capacity, never less than Floor.
type Doubling struct {
	// Floor overrides DefaultFloor when > 0.
	Floor int
}

// NextCapacity implements Strategy.
func (d Doubling) NextCapacity(current, required int) int {
	floor := d.Floor
	if floor <= 0 {
		floor = DefaultFloor
	}
	next := 2 * current
	if next < required {
		next = required
	}
	if next < floor {
		next = floor
	}
	return next
}

// Exact is a policy that grows to exactly the required capacity. Every
// append reallocates, so it is only useful for tests and for callers that
// manage capacity themselves via Reserve.
type Exact struct{}

// NextCapacity implements Strategy.
func (Exact) NextCapacity(_, required int) int {
	return required
}

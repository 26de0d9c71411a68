package vec

import "iter"

// ExtractIf is a cursor that removes and yields exactly the elements the
// predicate matches, visiting every element once in original order. Kept
// elements backshift over the holes the removals leave.
//
// The array's reported length is zeroed while the cursor is live; Close
// restores it. Unlike Drain, abandoning the iteration discards nothing:
// Close retains every element not yet visited.
type ExtractIf[T any] struct {
	v           *Vec[T]
	pred        func(*T) bool
	idx         int // next unvisited slot
	del         int // holes so far
	originalLen int
	closed      bool
}

// ExtractIf returns a cursor removing the elements pred matches. pred may
// mutate the element it inspects, but must not mutate the array itself.
func (v *Vec[T]) ExtractIf(pred func(*T) bool) *ExtractIf[T] {
	e := &ExtractIf[T]{v: v, pred: pred, originalLen: v.len}
	// Pull the length in so an abandoned cursor cannot double-drop.
	v.len = 0
	return e
}

// Next advances to the next matching element and yields it. Ownership
// transfers to the caller; the drop hook does not run on yielded elements.
func (e *ExtractIf[T]) Next() (T, bool) {
	var zero T
	if e.closed {
		return zero, false
	}
	s := e.v.slots(e.originalLen)
	for e.idx < e.originalLen {
		i := e.idx
		// A panicking predicate leaves idx on this element; Close then
		// retains it along with the rest of the suffix.
		matched := e.pred(&s[i])
		e.idx++
		if matched {
			e.del++
			return s[i], true
		}
		if e.del > 0 {
			s[i-e.del] = s[i] // backshift the kept element over the holes
		}
	}
	return zero, false
}

// Close backshifts any unvisited suffix over the holes and restores the
// length. No elements are dropped: abandonment retains, never discards.
// Close is idempotent.
func (e *ExtractIf[T]) Close() {
	if e.closed {
		return
	}
	e.closed = true
	v := e.v
	if e.del > 0 && e.idx < e.originalLen {
		s := v.slots(e.originalLen)
		copy(s[e.idx-e.del:], s[e.idx:e.originalLen])
	}
	v.len = e.originalLen - e.del
}

// Seq returns a single-use iterator over the extracted elements that closes
// the cursor when the loop ends, breaks, or panics.
func (e *ExtractIf[T]) Seq() iter.Seq[T] {
	return func(yield func(T) bool) {
		defer e.Close()
		for {
			x, ok := e.Next()
			if !ok || !yield(x) {
				return
			}
		}
	}
}

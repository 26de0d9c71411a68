package vec

import "iter"

// Drain is a cursor that removes the range [start, end) from the array,
// yielding the removed elements by value. Close must be called on every
// exit path; Seq does so automatically.
//
// While the cursor is live the array's reported length is pulled back to
// start. A Drain that is abandoned without Close therefore leaks the drained
// range and the tail, but never exposes moved-from slots and never double-
// drops.
type Drain[T any] struct {
	v         *Vec[T]
	cursor    int // next slot to yield
	end       int // one past the drained range
	tailStart int
	tailLen   int
	closed    bool
}

// Drain removes the elements [start, end), returning a cursor over them.
// Fails fatally if start > end or end > Len().
func (v *Vec[T]) Drain(start, end int) *Drain[T] {
	v.checkRange(start, end)
	d := &Drain[T]{
		v:         v,
		cursor:    start,
		end:       end,
		tailStart: end,
		tailLen:   v.len - end,
	}
	// Pull the length in so an abandoned cursor cannot double-drop.
	v.len = start
	return d
}

// Next yields the next drained element. Ownership transfers to the caller.
func (d *Drain[T]) Next() (T, bool) {
	if d.closed || d.cursor == d.end {
		var zero T
		return zero, false
	}
	s := d.v.slots(d.end)
	x := s[d.cursor]
	d.cursor++
	return x, true
}

// Remaining reports how many drained elements have not been yielded yet.
func (d *Drain[T]) Remaining() int {
	if d.closed {
		return 0
	}
	return d.end - d.cursor
}

// Close drops any un-yielded drained elements, moves the untouched tail
// back to sit immediately after the retained prefix, and restores the
// length — in that order, so a drop-hook panic cannot double-count the
// tail. Close is idempotent.
func (d *Drain[T]) Close() {
	if d.closed {
		return
	}
	d.closed = true
	// Tail restore must happen even when a drop hook panics.
	defer d.restoreTail()
	d.discardRest()
}

// discardRest drops the drained elements not yet yielded. The cursor
// advances before each drop so a panicking hook cannot revisit a slot.
func (d *Drain[T]) discardRest() {
	if d.cursor == d.end {
		return
	}
	s := d.v.slots(d.end)
	for d.cursor < d.end {
		d.cursor++
		d.v.dropElem(&s[d.cursor-1])
	}
}

// restoreTail moves the untouched tail back to sit immediately after the
// elements at [0, len), then fixes the length. Runs exactly once, under
// the cursor's Close.
func (d *Drain[T]) restoreTail() {
	v := d.v
	start := v.len
	if d.tailLen > 0 {
		if d.tailStart != start {
			s := v.slots(d.tailStart + d.tailLen)
			copy(s[start:start+d.tailLen], s[d.tailStart:d.tailStart+d.tailLen])
		}
		v.len = start + d.tailLen
	}
}

// Seq returns a single-use iterator that yields the drained elements and
// closes the cursor when the loop ends, breaks, or panics.
func (d *Drain[T]) Seq() iter.Seq[T] {
	return func(yield func(T) bool) {
		defer d.Close()
		for {
			x, ok := d.Next()
			if !ok || !yield(x) {
				return
			}
		}
	}
}

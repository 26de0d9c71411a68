package vec

import "iter"

// Splice is a cursor that replaces the range [start, end) with another
// sequence of elements. The drained elements are yielded like Drain's; the
// replacement is inserted when the cursor is closed.
type Splice[T any] struct {
	d      *Drain[T]
	next   func() (T, bool)
	stop   func()
	exact  int // replacement elements not yet consumed; -1 when unknown
	closed bool
}

// Splice replaces the elements [start, end) with the contents of
// replacement. The replacement's length is known, so the tail moves at most
// once. Fails fatally if start > end or end > Len().
func (v *Vec[T]) Splice(start, end int, replacement []T) *Splice[T] {
	i := 0
	return &Splice[T]{
		d: v.Drain(start, end),
		next: func() (T, bool) {
			if i == len(replacement) {
				var zero T
				return zero, false
			}
			x := replacement[i]
			i++
			return x, true
		},
		stop:  func() {},
		exact: len(replacement),
	}
}

// SpliceSeq replaces the elements [start, end) with the values of an
// arbitrary sequence. With no length bound available, any elements beyond
// the drained range are collected into a temporary buffer before the tail
// moves.
func (v *Vec[T]) SpliceSeq(start, end int, replacement iter.Seq[T]) *Splice[T] {
	next, stop := iter.Pull(replacement)
	return &Splice[T]{d: v.Drain(start, end), next: next, stop: stop, exact: -1}
}

// Next yields the next drained element. Ownership transfers to the caller.
func (sp *Splice[T]) Next() (T, bool) {
	if sp.closed {
		var zero T
		return zero, false
	}
	return sp.d.Next()
}

// Close drops the rest of the drained range, writes the replacement into
// the vacated slots, and restores the tail. Three shapes avoid the
// temporary buffer: no tail at all, a replacement no longer than the
// drained range, and a replacement of exactly known size (one tail move).
// Close is idempotent.
func (sp *Splice[T]) Close() {
	if sp.closed {
		return
	}
	sp.closed = true
	defer sp.stop()

	d := sp.d
	v := d.v

	d.closed = true
	// Tail restore must happen whatever panics below: a drop hook in the
	// discard, the replacement iterator, or an allocation failure in the
	// tail move.
	defer d.restoreTail()

	// Discard whatever the caller did not consume.
	d.discardRest()

	if d.tailLen == 0 {
		// Nothing after the range: appending is the whole job.
		for {
			x, ok := sp.nextReplacement()
			if !ok {
				return
			}
			v.Push(x)
		}
	}

	// Fill the vacated range first.
	if !sp.fill() {
		return // replacement ran short; tail shifts left over the gap
	}

	switch {
	case sp.exact == 0:
		// Replacement fit the drained range exactly.
	case sp.exact > 0:
		// Known remainder: one tail move makes room for all of it.
		d.moveTail(sp.exact)
		sp.fill()
	default:
		// Unknown length: collect the remainder to learn its size, then
		// move the tail once.
		var rest []T
		for {
			x, ok := sp.next()
			if !ok {
				break
			}
			rest = append(rest, x)
		}
		if len(rest) > 0 {
			d.moveTail(len(rest))
			i := 0
			sp.next = func() (T, bool) {
				if i == len(rest) {
					var zero T
					return zero, false
				}
				x := rest[i]
				i++
				return x, true
			}
			sp.fill()
		}
	}
}

// Seq returns a single-use iterator over the drained elements that closes
// the cursor (inserting the replacement) when the loop ends.
func (sp *Splice[T]) Seq() iter.Seq[T] {
	return func(yield func(T) bool) {
		defer sp.Close()
		for {
			x, ok := sp.Next()
			if !ok || !yield(x) {
				return
			}
		}
	}
}

func (sp *Splice[T]) nextReplacement() (T, bool) {
	x, ok := sp.next()
	if ok && sp.exact > 0 {
		sp.exact--
	}
	return x, ok
}

// fill writes replacement elements into the slots between the array's
// current length and the tail, bumping the length per element. Reports
// false when the replacement ran out first.
func (sp *Splice[T]) fill() bool {
	d := sp.d
	v := d.v
	if v.len == d.tailStart {
		return true
	}
	s := v.slots(d.tailStart)
	for v.len < d.tailStart {
		x, ok := sp.nextReplacement()
		if !ok {
			return false
		}
		s[v.len] = x
		v.len++
	}
	return true
}

// moveTail shifts the untouched tail right by additional slots, reserving
// capacity first.
func (d *Drain[T]) moveTail(additional int) {
	v := d.v
	v.buf.Reserve(d.tailStart+d.tailLen, additional)
	s := v.slots(d.tailStart + additional + d.tailLen)
	copy(s[d.tailStart+additional:], s[d.tailStart:d.tailStart+d.tailLen])
	d.tailStart += additional
}

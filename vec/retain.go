package vec

// Retain keeps exactly the elements pred reports true for, in order,
// visiting each element once. Removed elements go through the drop hook.
func (v *Vec[T]) Retain(pred func(T) bool) {
	v.RetainMut(func(p *T) bool { return pred(*p) })
}

// RetainMut is Retain with a mutable view of each element.
//
// The scan is two-stage: while nothing has been removed the elements stay
// where they are; after the first removal every kept element backshifts into
// the hole. The length is pulled to 0 for the duration so that an abandoned
// or panicking scan can never double-drop: the backshift guard runs on every
// exit path (normal, predicate panic, drop-hook panic), closes the hole over
// the unprocessed suffix, and restores the length.
//
// The buffer must not be reallocated mid-scan: pred must not mutate the
// array it is called from.
func (v *Vec[T]) RetainMut(pred func(*T) bool) {
	originalLen := v.len
	if originalLen == 0 {
		return
	}
	// Slots layout during the scan:
	//
	//	[ kept | holes | unprocessed ]
	//	 |<- processed ->|
	//
	// kept = processed - deleted elements at the front, then deleted holes,
	// then the suffix the guard must preserve.
	v.len = 0
	g := &backshiftGuard[T]{v: v, originalLen: originalLen}
	defer g.restore()

	s := v.slots(originalLen)

	// Stage 1: nothing removed yet, no data movement.
	for g.processed < originalLen {
		cur := &s[g.processed]
		if !pred(cur) {
			// Advance before the drop hook so a panicking hook cannot
			// revisit this slot.
			g.processed++
			g.deleted++
			v.dropElem(cur)
			break
		}
		g.processed++
	}

	// Stage 2: a hole exists; every kept element backshifts into it.
	for g.processed < originalLen {
		cur := &s[g.processed]
		if !pred(cur) {
			g.processed++
			g.deleted++
			v.dropElem(cur)
			continue
		}
		s[g.processed-g.deleted] = *cur // hole slot never overlaps cur
		g.processed++
	}
}

// backshiftGuard restores the retain invariant on every exit path: shift
// the unprocessed suffix over the holes, then fix the length.
type backshiftGuard[T any] struct {
	v           *Vec[T]
	processed   int
	deleted     int
	originalLen int
}

func (g *backshiftGuard[T]) restore() {
	if g.deleted > 0 {
		s := g.v.slots(g.originalLen)
		copy(s[g.processed-g.deleted:], s[g.processed:g.originalLen])
	}
	g.v.len = g.originalLen - g.deleted
}

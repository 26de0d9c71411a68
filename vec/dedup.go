package vec

// DedupBy removes all but the first element of every run of consecutive
// elements for which same reports true. same is called with the candidate
// first and the retained predecessor second. Removed elements go through
// the drop hook.
//
// A read/write cursor pair walks the array once; if same or the drop hook
// panics mid-scan, the gap guard copies the unread suffix over the gap and
// fixes the length before the panic propagates, so no element is dropped
// twice. The buffer must not be reallocated mid-scan.
func (v *Vec[T]) DedupBy(same func(a, b *T) bool) {
	length := v.len
	if length <= 1 {
		return
	}
	// Invariant: length >= read >= write >= 1. Slots [write, read) are
	// exhausted duplicates; [read, length) are unexamined.
	g := &gapGuard[T]{v: v, read: 1, write: 1}
	defer g.fill()

	s := v.slots(length)
	for g.read < length {
		if same(&s[g.read], &s[g.write-1]) {
			// Advance before the drop hook so a panicking hook cannot
			// drop this duplicate twice.
			g.read++
			v.dropElem(&s[g.read-1])
		} else {
			s[g.write] = s[g.read] // read may equal write
			g.write++
			g.read++
		}
	}

	v.len = g.write
	g.done = true
}

// gapGuard repairs the dedup invariant when same or a drop hook panics:
// copy the unexamined suffix over the gap and discount the duplicates
// already dropped.
type gapGuard[T any] struct {
	v           *Vec[T]
	read, write int
	done        bool
}

func (g *gapGuard[T]) fill() {
	if g.done {
		return
	}
	v := g.v
	s := v.slots(v.len)
	itemsLeft := v.len - g.read
	copy(s[g.write:g.write+itemsLeft], s[g.read:v.len])
	v.len -= g.read - g.write
}

// Dedup removes consecutive equal elements, keeping the first of each run.
func Dedup[T comparable](v *Vec[T]) {
	v.DedupBy(func(a, b *T) bool { return *a == *b })
}

// DedupByKey removes all but the first of every run of consecutive elements
// mapping to the same key.
func DedupByKey[T any, K comparable](v *Vec[T], key func(*T) K) {
	v.DedupBy(func(a, b *T) bool { return key(a) == key(b) })
}

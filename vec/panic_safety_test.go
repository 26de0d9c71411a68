package vec

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/joshuapare/veckit/internal/testutil"
)

// The bulk-mutation paths promise that a panicking predicate, comparator,
// or drop hook leaves the array with a consistent length, no exposed
// moved-from slots, and no element dropped twice. Elements may leak; that
// is the accepted cost.

func Test_Truncate_PanickingHookCannotDoubleDrop(t *testing.T) {
	tr := testutil.NewDropTracker()
	v := FromSlice([]int{1, 2, 3, 4, 5})
	v.SetDrop(func(p *int) {
		tr.Record(*p)
		if *p == 4 {
			panic("hook failure")
		}
	})

	require.PanicsWithValue(t, "hook failure", func() { v.Truncate(2) })

	// Length was pulled in before any hook ran; 5 leaks, nothing doubles.
	require.Equal(t, 2, v.Len())
	require.Equal(t, []int{1, 2}, v.Slice())
	require.Equal(t, []int{3, 4}, tr.Dropped())
	require.Empty(t, tr.DoubleDropped())

	// The vec stays usable afterwards.
	v.SetDrop(nil)
	v.Push(9)
	require.Equal(t, []int{1, 2, 9}, v.Slice())
}

func Test_Retain_PanickingPredicateBackshifts(t *testing.T) {
	v := FromSlice([]int{1, 2, 3, 4, 5, 6})
	require.Panics(t, func() {
		v.Retain(func(x int) bool {
			if x == 4 {
				panic("predicate failure")
			}
			return x%2 == 0
		})
	})

	// 1 and 3 were removed before the panic at 4; the guard closed the
	// holes over the unprocessed suffix.
	require.Equal(t, 4, v.Len())
	require.Equal(t, []int{2, 4, 5, 6}, v.Slice())
}

func Test_Retain_PanickingHookKeepsSuffix(t *testing.T) {
	tr := testutil.NewDropTracker()
	v := FromSlice([]int{1, 2, 3, 4, 5})
	v.SetDrop(func(p *int) {
		tr.Record(*p)
		panic("hook failure")
	})

	require.Panics(t, func() { v.Retain(func(x int) bool { return x != 3 }) })

	require.Equal(t, 1, tr.Total())
	require.Equal(t, 1, tr.Count(3))
	// The removed slot is gone; everything after it backshifted.
	require.Equal(t, []int{1, 2, 4, 5}, v.Slice())
}

func Test_DedupBy_PanickingComparatorFillsGap(t *testing.T) {
	v := FromSlice([]int{1, 1, 2, 2, 3, 4})
	calls := 0
	require.Panics(t, func() {
		v.DedupBy(func(a, b *int) bool {
			calls++
			if calls == 4 {
				panic("comparator failure")
			}
			return *a == *b
		})
	})

	// Two duplicates were consumed before the panic; the unexamined
	// suffix slid left over the gap.
	require.Equal(t, []int{1, 2, 3, 4}, v.Slice())
}

func Test_DedupBy_PanickingHookFillsGap(t *testing.T) {
	tr := testutil.NewDropTracker()
	v := FromSlice([]int{1, 1, 1, 2, 3})
	v.SetDrop(func(p *int) {
		tr.Record(*p)
		if tr.Total() == 2 {
			panic("hook failure")
		}
	})

	require.Panics(t, func() { Dedup(v) })

	require.Equal(t, 2, tr.Total())
	require.Equal(t, []int{1, 2, 3}, v.Slice())
	v.SetDrop(nil)
	v.Push(9)
	require.Equal(t, []int{1, 2, 3, 9}, v.Slice())
}

func Test_Drain_PanickingHookStillRestoresTail(t *testing.T) {
	tr := testutil.NewDropTracker()
	v := FromSlice([]int{1, 2, 3, 4, 5})
	v.SetDrop(func(p *int) {
		tr.Record(*p)
		if *p == 3 {
			panic("hook failure")
		}
	})

	d := v.Drain(1, 4)
	require.Panics(t, func() { d.Close() })

	// 4 leaks, but the tail came back and nothing dropped twice.
	require.Equal(t, []int{2, 3}, tr.Dropped())
	require.Empty(t, tr.DoubleDropped())
	require.Equal(t, 2, v.Len())
	require.Equal(t, 5, v.Get(1))
}

func Test_Splice_PanickingHookStillRestoresTail(t *testing.T) {
	tr := testutil.NewDropTracker()
	v := FromSlice([]int{1, 2, 3, 4, 5})
	v.SetDrop(func(p *int) {
		tr.Record(*p)
		if *p == 2 {
			panic("hook failure")
		}
	})

	sp := v.Splice(1, 3, []int{9})
	require.Panics(t, func() { sp.Close() })

	// 3 and the replacement leak, but the tail comes back like Drain's.
	require.Equal(t, []int{2}, tr.Dropped())
	require.Empty(t, tr.DoubleDropped())
	require.Equal(t, []int{1, 4, 5}, v.Slice())
}

func Test_SpliceSeq_PanickingReplacementRestoresTail(t *testing.T) {
	v := FromSlice([]int{1, 2, 3, 4, 5})
	bomb := func(yield func(int) bool) {
		yield(7)
		panic("iterator failure")
	}
	sp := v.SpliceSeq(1, 3, bomb)
	require.Panics(t, func() { sp.Close() })

	// The value yielded before the panic landed in the gap; the tail
	// closed up behind it.
	require.Equal(t, []int{1, 7, 4, 5}, v.Slice())
}

func Test_ExtractIf_PanickingPredicateRetainsElement(t *testing.T) {
	v := FromSlice([]int{1, 2, 3, 4, 5})
	e := v.ExtractIf(func(p *int) bool {
		if *p == 3 {
			panic("predicate failure")
		}
		return *p%2 == 0
	})

	require.Panics(t, func() {
		for range e.Seq() {
		}
	})

	// 2 was extracted before the panic; 3 and the rest stay put.
	require.Equal(t, []int{1, 3, 4, 5}, v.Slice())
}

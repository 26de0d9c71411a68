package vec

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/joshuapare/veckit/internal/testutil"
)

func Test_Drain_YieldsRangeAndClosesGap(t *testing.T) {
	v := FromSlice([]int{1, 2, 3, 4, 5})
	d := v.Drain(1, 4)

	var got []int
	for {
		x, ok := d.Next()
		if !ok {
			break
		}
		got = append(got, x)
	}
	d.Close()

	require.Equal(t, []int{2, 3, 4}, got)
	require.Equal(t, []int{1, 5}, v.Slice())
}

func Test_Drain_FullRangeEmptiesVec(t *testing.T) {
	v := FromSlice([]int{1, 2, 3})
	v.Drain(0, v.Len()).Close()
	require.Zero(t, v.Len())
	require.GreaterOrEqual(t, v.Cap(), 3, "capacity is retained")
}

func Test_Drain_EmptyRangeIsNoOp(t *testing.T) {
	v := FromSlice([]int{1, 2, 3})
	d := v.Drain(1, 1)
	_, ok := d.Next()
	require.False(t, ok)
	d.Close()
	require.Equal(t, []int{1, 2, 3}, v.Slice())
}

func Test_Drain_CloseDropsUnyielded(t *testing.T) {
	tr := testutil.NewDropTracker()
	v := FromSlice([]int{1, 2, 3, 4, 5})
	v.SetDrop(func(p *int) { tr.Record(*p) })

	d := v.Drain(1, 4)
	x, ok := d.Next()
	require.True(t, ok)
	require.Equal(t, 2, x)
	require.Equal(t, 2, d.Remaining())
	d.Close()

	// The yielded element transferred out; only 3 and 4 were dropped.
	require.Equal(t, []int{3, 4}, tr.Dropped())
	require.Equal(t, []int{1, 5}, v.Slice())
}

func Test_Drain_CloseIsIdempotent(t *testing.T) {
	tr := testutil.NewDropTracker()
	v := FromSlice([]int{1, 2, 3})
	v.SetDrop(func(p *int) { tr.Record(*p) })

	d := v.Drain(0, 2)
	d.Close()
	d.Close()
	require.Equal(t, 2, tr.Total())
	require.Empty(t, tr.DoubleDropped())
	require.Equal(t, []int{3}, v.Slice())
}

func Test_Drain_AbandonedCursorLeaksButStaysConsistent(t *testing.T) {
	v := FromSlice([]int{1, 2, 3, 4, 5})
	_ = v.Drain(2, 4) // never closed

	// The drained range and the tail leak; the prefix stays valid.
	require.Equal(t, []int{1, 2}, v.Slice())
	v.Push(9)
	require.Equal(t, []int{1, 2, 9}, v.Slice())
}

func Test_Drain_SeqClosesOnBreak(t *testing.T) {
	v := FromSlice([]int{1, 2, 3, 4, 5})
	for x := range v.Drain(1, 4).Seq() {
		if x == 3 {
			break
		}
	}
	require.Equal(t, []int{1, 5}, v.Slice())
}

func Test_Drain_InvalidRangePanics(t *testing.T) {
	v := FromSlice([]int{1, 2, 3})
	require.Panics(t, func() { v.Drain(2, 1) })
	require.Panics(t, func() { v.Drain(0, 4) })
}

package vec

import (
	"iter"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/joshuapare/veckit/internal/testutil"
)

func spliceAll[T any](sp *Splice[T]) []T {
	var out []T
	for x := range sp.Seq() {
		out = append(out, x)
	}
	return out
}

func Test_Splice_LongerReplacement(t *testing.T) {
	v := FromSlice([]int{1, 2, 3})
	got := spliceAll(v.Splice(1, 3, []int{7, 8, 9}))
	require.Equal(t, []int{2, 3}, got)
	require.Equal(t, []int{1, 7, 8, 9}, v.Slice())
}

func Test_Splice_ShorterReplacement(t *testing.T) {
	v := FromSlice([]int{1, 2, 3, 4, 5})
	got := spliceAll(v.Splice(1, 4, []int{9}))
	require.Equal(t, []int{2, 3, 4}, got)
	require.Equal(t, []int{1, 9, 5}, v.Slice())
}

func Test_Splice_ExactReplacement(t *testing.T) {
	v := FromSlice([]int{1, 2, 3, 4})
	got := spliceAll(v.Splice(1, 3, []int{8, 9}))
	require.Equal(t, []int{2, 3}, got)
	require.Equal(t, []int{1, 8, 9, 4}, v.Slice())
}

func Test_Splice_EmptyReplacementBehavesLikeDrain(t *testing.T) {
	v := FromSlice([]int{1, 2, 3, 4})
	got := spliceAll(v.Splice(1, 3, nil))
	require.Equal(t, []int{2, 3}, got)
	require.Equal(t, []int{1, 4}, v.Slice())
}

func Test_Splice_EmptyRangeInserts(t *testing.T) {
	v := FromSlice([]int{1, 4})
	got := spliceAll(v.Splice(1, 1, []int{2, 3}))
	require.Empty(t, got)
	require.Equal(t, []int{1, 2, 3, 4}, v.Slice())
}

func Test_Splice_AtEndAppends(t *testing.T) {
	v := FromSlice([]int{1, 2})
	v.Splice(2, 2, []int{3, 4}).Close()
	require.Equal(t, []int{1, 2, 3, 4}, v.Slice())
}

func Test_Splice_CloseDropsUnyielded(t *testing.T) {
	tr := testutil.NewDropTracker()
	v := FromSlice([]int{1, 2, 3, 4})
	v.SetDrop(func(p *int) { tr.Record(*p) })

	sp := v.Splice(0, 3, []int{7})
	x, ok := sp.Next()
	require.True(t, ok)
	require.Equal(t, 1, x)
	sp.Close()

	require.Equal(t, []int{2, 3}, tr.Dropped())
	require.Equal(t, []int{7, 4}, v.Slice())
}

func Test_SpliceSeq_UnknownLength(t *testing.T) {
	v := FromSlice([]int{1, 2, 3, 4, 5})
	squares := func(yield func(int) bool) {
		for i := 1; i <= 4; i++ {
			if !yield(i * i) {
				return
			}
		}
	}
	got := spliceAll(v.SpliceSeq(1, 3, iter.Seq[int](squares)))
	require.Equal(t, []int{2, 3}, got)
	require.Equal(t, []int{1, 1, 4, 9, 16, 4, 5}, v.Slice())
}

func Test_Splice_CloseIsIdempotent(t *testing.T) {
	v := FromSlice([]int{1, 2, 3})
	sp := v.Splice(0, 1, []int{9})
	sp.Close()
	sp.Close()
	require.Equal(t, []int{9, 2, 3}, v.Slice())
}

func Test_Splice_InvalidRangePanics(t *testing.T) {
	v := FromSlice([]int{1, 2, 3})
	require.Panics(t, func() { v.Splice(3, 2, nil) })
}

package storage

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func Test_Quota_AdmitsWithinBudget(t *testing.T) {
	q := NewQuota(NewHeap(), 128)
	h, err := q.Allocate(64, 8)
	require.NoError(t, err)
	require.Equal(t, 64, q.Used())

	_, err = q.Allocate(64, 8)
	require.NoError(t, err)
	require.Equal(t, 128, q.Used())

	q.Deallocate(h)
	require.Equal(t, 64, q.Used())
}

func Test_Quota_RejectsOverBudget(t *testing.T) {
	q := NewQuota(NewHeap(), 100)
	_, err := q.Allocate(101, 1)
	require.ErrorIs(t, err, ErrOutOfMemory)
	require.Zero(t, q.Used())
}

func Test_Quota_GrowCountsReplacementNotSum(t *testing.T) {
	q := NewQuota(NewHeap(), 100)
	h, err := q.Allocate(60, 1)
	require.NoError(t, err)

	// 60 -> 90 fits because the old block's charge is released.
	nh, err := q.Grow(h, 60, 90)
	require.NoError(t, err)
	require.Equal(t, 90, q.Used())

	_, err = q.Grow(nh, 90, 200)
	require.ErrorIs(t, err, ErrOutOfMemory)
	require.Equal(t, 90, q.Used(), "failed grow charges nothing")
}

func Test_Quota_ChargesRoundedSize(t *testing.T) {
	// Pool rounds 20 bytes up to the 32-byte class; the budget must see 32.
	q := NewQuota(NewPool(), 1024)
	_, err := q.Allocate(20, 8)
	require.NoError(t, err)
	require.Equal(t, 32, q.Used())
}

func Test_Quota_ShrinkReleasesCharge(t *testing.T) {
	q := NewQuota(NewHeap(), 1024)
	h, _ := q.Allocate(512, 1)
	nh, err := q.Shrink(h, 512, 64)
	require.NoError(t, err)
	require.Equal(t, 64, q.Used())
	_, size := q.Resolve(nh)
	require.EqualValues(t, 64, size)
}

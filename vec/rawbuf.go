package vec

import (
	"fmt"
	"math"
	"unsafe"

	"github.com/joshuapare/veckit/internal/mathx"
	"github.com/joshuapare/veckit/vec/growth"
	"github.com/joshuapare/veckit/vec/storage"
)

// zeroSentinel backs the dangling-but-non-nil pointer handed out when the
// buffer has no live allocation or the element type is zero-sized.
var zeroSentinel byte

// RawBuffer owns exactly one storage handle and knows its element capacity.
// It has no concept of length or element liveness; that is Vec's job. All of
// the module's unsafe pointer handling funnels through Ptr and the slot view
// helpers below, so the invariant discipline is auditable in one place.
//
// A zero-sized element type never touches the provider: capacity reports
// math.MaxInt and Ptr returns the sentinel.
type RawBuffer[T any] struct {
	handle   storage.Handle
	cap      int
	provider storage.Provider
	strategy growth.Strategy
}

// NewRawBuffer creates an empty buffer (no allocation) over the given
// provider and growth strategy.
func NewRawBuffer[T any](p storage.Provider, s growth.Strategy) RawBuffer[T] {
	if p == nil {
		p = storage.NewHeap()
	}
	if s == nil {
		s = growth.Doubling{}
	}
	return RawBuffer[T]{provider: p, strategy: s}
}

func sizeOf[T any]() uintptr {
	var z T
	return unsafe.Sizeof(z)
}

func alignOf[T any]() uintptr {
	var z T
	return unsafe.Alignof(z)
}

// Capacity returns the number of element slots backed by live memory.
func (b *RawBuffer[T]) Capacity() int {
	if sizeOf[T]() == 0 {
		return math.MaxInt
	}
	return b.cap
}

// Ptr resolves the handle to a pointer valid for Capacity() elements. The
// pointer is invalidated by any subsequent Reserve, Shrink, or Free.
func (b *RawBuffer[T]) Ptr() unsafe.Pointer {
	if b.cap == 0 || sizeOf[T]() == 0 {
		return unsafe.Pointer(&zeroSentinel)
	}
	p, _ := b.provider.Resolve(b.handle)
	return p
}

// Reserve ensures capacity >= length+additional, growing by the strategy's
// next step. No-op when capacity is already sufficient. Fails fatally on
// byte-size overflow or allocation failure.
func (b *RawBuffer[T]) Reserve(length, additional int) {
	if err := b.grow(length, additional, false); err != nil {
		panic(err)
	}
}

// ReserveExact is Reserve with the growth strategy bypassed: the provider is
// asked for exactly length+additional slots. The backend may still round up.
func (b *RawBuffer[T]) ReserveExact(length, additional int) {
	if err := b.grow(length, additional, true); err != nil {
		panic(err)
	}
}

// TryReserve is Reserve returning a recoverable error instead of panicking.
// The buffer is untouched on failure.
func (b *RawBuffer[T]) TryReserve(length, additional int) error {
	return b.grow(length, additional, false)
}

// TryReserveExact is ReserveExact returning a recoverable error instead of
// panicking. The buffer is untouched on failure.
func (b *RawBuffer[T]) TryReserveExact(length, additional int) error {
	return b.grow(length, additional, true)
}

// GrowOne makes room for exactly one more element past length. Convenience
// for the push/insert hot path.
func (b *RawBuffer[T]) GrowOne(length int) {
	b.Reserve(length, 1)
}

// ShrinkToFit asks the provider to shrink the allocation to length slots.
// No-op if capacity is already <= length. Shrinking is best-effort: a
// backend that cannot release memory may keep reporting the old capacity.
func (b *RawBuffer[T]) ShrinkToFit(length int) {
	b.ShrinkTo(length, 0)
}

// ShrinkTo shrinks to max(length, minCap) slots. Never drops below length.
func (b *RawBuffer[T]) ShrinkTo(length, minCap int) {
	floor := length
	if minCap > floor {
		floor = minCap
	}
	if sizeOf[T]() == 0 || b.cap <= floor {
		return
	}
	if floor == 0 {
		b.Free()
		return
	}
	oldBytes := uintptr(b.cap) * sizeOf[T]()
	newBytes := uintptr(floor) * sizeOf[T]()
	h, err := b.provider.Shrink(b.handle, oldBytes, newBytes)
	if err != nil {
		return // shrink is advisory; keep the larger block
	}
	b.handle = h
	b.refreshCapacity()
}

// Free releases the allocation. The buffer returns to the unallocated state
// and can be reused.
func (b *RawBuffer[T]) Free() {
	if b.handle != storage.InvalidHandle {
		b.provider.Deallocate(b.handle)
		b.handle = storage.InvalidHandle
	}
	b.cap = 0
}

// grow is the single reallocation path. exact bypasses the growth strategy.
// On any failure the buffer is left exactly as it was.
func (b *RawBuffer[T]) grow(length, additional int, exact bool) error {
	if length < 0 || additional < 0 {
		panic(fmt.Sprintf("vec: negative reserve (length %d, additional %d)", length, additional))
	}
	required, ok := mathx.Add(length, additional)
	if !ok {
		return fmt.Errorf("%w: length %d + additional %d", ErrCapacityOverflow, length, additional)
	}
	if required <= b.Capacity() {
		return nil
	}

	newCap := required
	if !exact {
		newCap = b.strategy.NextCapacity(b.cap, required)
		if newCap < required {
			newCap = required
		}
	}

	elemSize := int(sizeOf[T]())
	newBytes, ok := mathx.Mul(newCap, elemSize)
	if !ok {
		return fmt.Errorf("%w: %d elements of %d bytes", ErrCapacityOverflow, newCap, elemSize)
	}

	var (
		h   storage.Handle
		err error
	)
	if b.handle == storage.InvalidHandle {
		h, err = b.provider.Allocate(uintptr(newBytes), alignOf[T]())
	} else {
		oldBytes := uintptr(b.cap) * uintptr(elemSize)
		h, err = b.provider.Grow(b.handle, oldBytes, uintptr(newBytes))
	}
	if err != nil {
		return fmt.Errorf("vec: reserve %d elements: %w", newCap, err)
	}
	b.handle = h
	b.refreshCapacity()
	return nil
}

// refreshCapacity re-derives the element capacity from the provider's
// reported byte capacity. The backend may have rounded the block up.
func (b *RawBuffer[T]) refreshCapacity() {
	_, reported := b.provider.Resolve(b.handle)
	b.cap = int(reported / sizeOf[T]())
}

package storage

import "unsafe"

// Handle is an opaque token identifying a live allocation within a Provider.
// The zero Handle is never a valid allocation.
type Handle uint64

// InvalidHandle is the zero, never-live handle.
const InvalidHandle Handle = 0

// Provider allocates, grows, shrinks, and deallocates untyped memory blocks.
// All sizes are in bytes.
//
// Grow and Shrink may relocate the block: the returned handle replaces the
// one passed in, and any pointer previously obtained from Resolve becomes
// invalid. Callers must never assume in-place growth.
//
// Passing a handle that is not live (never allocated, already deallocated,
// or superseded by a Grow/Shrink) is a caller logic bug; providers panic.
type Provider interface {
	// Allocate returns a new block of at least size bytes aligned to align.
	// Fails with ErrOutOfMemory when the backend cannot satisfy the request.
	Allocate(size, align uintptr) (Handle, error)

	// Grow resizes the block from oldSize to newSize bytes (newSize >
	// oldSize), preserving the block's contents. May relocate.
	Grow(h Handle, oldSize, newSize uintptr) (Handle, error)

	// Shrink resizes the block from oldSize down to newSize bytes (newSize
	// <= oldSize), preserving the first newSize bytes. May relocate.
	Shrink(h Handle, oldSize, newSize uintptr) (Handle, error)

	// Deallocate releases the block. The handle is dead afterwards.
	Deallocate(h Handle)

	// Resolve returns a live pointer to the block and the byte capacity the
	// block actually has, which may exceed what was requested.
	Resolve(h Handle) (unsafe.Pointer, uintptr)
}

// Stats reports cumulative provider activity. Useful for asserting
// allocation behavior in tests and for capacity tuning.
type Stats struct {
	Allocs  uint64 // Allocate calls that succeeded
	Grows   uint64 // Grow calls that succeeded
	Shrinks uint64 // Shrink calls that succeeded
	Frees   uint64 // Deallocate calls
	Live    int    // blocks currently live
	InUse   int    // bytes currently live
}

// alignUp rounds n up to the next multiple of align. align must be a power
// of two.
func alignUp(n, align uintptr) uintptr {
	return (n + align - 1) &^ (align - 1)
}

// padding returns the offset needed to align base to align.
func padding(base, align uintptr) uintptr {
	return alignUp(base, align) - base
}

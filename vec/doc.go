// Package vec implements a growable, contiguously-stored array whose memory
// comes from a pluggable storage.Provider rather than a hard-coded allocator.
//
// # Overview
//
// Vec[T] is the container: a RawBuffer plus a logical length. Elements at
// positions [0, Len()) are live; positions [Len(), Cap()) are uninitialized
// scratch whose contents are unspecified. The buffer only reallocates when an
// operation would push the length past the capacity, and it never shrinks
// unless ShrinkToFit or ShrinkTo is called.
//
// # Construction
//
//	v := vec.New[int]()                                  // heap-backed, no allocation yet
//	v := vec.WithCapacity[int](64)                       // pre-reserved
//	v := vec.New[int](vec.WithProvider(storage.NewArena(0)))
//
// The growth policy and the element finalizer are injectable too, via
// vec.WithStrategy and Vec.SetDrop.
//
// # Element finalizers
//
// Go has no destructors, so element cleanup is an opt-in hook: SetDrop
// installs a function that every discarding operation (Truncate, Clear,
// Remove of duplicates in DedupBy, un-consumed Drain elements, ...) invokes
// on each element it throws away. Operations that transfer ownership out
// (Pop, Remove, SwapRemove, cursor yields) never invoke it.
//
// # Bulk-mutation cursors
//
// Drain, Splice, and ExtractIf are cursors that borrow the array
// exclusively. Each one pulls the array's reported length in before
// iteration begins, so a cursor that is abandoned without Close leaks at
// most the elements it covered and never double-drops. Close must be called
// on every cursor; the Seq adaptors do it automatically:
//
//	for x := range v.Drain(2, 5).Seq() {
//		use(x)
//	}
//
// While a cursor is live the array must not be used; no two cursors may be
// live over the same array.
//
// # Failure model
//
// Out-of-range indexes and inverted ranges are caller logic bugs and panic.
// Allocation failure and byte-size overflow panic too in the default family
// (Push, Insert, Reserve, ...); the TryReserve family returns an error
// instead and guarantees the container is untouched on failure.
//
// Predicates, comparators, and drop hooks may panic mid-algorithm; the
// recovery guards in retain, dedup, and the cursors restore a consistent
// length (no double-drop, no uninitialized reads) before the panic
// propagates. These guards assume the buffer is not reallocated
// mid-algorithm: callbacks must not mutate the array they are called from.
//
// # Concurrency
//
// A Vec is a single-goroutine value: mutation requires exclusive access and
// there is no internal locking.
package vec

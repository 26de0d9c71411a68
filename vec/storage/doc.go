// Package storage provides the memory-storage backends a RawBuffer allocates
// from. The core abstraction is the Provider interface: allocate, grow,
// shrink, and deallocate untyped blocks, and resolve an opaque Handle to a
// live pointer plus its reported byte capacity.
//
// # Provider contract
//
// Every Grow or Shrink call may relocate the block and invalidate any pointer
// previously obtained from Resolve; callers must re-resolve after each call.
// A provider may round a requested size up (the Pool provider rounds to its
// size class, the Mmap provider to whole pages); Resolve reports the size the
// block actually has. Providers are synchronous, non-reentrant, and carry no
// internal locking: a provider instance must only be used from one goroutine
// at a time.
//
// # Implementations
//
// Heap: blocks backed by the Go runtime
//
//   - General-purpose default
//   - Grow copies into a fresh block, Shrink releases the surplus
//
// Arena: chunked bump allocator
//
//   - O(1) allocation, Deallocate is a no-op
//   - Reset reclaims every block at once; ideal for per-task scratch arrays
//
// Pool: segregated size-class free lists
//
//   - Requests round up to one of the power-of-two classes
//   - Deallocated blocks are recycled per class instead of released
//
// Mmap: anonymous memory mappings (unix only)
//
//   - Page-granular blocks outside the Go heap
//   - Deallocate unmaps immediately
//
// Quota: wrapper enforcing a byte budget on any inner provider
//
// # Memory visibility
//
// Blocks are untyped; the garbage collector does not scan their contents.
// Element types that contain Go pointers must only reference memory that is
// otherwise reachable. The Heap, Arena, and Pool providers keep their own
// blocks reachable for as long as the handle is live; Mmap memory is never
// garbage collected.
//
// # Usage Example
//
//	p := storage.NewArena(0)
//	defer p.Release()
//
//	v := vec.New[int](vec.WithProvider(p))
//	for i := 0; i < 1000; i++ {
//		v.Push(i)
//	}
package storage

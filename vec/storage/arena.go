package storage

import (
	"fmt"
	"unsafe"
)

// DefaultChunkSize is the default arena chunk size (64 KiB).
const DefaultChunkSize = 1 << 16

// Arena is a chunked bump-pointer Provider. Allocation is O(1), Deallocate
// is a no-op, and the whole arena is reclaimed at once with Reset or
// Release. Grow abandons the old block and bumps a new one, so arrays that
// grow a lot are better served by Heap; the arena shines for many short-lived
// arrays torn down together.
type Arena struct {
	chunks    []arenaChunk
	chunkSize int
	blocks    []arenaBlock // handle-1 indexes this slice
	stats     Stats
	released  bool
}

type arenaChunk struct {
	buf    []byte
	offset uintptr
}

type arenaBlock struct {
	chunk int
	off   uintptr
	size  uintptr
	align uintptr
	live  bool
}

// NewArena creates an Arena with the given chunk size. If chunkSize <= 0,
// DefaultChunkSize is used.
func NewArena(chunkSize int) *Arena {
	if chunkSize <= 0 {
		chunkSize = DefaultChunkSize
	}
	return &Arena{chunkSize: chunkSize}
}

// Allocate implements Provider.
func (a *Arena) Allocate(size, align uintptr) (Handle, error) {
	if size == 0 {
		return InvalidHandle, ErrZeroSize
	}
	if align == 0 {
		align = 1
	}
	a.panicIfReleased()

	ci, off := a.bump(size, align)
	a.blocks = append(a.blocks, arenaBlock{chunk: ci, off: off, size: size, align: align, live: true})
	a.stats.Allocs++
	a.stats.Live++
	a.stats.InUse += int(size)
	return Handle(len(a.blocks)), nil
}

// bump finds room in the last chunk or appends a new one.
func (a *Arena) bump(size, align uintptr) (int, uintptr) {
	if n := len(a.chunks); n > 0 {
		c := &a.chunks[n-1]
		off := alignUp(uintptr(unsafe.Pointer(&c.buf[0]))+c.offset, align) -
			uintptr(unsafe.Pointer(&c.buf[0]))
		if off+size <= uintptr(len(c.buf)) {
			c.offset = off + size
			return n - 1, off
		}
	}
	// New chunk. Oversized requests get a dedicated chunk.
	chunkLen := uintptr(a.chunkSize)
	if size+align > chunkLen {
		chunkLen = size + align
	}
	a.chunks = append(a.chunks, arenaChunk{buf: make([]byte, chunkLen)})
	c := &a.chunks[len(a.chunks)-1]
	off := padding(uintptr(unsafe.Pointer(&c.buf[0])), align)
	c.offset = off + size
	return len(a.chunks) - 1, off
}

// Grow implements Provider. The old block's space is abandoned, not reused.
func (a *Arena) Grow(h Handle, oldSize, newSize uintptr) (Handle, error) {
	old := a.block(h)
	nh, err := a.Allocate(newSize, old.align)
	if err != nil {
		return InvalidHandle, err
	}
	nb := a.block(nh)
	dst := unsafe.Slice((*byte)(unsafe.Pointer(&a.chunks[nb.chunk].buf[nb.off])), newSize)
	src := unsafe.Slice((*byte)(unsafe.Pointer(&a.chunks[old.chunk].buf[old.off])), oldSize)
	copy(dst, src)
	a.Deallocate(h)
	a.stats.Allocs--
	a.stats.Frees--
	a.stats.Grows++
	return nh, nil
}

// Shrink implements Provider. Arena memory cannot be returned piecemeal, so
// the block simply reports a smaller capacity from now on.
func (a *Arena) Shrink(h Handle, oldSize, newSize uintptr) (Handle, error) {
	b := a.block(h)
	if newSize == 0 || newSize >= b.size {
		return h, nil
	}
	a.stats.InUse -= int(b.size - newSize)
	b.size = newSize
	a.stats.Shrinks++
	return h, nil
}

// Deallocate implements Provider. The space is not reclaimed until Reset or
// Release.
func (a *Arena) Deallocate(h Handle) {
	b := a.block(h)
	b.live = false
	a.stats.Frees++
	a.stats.Live--
	a.stats.InUse -= int(b.size)
}

// Resolve implements Provider.
func (a *Arena) Resolve(h Handle) (unsafe.Pointer, uintptr) {
	b := a.block(h)
	return unsafe.Pointer(&a.chunks[b.chunk].buf[b.off]), b.size
}

// Reset invalidates every handle and makes the arena's memory available for
// new allocations without releasing the chunks.
func (a *Arena) Reset() {
	a.panicIfReleased()
	a.blocks = a.blocks[:0]
	for i := range a.chunks {
		a.chunks[i].offset = 0
	}
	a.stats.Live = 0
	a.stats.InUse = 0
}

// Release frees the arena's chunks. The arena must not be used afterwards.
func (a *Arena) Release() {
	a.chunks = nil
	a.blocks = nil
	a.released = true
	a.stats.Live = 0
	a.stats.InUse = 0
}

// Stats returns cumulative provider activity.
func (a *Arena) Stats() Stats {
	return a.stats
}

func (a *Arena) block(h Handle) *arenaBlock {
	a.panicIfReleased()
	i := int(h) - 1
	if i < 0 || i >= len(a.blocks) || !a.blocks[i].live {
		panic(fmt.Sprintf("%v: %d", ErrBadHandle, h))
	}
	return &a.blocks[i]
}

func (a *Arena) panicIfReleased() {
	if a.released {
		panic("storage: arena used after Release")
	}
}

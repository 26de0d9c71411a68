package storage

import (
	"fmt"
	"unsafe"
)

// Heap is the default Provider: every block is a fresh Go runtime allocation.
// The Heap keeps a reference to each live block, so memory stays reachable
// for exactly as long as its handle.
type Heap struct {
	blocks map[Handle]heapBlock
	next   Handle
	stats  Stats
}

type heapBlock struct {
	raw   []byte  // backing allocation, includes alignment padding
	off   uintptr // offset of the aligned region within raw
	size  uintptr // usable bytes starting at off
	align uintptr
}

// NewHeap creates an empty Heap provider.
func NewHeap() *Heap {
	return &Heap{blocks: make(map[Handle]heapBlock)}
}

// Allocate implements Provider.
func (p *Heap) Allocate(size, align uintptr) (Handle, error) {
	if size == 0 {
		return InvalidHandle, ErrZeroSize
	}
	if align == 0 {
		align = 1
	}
	// make([]byte) gives at least 8-byte alignment; over-allocate and offset
	// for anything stricter.
	raw := make([]byte, size+align-1)
	off := padding(uintptr(unsafe.Pointer(&raw[0])), align)

	p.next++
	h := p.next
	p.blocks[h] = heapBlock{raw: raw, off: off, size: size, align: align}
	p.stats.Allocs++
	p.stats.Live++
	p.stats.InUse += int(size)
	return h, nil
}

// Grow implements Provider. The block is always relocated.
func (p *Heap) Grow(h Handle, oldSize, newSize uintptr) (Handle, error) {
	old := p.block(h)
	if oldSize > old.size {
		panic(fmt.Sprintf("storage: grow oldSize %d exceeds block size %d", oldSize, old.size))
	}
	nh, err := p.Allocate(newSize, old.align)
	if err != nil {
		return InvalidHandle, err
	}
	nb := p.blocks[nh]
	copy(nb.raw[nb.off:nb.off+oldSize], old.raw[old.off:old.off+oldSize])
	p.Deallocate(h)
	p.stats.Allocs--
	p.stats.Frees--
	p.stats.Grows++
	return nh, nil
}

// Shrink implements Provider. The surplus is released by copying into a
// smaller block.
func (p *Heap) Shrink(h Handle, oldSize, newSize uintptr) (Handle, error) {
	old := p.block(h)
	if newSize == 0 || newSize >= old.size {
		return h, nil
	}
	nh, err := p.Allocate(newSize, old.align)
	if err != nil {
		return h, err
	}
	nb := p.blocks[nh]
	copy(nb.raw[nb.off:nb.off+newSize], old.raw[old.off:old.off+newSize])
	p.Deallocate(h)
	p.stats.Allocs--
	p.stats.Frees--
	p.stats.Shrinks++
	return nh, nil
}

// Deallocate implements Provider.
func (p *Heap) Deallocate(h Handle) {
	b := p.block(h)
	delete(p.blocks, h)
	p.stats.Frees++
	p.stats.Live--
	p.stats.InUse -= int(b.size)
}

// Resolve implements Provider.
func (p *Heap) Resolve(h Handle) (unsafe.Pointer, uintptr) {
	b := p.block(h)
	return unsafe.Pointer(&b.raw[b.off]), b.size
}

// Stats returns cumulative provider activity.
func (p *Heap) Stats() Stats {
	return p.stats
}

func (p *Heap) block(h Handle) heapBlock {
	b, ok := p.blocks[h]
	if !ok {
		panic(fmt.Sprintf("%v: %d", ErrBadHandle, h))
	}
	return b
}

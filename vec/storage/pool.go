package storage

import (
	"fmt"
	"unsafe"
)

// Pool is a Provider with segregated per-size-class free lists. Deallocated
// blocks are recycled instead of released, so workloads that repeatedly
// create and destroy arrays of similar sizes stop hitting the runtime
// allocator entirely.
//
// Because requests round up to a class, Resolve reports a capacity that may
// exceed what was asked for; callers get the surplus for free.
type Pool struct {
	free   [][]poolBlock // per class
	blocks map[Handle]poolBlock
	next   Handle
	stats  Stats
}

type poolBlock struct {
	raw   []byte
	off   uintptr
	size  uintptr // rounded class size
	align uintptr
	class int // -1 when unpooled
}

// NewPool creates an empty Pool provider.
func NewPool() *Pool {
	return &Pool{
		free:   make([][]poolBlock, numClasses()),
		blocks: make(map[Handle]poolBlock),
	}
}

// Allocate implements Provider. The request rounds up to the nearest size
// class; a recycled block is preferred over a fresh allocation.
func (p *Pool) Allocate(size, align uintptr) (Handle, error) {
	if size == 0 {
		return InvalidHandle, ErrZeroSize
	}
	if align == 0 {
		align = 1
	}
	class, rounded := classFor(size)

	b, ok := p.take(class, align)
	if !ok {
		raw := make([]byte, rounded+align-1)
		b = poolBlock{
			raw:   raw,
			off:   padding(uintptr(unsafe.Pointer(&raw[0])), align),
			size:  rounded,
			align: align,
			class: class,
		}
	}

	p.next++
	h := p.next
	p.blocks[h] = b
	p.stats.Allocs++
	p.stats.Live++
	p.stats.InUse += int(b.size)
	return h, nil
}

// take pops a recycled block of the class whose alignment is compatible.
func (p *Pool) take(class int, align uintptr) (poolBlock, bool) {
	if class < 0 {
		return poolBlock{}, false
	}
	list := p.free[class]
	for i := len(list) - 1; i >= 0; i-- {
		if list[i].align >= align {
			b := list[i]
			p.free[class] = append(list[:i], list[i+1:]...)
			return b, true
		}
	}
	return poolBlock{}, false
}

// Grow implements Provider. The old block returns to its free list.
func (p *Pool) Grow(h Handle, oldSize, newSize uintptr) (Handle, error) {
	old := p.block(h)
	if newSize <= old.size {
		// Rounding already covers the request; keep the block.
		return h, nil
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

// Shrink implements Provider. Blocks never move to a smaller class; the
// capacity simply stays at the class size, which Resolve keeps reporting.
func (p *Pool) Shrink(h Handle, _, _ uintptr) (Handle, error) {
	p.block(h)
	p.stats.Shrinks++
	return h, nil
}

// Deallocate implements Provider. Pooled classes recycle; unpooled blocks
// are dropped for the runtime to collect.
func (p *Pool) Deallocate(h Handle) {
	b := p.block(h)
	delete(p.blocks, h)
	if b.class >= 0 {
		p.free[b.class] = append(p.free[b.class], b)
	}
	p.stats.Frees++
	p.stats.Live--
	p.stats.InUse -= int(b.size)
}

// Resolve implements Provider.
func (p *Pool) Resolve(h Handle) (unsafe.Pointer, uintptr) {
	b := p.block(h)
	return unsafe.Pointer(&b.raw[b.off]), b.size
}

// Stats returns cumulative provider activity.
func (p *Pool) Stats() Stats {
	return p.stats
}

// FreeBlocks reports how many recycled blocks are waiting across all
// classes.
func (p *Pool) FreeBlocks() int {
	n := 0
	for _, list := range p.free {
		n += len(list)
	}
	return n
}

func (p *Pool) block(h Handle) poolBlock {
	b, ok := p.blocks[h]
	if !ok {
		panic(fmt.Sprintf("%v: %d", ErrBadHandle, h))
	}
	return b
}

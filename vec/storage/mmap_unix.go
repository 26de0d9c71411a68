//go:build unix

package storage

import (
	"fmt"
	"os"
	"unsafe"

	"golang.org/x/sys/unix"
)

// Mmap is a Provider backed by anonymous memory mappings. Blocks live
// outside the Go heap and round up to whole pages, so Resolve usually
// reports more capacity than was requested. Deallocate unmaps immediately.
//
// Only valid for element types without Go pointers: the garbage collector
// never scans mapped pages.
type Mmap struct {
	mappings map[Handle][]byte
	next     Handle
	pageSize uintptr
	stats    Stats
}

// NewMmap creates an Mmap provider.
func NewMmap() (*Mmap, error) {
	return &Mmap{
		mappings: make(map[Handle][]byte),
		pageSize: uintptr(os.Getpagesize()),
	}, nil
}

// Allocate implements Provider. The mapping rounds up to whole pages.
func (p *Mmap) Allocate(size, align uintptr) (Handle, error) {
	if size == 0 {
		return InvalidHandle, ErrZeroSize
	}
	if align > p.pageSize {
		return InvalidHandle, fmt.Errorf("storage: alignment %d exceeds page size %d", align, p.pageSize)
	}
	length := alignUp(size, p.pageSize)
	data, err := unix.Mmap(-1, 0, int(length),
		unix.PROT_READ|unix.PROT_WRITE, unix.MAP_ANON|unix.MAP_PRIVATE)
	if err != nil {
		return InvalidHandle, fmt.Errorf("%w: mmap: %v", ErrOutOfMemory, err)
	}

	p.next++
	h := p.next
	p.mappings[h] = data
	p.stats.Allocs++
	p.stats.Live++
	p.stats.InUse += len(data)
	return h, nil
}

// Grow implements Provider. A new mapping is created and the old contents
// copied over; mremap is deliberately avoided for portability across unix
// platforms.
func (p *Mmap) Grow(h Handle, oldSize, newSize uintptr) (Handle, error) {
	old := p.mapping(h)
	if newSize <= uintptr(len(old)) {
		return h, nil
	}
	nh, err := p.Allocate(newSize, 1)
	if err != nil {
		return InvalidHandle, err
	}
	copy(p.mappings[nh], old[:oldSize])
	p.Deallocate(h)
	p.stats.Allocs--
	p.stats.Frees--
	p.stats.Grows++
	return nh, nil
}

// Shrink implements Provider. Whole surplus pages are unmapped in place;
// the block never relocates.
func (p *Mmap) Shrink(h Handle, _, newSize uintptr) (Handle, error) {
	old := p.mapping(h)
	keep := alignUp(newSize, p.pageSize)
	if keep == 0 || keep >= uintptr(len(old)) {
		return h, nil
	}
	if err := unix.Munmap(old[keep:]); err != nil {
		return h, fmt.Errorf("storage: munmap surplus: %w", err)
	}
	p.mappings[h] = old[:keep:keep]
	p.stats.InUse -= len(old) - int(keep)
	p.stats.Shrinks++
	return h, nil
}

// Deallocate implements Provider.
func (p *Mmap) Deallocate(h Handle) {
	data := p.mapping(h)
	delete(p.mappings, h)
	p.stats.Frees++
	p.stats.Live--
	p.stats.InUse -= len(data)
	// Double-unmap cannot happen: the handle is already gone.
	_ = unix.Munmap(data)
}

// Resolve implements Provider.
func (p *Mmap) Resolve(h Handle) (unsafe.Pointer, uintptr) {
	data := p.mapping(h)
	return unsafe.Pointer(&data[0]), uintptr(len(data))
}

// Stats returns cumulative provider activity.
func (p *Mmap) Stats() Stats {
	return p.stats
}

// Close unmaps every live block. The provider must not be used afterwards.
func (p *Mmap) Close() error {
	var firstErr error
	for h, data := range p.mappings {
		if err := unix.Munmap(data); err != nil && firstErr == nil {
			firstErr = err
		}
		delete(p.mappings, h)
	}
	p.stats.Live = 0
	p.stats.InUse = 0
	return firstErr
}

func (p *Mmap) mapping(h Handle) []byte {
	data, ok := p.mappings[h]
	if !ok {
		panic(fmt.Sprintf("%v: %d", ErrBadHandle, h))
	}
	return data
}

//go:build !unix

package storage

import "unsafe"

// Mmap is unavailable on this platform; NewMmap reports ErrUnsupported.
type Mmap struct{}

// NewMmap reports ErrUnsupported.
func NewMmap() (*Mmap, error) {
	return nil, ErrUnsupported
}

func (p *Mmap) Allocate(size, align uintptr) (Handle, error) {
	return InvalidHandle, ErrUnsupported
}

func (p *Mmap) Grow(h Handle, oldSize, newSize uintptr) (Handle, error) {
	return InvalidHandle, ErrUnsupported
}

func (p *Mmap) Shrink(h Handle, oldSize, newSize uintptr) (Handle, error) {
	return InvalidHandle, ErrUnsupported
}

func (p *Mmap) Deallocate(Handle) {}

func (p *Mmap) Resolve(Handle) (unsafe.Pointer, uintptr) {
	panic(ErrUnsupported)
}

func (p *Mmap) Stats() Stats { return Stats{} }

func (p *Mmap) Close() error { return nil }

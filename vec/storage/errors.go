package storage

import "errors"

var (
	// ErrOutOfMemory indicates the provider could not satisfy an allocation
	// or growth request.
	ErrOutOfMemory = errors.New("storage: out of memory")

	// ErrBadHandle indicates an invalid, freed, or foreign handle.
	ErrBadHandle = errors.New("storage: bad handle")

	// ErrZeroSize indicates an allocation request for zero bytes. Capacity 0
	// means "no live allocation"; providers never hand out empty blocks.
	ErrZeroSize = errors.New("storage: zero-size allocation")

	// ErrUnsupported indicates the provider is not available on this platform.
	ErrUnsupported = errors.New("storage: provider unsupported on this platform")
)

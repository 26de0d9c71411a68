package storage

import "unsafe"

// Quota wraps a Provider and enforces a byte budget. Requests that would
// push live usage past the limit fail with ErrOutOfMemory while leaving the
// inner provider untouched, which makes Quota the natural backend for
// exercising the recoverable TryReserve paths.
type Quota struct {
	inner Provider
	limit int
	used  map[Handle]int
	total int
}

// NewQuota wraps inner with a budget of limit bytes.
func NewQuota(inner Provider, limit int) *Quota {
	return &Quota{inner: inner, limit: limit, used: make(map[Handle]int)}
}

// Allocate implements Provider.
func (q *Quota) Allocate(size, align uintptr) (Handle, error) {
	if q.total+int(size) > q.limit {
		return InvalidHandle, ErrOutOfMemory
	}
	h, err := q.inner.Allocate(size, align)
	if err != nil {
		return InvalidHandle, err
	}
	q.charge(h)
	return h, nil
}

// Grow implements Provider.
func (q *Quota) Grow(h Handle, oldSize, newSize uintptr) (Handle, error) {
	if q.total-q.used[h]+int(newSize) > q.limit {
		return InvalidHandle, ErrOutOfMemory
	}
	nh, err := q.inner.Grow(h, oldSize, newSize)
	if err != nil {
		return InvalidHandle, err
	}
	q.release(h)
	q.charge(nh)
	return nh, nil
}

// Shrink implements Provider.
func (q *Quota) Shrink(h Handle, oldSize, newSize uintptr) (Handle, error) {
	nh, err := q.inner.Shrink(h, oldSize, newSize)
	if err != nil {
		return h, err
	}
	q.release(h)
	q.charge(nh)
	return nh, nil
}

// Deallocate implements Provider.
func (q *Quota) Deallocate(h Handle) {
	q.release(h)
	q.inner.Deallocate(h)
}

// Resolve implements Provider.
func (q *Quota) Resolve(h Handle) (unsafe.Pointer, uintptr) {
	return q.inner.Resolve(h)
}

// Used reports the bytes currently charged against the budget.
func (q *Quota) Used() int {
	return q.total
}

// charge records the reported size of h. The inner provider may have
// rounded the request up; the rounded size is what counts.
func (q *Quota) charge(h Handle) {
	_, size := q.inner.Resolve(h)
	q.used[h] = int(size)
	q.total += int(size)
}

func (q *Quota) release(h Handle) {
	q.total -= q.used[h]
	delete(q.used, h)
}

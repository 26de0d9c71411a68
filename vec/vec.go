package vec

import (
	"fmt"
	"unsafe"

	"github.com/joshuapare/veckit/vec/growth"
	"github.com/joshuapare/veckit/vec/storage"
)

// Vec is a growable array of T stored contiguously in memory obtained from a
// storage.Provider. The zero value is not usable; construct with New,
// WithCapacity, TryWithCapacity, or FromSlice.
type Vec[T any] struct {
	buf  RawBuffer[T]
	len  int
	drop func(*T)
}

// Option configures a Vec at construction time.
type Option func(*settings)

type settings struct {
	provider storage.Provider
	strategy growth.Strategy
}

// WithProvider selects the storage backend. Defaults to a fresh
// storage.Heap.
func WithProvider(p storage.Provider) Option {
	return func(s *settings) { s.provider = p }
}

// WithStrategy selects the capacity growth policy. Defaults to
// growth.Doubling.
func WithStrategy(st growth.Strategy) Option {
	return func(s *settings) { s.strategy = st }
}

func applyOptions(opts []Option) settings {
	var s settings
	for _, o := range opts {
		o(&s)
	}
	return s
}

// New creates an empty Vec. No memory is allocated until the first element
// is pushed or capacity is reserved.
func New[T any](opts ...Option) *Vec[T] {
	s := applyOptions(opts)
	return &Vec[T]{buf: NewRawBuffer[T](s.provider, s.strategy)}
}

// WithCapacity creates an empty Vec with room for at least n elements.
// Fails fatally on allocation failure; use TryWithCapacity to recover.
func WithCapacity[T any](n int, opts ...Option) *Vec[T] {
	v := New[T](opts...)
	v.buf.ReserveExact(0, n)
	return v
}

// TryWithCapacity is WithCapacity returning a recoverable error.
func TryWithCapacity[T any](n int, opts ...Option) (*Vec[T], error) {
	v := New[T](opts...)
	if err := v.buf.TryReserveExact(0, n); err != nil {
		return nil, err
	}
	return v, nil
}

// FromSlice creates a Vec holding a copy of s.
func FromSlice[T any](s []T, opts ...Option) *Vec[T] {
	v := WithCapacity[T](len(s), opts...)
	copy(v.slots(len(s)), s)
	v.len = len(s)
	return v
}

// SetDrop installs the element finalizer invoked on every discarded
// element. Passing nil removes it. See the package documentation for which
// operations discard and which transfer ownership.
func (v *Vec[T]) SetDrop(fn func(*T)) {
	v.drop = fn
}

// slots returns a typed view of the first n element slots, initialized or
// not. n must not exceed the capacity. This and RawBuffer.Ptr are the only
// places raw memory becomes visible as T.
func (v *Vec[T]) slots(n int) []T {
	return unsafe.Slice((*T)(v.buf.Ptr()), n)
}

func (v *Vec[T]) dropElem(p *T) {
	if v.drop != nil {
		v.drop(p)
	}
}

// Len returns the number of live elements.
func (v *Vec[T]) Len() int { return v.len }

// Cap returns the number of element slots backed by live memory.
func (v *Vec[T]) Cap() int { return v.buf.Capacity() }

// IsEmpty reports whether the array holds no elements.
func (v *Vec[T]) IsEmpty() bool { return v.len == 0 }

// Slice returns the live elements as a slice view over the array's own
// memory. The view is invalidated by any operation that mutates the array.
func (v *Vec[T]) Slice() []T {
	return v.slots(v.len)
}

// Get returns the element at index i. Fails fatally if i is out of range.
func (v *Vec[T]) Get(i int) T {
	v.checkIndex(i)
	return v.slots(v.len)[i]
}

// Set overwrites the element at index i, discarding the previous value
// through the drop hook. Fails fatally if i is out of range.
func (v *Vec[T]) Set(i int, x T) {
	v.checkIndex(i)
	s := v.slots(v.len)
	v.dropElem(&s[i])
	s[i] = x
}

// At returns a pointer to the element at index i, valid until the array
// next reallocates. Fails fatally if i is out of range.
func (v *Vec[T]) At(i int) *T {
	v.checkIndex(i)
	return &v.slots(v.len)[i]
}

// Reserve ensures capacity for at least additional more elements.
func (v *Vec[T]) Reserve(additional int) {
	v.buf.Reserve(v.len, additional)
}

// ReserveExact reserves capacity for exactly additional more elements,
// bypassing the growth strategy. The backend may still round up.
func (v *Vec[T]) ReserveExact(additional int) {
	v.buf.ReserveExact(v.len, additional)
}

// TryReserve is Reserve returning a recoverable error. The array is
// untouched on failure.
func (v *Vec[T]) TryReserve(additional int) error {
	return v.buf.TryReserve(v.len, additional)
}

// TryReserveExact is ReserveExact returning a recoverable error. The array
// is untouched on failure.
func (v *Vec[T]) TryReserveExact(additional int) error {
	return v.buf.TryReserveExact(v.len, additional)
}

// ShrinkToFit shrinks the capacity toward the current length. Best-effort:
// a backend that rounds blocks up may keep capacity above the length.
func (v *Vec[T]) ShrinkToFit() {
	v.buf.ShrinkToFit(v.len)
}

// ShrinkTo shrinks the capacity toward max(Len(), minCap).
func (v *Vec[T]) ShrinkTo(minCap int) {
	v.buf.ShrinkTo(v.len, minCap)
}

// Push appends x, growing by the strategy's next step when full. Amortized
// O(1).
func (v *Vec[T]) Push(x T) {
	v.buf.GrowOne(v.len)
	s := v.slots(v.len + 1)
	s[v.len] = x
	v.len++
}

// PushWithinCapacity appends x only if spare capacity exists. It never
// allocates; it reports false (and does not take x) when the array is full.
func (v *Vec[T]) PushWithinCapacity(x T) bool {
	if v.len == v.buf.Capacity() {
		return false
	}
	s := v.slots(v.len + 1)
	s[v.len] = x
	v.len++
	return true
}

// Pop removes and returns the last element. Ownership transfers to the
// caller; the drop hook does not run. Returns false when empty.
func (v *Vec[T]) Pop() (T, bool) {
	if v.len == 0 {
		var zero T
		return zero, false
	}
	s := v.slots(v.len)
	v.len--
	return s[v.len], true
}

// Insert places x at index i, shifting [i, Len()) one slot right. Fails
// fatally if i > Len(). O(Len()-i).
func (v *Vec[T]) Insert(i int, x T) {
	if i < 0 || i > v.len {
		panic(fmt.Sprintf("vec: insert index %d out of range for length %d", i, v.len))
	}
	v.buf.GrowOne(v.len)
	s := v.slots(v.len + 1)
	copy(s[i+1:], s[i:v.len]) // overlapping shift right
	s[i] = x
	v.len++
}

// Remove takes out and returns the element at index i, shifting
// [i+1, Len()) one slot left. Ownership transfers to the caller. Fails
// fatally if i is out of range. O(Len()-i).
func (v *Vec[T]) Remove(i int) T {
	v.checkIndex(i)
	s := v.slots(v.len)
	x := s[i]
	copy(s[i:], s[i+1:v.len])
	v.len--
	return x
}

// RemoveFirstIf takes out and returns the first element matching pred,
// shifting the rest one slot left. The second result is false when nothing
// matched. The predicate must not mutate the vec.
func (v *Vec[T]) RemoveFirstIf(pred func(T) bool) (T, bool) {
	for i, x := range v.Slice() {
		if pred(x) {
			return v.Remove(i), true
		}
	}
	var zero T
	return zero, false
}

// SwapRemove takes out and returns the element at index i, moving the last
// element into its slot. O(1), does not preserve order. Fails fatally if i
// is out of range.
func (v *Vec[T]) SwapRemove(i int) T {
	v.checkIndex(i)
	s := v.slots(v.len)
	x := s[i]
	s[i] = s[v.len-1]
	v.len--
	return x
}

// Truncate drops the elements [n, Len()) in place. No-op when n >= Len().
// The length is set before the drop hook runs, so a panicking hook leaks
// the rest of the suffix rather than double-dropping it.
func (v *Vec[T]) Truncate(n int) {
	if n < 0 {
		panic(fmt.Sprintf("vec: truncate to negative length %d", n))
	}
	if n >= v.len {
		return
	}
	old := v.len
	s := v.slots(old)
	v.len = n
	for i := n; i < old; i++ {
		v.dropElem(&s[i])
	}
}

// Clear drops every element. Capacity is retained.
func (v *Vec[T]) Clear() {
	v.Truncate(0)
}

// Append moves every element of other onto the end of v, leaving other
// empty. No drop hooks run; ownership transfers wholesale. other must be
// a different array; appending a vec to itself is a caller logic bug.
func (v *Vec[T]) Append(other *Vec[T]) {
	if other == v {
		panic("vec: append of a vec to itself")
	}
	n := other.len
	if n == 0 {
		return
	}
	v.buf.Reserve(v.len, n)
	copy(v.slots(v.len+n)[v.len:], other.slots(n))
	v.len += n
	other.len = 0
}

// SplitOff removes [at, Len()) into a freshly allocated Vec sharing the
// same provider, strategy, and drop hook. Fails fatally if at > Len().
func (v *Vec[T]) SplitOff(at int) *Vec[T] {
	if at < 0 || at > v.len {
		panic(fmt.Sprintf("vec: split_off index %d out of range for length %d", at, v.len))
	}
	n := v.len - at
	other := &Vec[T]{
		buf:  NewRawBuffer[T](v.buf.provider, v.buf.strategy),
		drop: v.drop,
	}
	if n > 0 {
		other.buf.ReserveExact(0, n)
		copy(other.slots(n), v.slots(v.len)[at:])
		other.len = n
	}
	v.len = at // moved out, no drops
	return other
}

// ExtendFromSlice copies every element of s onto the end.
func (v *Vec[T]) ExtendFromSlice(s []T) {
	n := len(s)
	if n == 0 {
		return
	}
	v.buf.Reserve(v.len, n)
	copy(v.slots(v.len+n)[v.len:], s)
	v.len += n
}

// ExtendFromWithin copies the elements [start, end) of the array itself
// onto the end. The source range is validated before reserving, because
// reserving may relocate the buffer.
func (v *Vec[T]) ExtendFromWithin(start, end int) {
	v.checkRange(start, end)
	n := end - start
	if n == 0 {
		return
	}
	v.buf.Reserve(v.len, n)
	s := v.slots(v.len + n)
	copy(s[v.len:], s[start:end]) // destination is spare capacity; no overlap
	v.len += n
}

// Resize grows or shrinks to n elements, filling new slots with copies of
// fill.
func (v *Vec[T]) Resize(n int, fill T) {
	v.ResizeWith(n, func() T { return fill })
}

// ResizeWith grows or shrinks to n elements, filling new slots with values
// from f. The length is bumped after every written element, so a panicking
// f leaves the already-written prefix live.
func (v *Vec[T]) ResizeWith(n int, f func() T) {
	if n < 0 {
		panic(fmt.Sprintf("vec: resize to negative length %d", n))
	}
	if n <= v.len {
		v.Truncate(n)
		return
	}
	v.buf.Reserve(v.len, n-v.len)
	s := v.slots(n)
	for v.len < n {
		s[v.len] = f()
		v.len++
	}
}

// Clone returns a copy of the array in freshly allocated storage from the
// same provider, with the same strategy and drop hook.
func (v *Vec[T]) Clone() *Vec[T] {
	other := &Vec[T]{
		buf:  NewRawBuffer[T](v.buf.provider, v.buf.strategy),
		drop: v.drop,
	}
	if v.len > 0 {
		other.buf.ReserveExact(0, v.len)
		copy(other.slots(v.len), v.slots(v.len))
		other.len = v.len
	}
	return other
}

// Free drops every element, then releases the buffer back to the provider.
// The Vec is empty and reusable afterwards.
func (v *Vec[T]) Free() {
	v.Clear()
	v.buf.Free()
}

// String formats the live elements like a slice.
func (v *Vec[T]) String() string {
	return fmt.Sprint(v.Slice())
}

func (v *Vec[T]) checkIndex(i int) {
	if i < 0 || i >= v.len {
		panic(fmt.Sprintf("vec: index %d out of range for length %d", i, v.len))
	}
}

func (v *Vec[T]) checkRange(start, end int) {
	if start < 0 || start > end || end > v.len {
		panic(fmt.Sprintf("vec: range [%d:%d] out of range for length %d", start, end, v.len))
	}
}

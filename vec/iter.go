package vec

import "iter"

// All returns an index/value iterator over the live elements.
func (v *Vec[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := 0; i < v.len; i++ {
			if !yield(i, v.slots(v.len)[i]) {
				return
			}
		}
	}
}

// Values returns a value iterator over the live elements.
func (v *Vec[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := 0; i < v.len; i++ {
			if !yield(v.slots(v.len)[i]) {
				return
			}
		}
	}
}

// ExtendSeq pushes every value of seq onto the end. The sequence runs user
// code, so the length is bumped per element; a panicking sequence leaves
// the elements pushed so far live.
func (v *Vec[T]) ExtendSeq(seq iter.Seq[T]) {
	for x := range seq {
		v.Push(x)
	}
}

// Collect creates a Vec from a sequence.
func Collect[T any](seq iter.Seq[T], opts ...Option) *Vec[T] {
	v := New[T](opts...)
	v.ExtendSeq(seq)
	return v
}

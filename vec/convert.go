package vec

import (
	"fmt"
	"reflect"
	"unsafe"

	"github.com/joshuapare/veckit/internal/mathx"
	"github.com/joshuapare/veckit/vec/storage"
)

// Flatten reinterprets an array of fixed-size element groups as a flat
// array of the group's element type, reusing the same storage block. G must
// be an array type [N]T with N == group; the length and capacity multiply
// by group. Fails fatally when the sizes disagree or the new length would
// overflow. v is emptied; the returned Vec owns the memory. The drop hook
// does not carry over: it was typed for G.
func Flatten[G any, T any](v *Vec[G], group int) *Vec[T] {
	var g G
	var t T
	if group < 0 || uintptr(group)*unsafe.Sizeof(t) != unsafe.Sizeof(g) {
		panic(fmt.Sprintf("vec: flatten group %d of %d-byte elements does not cover %d-byte groups",
			group, unsafe.Sizeof(t), unsafe.Sizeof(g)))
	}

	newLen, ok := mathx.Mul(v.len, group)
	if !ok {
		panic(fmt.Sprintf("%v: flatten %d groups of %d", ErrCapacityOverflow, v.len, group))
	}
	newCap := 0
	if unsafe.Sizeof(t) != 0 {
		// Same block, same bytes: the element capacity scales with the
		// group size, no overflow possible beyond the length check above.
		newCap = v.buf.cap * group
	}

	out := &Vec[T]{
		buf: RawBuffer[T]{
			handle:   v.buf.handle,
			cap:      newCap,
			provider: v.buf.provider,
			strategy: v.buf.strategy,
		},
		len: newLen,
	}
	v.buf.handle = storage.InvalidHandle
	v.buf.cap = 0
	v.len = 0
	return out
}

// IntoArray moves the array's elements into a fixed-size array value. A
// must be the array type [N]T with N == Len(); otherwise ErrLengthMismatch
// is returned and the Vec is untouched. On success the Vec is emptied
// without running drop hooks: ownership transferred.
func IntoArray[A any, T any](v *Vec[T]) (A, error) {
	var a A
	// The element count has to come from the type: for zero-sized T every
	// [N]T has byte size 0, so sizes alone cannot distinguish lengths.
	rt := reflect.TypeOf(&a).Elem()
	if rt.Kind() != reflect.Array || rt.Elem() != reflect.TypeOf((*T)(nil)).Elem() {
		return a, fmt.Errorf("%w: %s is not an array of the element type", ErrLengthMismatch, rt)
	}
	if rt.Len() != v.len {
		return a, fmt.Errorf("%w: array of %d elements cannot hold length %d",
			ErrLengthMismatch, rt.Len(), v.len)
	}
	if v.len > 0 && unsafe.Sizeof(a) > 0 {
		a = *(*A)(v.buf.Ptr())
	}
	v.len = 0
	return a, nil
}

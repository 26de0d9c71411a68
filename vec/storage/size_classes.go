package storage

// Size class strategy for the Pool provider.
//
// Small requests round up in linear increments, larger ones to powers of
// two. Rounding keeps the number of distinct free lists small so that a
// deallocated block has a good chance of being reused by the next request.

const (
	poolSmallMin       = 16  // minimum block size handed out
	poolSmallMax       = 512 // upper bound of the linear range
	poolSmallIncrement = 16
	poolLargeMax       = 1 << 20 // largest pooled class (1 MiB)
)

// classFor returns the free-list index and rounded block size for a request.
// Requests above poolLargeMax are not pooled: index -1, exact size.
func classFor(size uintptr) (int, uintptr) {
	if size <= poolSmallMin {
		return 0, poolSmallMin
	}
	if size <= poolSmallMax {
		rounded := alignUp(size, poolSmallIncrement)
		return int(rounded/poolSmallIncrement) - 1, rounded
	}
	if size > poolLargeMax {
		return -1, size
	}
	// Power-of-two classes above the linear range.
	idx := poolSmallMax / poolSmallIncrement // first large class index
	rounded := uintptr(poolSmallMax)
	for rounded < size {
		rounded *= 2
		idx++
	}
	return idx - 1, rounded
}

// numClasses is the total number of pooled free lists.
func numClasses() int {
	idx, _ := classFor(poolLargeMax)
	return idx + 1
}

package HashSet

import "math/bits"

type bucket[E comparable] struct {
	element E
	hop     uint32 // bit i set means bkt[home+i] holds an element whose home is this bucket.
}

func (e *bucket[E]) hashed() bool {
	return e.hop != 0
}

func (e *bucket[E]) link(d int) {
	e.hop |= 1 << d
}

func (e *bucket[E]) unlink(d int) {
	e.hop &^= 1 << d
}

// nextLink returns the smallest offset >= from present in hop, or -1.
func (e *bucket[E]) nextLink(from int) int {
	if from >= 32 {
		return -1
	}
	if rest := e.hop >> from; rest != 0 {
		return from + bits.TrailingZeros32(rest)
	}
	return -1
}

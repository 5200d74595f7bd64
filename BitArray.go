package binartree

import (
	"math/bits"
)

// NewBitArray that holds at least size bits, all cleared.
func NewBitArray(size uint) BitArray {
	return BitArray{bits: make([]uint, (size+bits.UintSize-1)/bits.UintSize)}
}

type BitArray struct {
	bits []uint
}

func (u BitArray) Len() int {
	return len(u.bits) * bits.UintSize
}

func (u BitArray) Get(i int) bool {
	return (u.bits[i/bits.UintSize]>>(i%bits.UintSize))&1 == 1
}

func (u BitArray) Set(i int) {
	u.bits[i/bits.UintSize] |= 1 << (i % bits.UintSize)
}

func (u BitArray) Clr(i int) {
	u.bits[i/bits.UintSize] &^= 1 << (i % bits.UintSize)
}

// First set bit, or -1 if none is set.
func (u BitArray) First() int {
	for i, w := range u.bits {
		if w != 0 {
			return i*bits.UintSize + bits.TrailingZeros(w)
		}
	}
	return -1
}

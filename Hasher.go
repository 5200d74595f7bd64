package binartree

import (
	"math"
	"reflect"
	"unsafe"

	"github.com/cespare/xxhash"
	"golang.org/x/exp/constraints"
)

// Hasher is a seed mixed into xxhash sums. The zero value is a valid seed.
type Hasher uint64

// HashMem hashes the memory contents in the range [addr, addr+size) as bytes.
func (u Hasher) HashMem(addr unsafe.Pointer, size uintptr) uint64 {
	return u.mix(xxhash.Sum64(unsafe.Slice((*byte)(addr), size)))
}

// HashBytes hashes the given byte slice.
func (u Hasher) HashBytes(b []byte) uint64 {
	return u.mix(xxhash.Sum64(b))
}

// HashString hashes the contents of v rather than its header.
func (u Hasher) HashString(v string) uint64 {
	return u.mix(xxhash.Sum64String(v))
}

func (u Hasher) mix(h uint64) uint64 {
	h ^= uint64(u)
	h ^= h >> 33
	h *= 0xff51afd7ed558ccd
	return h ^ h>>33
}

// HashFunc returns a hash function for E chosen by E's underlying kind. Strings are hashed by
// content, floats have -0 folded into +0 so that equal values hash equally, everything else is
// hashed by memory.
func HashFunc[E constraints.Ordered](u Hasher) func(*E) uint64 {
	switch reflect.TypeOf(*new(E)).Kind() {
	case reflect.String:
		return func(e *E) uint64 {
			return u.HashString(*(*string)(unsafe.Pointer(e)))
		}
	case reflect.Float32:
		return func(e *E) uint64 {
			f := *(*float32)(unsafe.Pointer(e))
			if f == 0 {
				f = 0
			}
			b := math.Float32bits(f)
			return u.HashMem(unsafe.Pointer(&b), unsafe.Sizeof(b))
		}
	case reflect.Float64:
		return func(e *E) uint64 {
			f := *(*float64)(unsafe.Pointer(e))
			if f == 0 {
				f = 0
			}
			b := math.Float64bits(f)
			return u.HashMem(unsafe.Pointer(&b), unsafe.Sizeof(b))
		}
	default:
		return func(e *E) uint64 {
			return u.HashMem(unsafe.Pointer(e), unsafe.Sizeof(*e))
		}
	}
}

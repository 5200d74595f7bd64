package HashSet

import (
	"math/bits"

	"github.com/g-m-twostay/binartree"
	"github.com/g-m-twostay/binartree/Sets"
	"golang.org/x/exp/constraints"
)

const (
	fail byte = iota
	added
	exist
)

// MaxNeighborhood is the largest neighborhood size a HashSet supports.
const MaxNeighborhood = 32

// New HashSet of type E.
// h is the neighborhood size parameter in Hopscotch hashing, 16 is a good value; it is clamped to [1, MaxNeighborhood].
// size is used to calculate the initial table size that should handle size elements without resizing.
func New[E constraints.Ordered](h byte, size, seed uint) *HashSet[E] {
	h = min(max(h, 1), MaxNeighborhood)
	bktLen := 1<<bits.Len(size) + uint(h)
	return &HashSet[E]{bkt: make([]bucket[E], bktLen), usedBkt: binartree.NewBitArray(bktLen), h: h, hashes: make([]uint64, bktLen), hash: binartree.HashFunc[E](binartree.Hasher(seed))}
}

// HashSet is a set of elements backed by open addressing with hopscotch displacement. Every element
// lives within h buckets of the bucket its hash selects.
type HashSet[E constraints.Ordered] struct {
	bkt     []bucket[E]
	usedBkt binartree.BitArray
	hashes  []uint64
	hash    func(*E) uint64
	sz      uint
	h       byte
}

var _ Sets.Set[int] = (*HashSet[int])(nil)

func (u *HashSet[E]) mod(hash uint64) int {
	return int(hash & uint64(len(u.bkt)-int(u.h)-1))
}

func (u *HashSet[E]) expand() {
	newSize := uint((len(u.bkt)-int(u.h))<<1) + uint(u.h)
	M := HashSet[E]{bkt: make([]bucket[E], newSize), h: u.h, usedBkt: binartree.NewBitArray(newSize), hashes: make([]uint64, newSize), hash: u.hash}
	for i := range u.bkt {
		if u.usedBkt.Get(i) {
			for M.tryPut(&u.bkt[i].element, u.hashes[i]) == fail {
				M.expand()
			}
		}
	}

	u.bkt = M.bkt
	u.usedBkt = M.usedBkt
	u.hashes = M.hashes
}

// Size of the set.
func (u *HashSet[E]) Size() uint {
	return u.sz
}

// find the bucket index holding e, or -1.
func (u *HashSet[E]) find(e *E, i0 int) int {
	for d := u.bkt[i0].nextLink(0); d > -1; d = u.bkt[i0].nextLink(d + 1) {
		if u.bkt[i0+d].element == *e {
			return i0 + d
		}
	}
	return -1
}

// Remove e from the set. Returns true if the removal is successful.
func (u *HashSet[E]) Remove(e E) bool {
	if i0 := u.mod(u.hash(&e)); u.bkt[i0].hashed() {
		if i1 := u.find(&e, i0); i1 > -1 {
			u.usedBkt.Clr(i1)
			u.bkt[i0].unlink(i1 - i0)
			u.bkt[i1].element = *new(E)
			u.sz--
			return true
		}
	}
	return false
}

// Has e in the set. Returns true if e is present in the set.
func (u *HashSet[E]) Has(e E) bool {
	if i0 := u.mod(u.hash(&e)); u.bkt[i0].hashed() {
		return u.find(&e, i0) > -1
	}
	return false
}

func (u *HashSet[E]) fillEmpty(i_hash int, i_free int, e *E, hash uint64) {
	u.bkt[i_free].element = *e
	u.hashes[i_free] = hash
	u.usedBkt.Set(i_free)
	u.bkt[i_hash].link(i_free - i_hash)
	u.sz++
}

// hopBack moves some element homed within h of i_free into i_free, so that the slot it vacated
// becomes the new free slot. Returns -1 if nothing can be moved.
func (u *HashSet[E]) hopBack(i_free int) int {
	for i0 := max(i_free-int(u.h)+1, 0); i0 < i_free; i0++ {
		if d := u.bkt[i0].nextLink(0); d > -1 && i0+d < i_free {
			i1 := i0 + d
			u.bkt[i_free].element, u.hashes[i_free] = u.bkt[i1].element, u.hashes[i1]
			u.usedBkt.Set(i_free)
			u.bkt[i0].unlink(d)
			u.bkt[i0].link(i_free - i0)
			u.usedBkt.Clr(i1)
			return i1
		}
	}
	return -1
}

func (u *HashSet[E]) tryPut(e *E, hash uint64) byte {
	i_hash := u.mod(hash)
	if u.bkt[i_hash].hashed() && u.find(e, i_hash) > -1 {
		return exist
	}
	for i_free := i_hash; i_free < len(u.bkt); i_free++ {
		if !u.usedBkt.Get(i_free) {
			for i_free-i_hash >= int(u.h) {
				if i_free = u.hopBack(i_free); i_free < 0 {
					return fail
				}
			}
			u.fillEmpty(i_hash, i_free, e, hash)
			return added
		}
	}
	return fail
}

// Put e into the set. Returns true if e wasn't present.
func (u *HashSet[E]) Put(e E) bool {
	var t byte
	for hash := u.hash(&e); ; {
		if t = u.tryPut(&e, hash); t == fail {
			u.expand()
		} else {
			break
		}
	}
	return t == added
}

// Take an arbitrary element from the set. Returns zero value if the set is empty.
// Doesn't guarantee which element it will return.
// Faster than iterating with Range.
func (u *HashSet[E]) Take() (e E) {
	if i := u.usedBkt.First(); i > -1 {
		e = u.bkt[i].element
	}
	return
}

// Range over elements of the set and call f on them. Stops when f returns false.
// The set mustn't be modified by f.
func (u *HashSet[E]) Range(f func(E) bool) {
	for i := range u.bkt {
		if u.usedBkt.Get(i) {
			if !f(u.bkt[i].element) {
				return
			}
		}
	}
}

// Clear the set, keeping the table size.
func (u *HashSet[E]) Clear() {
	clear(u.bkt)
	clear(u.hashes)
	u.usedBkt = binartree.NewBitArray(uint(len(u.bkt)))
	u.sz = 0
}

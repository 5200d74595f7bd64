package Trees

import (
	"golang.org/x/exp/constraints"
)

// A node in the arena. Index 0 is the Empty node, so a zero child index means there is no child.
// The zero value is a leaf.
type info[S constraints.Unsigned] struct {
	l, r S
}

// base is the arena the tree's nodes live in. Nodes are addressed by index into ifs; the key of
// ifs[i] is vs[i-1]. Released nodes are chained into a free list and handed out again before the
// arena grows.
type base[T constraints.Ordered, S constraints.Unsigned] struct {
	ifs  []info[S] // ifs[0] is the Empty node; its l and r stay 0.
	vs   []T
	free S // free is the beginning of the linked list that contains all the free indexes; info[S]::l represents next.
}

func makeBase[T constraints.Ordered, S constraints.Unsigned](hint S) base[T, S] {
	return base[T, S]{ifs: make([]info[S], 1, uint64(hint)+1), vs: make([]T, 0, hint)}
}

func (u *base[T, S]) getIf(i S) *info[S] {
	return &u.ifs[i]
}

func (u *base[T, S]) getV(i S) *T {
	return &u.vs[i-1]
}

// addFree index once.
func (u *base[T, S]) addFree(a S) {
	u.getIf(a).l = u.free
	u.free = a
}

// popFree index once. Returns 0 when there's no free index(when u.free==0).
func (u *base[T, S]) popFree() S {
	b := u.free
	u.free = u.getIf(u.free).l
	return b
}

// alloc a leaf holding v, reusing a free index if there is one. Slices of the arena may be
// reallocated, so pointers into ifs taken before alloc are stale afterwards.
func (u *base[T, S]) alloc(v T) S {
	if a := u.popFree(); a != 0 {
		*u.getIf(a) = info[S]{}
		*u.getV(a) = v
		return a
	}
	if uint64(len(u.ifs)) > uint64(^S(0)) {
		panic(CapacityError{uint64(^S(0))})
	}
	u.ifs = append(u.ifs, info[S]{})
	u.vs = append(u.vs, v)
	return S(len(u.ifs) - 1)
}

// reset the arena to hold nothing. Keys are zeroed so that they can be collected; capacity is kept.
func (u *base[T, S]) reset() {
	clear(u.vs)
	u.ifs, u.vs, u.free = u.ifs[:1], u.vs[:0], 0
}

// clone the arena into independent slices.
func (u *base[T, S]) clone() base[T, S] {
	c := base[T, S]{ifs: make([]info[S], len(u.ifs)), vs: make([]T, len(u.vs)), free: u.free}
	copy(c.ifs, u.ifs)
	copy(c.vs, u.vs)
	return c
}

package Trees

import (
	"github.com/g-m-twostay/binartree/Queues"
)

// insert v below the node *curI. Keys equal to a node's key go to its right, so equal keys form a
// chain that in-order traversal visits in insertion order. No rotations are done.
// Time: O(D); Space: O(1)
func (u *base[T, S]) insert(curI *S, v T) {
	n := u.alloc(v) // alloc first: it may move ifs.
	for *curI != 0 {
		if *u.getV(*curI) <= v {
			curI = &u.getIf(*curI).r
		} else {
			curI = &u.getIf(*curI).l
		}
	}
	*curI = n
}

// find the topmost node holding v in the subtree rooted at curI. Returns 0 if there is none.
// Time: O(D); Space: O(1)
func (u *base[T, S]) find(curI S, v T) S {
	for curI != 0 {
		if k := *u.getV(curI); v < k {
			curI = u.getIf(curI).l
		} else if v > k {
			curI = u.getIf(curI).r
		} else {
			return curI
		}
	}
	return 0
}

// min node of the subtree rooted at curI. Panics with EmptyTreeError if curI is the Empty node.
func (u *base[T, S]) min(curI S) S {
	if curI == 0 {
		panic(EmptyTreeError{})
	}
	for u.getIf(curI).l != 0 {
		curI = u.getIf(curI).l
	}
	return curI
}

// max node of the subtree rooted at curI. Panics with EmptyTreeError if curI is the Empty node.
func (u *base[T, S]) max(curI S) S {
	if curI == 0 {
		panic(EmptyTreeError{})
	}
	for u.getIf(curI).r != 0 {
		curI = u.getIf(curI).r
	}
	return curI
}

// walk the subtree rooted at curI in order and push the keys to the back of dst. st is used as
// the traversal stack and returned for reuse; it can be nil.
// Time: O(n); Space: O(D)
func (u *base[T, S]) walk(curI S, dst *Queues.Deque[T], st []S) []S {
	for st = st[:0]; curI != 0; curI = u.getIf(curI).l {
		st = append(st, curI)
	}
	for len(st) > 0 {
		curI, st = st[len(st)-1], st[:len(st)-1]
		dst.PushBack(*u.getV(curI))
		for curI = u.getIf(curI).r; curI != 0; curI = u.getIf(curI).l {
			st = append(st, curI)
		}
	}
	return st
}

// remove the topmost node holding v from the tree rooted at *curI, together with everything below
// it. The keys of the discarded descendants are returned in order, left subtree first, so that the
// caller can insert them again. Returns false and nil if v isn't found.
// Time: O(D+m) where m is the size of the discarded subtree.
func (u *base[T, S]) remove(curI *S, v T) (bool, *Queues.Deque[T]) {
	for *curI != 0 {
		if k := *u.getV(*curI); v < k {
			curI = &u.getIf(*curI).l
		} else if v > k {
			curI = &u.getIf(*curI).r
		} else {
			break
		}
	}
	if *curI == 0 {
		return false, nil
	}
	orphans := Queues.NewDeque[T]()
	st := u.walk(u.getIf(*curI).l, orphans, nil)
	u.walk(u.getIf(*curI).r, orphans, st)
	u.recDrop(*curI)
	*curI = 0
	return true, orphans
}

// recDrop releases every node of the subtree rooted at curI into the free list. The parent's link
// to curI is left for the caller to clear.
// Time: O(n); Space: O(D)
func (u *base[T, S]) recDrop(curI S) {
	if curI == 0 {
		return
	}
	for st := []S{curI}; len(st) > 0; {
		curI, st = st[len(st)-1], st[:len(st)-1]
		if cur := *u.getIf(curI); cur.l != 0 {
			st = append(st, cur.l)
			if cur.r != 0 {
				st = append(st, cur.r)
			}
		} else if cur.r != 0 {
			st = append(st, cur.r)
		}
		*u.getV(curI) = *new(T)
		u.getIf(curI).r = 0
		u.addFree(curI)
	}
}

// corrupt reports whether some node in the subtree rooted at curI has a key in its left subtree
// that isn't less than its own, or a key in its right subtree that is less than its own.
func (u *base[T, S]) corrupt(curI S) bool {
	type frame struct {
		i            S
		lo, hi       T
		hasLo, hasHi bool
	}
	for st := []frame{{i: curI}}; len(st) > 0; {
		f := st[len(st)-1]
		st = st[:len(st)-1]
		if f.i == 0 {
			continue
		}
		k := *u.getV(f.i)
		if (f.hasLo && k < f.lo) || (f.hasHi && k >= f.hi) {
			return true
		}
		st = append(st, frame{u.getIf(f.i).l, f.lo, k, f.hasLo, true}, frame{u.getIf(f.i).r, k, f.hi, true, f.hasHi})
	}
	return false
}

// maxDepth of the subtree rooted at curI, counting nodes. The Empty node has depth 0.
func (u *base[T, S]) maxDepth(curI S) int {
	type frame struct {
		i S
		d int
	}
	m := 0
	for st := []frame{{curI, 1}}; len(st) > 0; {
		f := st[len(st)-1]
		st = st[:len(st)-1]
		if f.i != 0 {
			m = max(m, f.d)
			st = append(st, frame{u.getIf(f.i).l, f.d + 1}, frame{u.getIf(f.i).r, f.d + 1})
		}
	}
	return m
}

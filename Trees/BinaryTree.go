package Trees

import (
	"fmt"
	"slices"
	"strings"

	"github.com/emirpasic/gods/containers"
	"github.com/g-m-twostay/binartree/Queues"
	"golang.org/x/exp/constraints"
)

// BinaryTree is a multiset kept in an unbalanced binary search tree. Duplicates are allowed and are
// read back in the order they were inserted. The shape of the tree, and so the cost of every
// operation, depends only on the order of insertions; nothing is rebalanced.
// T is the type of values it will hold, S is the type of the indexes addressing nodes in the
// arena, so a tree holds at most the maximum value of S elements.
// Operations that return several elements return them in a Queues.Deque, which is consumed by
// reading it.
// A BinaryTree must not be used by multiple goroutines without synchronization.
type BinaryTree[T constraints.Ordered, S constraints.Unsigned] struct {
	base[T, S]
	root S
	size int
	st   []S // traversal stack reused between walks.
}

var _ Tree[int] = (*BinaryTree[int, uint])(nil)
var _ containers.Container = (*BinaryTree[int, uint])(nil)

// New returns an empty tree with room for hint elements.
func New[T constraints.Ordered, S constraints.Unsigned](hint S) *BinaryTree[T, S] {
	return &BinaryTree[T, S]{base: makeBase[T, S](hint)}
}

// From builds a tree by inserting vs in order.
func From[T constraints.Ordered, S constraints.Unsigned](vs ...T) *BinaryTree[T, S] {
	u := New[T, S](0)
	u.Extend(vs...)
	return u
}

// FromIter builds a tree by inserting everything it yields, exhausting it.
func FromIter[T constraints.Ordered, S constraints.Unsigned](it Queues.Iterator[T]) *BinaryTree[T, S] {
	u := New[T, S](0)
	u.ExtendFrom(it)
	return u
}

// Len is the number of elements, duplicates included.
// Time: O(1); Space: O(1)
func (u *BinaryTree[T, S]) Len() int {
	return u.size
}

// Size is the same as Len.
func (u *BinaryTree[T, S]) Size() int {
	return u.size
}

func (u *BinaryTree[T, S]) Empty() bool {
	return u.size == 0
}

// Insert v. Always adds an element, even if v is already present.
// Time: O(D)
func (u *BinaryTree[T, S]) Insert(v T) {
	if u.root == 0 {
		u.root = u.alloc(v)
	} else {
		u.insert(&u.root, v)
	}
	u.size++
}

// Extend inserts vs in order.
func (u *BinaryTree[T, S]) Extend(vs ...T) {
	for _, v := range vs {
		u.Insert(v)
	}
}

// ExtendFrom inserts everything it yields, exhausting it.
func (u *BinaryTree[T, S]) ExtendFrom(it Queues.Iterator[T]) {
	for v, ok := it.Next(); ok; v, ok = it.Next() {
		u.Insert(v)
	}
}

// Append inserts every element of src. src isn't modified.
func (u *BinaryTree[T, S]) Append(src *BinaryTree[T, S]) {
	u.ExtendFrom(src.Iter())
}

// Contains v at least once.
// Time: O(D); Space: O(1)
func (u *BinaryTree[T, S]) Contains(v T) bool {
	return u.find(u.root, v) != 0
}

// First is the smallest element. Panics with EmptyTreeError if the tree is empty.
// Time: O(D); Space: O(1)
func (u *BinaryTree[T, S]) First() T {
	return *u.getV(u.min(u.root))
}

// Last is the largest element. Panics with EmptyTreeError if the tree is empty.
// Time: O(D); Space: O(1)
func (u *BinaryTree[T, S]) Last() T {
	return *u.getV(u.max(u.root))
}

// Iter returns all elements in ascending order, equal elements in insertion order. Every call
// walks the tree again.
// Time: O(n); Space: O(n)
func (u *BinaryTree[T, S]) Iter() *Queues.Deque[T] {
	d := Queues.WithCapacity[T](u.size)
	u.st = u.walk(u.root, d, u.st)
	return d
}

// ToSlice is Iter collected into a slice.
func (u *BinaryTree[T, S]) ToSlice() []T {
	return u.Iter().Collect()
}

// Range calls f on the elements in ascending order until f returns false. The tree must not be
// modified by f.
func (u *BinaryTree[T, S]) Range(f func(T) bool) {
	u.Iter().Range(f)
}

// Clear removes all elements.
func (u *BinaryTree[T, S]) Clear() {
	u.reset()
	u.root, u.size = 0, 0
}

// Remove one occurrence of v. Returns false if v isn't present.
// The matched node is dropped together with its whole subtree, then every other key of that
// subtree is inserted again from the root. The tree's contents lose exactly one v but its shape can
// change a lot.
// Time: O(D+m*D) where m is the size of the matched node's subtree.
func (u *BinaryTree[T, S]) Remove(v T) bool {
	found, orphans := u.remove(&u.root, v)
	if found {
		u.size -= orphans.Len() + 1
		u.ExtendFrom(orphans)
	}
	return found
}

// PopFirst removes one occurrence of the smallest element and returns it. Panics with EmptyTreeError
// if the tree is empty.
func (u *BinaryTree[T, S]) PopFirst() T {
	v := u.First()
	u.Remove(v)
	return v
}

// PopLast removes one occurrence of the largest element and returns it. Panics with EmptyTreeError
// if the tree is empty.
func (u *BinaryTree[T, S]) PopLast() T {
	v := u.Last()
	u.Remove(v)
	return v
}

// rebuild the tree from the staged elements.
func (u *BinaryTree[T, S]) rebuild(staged *Queues.Deque[T]) {
	u.Clear()
	u.ExtendFrom(staged)
}

// ReplaceVal replaces every occurrence of oldVal with newVal.
// Time: O(n*D)
func (u *BinaryTree[T, S]) ReplaceVal(oldVal, newVal T) {
	if oldVal == newVal {
		return
	}
	count := 0
	staged := u.Iter()
	staged.Retain(func(v T) bool {
		if v == oldVal {
			count++
			return false
		}
		return true
	})
	for range count {
		staged.PushBack(newVal)
	}
	u.rebuild(staged)
}

// DrainFilter removes the elements for which f returns true and returns them in ascending order.
// f is called once per element, in ascending order.
// Time: O(n*D)
func (u *BinaryTree[T, S]) DrainFilter(f func(T) bool) *Queues.Deque[T] {
	kept, removed := Queues.WithCapacity[T](u.size), Queues.NewDeque[T]()
	u.Iter().Range(func(v T) bool {
		if f(v) {
			removed.PushBack(v)
		} else {
			kept.PushBack(v)
		}
		return true
	})
	u.rebuild(kept)
	return removed
}

// Retain only the elements for which f returns true.
func (u *BinaryTree[T, S]) Retain(f func(T) bool) {
	u.DrainFilter(func(v T) bool {
		return !f(v)
	})
}

// MultiRemove removes one occurrence of each element of vs, as many times as it appears in vs.
// Elements of vs that aren't present are ignored.
// Time: O(n*D+m*log(m)) where m is len(vs).
func (u *BinaryTree[T, S]) MultiRemove(vs []T) {
	rm := slices.Clone(vs)
	slices.Sort(rm)
	j := 0
	staged := u.Iter()
	staged.Retain(func(v T) bool {
		for j < len(rm) && rm[j] < v {
			j++
		}
		if j < len(rm) && rm[j] == v {
			j++
			return false
		}
		return true
	})
	u.rebuild(staged)
}

// Difference returns the elements of u that don't appear in other, in ascending order.
// Time: O(n+m+n*log(m))
func (u *BinaryTree[T, S]) Difference(other *BinaryTree[T, S]) *Queues.Deque[T] {
	return without(u.ToSlice(), other.ToSlice(), Queues.NewDeque[T]())
}

// Intersection returns the elements of u that also appear in other, in ascending order.
// Time: O(n+m+n*log(m))
func (u *BinaryTree[T, S]) Intersection(other *BinaryTree[T, S]) *Queues.Deque[T] {
	a, b := u.ToSlice(), other.ToSlice()
	r := Queues.NewDeque[T]()
	for _, v := range a {
		if _, found := slices.BinarySearch(b, v); found {
			r.PushBack(v)
		}
	}
	return r
}

// SymmetricDifference returns the elements of u that don't appear in other followed by the
// elements of other that don't appear in u. Each part is ascending, the whole isn't.
// Time: O(n+m+n*log(m)+m*log(n))
func (u *BinaryTree[T, S]) SymmetricDifference(other *BinaryTree[T, S]) *Queues.Deque[T] {
	a, b := u.ToSlice(), other.ToSlice()
	return without(b, a, without(a, b, Queues.NewDeque[T]()))
}

// Union returns SymmetricDifference followed by Intersection. It isn't sorted as a whole.
func (u *BinaryTree[T, S]) Union(other *BinaryTree[T, S]) *Queues.Deque[T] {
	r := u.SymmetricDifference(other)
	r.Append(u.Intersection(other))
	return r
}

// without pushes the elements of a not found in the sorted b to dst.
func without[T constraints.Ordered](a, b []T, dst *Queues.Deque[T]) *Queues.Deque[T] {
	for _, v := range a {
		if _, found := slices.BinarySearch(b, v); !found {
			dst.PushBack(v)
		}
	}
	return dst
}

// IsDisjoint reports whether u and other have no element in common.
func (u *BinaryTree[T, S]) IsDisjoint(other *BinaryTree[T, S]) bool {
	return u.Intersection(other).Empty()
}

// And is a new tree holding Intersection.
func (u *BinaryTree[T, S]) And(other *BinaryTree[T, S]) *BinaryTree[T, S] {
	return FromIter[T, S](u.Intersection(other))
}

// Or is a new tree holding Union.
func (u *BinaryTree[T, S]) Or(other *BinaryTree[T, S]) *BinaryTree[T, S] {
	return FromIter[T, S](u.Union(other))
}

// Xor is a new tree holding SymmetricDifference.
func (u *BinaryTree[T, S]) Xor(other *BinaryTree[T, S]) *BinaryTree[T, S] {
	return FromIter[T, S](u.SymmetricDifference(other))
}

// Clone returns an independent tree with the same shape and contents.
// Time: O(n)
func (u *BinaryTree[T, S]) Clone() *BinaryTree[T, S] {
	return &BinaryTree[T, S]{base: u.clone(), root: u.root, size: u.size}
}

// Equal reports whether u and other hold the same elements, regardless of shape.
func (u *BinaryTree[T, S]) Equal(other *BinaryTree[T, S]) bool {
	return u.size == other.size && slices.Equal(u.ToSlice(), other.ToSlice())
}

// Corrupt [Tree.Corrupt]
// Time: O(n); Space: O(D)
func (u *BinaryTree[T, S]) Corrupt() bool {
	return u.corrupt(u.root)
}

// MaxDepth is the number of nodes on the longest path from the root; 0 for an empty tree.
func (u *BinaryTree[T, S]) MaxDepth() int {
	return u.maxDepth(u.root)
}

// Values returns the elements in ascending order.
func (u *BinaryTree[T, S]) Values() []interface{} {
	return u.Iter().Values()
}

func (u *BinaryTree[T, S]) String() string {
	vs := u.Iter().Collect()
	ss := make([]string, len(vs))
	for i, v := range vs {
		ss[i] = fmt.Sprintf("%v", v)
	}
	return "BinaryTree\n" + strings.Join(ss, ", ")
}

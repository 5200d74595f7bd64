package Queues

import (
	"fmt"
	"slices"
	"strings"

	"github.com/emirpasic/gods/containers"
	"github.com/g-m-twostay/binartree"
	"github.com/g-m-twostay/binartree/Sets/HashSet"
	"golang.org/x/exp/constraints"
)

// Deque is a double ended queue backed by a circular array. Besides the queue operations it supports
// index based editing and bulk draining.
// Reading a Deque through Next, NextBack, Range or Collect removes what is read: a Deque can only be
// iterated once, use Clone to keep a copy.
// The zero value is an empty Deque ready to use.
type Deque[T constraints.Ordered] struct {
	buf      []T
	head, sz int
}

var _ containers.Container = (*Deque[int])(nil)
var _ DoubleEnded[int] = (*Deque[int])(nil)

func NewDeque[T constraints.Ordered]() *Deque[T] {
	return new(Deque[T])
}

// WithCapacity returns an empty Deque that can hold initCap elements without growing.
func WithCapacity[T constraints.Ordered](initCap int) *Deque[T] {
	return &Deque[T]{buf: make([]T, initCap)}
}

// FromSlice returns a Deque holding a copy of vs in the same order.
func FromSlice[T constraints.Ordered](vs ...T) *Deque[T] {
	u := &Deque[T]{buf: make([]T, len(vs)), sz: len(vs)}
	copy(u.buf, vs)
	return u
}

// at maps a logical index in [0, len(buf)) to its position in buf.
func (u *Deque[T]) at(i int) int {
	if j := u.head + i; j < len(u.buf) {
		return j
	} else {
		return j - len(u.buf)
	}
}

func (u *Deque[T]) resize(newLen int) {
	nc := make([]T, newLen)
	if u.head+u.sz <= len(u.buf) {
		copy(nc, u.buf[u.head:u.head+u.sz])
	} else {
		n := copy(nc, u.buf[u.head:])
		copy(nc[n:], u.buf[:u.sz-n])
	}
	u.buf, u.head = nc, 0
}

// grow makes room for extra more elements.
func (u *Deque[T]) grow(extra int) {
	if need := u.sz + extra; need > len(u.buf) {
		u.resize(max(need, len(u.buf)*3/2, 4))
	}
}

func (u *Deque[T]) checkIndex(i, limit int) {
	if i < 0 || i >= limit {
		panic(IndexError{i, u.sz})
	}
}

func (u *Deque[T]) Len() int {
	return u.sz
}

// Size is the same as Len.
func (u *Deque[T]) Size() int {
	return u.sz
}

func (u *Deque[T]) Empty() bool {
	return u.sz == 0
}

// Cap is the number of elements the Deque can hold without growing.
func (u *Deque[T]) Cap() int {
	return len(u.buf)
}

// Reserve room for at least additional more elements.
func (u *Deque[T]) Reserve(additional int) {
	if need := u.sz + additional; need > len(u.buf) {
		u.resize(need)
	}
}

// ShrinkToFit drops unused capacity.
func (u *Deque[T]) ShrinkToFit() {
	if len(u.buf) > u.sz {
		u.resize(u.sz)
	}
}

// Clear removes all elements, keeping the capacity.
func (u *Deque[T]) Clear() {
	clear(u.buf)
	u.head, u.sz = 0, 0
}

func (u *Deque[T]) PushBack(item T) {
	u.grow(1)
	u.buf[u.at(u.sz)] = item
	u.sz++
}

func (u *Deque[T]) PushFront(item T) {
	u.grow(1)
	if u.head == 0 {
		u.head = len(u.buf)
	}
	u.head--
	u.buf[u.head] = item
	u.sz++
}

// Push is PushBack.
func (u *Deque[T]) Push(item T) {
	u.PushBack(item)
}

func (u *Deque[T]) PopFront() (T, error) {
	if u.sz == 0 {
		return *new(T), &EmptyQueueError{}
	}
	t := u.buf[u.head]
	u.buf[u.head] = *new(T)
	u.head = u.at(1)
	u.sz--
	return t, nil
}

func (u *Deque[T]) PopBack() (T, error) {
	if u.sz == 0 {
		return *new(T), &EmptyQueueError{}
	}
	i := u.at(u.sz - 1)
	t := u.buf[i]
	u.buf[i] = *new(T)
	u.sz--
	return t, nil
}

// Pop is PopFront.
func (u *Deque[T]) Pop() (T, error) {
	return u.PopFront()
}

// Peek the front element. Returns the zero value if u is empty.
func (u *Deque[T]) Peek() T {
	if u.sz == 0 {
		return *new(T)
	}
	return u.buf[u.head]
}

func (u *Deque[T]) Front() (T, error) {
	if u.sz == 0 {
		return *new(T), &EmptyQueueError{}
	}
	return u.buf[u.head], nil
}

func (u *Deque[T]) Back() (T, error) {
	if u.sz == 0 {
		return *new(T), &EmptyQueueError{}
	}
	return u.buf[u.at(u.sz-1)], nil
}

// Get the i-th element from the front. Panics with IndexError if i isn't in [0, Len()).
func (u *Deque[T]) Get(i int) T {
	u.checkIndex(i, u.sz)
	return u.buf[u.at(i)]
}

// Insert item so that it becomes the i-th element. Elements from i onwards shift back by one.
// Panics with IndexError if i isn't in [0, Len()].
func (u *Deque[T]) Insert(i int, item T) {
	u.checkIndex(i, u.sz+1)
	u.grow(1)
	for j := u.sz; j > i; j-- {
		u.buf[u.at(j)] = u.buf[u.at(j-1)]
	}
	u.buf[u.at(i)] = item
	u.sz++
}

// Remove and return the i-th element. Elements after i shift forward by one.
// Panics with IndexError if i isn't in [0, Len()).
func (u *Deque[T]) Remove(i int) T {
	u.checkIndex(i, u.sz)
	t := u.buf[u.at(i)]
	for j := i; j < u.sz-1; j++ {
		u.buf[u.at(j)] = u.buf[u.at(j+1)]
	}
	u.buf[u.at(u.sz-1)] = *new(T)
	u.sz--
	return t
}

// SwapRemoveBack removes the i-th element and fills its slot with the back element. Order isn't kept.
// Panics with IndexError if i isn't in [0, Len()).
func (u *Deque[T]) SwapRemoveBack(i int) T {
	u.checkIndex(i, u.sz)
	j, last := u.at(i), u.at(u.sz-1)
	t := u.buf[j]
	u.buf[j] = u.buf[last]
	u.buf[last] = *new(T)
	u.sz--
	return t
}

// SwapRemoveFront removes the i-th element and fills its slot with the front element. Order isn't kept.
// Panics with IndexError if i isn't in [0, Len()).
func (u *Deque[T]) SwapRemoveFront(i int) T {
	u.checkIndex(i, u.sz)
	j := u.at(i)
	t := u.buf[j]
	u.buf[j] = u.buf[u.head]
	u.buf[u.head] = *new(T)
	u.head = u.at(1)
	u.sz--
	return t
}

// compact moves the gap [from, from+n) to the back and zeroes it.
func (u *Deque[T]) compact(from, n int) {
	for j := from; j+n < u.sz; j++ {
		u.buf[u.at(j)] = u.buf[u.at(j+n)]
	}
	for j := u.sz - n; j < u.sz; j++ {
		u.buf[u.at(j)] = *new(T)
	}
	u.sz -= n
}

// Drain removes the elements in [from, to) and returns them in a new Deque.
// Panics with RangeError unless 0 <= from <= to <= Len().
func (u *Deque[T]) Drain(from, to int) *Deque[T] {
	if from < 0 || from > to || to > u.sz {
		panic(RangeError{from, to, u.sz})
	}
	r := WithCapacity[T](to - from)
	for j := from; j < to; j++ {
		r.buf[r.sz] = u.buf[u.at(j)]
		r.sz++
	}
	u.compact(from, to-from)
	return r
}

// DrainFilter removes every element whose value matched f and returns them in a new Deque. f is
// called once per element; afterwards any element equal to a matched value is removed. A matched
// element that isn't equal to itself (NaN) is removed by position instead. Both the removed and
// remaining elements keep their relative order.
func (u *Deque[T]) DrainFilter(f func(T) bool) *Deque[T] {
	matched := HashSet.New[T](16, 0, 0)
	var unequal binartree.BitArray // positions of matched elements with v != v.
	for j := 0; j < u.sz; j++ {
		if v := u.buf[u.at(j)]; f(v) {
			if v == v {
				matched.Put(v)
			} else {
				if unequal.Len() == 0 {
					unequal = binartree.NewBitArray(uint(u.sz))
				}
				unequal.Set(j)
			}
		}
	}
	r := NewDeque[T]()
	if matched.Size() == 0 && unequal.Len() == 0 {
		return r
	}
	w := 0
	for j := 0; j < u.sz; j++ {
		if v := u.buf[u.at(j)]; matched.Has(v) || (unequal.Len() > 0 && unequal.Get(j)) {
			r.PushBack(v)
		} else {
			u.buf[u.at(w)] = v
			w++
		}
	}
	u.compact(w, u.sz-w)
	return r
}

// Retain only the elements for which f returns true, keeping their order.
func (u *Deque[T]) Retain(f func(T) bool) {
	w := 0
	for j := 0; j < u.sz; j++ {
		if v := u.buf[u.at(j)]; f(v) {
			u.buf[u.at(w)] = v
			w++
		}
	}
	u.compact(w, u.sz-w)
}

// FullDedup sorts u in ascending order and removes duplicates. The previous order is lost.
func (u *Deque[T]) FullDedup() {
	if u.head+u.sz > len(u.buf) {
		u.resize(len(u.buf))
	}
	s := u.buf[u.head : u.head+u.sz]
	slices.Sort(s)
	c := slices.Compact(s)
	clear(s[len(c):])
	u.sz = len(c)
}

// SplitOff returns a new Deque with the elements in [at, Len()); u keeps [0, at).
// Panics with IndexError if at isn't in [0, Len()].
func (u *Deque[T]) SplitOff(at int) *Deque[T] {
	u.checkIndex(at, u.sz+1)
	r := WithCapacity[T](u.sz - at)
	for j := at; j < u.sz; j++ {
		r.buf[r.sz] = u.buf[u.at(j)]
		r.sz++
	}
	u.Truncate(at)
	return r
}

// Truncate keeps the first n elements. Does nothing if n >= Len().
func (u *Deque[T]) Truncate(n int) {
	if n < u.sz {
		u.compact(max(n, 0), u.sz-max(n, 0))
	}
}

// Append moves every element of other to the back of u, leaving other empty. Appending u to
// itself doubles its contents.
func (u *Deque[T]) Append(other *Deque[T]) {
	n := other.sz
	u.grow(n)
	for j := range n {
		u.buf[u.at(u.sz)] = other.buf[other.at(j)]
		u.sz++
	}
	if other != u {
		other.Clear()
	}
}

// Extend pushes vs to the back in order.
func (u *Deque[T]) Extend(vs ...T) {
	u.grow(len(vs))
	for _, v := range vs {
		u.buf[u.at(u.sz)] = v
		u.sz++
	}
}

// ExtendFrom pushes everything it yields to the back, exhausting it.
func (u *Deque[T]) ExtendFrom(it Iterator[T]) {
	for v, ok := it.Next(); ok; v, ok = it.Next() {
		u.PushBack(v)
	}
}

// Next removes and returns the front element; false once u is empty.
func (u *Deque[T]) Next() (T, bool) {
	t, err := u.PopFront()
	return t, err == nil
}

// NextBack removes and returns the back element; false once u is empty.
func (u *Deque[T]) NextBack() (T, bool) {
	t, err := u.PopBack()
	return t, err == nil
}

// Range removes elements from the front and calls f on them. Stops when f returns false, the elements
// not yet visited stay in u.
func (u *Deque[T]) Range(f func(T) bool) {
	for u.sz > 0 {
		if t, _ := u.PopFront(); !f(t) {
			return
		}
	}
}

// Collect removes all elements and returns them front to back.
func (u *Deque[T]) Collect() []T {
	s := make([]T, u.sz)
	for j := range s {
		s[j] = u.buf[u.at(j)]
	}
	u.Clear()
	return s
}

// Clone returns an independent copy of u.
func (u *Deque[T]) Clone() *Deque[T] {
	r := WithCapacity[T](u.sz)
	for j := 0; j < u.sz; j++ {
		r.buf[j] = u.buf[u.at(j)]
	}
	r.sz = u.sz
	return r
}

// Equal reports whether u and other hold the same elements in the same order.
func (u *Deque[T]) Equal(other *Deque[T]) bool {
	if u.sz != other.sz {
		return false
	}
	for j := 0; j < u.sz; j++ {
		if u.buf[u.at(j)] != other.buf[other.at(j)] {
			return false
		}
	}
	return true
}

// Values returns the elements front to back without consuming u.
func (u *Deque[T]) Values() []interface{} {
	vs := make([]interface{}, u.sz)
	for j := range vs {
		vs[j] = u.buf[u.at(j)]
	}
	return vs
}

func (u *Deque[T]) String() string {
	vs := make([]string, u.sz)
	for j := range vs {
		vs[j] = fmt.Sprintf("%v", u.buf[u.at(j)])
	}
	return "Deque\n" + strings.Join(vs, ", ")
}

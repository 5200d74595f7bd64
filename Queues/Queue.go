package Queues

import "fmt"

type Queue[T any] interface {
	Push(item T)
	Pop() (T, error)
	Peek() T
	Empty() bool
}

// Iterator yields elements until exhausted. Implementations may consume themselves while doing so.
type Iterator[T any] interface {
	Next() (T, bool)
}

// DoubleEnded is a Queue that can also be worked from its back and addressed by index.
type DoubleEnded[T any] interface {
	Queue[T]
	Iterator[T]
	PushFront(item T)
	PopBack() (T, error)
	NextBack() (T, bool)
	Get(i int) T
	Len() int
}

type EmptyQueueError struct {
}

func (e *EmptyQueueError) Error() string {
	return "Queue is Empty: cannot Pop."
}

// IndexError is the panic value of index based operations given an index outside the queue.
type IndexError struct {
	Index, Len int
}

func (e IndexError) Error() string {
	return fmt.Sprintf("index out of range: index %d, length %d", e.Index, e.Len)
}

// RangeError is the panic value of range based operations given a range that isn't within [0, Len].
type RangeError struct {
	From, To, Len int
}

func (e RangeError) Error() string {
	return fmt.Sprintf("range [%d, %d) out of bounds for length %d", e.From, e.To, e.Len)
}

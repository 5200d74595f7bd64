package Sets

// Set holds each element at most once.
type Set[E any] interface {
	Put(E) bool
	Has(E) bool
	Remove(E) bool
	Size() uint
	Take() E
	Range(func(E) bool)
}

// Multiset holds elements together with their multiplicity. Remove drops a single occurrence.
// Range visits elements in ascending order for ordered implementations.
type Multiset[E any] interface {
	Insert(E)
	Contains(E) bool
	Remove(E) bool
	Len() int
	Clear()
	Range(func(E) bool)
}

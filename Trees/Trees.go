package Trees

import (
	"fmt"

	"github.com/g-m-twostay/binartree/Sets"
)

// Tree is an ordered multiset stored in a binary search tree.
// Methods that read the smallest or largest element panic with EmptyTreeError on an empty tree;
// check Len first when that can happen.
type Tree[T any] interface {
	Sets.Multiset[T]
	//First is the smallest element.
	First() T
	//Last is the largest element.
	Last() T
	//PopFirst removes one occurrence of the smallest element and returns it.
	PopFirst() T
	//PopLast removes one occurrence of the largest element and returns it.
	PopLast() T
	//Corrupt returns whether some node violates the ordering of the tree: every key in a node's
	//left subtree is less than the node's key, every key in its right subtree is not less.
	Corrupt() bool
}

// EmptyTreeError is the panic value when the smallest or largest element of an empty tree is requested.
type EmptyTreeError struct {
}

func (e EmptyTreeError) Error() string {
	return "Tree is Empty: no first or last element."
}

// CapacityError is the panic value when a tree would need more nodes than its index type can address.
type CapacityError struct {
	Max uint64
}

func (e CapacityError) Error() string {
	return fmt.Sprintf("tree index type can address at most %d nodes", e.Max)
}

// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: BUSL-1.1

package avl

// Node is a branch of the tree. A nil *Node is the empty subtree, so every
// accessor below is safe to call on nil.
//
// Nodes reachable from a committed tree are never modified again; a
// transaction clones a node before it writes to it.
type Node[T any] struct {
	left   *Node[T]
	right  *Node[T]
	height int
	key    T
}

// IsEmpty reports whether n is the empty subtree.
func (n *Node[T]) IsEmpty() bool {
	return n == nil
}

// Key returns the key stored at n. It returns the zero value for the empty
// subtree.
func (n *Node[T]) Key() T {
	var zero T
	if n == nil {
		return zero
	}
	return n.key
}

func (n *Node[T]) Left() *Node[T] {
	if n == nil {
		return nil
	}
	return n.left
}

func (n *Node[T]) Right() *Node[T] {
	if n == nil {
		return nil
	}
	return n.right
}

// Height returns the cached height of n. A single node has height 0 and the
// empty subtree has height -1.
func (n *Node[T]) Height() int {
	if n == nil {
		return -1
	}
	return n.height
}

// BalanceFactor is the height of the left subtree minus the height of the
// right subtree.
func (n *Node[T]) BalanceFactor() int {
	if n == nil {
		return 0
	}
	return n.left.Height() - n.right.Height()
}

// Depth walks the whole subtree and returns the longest root-to-leaf edge
// count. It ignores the cached heights and is O(n); use it only to audit
// Height.
func (n *Node[T]) Depth() int {
	if n == nil {
		return -1
	}
	return max(n.left.Depth(), n.right.Depth()) + 1
}

func (n *Node[T]) resetHeight() {
	n.height = max(n.left.Height(), n.right.Height()) + 1
}

func (n *Node[T]) clone() *Node[T] {
	return &Node[T]{
		left:   n.left,
		right:  n.right,
		height: n.height,
		key:    n.key,
	}
}

// Iterator returns an in-order iterator over the subtree rooted at n.
func (n *Node[T]) Iterator() *Iterator[T] {
	return &Iterator[T]{node: n}
}

// ReverseIterator returns a reverse in-order iterator over the subtree rooted
// at n.
func (n *Node[T]) ReverseIterator() *ReverseIterator[T] {
	return &ReverseIterator[T]{node: n}
}

func minimum[T any](n *Node[T]) *Node[T] {
	if n == nil {
		return nil
	}
	for n.left != nil {
		n = n.left
	}
	return n
}

func maximum[T any](n *Node[T]) *Node[T] {
	if n == nil {
		return nil
	}
	for n.right != nil {
		n = n.right
	}
	return n
}

// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: BUSL-1.1

package avl

// Iterator is used to iterate over the keys of a subtree in ascending order.
// It only holds the path to the next key, so memory use is bounded by the
// height of the tree. Reset rewinds it to the beginning.
type Iterator[T any] struct {
	node    *Node[T]
	stack   []*Node[T]
	started bool
}

// Next returns the next key in ascending order. The boolean is false once
// the iterator is exhausted.
func (i *Iterator[T]) Next() (T, bool) {
	var zero T

	if !i.started {
		i.started = true
		i.pushLeft(i.node)
	}
	if len(i.stack) == 0 {
		return zero, false
	}

	n := i.stack[len(i.stack)-1]
	i.stack = i.stack[:len(i.stack)-1]
	i.pushLeft(n.right)
	return n.key, true
}

// Reset rewinds the iterator so the next call to Next returns the smallest
// key again.
func (i *Iterator[T]) Reset() {
	i.stack = i.stack[:0]
	i.started = false
}

// pushLeft pushes n and its chain of left children.
func (i *Iterator[T]) pushLeft(n *Node[T]) {
	for ; n != nil; n = n.left {
		i.stack = append(i.stack, n)
	}
}

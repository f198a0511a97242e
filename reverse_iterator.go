// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: BUSL-1.1

package avl

// ReverseIterator is used to iterate over the keys of a subtree in reverse
// in-order.
type ReverseIterator[T any] struct {
	node    *Node[T]
	stack   []*Node[T]
	started bool
}

// Previous returns the previous key in reverse order
func (ri *ReverseIterator[T]) Previous() (T, bool) {
	var zero T

	if !ri.started {
		ri.started = true
		ri.pushRight(ri.node)
	}
	if len(ri.stack) == 0 {
		return zero, false
	}

	n := ri.stack[len(ri.stack)-1]
	ri.stack = ri.stack[:len(ri.stack)-1]
	ri.pushRight(n.left)
	return n.key, true
}

// Reset rewinds the iterator to the largest key.
func (ri *ReverseIterator[T]) Reset() {
	ri.stack = ri.stack[:0]
	ri.started = false
}

func (ri *ReverseIterator[T]) pushRight(n *Node[T]) {
	for ; n != nil; n = n.right {
		ri.stack = append(ri.stack, n)
	}
}

// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: BUSL-1.1

package avl

// rebalance restores the AVL balance at n after a single insertion below it.
// n must be writable and have an up to date height.
func (t *Txn[T]) rebalance(n *Node[T]) *Node[T] {
	bf := n.BalanceFactor()
	switch {
	case bf > 1:
		// left-right case
		if n.left.BalanceFactor() < 0 {
			n.left = t.leftRotate(n.left)
		}
		return t.rightRotate(n)
	case bf < -1:
		// right-left case
		if n.right.BalanceFactor() > 0 {
			n.right = t.rightRotate(n.right)
		}
		return t.leftRotate(n)
	}
	return n
}

// leftRotate turns
//
//	  n              p
//	 / \            / \
//	L   p    =>    n   RR
//	   / \        / \
//	  RL  RR     L   RL
//
// and returns p.
func (t *Txn[T]) leftRotate(n *Node[T]) *Node[T] {
	if n == nil || n.right == nil {
		panic("avl: left rotation without a right child")
	}
	n = t.writeNode(n)
	p := t.writeNode(n.right)

	n.right = p.left
	n.height = max(n.left.Height(), n.right.Height()) + 1
	p.left = n
	p.height = max(n.height, p.right.Height()) + 1
	return p
}

// rightRotate is the mirror image of leftRotate.
func (t *Txn[T]) rightRotate(n *Node[T]) *Node[T] {
	if n == nil || n.left == nil {
		panic("avl: right rotation without a left child")
	}
	n = t.writeNode(n)
	p := t.writeNode(n.left)

	n.left = p.right
	n.height = max(n.left.Height(), n.right.Height()) + 1
	p.right = n
	p.height = max(n.height, p.left.Height()) + 1
	return p
}

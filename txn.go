// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: BUSL-1.1

package avl

import (
	"github.com/hashicorp/golang-lru/v2/simplelru"
)

// Txn is a transaction on the tree. It is used to perform a batch of
// insertions, allocating each node on a modified path only once. A Txn is not
// safe for concurrent use and is finished by Commit.
type Txn[T any] struct {
	root    *Node[T]
	size    int
	compare CompareFn[T]
	conf    config

	// writable is a cache of nodes allocated by this transaction. They are
	// not reachable from any committed tree yet, so they can be updated in
	// place.
	writable *simplelru.LRU[*Node[T], struct{}]

	// allocated counts the nodes created by this transaction.
	allocated int

	committed bool
}

// Txn starts a new transaction that can be used to insert into the tree. The
// tree is consumed; the transaction's Commit returns its successor.
func (t *Tree[T]) Txn() *Txn[T] {
	t.consume()
	return &Txn[T]{
		root:    t.root,
		size:    t.size,
		compare: t.compare,
		conf:    t.conf,
	}
}

func (t *Txn[T]) checkOpen() {
	if t.committed {
		panic(ErrTxnCommitted)
	}
}

// writeNode returns a node that is safe to modify. Nodes created by this
// transaction are returned as is, anything else is cloned first.
func (t *Txn[T]) writeNode(n *Node[T]) *Node[T] {
	if t.writable != nil {
		if _, ok := t.writable.Get(n); ok {
			return n
		}
	}
	nc := n.clone()
	t.track(nc)
	return nc
}

func (t *Txn[T]) allocNode(key T) *Node[T] {
	n := &Node[T]{key: key}
	t.track(n)
	return n
}

func (t *Txn[T]) track(n *Node[T]) {
	if t.writable == nil {
		lru, err := simplelru.NewLRU[*Node[T], struct{}](t.conf.writableCache, nil)
		if err != nil {
			panic(err)
		}
		t.writable = lru
	}
	t.allocated++
	t.writable.Add(n, struct{}{})
}

// Insert adds key, returning true if it was not already present. An existing
// equal key is kept and nothing is allocated.
func (t *Txn[T]) Insert(key T) bool {
	t.checkOpen()
	newRoot, inserted := t.recursiveInsert(t.root, key)
	if !inserted {
		return false
	}
	t.root = newRoot
	t.size++
	return true
}

func (t *Txn[T]) recursiveInsert(n *Node[T], key T) (*Node[T], bool) {
	if n == nil {
		return t.allocNode(key), true
	}

	c := t.compare(key, n.key)
	switch {
	case c < 0:
		left, inserted := t.recursiveInsert(n.left, key)
		if !inserted {
			return n, false
		}
		n = t.writeNode(n)
		n.left = left
	case c > 0:
		right, inserted := t.recursiveInsert(n.right, key)
		if !inserted {
			return n, false
		}
		n = t.writeNode(n)
		n.right = right
	default:
		return n, false
	}

	n.resetHeight()
	return t.rebalance(n), true
}

// Find reports whether key is present, including keys inserted by this
// transaction.
func (t *Txn[T]) Find(key T) bool {
	t.checkOpen()
	n := t.root
	for n != nil {
		c := t.compare(key, n.key)
		switch {
		case c < 0:
			n = n.left
		case c > 0:
			n = n.right
		default:
			return true
		}
	}
	return false
}

// Len returns the number of keys including uncommitted insertions.
func (t *Txn[T]) Len() int {
	t.checkOpen()
	return t.size
}

// Root returns the current root of the transaction.
func (t *Txn[T]) Root() *Node[T] {
	t.checkOpen()
	return t.root
}

// Commit is used to finalize the transaction and return a new tree. The
// transaction cannot be used afterwards.
func (t *Txn[T]) Commit() *Tree[T] {
	t.checkOpen()
	t.committed = true
	// Nodes handed to the tree are frozen from here on.
	t.writable = nil
	return &Tree[T]{
		root:    t.root,
		size:    t.size,
		compare: t.compare,
		conf:    t.conf,
	}
}

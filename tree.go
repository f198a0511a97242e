// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: BUSL-1.1

package avl

import (
	"cmp"
	"errors"
	"fmt"
	"sync/atomic"

	"github.com/xlab/treeprint"
	"golang.org/x/exp/constraints"
)

var (
	// ErrTreeConsumed is the panic value raised when a tree is used after
	// Insert or Txn handed its contents to a new owner.
	ErrTreeConsumed = errors.New("avl: tree used after it was consumed")

	// ErrTxnCommitted is the panic value raised when a transaction is used
	// after Commit.
	ErrTxnCommitted = errors.New("avl: transaction used after commit")
)

// CompareFn orders two keys. It returns a negative number when a < b, zero
// when they are equal and a positive number when a > b.
type CompareFn[T any] func(a, b T) int

// WalkFn is used when walking the tree. Takes a key, returning if iteration
// should be terminated.
type WalkFn[T any] func(k T) bool

// Tree is an AVL tree of keys. A tree value has a single owner: Insert and
// Txn consume the receiver, and any further call on it panics with
// ErrTreeConsumed. Read operations on a live tree may run concurrently.
type Tree[T any] struct {
	root    *Node[T]
	size    int
	compare CompareFn[T]
	conf    config

	consumed atomic.Bool
}

// NewTree returns an empty tree ordered by the natural ordering of T.
func NewTree[T constraints.Ordered](opts ...Option) *Tree[T] {
	return NewTreeFunc[T](cmp.Compare[T], opts...)
}

// NewTreeFunc returns an empty tree ordered by compare. Keys that compare
// equal are duplicates, and the first one inserted is kept.
func NewTreeFunc[T any](compare func(a, b T) int, opts ...Option) *Tree[T] {
	if compare == nil {
		panic("avl: nil compare function")
	}
	return &Tree[T]{
		compare: compare,
		conf:    newConfig(opts),
	}
}

func (t *Tree[T]) checkLive() {
	if t.consumed.Load() {
		panic(ErrTreeConsumed)
	}
}

func (t *Tree[T]) consume() {
	if !t.consumed.CompareAndSwap(false, true) {
		panic(ErrTreeConsumed)
	}
}

// Len is used to return the number of keys in the tree
func (t *Tree[T]) Len() int {
	t.checkLive()
	return t.size
}

// Insert adds key to the tree. The receiver is consumed; callers must
// continue with the returned tree. The boolean reports whether the key was
// new. Inserting a key that is already present leaves the stored key and the
// shape of the tree untouched.
func (t *Tree[T]) Insert(key T) (*Tree[T], bool) {
	txn := t.Txn()
	ok := txn.Insert(key)
	return txn.Commit(), ok
}

// Find reports whether key is stored in the tree.
func (t *Tree[T]) Find(key T) bool {
	_, ok := t.Get(key)
	return ok
}

// Get returns the stored key that compares equal to key.
func (t *Tree[T]) Get(key T) (T, bool) {
	t.checkLive()
	var zero T
	n := t.root
	for n != nil {
		c := t.compare(key, n.key)
		switch {
		case c < 0:
			n = n.left
		case c > 0:
			n = n.right
		default:
			return n.key, true
		}
	}
	return zero, false
}

// Root returns the root node of the tree which can be used for richer
// query operations. It is nil for an empty tree.
func (t *Tree[T]) Root() *Node[T] {
	t.checkLive()
	return t.root
}

// Height returns the cached height of the root, -1 for an empty tree.
func (t *Tree[T]) Height() int {
	t.checkLive()
	return t.root.Height()
}

// Depth recomputes the height of the tree by visiting every node. It exists
// to audit Height and must not be used on hot paths.
func (t *Tree[T]) Depth() int {
	t.checkLive()
	return t.root.Depth()
}

// Minimum returns the smallest key in the tree.
func (t *Tree[T]) Minimum() (T, bool) {
	t.checkLive()
	var zero T
	n := minimum(t.root)
	if n == nil {
		return zero, false
	}
	return n.key, true
}

// Maximum returns the largest key in the tree.
func (t *Tree[T]) Maximum() (T, bool) {
	t.checkLive()
	var zero T
	n := maximum(t.root)
	if n == nil {
		return zero, false
	}
	return n.key, true
}

// Traverse calls visit once per key in ascending order. It always visits the
// whole tree; use Walk or an Iterator to stop early.
func (t *Tree[T]) Traverse(visit func(T)) {
	t.checkLive()
	inOrder(t.root, visit)
}

func inOrder[T any](n *Node[T], visit func(T)) {
	if n == nil {
		return
	}
	inOrder(n.left, visit)
	visit(n.key)
	inOrder(n.right, visit)
}

// Walk is used to walk the tree in ascending order until fn returns true.
func (t *Tree[T]) Walk(fn WalkFn[T]) {
	t.checkLive()
	it := t.root.Iterator()
	for {
		k, ok := it.Next()
		if !ok || fn(k) {
			return
		}
	}
}

// Iterator returns an in-order iterator over the tree.
func (t *Tree[T]) Iterator() *Iterator[T] {
	t.checkLive()
	return t.root.Iterator()
}

// ReverseIterator returns an iterator visiting keys from largest to smallest.
func (t *Tree[T]) ReverseIterator() *ReverseIterator[T] {
	t.checkLive()
	return t.root.ReverseIterator()
}

// String renders the shape of the tree, one node per line, with the cached
// height next to every key.
func (t *Tree[T]) String() string {
	t.checkLive()
	if t.root == nil {
		return "<empty>\n"
	}
	tp := treeprint.NewWithRoot(nodeLabel(t.root))
	printChildren(tp, t.root)
	return tp.String()
}

func nodeLabel[T any](n *Node[T]) string {
	return fmt.Sprintf("%v (h=%d)", n.key, n.height)
}

func printChildren[T any](tp treeprint.Tree, n *Node[T]) {
	if n.left == nil && n.right == nil {
		return
	}
	for _, ch := range []*Node[T]{n.left, n.right} {
		switch {
		case ch == nil:
			tp.AddNode("∅")
		case ch.left == nil && ch.right == nil:
			tp.AddNode(nodeLabel(ch))
		default:
			printChildren(tp.AddBranch(nodeLabel(ch)), ch)
		}
	}
}

// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: BUSL-1.1

package avl

import (
	"errors"
	"fmt"
)

type ViolationKind int

const (
	// OrderViolation means a child key is on the wrong side of its parent.
	OrderViolation ViolationKind = iota
	// HeightViolation means a cached height disagrees with the real depth.
	HeightViolation
	// BalanceViolation means the subtree heights differ by more than one.
	BalanceViolation
)

func (k ViolationKind) String() string {
	switch k {
	case OrderViolation:
		return "order"
	case HeightViolation:
		return "height"
	case BalanceViolation:
		return "balance"
	}
	return fmt.Sprintf("ViolationKind(%d)", int(k))
}

// ViolationError describes a single broken invariant at the node holding Key.
type ViolationError[T any] struct {
	Kind ViolationKind
	Key  T
	Msg  string
}

func (e *ViolationError[T]) Error() string {
	return fmt.Sprintf("avl: %s violation at %v: %s", e.Kind, e.Key, e.Msg)
}

// Validate checks the structure of the whole tree and returns every broken
// invariant joined into one error, in the order they were found, or nil.
//
// At each node it checks that the immediate left child is not greater and the
// immediate right child is not smaller than the node, that the cached height
// matches the recomputed depth and that the node is balanced. Ordering is only
// checked between a parent and its children, not against every ancestor.
func (t *Tree[T]) Validate() error {
	t.checkLive()
	var errs []error
	t.validateNode(t.root, &errs)
	return errors.Join(errs...)
}

// IsValid reports whether Validate finds nothing wrong. The first violation
// is logged.
func (t *Tree[T]) IsValid() bool {
	err := t.Validate()
	if err == nil {
		return true
	}
	var v *ViolationError[T]
	if errors.As(err, &v) {
		t.conf.logger.Warn("avl tree invariant violated",
			"kind", v.Kind.String(),
			"key", v.Key,
			"err", v.Msg,
		)
	}
	return false
}

// validateNode returns the depth of n computed from scratch.
func (t *Tree[T]) validateNode(n *Node[T], errs *[]error) int {
	if n == nil {
		return -1
	}

	if n.left != nil && t.compare(n.left.key, n.key) > 0 {
		*errs = append(*errs, &ViolationError[T]{
			Kind: OrderViolation,
			Key:  n.key,
			Msg:  fmt.Sprintf("left child %v is greater", n.left.key),
		})
	}
	if n.right != nil && t.compare(n.right.key, n.key) < 0 {
		*errs = append(*errs, &ViolationError[T]{
			Kind: OrderViolation,
			Key:  n.key,
			Msg:  fmt.Sprintf("right child %v is smaller", n.right.key),
		})
	}

	ld := t.validateNode(n.left, errs)
	rd := t.validateNode(n.right, errs)
	depth := max(ld, rd) + 1

	if depth != n.height {
		*errs = append(*errs, &ViolationError[T]{
			Kind: HeightViolation,
			Key:  n.key,
			Msg:  fmt.Sprintf("cached height %d, actual %d", n.height, depth),
		})
	}
	if ld-rd > 1 || rd-ld > 1 {
		*errs = append(*errs, &ViolationError[T]{
			Kind: BalanceViolation,
			Key:  n.key,
			Msg:  fmt.Sprintf("left depth %d, right depth %d", ld, rd),
		})
	}
	return depth
}

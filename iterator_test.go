// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: BUSL-1.1

package avl

import (
	"slices"
	"sort"
	"testing"
	"testing/quick"

	"github.com/stretchr/testify/require"
)

func TestIterateFuzz(t *testing.T) {
	tree := NewTree[string]()
	var set []string

	// This specifies a property where each call adds a new random key to the
	// tree.
	//
	// It also maintains a plain sorted list of the same set of keys and asserts
	// that iterating the tree produces the same list with duplicates removed.

	treeAddAndScan := func(newKey string) []string {
		tree, _ = tree.Insert(newKey)

		it := tree.Iterator()
		var result []string
		for {
			key, ok := it.Next()
			if !ok {
				break
			}
			result = append(result, key)
		}
		return result
	}

	sliceAddSortAndDedup := func(newKey string) []string {
		set = append(set, newKey)
		sort.Strings(set)
		set = slices.Compact(set)
		return slices.Clone(set)
	}

	if err := quick.CheckEqual(treeAddAndScan, sliceAddSortAndDedup, nil); err != nil {
		t.Error(err)
	}
}

func TestIterator_MatchesTraverse(t *testing.T) {
	t.Parallel()

	tree := buildTree(50, 20, 80, 10, 30, 70, 90, 25, 35, 85)
	want := collect(tree)

	it := tree.Iterator()
	var got []int
	for k, ok := it.Next(); ok; k, ok = it.Next() {
		got = append(got, k)
	}
	require.Equal(t, want, got)

	// exhausted iterators stay exhausted
	_, ok := it.Next()
	require.False(t, ok)
}

func TestIterator_Reset(t *testing.T) {
	t.Parallel()

	tree := buildTree(3, 1, 2, 5, 4)
	it := tree.Iterator()

	k, ok := it.Next()
	require.True(t, ok)
	require.Equal(t, 1, k)
	k, _ = it.Next()
	require.Equal(t, 2, k)

	it.Reset()
	var got []int
	for k, ok := it.Next(); ok; k, ok = it.Next() {
		got = append(got, k)
	}
	require.Equal(t, []int{1, 2, 3, 4, 5}, got)
}

func TestIterator_Empty(t *testing.T) {
	t.Parallel()

	tree := NewTree[int]()
	_, ok := tree.Iterator().Next()
	require.False(t, ok)
	_, ok = tree.ReverseIterator().Previous()
	require.False(t, ok)
}

func TestIterator_Subtree(t *testing.T) {
	t.Parallel()

	tree := buildTree(1, 2, 3, 4, 5, 6, 7)
	it := tree.Root().Left().Iterator()
	var got []int
	for k, ok := it.Next(); ok; k, ok = it.Next() {
		got = append(got, k)
	}
	require.Equal(t, []int{1, 2, 3}, got)
}

func TestReverseIterator(t *testing.T) {
	t.Parallel()

	keys := []int{42, 7, 19, 3, 88, 61, 5, 23}
	tree := buildTree(keys...)

	want := slices.Clone(keys)
	slices.Sort(want)
	slices.Reverse(want)

	ri := tree.ReverseIterator()
	var got []int
	for k, ok := ri.Previous(); ok; k, ok = ri.Previous() {
		got = append(got, k)
	}
	require.Equal(t, want, got)

	ri.Reset()
	k, ok := ri.Previous()
	require.True(t, ok)
	require.Equal(t, 88, k)
}

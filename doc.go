// Package kit provides generic singly linked list and binary tree nodes.
//
// # Overview
//
// Both node types hold an ordered value and own their children:
//
//	list := kit.NewListNode(1, kit.NewListNode(2, kit.NewListNode(3, nil)))
//	fmt.Println(list) // 1 --> 2 --> 3
//
//	tree := kit.NewTreeNode(2, kit.NewTreeNode(1, nil, nil), kit.NewTreeNode(3, nil, nil))
//	fmt.Println(tree) // 1 <-- 2 --> 3
//
// # Equality and Ordering
//
// Equal compares whole structures: two lists are equal when they hold the
// same values in the same order, two trees when they have the same shape
// and the same value at every position. Compare and Less look only at the
// node's own value, so nodes sort by their heads:
//
//	slices.SortFunc(heads, (*kit.ListNode[int]).Compare)
//
// # Copies
//
// DeepCopy returns a structure that shares no nodes with the original.
// Mutating either one never affects the other.
//
// # Ownership
//
// A node is expected to be reachable through exactly one path. Operations do
// not check this; a list with a cycle or a tree that shares a subtree makes
// them loop forever or visit nodes twice. Call Validate on data of unknown
// origin:
//
//	if err := head.Validate(); errors.Is(err, kit.ErrCycle) {
//	    // reject
//	}
//
// Every operation is iterative, so very long lists and degenerate trees do
// not exhaust the stack.
//
// # Rendering
//
// String gives a single-line rendering. TreeNode.Draw renders the tree
// top-down over several lines with box-drawing characters.
//
// # Related Packages
//
// The inject package is a dependency injection container with lifetimes,
// named services and manual construction. The packages under pkg/ hold small
// helpers for optionals, forced casts, collections, strings, numbers, debug
// printing and segue routing.
package kit

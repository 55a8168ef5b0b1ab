package kit

import (
	"errors"

	"golang.org/x/exp/constraints"
)

// Value is the set of types a node can hold: comparable with ==,
// ordered with < and printable through fmt.
type Value interface {
	constraints.Ordered
}

var (
	// ErrCycle is returned by ListNode.Validate when a chain loops back on itself
	ErrCycle = errors.New("cycle detected")
	// ErrSharedNode is returned by TreeNode.Validate when a node is reachable more than once
	ErrSharedNode = errors.New("node is not exclusively owned")
)

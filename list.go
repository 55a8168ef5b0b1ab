package kit

import (
	"cmp"
	"fmt"
	"strings"
)

const listArrow = " --> "

// ListNode is a forward-linked list node. A node owns the chain reachable
// through Next; chains must not contain cycles.
type ListNode[T Value] struct {
	Value T
	Next  *ListNode[T]
}

// NewListNode creates a node owning next (which may be nil)
func NewListNode[T Value](value T, next *ListNode[T]) *ListNode[T] {
	return &ListNode[T]{Value: value, Next: next}
}

// DeepCopy returns an independent chain holding the same values
func (n *ListNode[T]) DeepCopy() *ListNode[T] {
	if n == nil {
		return nil
	}

	head := &ListNode[T]{Value: n.Value}
	tail := head
	for src := n.Next; src != nil; src = src.Next {
		tail.Next = &ListNode[T]{Value: src.Value}
		tail = tail.Next
	}

	return head
}

// Equal reports whether both chains hold equal values in the same order
// and have the same length.
func (n *ListNode[T]) Equal(other *ListNode[T]) bool {
	a, b := n, other
	for a != nil && b != nil {
		if a == b {
			return true
		}
		if a.Value != b.Value {
			return false
		}
		a, b = a.Next, b.Next
	}

	return a == nil && b == nil
}

// Compare orders nodes by value only; the rest of the chain is ignored.
func (n *ListNode[T]) Compare(other *ListNode[T]) int {
	return cmp.Compare(n.Value, other.Value)
}

// Less reports whether n's value sorts before other's
func (n *ListNode[T]) Less(other *ListNode[T]) bool {
	return n.Compare(other) < 0
}

// Len returns the number of nodes in the chain starting at n
func (n *ListNode[T]) Len() int {
	count := 0
	for cur := n; cur != nil; cur = cur.Next {
		count++
	}
	return count
}

// Values returns the chain's values in order
func (n *ListNode[T]) Values() []T {
	values := make([]T, 0, n.Len())
	for cur := n; cur != nil; cur = cur.Next {
		values = append(values, cur.Value)
	}
	return values
}

// String renders the chain as "v1 --> v2 --> ... --> vn"
func (n *ListNode[T]) String() string {
	var sb strings.Builder
	for cur := n; cur != nil; cur = cur.Next {
		if cur != n {
			sb.WriteString(listArrow)
		}
		fmt.Fprint(&sb, cur.Value)
	}
	return sb.String()
}

// Validate reports ErrCycle if the chain loops back on itself.
// Other operations do not check and never terminate on a cyclic chain.
func (n *ListNode[T]) Validate() error {
	slow, fast := n, n
	steps := 0
	for fast != nil && fast.Next != nil {
		slow = slow.Next
		fast = fast.Next.Next
		steps++
		if slow == fast {
			return fmt.Errorf("list node %v: %w after %d steps", n.Value, ErrCycle, steps)
		}
	}
	return nil
}

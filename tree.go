package kit

import (
	"cmp"
	"fmt"
	"strings"

	"github.com/m1gwings/treedrawer/tree"
)

const (
	leftArrow  = " <-- "
	rightArrow = " --> "

	// placeholder drawn for an absent child when its sibling is present
	absentChild = "nil"
)

// TreeNode is a binary tree node owning both children. It is not a search
// tree: children may hold any values relative to their parent.
type TreeNode[T Value] struct {
	Value T
	Left  *TreeNode[T]
	Right *TreeNode[T]
}

// NewTreeNode creates a node owning left and right (either may be nil)
func NewTreeNode[T Value](value T, left, right *TreeNode[T]) *TreeNode[T] {
	return &TreeNode[T]{Value: value, Left: left, Right: right}
}

type treePair[T Value] struct {
	a, b *TreeNode[T]
}

// DeepCopy returns an independent tree holding the same values
func (n *TreeNode[T]) DeepCopy() *TreeNode[T] {
	if n == nil {
		return nil
	}

	root := &TreeNode[T]{Value: n.Value}

	// a is the source node, b its copy
	stack := []treePair[T]{{a: n, b: root}}
	for len(stack) > 0 {
		p := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if p.a.Left != nil {
			p.b.Left = &TreeNode[T]{Value: p.a.Left.Value}
			stack = append(stack, treePair[T]{a: p.a.Left, b: p.b.Left})
		}
		if p.a.Right != nil {
			p.b.Right = &TreeNode[T]{Value: p.a.Right.Value}
			stack = append(stack, treePair[T]{a: p.a.Right, b: p.b.Right})
		}
	}

	return root
}

// Equal reports whether both trees have the same shape and values.
// It stops at the first mismatch.
func (n *TreeNode[T]) Equal(other *TreeNode[T]) bool {
	stack := []treePair[T]{{a: n, b: other}}
	for len(stack) > 0 {
		p := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if p.a == p.b {
			continue
		}
		if p.a == nil || p.b == nil {
			return false
		}
		if p.a.Value != p.b.Value {
			return false
		}

		stack = append(stack,
			treePair[T]{a: p.a.Right, b: p.b.Right},
			treePair[T]{a: p.a.Left, b: p.b.Left},
		)
	}

	return true
}

// Compare orders nodes by value only; children are ignored.
func (n *TreeNode[T]) Compare(other *TreeNode[T]) int {
	return cmp.Compare(n.Value, other.Value)
}

// Less reports whether n's value sorts before other's
func (n *TreeNode[T]) Less(other *TreeNode[T]) bool {
	return n.Compare(other) < 0
}

// Size returns the number of nodes in the tree rooted at n
func (n *TreeNode[T]) Size() int {
	if n == nil {
		return 0
	}

	count := 0
	stack := []*TreeNode[T]{n}
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		count++

		if cur.Left != nil {
			stack = append(stack, cur.Left)
		}
		if cur.Right != nil {
			stack = append(stack, cur.Right)
		}
	}
	return count
}

// String renders the tree in order as "<left> <-- value --> <right>",
// leaving out the arrow and subtree for an absent child.
func (n *TreeNode[T]) String() string {
	var sb strings.Builder

	// In-order walk: each node contributes its left arrow, its value and its
	// right arrow once its left subtree has been written.
	var stack []*TreeNode[T]
	cur := n
	for cur != nil || len(stack) > 0 {
		for cur != nil {
			stack = append(stack, cur)
			cur = cur.Left
		}

		cur = stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if cur.Left != nil {
			sb.WriteString(leftArrow)
		}
		fmt.Fprint(&sb, cur.Value)
		if cur.Right != nil {
			sb.WriteString(rightArrow)
		}

		cur = cur.Right
	}

	return sb.String()
}

// Draw renders the tree top-down with box-drawing characters.
// An absent child is drawn as "nil" when its sibling is present.
func (n *TreeNode[T]) Draw() string {
	if n == nil {
		return ""
	}

	root := tree.NewTree(tree.NodeString(fmt.Sprint(n.Value)))

	type drawFrame struct {
		src *TreeNode[T]
		dst *tree.Tree
	}

	stack := []drawFrame{{src: n, dst: root}}
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if f.src.Left == nil && f.src.Right == nil {
			continue
		}

		for _, child := range []*TreeNode[T]{f.src.Left, f.src.Right} {
			if child == nil {
				f.dst.AddChild(tree.NodeString(absentChild))
				continue
			}
			stack = append(stack, drawFrame{
				src: child,
				dst: f.dst.AddChild(tree.NodeString(fmt.Sprint(child.Value))),
			})
		}
	}

	return fmt.Sprint(root)
}

// Validate reports ErrSharedNode if any node is reachable more than once,
// which covers cycles as well as subtrees shared between parents.
// Other operations do not check and may not terminate on a cyclic tree.
func (n *TreeNode[T]) Validate() error {
	if n == nil {
		return nil
	}

	seen := make(map[*TreeNode[T]]bool)
	stack := []*TreeNode[T]{n}
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if seen[cur] {
			return fmt.Errorf("tree node %v: %w", cur.Value, ErrSharedNode)
		}
		seen[cur] = true

		if cur.Left != nil {
			stack = append(stack, cur.Left)
		}
		if cur.Right != nil {
			stack = append(stack, cur.Right)
		}
	}
	return nil
}

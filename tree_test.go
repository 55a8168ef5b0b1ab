package kit

import (
	"slices"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func leaf[T Value](v T) *TreeNode[T] {
	return NewTreeNode[T](v, nil, nil)
}

func sampleTree() *TreeNode[int] {
	//       4
	//     2   6
	//    1 3   7
	return NewTreeNode(4,
		NewTreeNode(2, leaf(1), leaf(3)),
		NewTreeNode(6, nil, leaf(7)),
	)
}

func TestTreeNode_String(t *testing.T) {
	tests := []struct {
		name string
		tree *TreeNode[int]
		want string
	}{
		{"leaf", leaf(5), "5"},
		{"both children", NewTreeNode(2, leaf(1), leaf(3)), "1 <-- 2 --> 3"},
		{"left only", NewTreeNode(2, leaf(1), nil), "1 <-- 2"},
		{"right only", NewTreeNode(2, nil, leaf(3)), "2 --> 3"},
		{"nested", sampleTree(), "1 <-- 2 --> 3 <-- 4 --> 6 --> 7"},
		{"left spine", NewTreeNode(3, NewTreeNode(2, leaf(1), nil), nil), "1 <-- 2 <-- 3"},
		{"nil", nil, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.tree.String())
		})
	}
}

func TestTreeNode_Equal(t *testing.T) {
	tests := []struct {
		name string
		a, b *TreeNode[int]
		want bool
	}{
		{"same shape and values", sampleTree(), sampleTree(), true},
		{"leaf equal", leaf(1), leaf(1), true},
		{"root differs", leaf(1), leaf(2), false},
		{"missing left", NewTreeNode(2, leaf(1), nil), NewTreeNode(2, nil, nil), false},
		{"children swapped", NewTreeNode(2, leaf(1), nil), NewTreeNode(2, nil, leaf(1)), false},
		{"deep value differs", sampleTree(), NewTreeNode(4,
			NewTreeNode(2, leaf(1), leaf(3)),
			NewTreeNode(6, nil, leaf(8)),
		), false},
		{"both nil", nil, nil, true},
		{"nil vs leaf", nil, leaf(1), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.a.Equal(tt.b))
			assert.Equal(t, tt.want, tt.b.Equal(tt.a), "equality must be symmetric")
		})
	}

	t.Run("independent instances", func(t *testing.T) {
		a, b := sampleTree(), sampleTree()
		require.True(t, a.Equal(b))
		assert.NotSame(t, a, b)

		cp := a.DeepCopy()
		cp.Left.Value = 99
		assert.True(t, a.Equal(b), "copying one tree must not affect the other")
	})
}

func TestTreeNode_DeepCopy(t *testing.T) {
	orig := sampleTree()
	cp := orig.DeepCopy()

	require.True(t, cp.Equal(orig))
	assert.NotSame(t, orig, cp)
	assert.NotSame(t, orig.Left, cp.Left)
	assert.NotSame(t, orig.Right.Right, cp.Right.Right)

	cp.Right.Right.Value = 70
	cp.Left.Left = nil

	assert.Equal(t, "1 <-- 2 --> 3 <-- 4 --> 6 --> 7", orig.String())
	assert.False(t, cp.Equal(orig))

	var empty *TreeNode[int]
	assert.Nil(t, empty.DeepCopy())
}

func TestTreeNode_Compare(t *testing.T) {
	x := NewTreeNode(5, sampleTree(), nil)
	y := NewTreeNode(5, leaf(-1), leaf(100))

	assert.Equal(t, 0, x.Compare(y), "children must not affect ordering")
	assert.False(t, x.Less(y))
	assert.False(t, y.Less(x))

	assert.Equal(t, -1, leaf(1).Compare(leaf(2)))
	assert.Equal(t, 1, leaf("b").Compare(leaf("a")))

	nodes := []*TreeNode[int]{leaf(3), sampleTree(), leaf(1)}
	slices.SortFunc(nodes, (*TreeNode[int]).Compare)
	assert.Equal(t, []int{1, 3, 4}, []int{nodes[0].Value, nodes[1].Value, nodes[2].Value})
}

func TestTreeNode_Size(t *testing.T) {
	assert.Equal(t, 6, sampleTree().Size())
	assert.Equal(t, 1, leaf(0).Size())

	var empty *TreeNode[int]
	assert.Equal(t, 0, empty.Size())
}

func TestTreeNode_Validate(t *testing.T) {
	assert.NoError(t, sampleTree().Validate())

	shared := leaf(1)
	dag := NewTreeNode(0, shared, shared)
	assert.ErrorIs(t, dag.Validate(), ErrSharedNode)

	cyclic := NewTreeNode(0, leaf(1), nil)
	cyclic.Left.Right = cyclic
	assert.ErrorIs(t, cyclic.Validate(), ErrSharedNode)
}

func TestTreeNode_Draw(t *testing.T) {
	out := NewTreeNode(2, leaf(1), leaf(3)).Draw()
	for _, want := range []string{"1", "2", "3"} {
		assert.Contains(t, out, want)
	}
	assert.Greater(t, strings.Count(out, "\n"), 1)

	oneSided := NewTreeNode(2, nil, leaf(3)).Draw()
	assert.Contains(t, oneSided, absentChild)

	var empty *TreeNode[int]
	assert.Empty(t, empty.Draw())
}

func TestTreeNode_DeepDegenerate(t *testing.T) {
	const depth = 100_000

	var root *TreeNode[int]
	for i := 0; i < depth; i++ {
		root = NewTreeNode(i, root, nil)
	}

	cp := root.DeepCopy()
	assert.True(t, cp.Equal(root))
	assert.Equal(t, depth, cp.Size())
	assert.NoError(t, root.Validate())
	assert.True(t, strings.HasPrefix(root.String(), "0 <-- 1 <-- 2"))
}

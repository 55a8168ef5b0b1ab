package kit

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func chain(values ...int) *ListNode[int] {
	var head *ListNode[int]
	for i := len(values) - 1; i >= 0; i-- {
		head = NewListNode(values[i], head)
	}
	return head
}

func TestListNode_String(t *testing.T) {
	tests := []struct {
		name string
		list *ListNode[int]
		want string
	}{
		{"single", NewListNode(7, nil), "7"},
		{"three", NewListNode(1, NewListNode(2, NewListNode(3, nil))), "1 --> 2 --> 3"},
		{"nil", nil, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.list.String())
		})
	}

	t.Run("strings", func(t *testing.T) {
		l := NewListNode("a", NewListNode("b", nil))
		assert.Equal(t, "a --> b", l.String())
	})

	t.Run("floats", func(t *testing.T) {
		assert.Equal(t, "1.5", NewListNode(1.5, nil).String())
	})
}

func TestListNode_Equal(t *testing.T) {
	tests := []struct {
		name string
		a, b *ListNode[int]
		want bool
	}{
		{"identical values", chain(1, 2, 3), chain(1, 2, 3), true},
		{"different value", chain(1, 2, 3), chain(1, 9, 3), false},
		{"shorter prefix", chain(1, 2), chain(1, 2, 3), false},
		{"longer prefix", chain(1, 2, 3), chain(1, 2), false},
		{"single equal", chain(4), chain(4), true},
		{"both nil", nil, nil, true},
		{"nil vs chain", nil, chain(1), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.a.Equal(tt.b))
			assert.Equal(t, tt.want, tt.b.Equal(tt.a), "equality must be symmetric")
		})
	}

	t.Run("reflexive and transitive", func(t *testing.T) {
		a, b, c := chain(5, 6, 7), chain(5, 6, 7), chain(5, 6, 7)
		assert.True(t, a.Equal(a))
		require.True(t, a.Equal(b))
		require.True(t, b.Equal(c))
		assert.True(t, a.Equal(c))
	})
}

func TestListNode_DeepCopy(t *testing.T) {
	orig := chain(1, 2, 3)
	cp := orig.DeepCopy()

	require.True(t, cp.Equal(orig))
	assert.NotSame(t, orig, cp)
	assert.NotSame(t, orig.Next, cp.Next)
	assert.NotSame(t, orig.Next.Next, cp.Next.Next)

	cp.Next.Value = 42
	cp.Next.Next.Next = NewListNode(4, nil)

	assert.Equal(t, "1 --> 2 --> 3", orig.String())
	assert.Equal(t, "1 --> 42 --> 3 --> 4", cp.String())
	assert.False(t, cp.Equal(orig))

	var empty *ListNode[int]
	assert.Nil(t, empty.DeepCopy())
}

func TestListNode_Compare(t *testing.T) {
	a := NewListNode(1, chain(100, 200))
	b := NewListNode(2, nil)
	c := NewListNode(1, nil)

	assert.Equal(t, -1, a.Compare(b))
	assert.Equal(t, 1, b.Compare(a))
	assert.Equal(t, 0, a.Compare(c), "successors must not affect ordering")
	assert.True(t, a.Less(b))
	assert.False(t, a.Less(c))
	assert.False(t, c.Less(a))

	nodes := []*ListNode[int]{chain(3), chain(1, 9), chain(2)}
	slices.SortFunc(nodes, (*ListNode[int]).Compare)
	assert.Equal(t, []int{1, 2, 3}, []int{nodes[0].Value, nodes[1].Value, nodes[2].Value})
}

func TestListNode_LenAndValues(t *testing.T) {
	l := chain(4, 5, 6)
	assert.Equal(t, 3, l.Len())
	assert.Equal(t, []int{4, 5, 6}, l.Values())

	var empty *ListNode[int]
	assert.Equal(t, 0, empty.Len())
	assert.Empty(t, empty.Values())
}

func TestListNode_Validate(t *testing.T) {
	assert.NoError(t, chain(1, 2, 3).Validate())
	assert.NoError(t, chain(1).Validate())

	var empty *ListNode[int]
	assert.NoError(t, empty.Validate())

	self := NewListNode(1, nil)
	self.Next = self
	assert.ErrorIs(t, self.Validate(), ErrCycle)

	looped := chain(1, 2, 3, 4)
	looped.Next.Next.Next.Next = looped.Next
	assert.ErrorIs(t, looped.Validate(), ErrCycle)
}

func TestListNode_LongChain(t *testing.T) {
	const n = 100_000
	values := make([]int, n)
	for i := range values {
		values[i] = i
	}

	l := chain(values...)
	cp := l.DeepCopy()

	assert.True(t, cp.Equal(l))
	assert.Equal(t, n, cp.Len())
	assert.NoError(t, l.Validate())
	assert.NotEmpty(t, l.String())
}

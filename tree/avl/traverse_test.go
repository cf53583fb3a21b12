package avl

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestInOrder_Stop(t *testing.T) {
	tr := New(4, 2, 6, 1, 3, 5, 7)

	var got []int
	tr.InOrder(func(k int) bool {
		got = append(got, k)
		return k < 3
	})

	assert.Equal(t, []int{1, 2, 3}, got)
}

func TestIterators(t *testing.T) {
	tr := New(5, 36, 74, 23, 43, 36, 85, 10)

	var fwd []int
	for i := tr.InOrderIterator(); i.Next(); {
		fwd = append(fwd, i.Item())
	}
	assert.Equal(t, tr.Keys(), fwd)

	var rev []int
	for i := tr.InOrderReverseIterator(); i.Next(); {
		rev = append(rev, i.Item())
	}
	assert.Equal(t, []int{85, 74, 43, 36, 36, 23, 10, 5}, rev)

	var empty AVL[int]
	assert.False(t, empty.InOrderIterator().Next())
	assert.False(t, empty.InOrderReverseIterator().Next())
}

func TestInOrderCoroutine(t *testing.T) {
	defer goleak.VerifyNone(t)

	tr := BuildRandom(50, 1)

	co := tr.InOrderCoroutine(context.Background())
	defer co.Stop()

	var got []int
	for k := range co.Items() {
		got = append(got, k)
	}
	assert.Equal(t, tr.Keys(), got)
}

func TestInOrderCoroutine_Break(t *testing.T) {
	defer goleak.VerifyNone(t)

	tr := BuildRandom(50, 1)

	ctx, cancel := context.WithCancel(context.Background())
	co := tr.InOrderCoroutine(ctx)

	for k := range co.Items() {
		if k == 9 {
			break
		}
	}
	cancel()
	for range co.Items() {
	}
}

func TestView(t *testing.T) {
	var empty AVL[int]
	_, ok := empty.Root()
	assert.False(t, ok)

	tr := New(5, 3, 8, 4)

	root, ok := tr.Root()
	require.True(t, ok)
	assert.Equal(t, 5, root.Key())
	assert.Equal(t, 3, root.Height())
	assert.Equal(t, 1, root.Balance())

	l, ok := root.Left()
	require.True(t, ok)
	assert.Equal(t, 3, l.Key())
	assert.Equal(t, -1, l.Balance())

	_, ok = l.Left()
	assert.False(t, ok, "3 has no left child")

	lr, ok := l.Right()
	require.True(t, ok)
	assert.Equal(t, 4, lr.Key())
	assert.Equal(t, 1, lr.Height())

	r, ok := root.Right()
	require.True(t, ok)
	assert.Equal(t, 8, r.Key())
}

func TestWalk(t *testing.T) {
	tr := New(4, 2, 6, 1, 3, 5, 7)

	type visit struct{ key, depth, height int }
	var got []visit
	tr.Walk(func(v View[int], depth int) bool {
		got = append(got, visit{v.Key(), depth, v.Height()})
		return v.Key() != 6
	})

	assert.Equal(t, []visit{
		{4, 0, 3},
		{2, 1, 2},
		{1, 2, 1},
		{3, 2, 1},
		{6, 1, 2},
	}, got)
}

package iterator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.lepak.sg/avl/tree"
)

func TestInOrderReverse(t *testing.T) {
	tests := []struct {
		name   string
		create func() *tree.Node[int]
		post   func(t *testing.T, i *InOrderReverse[int])
	}{
		{
			name: "empty",
			create: func() *tree.Node[int] {
				return nil
			},
			post: func(t *testing.T, i *InOrderReverse[int]) {
				assert.False(t, i.Next(), "first")
			},
		},
		{
			name: "one",
			create: func() *tree.Node[int] {
				return tree.NodeOf(1)
			},
			post: func(t *testing.T, i *InOrderReverse[int]) {
				assert.True(t, i.Next(), "first")
				assert.Equal(t, 1, i.Item())
				assert.False(t, i.Next(), "second")
			},
		},
		{
			name:   "height=2",
			create: newCompleteTree_2Tall,
			post: func(t *testing.T, i *InOrderReverse[int]) {
				assert.Equal(t, []int{7, 6, 5, 4, 3, 2, 1}, drain(i))
				assert.False(t, i.Next(), "stays exhausted")
			},
		},
		{
			name:   "dogleg",
			create: newDogleg,
			post: func(t *testing.T, i *InOrderReverse[int]) {
				assert.Equal(t, []int{9, 8, 7, 6, 5, 1}, drain(i))
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.post(t, NewInOrderReverse(tt.create()))
		})
	}
}

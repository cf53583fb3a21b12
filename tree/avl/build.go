package avl

import (
	"math/rand"
)

// BuildRandom builds a tree with num keys.
// Keys are in the range [0, num) and are inserted in a random order.
// The seed for the random insert order is a parameter,
// which ensures repeatable results.
func BuildRandom(num int, seed int64) *AVL[int] {
	rd := rand.New(rand.NewSource(seed))

	keys := make([]int, num)
	for i := 0; i < num; i++ {
		keys[i] = i
	}

	rd.Shuffle(num, func(i, j int) {
		keys[i], keys[j] = keys[j], keys[i]
	})

	return New(keys...)
}

// BuildRandomDuplicates builds a tree with num keys drawn
// uniformly from [0, span), so keys repeat once num > span.
// The same seed always gives the same sequence of inserts.
func BuildRandomDuplicates(num, span int, seed int64) *AVL[int] {
	if span <= 0 {
		panic("span must be positive")
	}

	rd := rand.New(rand.NewSource(seed))

	t := &AVL[int]{}
	for i := 0; i < num; i++ {
		t.Insert(rd.Intn(span))
	}

	return t
}

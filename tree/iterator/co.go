package iterator

import (
	"context"

	"golang.org/x/exp/constraints"
)

// CoIterator is returned from CoIterate and abstracts
// communication with the iterating goroutine.
type CoIterator[T constraints.Ordered] struct {
	items  <-chan T
	cancel context.CancelFunc
}

// Items returns a channel on which the items from the iterator
// will be sent. It is closed when iteration finishes or stops.
func (c CoIterator[T]) Items() <-chan T {
	return c.items
}

// Stop stops the iteration. It is safe to call more than once,
// and from more than one goroutine.
// If the Items channel is closed, this doesn't need to be called.
func (c CoIterator[T]) Stop() {
	c.cancel()
}

// CoIterate starts coroutine-style iteration.
// The usage is as follows:
//
//	co := CoIterate[T](ctx, x.InOrderIterator())
//	defer co.Stop()
//	for k := range co.Items() {
//		... do stuff with k ...
//		if k meets some stopping condition {
//			break
//		}
//	}
//
// Note: CoIterate starts a goroutine, which exits when either
// Stop is called, ctx is done, or the iteration is finished.
// The goroutine reads the tree, so the tree must not be mutated
// until it has exited.
func CoIterate[T constraints.Ordered](ctx context.Context, iterator Iterator[T]) CoIterator[T] {
	out := make(chan T)
	ctx, cancel := context.WithCancel(ctx)
	co := CoIterator[T]{
		items:  out,
		cancel: cancel,
	}

	if iterator == nil {
		close(out)
		return co
	}

	go func(ctx context.Context, out chan<- T, i Iterator[T]) {
		defer close(out)
		for i.Next() {
			select {
			case out <- i.Item():
			case <-ctx.Done():
				return
			}
		}
	}(ctx, out, iterator)

	return co
}

package peekz

import "iter"

// FromSlice creates an Iterator that yields the elements of items in order.
// The slice is not copied; callers must not mutate it while iterating.
//
// Example:
//
//	tokens := peekz.FromSlice([]string{"let", "x", "=", "1"})
//	it := peekz.NewPeekable(tokens, peekz.PeekConfig{Backward: 1, Forward: 2})
func FromSlice[T any](items []T) Iterator[T] {
	index := 0
	return IteratorFunc[T](func() (T, bool) {
		if index >= len(items) {
			var zero T
			return zero, false
		}
		item := items[index]
		index++
		return item, true
	})
}

// FromChannel creates an Iterator that pulls items from a channel.
// Exhaustion is reported once the channel is closed and drained, which makes
// any channel-producing pipeline stage usable as a peekable source.
//
// Receiving blocks until an item is available or the channel closes; use a
// closed or buffered channel when non-blocking behavior is required.
//
// Example:
//
//	events := make(chan Event, 64)
//	go produce(events) // closes events when done
//
//	it := peekz.NewPeekable(peekz.FromChannel(events), peekz.PeekConfig{
//		Backward: 4,
//		Forward:  4,
//	})
func FromChannel[T any](ch <-chan T) Iterator[T] {
	return IteratorFunc[T](func() (T, bool) {
		item, ok := <-ch
		return item, ok
	})
}

// FromSeq creates an Iterator that pulls items from an iter.Seq sequence,
// bridging range-over-func producers into the pull world. The sequence's
// resources are released when it reports exhaustion.
func FromSeq[T any](seq iter.Seq[T]) Iterator[T] {
	next, stop := iter.Pull(seq)
	return IteratorFunc[T](func() (T, bool) {
		item, ok := next()
		if !ok {
			stop()
		}
		return item, ok
	})
}

// Values returns an iter.Seq that yields the remaining items of it, so any
// Iterator (including a Peekable) can be consumed with a range statement:
//
//	for v := range peekz.Values(it) {
//		process(v)
//	}
//
// The iterator is advanced as the sequence is consumed; breaking out of the
// range leaves it positioned after the last yielded item.
func Values[T any](it Iterator[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		for {
			item, ok := it.Next()
			if !ok {
				return
			}
			if !yield(item) {
				return
			}
		}
	}
}

// Collect drains it and returns all remaining items as a slice.
func Collect[T any](it Iterator[T]) []T {
	var items []T
	for {
		item, ok := it.Next()
		if !ok {
			return items
		}
		items = append(items, item)
	}
}

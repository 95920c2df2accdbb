// Package peekz provides bounded forward and backward peeking for pull-based
// iterators, adding lookahead and lookbehind to any sequence producer without
// dynamic allocation.
//
// The core abstraction is the Iterator interface, a single-pass producer that
// either yields the next item or reports exhaustion. Peekable wraps any
// Iterator and adds two fixed-capacity windows: a forward window holding items
// pulled ahead of the consumer's position, and a backward window retaining the
// most recently yielded items. Window capacities are fixed at construction and
// all storage is allocated once, so the worst-case memory footprint is known
// up front.
//
// Basic usage:
//
//	source := peekz.FromSlice([]int{10, 11, 12, 13, 14})
//
//	// Retain 2 items of history, look up to 8 items ahead.
//	it := peekz.NewPeekable(source, peekz.PeekConfig{
//		Backward: 2,
//		Forward:  8,
//	})
//
//	it.Next()       // 10, true
//	it.Next()       // 11, true
//	it.Peek()       // 12, true  - not consumed
//	it.PeekN(1)     // 13, true  - two steps ahead
//	it.Next()       // 12, true  - peeking never changes what Next yields
//	it.PeekBack()   // 12, true  - most recently yielded
//	it.PeekBackN(1) // 11, true  - one step further back
//
// Peekable itself satisfies Iterator, so adapters nest and compose with any
// code generic over a sequence of T. Sources can be built from slices,
// channels, iter.Seq sequences, or plain closures.
package peekz

// Iterator is the core interface for pull-based sequence producers.
// Next returns the next item in the sequence, or ok=false once the sequence
// is exhausted. Iterators are single-pass and forward-only: each item is
// observed exactly once and there is no rewind.
//
// Implementations are not required to keep reporting exhaustion on calls
// after the first ok=false; Peekable fuses its source and never touches it
// again once it has reported exhaustion.
type Iterator[T any] interface {
	// Next produces the next item, or reports exhaustion with ok=false.
	Next() (item T, ok bool)
}

// IteratorFunc adapts an ordinary function to the Iterator interface,
// letting closures act as sequence producers.
type IteratorFunc[T any] func() (T, bool)

// Next calls f.
func (f IteratorFunc[T]) Next() (T, bool) {
	return f()
}

// Package testing provides test utilities for peekz.
package testing

import (
	"testing"

	peekz "github.com/zoobzio/peekz"
)

// Sequence returns an iterator yielding the integers from..to inclusive.
// This is a shared utility for integration tests to avoid duplicating
// counting sources.
func Sequence(from, to int) peekz.Iterator[int] {
	n := from
	return peekz.IteratorFunc[int](func() (int, bool) {
		if n > to {
			return 0, false
		}
		v := n
		n++
		return v, true
	})
}

// CollectN pulls up to n items from the iterator and returns them.
// It fails the test if the iterator is exhausted before n items arrive.
func CollectN[T any](t *testing.T, it peekz.Iterator[T], n int) []T {
	t.Helper()

	items := make([]T, 0, n)
	for i := 0; i < n; i++ {
		item, ok := it.Next()
		if !ok {
			t.Fatalf("iterator exhausted after %d of %d items", i, n)
		}
		items = append(items, item)
	}
	return items
}

// AssertNext verifies that the iterator yields want as its next item.
func AssertNext[T comparable](t *testing.T, it peekz.Iterator[T], want T) {
	t.Helper()

	got, ok := it.Next()
	if !ok {
		t.Fatalf("iterator exhausted, want %v", want)
	}
	if got != want {
		t.Errorf("Next yielded %v, want %v", got, want)
	}
}

// AssertExhausted verifies that the iterator reports exhaustion, repeatedly.
func AssertExhausted[T any](t *testing.T, it peekz.Iterator[T]) {
	t.Helper()

	for i := 0; i < 2; i++ {
		if item, ok := it.Next(); ok {
			t.Errorf("expected exhaustion, got item %v", item)
			return
		}
	}
}

// AssertUnavailable verifies a peek outcome reported no value.
func AssertUnavailable[T any](t *testing.T, item T, ok bool) {
	t.Helper()

	if ok {
		t.Errorf("expected unavailable, got item %v", item)
	}
}

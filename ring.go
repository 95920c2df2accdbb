package peekz

// Ring is a fixed-capacity double-ended circular buffer. The backing array is
// allocated once at construction and never grows; every operation is O(1) and
// allocation-free. A zero-capacity Ring is legal and is permanently both
// empty and full.
//
// Ring is not safe for concurrent use.
type Ring[T any] struct {
	buf  []T
	head int // index of the front element
	size int // number of stored elements, 0 <= size <= len(buf)
}

// NewRing creates a Ring holding at most capacity elements.
// Negative capacities are treated as zero.
func NewRing[T any](capacity int) *Ring[T] {
	if capacity < 0 {
		capacity = 0
	}
	return &Ring[T]{buf: make([]T, capacity)}
}

// Len returns the number of stored elements.
func (r *Ring[T]) Len() int { return r.size }

// Cap returns the fixed capacity.
func (r *Ring[T]) Cap() int { return len(r.buf) }

// IsEmpty reports whether the ring holds no elements.
func (r *Ring[T]) IsEmpty() bool { return r.size == 0 }

// PushBack appends v at the back. It returns false without storing anything
// when the ring is full: the back never silently evicts.
func (r *Ring[T]) PushBack(v T) bool {
	if r.size == len(r.buf) {
		return false
	}
	r.buf[(r.head+r.size)%len(r.buf)] = v
	r.size++
	return true
}

// PushFrontEvict inserts v at the front, dropping the back element first when
// the ring is full. At zero capacity it stores nothing.
func (r *Ring[T]) PushFrontEvict(v T) {
	n := len(r.buf)
	if n == 0 {
		return
	}
	if r.size == n {
		// The freed back slot is exactly where the new front lands.
		r.size--
	}
	r.head = (r.head - 1 + n) % n
	r.buf[r.head] = v
	r.size++
}

// PopFront removes and returns the front element. ok=false when empty.
// The vacated slot is zeroed so held references can be collected.
func (r *Ring[T]) PopFront() (T, bool) {
	var zero T
	if r.size == 0 {
		return zero, false
	}
	v := r.buf[r.head]
	r.buf[r.head] = zero
	r.head = (r.head + 1) % len(r.buf)
	r.size--
	return v, true
}

// At returns the i-th element from the front without removing it, 0-indexed.
// ok=false when i is negative or beyond the stored elements.
func (r *Ring[T]) At(i int) (T, bool) {
	if i < 0 || i >= r.size {
		var zero T
		return zero, false
	}
	return r.buf[(r.head+i)%len(r.buf)], true
}

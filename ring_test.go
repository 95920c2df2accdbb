package peekz

import "testing"

func TestRingPushBackPopFront(t *testing.T) {
	r := NewRing[int](3)

	for _, v := range []int{1, 2, 3} {
		if !r.PushBack(v) {
			t.Fatalf("PushBack(%d) rejected below capacity", v)
		}
	}

	if r.Len() != 3 {
		t.Errorf("expected length 3, got %d", r.Len())
	}

	for _, want := range []int{1, 2, 3} {
		got, ok := r.PopFront()
		if !ok || got != want {
			t.Errorf("PopFront returned (%d, %v), want (%d, true)", got, ok, want)
		}
	}

	if _, ok := r.PopFront(); ok {
		t.Error("PopFront on empty ring reported ok")
	}
	if !r.IsEmpty() {
		t.Error("drained ring is not empty")
	}
}

func TestRingPushBackRejectsWhenFull(t *testing.T) {
	r := NewRing[int](2)
	r.PushBack(1)
	r.PushBack(2)

	if r.PushBack(3) {
		t.Error("PushBack succeeded on a full ring")
	}
	if r.Len() != 2 {
		t.Errorf("rejected push changed length to %d", r.Len())
	}
	if got, _ := r.At(0); got != 1 {
		t.Errorf("rejected push disturbed contents, front is %d", got)
	}
}

func TestRingPushFrontEvict(t *testing.T) {
	r := NewRing[int](2)

	r.PushFrontEvict(1)
	r.PushFrontEvict(2)
	// Full: pushing 3 must drop the back entry (1).
	r.PushFrontEvict(3)

	if r.Len() != 2 {
		t.Fatalf("expected length 2, got %d", r.Len())
	}
	if got, _ := r.At(0); got != 3 {
		t.Errorf("front is %d, want 3", got)
	}
	if got, _ := r.At(1); got != 2 {
		t.Errorf("second entry is %d, want 2", got)
	}
}

func TestRingAt(t *testing.T) {
	r := NewRing[string](4)
	r.PushBack("a")
	r.PushBack("b")
	r.PushBack("c")

	for i, want := range []string{"a", "b", "c"} {
		got, ok := r.At(i)
		if !ok || got != want {
			t.Errorf("At(%d) returned (%q, %v), want (%q, true)", i, got, ok, want)
		}
	}

	if _, ok := r.At(3); ok {
		t.Error("At beyond stored elements reported ok")
	}
	if _, ok := r.At(-1); ok {
		t.Error("At(-1) reported ok")
	}
}

func TestRingWraparound(t *testing.T) {
	r := NewRing[int](3)
	r.PushBack(1)
	r.PushBack(2)
	r.PushBack(3)
	r.PopFront()
	r.PopFront()
	r.PushBack(4)
	r.PushBack(5)

	for i, want := range []int{3, 4, 5} {
		got, ok := r.At(i)
		if !ok || got != want {
			t.Errorf("At(%d) after wraparound returned (%d, %v), want (%d, true)", i, got, ok, want)
		}
	}

	got, ok := r.PopFront()
	if !ok || got != 3 {
		t.Errorf("PopFront after wraparound returned (%d, %v), want (3, true)", got, ok)
	}
}

func TestRingMixedEnds(t *testing.T) {
	r := NewRing[int](3)
	r.PushBack(1)
	r.PushBack(2)
	r.PushFrontEvict(0)

	for i, want := range []int{0, 1, 2} {
		if got, _ := r.At(i); got != want {
			t.Errorf("At(%d) is %d, want %d", i, got, want)
		}
	}

	// Full: front insert evicts the back (2).
	r.PushFrontEvict(9)
	for i, want := range []int{9, 0, 1} {
		if got, _ := r.At(i); got != want {
			t.Errorf("after eviction At(%d) is %d, want %d", i, got, want)
		}
	}
}

func TestRingZeroCapacity(t *testing.T) {
	r := NewRing[int](0)

	if r.Cap() != 0 {
		t.Errorf("expected capacity 0, got %d", r.Cap())
	}
	if r.PushBack(1) {
		t.Error("PushBack succeeded at zero capacity")
	}
	r.PushFrontEvict(1)
	if r.Len() != 0 {
		t.Errorf("zero-capacity ring stored %d elements", r.Len())
	}
	if _, ok := r.PopFront(); ok {
		t.Error("PopFront at zero capacity reported ok")
	}
	if _, ok := r.At(0); ok {
		t.Error("At(0) at zero capacity reported ok")
	}
}

func TestRingNegativeCapacity(t *testing.T) {
	r := NewRing[int](-5)
	if r.Cap() != 0 {
		t.Errorf("negative capacity clamped to %d, want 0", r.Cap())
	}
}

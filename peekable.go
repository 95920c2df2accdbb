package peekz

// PeekConfig fixes the window capacities of a Peekable.
type PeekConfig struct {
	// Backward is the capacity of the history window: how many already
	// yielded items remain reachable through PeekBackN. Zero disables
	// backward peeking entirely.
	Backward int

	// Forward is the capacity of the lookahead window: the furthest index
	// PeekN can ever serve is Forward-1, regardless of how much source data
	// remains. Zero disables forward peeking entirely.
	Forward int
}

// Peekable wraps an Iterator with bounded forward lookahead and bounded
// backward history. Forward peeks pull items from the source ahead of the
// consumer's position and buffer them; Next drains that buffer before
// touching the source again, so peeking never changes what is yielded or in
// what order. Every yielded item is also recorded in the history window,
// evicting the oldest entry once the window is full.
//
// A Peekable assumes exclusive ownership of its source: nothing else may
// advance the source while the Peekable is in use. It is not safe for
// concurrent use.
type Peekable[T any] struct {
	name   string
	source Iterator[T]
	clock  Clock
	fwd    *Ring[T]
	bwd    *Ring[T]
	stats  PeekStats
	done   bool
}

// NewPeekable creates an adapter that adds bounded lookahead and lookbehind
// to any sequence producer. Both window capacities are fixed by cfg at
// construction and all storage is allocated up front; negative capacities are
// treated as zero.
//
// When to use:
//   - Lexers and parsers that dispatch on upcoming items
//   - Protocol decoders that need to look ahead before committing
//   - Context-sensitive processing that consults recent history
//   - Any pull-based pipeline where bounded, allocation-free peeking
//     must replace unbounded buffering
//
// Example:
//
//	source := peekz.FromSlice(tokens)
//	it := peekz.NewPeekable(source, peekz.PeekConfig{
//		Backward: 2, // remember the last 2 tokens
//		Forward:  8, // look up to 8 tokens ahead
//	})
//
//	for {
//		tok, ok := it.Next()
//		if !ok {
//			break
//		}
//		if next, ok := it.Peek(); ok {
//			// dispatch on tok and next
//		}
//	}
//
// Parameters:
//   - source: The iterator to wrap. The Peekable takes exclusive ownership.
//   - cfg: Window capacities for history and lookahead.
//
// Returns a new Peekable adapter, itself usable as an Iterator.
func NewPeekable[T any](source Iterator[T], cfg PeekConfig) *Peekable[T] {
	return &Peekable[T]{
		name:   "peekable",
		source: source,
		clock:  RealClock,
		fwd:    NewRing[T](cfg.Forward),
		bwd:    NewRing[T](cfg.Backward),
	}
}

// WithName sets a custom name for identification.
func (p *Peekable[T]) WithName(name string) *Peekable[T] {
	p.name = name
	return p
}

// WithClock sets the clock used to timestamp activity in Stats.
func (p *Peekable[T]) WithClock(clock Clock) *Peekable[T] {
	p.clock = clock
	return p
}

// Next produces the next item in sequence, or reports exhaustion.
// The forward window is drained first; only when it is empty is the source
// pulled. Every yielded item is recorded into the history window, evicting
// the oldest entry if the window is full. Exhaustion is terminal: once the
// source runs dry and the forward window is drained, every further call
// reports ok=false.
func (p *Peekable[T]) Next() (T, bool) {
	item, ok := p.fwd.PopFront()
	if !ok {
		item, ok = p.pull()
	}
	if !ok {
		var zero T
		return zero, false
	}
	p.bwd.PushFrontEvict(item)
	p.stats.Yielded++
	p.stats.LastAdvance = p.clock.Now()
	return item, true
}

// Peek returns the item the next call to Next would yield, without consuming
// it. Equivalent to PeekN(0).
func (p *Peekable[T]) Peek() (T, bool) {
	return p.PeekN(0)
}

// PeekN returns the item that the n-th future call to Next would yield
// (0 = the very next item), without consuming anything. The forward window is
// filled lazily from the source, one item at a time, stopping as soon as the
// request can be answered or the source is exhausted.
//
// ok=false when n is negative, when n is at or beyond the forward capacity
// (the window can structurally never reach that far), or when the source runs
// out before the n-th item. Repeated peeks at the same depth return the same
// item.
func (p *Peekable[T]) PeekN(n int) (T, bool) {
	p.stats.ForwardPeeks++
	if n < 0 || n >= p.fwd.Cap() {
		p.stats.ForwardMisses++
		var zero T
		return zero, false
	}
	for p.fwd.Len() <= n {
		item, ok := p.pull()
		if !ok {
			p.stats.ForwardMisses++
			var zero T
			return zero, false
		}
		p.fwd.PushBack(item)
	}
	item, _ := p.fwd.At(n)
	return item, true
}

// PeekBack returns the most recently yielded item. Equivalent to
// PeekBackN(0).
func (p *Peekable[T]) PeekBack() (T, bool) {
	return p.PeekBackN(0)
}

// PeekBackN returns the n-th most recently yielded item (0 = most recent).
// It is a pure read of the history window and never advances the source.
//
// ok=false when n is negative, when n is at or beyond the backward capacity
// (history of that depth is never retained), or when fewer than n+1 items
// have been yielded so far.
func (p *Peekable[T]) PeekBackN(n int) (T, bool) {
	p.stats.BackwardPeeks++
	item, ok := p.bwd.At(n)
	if !ok {
		p.stats.BackwardMisses++
	}
	return item, ok
}

// Name returns the adapter's name, useful for debugging.
func (p *Peekable[T]) Name() string {
	return p.name
}

// pull takes one item from the source, fusing it on exhaustion so the source
// is never touched again after its first ok=false.
func (p *Peekable[T]) pull() (T, bool) {
	if p.done {
		var zero T
		return zero, false
	}
	item, ok := p.source.Next()
	if !ok {
		p.done = true
		var zero T
		return zero, false
	}
	p.stats.Pulled++
	return item, true
}

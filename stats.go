package peekz

import "time"

// PeekStats contains counters describing how a Peekable has been driven.
// It provides visibility into lookahead pressure and miss rates without
// modifying the adapter's behavior.
type PeekStats struct {
	// LastAdvance is the timestamp of the most recent successful Next call.
	LastAdvance time.Time
	// Yielded is the number of items returned by Next.
	Yielded int64
	// Pulled is the number of items taken from the underlying source,
	// including items pulled ahead by forward peeks.
	Pulled int64
	// ForwardPeeks is the total number of PeekN calls.
	ForwardPeeks int64
	// ForwardMisses is the number of PeekN calls that reported no item,
	// whether from capacity limits or source exhaustion.
	ForwardMisses int64
	// BackwardPeeks is the total number of PeekBackN calls.
	BackwardPeeks int64
	// BackwardMisses is the number of PeekBackN calls that reported no item.
	BackwardMisses int64
}

// Stats returns a snapshot of the adapter's counters. Timestamps come from
// the configured Clock, so they are deterministic under a fake clock in
// tests.
func (p *Peekable[T]) Stats() PeekStats {
	return p.stats
}

package history

import "github.com/goodnatureofminers/auction-history/internal/auction/model"

// Accumulator holds the bids discovered so far for one session.
// Records are stored in discovery order (newest first) and reversed on Snapshot.
type Accumulator struct {
	newestFirst []model.BidRecord
	cursor      model.Cursor
	hasMore     bool
}

// NewAccumulator starts an empty history at the auction's current transaction.
func NewAccumulator(start model.Cursor) *Accumulator {
	return &Accumulator{
		cursor:  start,
		hasMore: !start.IsZero(),
	}
}

// Prepend records a bid older than every bid accumulated so far.
func (a *Accumulator) Prepend(record model.BidRecord) {
	a.newestFirst = append(a.newestFirst, record)
}

// Snapshot returns the accumulated bids oldest first.
func (a *Accumulator) Snapshot() []model.BidRecord {
	out := make([]model.BidRecord, len(a.newestFirst))
	for i, record := range a.newestFirst {
		out[len(out)-1-i] = record
	}
	return out
}

// Advance moves the cursor to the next transaction to inspect.
func (a *Accumulator) Advance(cursor model.Cursor) {
	if !a.hasMore {
		return
	}
	a.cursor = cursor
}

// Exhaust marks the genesis box as reached. It cannot be undone.
func (a *Accumulator) Exhaust() {
	a.hasMore = false
	a.cursor = ""
}

// Apply folds a batch result into the history. Records of result are oldest first.
func (a *Accumulator) Apply(result model.WalkResult) {
	for i := len(result.Records) - 1; i >= 0; i-- {
		a.Prepend(result.Records[i])
	}
	if !result.HasMore {
		a.Exhaust()
		return
	}
	a.Advance(result.Cursor)
}

// Cursor returns the next transaction to inspect.
func (a *Accumulator) Cursor() model.Cursor {
	return a.cursor
}

// HasMore reports whether older bids may still exist.
func (a *Accumulator) HasMore() bool {
	return a.hasMore
}

// Len returns the number of accumulated bids.
func (a *Accumulator) Len() int {
	return len(a.newestFirst)
}

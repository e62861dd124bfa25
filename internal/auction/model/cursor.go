package model

// Cursor points at the next transaction to inspect in the backward walk.
// The zero value means no transaction is left to inspect.
type Cursor string

// NewCursor starts a walk at the auction's current transaction.
func NewCursor(txID string) Cursor {
	return Cursor(txID)
}

// TxID returns the transaction id the cursor points at.
func (c Cursor) TxID() string {
	return string(c)
}

// IsZero reports whether the cursor points nowhere.
func (c Cursor) IsZero() bool {
	return c == ""
}

// WalkResult is the outcome of one batch.
type WalkResult struct {
	// Records are ordered oldest first.
	Records []BidRecord
	Cursor  Cursor
	HasMore bool
}

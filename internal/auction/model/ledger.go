package model

import "time"

// Transaction is the subset of an explorer transaction the walk relies on.
type Transaction struct {
	ID        string
	Inputs    []Input
	Outputs   []Output
	Timestamp time.Time
}

// Input references a box spent by a transaction.
type Input struct {
	BoxID string
}

// Output is a box produced by a transaction.
type Output struct {
	BoxID    string
	Value    uint64
	ErgoTree string
}

// Box is an immutable ledger output.
type Box struct {
	ID       string
	TxID     string
	Value    uint64
	ErgoTree string
}

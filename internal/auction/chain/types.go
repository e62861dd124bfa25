// Package chain resolves single steps of the backward walk over an auction's box chain.
package chain

import (
	"context"

	"github.com/goodnatureofminers/auction-history/internal/auction/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

// LedgerLookup performs point lookups against a ledger explorer.
// Implementations must be safe for concurrent use.
type LedgerLookup interface {
	TransactionByID(ctx context.Context, id string) (*model.Transaction, error)
	BoxByID(ctx context.Context, id string) (*model.Box, error)
}

// StepResult is the outcome of one resolved step.
type StepResult struct {
	Record      model.BidRecord
	PriorBoxID  string
	PriorScript string
	// PriorTxID is the transaction that created the predecessor box.
	PriorTxID string
}

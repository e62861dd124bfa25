package chain

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/goodnatureofminers/auction-history/internal/auction/model"
)

const (
	operationTransactionByID = "transaction_by_id"
	operationBoxByID         = "box_by_id"
)

// Stepper resolves the predecessor auction box of a bid transaction.
type Stepper struct {
	lookup        LedgerLookup
	convention    InputConvention
	lookupTimeout time.Duration
}

// NewStepper constructs a Stepper. A zero lookupTimeout leaves lookups bounded only by ctx.
func NewStepper(lookup LedgerLookup, convention InputConvention, lookupTimeout time.Duration) *Stepper {
	return &Stepper{
		lookup:        lookup,
		convention:    convention,
		lookupTimeout: lookupTimeout,
	}
}

// Step inspects txID and returns its bid together with the box it spent.
func (s *Stepper) Step(ctx context.Context, txID string) (StepResult, error) {
	tx, err := s.transaction(ctx, txID)
	if err != nil {
		return StepResult{}, err
	}
	if len(tx.Outputs) == 0 {
		return StepResult{}, fmt.Errorf("transaction %s has no outputs: %w", txID, ErrMalformedResponse)
	}
	idx, err := s.convention.Index(len(tx.Inputs))
	if err != nil {
		return StepResult{}, fmt.Errorf("transaction %s: %w", txID, err)
	}
	priorID := tx.Inputs[idx].BoxID
	if priorID == "" {
		return StepResult{}, fmt.Errorf("transaction %s input %d has no box id: %w", txID, idx, ErrMalformedResponse)
	}

	prior, err := s.box(ctx, priorID)
	if err != nil {
		return StepResult{}, err
	}
	if prior.ErgoTree == "" || prior.TxID == "" {
		return StepResult{}, fmt.Errorf("box %s lacks script or creating transaction: %w", priorID, ErrMalformedResponse)
	}

	return StepResult{
		Record:      model.NewBidRecord(txID, tx.Outputs[0].Value, tx.Timestamp),
		PriorBoxID:  prior.ID,
		PriorScript: prior.ErgoTree,
		PriorTxID:   prior.TxID,
	}, nil
}

func (s *Stepper) transaction(ctx context.Context, id string) (*model.Transaction, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	tx, err := s.lookup.TransactionByID(ctx, id)
	if err != nil {
		return nil, lookupFailure(operationTransactionByID, id, timeoutCause(ctx, err))
	}
	if tx == nil {
		return nil, fmt.Errorf("transaction %s: empty payload: %w", id, ErrMalformedResponse)
	}
	return tx, nil
}

func (s *Stepper) box(ctx context.Context, id string) (*model.Box, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	box, err := s.lookup.BoxByID(ctx, id)
	if err != nil {
		return nil, lookupFailure(operationBoxByID, id, timeoutCause(ctx, err))
	}
	if box == nil {
		return nil, fmt.Errorf("box %s: empty payload: %w", id, ErrMalformedResponse)
	}
	return box, nil
}

func (s *Stepper) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if s.lookupTimeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, s.lookupTimeout)
}

// timeoutCause attributes a failure to the lookup deadline when the deadline already fired.
func timeoutCause(ctx context.Context, err error) error {
	if ctx.Err() == context.DeadlineExceeded {
		return fmt.Errorf("%w: %v", ErrTimeout, err)
	}
	return err
}

func lookupFailure(operation, id string, err error) error {
	if errors.Is(err, ErrMalformedResponse) {
		return fmt.Errorf("%s %s: %w", operation, id, err)
	}
	return NewLookupError(operation, id, err)
}

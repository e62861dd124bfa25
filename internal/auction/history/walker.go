package history

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/goodnatureofminers/auction-history/internal/auction/model"
	"go.uber.org/zap"
)

// ErrEmptyCursor is returned when a walk is requested without a transaction to start from.
var ErrEmptyCursor = errors.New("empty cursor")

// Walker runs bounded backward walks over an auction's box chain.
// It keeps no per-auction state and may be shared by concurrent sessions.
type Walker struct {
	stepper   ChainStepper
	policy    TerminationPolicy
	metrics   WalkerMetrics
	batchSize int
	logger    *zap.Logger
}

// NewWalker builds a Walker. A non-positive batchSize selects DefaultBatchSize.
func NewWalker(
	stepper ChainStepper,
	policy TerminationPolicy,
	metrics WalkerMetrics,
	batchSize int,
	logger *zap.Logger,
) (*Walker, error) {
	if stepper == nil {
		return nil, errors.New("chain stepper is required")
	}
	if policy == nil {
		return nil, errors.New("termination policy is required")
	}
	if metrics == nil {
		return nil, errors.New("walker metrics is required")
	}
	if batchSize <= 0 {
		batchSize = DefaultBatchSize
	}
	if batchSize > MaxBatchSize {
		batchSize = MaxBatchSize
	}
	return &Walker{
		stepper:   stepper,
		policy:    policy,
		metrics:   metrics,
		batchSize: batchSize,
		logger:    logger.Named("walker"),
	}, nil
}

// LoadNext walks at most count steps back from cursor. A count above MaxBatchSize is capped.
// On failure it returns the bids resolved before the failing step together with the error;
// the returned cursor then still points at the transaction that failed.
func (w *Walker) LoadNext(ctx context.Context, cursor model.Cursor, count int) (result model.WalkResult, err error) {
	if cursor.IsZero() {
		return model.WalkResult{}, ErrEmptyCursor
	}
	count = w.limit(count)

	started := time.Now()
	newestFirst := make([]model.BidRecord, 0, count)
	defer func() {
		w.metrics.ObserveBatch(err, len(newestFirst), started)
	}()

	current := cursor
	hasMore := true
	for i := 0; i < count; i++ {
		if err = ctx.Err(); err != nil {
			break
		}

		stepStarted := time.Now()
		step, stepErr := w.stepper.Step(ctx, current.TxID())
		w.metrics.ObserveStep(stepErr, stepStarted)
		if stepErr != nil {
			err = fmt.Errorf("step %s: %w", current, stepErr)
			break
		}

		newestFirst = append(newestFirst, step.Record)
		if !w.policy.IsAuctionState(step.PriorScript) {
			w.metrics.ObserveGenesis()
			w.logger.Debug("genesis box reached",
				zap.String("tx_id", current.TxID()),
				zap.String("box_id", step.PriorBoxID),
			)
			hasMore = false
			current = ""
			break
		}
		current = model.NewCursor(step.PriorTxID)
	}

	result = model.WalkResult{
		Records: reverse(newestFirst),
		Cursor:  current,
		HasMore: hasMore,
	}
	if err != nil {
		w.logger.Warn("batch stopped early",
			zap.String("cursor", current.TxID()),
			zap.Int("resolved", len(newestFirst)),
			zap.Error(err),
		)
		return result, err
	}

	w.logger.Debug("batch loaded",
		zap.String("from", cursor.TxID()),
		zap.String("cursor", current.TxID()),
		zap.Int("records", len(newestFirst)),
		zap.Bool("has_more", hasMore),
	)
	return result, nil
}

func (w *Walker) limit(count int) int {
	if count <= 0 {
		return w.batchSize
	}
	if count > MaxBatchSize {
		w.logger.Debug("batch size capped", zap.Int("requested", count), zap.Int("max", MaxBatchSize))
		return MaxBatchSize
	}
	return count
}

func reverse(records []model.BidRecord) []model.BidRecord {
	out := make([]model.BidRecord, len(records))
	for i, record := range records {
		out[len(out)-1-i] = record
	}
	return out
}

package history

import (
	"context"
	"fmt"

	"github.com/goodnatureofminers/auction-history/internal/auction/chain"
	"github.com/goodnatureofminers/auction-history/internal/auction/model"
	"github.com/goodnatureofminers/auction-history/internal/clock"
	"go.uber.org/zap"
)

// Drainer loads a session batch by batch until the genesis bid.
// Batches failing with a recoverable lookup error are retried with backoff.
type Drainer struct {
	count       int
	maxAttempts int
	backoff     clock.Backoff
	wait        func(ctx context.Context, attempt int) error
	logger      *zap.Logger
}

// NewDrainer returns a Drainer. maxAttempts below 1 means a single attempt per batch.
func NewDrainer(count, maxAttempts int, backoff clock.Backoff, logger *zap.Logger) *Drainer {
	if maxAttempts < 1 {
		maxAttempts = 1
	}
	return &Drainer{
		count:       count,
		maxAttempts: maxAttempts,
		backoff:     backoff,
		wait:        backoff.Wait,
		logger:      logger.Named("drainer"),
	}
}

// Drain walks s to the end and returns all of its bids, oldest first.
// On a permanent failure the bids loaded so far are returned with the error.
func (d *Drainer) Drain(ctx context.Context, s *Session) ([]model.BidRecord, error) {
	for attempt := 0; ; {
		result, err := s.LoadNext(ctx, d.count)
		if err == nil {
			attempt = 0
			if !result.HasMore {
				return s.Snapshot(), nil
			}
			continue
		}

		attempt++
		if !chain.IsRecoverable(err) || attempt >= d.maxAttempts {
			return s.Snapshot(), fmt.Errorf("drain session %s: %w", s.ID(), err)
		}
		d.logger.Warn("batch failed, retrying",
			zap.String("session", s.ID()),
			zap.Int("attempt", attempt),
			zap.Duration("delay", d.backoff.Delay(attempt-1)),
			zap.Error(err),
		)
		if err := d.wait(ctx, attempt-1); err != nil {
			return s.Snapshot(), err
		}
	}
}

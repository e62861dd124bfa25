package history

import (
	"context"
	"sync"
	"time"

	"github.com/goodnatureofminers/auction-history/internal/auction/model"
	"go.uber.org/zap"
)

// Session is the bid history of one auction as seen by one caller.
// Its methods may be called from several goroutines; batches run one at a time.
type Session struct {
	mu      sync.Mutex
	id      string
	start   model.Cursor
	opened  time.Time
	walker  BatchWalker
	acc     *Accumulator
	state   model.SessionState
	lastErr error
	logger  *zap.Logger
}

// SessionInfo is a point-in-time view of a session.
type SessionInfo struct {
	ID        string
	StartTxID string
	Opened    time.Time
	State     model.SessionState
	Cursor    model.Cursor
	HasMore   bool
	Records   []model.BidRecord
	LastError error
}

// NewSession starts a fresh history walk at startTxID.
func NewSession(id, startTxID string, walker BatchWalker, logger *zap.Logger) *Session {
	start := model.NewCursor(startTxID)
	return &Session{
		id:     id,
		start:  start,
		opened: time.Now(),
		walker: walker,
		acc:    NewAccumulator(start),
		state:  model.SessionIdle,
		logger: logger.With(zap.String("session", id), zap.String("start_tx_id", startTxID)),
	}
}

// ID returns the session identifier.
func (s *Session) ID() string {
	return s.id
}

// LoadNext walks up to count more steps from the last good cursor.
// After a failure the accumulated bids are kept and a new call retries from the failed transaction.
func (s *Session) LoadNext(ctx context.Context, count int) (model.WalkResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.acc.HasMore() {
		s.state = model.SessionExhausted
		return model.WalkResult{Records: []model.BidRecord{}, HasMore: false}, nil
	}

	s.state = model.SessionWalking
	result, err := s.walker.LoadNext(ctx, s.acc.Cursor(), count)
	if err != nil && result.Cursor.IsZero() {
		// A failed batch never ends the history.
		result.Cursor, result.HasMore = s.acc.Cursor(), true
	}
	s.acc.Apply(result)

	switch {
	case err != nil:
		s.state = model.SessionFailed
		s.lastErr = err
		s.logger.Warn("load next failed", zap.Int("kept", s.acc.Len()), zap.Error(err))
	case !s.acc.HasMore():
		s.state = model.SessionExhausted
		s.lastErr = nil
	default:
		s.state = model.SessionIdle
		s.lastErr = nil
	}
	return result, err
}

// Snapshot returns every bid loaded so far, oldest first.
func (s *Session) Snapshot() []model.BidRecord {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.acc.Snapshot()
}

// State returns the current lifecycle state.
func (s *Session) State() model.SessionState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Info returns a consistent view of the whole session.
func (s *Session) Info() SessionInfo {
	s.mu.Lock()
	defer s.mu.Unlock()
	return SessionInfo{
		ID:        s.id,
		StartTxID: s.start.TxID(),
		Opened:    s.opened,
		State:     s.state,
		Cursor:    s.acc.Cursor(),
		HasMore:   s.acc.HasMore(),
		Records:   s.acc.Snapshot(),
		LastError: s.lastErr,
	}
}

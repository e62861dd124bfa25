package history

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/goodnatureofminers/auction-history/internal/auction/model"
	"github.com/jellydator/ttlcache/v3"
	"go.uber.org/zap"
)

var (
	// ErrSessionNotFound is returned for unknown, closed or expired sessions.
	ErrSessionNotFound = errors.New("session not found")
	// ErrEmptyTxID is returned when a session is opened without a starting transaction.
	ErrEmptyTxID = errors.New("starting transaction id is required")
)

// Registry keeps open sessions. Sessions not touched for the idle TTL are released.
type Registry struct {
	walker   BatchWalker
	metrics  RegistryMetrics
	sessions *ttlcache.Cache[string, *Session]
	newID    func() string
	logger   *zap.Logger

	unsubscribe func()
}

// NewRegistry builds a Registry. A non-positive idleTTL selects the default of 30 minutes.
func NewRegistry(walker BatchWalker, metrics RegistryMetrics, idleTTL time.Duration, logger *zap.Logger) (*Registry, error) {
	if walker == nil {
		return nil, errors.New("batch walker is required")
	}
	if metrics == nil {
		return nil, errors.New("registry metrics is required")
	}
	if idleTTL <= 0 {
		idleTTL = defaultSessionIdleTTL
	}

	r := &Registry{
		walker:  walker,
		metrics: metrics,
		sessions: ttlcache.New[string, *Session](
			ttlcache.WithTTL[string, *Session](idleTTL),
		),
		newID:  uuid.NewString,
		logger: logger.Named("registry"),
	}
	// Eviction handlers run on their own goroutines; explicit closes are recorded in Close.
	r.unsubscribe = r.sessions.OnEviction(func(_ context.Context, reason ttlcache.EvictionReason, item *ttlcache.Item[string, *Session]) {
		if reason == ttlcache.EvictionReasonDeleted {
			return
		}
		r.metrics.ObserveClose(evictionReason(reason))
		r.logger.Debug("session released", zap.String("session", item.Key()), zap.String("reason", evictionReason(reason)))
	})
	return r, nil
}

// Start runs the expiration loop until Stop is called.
func (r *Registry) Start() {
	go r.sessions.Start()
}

// Stop halts the expiration loop and waits for running eviction handlers.
func (r *Registry) Stop() {
	r.sessions.Stop()
	r.unsubscribe()
}

// Open starts a new session at the auction's current transaction.
func (r *Registry) Open(txID string) (*Session, error) {
	txID = strings.TrimSpace(txID)
	if txID == "" {
		return nil, ErrEmptyTxID
	}
	s := NewSession(r.newID(), txID, r.walker, r.logger)
	r.sessions.Set(s.ID(), s, ttlcache.DefaultTTL)
	r.metrics.ObserveOpen()
	return s, nil
}

// Get returns an open session and refreshes its idle timer.
func (r *Registry) Get(id string) (*Session, error) {
	item := r.sessions.Get(id)
	if item == nil {
		return nil, fmt.Errorf("%s: %w", id, ErrSessionNotFound)
	}
	return item.Value(), nil
}

// LoadNext loads the next batch of the session.
func (r *Registry) LoadNext(ctx context.Context, id string, count int) (model.WalkResult, error) {
	s, err := r.Get(id)
	if err != nil {
		return model.WalkResult{}, err
	}
	return s.LoadNext(ctx, count)
}

// Snapshot returns every bid the session loaded so far, oldest first.
func (r *Registry) Snapshot(id string) ([]model.BidRecord, error) {
	s, err := r.Get(id)
	if err != nil {
		return nil, err
	}
	return s.Snapshot(), nil
}

// Close releases a session. Closing an unknown session is an error.
func (r *Registry) Close(id string) error {
	if _, ok := r.sessions.GetAndDelete(id, ttlcache.WithDisableTouchOnHit[string, *Session]()); !ok {
		return fmt.Errorf("%s: %w", id, ErrSessionNotFound)
	}
	r.metrics.ObserveClose(evictionReason(ttlcache.EvictionReasonDeleted))
	r.logger.Debug("session released", zap.String("session", id), zap.String("reason", "closed"))
	return nil
}

// Len returns the number of open sessions.
func (r *Registry) Len() int {
	return r.sessions.Len()
}

func evictionReason(reason ttlcache.EvictionReason) string {
	switch reason {
	case ttlcache.EvictionReasonDeleted:
		return "closed"
	case ttlcache.EvictionReasonExpired:
		return "expired"
	case ttlcache.EvictionReasonCapacityReached:
		return "capacity"
	default:
		return "unknown"
	}
}

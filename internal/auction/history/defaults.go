package history

import "time"

const (
	// DefaultBatchSize is the number of steps a "load more" request walks.
	DefaultBatchSize = 10
	// MaxBatchSize caps a single request so one caller cannot walk an unbounded chain at once.
	MaxBatchSize = 100

	defaultSessionIdleTTL = 30 * time.Minute
)

package model

// SessionState describes where a history session is in its lifecycle.
type SessionState string

var (
	// SessionIdle marks a session waiting for the next batch request.
	SessionIdle SessionState = "idle"
	// SessionWalking marks a session with a batch in flight.
	SessionWalking SessionState = "walking"
	// SessionExhausted marks a session that reached the auction's genesis box.
	SessionExhausted SessionState = "exhausted"
	// SessionFailed marks a session whose last batch stopped on a lookup failure.
	SessionFailed SessionState = "failed"
)

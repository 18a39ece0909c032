package openlp

import "time"

// HealthState classifies the connection for retry backoff.
type HealthState int

const (
	HealthOK HealthState = iota
	HealthRetrying
	HealthPaused
)

func (s HealthState) String() string {
	switch s {
	case HealthOK:
		return "ok"
	case HealthRetrying:
		return "retrying"
	case HealthPaused:
		return "paused"
	default:
		return "unknown"
	}
}

// Health is the connection health of a Client. RetryAt is only meaningful
// while paused.
type Health struct {
	State   HealthState
	RetryAt time.Time
}

// StatusText is the status-line tag for the current state, empty when ok.
func (h Health) StatusText() string {
	switch h.State {
	case HealthRetrying:
		return "comm error, retrying"
	case HealthPaused:
		return "comm error, paused"
	default:
		return ""
	}
}

// fail escalates ok -> retrying -> paused. A failure while already paused
// leaves the deadline alone.
func (h *Health) fail(now time.Time, retryInterval time.Duration) {
	switch h.State {
	case HealthOK:
		h.State = HealthRetrying
	case HealthRetrying:
		h.State = HealthPaused
		h.RetryAt = now.Add(retryInterval)
	}
}

func (h *Health) succeed() {
	h.State = HealthOK
	h.RetryAt = time.Time{}
}

// ready reports whether a request may be attempted at now. Once the pause
// deadline has passed the state clears to ok so exactly one retry happens
// before failures escalate again.
func (h *Health) ready(now time.Time) bool {
	if h.State != HealthPaused {
		return true
	}
	if now.Before(h.RetryAt) {
		return false
	}
	h.succeed()
	return true
}

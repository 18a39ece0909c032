// Package toggle interprets a repeated cancel signal (Ctrl+C) as disable,
// re-enable or quit depending on timing.
//
//	Enabled ──signal──> Disabled ──signal after window──> PendingReenable
//	   ^                                                      │
//	   └─────────────── re-enable delay passes ───────────────┘
//
// Any signal inside the quit window of the previous one moves to Terminating,
// whatever the current state.
package toggle

import "time"

const (
	DefaultQuitWindow    = 1500 * time.Millisecond
	DefaultReenableDelay = time.Second
)

// State is the controller's interpretation of the signals seen so far.
type State int

const (
	Enabled State = iota
	Disabled
	PendingReenable
	Terminating
)

func (s State) String() string {
	switch s {
	case Enabled:
		return "enabled"
	case Disabled:
		return "disabled"
	case PendingReenable:
		return "pending re-enable"
	case Terminating:
		return "terminating"
	default:
		return "unknown"
	}
}

// Controller is the signal state machine. Time is passed in explicitly; the
// controller owns no timers.
type Controller struct {
	quitWindow    time.Duration
	reenableDelay time.Duration

	state      State
	quitUntil  time.Time
	reenableAt time.Time
}

// New returns an enabled Controller. Non-positive durations use the defaults.
func New(quitWindow, reenableDelay time.Duration) *Controller {
	if quitWindow <= 0 {
		quitWindow = DefaultQuitWindow
	}
	if reenableDelay <= 0 {
		reenableDelay = DefaultReenableDelay
	}
	return &Controller{quitWindow: quitWindow, reenableDelay: reenableDelay}
}

// State returns the current state.
func (c *Controller) State() State {
	return c.state
}

// Enabled reports whether the overlay may show slides.
func (c *Controller) Enabled() bool {
	return c.state == Enabled
}

// Signal records a cancel event received at now and returns the new state.
func (c *Controller) Signal(now time.Time) State {
	if c.state == Terminating {
		return c.state
	}
	if now.Before(c.quitUntil) {
		c.state = Terminating
		return c.state
	}

	c.quitUntil = now.Add(c.quitWindow)
	switch c.state {
	case Enabled:
		c.state = Disabled
	case Disabled, PendingReenable:
		c.state = PendingReenable
		c.reenableAt = now.Add(c.reenableDelay)
	}
	return c.state
}

// Advance applies an expired re-enable delay and returns the new state.
func (c *Controller) Advance(now time.Time) State {
	if c.state == PendingReenable && !now.Before(c.reenableAt) {
		c.state = Enabled
	}
	return c.state
}

package app

import (
	"context"
	"errors"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/five82/openlplink/internal/openlp"
	"github.com/five82/openlplink/internal/overlay"
	"github.com/five82/openlplink/internal/state"
	"github.com/five82/openlplink/internal/statusline"
)

const (
	startupStatus = "Starting up"
	ioErrorStatus = "I/O error"
)

// Reconciler is the part of state.Tracker the controller drives.
type Reconciler interface {
	Refresh(ctx context.Context) error
	Display() state.Display
}

// HealthReporter exposes connection health. *openlp.Client implements it.
type HealthReporter interface {
	Health() openlp.Health
}

// LayerWriter rewrites the overlay. overlay.Writer implements it.
type LayerWriter interface {
	Write(item openlp.Item, slide int) error
}

var (
	_ Reconciler     = (*state.Tracker)(nil)
	_ HealthReporter = (*openlp.Client)(nil)
	_ LayerWriter    = overlay.Writer{}
)

// Controller owns the state that persists across ticks: what the overlay
// last showed, the published status and when it last changed.
type Controller struct {
	tracker Reconciler
	health  HealthReporter
	writer  LayerWriter
	logger  *log.Logger
	now     func() time.Time

	timestamp   time.Time
	status      string
	lastWritten overlay.Key
	ioStatus    string
}

// NewController returns a Controller that has written nothing yet.
func NewController(tracker Reconciler, health HealthReporter, writer LayerWriter, logger *log.Logger) *Controller {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	c := &Controller{
		tracker:     tracker,
		health:      health,
		writer:      writer,
		logger:      logger,
		now:         time.Now,
		status:      startupStatus,
		lastWritten: overlay.Key{Slide: state.NoSlide},
	}
	c.timestamp = c.now()
	return c
}

// Status returns the published status line and the time it last changed.
func (c *Controller) Status() (time.Time, string) {
	return c.timestamp, c.status
}

// LastWritten returns the key of the last successful overlay write.
func (c *Controller) LastWritten() overlay.Key {
	return c.lastWritten
}

// Update runs one reconciliation pass, rewrites the overlay when its key
// changed and recomputes the status line. Polling continues while the
// overlay is disabled; only the slide shown is forced off.
func (c *Controller) Update(ctx context.Context, enabled bool) {
	if err := c.tracker.Refresh(ctx); err != nil && !errors.Is(err, openlp.ErrPaused) {
		c.logger.Debug("refresh failed", "err", err)
	}
	display := c.tracker.Display()
	now := c.now()

	slide := display.Slide
	if !enabled || display.BlankStatus != "" {
		slide = state.NoSlide
	}

	key := overlay.Key{ItemID: display.Item.ID, Slide: slide}
	if key != c.lastWritten {
		c.timestamp = now
		if err := c.writer.Write(display.Item, slide); err != nil {
			if c.ioStatus == "" {
				c.logger.Error("overlay write failed", "item", key.ItemID, "slide", key.Slide, "err", err)
			}
			c.ioStatus = ioErrorStatus
		} else {
			c.logger.Debug("overlay written", "item", key.ItemID, "slide", key.Slide)
			c.ioStatus = ""
			c.lastWritten = key
		}
	}

	status := statusline.Build(statusline.Input{
		Item:        display.Item,
		Slide:       display.Slide,
		BlankStatus: display.BlankStatus,
		Enabled:     enabled,
		Network:     c.health.Health().StatusText(),
		IO:          c.ioStatus,
	})
	if status != c.status {
		c.status = status
		c.timestamp = now
	}
}

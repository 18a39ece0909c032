package app

import (
	"context"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"

	"github.com/five82/openlplink/internal/toggle"
)

const (
	defaultRefreshInterval = time.Second / 6
	tickSlack              = 50 * time.Millisecond
	timestampLayout        = "15:04:05"
	shutdownMessage        = "Shutting down."
)

// Printer is the console sink for the status line. *ui.StatusPrinter
// implements it.
type Printer interface {
	Print(timestamp, status string)
	Println(msg string)
}

// Scheduler paces the controller at a fixed period and relays cancel
// signals to the toggle.
type Scheduler struct {
	controller *Controller
	toggle     *toggle.Controller
	printer    Printer
	period     time.Duration
	logger     *log.Logger
	now        func() time.Time
}

// NewScheduler returns a Scheduler ticking every period. A non-positive
// period uses the default of one sixth of a second.
func NewScheduler(controller *Controller, tg *toggle.Controller, printer Printer, period time.Duration, logger *log.Logger) *Scheduler {
	if period <= 0 {
		period = defaultRefreshInterval
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Scheduler{
		controller: controller,
		toggle:     tg,
		printer:    printer,
		period:     period,
		logger:     logger,
		now:        time.Now,
	}
}

// Run ticks until the toggle terminates or ctx is cancelled. A terminating
// toggle is a normal exit and returns nil.
func (s *Scheduler) Run(ctx context.Context, signals <-chan os.Signal) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		start := s.now()
		s.advance(start)
		s.drain(signals)
		if s.toggle.State() == toggle.Terminating {
			return s.shutdown()
		}

		s.controller.Update(ctx, s.toggle.Enabled())
		timestamp, status := s.controller.Status()
		s.printer.Print(timestamp.Format(timestampLayout), status)

		remaining := s.period - s.now().Sub(start)
		if remaining < tickSlack {
			continue
		}

		timer := time.NewTimer(remaining)
		select {
		case <-ctx.Done():
			timer.Stop()
			return ctx.Err()
		case <-signals:
			timer.Stop()
			s.signal(s.now())
		case <-timer.C:
		}
	}
}

func (s *Scheduler) drain(signals <-chan os.Signal) {
	for {
		select {
		case <-signals:
			s.signal(s.now())
		default:
			return
		}
	}
}

func (s *Scheduler) signal(now time.Time) {
	prev := s.toggle.State()
	if next := s.toggle.Signal(now); next != prev {
		s.logger.Info("toggle changed", "from", prev, "to", next)
	}
}

func (s *Scheduler) advance(now time.Time) {
	prev := s.toggle.State()
	if next := s.toggle.Advance(now); next != prev {
		s.logger.Info("toggle changed", "from", prev, "to", next)
	}
}

func (s *Scheduler) shutdown() error {
	s.logger.Info("shutting down")
	s.printer.Println(shutdownMessage)
	return nil
}

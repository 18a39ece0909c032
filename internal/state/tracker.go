package state

import (
	"context"
	"io"
	"slices"

	"github.com/charmbracelet/log"

	"github.com/five82/openlplink/internal/openlp"
)

// NoSlide marks a display without an active slide.
const NoSlide = -1

// Display is the reconciled view of what the remote is presenting.
type Display struct {
	Item        openlp.Item
	Slide       int
	BlankStatus string
}

// Source is the remote as seen by the Tracker. *openlp.Client implements it.
type Source interface {
	Poll(ctx context.Context) (openlp.Poll, error)
	FetchItem(ctx context.Context, id string) (openlp.Item, error)
}

var _ Source = (*openlp.Client)(nil)

// Tracker turns polls into a Display that never holds an out-of-range slide
// and never drops a settled item for a transiently inconsistent one.
type Tracker struct {
	source  Source
	logger  *log.Logger
	display Display
}

// NewTracker starts from the empty item with no slide.
func NewTracker(source Source, logger *log.Logger) *Tracker {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Tracker{
		source:  source,
		logger:  logger,
		display: Display{Slide: NoSlide},
	}
}

// Display returns a copy of the current display.
func (t *Tracker) Display() Display {
	d := t.display
	d.Item.Slides = slices.Clone(t.display.Item.Slides)
	return d
}

// Refresh polls the source once and reconciles the result. A failed poll
// leaves the display untouched. A failed item fetch keeps the previous item
// and slide; the next Refresh tries again.
func (t *Tracker) Refresh(ctx context.Context) error {
	poll, err := t.source.Poll(ctx)
	if err != nil {
		return err
	}

	t.display.BlankStatus = poll.BlankStatus()

	if poll.Item != t.display.Item.ID {
		return t.switchItem(ctx, poll)
	}
	if poll.Slide != t.display.Slide {
		t.moveSlide(poll.Slide)
	}
	return nil
}

func (t *Tracker) switchItem(ctx context.Context, poll openlp.Poll) error {
	item, err := t.source.FetchItem(ctx, poll.Item)
	if err != nil {
		t.logger.Debug("item fetch failed", "item", poll.Item, "err", err)
		return err
	}

	switch {
	case len(item.Slides) == 0:
		t.commit(item, NoSlide)
	case validSlide(poll.Slide, len(item.Slides)):
		t.commit(item, poll.Slide)
	default:
		// The remote reported a slide the item does not have yet; wait for
		// a consistent poll.
		t.logger.Debug("slide out of range for new item", "item", item.ID, "slide", poll.Slide, "slides", len(item.Slides))
	}
	return nil
}

func (t *Tracker) moveSlide(slide int) {
	switch {
	case len(t.display.Item.Slides) == 0:
		t.display.Slide = NoSlide
	case validSlide(slide, len(t.display.Item.Slides)):
		t.display.Slide = slide
	}
}

func (t *Tracker) commit(item openlp.Item, slide int) {
	if item.IsEmpty() {
		t.logger.Debug("nothing displayed")
	} else {
		t.logger.Debug("item changed", "item", item.ID, "plugin", item.Plugin, "title", item.Title, "slide", slide)
	}
	t.display.Item = item
	t.display.Slide = slide
}

func validSlide(slide, count int) bool {
	return slide >= 0 && slide < count
}

package app

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/five82/openlplink/internal/openlp"
	"github.com/five82/openlplink/internal/openlp/openlptest"
	"github.com/five82/openlplink/internal/overlay"
	"github.com/five82/openlplink/internal/state"
)

type write struct {
	itemID string
	slide  int
}

type recordingWriter struct {
	writes []write
	err    error
}

func (w *recordingWriter) Write(item openlp.Item, slide int) error {
	w.writes = append(w.writes, write{itemID: item.ID, slide: slide})
	return w.err
}

type fixture struct {
	server     *openlptest.Server
	client     *openlp.Client
	writer     *recordingWriter
	controller *Controller
	clock      time.Time
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	f := &fixture{
		server: openlptest.NewServer(t),
		writer: &recordingWriter{},
		clock:  time.Date(2024, 3, 10, 9, 30, 0, 0, time.UTC),
	}
	client, err := openlp.NewClient(f.server.URL, openlp.WithClock(f.now))
	require.NoError(t, err)
	f.client = client
	f.controller = NewController(state.NewTracker(client, nil), client, f.writer, nil)
	f.controller.now = f.now
	return f
}

func (f *fixture) now() time.Time { return f.clock }

func (f *fixture) tick(enabled bool) {
	f.clock = f.clock.Add(time.Second / 6)
	f.controller.Update(context.Background(), enabled)
}

func song(id, title string) openlp.ServiceItem {
	return openlp.ServiceItem{ID: id, Plugin: openlp.PluginSongs, Title: title}
}

func TestController_WritesOncePerKey(t *testing.T) {
	f := newFixture(t)
	f.server.Show(song("a", "Amazing Grace"), 0, "Amazing grace", "How sweet the sound")

	for range 5 {
		f.tick(true)
	}
	f.server.Show(song("a", "Amazing Grace"), 1, "Amazing grace", "How sweet the sound")
	for range 3 {
		f.tick(true)
	}

	assert.Equal(t, []write{{"a", 0}, {"a", 1}}, f.writer.writes)
	assert.Equal(t, overlay.Key{ItemID: "a", Slide: 1}, f.controller.LastWritten())

	_, status := f.controller.Status()
	assert.Equal(t, "Amazing Grace slide 2/2", status)
}

func TestController_NothingWrittenForInitialEmptyItem(t *testing.T) {
	f := newFixture(t)

	f.tick(true)

	assert.Empty(t, f.writer.writes)
	_, status := f.controller.Status()
	assert.Equal(t, "untitled item (no overlay)", status)
}

func TestController_DisabledForcesNoSlide(t *testing.T) {
	f := newFixture(t)
	f.server.Show(song("a", "Amazing Grace"), 1, "one", "two")

	f.tick(true)
	f.tick(false)
	f.tick(false)
	f.tick(true)

	assert.Equal(t, []write{{"a", 1}, {"a", state.NoSlide}, {"a", 1}}, f.writer.writes)
}

func TestController_DisabledStatusKeepsSlidePosition(t *testing.T) {
	f := newFixture(t)
	f.server.Show(song("a", "Amazing Grace"), 1, "one", "two")

	f.tick(false)

	_, status := f.controller.Status()
	assert.Equal(t, "Amazing Grace slide 2/2 (disabled!)", status)
}

func TestController_BlankStatusForcesNoSlide(t *testing.T) {
	f := newFixture(t)
	f.server.Show(song("a", "Amazing Grace"), 0, "one", "two")
	f.tick(true)

	f.server.SetPoll(openlp.Poll{Item: "a", Slide: 0, Blank: true})
	f.tick(true)

	assert.Equal(t, []write{{"a", 0}, {"a", state.NoSlide}}, f.writer.writes)
	_, status := f.controller.Status()
	assert.Equal(t, "Amazing Grace slide 1/2 (blacked out!)", status)
}

func TestController_WriteFailureRetriesNextTick(t *testing.T) {
	f := newFixture(t)
	f.server.Show(song("a", "Amazing Grace"), 0, "one", "two")
	f.writer.err = errors.New("disk full")

	f.tick(true)
	_, status := f.controller.Status()
	assert.True(t, strings.HasSuffix(status, "(I/O error!)"), status)
	assert.Equal(t, overlay.Key{Slide: state.NoSlide}, f.controller.LastWritten())

	f.writer.err = nil
	f.tick(true)

	assert.Len(t, f.writer.writes, 2)
	assert.Equal(t, overlay.Key{ItemID: "a", Slide: 0}, f.controller.LastWritten())
	_, status = f.controller.Status()
	assert.Equal(t, "Amazing Grace slide 1/2", status)
}

func TestController_NetworkTagAfterFailures(t *testing.T) {
	f := newFixture(t)
	f.server.Fail(true)

	f.tick(true)
	_, status := f.controller.Status()
	assert.Equal(t, "untitled item (no overlay) (comm error, retrying!)", status)

	f.tick(true)
	_, status = f.controller.Status()
	assert.Equal(t, "untitled item (no overlay) (comm error, paused!)", status)
}

func TestController_TimestampChangesOnlyWithStatusOrWrite(t *testing.T) {
	f := newFixture(t)
	f.server.Show(song("a", "Amazing Grace"), 0, "one", "two")

	f.tick(true)
	first, _ := f.controller.Status()
	assert.Equal(t, f.clock, first)

	f.tick(true)
	f.tick(true)
	same, _ := f.controller.Status()
	assert.Equal(t, first, same)

	f.server.Show(song("a", "Amazing Grace"), 1, "one", "two")
	f.tick(true)
	moved, _ := f.controller.Status()
	assert.Equal(t, f.clock, moved)
	assert.True(t, moved.After(first))
}

func TestController_WritesOverlayFile(t *testing.T) {
	server := openlptest.NewServer(t)
	server.Show(song("a", "Amazing Grace"), 0, "Amazing grace", "How sweet the sound")
	client, err := openlp.NewClient(server.URL)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "Text Layer.csv")
	controller := NewController(state.NewTracker(client, nil), client, overlay.Writer{Path: path}, nil)
	controller.Update(context.Background(), true)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "PROGRAM,Body,Footer\r\n"+
		"ON,Amazing grace,Amazing Grace\r\n"+
		"OFF,How sweet the sound,Amazing Grace\r\n", string(data))
}

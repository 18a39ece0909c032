package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"time"

	"github.com/five82/openlplink/internal/config"
	"github.com/five82/openlplink/internal/logging"
	"github.com/five82/openlplink/internal/openlp"
	"github.com/five82/openlplink/internal/overlay"
	"github.com/five82/openlplink/internal/prefs"
	"github.com/five82/openlplink/internal/state"
	"github.com/five82/openlplink/internal/toggle"
	"github.com/five82/openlplink/internal/ui"
)

// Options configure the link. Non-empty fields override the config file.
type Options struct {
	ConfigPath  string
	URL         string
	OverlayFile string
	LogFile     string
	Debug       bool

	In  io.Reader // nil uses os.Stdin
	Out io.Writer // nil uses os.Stdout
}

// Run connects to the remote and keeps the overlay in sync until the
// operator quits or ctx is cancelled.
func Run(ctx context.Context, opts Options) error {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	opts.apply(&cfg)

	level := cfg.LogLevel
	if opts.Debug {
		level = "debug"
	}
	logger, closeLog, err := logging.New(cfg.LogFile, level)
	if err != nil {
		return fmt.Errorf("init logging: %w", err)
	}
	defer func() { _ = closeLog() }()

	in, out := opts.streams()

	baseURL, err := resolveURL(ctx, cfg, in, out)
	if err != nil {
		return err
	}
	if err := prefs.SaveURL(cfg.URLFile, baseURL); err != nil {
		logger.Warn("could not save url", "path", cfg.URLFile, "err", err)
	}

	client, err := openlp.NewClient(baseURL,
		openlp.WithRequestTimeout(cfg.RequestTimeout),
		openlp.WithRetryInterval(cfg.RetryInterval),
		openlp.WithLogger(logger),
	)
	if err != nil {
		return fmt.Errorf("init openlp client: %w", err)
	}
	logger.Info("starting", "url", client.BaseURL(), "overlay", cfg.OverlayFile)
	ui.Banner(out, client.BaseURL(), cfg.OverlayFile)

	controller := NewController(
		state.NewTracker(client, logger),
		client,
		overlay.Writer{Path: cfg.OverlayFile},
		logger,
	)
	scheduler := NewScheduler(
		controller,
		toggle.New(cfg.QuitWindow, cfg.ReenableDelay),
		ui.NewStatusPrinter(out),
		cfg.RefreshInterval,
		logger,
	)

	signals := make(chan os.Signal, 4)
	signal.Notify(signals, os.Interrupt)
	defer signal.Stop(signals)

	err = scheduler.Run(ctx, signals)
	if errors.Is(err, context.Canceled) {
		logger.Info("context cancelled")
		return nil
	}
	return err
}

func (o Options) apply(cfg *config.Config) {
	if v := strings.TrimSpace(o.URL); v != "" {
		cfg.URL = v
	}
	if v := strings.TrimSpace(o.OverlayFile); v != "" {
		cfg.OverlayFile = v
	}
	if v := strings.TrimSpace(o.LogFile); v != "" {
		cfg.LogFile = v
	}
}

func (o Options) streams() (io.Reader, io.Writer) {
	in, out := o.In, o.Out
	if in == nil {
		in = os.Stdin
	}
	if out == nil {
		out = os.Stdout
	}
	return in, out
}

// resolveURL returns a checked base URL. A configured URL must pass the
// check; otherwise the operator is prompted, starting from the saved one.
func resolveURL(ctx context.Context, cfg config.Config, in io.Reader, out io.Writer) (string, error) {
	check := checker(cfg.RequestTimeout)

	if cfg.URL != "" {
		normalized, err := openlp.NormalizeBaseURL(cfg.URL)
		if err != nil {
			return "", fmt.Errorf("invalid url %q: %w", cfg.URL, err)
		}
		if err := check(ctx, normalized); err != nil {
			return "", fmt.Errorf("cannot connect to OpenLP at %s: %w", normalized, err)
		}
		return normalized, nil
	}

	baseURL, err := ui.PromptURL(ctx, prefs.LoadURL(cfg.URLFile), check, in, out)
	if err != nil {
		return "", err
	}
	return baseURL, nil
}

func checker(timeout time.Duration) ui.CheckFunc {
	return func(ctx context.Context, baseURL string) error {
		client, err := openlp.NewClient(baseURL, openlp.WithRequestTimeout(timeout))
		if err != nil {
			return err
		}
		return client.Check(ctx)
	}
}

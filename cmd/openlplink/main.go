package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/five82/openlplink/internal/app"
	"github.com/five82/openlplink/internal/config"
	"github.com/five82/openlplink/internal/ui"
)

func main() {
	os.Exit(run())
}

func run() int {
	if err := config.LoadDotEnv(""); err != nil {
		fmt.Fprintf(os.Stderr, "openlplink: %v\n", err)
		return 1
	}

	// SIGINT is left to the toggle; only SIGTERM cancels the context.
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGTERM)
	defer cancel()

	if err := newRootCommand().ExecuteContext(ctx); err != nil {
		if !errors.Is(err, ui.ErrCancelled) {
			fmt.Fprintf(os.Stderr, "openlplink: %v\n", err)
		}
		return 1
	}
	return 0
}

func newRootCommand() *cobra.Command {
	var opts app.Options

	cmd := &cobra.Command{
		Use:   "openlplink",
		Short: "Mirror the live OpenLP slide into a text-layer CSV file",
		Long: "openlplink polls an OpenLP remote and rewrites a CSV text layer for\n" +
			"broadcast software whenever the live item or slide changes.\n\n" +
			"Press Ctrl+C once to disable or re-enable the overlay, twice to quit.",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			opts.In = cmd.InOrStdin()
			opts.Out = cmd.OutOrStdout()
			return app.Run(cmd.Context(), opts)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&opts.ConfigPath, "config", "", "config file path (default ~/.config/openlplink/config.toml)")
	flags.StringVar(&opts.URL, "url", "", "OpenLP remote URL; skips the prompt")
	flags.StringVar(&opts.OverlayFile, "overlay", "", "text layer CSV file to write")
	flags.StringVar(&opts.LogFile, "log-file", "", "append logs to this file")
	flags.BoolVar(&opts.Debug, "debug", false, "log at debug level")
	return cmd
}

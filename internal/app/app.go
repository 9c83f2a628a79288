package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/five82/roster/internal/config"
	"github.com/five82/roster/internal/logging"
	"github.com/five82/roster/internal/source"
	"github.com/five82/roster/internal/state"
	"github.com/five82/roster/internal/ui"
)

var errNoFetcher = errors.New("no record source configured")

// ErrLoadFailed is returned by non-interactive runs when the record source
// could not be loaded.
var ErrLoadFailed = errors.New(state.LoadFailedMessage)

// Options configure the roster application.
type Options struct {
	ConfigPath  string
	SourceURL   string // overrides config source_url when set
	Interactive bool   // run the TUI; otherwise render once and exit
	Output      string // text or json, non-interactive only
	Query       string // search query, non-interactive only
	Expand      bool   // show secondary fields, non-interactive text only
	Debug       bool

	Stdout io.Writer
	Stderr io.Writer
}

// Run boots roster until the session ends or ctx is cancelled.
func Run(ctx context.Context, opts Options) error {
	if opts.Stdout == nil {
		opts.Stdout = os.Stdout
	}
	if opts.Stderr == nil {
		opts.Stderr = os.Stderr
	}

	format, err := ui.ParseFormat(opts.Output)
	if err != nil {
		return err
	}

	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if url := strings.TrimSpace(opts.SourceURL); url != "" {
		cfg.SourceURL = url
	}

	level := cfg.LogLevel
	if opts.Debug {
		level = "debug"
	}
	logOpts := logging.Options{Level: level, File: cfg.LogFile}
	if !opts.Interactive {
		logOpts = logging.Options{Level: level, Console: true, Stderr: opts.Stderr}
	}
	logger, err := logging.New(logOpts)
	if err != nil {
		return fmt.Errorf("init logging: %w", err)
	}
	defer func() { _ = logger.Close() }()

	client, err := source.NewClient(cfg.SourceURL, source.WithTimeout(cfg.RequestTimeout))
	if err != nil {
		return fmt.Errorf("init source client: %w", err)
	}
	defer client.CloseIdleConnections()

	logger.Debug().
		Str("source", client.URL()).
		Dur("request_timeout", cfg.RequestTimeout).
		Bool("interactive", opts.Interactive).
		Msg("config loaded")

	loader := NewLoader(client, logging.Component(logger.Logger, "loader"))

	if !opts.Interactive {
		return renderOnce(ctx, loader, format, opts)
	}

	err = ui.Run(ui.Options{
		Context: ctx,
		Load:    loader.Load,
		Logger:  logging.Component(logger.Logger, "ui"),
	})
	logger.Info().Msg("session ended")
	if err != nil && ctx.Err() == nil {
		return fmt.Errorf("run ui: %w", err)
	}
	return nil
}

// renderOnce loads the records and writes the filtered directory to stdout.
func renderOnce(ctx context.Context, loader *Loader, format ui.Format, opts Options) error {
	view := state.New().Apply(loader.Load(ctx)).WithQuery(opts.Query)
	if view.Status != state.Ready {
		return ErrLoadFailed
	}
	return ui.WritePlain(opts.Stdout, view, ui.PlainOptions{Format: format, Expand: opts.Expand})
}

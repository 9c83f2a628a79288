package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/five82/roster/internal/app"
)

func main() {
	os.Exit(run())
}

func run() int {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	cmd := newRootCmd(os.Stdout, os.Stderr, isTerminal(os.Stdout))
	if err := cmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "roster: %v\n", err)
		return 1
	}
	return 0
}

// isTerminal reports whether f is attached to a terminal.
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// newRootCmd builds the roster command. tty selects the interactive UI
// unless --plain is given.
func newRootCmd(stdout, stderr io.Writer, tty bool) *cobra.Command {
	var (
		opts  app.Options
		plain bool
	)

	cmd := &cobra.Command{
		Use:   "roster",
		Short: "Browse a directory of user profiles",
		Long: "roster fetches user profiles once at startup and shows them as cards " +
			"with name search, per-card details and a light/dark theme.",
		Example: `  # Browse interactively
  roster

  # Print profiles matching a name, with details
  roster --plain --query leanne --expand

  # JSON for scripts
  roster --output json | jq '.[].email'`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			opts.Interactive = tty && !plain
			opts.Stdout = cmd.OutOrStdout()
			opts.Stderr = cmd.ErrOrStderr()
			return app.Run(cmd.Context(), opts)
		},
	}
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	flags := cmd.Flags()
	flags.StringVar(&opts.ConfigPath, "config", "", "config file path (default ~/.config/roster/config.toml)")
	flags.StringVar(&opts.SourceURL, "source", "", "record source URL (overrides source_url)")
	flags.BoolVar(&plain, "plain", false, "print the directory once instead of starting the UI")
	flags.StringVarP(&opts.Output, "output", "o", "text", "non-interactive output format: text or json")
	flags.StringVarP(&opts.Query, "query", "q", "", "name search for non-interactive output")
	flags.BoolVar(&opts.Expand, "expand", false, "show phone, website and username in text output")
	flags.BoolVar(&opts.Debug, "debug", false, "enable debug logging")

	return cmd
}

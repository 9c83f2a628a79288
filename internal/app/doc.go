// Package app is roster's composition root.
//
// # Overview
//
// Run wires configuration, logging, the record source client, the one-shot
// loader and the UI together:
//
//	Run()
//	  ├─> config.Load()        read ~/.config/roster/config.toml (or --config)
//	  ├─> logging.New()        file logger for the TUI, stderr for plain runs
//	  ├─> source.NewClient()   HTTP client for the record source
//	  ├─> NewLoader()          single fetch, memoised
//	  └─> ui.Run()             Bubble Tea program (blocks)
//	      or renderOnce()      load, filter, print, exit
//
// # Loading
//
// The loader replaces a polling loop: the directory is fetched exactly once
// per session. Loader.Load may be called any number of times; only the first
// call reaches the network and every caller sees the same state.LoadResult.
// The request runs under the session context. Quitting the TUI or receiving
// SIGINT/SIGTERM cancels it, and nothing retries.
//
// # Errors
//
// Fatal (returned from Run):
//   - invalid config file or --output value
//   - log file that cannot be created
//   - invalid source URL
//   - ErrLoadFailed, for non-interactive runs whose load failed
//
// Not fatal:
//   - load failures in the TUI, which show "Error loading data" in place of
//     the directory and are logged with the underlying cause
//
// # Usage
//
//	err := app.Run(ctx, app.Options{Interactive: true})
package app

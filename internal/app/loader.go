package app

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/five82/roster/internal/source"
	"github.com/five82/roster/internal/state"
)

// Loader performs the session's single fetch from the record source.
type Loader struct {
	fetcher source.Fetcher
	logger  zerolog.Logger

	once   sync.Once
	result state.LoadResult
}

// NewLoader returns a Loader for fetcher.
func NewLoader(fetcher source.Fetcher, logger zerolog.Logger) *Loader {
	return &Loader{fetcher: fetcher, logger: logger}
}

// Load fetches the records the first time it is called and returns that same
// result on every later call; it never issues a second request. ctx scopes
// the request to the session.
func (l *Loader) Load(ctx context.Context) state.LoadResult {
	l.once.Do(func() {
		l.result = l.fetch(ctx)
	})
	return l.result
}

func (l *Loader) fetch(ctx context.Context) state.LoadResult {
	if l.fetcher == nil {
		err := errNoFetcher
		l.logger.Error().Err(err).Msg("load failed")
		return state.LoadResult{Err: err}
	}

	start := time.Now()
	l.logger.Info().Msg("load started")

	people, err := l.fetcher.FetchPeople(ctx)
	if err != nil {
		l.logger.Error().Err(err).Dur("elapsed", time.Since(start)).Msg("load failed")
		return state.LoadResult{Err: err}
	}

	l.logger.Info().Int("records", len(people)).Dur("elapsed", time.Since(start)).Msg("load succeeded")
	return state.LoadResult{Records: people}
}

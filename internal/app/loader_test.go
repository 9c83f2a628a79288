package app

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"go.uber.org/goleak"

	"github.com/five82/roster/internal/source"
	"github.com/five82/roster/internal/state"
)

type fakeFetcher struct {
	calls  atomic.Int32
	people []source.Person
	err    error
}

func (f *fakeFetcher) FetchPeople(ctx context.Context) ([]source.Person, error) {
	f.calls.Add(1)
	return f.people, f.err
}

func TestLoader_SuccessReturnsRecords(t *testing.T) {
	f := &fakeFetcher{people: []source.Person{{ID: 1, Name: "Leanne Graham"}, {ID: 2, Name: "Ervin Howell"}}}
	l := NewLoader(f, zerolog.Nop())

	res := l.Load(context.Background())
	if res.Err != nil {
		t.Fatalf("Load error = %v, want nil", res.Err)
	}
	if len(res.Records) != 2 || res.Records[0].ID != 1 || res.Records[1].ID != 2 {
		t.Fatalf("Load records = %#v, want ids 1,2 in order", res.Records)
	}

	v := state.New().Apply(res)
	if v.Status != state.Ready {
		t.Fatalf("Status = %v, want ready", v.Status)
	}
}

func TestLoader_FailureBecomesFailedState(t *testing.T) {
	f := &fakeFetcher{err: errors.New("execute request: connection refused")}
	l := NewLoader(f, zerolog.Nop())

	v := state.New().Apply(l.Load(context.Background()))
	if v.Status != state.Failed || v.Message != "Error loading data" {
		t.Fatalf("state = %v/%q, want failed/Error loading data", v.Status, v.Message)
	}
}

func TestLoader_RunsExactlyOnce(t *testing.T) {
	f := &fakeFetcher{people: []source.Person{{ID: 1}}}
	l := NewLoader(f, zerolog.Nop())

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = l.Load(context.Background())
		}()
	}
	wg.Wait()
	_ = l.Load(context.Background())

	if got := f.calls.Load(); got != 1 {
		t.Fatalf("fetch calls = %d, want 1", got)
	}
}

func TestLoader_NilFetcherFails(t *testing.T) {
	res := NewLoader(nil, zerolog.Nop()).Load(context.Background())
	if res.Err == nil {
		t.Fatal("Load with nil fetcher returned nil error")
	}
}

func TestLoader_CancelEndsHungRequestWithoutLeaks(t *testing.T) {
	release := make(chan struct{})
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))

	client, err := source.NewClient(server.URL)
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}
	l := NewLoader(client, zerolog.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan state.LoadResult, 1)
	go func() { done <- l.Load(ctx) }()

	// No timeout: the request stays pending until the session ends.
	select {
	case <-done:
		t.Fatal("Load returned before cancellation")
	case <-time.After(100 * time.Millisecond):
	}

	cancel()
	select {
	case res := <-done:
		if !errors.Is(res.Err, context.Canceled) {
			t.Fatalf("Load error = %v, want context.Canceled", res.Err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Load did not return after cancel")
	}

	close(release)
	server.Close()
	client.CloseIdleConnections()
	goleak.VerifyNone(t)
}

package source

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

const leanneJSON = `[{
  "id": 1,
  "name": "Leanne Graham",
  "username": "Bret",
  "email": "Sincere@april.biz",
  "address": {"street": "Kulas Light", "city": "Gwenborough"},
  "phone": "1-770-736-8031",
  "website": "hildegard.org",
  "company": {"name": "Romaguera-Crona", "bs": "harness real-time e-markets"}
}, {
  "id": 2,
  "name": "Ervin Howell",
  "username": "Antonette",
  "email": "Shanna@melissa.tv",
  "address": {"city": "Wisokyburgh"},
  "phone": "010-692-6593",
  "website": "anastasia.net",
  "company": {"name": "Deckow-Crist"}
}]`

func TestParseSourceURL_DefaultsAndNormalizes(t *testing.T) {
	u, err := parseSourceURL("")
	if err != nil {
		t.Fatalf("parseSourceURL returned error: %v", err)
	}
	if u.String() != DefaultURL {
		t.Fatalf("url = %q, want %q", u.String(), DefaultURL)
	}

	u, err = parseSourceURL("  example.com/people  ")
	if err != nil {
		t.Fatalf("parseSourceURL returned error: %v", err)
	}
	if u.Scheme != "https" || u.Host != "example.com" || u.Path != "/people" {
		t.Fatalf("url = %q, want https://example.com/people", u.String())
	}

	u, err = parseSourceURL("http://localhost:8080/users?limit=5#frag")
	if err != nil {
		t.Fatalf("parseSourceURL returned error: %v", err)
	}
	if u.Fragment != "" || u.RawQuery != "limit=5" {
		t.Fatalf("url not normalized: %q", u.String())
	}
}

func TestParseSourceURL_RejectsBadInput(t *testing.T) {
	cases := []string{"ftp://example.com/users", "http://", "http://bad host/%zz"}
	for _, raw := range cases {
		if _, err := parseSourceURL(raw); err == nil {
			t.Fatalf("parseSourceURL(%q) returned nil error, want error", raw)
		}
	}
}

func TestClient_FetchPeopleDecodesInSourceOrder(t *testing.T) {
	t.Parallel()

	var gotUserAgent, gotAccept, gotMethod string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUserAgent = r.Header.Get("User-Agent")
		gotAccept = r.Header.Get("Accept")
		gotMethod = r.Method
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(leanneJSON))
	}))
	t.Cleanup(server.Close)

	c, err := NewClient(server.URL + "/users")
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	t.Cleanup(cancel)

	people, err := c.FetchPeople(ctx)
	if err != nil {
		t.Fatalf("FetchPeople returned error: %v", err)
	}
	if len(people) != 2 {
		t.Fatalf("FetchPeople returned %d people, want 2", len(people))
	}
	first := people[0]
	if first.ID != 1 || first.Name != "Leanne Graham" || first.Email != "Sincere@april.biz" {
		t.Fatalf("people[0] = %#v, want Leanne Graham", first)
	}
	if first.CompanyName() != "Romaguera-Crona" || first.City() != "Gwenborough" {
		t.Fatalf("nested fields = %q/%q, want Romaguera-Crona/Gwenborough", first.CompanyName(), first.City())
	}
	if first.Phone != "1-770-736-8031" || first.Website != "hildegard.org" || first.Username != "Bret" {
		t.Fatalf("secondary fields = %#v", first)
	}
	if people[1].ID != 2 {
		t.Fatalf("people[1].ID = %d, want 2 (source order)", people[1].ID)
	}

	if gotMethod != http.MethodGet {
		t.Fatalf("method = %q, want GET", gotMethod)
	}
	if gotAccept != "application/json" {
		t.Fatalf("Accept = %q, want application/json", gotAccept)
	}
	if !strings.HasPrefix(gotUserAgent, "roster/") {
		t.Fatalf("User-Agent = %q, want roster/*", gotUserAgent)
	}
}

func TestClient_MissingFieldsDecodeToZeroValues(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[{"id": 7, "name": "Only Name"}]`))
	}))
	t.Cleanup(server.Close)

	c, err := NewClient(server.URL)
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}
	people, err := c.FetchPeople(context.Background())
	if err != nil {
		t.Fatalf("FetchPeople returned error: %v", err)
	}
	if len(people) != 1 || people[0].CompanyName() != "" || people[0].City() != "" {
		t.Fatalf("people = %#v, want one record with empty nested fields", people)
	}
}

func TestClient_HTTPErrorAndDecodeError(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/broken":
			_, _ = w.Write([]byte("{not-json"))
		case "/object":
			_, _ = w.Write([]byte(`{"id": 1}`))
		case "/down":
			http.Error(w, "nope", http.StatusBadGateway)
		default:
			http.NotFound(w, r)
		}
	}))
	t.Cleanup(server.Close)

	cases := []struct {
		path string
		want string
	}{
		{"/broken", "decode response"},
		{"/object", "decode response"},
		{"/down", "returned status 502"},
		{"/missing", "returned status 404"},
	}
	for _, tc := range cases {
		c, err := NewClient(server.URL + tc.path)
		if err != nil {
			t.Fatalf("NewClient returned error: %v", err)
		}
		_, err = c.FetchPeople(context.Background())
		if err == nil || !strings.Contains(err.Error(), tc.want) {
			t.Fatalf("FetchPeople(%s) error = %v, want %q", tc.path, err, tc.want)
		}
	}
}

func TestClient_ContextCancellationAbortsRequest(t *testing.T) {
	t.Parallel()

	release := make(chan struct{})
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	t.Cleanup(func() {
		close(release)
		server.Close()
	})

	c, err := NewClient(server.URL)
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		_, err := c.FetchPeople(ctx)
		done <- err
	}()
	cancel()

	select {
	case err := <-done:
		if !errors.Is(err, context.Canceled) {
			t.Fatalf("FetchPeople error = %v, want context.Canceled", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("FetchPeople did not return after cancel")
	}
}

func TestClient_WithTimeout(t *testing.T) {
	c, err := NewClient("", WithTimeout(50*time.Millisecond))
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}
	if c.http.Timeout != 50*time.Millisecond {
		t.Fatalf("Timeout = %v, want 50ms", c.http.Timeout)
	}

	c, err = NewClient("", WithTimeout(0))
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}
	if c.http.Timeout != 0 {
		t.Fatalf("Timeout = %v, want 0 (unbounded)", c.http.Timeout)
	}
}

func TestClient_NilReceiver(t *testing.T) {
	var c *Client
	if _, err := c.FetchPeople(context.Background()); err == nil {
		t.Fatal("FetchPeople on nil client returned nil error")
	}
	if c.URL() != "" {
		t.Fatalf("URL() on nil client = %q, want empty", c.URL())
	}
}

package services

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/roamly/roamly/core"
)

// fakeBackend is a test-only stand-in for the Roamly REST API. Responses
// are scripted per METHOD:PATH and every request is recorded for
// assertions.
type fakeBackend struct {
	server   *httptest.Server
	mu       sync.Mutex
	handlers map[string]http.HandlerFunc
	requests []recordedRequest
}

type recordedRequest struct {
	Method    string
	Path      string
	Query     string
	Body      string
	RequestID string
	Cookies   []*http.Cookie
}

func newFakeBackend() *fakeBackend {
	backend := &fakeBackend{
		handlers: make(map[string]http.HandlerFunc),
	}
	backend.server = httptest.NewServer(http.HandlerFunc(backend.dispatch))
	return backend
}

func (b *fakeBackend) dispatch(w http.ResponseWriter, r *http.Request) {
	body, _ := io.ReadAll(r.Body)

	b.mu.Lock()
	b.requests = append(b.requests, recordedRequest{
		Method:    r.Method,
		Path:      r.URL.Path,
		Query:     r.URL.RawQuery,
		Body:      string(body),
		RequestID: r.Header.Get("X-Request-ID"),
		Cookies:   r.Cookies(),
	})
	handler, ok := b.handlers[r.Method+" "+r.URL.Path]
	b.mu.Unlock()

	if !ok {
		w.WriteHeader(http.StatusNotFound)
		json.NewEncoder(w).Encode(core.Envelope{Success: false, Message: "not found"})
		return
	}
	handler(w, r)
}

// respond scripts a fixed envelope response for a METHOD PATH pair.
func (b *fakeBackend) respond(method, path string, status int, env core.Envelope) {
	b.handleFunc(method, path, func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		json.NewEncoder(w).Encode(env)
	})
}

// respondData scripts a 200 envelope wrapping the given payload.
func (b *fakeBackend) respondData(method, path string, data any) {
	raw, err := json.Marshal(data)
	if err != nil {
		panic(err)
	}
	b.respond(method, path, http.StatusOK, core.Envelope{Success: true, Data: raw})
}

func (b *fakeBackend) handleFunc(method, path string, fn http.HandlerFunc) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.handlers[method+" "+path] = fn
}

func (b *fakeBackend) URL() string {
	return b.server.URL
}

func (b *fakeBackend) Close() {
	b.server.Close()
}

func (b *fakeBackend) requestCount() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.requests)
}

func (b *fakeBackend) lastRequest() recordedRequest {
	b.mu.Lock()
	defer b.mu.Unlock()
	if len(b.requests) == 0 {
		return recordedRequest{}
	}
	return b.requests[len(b.requests)-1]
}

// newTestTransport wires a transport against the fake backend with a fresh
// session store.
func newTestTransport(t *testing.T, backend *fakeBackend, cache core.ResponseCache) (*Transport, *core.SessionStore) {
	t.Helper()

	store := core.NewSessionStore()
	transport, err := NewTransport(backend.URL(), nil, store, cache)
	if err != nil {
		t.Fatalf("NewTransport failed: %v", err)
	}
	return transport, store
}

// failingRoundTripper simulates a network failure on every request.
type failingRoundTripper struct{}

func (failingRoundTripper) RoundTrip(*http.Request) (*http.Response, error) {
	return nil, errors.New("connection refused")
}

// newOfflineTransport wires a transport whose every call fails at the
// network layer.
func newOfflineTransport(t *testing.T) (*Transport, *core.SessionStore) {
	t.Helper()

	store := core.NewSessionStore()
	client := &http.Client{Transport: failingRoundTripper{}}
	transport, err := NewTransport("http://backend.invalid", client, store, nil)
	if err != nil {
		t.Fatalf("NewTransport failed: %v", err)
	}
	return transport, store
}

func authenticatedSession() *core.Session {
	return &core.Session{
		ID:       "u1",
		FullName: "Alice Rivera",
		Email:    "alice@example.com",
		Role:     core.RoleUser,
	}
}

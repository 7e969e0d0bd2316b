package services

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/roamly/roamly/core"
)

const defaultTimeout = 30 * time.Second

// Transport is the shared request/response plumbing behind every domain
// fetcher. It owns credential forwarding (cookie jar), the response
// envelope, request IDs, and the one place where an expired session is
// detected and propagated to the session store.
type Transport struct {
	baseURL   string
	client    *http.Client
	store     *core.SessionStore
	cache     core.ResponseCache
	userAgent string
}

// NewTransport creates a transport rooted at baseURL. A nil httpClient gets
// a default client; either way the client carries a cookie jar so the
// backend's HTTP-only session cookie rides along on every call.
func NewTransport(baseURL string, httpClient *http.Client, store *core.SessionStore, cache core.ResponseCache) (*Transport, error) {
	if baseURL == "" {
		return nil, core.ErrBaseURLRequired
	}
	if store == nil {
		return nil, core.ErrSessionStoreRequired
	}

	if httpClient == nil {
		httpClient = &http.Client{Timeout: defaultTimeout}
	}
	if httpClient.Jar == nil {
		jar, err := cookiejar.New(nil)
		if err != nil {
			return nil, fmt.Errorf("failed to create cookie jar: %w", err)
		}
		httpClient.Jar = jar
	}

	return &Transport{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  httpClient,
		store:   store,
		cache:   cache,
	}, nil
}

// SetUserAgent sets the User-Agent header sent with every request.
func (t *Transport) SetUserAgent(ua string) {
	t.userAgent = ua
}

// Store returns the session store this transport reports expiry to.
func (t *Transport) Store() *core.SessionStore {
	return t.store
}

// Do performs an authenticated call and decodes the envelope's data field
// into out (skipped when out is nil). A 401 response clears the session
// store before the error is returned, so a stale identity is never left
// visible after the server has invalidated the cookie.
func (t *Transport) Do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	data, err := t.call(ctx, method, path, query, body, true)
	if err != nil {
		return err
	}
	return decodeData(data, out)
}

// GetCached performs a GET through the response cache. Only public listing
// endpoints use this path; a cache hit never consults the network.
func (t *Transport) GetCached(ctx context.Context, path string, query url.Values, out any) error {
	if t.cache == nil {
		return t.Do(ctx, http.MethodGet, path, query, nil, out)
	}

	key := cacheKey(path, query)
	if raw, err := t.cache.Get(key); err == nil {
		return decodeData(raw, out)
	}

	data, err := t.call(ctx, http.MethodGet, path, query, nil, true)
	if err != nil {
		return err
	}
	_ = t.cache.Set(key, data)
	return decodeData(data, out)
}

// do is the variant used by the auth gateway: identical plumbing, but a 401
// does not touch the session store. Login rejections and the startup probe
// must not clear an existing identity.
func (t *Transport) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	data, err := t.call(ctx, method, path, query, body, false)
	if err != nil {
		return err
	}
	return decodeData(data, out)
}

func (t *Transport) call(ctx context.Context, method, path string, query url.Values, body any, expireOn401 bool) (json.RawMessage, error) {
	var reqBody io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal request body: %w", err)
		}
		reqBody = bytes.NewReader(encoded)
	}

	target := t.baseURL + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, target, reqBody)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", uuid.NewString())
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if t.userAgent != "" {
		req.Header.Set("User-Agent", t.userAgent)
	}

	resp, err := t.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", core.ErrNetwork, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", core.ErrNetwork, err)
	}

	var env core.Envelope
	envErr := json.Unmarshal(raw, &env)

	if resp.StatusCode == http.StatusUnauthorized && expireOn401 {
		// The server no longer honors our cookie. Force the local logout
		// here, once, instead of per page.
		t.store.Set(nil)
		if envErr == nil && env.Message != "" {
			return nil, fmt.Errorf("%w: %s", core.ErrSessionExpired, env.Message)
		}
		return nil, core.ErrSessionExpired
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		message := ""
		if envErr == nil {
			message = env.Message
		}
		return nil, &core.APIError{Status: resp.StatusCode, Message: message}
	}

	if envErr != nil {
		return nil, fmt.Errorf("failed to decode response envelope: %w", envErr)
	}
	return env.Data, nil
}

func decodeData(data json.RawMessage, out any) error {
	if out == nil || len(data) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("failed to decode response data: %w", err)
	}
	return nil
}

func cacheKey(path string, query url.Values) string {
	if len(query) == 0 {
		return path
	}
	return path + "?" + query.Encode()
}

// statusOf extracts the HTTP status from an APIError, or 0 when the error
// is not an API response.
func statusOf(err error) int {
	var apiErr *core.APIError
	if errors.As(err, &apiErr) {
		return apiErr.Status
	}
	return 0
}

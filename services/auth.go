package services

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/roamly/roamly/core"
)

// logoutTimeout bounds the best-effort logout call. Local state is cleared
// before the request is even issued.
const logoutTimeout = 5 * time.Second

// AuthGateway performs the identity-changing operations and is the sole
// writer of the session store.
type AuthGateway struct {
	transport *Transport
	store     *core.SessionStore
}

func NewAuthGateway(transport *Transport) *AuthGateway {
	return &AuthGateway{
		transport: transport,
		store:     transport.Store(),
	}
}

// Login authenticates with email and password. On success the backend sets
// its HTTP-only session cookie (captured by the transport's cookie jar) and
// the session store is updated. On failure the store is left untouched and
// the error carries the server's message.
func (g *AuthGateway) Login(ctx context.Context, credentials core.Credentials) (*core.Session, error) {
	var session core.Session
	err := g.transport.do(ctx, http.MethodPost, pathLogin, nil, credentials, &session)
	if err != nil {
		if status := statusOf(err); status == http.StatusUnauthorized || status == http.StatusBadRequest {
			var apiErr *core.APIError
			if errors.As(err, &apiErr) && apiErr.Message != "" {
				return nil, fmt.Errorf("%w: %s", core.ErrInvalidCredentials, apiErr.Message)
			}
			return nil, core.ErrInvalidCredentials
		}
		return nil, err
	}

	session.Role = core.ParseRole(string(session.Role))
	if !session.Complete() {
		return nil, core.ErrSessionIncomplete
	}

	g.store.Set(&session)
	return &session, nil
}

// Logout ends the session. Local state clears first, unconditionally; the
// backend call is best-effort with a bounded timeout and its failure is
// swallowed, because the user's intent is to be logged out regardless of
// network conditions.
func (g *AuthGateway) Logout(ctx context.Context) {
	g.store.Set(nil)

	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), logoutTimeout)
	defer cancel()
	_ = g.transport.do(ctx, http.MethodPost, pathLogout, nil, nil, nil)
}

// Probe resolves the identity carried by the ambient session cookie, for
// use once at startup. Absence of a session (401/403) and network failure
// both resolve to nil without error: no confirmed session means logged out.
func (g *AuthGateway) Probe(ctx context.Context) (*core.Session, error) {
	var session core.Session
	err := g.transport.do(ctx, http.MethodGet, pathSessionProbe, nil, nil, &session)
	if err != nil {
		if status := statusOf(err); status == http.StatusUnauthorized || status == http.StatusForbidden {
			return nil, nil
		}
		if errors.Is(err, core.ErrNetwork) {
			return nil, nil
		}
		return nil, err
	}

	session.Role = core.ParseRole(string(session.Role))
	if !session.Complete() {
		return nil, nil
	}

	g.store.Set(&session)
	return &session, nil
}

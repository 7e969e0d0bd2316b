// Package gateway is the thin server-side companion to the client: it
// fronts the Roamly backend for browser-facing deployments, forwarding the
// ambient session cookie so credentials are attached in exactly one place.
package gateway

import (
	"net/http"
	"strings"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/logger"
	"github.com/gofiber/fiber/v3/middleware/requestid"

	"github.com/roamly/roamly/core"
)

// sessionCookieName is the backend's HTTP-only auth cookie.
const sessionCookieName = "accessToken"

type Config struct {
	// Addr is the listen address, e.g. ":3000".
	Addr string

	// BackendURL is the Roamly API root the gateway forwards to.
	BackendURL string

	// Optional config
	HTTPClient *http.Client
}

type Gateway struct {
	app     *fiber.App
	addr    string
	backend string
	client  *http.Client
}

func New(config Config) (*Gateway, error) {
	if config.BackendURL == "" {
		return nil, core.ErrBackendURLRequired
	}

	client := config.HTTPClient
	if client == nil {
		client = &http.Client{Timeout: 30 * time.Second}
	}

	gateway := &Gateway{
		app:     fiber.New(),
		addr:    config.Addr,
		backend: strings.TrimRight(config.BackendURL, "/"),
		client:  client,
	}

	gateway.app.Use(requestid.New())
	gateway.app.Use(logger.New())

	gateway.app.Get("/healthz", func(c fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	// Payment routes first: they require credentials before forwarding.
	gateway.app.Post("/api/payments/create-checkout-session", gateway.createCheckoutSession)
	gateway.app.Get("/api/payments/verify-session", gateway.verifySession)

	gateway.app.All("/api/*", gateway.proxy)

	return gateway, nil
}

// App exposes the underlying fiber app, mainly for tests.
func (g *Gateway) App() *fiber.App {
	return g.app
}

// Listen serves until Shutdown or a listener error.
func (g *Gateway) Listen() error {
	return g.app.Listen(g.addr)
}

// Shutdown gracefully stops the gateway.
func (g *Gateway) Shutdown() error {
	return g.app.Shutdown()
}

package gateway

import (
	"bytes"
	"io"
	"net/http"
	"net/url"

	"github.com/gofiber/fiber/v3"
)

// proxy forwards any /api/* call to the backend verbatim, with the ambient
// session cookie attached when present.
func (g *Gateway) proxy(c fiber.Ctx) error {
	req, err := g.backendRequest(c, c.Params("*"))
	if err != nil {
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{
			"success": false,
			"message": "failed to reach backend",
		})
	}

	attachAmbientCredentials(c, req)
	return g.forward(c, req)
}

// backendRequest builds the outbound request for a backend path, carrying
// over method, query, and body.
func (g *Gateway) backendRequest(c fiber.Ctx, path string) (*http.Request, error) {
	target := g.backend + "/" + path

	query := url.Values{}
	for key, values := range c.Queries() {
		query.Set(key, values)
	}
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	var body io.Reader
	if raw := c.Body(); len(raw) > 0 {
		body = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(c.Context(), c.Method(), target, body)
	if err != nil {
		return nil, err
	}

	if contentType := c.Get(fiber.HeaderContentType); contentType != "" {
		req.Header.Set(fiber.HeaderContentType, contentType)
	}
	if requestID := c.Get(fiber.HeaderXRequestID); requestID != "" {
		req.Header.Set(fiber.HeaderXRequestID, requestID)
	}
	return req, nil
}

// attachAmbientCredentials is the single place the session cookie crosses
// from an inbound request to an outbound one. Reports whether a cookie was
// present.
func attachAmbientCredentials(c fiber.Ctx, req *http.Request) bool {
	token := c.Cookies(sessionCookieName)
	if token == "" {
		return false
	}
	req.AddCookie(&http.Cookie{Name: sessionCookieName, Value: token})
	return true
}

// forward executes the backend call and relays status, cookies, and body.
func (g *Gateway) forward(c fiber.Ctx, req *http.Request) error {
	resp, err := g.client.Do(req)
	if err != nil {
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{
			"success": false,
			"message": "failed to reach backend",
		})
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{
			"success": false,
			"message": "failed to read backend response",
		})
	}

	// Relay Set-Cookie so login/logout through the gateway still reaches
	// the browser's cookie store.
	for _, cookie := range resp.Header.Values(fiber.HeaderSetCookie) {
		c.Response().Header.Add(fiber.HeaderSetCookie, cookie)
	}
	if contentType := resp.Header.Get(fiber.HeaderContentType); contentType != "" {
		c.Set(fiber.HeaderContentType, contentType)
	}

	return c.Status(resp.StatusCode).Send(body)
}

package gateway

import (
	"github.com/gofiber/fiber/v3"
)

// The payment routes reject unauthenticated callers locally instead of
// bouncing anonymous checkout attempts off the backend.

func (g *Gateway) createCheckoutSession(c fiber.Ctx) error {
	req, err := g.backendRequest(c, "payments/create-checkout-session")
	if err != nil {
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{
			"success": false,
			"message": "failed to reach backend",
		})
	}

	if !attachAmbientCredentials(c, req) {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"success": false,
			"message": "Unauthorized",
		})
	}

	return g.forward(c, req)
}

func (g *Gateway) verifySession(c fiber.Ctx) error {
	req, err := g.backendRequest(c, "payments/verify-session")
	if err != nil {
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{
			"success": false,
			"message": "failed to reach backend",
		})
	}

	if !attachAmbientCredentials(c, req) {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"success": false,
			"message": "Unauthorized",
		})
	}

	return g.forward(c, req)
}

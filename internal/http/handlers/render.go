package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"harborview/internal/services"
)

func render(c *fiber.Ctx, tmpl string, data fiber.Map) error {
	if data == nil {
		data = fiber.Map{}
	}
	if sess := c.Locals("session"); sess != nil {
		data["Session"] = sess
	}
	return c.Render(tmpl, data)
}

// ensureSID returns the guest session id, minting a cookie on first contact.
func ensureSID(c *fiber.Ctx) string {
	sid := c.Cookies("sid")
	if sid == "" {
		sid = uuid.NewString()
		c.Cookie(&fiber.Cookie{
			Name:     "sid",
			Value:    sid,
			Path:     "/",
			HTTPOnly: true,
			SameSite: fiber.CookieSameSiteLaxMode,
		})
	}
	return sid
}

// fail maps service error classes onto HTTP statuses.
func fail(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, services.ErrNotFound):
		return c.Status(fiber.StatusNotFound).SendString(err.Error())
	case errors.Is(err, services.ErrEmptyCart),
		errors.Is(err, services.ErrUnknownService),
		errors.Is(err, services.ErrIllegalTransition):
		return c.Status(fiber.StatusBadRequest).SendString(err.Error())
	default:
		return c.Status(fiber.StatusInternalServerError).SendString("Something went wrong. Please try again.")
	}
}

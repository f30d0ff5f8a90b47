package handlers

import (
	"github.com/gofiber/fiber/v2"

	"harborview/internal/domain"
	applog "harborview/internal/log"
	"harborview/internal/services"
)

// RequireStaff redirects anonymous visitors to the login page and attaches
// the staff session to the request context.
func RequireStaff(auth *services.AuthService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		sid := c.Cookies("sid")
		if sid == "" {
			return c.Redirect("/login")
		}
		sess, err := auth.CurrentSession(sid)
		if err != nil || sess == nil {
			return c.Redirect("/login")
		}
		c.Locals("session", sess)
		c.Locals("staff_user", sess.Username)
		return c.Next()
	}
}

// RequirePermission gates a staff route on one department permission.
func RequirePermission(check func(domain.Permissions) bool) fiber.Handler {
	return func(c *fiber.Ctx) error {
		sess, _ := c.Locals("session").(*domain.Session)
		if sess == nil || !check(domain.PermissionsFor(sess.Department)) {
			applog.Security(c, "access.denied.staff", map[string]any{"path": c.Path()})
			return c.Status(fiber.StatusForbidden).Render("notfound", fiber.Map{"Message": "Access denied"})
		}
		return c.Next()
	}
}

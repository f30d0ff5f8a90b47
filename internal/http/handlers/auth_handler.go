package handlers

import (
	"github.com/gofiber/fiber/v2"

	applog "harborview/internal/log"
	"harborview/internal/services"
)

type AuthHandler struct {
	Auth *services.AuthService
}

func (h *AuthHandler) LoginForm(c *fiber.Ctx) error {
	return render(c, "login", fiber.Map{})
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	sid := ensureSID(c)
	username := c.FormValue("username")
	password := c.FormValue("password")
	u, err := h.Auth.Login(sid, username, password)
	if err != nil {
		applog.Security(c, "login.fail", map[string]any{"username": username})
		return c.Status(fiber.StatusUnauthorized).Render("login", fiber.Map{"Err": "Invalid credentials"})
	}
	applog.Audit(c, "login.ok", map[string]any{"username": u.Username, "department": u.Department})
	return c.Redirect("/staff")
}

func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	if sid := c.Cookies("sid"); sid != "" {
		if err := h.Auth.Logout(sid); err != nil {
			applog.Error(c, "logout.fail", err, nil)
		}
	}
	return c.Redirect("/login")
}

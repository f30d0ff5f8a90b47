package handlers

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"harborview/internal/domain"
	"harborview/internal/services"
)

type MenuHandler struct {
	Cart *services.CartService
}

// Home renders the guest menu with optional category filtering.
func (h *MenuHandler) Home(c *fiber.Ctx) error {
	sid := ensureSID(c)
	category := strings.TrimSpace(c.Query("category"))
	cv, err := h.Cart.View(sid)
	if err != nil {
		return fail(c, err)
	}
	return render(c, "menu", fiber.Map{
		"Items":     domain.Menu(category),
		"Category":  category,
		"CartCount": cv.Count,
	})
}

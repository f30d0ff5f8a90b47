package handlers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"harborview/internal/domain"
	applog "harborview/internal/log"
	"harborview/internal/services"
	"harborview/internal/validate"
)

type CartHandler struct {
	Cart *services.CartService
}

// Add puts a menu item into the cart, merging quantities for repeat adds.
func (h *CartHandler) Add(c *fiber.Ctx) error {
	sid := ensureSID(c)
	itemID, err := strconv.Atoi(c.FormValue("itemId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).SendString("missing itemId")
	}
	item, ok := domain.MenuItemByID(itemID)
	if !ok || !item.Available {
		return c.Status(fiber.StatusNotFound).SendString("menu item not found")
	}
	qty := validate.Qty(c.FormValue("qty"))
	count, err := h.Cart.Add(sid, domain.CartLine{
		ID:       item.ID,
		Name:     item.Name,
		Price:    item.Price,
		Quantity: qty,
	})
	if err != nil {
		applog.Error(c, "cart.add.fail", err, map[string]any{"item": itemID})
		return fail(c, err)
	}
	applog.Info(c, "cart.add", map[string]any{"item": itemID, "qty": qty, "count": count})
	return c.Redirect("/cart")
}

func (h *CartHandler) View(c *fiber.Ctx) error {
	cv, err := h.Cart.View(ensureSID(c))
	if err != nil {
		return fail(c, err)
	}
	return render(c, "cart", fiber.Map{"Cart": cv})
}

// Quantity applies a signed delta to one line; the line disappears at zero.
func (h *CartHandler) Quantity(c *fiber.Ctx) error {
	sid := ensureSID(c)
	itemID, err := strconv.Atoi(c.FormValue("itemId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).SendString("missing itemId")
	}
	delta, ok := validate.Delta(c.FormValue("delta"))
	if !ok {
		return c.Status(fiber.StatusBadRequest).SendString("invalid delta")
	}
	if err := h.Cart.ChangeQuantity(sid, itemID, delta); err != nil {
		return fail(c, err)
	}
	return c.Redirect("/cart")
}

func (h *CartHandler) Remove(c *fiber.Ctx) error {
	sid := ensureSID(c)
	itemID, err := strconv.Atoi(c.FormValue("itemId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).SendString("missing itemId")
	}
	if err := h.Cart.Remove(sid, itemID); err != nil {
		return fail(c, err)
	}
	return c.Redirect("/cart")
}

func (h *CartHandler) Clear(c *fiber.Ctx) error {
	if err := h.Cart.Clear(ensureSID(c)); err != nil {
		return fail(c, err)
	}
	return c.Redirect("/cart")
}

// Count is the JSON badge counter the menu header polls.
func (h *CartHandler) Count(c *fiber.Ctx) error {
	cv, err := h.Cart.View(ensureSID(c))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(fiber.Map{"count": cv.Count})
}

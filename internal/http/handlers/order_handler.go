package handlers

import (
	"github.com/gofiber/fiber/v2"

	applog "harborview/internal/log"
	"harborview/internal/services"
	"harborview/internal/validate"
)

type OrderHandler struct {
	Cart   *services.CartService
	Orders *services.OrderService
}

// Place turns the cart into a food order. The cart must not be empty.
func (h *OrderHandler) Place(c *fiber.Ctx) error {
	sid := ensureSID(c)
	orderID, estimate, err := h.Orders.Place(sid)
	if err != nil {
		applog.Info(c, "order.place.fail", map[string]any{"error": err.Error()})
		return fail(c, err)
	}
	applog.Audit(c, "order.place", map[string]any{"order_id": orderID})
	return render(c, "order_placed", fiber.Map{
		"OrderID":  orderID,
		"Estimate": estimate,
	})
}

// RequestService files a service order for one of the fixed service kinds.
func (h *OrderHandler) RequestService(c *fiber.Ctx) error {
	kind, ok := validate.Service(c.FormValue("service"))
	if !ok {
		return c.Status(fiber.StatusBadRequest).SendString("unknown service")
	}
	orderID, err := h.Orders.RequestService(kind)
	if err != nil {
		return fail(c, err)
	}
	applog.Audit(c, "service.request", map[string]any{"order_id": orderID, "service": string(kind)})
	return c.Redirect("/orders")
}

// List shows the guest-facing order history, most recent first.
func (h *OrderHandler) List(c *fiber.Ctx) error {
	orders, err := h.Orders.Filter("all", "all")
	if err != nil {
		return fail(c, err)
	}
	return render(c, "orders", fiber.Map{"Orders": orders})
}

package handlers

import (
	"github.com/gofiber/fiber/v2"

	applog "harborview/internal/log"
	"harborview/internal/services"
	"harborview/internal/validate"
)

type StaffHandler struct {
	Orders   *services.OrderService
	Inv      *services.InventoryService
	Notes    *services.NotificationService
	Overview *services.OverviewService
}

// GET /staff
func (h *StaffHandler) Dashboard(c *fiber.Ctx) error {
	ov, err := h.Overview.Build()
	if err != nil {
		applog.Error(c, "staff.overview.fail", err, nil)
		return fail(c, err)
	}
	unread, _ := h.Notes.UnreadCount()
	return render(c, "staff_dashboard", fiber.Map{"Overview": ov, "Unread": unread})
}

// GET /staff/orders
func (h *StaffHandler) OrdersPage(c *fiber.Ctx) error {
	status := c.Query("status", "all")
	kind := c.Query("type", "all")
	orders, err := h.Orders.Filter(status, kind)
	if err != nil {
		applog.Error(c, "staff.orders.list.fail", err, nil)
		return fail(c, err)
	}
	return render(c, "staff_orders", fiber.Map{
		"Orders": orders,
		"Status": status,
		"Type":   kind,
	})
}

// POST /staff/orders/:id/status
func (h *StaffHandler) UpdateOrderStatus(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return c.Status(fiber.StatusBadRequest).SendString("missing order id")
	}
	status, ok := validate.Status(c.FormValue("status"))
	if !ok {
		return c.Status(fiber.StatusBadRequest).SendString("invalid status")
	}
	if err := h.Orders.UpdateStatus(id, status); err != nil {
		applog.Error(c, "staff.orders.update.fail", err, map[string]any{"order_id": id})
		return fail(c, err)
	}
	applog.Audit(c, "staff.orders.update", map[string]any{"order_id": id, "status": string(status)})
	return c.Redirect("/staff/orders")
}

// GET /staff/inventory
func (h *StaffHandler) InventoryPage(c *fiber.Ctx) error {
	items, err := h.Inv.List()
	if err != nil {
		applog.Error(c, "staff.inventory.list.fail", err, nil)
		return fail(c, err)
	}
	history, _ := h.Inv.History("")
	return render(c, "staff_inventory", fiber.Map{"Items": items, "History": history})
}

// POST /staff/inventory
func (h *StaffHandler) AddInventoryItem(c *fiber.Ctx) error {
	name, okName := validate.Name(c.FormValue("name"))
	unit, okUnit := validate.Unit(c.FormValue("unit"))
	current, okCur := validate.Stock(c.FormValue("currentStock"))
	min, okMin := validate.Stock(c.FormValue("minStock"))
	if !okName || !okUnit || !okCur || !okMin {
		return c.Status(fiber.StatusBadRequest).SendString("invalid input")
	}
	item, err := h.Inv.AddItem(services.ItemSpec{
		Name:         name,
		Category:     c.FormValue("category", "food"),
		CurrentStock: current,
		MinStock:     min,
		Unit:         unit,
	})
	if err != nil {
		applog.Error(c, "staff.inventory.add.fail", err, nil)
		return fail(c, err)
	}
	applog.Audit(c, "staff.inventory.add", map[string]any{"item_id": item.ID, "name": name})
	return c.Redirect("/staff/inventory")
}

// POST /staff/inventory/:id/stock
func (h *StaffHandler) AdjustStock(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return c.Status(fiber.StatusBadRequest).SendString("missing item id")
	}
	delta, ok := validate.Delta(c.FormValue("change"))
	if !ok {
		return c.Status(fiber.StatusBadRequest).SendString("invalid stock change")
	}
	reason, ok := validate.Reason(c.FormValue("reason"))
	if !ok {
		return c.Status(fiber.StatusBadRequest).SendString("invalid reason")
	}
	actor, _ := c.Locals("staff_user").(string)
	item, err := h.Inv.AdjustStock(id, delta, reason, c.FormValue("notes"), actor)
	if err != nil {
		applog.Error(c, "staff.inventory.adjust.fail", err, map[string]any{"item_id": id})
		return fail(c, err)
	}
	applog.Audit(c, "staff.inventory.adjust", map[string]any{
		"item_id": id, "change": delta, "reason": string(reason), "stock": item.CurrentStock,
	})
	return c.Redirect("/staff/inventory")
}

// GET /staff/purchase-orders
func (h *StaffHandler) PurchaseOrdersPage(c *fiber.Ctx) error {
	pos, err := h.Inv.PurchaseOrders()
	if err != nil {
		return fail(c, err)
	}
	return render(c, "staff_purchase_orders", fiber.Map{"PurchaseOrders": pos})
}

// POST /staff/purchase-orders
func (h *StaffHandler) GeneratePurchaseOrder(c *fiber.Ctx) error {
	po, err := h.Inv.GeneratePurchaseOrder()
	if err != nil {
		applog.Error(c, "staff.po.generate.fail", err, nil)
		return fail(c, err)
	}
	if po == nil {
		return render(c, "staff_purchase_orders", fiber.Map{
			"Message": "No purchase orders needed at this time.",
		})
	}
	applog.Audit(c, "staff.po.generate", map[string]any{"po_id": po.ID, "items": len(po.Items)})
	return c.Redirect("/staff/purchase-orders")
}

// GET /staff/rooms
func (h *StaffHandler) RoomsPage(c *fiber.Ctx) error {
	rooms, err := h.Overview.Rooms()
	if err != nil {
		return fail(c, err)
	}
	return render(c, "staff_rooms", fiber.Map{"Rooms": rooms})
}

// GET /staff/guests
func (h *StaffHandler) GuestsPage(c *fiber.Ctx) error {
	guests, err := h.Overview.Guests()
	if err != nil {
		return fail(c, err)
	}
	return render(c, "staff_guests", fiber.Map{"Guests": guests})
}

// GET /staff/notifications
func (h *StaffHandler) NotificationsPage(c *fiber.Ctx) error {
	notes, err := h.Notes.List()
	if err != nil {
		return fail(c, err)
	}
	unread, _ := h.Notes.UnreadCount()
	return render(c, "staff_notifications", fiber.Map{"Notifications": notes, "Unread": unread})
}

// POST /staff/notifications/:id/read
func (h *StaffHandler) MarkNotificationRead(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return c.Status(fiber.StatusBadRequest).SendString("missing notification id")
	}
	if err := h.Notes.MarkRead(id); err != nil {
		return fail(c, err)
	}
	return c.Redirect("/staff/notifications")
}

// POST /staff/notifications/clear
func (h *StaffHandler) ClearNotifications(c *fiber.Ctx) error {
	if err := h.Notes.Clear(); err != nil {
		return fail(c, err)
	}
	applog.Audit(c, "staff.notifications.clear", nil)
	return c.Redirect("/staff/notifications")
}

// UnreadCount is the JSON badge counter the dashboard header polls.
func (h *StaffHandler) UnreadCount(c *fiber.Ctx) error {
	n, err := h.Notes.UnreadCount()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(fiber.Map{"unread": n})
}

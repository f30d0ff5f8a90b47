package main

import (
	"io"
	"log"
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	html "github.com/gofiber/template/html/v2"

	"harborview/internal/config"
	"harborview/internal/domain"
	"harborview/internal/http/handlers"
	applog "harborview/internal/log"
	"harborview/internal/store"
)

func main() {
	cfg := config.Load()

	// Optional file logging
	if cfg.LogFile != "" {
		f, err := os.OpenFile(cfg.LogFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
		if err != nil {
			log.Printf("[warn] could not open log file %s: %v", cfg.LogFile, err)
		} else {
			mw := io.MultiWriter(os.Stdout, f)
			log.SetOutput(mw)
		}
	}

	st, err := store.Open(cfg.DBDSN)
	if err != nil {
		log.Fatal(err)
	}

	engine := html.New("./web/templates", ".html")
	engine.Reload(true)

	app := fiber.New(fiber.Config{
		Views: engine,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			applog.Error(c, "server.error", err, nil)
			if rerr := c.Status(fiber.StatusInternalServerError).Render("notfound", fiber.Map{
				"Message": "Something went wrong. Please try again.",
			}); rerr != nil {
				return c.Status(fiber.StatusInternalServerError).SendString("Something went wrong. Please try again.")
			}
			return nil
		},
	})
	app.Server().MaxRequestBodySize = 1 << 20 // 1 MiB

	// ---------- Middlewares ----------
	app.Use(requestid.New())
	app.Use(logger.New())
	app.Use(helmet.New())
	app.Use(limiter.New(limiter.Config{
		Max:        120,
		Expiration: time.Minute,
	}))

	deps := handlers.NewDeps(st)
	auth := deps.AuthHandler.Auth

	// Guest pages
	app.Get("/", deps.MenuHandler.Home)
	app.Get("/cart", deps.CartHandler.View)
	app.Post("/cart", deps.CartHandler.Add)
	app.Post("/cart/quantity", deps.CartHandler.Quantity)
	app.Post("/cart/remove", deps.CartHandler.Remove)
	app.Post("/cart/clear", deps.CartHandler.Clear)
	app.Get("/orders", deps.OrderHandler.List)
	app.Post("/orders", deps.OrderHandler.Place)
	app.Post("/services", deps.OrderHandler.RequestService)

	// API badge counters
	api := app.Group("/api/v1")
	api.Get("/cart/count", deps.CartHandler.Count)

	// Staff auth (login throttled)
	app.Get("/login", deps.AuthHandler.LoginForm)
	app.Post("/login", limiter.New(limiter.Config{
		Max:        5,
		Expiration: 10 * time.Minute,
		LimitReached: func(c *fiber.Ctx) error {
			applog.Security(c, "rate.login.hit", nil)
			return c.Status(fiber.StatusTooManyRequests).Render("login", fiber.Map{"Err": "Too many attempts. Please try again later."})
		},
	}), deps.AuthHandler.Login)
	app.Post("/logout", deps.AuthHandler.Logout)

	// Staff dashboard, department-gated
	staff := app.Group("/staff", handlers.RequireStaff(auth))
	staff.Get("/", deps.StaffHandler.Dashboard)

	viewOrders := handlers.RequirePermission(func(p domain.Permissions) bool { return p.ViewOrders })
	updateOrders := handlers.RequirePermission(func(p domain.Permissions) bool { return p.UpdateOrders })
	viewInv := handlers.RequirePermission(func(p domain.Permissions) bool { return p.ViewInventory })
	updateInv := handlers.RequirePermission(func(p domain.Permissions) bool { return p.UpdateInventory })
	manageRooms := handlers.RequirePermission(func(p domain.Permissions) bool { return p.ManageRooms })
	manageGuests := handlers.RequirePermission(func(p domain.Permissions) bool { return p.ManageGuests })

	staff.Get("/orders", viewOrders, deps.StaffHandler.OrdersPage)
	staff.Post("/orders/:id/status", updateOrders, deps.StaffHandler.UpdateOrderStatus)
	staff.Get("/inventory", viewInv, deps.StaffHandler.InventoryPage)
	staff.Post("/inventory", updateInv, deps.StaffHandler.AddInventoryItem)
	staff.Post("/inventory/:id/stock", updateInv, deps.StaffHandler.AdjustStock)
	staff.Get("/purchase-orders", viewInv, deps.StaffHandler.PurchaseOrdersPage)
	staff.Post("/purchase-orders", updateInv, deps.StaffHandler.GeneratePurchaseOrder)
	staff.Get("/rooms", manageRooms, deps.StaffHandler.RoomsPage)
	staff.Get("/guests", manageGuests, deps.StaffHandler.GuestsPage)
	staff.Get("/notifications", deps.StaffHandler.NotificationsPage)
	staff.Post("/notifications/:id/read", deps.StaffHandler.MarkNotificationRead)
	staff.Post("/notifications/clear", deps.StaffHandler.ClearNotifications)
	api.Get("/notifications/unread", handlers.RequireStaff(auth), deps.StaffHandler.UnreadCount)

	// Health & 404
	app.Get("/healthz", func(c *fiber.Ctx) error { return c.JSON(fiber.Map{"ok": true}) })
	app.Use(func(c *fiber.Ctx) error {
		return c.Status(404).Render("notfound", fiber.Map{"Message": "Page not found"})
	})

	log.Fatal(app.Listen(":" + cfg.Port))
}

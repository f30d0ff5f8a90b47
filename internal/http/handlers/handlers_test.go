package handlers_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	html "github.com/gofiber/template/html/v2"

	"harborview/internal/domain"
	"harborview/internal/http/handlers"
	applog "harborview/internal/log"
	"harborview/internal/store"
)

func testApp(t *testing.T) (*fiber.App, *handlers.Deps) {
	t.Helper()
	st, err := store.Open(":memory:")
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = st.Close() })

	engine := html.New("../../../web/templates", ".html")
	app := fiber.New(fiber.Config{Views: engine})
	app.Use(requestid.New())

	deps := handlers.NewDeps(st)
	auth := deps.AuthHandler.Auth

	app.Get("/", deps.MenuHandler.Home)
	app.Get("/cart", deps.CartHandler.View)
	app.Post("/cart", deps.CartHandler.Add)
	app.Get("/api/v1/cart/count", deps.CartHandler.Count)
	app.Post("/orders", deps.OrderHandler.Place)
	app.Post("/services", deps.OrderHandler.RequestService)
	app.Get("/login", deps.AuthHandler.LoginForm)
	app.Post("/login", deps.AuthHandler.Login)

	staff := app.Group("/staff", handlers.RequireStaff(auth))
	staff.Get("/", deps.StaffHandler.Dashboard)
	staff.Post("/inventory",
		handlers.RequirePermission(func(p domain.Permissions) bool { return p.UpdateInventory }),
		deps.StaffHandler.AddInventoryItem)
	staff.Post("/orders/:id/status",
		handlers.RequirePermission(func(p domain.Permissions) bool { return p.UpdateOrders }),
		deps.StaffHandler.UpdateOrderStatus)

	return app, deps
}

func form(method, target string, vals url.Values, cookies ...*http.Cookie) *http.Request {
	req := httptest.NewRequest(method, target, strings.NewReader(vals.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	for _, c := range cookies {
		req.AddCookie(c)
	}
	return req
}

func sidCookie(resp *http.Response) *http.Cookie {
	for _, c := range resp.Cookies() {
		if c.Name == "sid" {
			return c
		}
	}
	return nil
}

func TestCartAddAndCount(t *testing.T) {
	app, _ := testApp(t)

	resp, err := app.Test(form("POST", "/cart", url.Values{"itemId": {"1"}, "qty": {"2"}}))
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != fiber.StatusFound {
		t.Fatalf("want redirect to /cart, got %d", resp.StatusCode)
	}
	sid := sidCookie(resp)
	if sid == nil {
		t.Fatal("no sid cookie minted")
	}

	req := httptest.NewRequest("GET", "/api/v1/cart/count", nil)
	req.AddCookie(sid)
	resp, err = app.Test(req)
	if err != nil {
		t.Fatal(err)
	}
	body, _ := io.ReadAll(resp.Body)
	if !strings.Contains(string(body), `"count":2`) {
		t.Fatalf("want count 2, body=%s", body)
	}
}

func TestCartAddUnknownMenuItem(t *testing.T) {
	app, _ := testApp(t)

	resp, err := app.Test(form("POST", "/cart", url.Values{"itemId": {"999"}, "qty": {"1"}}))
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != fiber.StatusNotFound {
		t.Fatalf("want 404, got %d", resp.StatusCode)
	}
}

func TestPlaceOrderEmptyCartIsBadRequest(t *testing.T) {
	app, _ := testApp(t)

	resp, err := app.Test(form("POST", "/orders", url.Values{}))
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != fiber.StatusBadRequest {
		t.Fatalf("want 400 for empty cart, got %d", resp.StatusCode)
	}
}

func TestUnknownServiceIsBadRequest(t *testing.T) {
	app, _ := testApp(t)

	resp, err := app.Test(form("POST", "/services", url.Values{"service": {"valet"}}))
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != fiber.StatusBadRequest {
		t.Fatalf("want 400, got %d", resp.StatusCode)
	}
}

func TestStaffRequiresLogin(t *testing.T) {
	app, _ := testApp(t)

	resp, err := app.Test(httptest.NewRequest("GET", "/staff/", nil))
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != fiber.StatusFound {
		t.Fatalf("want redirect to /login, got %d", resp.StatusCode)
	}
	if loc := resp.Header.Get("Location"); loc != "/login" {
		t.Fatalf("want /login, got %q", loc)
	}
}

func login(t *testing.T, app *fiber.App, username, password string) *http.Cookie {
	t.Helper()
	resp, err := app.Test(form("POST", "/login", url.Values{"username": {username}, "password": {password}}))
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != fiber.StatusFound {
		t.Fatalf("login failed with %d", resp.StatusCode)
	}
	sid := sidCookie(resp)
	if sid == nil {
		t.Fatal("no sid cookie after login")
	}
	return sid
}

func TestKitchenCannotUpdateInventory(t *testing.T) {
	app, _ := testApp(t)
	sid := login(t, app, "kitchen", "K1tchen!!")

	resp, err := app.Test(form("POST", "/staff/inventory", url.Values{
		"name": {"Napkins"}, "currentStock": {"10"}, "minStock": {"2"}, "unit": {"packs"},
	}, sid))
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != fiber.StatusForbidden {
		t.Fatalf("kitchen must not update inventory, got %d", resp.StatusCode)
	}
}

func TestFrontDeskAdvancesOrder(t *testing.T) {
	app, deps := testApp(t)

	// guest places an order
	resp, err := app.Test(form("POST", "/cart", url.Values{"itemId": {"1"}, "qty": {"1"}}))
	if err != nil {
		t.Fatal(err)
	}
	guest := sidCookie(resp)
	if _, err := app.Test(form("POST", "/orders", url.Values{}, guest)); err != nil {
		t.Fatal(err)
	}

	orders, err := deps.OrderHandler.Orders.Filter("pending", "food")
	if err != nil {
		t.Fatal(err)
	}
	if len(orders) != 1 {
		t.Fatalf("want one pending order, got %+v", orders)
	}

	staffSid := login(t, app, "frontdesk", "Fr0ntDesk!")
	resp, err = app.Test(form("POST", "/staff/orders/"+orders[0].ID+"/status", url.Values{"status": {"preparing"}}, staffSid))
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != fiber.StatusFound {
		t.Fatalf("want redirect after update, got %d", resp.StatusCode)
	}

	o, err := deps.OrderHandler.Orders.Get(orders[0].ID)
	if err != nil {
		t.Fatal(err)
	}
	if o.Status != domain.StatusPreparing {
		t.Fatalf("want preparing, got %s", o.Status)
	}
}

// Friendly error surface, no internal leakage.
func TestErrorHandlerFriendlyMessage(t *testing.T) {
	engine := html.New("../../../web/templates", ".html")
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
	app.Use(requestid.New())
	app.Get("/err", func(c *fiber.Ctx) error {
		return fiber.NewError(fiber.StatusInternalServerError, "db timeout: secret trace")
	})

	resp, err := app.Test(httptest.NewRequest("GET", "/err", nil))
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != fiber.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", resp.StatusCode)
	}
	body, _ := io.ReadAll(resp.Body)
	s := string(body)
	if !strings.Contains(s, "Something went wrong") {
		t.Fatalf("friendly message missing; body=%s", s)
	}
	if strings.Contains(s, "db timeout") || strings.Contains(s, "secret") {
		t.Fatalf("internal details leaked; body=%s", s)
	}
}

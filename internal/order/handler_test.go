package order

import (
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"

	"github.com/minseo040526/reccomendationaisystem/internal/customer"
)

func newOrderApp(custSeed []customer.Customer) (*fiber.App, *customer.Service) {
	customers := customer.NewService(customer.NewInMemoryRepository(custSeed))
	handler := NewHandler(NewService(NewInMemoryRepository()), customers)
	app := fiber.New()
	handler.RegisterPublicRoutes(app)
	return app, customers
}

func TestPlaceOrderUpdatesLedger(t *testing.T) {
	app, customers := newOrderApp(nil)

	body := `{"phone":"01012345678","names":["croissant","brownie"],"totalPrice":7700}`
	req := httptest.NewRequest("POST", "/api/v1/orders", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	res, err := app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if res.StatusCode != fiber.StatusCreated {
		t.Fatalf("expected 201, got %d", res.StatusCode)
	}

	var placed Order
	if err := json.NewDecoder(res.Body).Decode(&placed); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if placed.Code == "" || !strings.HasPrefix(placed.Code, "LUCY-") {
		t.Fatalf("unexpected order code %q", placed.Code)
	}
	if placed.Status != "placed" {
		t.Fatalf("unexpected status %q", placed.Status)
	}

	// ledger side effects: one visit recorded, order linked
	c, err := customers.Lookup("01012345678")
	if err != nil {
		t.Fatalf("customer not registered by order: %v", err)
	}
	if c.Visits != 1 {
		t.Fatalf("expected 1 visit, got %d", c.Visits)
	}
	if len(c.OrderIDs) != 1 || c.OrderIDs[0] != placed.ID {
		t.Fatalf("order not linked to ledger: %v", c.OrderIDs)
	}
}

func TestPlaceOrderBurnsCoupon(t *testing.T) {
	app, customers := newOrderApp([]customer.Customer{{Phone: "010", Coupons: 1}})

	body := `{"phone":"010","names":["scone"],"totalPrice":2800,"useCoupon":true}`
	req := httptest.NewRequest("POST", "/api/v1/orders", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	res, err := app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if res.StatusCode != fiber.StatusCreated {
		t.Fatalf("expected 201, got %d", res.StatusCode)
	}

	c, _ := customers.Lookup("010")
	if c.Coupons != 0 {
		t.Fatalf("expected coupon burned, got %d", c.Coupons)
	}
}

func TestFailedOrderKeepsCoupon(t *testing.T) {
	app, customers := newOrderApp([]customer.Customer{{Phone: "010", Coupons: 1}})

	// invalid order: no items. the coupon balance must survive the 400.
	body := `{"phone":"010","names":[],"totalPrice":0,"useCoupon":true}`
	req := httptest.NewRequest("POST", "/api/v1/orders", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	res, err := app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if res.StatusCode != fiber.StatusBadRequest {
		t.Fatalf("expected 400 for empty order, got %d", res.StatusCode)
	}

	c, err := customers.Lookup("010")
	if err != nil {
		t.Fatalf("lookup failed: %v", err)
	}
	if c.Coupons != 1 {
		t.Fatalf("coupon burned on failed order: balance = %d, want 1", c.Coupons)
	}
}

func TestPlaceOrderCouponMissing(t *testing.T) {
	app, _ := newOrderApp([]customer.Customer{{Phone: "010"}})

	body := `{"phone":"010","names":["scone"],"totalPrice":2800,"useCoupon":true}`
	req := httptest.NewRequest("POST", "/api/v1/orders", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	res, err := app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if res.StatusCode != fiber.StatusBadRequest {
		t.Fatalf("expected 400 without coupon, got %d", res.StatusCode)
	}
}

func TestPlaceOrderEmptyItems(t *testing.T) {
	app, _ := newOrderApp(nil)

	body := `{"phone":"010","names":[],"totalPrice":0}`
	req := httptest.NewRequest("POST", "/api/v1/orders", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	res, err := app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if res.StatusCode != fiber.StatusBadRequest {
		t.Fatalf("expected 400 for empty order, got %d", res.StatusCode)
	}
}

func TestListOrdersByPhone(t *testing.T) {
	app, _ := newOrderApp(nil)

	for _, body := range []string{
		`{"phone":"010","names":["croissant"],"totalPrice":3500}`,
		`{"phone":"010","names":["brownie"],"totalPrice":4200}`,
		`{"phone":"011","names":["scone"],"totalPrice":2800}`,
	} {
		req := httptest.NewRequest("POST", "/api/v1/orders", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		if _, err := app.Test(req); err != nil {
			t.Fatalf("seed order failed: %v", err)
		}
	}

	res, err := app.Test(httptest.NewRequest("GET", "/api/v1/orders/010", nil))
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	var orders []Order
	if err := json.NewDecoder(res.Body).Decode(&orders); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(orders) != 2 {
		t.Fatalf("expected 2 orders for 010, got %d", len(orders))
	}
	// newest first
	if orders[0].Names[0] != "brownie" {
		t.Fatalf("expected newest order first, got %v", orders[0].Names)
	}
}

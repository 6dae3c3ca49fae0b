package order

import (
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
)

func newTestApp() (*fiber.App, *Service) {
	service := NewService(NewInMemoryRepository())
	h := NewHandler(service)
	app := fiber.New()
	h.RegisterPublicRoutes(app)
	h.RegisterProtectedRoutes(app)
	return app, service
}

const checkoutBody = `{
	"customerName": "Ayesha Khan",
	"customerEmail": "ayesha@example.com",
	"customerAddress": "12 Mall Road",
	"customerCity": "Lahore",
	"customerState": "Punjab",
	"customerZip": "54000",
	"paymentMethod": "jazzcash",
	"items": "[{\"productId\":\"p1\",\"quantity\":2}]",
	"subtotal": "1800.00",
	"tax": "0.00",
	"shipping": "180.00",
	"total": "1980.00"
}`

func TestCreateOrderRoute(t *testing.T) {
	app, _ := newTestApp()

	req := httptest.NewRequest("POST", "/api/orders", strings.NewReader(checkoutBody))
	req.Header.Set("Content-Type", "application/json")
	res, err := app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if res.StatusCode != fiber.StatusCreated {
		t.Fatalf("expected 201, got %d", res.StatusCode)
	}

	var created Order
	if err := json.NewDecoder(res.Body).Decode(&created); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if created.PaymentStatus != PaymentProcessing {
		t.Fatalf("expected processing payment status for jazzcash, got %q", created.PaymentStatus)
	}
	if !strings.HasPrefix(created.OrderNumber, "ORD") {
		t.Fatalf("unexpected order number %q", created.OrderNumber)
	}

	// order detail is publicly addressable by id
	res2, err := app.Test(httptest.NewRequest("GET", "/api/orders/"+created.ID, nil))
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if res2.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200, got %d", res2.StatusCode)
	}
}

func TestCreateOrderRoute_MissingFields(t *testing.T) {
	app, _ := newTestApp()

	req := httptest.NewRequest("POST", "/api/orders", strings.NewReader(`{"customerName":"Ayesha"}`))
	req.Header.Set("Content-Type", "application/json")
	res, err := app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if res.StatusCode != fiber.StatusBadRequest {
		t.Fatalf("expected 400, got %d", res.StatusCode)
	}

	var body struct {
		Errors map[string]string `json:"errors"`
	}
	if err := json.NewDecoder(res.Body).Decode(&body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if _, ok := body.Errors["customerEmail"]; !ok {
		t.Fatalf("expected customerEmail error, got %+v", body.Errors)
	}
}

func TestGetOrderRoute_NotFound(t *testing.T) {
	app, _ := newTestApp()

	res, err := app.Test(httptest.NewRequest("GET", "/api/orders/ghost", nil))
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if res.StatusCode != fiber.StatusNotFound {
		t.Fatalf("expected 404, got %d", res.StatusCode)
	}
}

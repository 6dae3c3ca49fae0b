package admin

import (
	"encoding/json"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	jwtware "github.com/gofiber/jwt/v2"
	"github.com/littlecharmz/boutique-backend/internal/category"
	"github.com/littlecharmz/boutique-backend/internal/order"
	"github.com/littlecharmz/boutique-backend/internal/product"
)

const testSecret = "test-secret"

// newTestApp wires the admin handler behind the same jwtware middleware main
// uses: login is public, stats and credential updates require a token.
func newTestApp(t *testing.T) (*fiber.App, *order.Service) {
	t.Helper()
	service, err := NewService("admin@littlecharmz.com", "admin123", testSecret)
	if err != nil {
		t.Fatalf("service: %v", err)
	}

	dir := t.TempDir()
	products := product.NewService(product.NewFileRepository(filepath.Join(dir, "products.json")))
	categories := category.NewService(category.NewFileRepository(filepath.Join(dir, "categories.json")))
	orders := order.NewService(order.NewInMemoryRepository())
	h := NewHandler(service, products, categories, orders)

	app := fiber.New()
	h.RegisterPublicRoutes(app)
	app.Use(jwtware.New(jwtware.Config{SigningKey: []byte(testSecret)}))
	h.RegisterProtectedRoutes(app)
	return app, orders
}

func login(t *testing.T, app *fiber.App, email, password string) (string, int) {
	t.Helper()
	body := `{"email":"` + email + `","password":"` + password + `"}`
	req := httptest.NewRequest("POST", "/api/admin/login", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	res, err := app.Test(req)
	if err != nil {
		t.Fatalf("login request failed: %v", err)
	}
	var payload struct {
		Token string `json:"token"`
	}
	_ = json.NewDecoder(res.Body).Decode(&payload)
	return payload.Token, res.StatusCode
}

func TestLoginAndProtectedStats(t *testing.T) {
	app, orders := newTestApp(t)

	// without a token the middleware rejects the request
	res, err := app.Test(httptest.NewRequest("GET", "/api/admin/stats", nil))
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if res.StatusCode != fiber.StatusUnauthorized && res.StatusCode != fiber.StatusBadRequest {
		t.Fatalf("expected auth failure without token, got %d", res.StatusCode)
	}

	token, status := login(t, app, "admin@littlecharmz.com", "admin123")
	if status != fiber.StatusOK || token == "" {
		t.Fatalf("expected successful login with token, got status=%d token=%q", status, token)
	}

	_, err = orders.Create(order.Draft{
		CustomerName: "A", CustomerEmail: "a@b.c", CustomerAddress: "x",
		CustomerCity: "Lahore", CustomerState: "Punjab", CustomerZip: "54000",
		PaymentMethod: order.PaymentCOD, Items: "[]",
		Subtotal: "100.00", Tax: "0", Shipping: "50.00", Total: "150.50",
	})
	if err != nil {
		t.Fatal(err)
	}

	req := httptest.NewRequest("GET", "/api/admin/stats", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	res, err = app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if res.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200 with token, got %d", res.StatusCode)
	}

	var stats struct {
		TotalOrders  int    `json:"totalOrders"`
		TotalRevenue string `json:"totalRevenue"`
	}
	if err := json.NewDecoder(res.Body).Decode(&stats); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if stats.TotalOrders != 1 || stats.TotalRevenue != "150.50" {
		t.Fatalf("unexpected stats %+v", stats)
	}
}

func TestLogin_BadCredentials(t *testing.T) {
	app, _ := newTestApp(t)
	_, status := login(t, app, "admin@littlecharmz.com", "wrong")
	if status != fiber.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", status)
	}
}

func TestUpdateCredentials(t *testing.T) {
	app, _ := newTestApp(t)
	token, _ := login(t, app, "admin@littlecharmz.com", "admin123")

	body := `{"currentEmail":"admin@littlecharmz.com","currentPassword":"admin123","newEmail":"owner@littlecharmz.com","newPassword":"s3cret"}`
	req := httptest.NewRequest("POST", "/api/admin/update-credentials", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)
	res, err := app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if res.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200, got %d", res.StatusCode)
	}

	// old credentials no longer work, new ones do
	_, status := login(t, app, "admin@littlecharmz.com", "admin123")
	if status != fiber.StatusUnauthorized {
		t.Fatalf("expected old credentials rejected, got %d", status)
	}
	newToken, status := login(t, app, "owner@littlecharmz.com", "s3cret")
	if status != fiber.StatusOK || newToken == "" {
		t.Fatalf("expected new credentials accepted, got %d", status)
	}
}

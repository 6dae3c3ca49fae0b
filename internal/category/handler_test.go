package category

import (
	"encoding/json"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
)

func newTestApp(t *testing.T) (*fiber.App, *Service) {
	t.Helper()
	service := NewService(NewFileRepository(filepath.Join(t.TempDir(), "categories.json")))
	h := NewHandler(service, nil)
	app := fiber.New()
	h.RegisterPublicRoutes(app)
	h.RegisterProtectedRoutes(app)
	return app, service
}

func TestCategoryRoutes_CreateAndList(t *testing.T) {
	app, _ := newTestApp(t)

	req := httptest.NewRequest("POST", "/api/categories", strings.NewReader(`{"name":"Hairbands","image":"/uploads/h.jpg"}`))
	req.Header.Set("Content-Type", "application/json")
	res, err := app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if res.StatusCode != fiber.StatusCreated {
		t.Fatalf("expected 201, got %d", res.StatusCode)
	}

	res2, err := app.Test(httptest.NewRequest("GET", "/api/categories", nil))
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	var categories []Category
	if err := json.NewDecoder(res2.Body).Decode(&categories); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(categories) != 1 || categories[0].Name != "Hairbands" {
		t.Fatalf("unexpected categories %+v", categories)
	}
}

func TestCategoryRoutes_CreateWithoutImage(t *testing.T) {
	app, _ := newTestApp(t)

	req := httptest.NewRequest("POST", "/api/categories", strings.NewReader(`{"name":"Hairbands"}`))
	req.Header.Set("Content-Type", "application/json")
	res, err := app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if res.StatusCode != fiber.StatusBadRequest {
		t.Fatalf("expected 400, got %d", res.StatusCode)
	}
}

func TestCategoryRoutes_UpdateNotFound(t *testing.T) {
	app, _ := newTestApp(t)

	req := httptest.NewRequest("PUT", "/api/categories/ghost", strings.NewReader(`{"name":"X"}`))
	req.Header.Set("Content-Type", "application/json")
	res, err := app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if res.StatusCode != fiber.StatusNotFound {
		t.Fatalf("expected 404, got %d", res.StatusCode)
	}
}

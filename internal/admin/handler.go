package admin

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/littlecharmz/boutique-backend/internal/category"
	"github.com/littlecharmz/boutique-backend/internal/order"
	"github.com/littlecharmz/boutique-backend/internal/product"
)

// Sources for the dashboard stats; satisfied by the respective services.
type (
	ProductSource interface {
		List() ([]product.Product, error)
	}
	CategorySource interface {
		List() ([]category.Category, error)
	}
	OrderSource interface {
		List() []order.Order
	}
)

type Handler struct {
	service    *Service
	products   ProductSource
	categories CategorySource
	orders     OrderSource
}

func NewHandler(service *Service, products ProductSource, categories CategorySource, orders OrderSource) *Handler {
	return &Handler{service: service, products: products, categories: categories, orders: orders}
}

func (h *Handler) RegisterPublicRoutes(app *fiber.App) {
	app.Post("/api/admin/login", h.login)
}

func (h *Handler) RegisterProtectedRoutes(app *fiber.App) {
	app.Post("/api/admin/update-credentials", h.updateCredentials)
	app.Get("/api/admin/stats", h.getStats)
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (h *Handler) login(c *fiber.Ctx) error {
	payload := new(loginRequest)
	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}

	token, err := h.service.Login(payload.Email, payload.Password)
	if err != nil {
		if errors.Is(err, ErrInvalidCredentials) {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "Invalid credentials"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "failed to generate token"})
	}
	return c.JSON(fiber.Map{"success": true, "token": token})
}

type updateCredentialsRequest struct {
	CurrentEmail    string `json:"currentEmail"`
	CurrentPassword string `json:"currentPassword"`
	NewEmail        string `json:"newEmail"`
	NewPassword     string `json:"newPassword"`
}

func (h *Handler) updateCredentials(c *fiber.Ctx) error {
	payload := new(updateCredentialsRequest)
	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}

	err := h.service.UpdateCredentials(payload.CurrentEmail, payload.CurrentPassword, payload.NewEmail, payload.NewPassword)
	if err != nil {
		if errors.Is(err, ErrInvalidCredentials) {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "Current credentials are incorrect"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Error updating credentials"})
	}
	return c.JSON(fiber.Map{"success": true, "message": "Credentials updated successfully"})
}

func (h *Handler) getStats(c *fiber.Ctx) error {
	products, err := h.products.List()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Error fetching stats"})
	}
	categories, err := h.categories.List()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Error fetching stats"})
	}
	orders := h.orders.List()

	var revenue float64
	for _, ord := range orders {
		if total, err := strconv.ParseFloat(ord.Total, 64); err == nil {
			revenue += total
		}
	}

	return c.JSON(fiber.Map{
		"totalProducts":   len(products),
		"totalOrders":     len(orders),
		"totalCategories": len(categories),
		"totalRevenue":    strconv.FormatFloat(revenue, 'f', 2, 64),
	})
}

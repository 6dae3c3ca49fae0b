package order

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterPublicRoutes(app *fiber.App) {
	app.Post("/api/orders", h.createOrder)
	app.Get("/api/orders/:id", h.getOrder)
}

func (h *Handler) RegisterProtectedRoutes(app *fiber.App) {
	app.Get("/api/orders", h.listOrders)
}

type createRequest struct {
	CustomerName    string `json:"customerName"`
	CustomerEmail   string `json:"customerEmail"`
	CustomerPhone   string `json:"customerPhone"`
	CustomerAddress string `json:"customerAddress"`
	CustomerCity    string `json:"customerCity"`
	CustomerState   string `json:"customerState"`
	CustomerZip     string `json:"customerZip"`
	PaymentMethod   string `json:"paymentMethod"`
	Items           string `json:"items"`
	Subtotal        string `json:"subtotal"`
	Tax             string `json:"tax"`
	Shipping        string `json:"shipping"`
	Total           string `json:"total"`
}

// validate enforces the checkout schema: every contact/address field except
// phone is required, and the payment method must be a known value.
func (p *createRequest) validate() map[string]string {
	errs := map[string]string{}
	required := map[string]string{
		"customerName":    p.CustomerName,
		"customerEmail":   p.CustomerEmail,
		"customerAddress": p.CustomerAddress,
		"customerCity":    p.CustomerCity,
		"customerState":   p.CustomerState,
		"customerZip":     p.CustomerZip,
		"items":           p.Items,
		"subtotal":        p.Subtotal,
		"tax":             p.Tax,
		"shipping":        p.Shipping,
		"total":           p.Total,
	}
	for field, v := range required {
		if strings.TrimSpace(v) == "" {
			errs[field] = field + " is required"
		}
	}
	switch p.PaymentMethod {
	case "":
		p.PaymentMethod = PaymentCOD
	case PaymentCOD, PaymentJazzCash, PaymentCard, PaymentBank:
	default:
		errs["paymentMethod"] = "invalid payment method"
	}
	return errs
}

func (h *Handler) createOrder(c *fiber.Ctx) error {
	payload := new(createRequest)
	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}
	if ves := payload.validate(); len(ves) > 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid order data", "errors": ves})
	}

	created, err := h.service.Create(Draft{
		CustomerName:    payload.CustomerName,
		CustomerEmail:   payload.CustomerEmail,
		CustomerPhone:   payload.CustomerPhone,
		CustomerAddress: payload.CustomerAddress,
		CustomerCity:    payload.CustomerCity,
		CustomerState:   payload.CustomerState,
		CustomerZip:     payload.CustomerZip,
		PaymentMethod:   payload.PaymentMethod,
		Items:           payload.Items,
		Subtotal:        payload.Subtotal,
		Tax:             payload.Tax,
		Shipping:        payload.Shipping,
		Total:           payload.Total,
	})
	if err != nil {
		if errors.Is(err, ErrInvalidPaymentMethod) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid order data"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Error creating order"})
	}
	return c.Status(fiber.StatusCreated).JSON(created)
}

func (h *Handler) listOrders(c *fiber.Ctx) error {
	return c.JSON(h.service.List())
}

func (h *Handler) getOrder(c *fiber.Ctx) error {
	ord, err := h.service.GetByID(c.Params("id"))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "Order not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Error fetching order"})
	}
	return c.JSON(ord)
}

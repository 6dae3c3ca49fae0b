package cart

import (
	"errors"

	"github.com/gofiber/fiber/v2"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterPublicRoutes(app *fiber.App) {
	app.Post("/api/cart", h.addToCart)
	// clear before :itemId so "clear" is not captured as an item id
	app.Delete("/api/cart/clear/:sessionId", h.clearCart)
	app.Get("/api/cart/:sessionId", h.getCart)
	app.Patch("/api/cart/:itemId", h.updateCartItem)
	app.Delete("/api/cart/:itemId", h.removeFromCart)
}

func (h *Handler) getCart(c *fiber.Ctx) error {
	return c.JSON(h.service.ListBySession(c.Params("sessionId")))
}

type addRequest struct {
	SessionID     string `json:"sessionId"`
	ProductID     string `json:"productId"`
	Quantity      int    `json:"quantity"`
	SelectedSize  string `json:"selectedSize"`
	SelectedColor string `json:"selectedColor"`
}

func (h *Handler) addToCart(c *fiber.Ctx) error {
	payload := new(addRequest)
	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}
	if payload.Quantity == 0 {
		payload.Quantity = 1
	}
	if payload.ProductID == "" || payload.SessionID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Product ID and session ID are required"})
	}

	item, err := h.service.Add(Item{
		SessionID:     payload.SessionID,
		ProductID:     payload.ProductID,
		Quantity:      payload.Quantity,
		SelectedSize:  payload.SelectedSize,
		SelectedColor: payload.SelectedColor,
	})
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(item)
}

type updateRequest struct {
	Quantity int `json:"quantity"`
}

func (h *Handler) updateCartItem(c *fiber.Ctx) error {
	payload := new(updateRequest)
	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}

	item, err := h.service.UpdateQuantity(c.Params("itemId"), payload.Quantity)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "Cart item not found"})
		}
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}
	return c.JSON(item)
}

func (h *Handler) removeFromCart(c *fiber.Ctx) error {
	if !h.service.Remove(c.Params("itemId")) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "Cart item not found"})
	}
	return c.JSON(fiber.Map{"message": "Item removed from cart"})
}

func (h *Handler) clearCart(c *fiber.Ctx) error {
	h.service.Clear(c.Params("sessionId"))
	return c.JSON(fiber.Map{"message": "Cart cleared"})
}

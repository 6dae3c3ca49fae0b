package shipping

import "github.com/gofiber/fiber/v2"

type Handler struct {
	store *Store
}

func NewHandler(store *Store) *Handler {
	return &Handler{store: store}
}

func (h *Handler) RegisterPublicRoutes(app *fiber.App) {
	// checkout needs the rates without authentication
	app.Get("/api/shipping", h.getSettings)
}

func (h *Handler) RegisterProtectedRoutes(app *fiber.App) {
	app.Get("/api/admin/shipping", h.getSettings)
	app.Put("/api/admin/shipping", h.updateSettings)
}

func (h *Handler) getSettings(c *fiber.Ctx) error {
	return c.JSON(h.store.Get())
}

func (h *Handler) updateSettings(c *fiber.Ctx) error {
	patch := new(Patch)
	if err := c.BodyParser(patch); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}
	return c.JSON(h.store.Update(*patch))
}

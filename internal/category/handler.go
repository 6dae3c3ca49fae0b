package category

import (
	"errors"
	"mime/multipart"
	"strings"

	"github.com/gofiber/fiber/v2"
)

// ImageSaver places an uploaded file and returns its /uploads reference.
type ImageSaver interface {
	Save(c *fiber.Ctx, file *multipart.FileHeader) (string, error)
}

type Handler struct {
	service *Service
	uploads ImageSaver
}

func NewHandler(service *Service, uploads ImageSaver) *Handler {
	return &Handler{service: service, uploads: uploads}
}

func (h *Handler) RegisterPublicRoutes(app *fiber.App) {
	app.Get("/api/categories", h.listCategories)
}

func (h *Handler) RegisterProtectedRoutes(app *fiber.App) {
	app.Post("/api/categories", h.createCategory)
	app.Put("/api/categories/:id", h.updateCategory)
	app.Delete("/api/categories/:id", h.deleteCategory)
}

func (h *Handler) listCategories(c *fiber.Ctx) error {
	categories, err := h.service.List()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Error fetching categories"})
	}
	return c.JSON(categories)
}

type categoryRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Image       string `json:"image"`
}

// resolveImage prefers an uploaded file over a URL passed in the body.
func (h *Handler) resolveImage(c *fiber.Ctx, bodyImage string) string {
	if h.uploads != nil {
		if file, err := c.FormFile("image"); err == nil && file != nil {
			if url, err := h.uploads.Save(c, file); err == nil {
				return url
			}
		}
	}
	return strings.TrimSpace(bodyImage)
}

func (h *Handler) createCategory(c *fiber.Ctx) error {
	payload := new(categoryRequest)
	if form, err := c.MultipartForm(); err == nil && form != nil {
		payload.Name = c.FormValue("name")
		payload.Description = c.FormValue("description")
		payload.Image = c.FormValue("image")
	} else if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}
	if payload.Name == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid category data"})
	}

	created, err := h.service.Create(Draft{
		Name:        payload.Name,
		Description: payload.Description,
		Image:       h.resolveImage(c, payload.Image),
	})
	if err != nil {
		if errors.Is(err, ErrNoImage) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid category data"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Error creating category"})
	}
	return c.Status(fiber.StatusCreated).JSON(created)
}

func (h *Handler) updateCategory(c *fiber.Ctx) error {
	var patch Patch
	if form, err := c.MultipartForm(); err == nil && form != nil {
		if vals, ok := form.Value["name"]; ok && len(vals) > 0 && vals[0] != "" {
			patch.Name = &vals[0]
		}
		if vals, ok := form.Value["description"]; ok && len(vals) > 0 {
			patch.Description = &vals[0]
		}
		if img := h.resolveImage(c, c.FormValue("image")); img != "" {
			patch.Image = &img
		}
	} else {
		payload := new(categoryRequest)
		if err := c.BodyParser(payload); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
		}
		if payload.Name != "" {
			patch.Name = &payload.Name
		}
		if payload.Description != "" {
			patch.Description = &payload.Description
		}
		if img := strings.TrimSpace(payload.Image); img != "" {
			patch.Image = &img
		}
	}

	updated, err := h.service.Update(c.Params("id"), patch)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "Category not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Error updating category"})
	}
	return c.JSON(updated)
}

func (h *Handler) deleteCategory(c *fiber.Ctx) error {
	removed, err := h.service.Delete(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Error deleting category"})
	}
	if !removed {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "Category not found"})
	}
	return c.JSON(fiber.Map{"message": "Category deleted successfully"})
}

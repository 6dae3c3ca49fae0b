package product

import (
	"encoding/json"
	"errors"
	"mime/multipart"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
)

// ImageSaver places an uploaded file on disk and returns its public
// /uploads/... reference path. Implemented by internal/upload.
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
	app.Get("/api/products", h.listProducts)
	// specific paths before :id, product ids are opaque strings
	app.Get("/api/products/new-arrivals", h.getNewArrivals)
	app.Get("/api/products/sale", h.getSaleProducts)
	app.Get("/api/products/:id", h.getProduct)
}

func (h *Handler) RegisterProtectedRoutes(app *fiber.App) {
	app.Post("/api/products", h.createProduct)
	app.Put("/api/products/:id", h.updateProduct)
	app.Delete("/api/products/:id", h.deleteProduct)
}

type pagination struct {
	CurrentPage   int  `json:"currentPage"`
	TotalPages    int  `json:"totalPages"`
	TotalProducts int  `json:"totalProducts"`
	HasMore       bool `json:"hasMore"`
}

func (h *Handler) listProducts(c *fiber.Ctx) error {
	products, err := h.selectByCategory(c.Query("category"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Error fetching products"})
	}

	if c.Query("featured") == "true" {
		filtered := make([]Product, 0, len(products))
		for _, p := range products {
			if p.Featured {
				filtered = append(filtered, p)
			}
		}
		products = filtered
	}

	page := queryInt(c, "page", 1)
	limit := queryInt(c, "limit", 12)
	total := len(products)
	offset := (page - 1) * limit
	end := offset + limit
	if offset > total {
		offset = total
	}
	if end > total {
		end = total
	}

	totalPages := 0
	if limit > 0 {
		totalPages = (total + limit - 1) / limit
	}
	return c.JSON(fiber.Map{
		"products": products[offset:end],
		"pagination": pagination{
			CurrentPage:   page,
			TotalPages:    totalPages,
			TotalProducts: total,
			HasMore:       end < total,
		},
	})
}

// selectByCategory maps the category query param onto the store filters:
// empty/"all" lists everything, "new-arrivals" and "sale" select the flag
// filters, a comma-separated value selects the union of those categories.
func (h *Handler) selectByCategory(category string) ([]Product, error) {
	switch {
	case category == "" || category == "all":
		return h.service.List()
	case category == "new-arrivals":
		return h.service.ListNewArrivals()
	case category == "sale":
		return h.service.ListOnSale()
	case strings.Contains(category, ","):
		wanted := map[string]bool{}
		for _, name := range strings.Split(category, ",") {
			wanted[strings.TrimSpace(name)] = true
		}
		all, err := h.service.List()
		if err != nil {
			return nil, err
		}
		out := make([]Product, 0, len(all))
		for _, p := range all {
			if wanted[p.Category] {
				out = append(out, p)
			}
		}
		return out, nil
	default:
		return h.service.ListByCategory(category)
	}
}

func (h *Handler) getNewArrivals(c *fiber.Ctx) error {
	products, err := h.service.ListNewArrivals()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Error fetching new arrivals"})
	}
	return c.JSON(products)
}

func (h *Handler) getSaleProducts(c *fiber.Ctx) error {
	products, err := h.service.ListOnSale()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Error fetching sale products"})
	}
	return c.JSON(products)
}

func (h *Handler) getProduct(c *fiber.Ctx) error {
	p, err := h.service.GetByID(c.Params("id"))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "Product not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Error fetching product"})
	}
	return c.JSON(p)
}

// createRequest is the JSON body alternative to multipart form submission.
type createRequest struct {
	Name          string   `json:"name"`
	Description   string   `json:"description"`
	Category      string   `json:"category"`
	Price         string   `json:"price"`
	OriginalPrice string   `json:"originalPrice"`
	Discount      int      `json:"discount"`
	Stock         int      `json:"stock"`
	Image         string   `json:"image"`
	Images        []string `json:"images"`
	Color         string   `json:"color"`
	Colors        []string `json:"colors"`
	ColorVariants *string  `json:"colorVariants"`
	Sizes         []string `json:"sizes"`
	Featured      bool     `json:"featured"`
	IsNew         bool     `json:"isNew"`
}

func (h *Handler) createProduct(c *fiber.Ctx) error {
	var draft Draft
	if form, err := c.MultipartForm(); err == nil && form != nil {
		draft = h.draftFromForm(c, form)
	} else {
		payload := new(createRequest)
		if err := c.BodyParser(payload); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
		}
		draft = Draft{
			Name:          payload.Name,
			Description:   payload.Description,
			Category:      payload.Category,
			Price:         payload.Price,
			OriginalPrice: payload.OriginalPrice,
			Discount:      payload.Discount,
			Stock:         payload.Stock,
			Image:         payload.Image,
			Images:        payload.Images,
			Color:         payload.Color,
			Colors:        payload.Colors,
			ColorVariants: payload.ColorVariants,
			Sizes:         payload.Sizes,
			Featured:      payload.Featured,
			IsNew:         payload.IsNew,
		}
	}

	created, err := h.service.Create(draft)
	if err != nil {
		if errors.Is(err, ErrNoImage) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "At least one image is required"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Failed to create product"})
	}
	return c.Status(fiber.StatusCreated).JSON(created)
}

// draftFromForm assembles a Draft from a multipart submission: uploaded files
// become /uploads references and color variant entries that name an uploaded
// file are rewritten to the saved path.
func (h *Handler) draftFromForm(c *fiber.Ctx, form *multipart.Form) Draft {
	var imageURLs []string
	uploadedByName := map[string]string{}
	if h.uploads != nil {
		for _, file := range form.File["images"] {
			url, err := h.uploads.Save(c, file)
			if err != nil {
				continue
			}
			imageURLs = append(imageURLs, url)
			uploadedByName[file.Filename] = url
		}
	}

	draft := Draft{
		Name:          c.FormValue("name"),
		Description:   c.FormValue("description"),
		Category:      c.FormValue("category"),
		Price:         c.FormValue("price"),
		OriginalPrice: c.FormValue("originalPrice"),
		Discount:      formInt(c, "discount"),
		Stock:         formInt(c, "stock"),
		Image:         c.FormValue("image"),
		Images:        imageURLs,
		Color:         c.FormValue("color"),
		Colors:        formStringSlice(c, "colors"),
		Sizes:         formStringSlice(c, "sizes"),
		Featured:      c.FormValue("featured") == "true",
		IsNew:         c.FormValue("isNew") == "true",
	}
	if raw := c.FormValue("colorVariants"); raw != "" {
		if serialized, ok := rewriteVariants(raw, uploadedByName); ok {
			draft.ColorVariants = &serialized
		}
	}
	return draft
}

// updateRequest is the JSON body alternative for partial updates. Pointer
// fields distinguish "omitted" from "set to zero value".
type updateRequest struct {
	Name          *string  `json:"name"`
	Description   *string  `json:"description"`
	Category      *string  `json:"category"`
	Price         *string  `json:"price"`
	OriginalPrice *string  `json:"originalPrice"`
	Discount      *int     `json:"discount"`
	Stock         *int     `json:"stock"`
	Images        []string `json:"images"`
	Color         *string  `json:"color"`
	Colors        []string `json:"colors"`
	ColorVariants *string  `json:"colorVariants"`
	Sizes         []string `json:"sizes"`
	Featured      *bool    `json:"featured"`
	IsNew         *bool    `json:"isNew"`
}

func (h *Handler) updateProduct(c *fiber.Ctx) error {
	var patch Patch
	if form, err := c.MultipartForm(); err == nil && form != nil {
		patch = h.patchFromForm(c, form)
	} else {
		payload := new(updateRequest)
		if err := c.BodyParser(payload); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
		}
		patch = Patch{
			Name:          payload.Name,
			Description:   payload.Description,
			Category:      payload.Category,
			Price:         payload.Price,
			OriginalPrice: payload.OriginalPrice,
			Discount:      payload.Discount,
			Stock:         payload.Stock,
			Images:        payload.Images,
			Color:         payload.Color,
			Colors:        payload.Colors,
			ColorVariants: payload.ColorVariants,
			Sizes:         payload.Sizes,
			Featured:      payload.Featured,
			IsNew:         payload.IsNew,
		}
	}

	updated, err := h.service.Update(c.Params("id"), patch)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "Product not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Error updating product"})
	}
	return c.JSON(updated)
}

// patchFromForm builds a Patch from a multipart submission. Only fields the
// client actually sent make it into the patch; existingImages (a JSON array
// of kept references) is merged ahead of any freshly uploaded files.
func (h *Handler) patchFromForm(c *fiber.Ctx, form *multipart.Form) Patch {
	var patch Patch
	set := func(key string, assign func(string)) {
		if vals, ok := form.Value[key]; ok && len(vals) > 0 {
			assign(vals[0])
		}
	}
	set("name", func(v string) { patch.Name = &v })
	set("description", func(v string) { patch.Description = &v })
	set("category", func(v string) { patch.Category = &v })
	set("price", func(v string) { patch.Price = &v })
	set("originalPrice", func(v string) { patch.OriginalPrice = &v })
	set("color", func(v string) { patch.Color = &v })
	set("discount", func(v string) {
		if n, err := strconv.Atoi(v); err == nil {
			patch.Discount = &n
		}
	})
	set("stock", func(v string) {
		if n, err := strconv.Atoi(v); err == nil {
			patch.Stock = &n
		}
	})
	set("colors", func(v string) {
		var colors []string
		if json.Unmarshal([]byte(v), &colors) == nil {
			patch.Colors = colors
		}
	})
	set("sizes", func(v string) {
		var sizes []string
		if json.Unmarshal([]byte(v), &sizes) == nil {
			patch.Sizes = sizes
		}
	})
	set("featured", func(v string) {
		b := v == "true"
		patch.Featured = &b
	})
	set("isNew", func(v string) {
		b := v == "true"
		patch.IsNew = &b
	})

	var imageURLs []string
	uploadedByName := map[string]string{}
	set("existingImages", func(v string) {
		var kept []string
		if json.Unmarshal([]byte(v), &kept) == nil {
			imageURLs = kept
		}
	})
	if h.uploads != nil {
		for _, file := range form.File["images"] {
			url, err := h.uploads.Save(c, file)
			if err != nil {
				continue
			}
			imageURLs = append(imageURLs, url)
			uploadedByName[file.Filename] = url
		}
	}
	patch.Images = imageURLs

	set("colorVariants", func(v string) {
		if serialized, ok := rewriteVariants(v, uploadedByName); ok {
			patch.ColorVariants = &serialized
		}
	})
	return patch
}

func (h *Handler) deleteProduct(c *fiber.Ctx) error {
	removed, err := h.service.Delete(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Error deleting product"})
	}
	if !removed {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "Product not found"})
	}
	return c.JSON(fiber.Map{"message": "Product deleted successfully"})
}

// rewriteVariants re-serializes the colorVariants payload, swapping variant
// image names that match an uploaded file for the saved /uploads path.
// Unparseable payloads are dropped.
func rewriteVariants(raw string, uploadedByName map[string]string) (string, bool) {
	var variants []ColorVariant
	if err := json.Unmarshal([]byte(raw), &variants); err != nil {
		return "", false
	}
	for vi := range variants {
		for ii, name := range variants[vi].Images {
			if url, ok := uploadedByName[name]; ok {
				variants[vi].Images[ii] = url
			}
		}
	}
	out, err := json.Marshal(variants)
	if err != nil {
		return "", false
	}
	return string(out), true
}

func formStringSlice(c *fiber.Ctx, key string) []string {
	raw := c.FormValue(key)
	if raw == "" {
		return nil
	}
	var out []string
	if err := json.Unmarshal([]byte(raw), &out); err != nil {
		return nil
	}
	return out
}

func formInt(c *fiber.Ctx, key string) int {
	n, err := strconv.Atoi(c.FormValue(key))
	if err != nil {
		return 0
	}
	return n
}

func queryInt(c *fiber.Ctx, key string, fallback int) int {
	v, err := strconv.Atoi(c.Query(key))
	if err != nil || v <= 0 {
		return fallback
	}
	return v
}

package product

import (
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

// ErrNoImage is returned when a product is created without any resolvable
// image: no images array, no single image and no color variant to borrow from.
var ErrNoImage = errors.New("at least one image is required")

// Service owns catalog normalization: image-array handling on create,
// merge-on-update semantics and the storefront filters.
type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) List() ([]Product, error) {
	return s.repo.List()
}

func (s *Service) GetByID(id string) (Product, error) {
	return s.repo.GetByID(id)
}

// ListByCategory matches the free-text category field case-insensitively.
func (s *Service) ListByCategory(category string) ([]Product, error) {
	return s.filter(func(p Product) bool {
		return strings.EqualFold(p.Category, category)
	})
}

func (s *Service) ListFeatured() ([]Product, error) {
	return s.filter(func(p Product) bool { return p.Featured })
}

func (s *Service) ListNewArrivals() ([]Product, error) {
	return s.filter(func(p Product) bool { return p.IsNew })
}

func (s *Service) ListOnSale() ([]Product, error) {
	return s.filter(func(p Product) bool { return p.Discount > 0 })
}

func (s *Service) filter(keep func(Product) bool) ([]Product, error) {
	products, err := s.repo.List()
	if err != nil {
		return nil, err
	}
	out := make([]Product, 0, len(products))
	for _, p := range products {
		if keep(p) {
			out = append(out, p)
		}
	}
	return out, nil
}

// Create assigns an id, resolves the image array and appends the product to
// the catalog. Image resolution order: explicit images array, then the single
// image field, then the first color variant's images. With none of those the
// draft is rejected with ErrNoImage.
func (s *Service) Create(d Draft) (Product, error) {
	images := d.Images
	if len(images) == 0 && d.Image != "" {
		images = []string{d.Image}
	}
	if len(images) == 0 && d.ColorVariants != nil {
		images = firstVariantImages(*d.ColorVariants)
	}
	if len(images) == 0 {
		return Product{}, ErrNoImage
	}

	colors := d.Colors
	if colors == nil {
		colors = []string{}
	}
	sizes := d.Sizes
	if sizes == nil {
		sizes = []string{}
	}

	p := Product{
		ID:            uuid.NewString(),
		Name:          d.Name,
		Description:   d.Description,
		Category:      d.Category,
		Price:         d.Price,
		OriginalPrice: d.OriginalPrice,
		Discount:      d.Discount,
		Stock:         d.Stock,
		Image:         images[0],
		Images:        images,
		Color:         d.Color,
		Colors:        colors,
		ColorVariants: d.ColorVariants,
		Sizes:         sizes,
		Featured:      d.Featured,
		IsNew:         d.IsNew,
		CreatedAt:     time.Now().UTC().Format(time.RFC3339),
	}
	if err := s.repo.Insert(p); err != nil {
		return Product{}, err
	}
	return p, nil
}

// Update merges the patch field-by-field onto the stored product. Omitted
// fields keep their previous value; a supplied Images slice replaces the
// array and recomputes the primary image. ID and CreatedAt never change.
func (s *Service) Update(id string, patch Patch) (Product, error) {
	return s.repo.Update(id, func(p Product) Product {
		if patch.Name != nil {
			p.Name = *patch.Name
		}
		if patch.Description != nil {
			p.Description = *patch.Description
		}
		if patch.Category != nil {
			p.Category = *patch.Category
		}
		if patch.Price != nil {
			p.Price = *patch.Price
		}
		if patch.OriginalPrice != nil {
			p.OriginalPrice = *patch.OriginalPrice
		}
		if patch.Discount != nil {
			p.Discount = *patch.Discount
		}
		if patch.Stock != nil {
			p.Stock = *patch.Stock
		}
		if len(patch.Images) > 0 {
			p.Images = patch.Images
			p.Image = patch.Images[0]
		}
		if patch.Color != nil {
			p.Color = *patch.Color
		}
		if patch.Colors != nil {
			p.Colors = patch.Colors
		}
		if patch.ColorVariants != nil {
			p.ColorVariants = patch.ColorVariants
		}
		if patch.Sizes != nil {
			p.Sizes = patch.Sizes
		}
		if patch.Featured != nil {
			p.Featured = *patch.Featured
		}
		if patch.IsNew != nil {
			p.IsNew = *patch.IsNew
		}
		return p
	})
}

func (s *Service) Delete(id string) (bool, error) {
	return s.repo.Delete(id)
}

// firstVariantImages extracts the leading variant's image list from the
// serialized colorVariants payload. Unparseable payloads yield nothing rather
// than an error; the caller falls through to ErrNoImage.
func firstVariantImages(serialized string) []string {
	var variants []ColorVariant
	if err := json.Unmarshal([]byte(serialized), &variants); err != nil {
		return nil
	}
	if len(variants) == 0 || len(variants[0].Images) == 0 {
		return nil
	}
	return variants[0].Images
}

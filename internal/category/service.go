package category

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// ErrNoImage is returned when a category is created without an image; the
// image field is required on categories.
var ErrNoImage = errors.New("category image is required")

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) List() ([]Category, error) {
	return s.repo.List()
}

func (s *Service) GetByID(id string) (Category, error) {
	return s.repo.GetByID(id)
}

// Create assigns an id and appends the category. Duplicate names are allowed;
// callers that want uniqueness must enforce it themselves.
func (s *Service) Create(d Draft) (Category, error) {
	if d.Image == "" {
		return Category{}, ErrNoImage
	}
	c := Category{
		ID:          uuid.NewString(),
		Name:        d.Name,
		Description: d.Description,
		Image:       d.Image,
		CreatedAt:   time.Now().UTC().Format(time.RFC3339),
	}
	if err := s.repo.Insert(c); err != nil {
		return Category{}, err
	}
	return c, nil
}

// Update merges the patch onto the stored category; omitted fields keep their
// previous values.
func (s *Service) Update(id string, patch Patch) (Category, error) {
	return s.repo.Update(id, func(c Category) Category {
		if patch.Name != nil {
			c.Name = *patch.Name
		}
		if patch.Description != nil {
			c.Description = *patch.Description
		}
		if patch.Image != nil {
			c.Image = *patch.Image
		}
		return c
	})
}

func (s *Service) Delete(id string) (bool, error) {
	return s.repo.Delete(id)
}

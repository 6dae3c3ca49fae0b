package category

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

var (
	ErrNotFound = errors.New("category not found")
	ErrCorrupt  = errors.New("category store unreadable")
)

type Repository interface {
	List() ([]Category, error)
	GetByID(id string) (Category, error)
	Insert(c Category) error
	Update(id string, apply func(Category) Category) (Category, error)
	Delete(id string) (bool, error)
}

// FileRepository mirrors the product file store: one JSON file, full rewrite
// per mutation, a mutex serializing the load-mutate-save cycle. The category
// collection is persisted independently from products.
type FileRepository struct {
	mu   sync.Mutex
	path string
}

func NewFileRepository(path string) *FileRepository {
	return &FileRepository{path: path}
}

func (r *FileRepository) load() ([]Category, error) {
	data, err := os.ReadFile(r.path)
	if errors.Is(err, os.ErrNotExist) {
		return []Category{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", r.path, err)
	}
	var categories []Category
	if err := json.Unmarshal(data, &categories); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrCorrupt, r.path, err)
	}
	return categories, nil
}

func (r *FileRepository) save(categories []Category) error {
	if err := os.MkdirAll(filepath.Dir(r.path), 0o755); err != nil {
		return fmt.Errorf("create data dir: %w", err)
	}
	data, err := json.MarshalIndent(categories, "", "  ")
	if err != nil {
		return err
	}
	if err := os.WriteFile(r.path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", r.path, err)
	}
	return nil
}

func (r *FileRepository) List() ([]Category, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.load()
}

func (r *FileRepository) GetByID(id string) (Category, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	categories, err := r.load()
	if err != nil {
		return Category{}, err
	}
	for _, c := range categories {
		if c.ID == id {
			return c, nil
		}
	}
	return Category{}, ErrNotFound
}

func (r *FileRepository) Insert(c Category) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	categories, err := r.load()
	if err != nil {
		return err
	}
	categories = append(categories, c)
	return r.save(categories)
}

func (r *FileRepository) Update(id string, apply func(Category) Category) (Category, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	categories, err := r.load()
	if err != nil {
		return Category{}, err
	}
	for i := range categories {
		if categories[i].ID == id {
			categories[i] = apply(categories[i])
			if err := r.save(categories); err != nil {
				return Category{}, err
			}
			return categories[i], nil
		}
	}
	return Category{}, ErrNotFound
}

func (r *FileRepository) Delete(id string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	categories, err := r.load()
	if err != nil {
		return false, err
	}
	for i := range categories {
		if categories[i].ID == id {
			categories = append(categories[:i], categories[i+1:]...)
			if err := r.save(categories); err != nil {
				return false, err
			}
			return true, nil
		}
	}
	return false, nil
}

package product

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

var (
	ErrNotFound = errors.New("product not found")
	// ErrCorrupt marks a backing file that exists but cannot be parsed. A
	// missing file is NOT corrupt, that is simply an uninitialized catalog.
	ErrCorrupt = errors.New("product store unreadable")
)

type Repository interface {
	List() ([]Product, error)
	GetByID(id string) (Product, error)
	Insert(p Product) error
	// Update loads the product with the given id, applies the mutation and
	// persists the result, all under the repository's write lock.
	Update(id string, apply func(Product) Product) (Product, error)
	// Delete reports whether a product was actually removed; deleting an
	// unknown id is not an error.
	Delete(id string) (bool, error)
}

// FileRepository persists the whole catalog as one JSON file. Every mutation
// is a full load → mutate → full rewrite; the mutex serializes that cycle so
// concurrent writers cannot lose updates.
type FileRepository struct {
	mu   sync.Mutex
	path string
}

func NewFileRepository(path string) *FileRepository {
	return &FileRepository{path: path}
}

func (r *FileRepository) load() ([]Product, error) {
	data, err := os.ReadFile(r.path)
	if errors.Is(err, os.ErrNotExist) {
		return []Product{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", r.path, err)
	}
	var products []Product
	if err := json.Unmarshal(data, &products); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrCorrupt, r.path, err)
	}
	return products, nil
}

func (r *FileRepository) save(products []Product) error {
	if err := os.MkdirAll(filepath.Dir(r.path), 0o755); err != nil {
		return fmt.Errorf("create data dir: %w", err)
	}
	data, err := json.MarshalIndent(products, "", "  ")
	if err != nil {
		return err
	}
	if err := os.WriteFile(r.path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", r.path, err)
	}
	return nil
}

func (r *FileRepository) List() ([]Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.load()
}

func (r *FileRepository) GetByID(id string) (Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	products, err := r.load()
	if err != nil {
		return Product{}, err
	}
	for _, p := range products {
		if p.ID == id {
			return p, nil
		}
	}
	return Product{}, ErrNotFound
}

func (r *FileRepository) Insert(p Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	products, err := r.load()
	if err != nil {
		return err
	}
	products = append(products, p)
	return r.save(products)
}

func (r *FileRepository) Update(id string, apply func(Product) Product) (Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	products, err := r.load()
	if err != nil {
		return Product{}, err
	}
	for i := range products {
		if products[i].ID == id {
			products[i] = apply(products[i])
			if err := r.save(products); err != nil {
				return Product{}, err
			}
			return products[i], nil
		}
	}
	return Product{}, ErrNotFound
}

func (r *FileRepository) Delete(id string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	products, err := r.load()
	if err != nil {
		return false, err
	}
	for i := range products {
		if products[i].ID == id {
			products = append(products[:i], products[i+1:]...)
			if err := r.save(products); err != nil {
				return false, err
			}
			return true, nil
		}
	}
	// nothing removed, nothing rewritten
	return false, nil
}

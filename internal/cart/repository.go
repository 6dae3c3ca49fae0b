package cart

import (
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
)

var ErrNotFound = errors.New("cart item not found")

type Repository interface {
	ListBySession(sessionID string) []Item
	// Add upserts by the item's selection tuple: an existing line gets its
	// quantity incremented, otherwise the item is appended with a new id.
	Add(item Item) Item
	UpdateQuantity(itemID string, quantity int) (Item, error)
	Remove(itemID string) bool
	Clear(sessionID string)
}

// InMemoryRepository holds cart lines for the process lifetime. Carts are
// session-scoped and never persisted.
type InMemoryRepository struct {
	mu    sync.RWMutex
	items []Item
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{items: make([]Item, 0)}
}

func (r *InMemoryRepository) ListBySession(sessionID string) []Item {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Item, 0)
	for _, item := range r.items {
		if item.SessionID == sessionID {
			out = append(out, item)
		}
	}
	return out
}

func (r *InMemoryRepository) Add(item Item) Item {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.items {
		if r.items[i].sameSelection(item) {
			r.items[i].Quantity += item.Quantity
			return r.items[i]
		}
	}
	item.ID = uuid.NewString()
	item.CreatedAt = time.Now().UTC().Format(time.RFC3339)
	r.items = append(r.items, item)
	return item
}

func (r *InMemoryRepository) UpdateQuantity(itemID string, quantity int) (Item, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.items {
		if r.items[i].ID == itemID {
			r.items[i].Quantity = quantity
			return r.items[i], nil
		}
	}
	return Item{}, ErrNotFound
}

func (r *InMemoryRepository) Remove(itemID string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.items {
		if r.items[i].ID == itemID {
			r.items = append(r.items[:i], r.items[i+1:]...)
			return true
		}
	}
	return false
}

func (r *InMemoryRepository) Clear(sessionID string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	kept := r.items[:0]
	for _, item := range r.items {
		if item.SessionID != sessionID {
			kept = append(kept, item)
		}
	}
	r.items = kept
}

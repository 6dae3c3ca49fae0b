package order

import (
	"errors"
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/google/uuid"
)

var ErrNotFound = errors.New("order not found")

type Repository interface {
	Create(ord Order) Order
	List() []Order
	GetByID(id string) (Order, error)
}

// InMemoryRepository holds orders for the process lifetime. Order numbers
// keep the human-facing ORD<n> shape but come from a monotonic counter, so
// they cannot collide within a process.
type InMemoryRepository struct {
	mu      sync.RWMutex
	orders  []Order
	counter atomic.Int64
}

func NewInMemoryRepository() *InMemoryRepository {
	r := &InMemoryRepository{orders: make([]Order, 0)}
	r.counter.Store(10000)
	return r
}

func (r *InMemoryRepository) Create(ord Order) Order {
	ord.ID = uuid.NewString()
	ord.OrderNumber = fmt.Sprintf("ORD%d", r.counter.Add(1))
	r.mu.Lock()
	defer r.mu.Unlock()
	r.orders = append(r.orders, ord)
	return ord
}

func (r *InMemoryRepository) List() []Order {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Order, len(r.orders))
	copy(out, r.orders)
	return out
}

func (r *InMemoryRepository) GetByID(id string) (Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, ord := range r.orders {
		if ord.ID == id {
			return ord, nil
		}
	}
	return Order{}, ErrNotFound
}

package order

import (
	"errors"
	"sync"
)

var ErrNotFound = errors.New("order not found")

// Repository defines persistence operations for orders.
type Repository interface {
	Create(ord Order) (Order, error)
	// ListByPhone returns the customer's orders, newest first.
	ListByPhone(phone string) ([]Order, error)
}

// InMemoryRepository is used for tests and for running without a database.
type InMemoryRepository struct {
	mu      sync.RWMutex
	storage []Order
	nextID  int
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{nextID: 1}
}

func (r *InMemoryRepository) Create(ord Order) (Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	ord.ID = r.nextID
	r.nextID++
	r.storage = append(r.storage, ord)
	return ord, nil
}

func (r *InMemoryRepository) ListByPhone(phone string) ([]Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Order, 0)
	for i := len(r.storage) - 1; i >= 0; i-- {
		if r.storage[i].Phone == phone {
			out = append(out, r.storage[i])
		}
	}
	return out, nil
}

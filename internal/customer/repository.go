package customer

import (
	"errors"
	"sync"
)

var (
	ErrNotFound = errors.New("customer not found")
	ErrExists   = errors.New("customer already registered")
)

type Repository interface {
	List() []Customer
	GetByPhone(phone string) (Customer, error)
	Create(c Customer) (Customer, error)
	Update(phone string, c Customer) (Customer, error)
}

// InMemoryRepository is used for tests and for running without a database.
type InMemoryRepository struct {
	mu      sync.RWMutex
	storage []Customer
}

func NewInMemoryRepository(seed []Customer) *InMemoryRepository {
	r := &InMemoryRepository{storage: make([]Customer, 0, len(seed))}
	r.storage = append(r.storage, seed...)
	return r
}

func (r *InMemoryRepository) List() []Customer {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Customer, len(r.storage))
	copy(out, r.storage)
	return out
}

func (r *InMemoryRepository) GetByPhone(phone string) (Customer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, c := range r.storage {
		if c.Phone == phone {
			return c, nil
		}
	}
	return Customer{}, ErrNotFound
}

func (r *InMemoryRepository) Create(c Customer) (Customer, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.storage {
		if existing.Phone == c.Phone {
			return Customer{}, ErrExists
		}
	}
	r.storage = append(r.storage, c)
	return c, nil
}

func (r *InMemoryRepository) Update(phone string, c Customer) (Customer, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.storage {
		if r.storage[i].Phone == phone {
			c.Phone = phone
			r.storage[i] = c
			return c, nil
		}
	}
	return Customer{}, ErrNotFound
}

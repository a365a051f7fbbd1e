package menu

import (
	"errors"
	"sort"
	"sync"
)

var (
	ErrNotFound = errors.New("menu item not found")
)

type Repository interface {
	List() []Item
	ListByCategories(cats []string) []Item
	GetByID(id int) (Item, error)
	Create(it Item) (Item, error)
	Update(id int, it Item) (Item, error)
	Delete(id int) error
	// Tags returns the sorted tag universe across the catalog.
	Tags() []string
	// Reset replaces all items with the provided list (used for seeding)
	Reset(items []Item) error
}

// InMemoryRepository is a simple in-memory implementation useful for tests
// and for running without a database.
type InMemoryRepository struct {
	mu      sync.RWMutex
	storage []Item
	nextID  int
}

func NewInMemoryRepository(seed []Item) *InMemoryRepository {
	r := &InMemoryRepository{nextID: 1}
	_ = r.Reset(seed)
	return r
}

func (r *InMemoryRepository) List() []Item {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Item, len(r.storage))
	copy(out, r.storage)
	return out
}

func (r *InMemoryRepository) ListByCategories(cats []string) []Item {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Item, 0)
	for _, it := range r.storage {
		if it.InCategories(cats) {
			out = append(out, it)
		}
	}
	return out
}

func (r *InMemoryRepository) GetByID(id int) (Item, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, it := range r.storage {
		if it.ID == id {
			return it, nil
		}
	}
	return Item{}, ErrNotFound
}

func (r *InMemoryRepository) Create(it Item) (Item, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if it.ID == 0 {
		it.ID = r.nextID
		r.nextID++
	} else if it.ID >= r.nextID {
		r.nextID = it.ID + 1
	}
	r.storage = append(r.storage, it)
	return it, nil
}

func (r *InMemoryRepository) Update(id int, it Item) (Item, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.storage {
		if r.storage[i].ID == id {
			it.ID = id
			r.storage[i] = it
			return it, nil
		}
	}
	return Item{}, ErrNotFound
}

func (r *InMemoryRepository) Delete(id int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.storage {
		if r.storage[i].ID == id {
			r.storage = append(r.storage[:i], r.storage[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

func (r *InMemoryRepository) Tags() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	set := make(map[string]struct{})
	for _, it := range r.storage {
		for _, t := range it.Tags {
			set[t] = struct{}{}
		}
	}
	out := make([]string, 0, len(set))
	for t := range set {
		out = append(out, t)
	}
	sort.Strings(out)
	return out
}

// Reset replaces the whole in-memory storage with the provided items.
func (r *InMemoryRepository) Reset(items []Item) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.storage = make([]Item, 0, len(items))
	maxID := 0
	for _, it := range items {
		if it.ID == 0 {
			it.ID = r.nextID
			r.nextID++
		}
		r.storage = append(r.storage, it)
		if it.ID > maxID {
			maxID = it.ID
		}
	}
	if maxID >= r.nextID {
		r.nextID = maxID + 1
	}
	return nil
}

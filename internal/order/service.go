package order

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Service provides business logic for orders.
type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Place records a new order. The order code combines the date with a short
// uuid fragment so codes stay unique across restarts.
func (s *Service) Place(ord Order) (Order, error) {
	if ord.Phone == "" {
		return Order{}, errors.New("phone is required")
	}
	if len(ord.Names) == 0 {
		return Order{}, errors.New("order has no items")
	}
	if ord.TotalPrice < 0 {
		return Order{}, errors.New("total price must be >= 0")
	}

	now := time.Now().UTC()
	ord.Code = fmt.Sprintf("LUCY-%s-%s", now.Format("20060102"), uuid.NewString()[:8])
	ord.Status = "placed"
	ord.CreatedAt = now.Format(time.RFC3339)
	return s.repo.Create(ord)
}

func (s *Service) ListByPhone(phone string) ([]Order, error) {
	if phone == "" {
		return nil, errors.New("phone is required")
	}
	return s.repo.ListByPhone(phone)
}

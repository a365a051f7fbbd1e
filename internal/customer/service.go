package customer

import (
	"errors"
	"time"
)

var ErrNoCoupon = errors.New("no coupon available")

// Service owns the ledger rules: visit counting, coupon accrual and
// redemption, order history. It is the explicit store handle the session
// layer passes around; the engine never sees it.
type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) List() []Customer {
	return s.repo.List()
}

func (s *Service) Lookup(phone string) (Customer, error) {
	return s.repo.GetByPhone(phone)
}

// Register creates a ledger entry for the phone; when one already exists the
// existing entry is returned unchanged.
func (s *Service) Register(phone, name string) (Customer, error) {
	if phone == "" {
		return Customer{}, errors.New("phone is required")
	}
	if existing, err := s.repo.GetByPhone(phone); err == nil {
		return existing, nil
	}
	now := time.Now().UTC().Format(time.RFC3339)
	return s.repo.Create(Customer{
		Phone:     phone,
		Name:      name,
		CreatedAt: &now,
		UpdatedAt: &now,
	})
}

// RecordVisit bumps the visit count; every VisitsPerCoupon-th visit earns a
// coupon. Unknown phones are registered on the fly.
func (s *Service) RecordVisit(phone string) (Customer, error) {
	c, err := s.Register(phone, "")
	if err != nil {
		return Customer{}, err
	}
	c.Visits++
	if c.Visits%VisitsPerCoupon == 0 {
		c.Coupons++
	}
	return s.touch(c)
}

// RedeemCoupon burns one coupon from the balance.
func (s *Service) RedeemCoupon(phone string) (Customer, error) {
	c, err := s.repo.GetByPhone(phone)
	if err != nil {
		return Customer{}, err
	}
	if c.Coupons <= 0 {
		return Customer{}, ErrNoCoupon
	}
	c.Coupons--
	return s.touch(c)
}

// AppendOrder links an order id to the customer's history.
func (s *Service) AppendOrder(phone string, orderID int) (Customer, error) {
	c, err := s.repo.GetByPhone(phone)
	if err != nil {
		return Customer{}, err
	}
	c.OrderIDs = append(c.OrderIDs, orderID)
	return s.touch(c)
}

// CouponCredit reports the flat budget credit available to the phone.
// Unknown customers and empty balances yield 0.
func (s *Service) CouponCredit(phone string) int {
	c, err := s.repo.GetByPhone(phone)
	if err != nil || c.Coupons <= 0 {
		return 0
	}
	return CouponValue
}

func (s *Service) touch(c Customer) (Customer, error) {
	now := time.Now().UTC().Format(time.RFC3339)
	c.UpdatedAt = &now
	return s.repo.Update(c.Phone, c)
}

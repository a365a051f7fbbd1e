package customer

// Customer is one phone-keyed ledger entry: visit count, coupon balance and
// order history. The recommendation engine never reads or writes this state.
type Customer struct {
	Phone     string  `json:"phone"`
	Name      string  `json:"name,omitempty"`
	Visits    int     `json:"visits"`
	Coupons   int     `json:"coupons"`
	OrderIDs  []int   `json:"orderId,omitempty"`
	CreatedAt *string `json:"createdAt,omitempty"`
	UpdatedAt *string `json:"updatedAt,omitempty"`
}

const (
	// CouponValue is the flat budget credit one coupon is worth.
	CouponValue = 1000
	// VisitsPerCoupon is how many visits earn one coupon.
	VisitsPerCoupon = 10
)

package order

// Order is one placed bundle: the item names, the total at purchase time and
// a customer-facing order code.
type Order struct {
	ID         int      `json:"orderId"`
	Code       string   `json:"orderCode"`
	Phone      string   `json:"phone"`
	Names      []string `json:"names"`
	TotalPrice int      `json:"totalPrice"`
	Status     string   `json:"status"`
	CreatedAt  string   `json:"createdAt"`
}

package order

import (
	"database/sql"

	"github.com/lib/pq"
)

type PostgresRepository struct {
	db *sql.DB
}

const (
	insertOrderQuery = `
		INSERT INTO bundle_order (order_code, phone, names, total_price, status, created_at)
		VALUES ($1,$2,$3,$4,$5,$6)
		RETURNING order_id
	`
	listOrdersByPhoneQuery = `
		SELECT order_id, order_code, phone, names, total_price, status, created_at
		FROM bundle_order
		WHERE phone = $1
		ORDER BY order_id DESC
	`
)

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ord Order) (Order, error) {
	err := r.db.QueryRow(insertOrderQuery,
		ord.Code, ord.Phone, pq.Array(ord.Names), ord.TotalPrice, ord.Status, ord.CreatedAt,
	).Scan(&ord.ID)
	if err != nil {
		return Order{}, err
	}
	return ord, nil
}

func (r *PostgresRepository) ListByPhone(phone string) ([]Order, error) {
	rows, err := r.db.Query(listOrdersByPhoneQuery, phone)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]Order, 0)
	for rows.Next() {
		var (
			ord   Order
			names []string
		)
		if err := rows.Scan(&ord.ID, &ord.Code, &ord.Phone, pq.Array(&names), &ord.TotalPrice, &ord.Status, &ord.CreatedAt); err != nil {
			continue
		}
		ord.Names = names
		out = append(out, ord)
	}
	return out, nil
}

package customer

import (
	"database/sql"

	"github.com/lib/pq"
)

type PostgresRepository struct {
	db *sql.DB
}

const (
	listCustomersQuery = `
		SELECT phone, name, visits, coupons, order_ids, created_at, updated_at
		FROM customer
		ORDER BY phone
	`
	getCustomerQuery = `
		SELECT phone, name, visits, coupons, order_ids, created_at, updated_at
		FROM customer
		WHERE phone = $1
	`
	insertCustomerQuery = `
		INSERT INTO customer (phone, name, visits, coupons, order_ids, created_at, updated_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7)
	`
	updateCustomerQuery = `
		UPDATE customer
		SET name = $1,
			visits = $2,
			coupons = $3,
			order_ids = $4,
			updated_at = $5
		WHERE phone = $6
	`
)

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) List() []Customer {
	rows, err := r.db.Query(listCustomersQuery)
	if err != nil {
		return []Customer{}
	}
	defer rows.Close()

	out := make([]Customer, 0)
	for rows.Next() {
		c, err := scanCustomer(rows)
		if err != nil {
			continue
		}
		out = append(out, c)
	}
	return out
}

func (r *PostgresRepository) GetByPhone(phone string) (Customer, error) {
	c, err := scanCustomer(r.db.QueryRow(getCustomerQuery, phone))
	if err != nil {
		return Customer{}, ErrNotFound
	}
	return c, nil
}

func (r *PostgresRepository) Create(c Customer) (Customer, error) {
	if _, err := r.GetByPhone(c.Phone); err == nil {
		return Customer{}, ErrExists
	}
	_, err := r.db.Exec(insertCustomerQuery,
		c.Phone, c.Name, c.Visits, c.Coupons, pq.Array(toInt64(c.OrderIDs)), c.CreatedAt, c.UpdatedAt,
	)
	if err != nil {
		return Customer{}, err
	}
	return c, nil
}

func (r *PostgresRepository) Update(phone string, c Customer) (Customer, error) {
	res, err := r.db.Exec(updateCustomerQuery,
		c.Name, c.Visits, c.Coupons, pq.Array(toInt64(c.OrderIDs)), c.UpdatedAt, phone,
	)
	if err != nil {
		return Customer{}, err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return Customer{}, ErrNotFound
	}
	c.Phone = phone
	return c, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanCustomer(rs rowScanner) (Customer, error) {
	var (
		c         Customer
		orderIDs  []int64
		createdAt sql.NullString
		updatedAt sql.NullString
	)
	if err := rs.Scan(&c.Phone, &c.Name, &c.Visits, &c.Coupons, pq.Array(&orderIDs), &createdAt, &updatedAt); err != nil {
		return Customer{}, err
	}
	c.OrderIDs = make([]int, 0, len(orderIDs))
	for _, id := range orderIDs {
		c.OrderIDs = append(c.OrderIDs, int(id))
	}
	if createdAt.Valid {
		c.CreatedAt = &createdAt.String
	}
	if updatedAt.Valid {
		c.UpdatedAt = &updatedAt.String
	}
	return c, nil
}

func toInt64(ids []int) []int64 {
	out := make([]int64, 0, len(ids))
	for _, id := range ids {
		out = append(out, int64(id))
	}
	return out
}

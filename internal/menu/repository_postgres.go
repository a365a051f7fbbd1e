package menu

import (
	"database/sql"
	"sort"

	"github.com/lib/pq"
)

type PostgresRepository struct {
	db *sql.DB
}

const (
	listItemsQuery = `
		SELECT menu_id, category, name, price, sweetness, tags, popular, created_at, updated_at
		FROM menu_item
		ORDER BY menu_id
	`
	listItemsByCategoriesQuery = `
		SELECT menu_id, category, name, price, sweetness, tags, popular, created_at, updated_at
		FROM menu_item
		WHERE category = ANY($1)
		ORDER BY menu_id
	`
	getItemByIDQuery = `
		SELECT menu_id, category, name, price, sweetness, tags, popular, created_at, updated_at
		FROM menu_item
		WHERE menu_id = $1
	`
	insertItemQuery = `
		INSERT INTO menu_item (category, name, price, sweetness, tags, popular, created_at, updated_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8)
		RETURNING menu_id
	`
	updateItemQuery = `
		UPDATE menu_item
		SET category = $1,
			name = $2,
			price = $3,
			sweetness = $4,
			tags = $5,
			popular = $6,
			updated_at = $7
		WHERE menu_id = $8
	`
	deleteItemQuery = `DELETE FROM menu_item WHERE menu_id = $1`
	listTagsQuery   = `SELECT tags FROM menu_item`
)

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) List() []Item {
	return r.queryItems(listItemsQuery)
}

func (r *PostgresRepository) ListByCategories(cats []string) []Item {
	return r.queryItems(listItemsByCategoriesQuery, pq.Array(cats))
}

func (r *PostgresRepository) queryItems(query string, args ...any) []Item {
	rows, err := r.db.Query(query, args...)
	if err != nil {
		return []Item{}
	}
	defer rows.Close()

	out := make([]Item, 0)
	for rows.Next() {
		it, err := scanItem(rows)
		if err != nil {
			continue
		}
		out = append(out, it)
	}
	return out
}

func (r *PostgresRepository) GetByID(id int) (Item, error) {
	row := r.db.QueryRow(getItemByIDQuery, id)
	it, err := scanItem(row)
	if err != nil {
		return Item{}, ErrNotFound
	}
	return it, nil
}

func (r *PostgresRepository) Create(it Item) (Item, error) {
	err := r.db.QueryRow(insertItemQuery,
		it.Category, it.Name, it.Price, it.Sweetness, pq.Array(it.Tags), it.Popular, it.CreatedAt, it.UpdatedAt,
	).Scan(&it.ID)
	if err != nil {
		return Item{}, err
	}
	return it, nil
}

func (r *PostgresRepository) Update(id int, it Item) (Item, error) {
	res, err := r.db.Exec(updateItemQuery,
		it.Category, it.Name, it.Price, it.Sweetness, pq.Array(it.Tags), it.Popular, it.UpdatedAt, id,
	)
	if err != nil {
		return Item{}, err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return Item{}, ErrNotFound
	}
	it.ID = id
	return it, nil
}

func (r *PostgresRepository) Delete(id int) error {
	res, err := r.db.Exec(deleteItemQuery, id)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *PostgresRepository) Tags() []string {
	rows, err := r.db.Query(listTagsQuery)
	if err != nil {
		return []string{}
	}
	defer rows.Close()

	set := make(map[string]struct{})
	for rows.Next() {
		var tags []string
		if err := rows.Scan(pq.Array(&tags)); err != nil {
			continue
		}
		for _, t := range tags {
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

// Reset clears the table and inserts the provided items in one transaction.
func (r *PostgresRepository) Reset(items []Item) error {
	tx, err := r.db.Begin()
	if err != nil {
		return err
	}
	if _, err := tx.Exec(`DELETE FROM menu_item`); err != nil {
		tx.Rollback()
		return err
	}
	for _, it := range items {
		if _, err := tx.Exec(
			`INSERT INTO menu_item (category, name, price, sweetness, tags, popular, created_at, updated_at) VALUES ($1,$2,$3,$4,$5,$6,$7,$8)`,
			it.Category, it.Name, it.Price, it.Sweetness, pq.Array(it.Tags), it.Popular, it.CreatedAt, it.UpdatedAt,
		); err != nil {
			tx.Rollback()
			return err
		}
	}
	return tx.Commit()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanItem(rs rowScanner) (Item, error) {
	var (
		it        Item
		tags      []string
		createdAt sql.NullString
		updatedAt sql.NullString
	)
	if err := rs.Scan(&it.ID, &it.Category, &it.Name, &it.Price, &it.Sweetness, pq.Array(&tags), &it.Popular, &createdAt, &updatedAt); err != nil {
		return Item{}, err
	}
	it.Tags = tags
	if createdAt.Valid {
		it.CreatedAt = &createdAt.String
	}
	if updatedAt.Valid {
		it.UpdatedAt = &updatedAt.String
	}
	return it, nil
}

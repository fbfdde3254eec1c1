package product

import (
	"database/sql"

	"github.com/lib/pq"
)

type PostgresRepository struct {
	db *sql.DB
}

const (
	listProductsQuery = `
		SELECT id, name, price, description, image, created_at
		FROM products
		ORDER BY id
	`
	listProductsByIDsQuery = `
		SELECT id, name, price, description, image, created_at
		FROM products
		WHERE id = ANY($1::int[])
		ORDER BY array_position($1::int[], id)
	`
)

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) List() ([]Product, error) {
	rows, err := r.db.Query(listProductsQuery)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanProducts(rows)
}

func (r *PostgresRepository) ListByIDs(ids []int) ([]Product, error) {
	if len(ids) == 0 {
		return []Product{}, nil
	}

	rows, err := r.db.Query(listProductsByIDsQuery, pq.Array(ids))
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanProducts(rows)
}

func scanProducts(rows *sql.Rows) ([]Product, error) {
	out := make([]Product, 0)
	for rows.Next() {
		var p Product
		var createdAt sql.NullString
		if err := rows.Scan(&p.ID, &p.Name, &p.Price, &p.Description, &p.Image, &createdAt); err != nil {
			return nil, err
		}
		if createdAt.Valid {
			p.CreatedAt = createdAt.String
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

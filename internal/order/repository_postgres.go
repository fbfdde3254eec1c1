package order

import (
	"database/sql"
	"fmt"
)

type PostgresRepository struct {
	db *sql.DB
}

const (
	insertOrderQuery = `
		INSERT INTO orders (id, customer_name, customer_email, subtotal, tax, total, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`
	insertOrderItemQuery = `
		INSERT INTO order_items (order_id, product_id, quantity, price, name)
		VALUES ($1, $2, $3, $4, $5)
	`
)

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// Create writes the order header and its line items in one transaction so
// an item failure rolls the whole order back.
func (r *PostgresRepository) Create(ord Order, items []LineItem) error {
	tx, err := r.db.Begin()
	if err != nil {
		return fmt.Errorf("begin checkout tx: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(insertOrderQuery,
		ord.ID, ord.CustomerName, ord.CustomerEmail,
		ord.Subtotal, ord.Tax, ord.Total, ord.CreatedAt); err != nil {
		return fmt.Errorf("insert order %s: %w", ord.ID, err)
	}

	for _, it := range items {
		if _, err := tx.Exec(insertOrderItemQuery,
			ord.ID, it.ProductID, it.Quantity, it.Price, it.Name); err != nil {
			return fmt.Errorf("insert order item %d for %s: %w", it.ProductID, ord.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit order %s: %w", ord.ID, err)
	}
	return nil
}

package cart

import "database/sql"

type PostgresRepository struct {
	db *sql.DB
}

const (
	// The ON CONFLICT upsert makes the read-modify-write merge a single
	// atomic statement; the stored quantity becomes the submitted value
	// (the caller supplies the new total) and the price/name snapshot
	// from the first add is left alone. xmax = 0 distinguishes a fresh
	// insert from a conflict update.
	upsertItemQuery = `
		INSERT INTO cart_items (cart_id, product_id, name, price, quantity)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (cart_id, product_id)
		DO UPDATE SET quantity = EXCLUDED.quantity
		RETURNING quantity, (xmax = 0) AS inserted
	`
	updateQuantityQuery = `
		UPDATE cart_items
		SET quantity = $3
		WHERE cart_id = $1 AND product_id = $2
		RETURNING id, cart_id, product_id, name, price, quantity
	`
	removeItemQuery = `DELETE FROM cart_items WHERE cart_id = $1 AND product_id = $2`
	countItemsQuery = `SELECT COUNT(*) FROM cart_items WHERE cart_id = $1`
	listItemsQuery  = `
		SELECT id, cart_id, product_id, name, price, quantity
		FROM cart_items
		WHERE cart_id = $1
		ORDER BY id
	`
	clearCartQuery = `DELETE FROM cart_items WHERE cart_id = $1`
)

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Upsert(cartID string, productID int, quantity int, price float64, name string) (int, bool, error) {
	var (
		stored   int
		inserted bool
	)
	err := r.db.QueryRow(upsertItemQuery, cartID, productID, name, price, quantity).Scan(&stored, &inserted)
	if err != nil {
		return 0, false, err
	}
	return stored, inserted, nil
}

func (r *PostgresRepository) UpdateQuantity(cartID string, productID int, quantity int) (Item, error) {
	var it Item
	err := r.db.QueryRow(updateQuantityQuery, cartID, productID, quantity).
		Scan(&it.ID, &it.CartID, &it.ProductID, &it.Name, &it.Price, &it.Quantity)
	if err == sql.ErrNoRows {
		return Item{}, ErrNotFound
	}
	if err != nil {
		return Item{}, err
	}
	return it, nil
}

func (r *PostgresRepository) Remove(cartID string, productID int) (int, error) {
	if _, err := r.db.Exec(removeItemQuery, cartID, productID); err != nil {
		return 0, err
	}

	var remaining int
	if err := r.db.QueryRow(countItemsQuery, cartID).Scan(&remaining); err != nil {
		return 0, err
	}
	return remaining, nil
}

func (r *PostgresRepository) Items(cartID string) ([]Item, error) {
	rows, err := r.db.Query(listItemsQuery, cartID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]Item, 0)
	for rows.Next() {
		var it Item
		if err := rows.Scan(&it.ID, &it.CartID, &it.ProductID, &it.Name, &it.Price, &it.Quantity); err != nil {
			return nil, err
		}
		out = append(out, it)
	}
	return out, rows.Err()
}

func (r *PostgresRepository) Clear(cartID string) error {
	_, err := r.db.Exec(clearCartQuery, cartID)
	return err
}

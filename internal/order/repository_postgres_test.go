package order

import (
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
)

func TestCreate_CommitsOrderAndItems(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock error: %v", err)
	}
	defer db.Close()
	repo := NewPostgresRepository(db)

	ord := Order{
		ID: "ORD-1-ABCDEF12", CustomerName: "Jo", CustomerEmail: "jo@example.com",
		Subtotal: 459.97, Tax: 36.7976, Total: 496.7676, CreatedAt: "2026-01-01T00:00:00Z",
	}
	items := []LineItem{
		{ProductID: 1, Name: "Headphones", Price: 199.99, Quantity: 2},
		{ProductID: 5, Name: "Hub", Price: 59.99, Quantity: 1},
	}

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO orders").
		WithArgs(ord.ID, ord.CustomerName, ord.CustomerEmail, ord.Subtotal, ord.Tax, ord.Total, ord.CreatedAt).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("INSERT INTO order_items").
		WithArgs(ord.ID, 1, 2, 199.99, "Headphones").
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectExec("INSERT INTO order_items").
		WithArgs(ord.ID, 5, 1, 59.99, "Hub").
		WillReturnResult(sqlmock.NewResult(2, 1))
	mock.ExpectCommit()

	if err := repo.Create(ord, items); err != nil {
		t.Fatalf("create: %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestCreate_RollsBackWhenItemInsertFails(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock error: %v", err)
	}
	defer db.Close()
	repo := NewPostgresRepository(db)

	ord := Order{ID: "ORD-2-DEADBEEF", CustomerName: "Jo", CustomerEmail: "jo@example.com"}
	items := []LineItem{{ProductID: 1, Name: "Headphones", Price: 199.99, Quantity: 1}}

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO orders").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("INSERT INTO order_items").
		WillReturnError(errors.New("constraint violation"))
	mock.ExpectRollback()

	if err := repo.Create(ord, items); err == nil {
		t.Fatal("expected error when an item insert fails")
	}

	// the order header must not survive as a partial commit
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

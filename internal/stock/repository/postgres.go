package repository

import (
	"context"

	"github.com/jmoiron/sqlx"
	"github.com/restockd/inventory-service/internal/model"
	"github.com/restockd/inventory-service/internal/stock"
)

type PGRepository struct {
	DB *sqlx.DB
}

func NewPGRepository(db *sqlx.DB) *PGRepository {
	return &PGRepository{DB: db}
}

func (r *PGRepository) History(ctx context.Context, productID int) ([]model.InventoryHistoryEntry, error) {
	entries := []model.InventoryHistoryEntry{}
	query := `
        SELECT product_id, record_date, change_type, change_quantity, shipment_id, reorder_id
        FROM product_inventory_history
        WHERE product_id = $1
        ORDER BY record_date DESC
    `
	err := r.DB.SelectContext(ctx, &entries, query, productID)
	return entries, err
}

func (r *PGRepository) RecordSale(ctx context.Context, productID, quantity int) (*model.StockEntry, error) {
	tx, err := r.DB.BeginTxx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	// The guard in the WHERE clause rejects overselling without a prior read.
	deduct := `
        UPDATE products
        SET stock_quantity = stock_quantity - $1
        WHERE product_id = $2 AND stock_quantity >= $1
    `
	res, err := tx.ExecContext(ctx, deduct, quantity, productID)
	if err != nil {
		return nil, err
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return nil, err
	}
	if rows == 0 {
		return nil, stock.ErrInsufficientStock
	}

	var entry model.StockEntry
	insertEntry := `
        INSERT INTO stock_entries (product_id, change_quantity, change_type, entry_date)
        VALUES ($1, $2, $3, CURRENT_DATE)
        RETURNING entry_id, product_id, change_quantity, change_type, entry_date, shipment_id, reorder_id
    `
	if err := tx.GetContext(ctx, &entry, insertEntry, productID, quantity, model.ChangeTypeSale); err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}
	return &entry, nil
}

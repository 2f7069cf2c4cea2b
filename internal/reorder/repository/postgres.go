package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/restockd/inventory-service/internal/model"
	"github.com/restockd/inventory-service/internal/reorder"
)

type PGRepository struct {
	DB *sqlx.DB
}

func NewPGRepository(db *sqlx.DB) *PGRepository {
	return &PGRepository{DB: db}
}

// Place computes the next reorder id and inserts in the same statement, so
// the id assignment and the insert share one commit. The primary key rejects
// a duplicate id if two sessions race past the usecase lock.
func (r *PGRepository) Place(ctx context.Context, productID, quantity int) (*model.Reorder, error) {
	var ro model.Reorder
	query := `
        INSERT INTO reorders (reorder_id, product_id, reorder_quantity, reorder_date, status)
        SELECT COALESCE(MAX(reorder_id), 0) + 1, $1, $2, CURRENT_DATE, $3
        FROM reorders
        RETURNING reorder_id, product_id, reorder_quantity, reorder_date, status
    `
	err := r.DB.GetContext(ctx, &ro, query, productID, quantity, model.ReorderStatusOrdered)
	if err != nil {
		return nil, err
	}
	return &ro, nil
}

func (r *PGRepository) MarkReceived(ctx context.Context, reorderID int) (*model.Reorder, error) {
	tx, err := r.DB.BeginTxx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	var ro model.Reorder
	selectQuery := `
        SELECT reorder_id, product_id, reorder_quantity, reorder_date, status
        FROM reorders
        WHERE reorder_id = $1
        FOR UPDATE
    `
	if err := tx.GetContext(ctx, &ro, selectQuery, reorderID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, reorder.ErrNotFound
		}
		return nil, err
	}
	if ro.Status != model.ReorderStatusOrdered {
		return nil, reorder.ErrAlreadyReceived
	}

	if _, err := tx.ExecContext(ctx, `UPDATE reorders SET status = $1 WHERE reorder_id = $2`, model.ReorderStatusReceived, reorderID); err != nil {
		return nil, err
	}

	insertEntry := `
        INSERT INTO stock_entries (product_id, change_quantity, change_type, entry_date, reorder_id)
        VALUES ($1, $2, $3, CURRENT_DATE, $4)
    `
	if _, err := tx.ExecContext(ctx, insertEntry, ro.ProductID, ro.ReorderQuantity, model.ChangeTypeRestock, reorderID); err != nil {
		return nil, fmt.Errorf("failed to append restock entry: %w", err)
	}

	syncStock := `UPDATE products SET stock_quantity = stock_quantity + $1 WHERE product_id = $2`
	if _, err := tx.ExecContext(ctx, syncStock, ro.ReorderQuantity, ro.ProductID); err != nil {
		return nil, fmt.Errorf("failed to sync stock quantity: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}

	ro.Status = model.ReorderStatusReceived
	return &ro, nil
}

func (r *PGRepository) ListPending(ctx context.Context) ([]model.PendingReorder, error) {
	pending := []model.PendingReorder{}
	query := `
        SELECT r.reorder_id, p.product_name
        FROM reorders r
        JOIN products p ON r.product_id = p.product_id
        WHERE r.status = $1
        ORDER BY r.reorder_id ASC
    `
	err := r.DB.SelectContext(ctx, &pending, query, model.ReorderStatusOrdered)
	return pending, err
}

package repository

import (
	"context"

	"github.com/jmoiron/sqlx"
	"github.com/restockd/inventory-service/internal/model"
	"github.com/shopspring/decimal"
)

type PGRepository struct {
	DB *sqlx.DB
}

func NewPGRepository(db *sqlx.DB) *PGRepository {
	return &PGRepository{DB: db}
}

func (r *PGRepository) SupplierCount(ctx context.Context) (int, error) {
	var count int
	err := r.DB.GetContext(ctx, &count, `SELECT COUNT(*) FROM suppliers`)
	return count, err
}

func (r *PGRepository) ProductCount(ctx context.Context) (int, error) {
	var count int
	err := r.DB.GetContext(ctx, &count, `SELECT COUNT(*) FROM products`)
	return count, err
}

func (r *PGRepository) CategoryCount(ctx context.Context) (int, error) {
	var count int
	err := r.DB.GetContext(ctx, &count, `SELECT COUNT(DISTINCT category) FROM products`)
	return count, err
}

func (r *PGRepository) SaleValueLast3Months(ctx context.Context) (decimal.Decimal, error) {
	var value decimal.Decimal
	query := `
        SELECT COALESCE(ROUND(SUM(ABS(se.change_quantity) * p.price), 2), 0)
        FROM stock_entries se
        JOIN products p ON se.product_id = p.product_id
        WHERE se.change_type = $1
          AND se.entry_date >= (
              SELECT MAX(entry_date) - INTERVAL '3 months' FROM stock_entries)
    `
	err := r.DB.GetContext(ctx, &value, query, model.ChangeTypeSale)
	return value, err
}

func (r *PGRepository) RestockValueLast3Months(ctx context.Context) (decimal.Decimal, error) {
	var value decimal.Decimal
	query := `
        SELECT COALESCE(ROUND(SUM(se.change_quantity * p.price), 2), 0)
        FROM stock_entries se
        JOIN products p ON se.product_id = p.product_id
        WHERE se.change_type = $1
          AND se.entry_date >= (
              SELECT MAX(entry_date) - INTERVAL '3 months' FROM stock_entries)
    `
	err := r.DB.GetContext(ctx, &value, query, model.ChangeTypeRestock)
	return value, err
}

// BelowReorderNoPendingCount counts products strictly below their reorder
// level that have no open reorder, so a product already on order is not
// flagged twice.
func (r *PGRepository) BelowReorderNoPendingCount(ctx context.Context) (int, error) {
	var count int
	query := `
        SELECT COUNT(*)
        FROM products p
        WHERE p.stock_quantity < p.reorder_level
          AND p.product_id NOT IN (
              SELECT DISTINCT product_id FROM reorders WHERE status = $1)
    `
	err := r.DB.GetContext(ctx, &count, query, model.ReorderStatusOrdered)
	return count, err
}

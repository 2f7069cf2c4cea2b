package repository

import (
	"context"

	"github.com/jmoiron/sqlx"
	"github.com/restockd/inventory-service/internal/model"
	"github.com/restockd/inventory-service/internal/product/dto"
)

type PGRepository struct {
	DB *sqlx.DB
}

func NewPGRepository(db *sqlx.DB) *PGRepository {
	return &PGRepository{DB: db}
}

// CreateWithInitialStock inserts the product, the initial shipment (when the
// starting stock is positive) and the opening Restock ledger entry as a
// single transaction. The product id is assigned here, inside the
// transaction, so a concurrent insert fails on the primary key instead of
// leaving partial state.
func (r *PGRepository) CreateWithInitialStock(ctx context.Context, input *dto.AddProductInput) (*model.Product, error) {
	tx, err := r.DB.BeginTxx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	var productID int
	if err := tx.GetContext(ctx, &productID, `SELECT COALESCE(MAX(product_id), 0) + 1 FROM products`); err != nil {
		return nil, err
	}

	p := &model.Product{
		ProductID:     productID,
		ProductName:   input.Name,
		Category:      input.Category,
		Price:         input.Price,
		StockQuantity: input.StockQuantity,
		ReorderLevel:  input.ReorderLevel,
		SupplierID:    input.SupplierID,
	}

	insertProduct := `
        INSERT INTO products (product_id, product_name, category, price, stock_quantity, reorder_level, supplier_id)
        VALUES (:product_id, :product_name, :category, :price, :stock_quantity, :reorder_level, :supplier_id)
    `
	if _, err := tx.NamedExecContext(ctx, insertProduct, p); err != nil {
		return nil, err
	}

	var shipmentID *int
	if input.StockQuantity > 0 {
		var id int
		insertShipment := `
            INSERT INTO shipments (supplier_id, product_id, quantity, shipment_date)
            VALUES ($1, $2, $3, CURRENT_DATE)
            RETURNING shipment_id
        `
		if err := tx.GetContext(ctx, &id, insertShipment, input.SupplierID, productID, input.StockQuantity); err != nil {
			return nil, err
		}
		shipmentID = &id
	}

	insertEntry := `
        INSERT INTO stock_entries (product_id, change_quantity, change_type, entry_date, shipment_id)
        VALUES ($1, $2, $3, CURRENT_DATE, $4)
    `
	if _, err := tx.ExecContext(ctx, insertEntry, productID, input.StockQuantity, model.ChangeTypeRestock, shipmentID); err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}
	return p, nil
}

func (r *PGRepository) ListWithSupplierStock(ctx context.Context) ([]model.ProductStockRow, error) {
	rows := []model.ProductStockRow{}
	query := `
        SELECT p.product_name, s.supplier_name, p.stock_quantity, p.reorder_level
        FROM products p
        JOIN suppliers s ON p.supplier_id = s.supplier_id
        ORDER BY p.product_name ASC
    `
	err := r.DB.SelectContext(ctx, &rows, query)
	return rows, err
}

func (r *PGRepository) ListNeedingReorder(ctx context.Context) ([]model.ReorderCandidate, error) {
	rows := []model.ReorderCandidate{}
	query := `
        SELECT product_name, stock_quantity, reorder_level
        FROM products
        WHERE stock_quantity <= reorder_level
    `
	err := r.DB.SelectContext(ctx, &rows, query)
	return rows, err
}

func (r *PGRepository) ListCategories(ctx context.Context) ([]string, error) {
	categories := []string{}
	query := `SELECT DISTINCT category FROM products ORDER BY category ASC`
	err := r.DB.SelectContext(ctx, &categories, query)
	return categories, err
}

func (r *PGRepository) ListOptions(ctx context.Context) ([]model.ProductOption, error) {
	options := []model.ProductOption{}
	query := `SELECT product_id, product_name FROM products ORDER BY product_name ASC`
	err := r.DB.SelectContext(ctx, &options, query)
	return options, err
}

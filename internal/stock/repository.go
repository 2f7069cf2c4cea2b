package stock

import (
	"context"
	"errors"

	"github.com/restockd/inventory-service/internal/model"
)

// ErrInsufficientStock is returned when a sale would take a product's stock
// below zero.
var ErrInsufficientStock = errors.New("insufficient stock")

type Repository interface {
	// History reads the product_inventory_history view, newest first.
	History(ctx context.Context, productID int) ([]model.InventoryHistoryEntry, error)

	// RecordSale appends a Sale ledger entry and decrements the stock column
	// in one transaction.
	RecordSale(ctx context.Context, productID, quantity int) (*model.StockEntry, error)
}

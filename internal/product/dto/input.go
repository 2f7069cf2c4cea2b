package dto

import "github.com/shopspring/decimal"

// AddProductInput carries already-validated scalars from the presentation
// layer: non-empty name, non-negative price/stock/reorder level, an existing
// supplier id.
type AddProductInput struct {
	Name          string
	Category      string
	Price         decimal.Decimal
	StockQuantity int
	ReorderLevel  int
	SupplierID    int
}

package model

import "github.com/shopspring/decimal"

type Product struct {
	ProductID     int             `db:"product_id" json:"product_id"`
	ProductName   string          `db:"product_name" json:"product_name"`
	Category      string          `db:"category" json:"category"`
	Price         decimal.Decimal `db:"price" json:"price"`
	StockQuantity int             `db:"stock_quantity" json:"stock_quantity"`
	ReorderLevel  int             `db:"reorder_level" json:"reorder_level"`
	SupplierID    int             `db:"supplier_id" json:"supplier_id"`
}

// ProductOption is the id/name pair used to populate product dropdowns.
type ProductOption struct {
	ProductID   int    `db:"product_id" json:"product_id"`
	ProductName string `db:"product_name" json:"product_name"`
}

// ProductStockRow joins a product with its supplier for the overview table.
type ProductStockRow struct {
	ProductName   string `db:"product_name" json:"product_name"`
	SupplierName  string `db:"supplier_name" json:"supplier_name"`
	StockQuantity int    `db:"stock_quantity" json:"stock_quantity"`
	ReorderLevel  int    `db:"reorder_level" json:"reorder_level"`
}

// ReorderCandidate is a product whose stock has reached its reorder level.
type ReorderCandidate struct {
	ProductName   string `db:"product_name" json:"product_name"`
	StockQuantity int    `db:"stock_quantity" json:"stock_quantity"`
	ReorderLevel  int    `db:"reorder_level" json:"reorder_level"`
}

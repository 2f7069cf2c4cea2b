package model

import "time"

// Reorder statuses. A reorder transitions Ordered -> Received exactly once;
// no other transitions exist.
const (
	ReorderStatusOrdered  = "Ordered"
	ReorderStatusReceived = "Received"
)

type Reorder struct {
	ReorderID       int       `db:"reorder_id" json:"reorder_id"`
	ProductID       int       `db:"product_id" json:"product_id"`
	ReorderQuantity int       `db:"reorder_quantity" json:"reorder_quantity"`
	ReorderDate     time.Time `db:"reorder_date" json:"reorder_date"`
	Status          string    `db:"status" json:"status"`
}

// PendingReorder joins an open reorder with its product name for dropdowns.
type PendingReorder struct {
	ReorderID   int    `db:"reorder_id" json:"reorder_id"`
	ProductName string `db:"product_name" json:"product_name"`
}

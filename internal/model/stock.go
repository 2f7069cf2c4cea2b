package model

import "time"

// Stock entry change types. The ledger stores unsigned quantities; the type
// carries the sign (Sale decreases stock, Restock increases it).
const (
	ChangeTypeSale    = "Sale"
	ChangeTypeRestock = "Restock"
)

// StockEntry is one row of the append-only stock ledger. Entries are never
// mutated after creation.
type StockEntry struct {
	EntryID        int       `db:"entry_id" json:"entry_id"`
	ProductID      int       `db:"product_id" json:"product_id"`
	ChangeQuantity int       `db:"change_quantity" json:"change_quantity"`
	ChangeType     string    `db:"change_type" json:"change_type"`
	EntryDate      time.Time `db:"entry_date" json:"entry_date"`
	ShipmentID     *int      `db:"shipment_id" json:"shipment_id"`
	ReorderID      *int      `db:"reorder_id" json:"reorder_id"`
}

type Shipment struct {
	ShipmentID   int       `db:"shipment_id" json:"shipment_id"`
	SupplierID   int       `db:"supplier_id" json:"supplier_id"`
	ProductID    int       `db:"product_id" json:"product_id"`
	Quantity     int       `db:"quantity" json:"quantity"`
	ShipmentDate time.Time `db:"shipment_date" json:"shipment_date"`
}

// InventoryHistoryEntry is a row of the product_inventory_history view,
// recomputed from the ledger on every read.
type InventoryHistoryEntry struct {
	ProductID      int       `db:"product_id" json:"product_id"`
	RecordDate     time.Time `db:"record_date" json:"record_date"`
	ChangeType     string    `db:"change_type" json:"change_type"`
	ChangeQuantity int       `db:"change_quantity" json:"change_quantity"`
	ShipmentID     *int      `db:"shipment_id" json:"shipment_id"`
	ReorderID      *int      `db:"reorder_id" json:"reorder_id"`
}

package model

type Supplier struct {
	SupplierID   int    `db:"supplier_id" json:"supplier_id"`
	SupplierName string `db:"supplier_name" json:"supplier_name"`
	ContactName  string `db:"contact_name" json:"contact_name"`
	Email        string `db:"email" json:"email"`
	Phone        string `db:"phone" json:"phone"`
}

// SupplierOption is the id/name pair used to populate supplier dropdowns.
type SupplierOption struct {
	SupplierID   int    `db:"supplier_id" json:"supplier_id"`
	SupplierName string `db:"supplier_name" json:"supplier_name"`
}

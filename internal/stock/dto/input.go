package dto

type RecordSaleInput struct {
	ProductID int
	Quantity  int
	// ReferenceID ties the ledger entry back to the sale event that caused
	// it, for log correlation only.
	ReferenceID string
}

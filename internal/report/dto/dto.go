package dto

import "github.com/shopspring/decimal"

// DashboardMetrics is the summary block of the dashboard. Each field is
// computed by its own query; no cross-field consistency is guaranteed when
// writes land between queries.
type DashboardMetrics struct {
	TotalSuppliers          int             `json:"total_suppliers"`
	TotalProducts           int             `json:"total_products"`
	TotalCategories         int             `json:"total_categories"`
	SaleValueLast3Months    decimal.Decimal `json:"sale_value_last_3_months"`
	RestockValueLast3Months decimal.Decimal `json:"restock_value_last_3_months"`
	BelowReorderNoPending   int             `json:"below_reorder_no_pending"`
}

package report

import (
	"context"

	"github.com/shopspring/decimal"
)

// MetricsCacheKey is the Redis key holding the cached dashboard metrics.
// Write paths delete it so the next render recomputes.
const MetricsCacheKey = "dashboard:metrics"

type Repository interface {
	SupplierCount(ctx context.Context) (int, error)
	ProductCount(ctx context.Context) (int, error)
	CategoryCount(ctx context.Context) (int, error)

	// Rolling windows are anchored to the most recent recorded entry date,
	// not the wall clock.
	SaleValueLast3Months(ctx context.Context) (decimal.Decimal, error)
	RestockValueLast3Months(ctx context.Context) (decimal.Decimal, error)

	BelowReorderNoPendingCount(ctx context.Context) (int, error)
}

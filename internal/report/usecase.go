package report

import (
	"context"

	"github.com/restockd/inventory-service/internal/report/dto"
)

type UseCase interface {
	DashboardMetrics(ctx context.Context) (*dto.DashboardMetrics, error)
}

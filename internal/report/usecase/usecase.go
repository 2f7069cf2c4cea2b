package usecase

import (
	"context"
	"encoding/json"
	"time"

	"github.com/restockd/inventory-service/internal/report"
	"github.com/restockd/inventory-service/internal/report/dto"
	"github.com/restockd/inventory-service/pkg/cache"
	"github.com/restockd/inventory-service/pkg/logger"
	"go.uber.org/zap"
)

const metricsCacheTTL = 5 * time.Minute

type reportUseCase struct {
	repo   report.Repository
	cache  *cache.RedisClient
	logger logger.ZapLogger
}

func NewReportUseCase(repo report.Repository, cache *cache.RedisClient, log logger.ZapLogger) report.UseCase {
	return &reportUseCase{
		repo:   repo,
		cache:  cache,
		logger: log,
	}
}

// DashboardMetrics runs each summary query independently. Writes landing
// between queries can make the block internally inconsistent; the cache is
// deleted by every write path so a fresh render recomputes.
func (uc *reportUseCase) DashboardMetrics(ctx context.Context) (*dto.DashboardMetrics, error) {
	if uc.cache != nil {
		val, err := uc.cache.Client.Get(ctx, report.MetricsCacheKey).Result()
		if err == nil {
			var cached dto.DashboardMetrics
			if err := json.Unmarshal([]byte(val), &cached); err == nil {
				return &cached, nil
			}
		}
	}

	var m dto.DashboardMetrics
	var err error

	if m.TotalSuppliers, err = uc.repo.SupplierCount(ctx); err != nil {
		return nil, err
	}
	if m.TotalProducts, err = uc.repo.ProductCount(ctx); err != nil {
		return nil, err
	}
	if m.TotalCategories, err = uc.repo.CategoryCount(ctx); err != nil {
		return nil, err
	}
	if m.SaleValueLast3Months, err = uc.repo.SaleValueLast3Months(ctx); err != nil {
		return nil, err
	}
	if m.RestockValueLast3Months, err = uc.repo.RestockValueLast3Months(ctx); err != nil {
		return nil, err
	}
	if m.BelowReorderNoPending, err = uc.repo.BelowReorderNoPendingCount(ctx); err != nil {
		return nil, err
	}

	if uc.cache != nil {
		if data, err := json.Marshal(&m); err == nil {
			if err := uc.cache.Client.Set(ctx, report.MetricsCacheKey, data, metricsCacheTTL).Err(); err != nil {
				uc.logger.Error("failed to cache dashboard metrics", zap.Error(err))
			}
		}
	}

	return &m, nil
}

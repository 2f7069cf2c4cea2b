package usecase

import (
	"context"

	"github.com/restockd/inventory-service/internal/model"
	"github.com/restockd/inventory-service/internal/report"
	"github.com/restockd/inventory-service/internal/stock"
	"github.com/restockd/inventory-service/internal/stock/dto"
	"github.com/restockd/inventory-service/pkg/cache"
	"github.com/restockd/inventory-service/pkg/logger"
	"go.uber.org/zap"
)

type stockUseCase struct {
	repo   stock.Repository
	cache  *cache.RedisClient
	logger logger.ZapLogger
}

func NewStockUseCase(repo stock.Repository, cache *cache.RedisClient, log logger.ZapLogger) stock.UseCase {
	return &stockUseCase{
		repo:   repo,
		cache:  cache,
		logger: log,
	}
}

func (uc *stockUseCase) ProductHistory(ctx context.Context, productID int) ([]model.InventoryHistoryEntry, error) {
	return uc.repo.History(ctx, productID)
}

func (uc *stockUseCase) RecordSale(ctx context.Context, input *dto.RecordSaleInput) (*model.StockEntry, error) {
	entry, err := uc.repo.RecordSale(ctx, input.ProductID, input.Quantity)
	if err != nil {
		return nil, err
	}

	uc.logger.Info("sale recorded",
		zap.Int("product_id", input.ProductID),
		zap.Int("quantity", input.Quantity),
		zap.String("reference_id", input.ReferenceID),
	)

	go uc.invalidateMetricsCache(context.Background())

	return entry, nil
}

func (uc *stockUseCase) invalidateMetricsCache(ctx context.Context) {
	if uc.cache == nil {
		return
	}
	if err := uc.cache.Client.Del(ctx, report.MetricsCacheKey).Err(); err != nil {
		uc.logger.Error("failed to invalidate dashboard metrics cache", zap.Error(err))
	}
}

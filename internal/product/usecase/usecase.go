package usecase

import (
	"context"

	"github.com/restockd/inventory-service/internal/model"
	"github.com/restockd/inventory-service/internal/product"
	"github.com/restockd/inventory-service/internal/product/dto"
	"github.com/restockd/inventory-service/internal/report"
	"github.com/restockd/inventory-service/pkg/cache"
	"github.com/restockd/inventory-service/pkg/logger"
	"go.uber.org/zap"
)

type productUseCase struct {
	repo   product.Repository
	cache  *cache.RedisClient
	logger logger.ZapLogger
}

func NewProductUseCase(repo product.Repository, cache *cache.RedisClient, log logger.ZapLogger) product.UseCase {
	return &productUseCase{
		repo:   repo,
		cache:  cache,
		logger: log,
	}
}

// AddProduct commits the product row, the initial shipment and the opening
// Restock entry as one unit. Input validation happened at the presentation
// boundary; failures here are storage failures and propagate untranslated.
func (uc *productUseCase) AddProduct(ctx context.Context, input *dto.AddProductInput) (*model.Product, error) {
	p, err := uc.repo.CreateWithInitialStock(ctx, input)
	if err != nil {
		return nil, err
	}

	go uc.invalidateMetricsCache(context.Background())

	return p, nil
}

func (uc *productUseCase) invalidateMetricsCache(ctx context.Context) {
	if uc.cache == nil {
		return
	}
	if err := uc.cache.Client.Del(ctx, report.MetricsCacheKey).Err(); err != nil {
		uc.logger.Error("failed to invalidate dashboard metrics cache", zap.Error(err))
	}
}

func (uc *productUseCase) ListWithSupplierStock(ctx context.Context) ([]model.ProductStockRow, error) {
	return uc.repo.ListWithSupplierStock(ctx)
}

func (uc *productUseCase) ListNeedingReorder(ctx context.Context) ([]model.ReorderCandidate, error) {
	return uc.repo.ListNeedingReorder(ctx)
}

func (uc *productUseCase) ListCategories(ctx context.Context) ([]string, error) {
	return uc.repo.ListCategories(ctx)
}

func (uc *productUseCase) ListOptions(ctx context.Context) ([]model.ProductOption, error) {
	return uc.repo.ListOptions(ctx)
}

package product

import (
	"context"

	"github.com/restockd/inventory-service/internal/model"
	"github.com/restockd/inventory-service/internal/product/dto"
)

type UseCase interface {
	AddProduct(ctx context.Context, input *dto.AddProductInput) (*model.Product, error)

	ListWithSupplierStock(ctx context.Context) ([]model.ProductStockRow, error)
	ListNeedingReorder(ctx context.Context) ([]model.ReorderCandidate, error)
	ListCategories(ctx context.Context) ([]string, error)
	ListOptions(ctx context.Context) ([]model.ProductOption, error)
}

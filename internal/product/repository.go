package product

import (
	"context"

	"github.com/restockd/inventory-service/internal/model"
	"github.com/restockd/inventory-service/internal/product/dto"
)

type Repository interface {
	// CreateWithInitialStock runs the whole product-creation sequence
	// (product row, initial shipment, initial Restock ledger entry) in one
	// transaction.
	CreateWithInitialStock(ctx context.Context, input *dto.AddProductInput) (*model.Product, error)

	ListWithSupplierStock(ctx context.Context) ([]model.ProductStockRow, error)
	ListNeedingReorder(ctx context.Context) ([]model.ReorderCandidate, error)
	ListCategories(ctx context.Context) ([]string, error)
	ListOptions(ctx context.Context) ([]model.ProductOption, error)
}

package stock

import (
	"context"

	"github.com/restockd/inventory-service/internal/model"
	"github.com/restockd/inventory-service/internal/stock/dto"
)

type UseCase interface {
	ProductHistory(ctx context.Context, productID int) ([]model.InventoryHistoryEntry, error)
	RecordSale(ctx context.Context, input *dto.RecordSaleInput) (*model.StockEntry, error)
}

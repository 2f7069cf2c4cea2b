package reorder

import (
	"context"

	"github.com/restockd/inventory-service/internal/model"
	"github.com/restockd/inventory-service/internal/reorder/dto"
)

type UseCase interface {
	PlaceReorder(ctx context.Context, input *dto.PlaceReorderInput) (*model.Reorder, error)
	MarkAsReceived(ctx context.Context, reorderID int) (*model.Reorder, error)
	ListPending(ctx context.Context) ([]model.PendingReorder, error)
}

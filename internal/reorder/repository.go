package reorder

import (
	"context"

	"github.com/restockd/inventory-service/internal/model"
)

type Repository interface {
	// Place inserts a reorder with id max(reorder_id)+1 (1 when the table is
	// empty), today's date and status Ordered, in a single statement.
	Place(ctx context.Context, productID, quantity int) (*model.Reorder, error)

	// MarkReceived flips an Ordered reorder to Received and appends the
	// matching Restock ledger entry as one transaction. Returns ErrNotFound
	// or ErrAlreadyReceived when the transition is not possible.
	MarkReceived(ctx context.Context, reorderID int) (*model.Reorder, error)

	ListPending(ctx context.Context) ([]model.PendingReorder, error)
}

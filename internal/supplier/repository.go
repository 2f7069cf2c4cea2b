package supplier

import (
	"context"

	"github.com/restockd/inventory-service/internal/model"
)

type Repository interface {
	ListContacts(ctx context.Context) ([]model.Supplier, error)
	ListOptions(ctx context.Context) ([]model.SupplierOption, error)
}

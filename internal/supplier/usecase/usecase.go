package usecase

import (
	"context"

	"github.com/restockd/inventory-service/internal/model"
	"github.com/restockd/inventory-service/internal/supplier"
	"github.com/restockd/inventory-service/pkg/logger"
)

type supplierUseCase struct {
	repo   supplier.Repository
	logger logger.ZapLogger
}

func NewSupplierUseCase(repo supplier.Repository, log logger.ZapLogger) supplier.UseCase {
	return &supplierUseCase{
		repo:   repo,
		logger: log,
	}
}

func (uc *supplierUseCase) ListContacts(ctx context.Context) ([]model.Supplier, error) {
	return uc.repo.ListContacts(ctx)
}

func (uc *supplierUseCase) ListOptions(ctx context.Context) ([]model.SupplierOption, error) {
	return uc.repo.ListOptions(ctx)
}

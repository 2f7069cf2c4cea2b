package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/restockd/inventory-service/internal/model"
	"github.com/restockd/inventory-service/internal/reorder"
	"github.com/restockd/inventory-service/internal/reorder/dto"
	"github.com/restockd/inventory-service/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// --- Mock Repo ---

// MockReorderRepo keeps reorders in memory and assigns ids the way the store
// does: max existing id plus one.
type MockReorderRepo struct {
	Reorders []model.Reorder
	Err      error

	lastPlacedProductID int
	lastPlacedQuantity  int
}

func (m *MockReorderRepo) Place(ctx context.Context, productID, quantity int) (*model.Reorder, error) {
	m.lastPlacedProductID = productID
	m.lastPlacedQuantity = quantity

	if m.Err != nil {
		return nil, m.Err
	}

	maxID := 0
	for _, r := range m.Reorders {
		if r.ReorderID > maxID {
			maxID = r.ReorderID
		}
	}

	ro := model.Reorder{
		ReorderID:       maxID + 1,
		ProductID:       productID,
		ReorderQuantity: quantity,
		ReorderDate:     time.Now().Truncate(24 * time.Hour),
		Status:          model.ReorderStatusOrdered,
	}
	m.Reorders = append(m.Reorders, ro)
	return &ro, nil
}

func (m *MockReorderRepo) MarkReceived(ctx context.Context, reorderID int) (*model.Reorder, error) {
	if m.Err != nil {
		return nil, m.Err
	}

	for i, r := range m.Reorders {
		if r.ReorderID != reorderID {
			continue
		}
		if r.Status != model.ReorderStatusOrdered {
			return nil, reorder.ErrAlreadyReceived
		}
		m.Reorders[i].Status = model.ReorderStatusReceived
		ro := m.Reorders[i]
		return &ro, nil
	}
	return nil, reorder.ErrNotFound
}

func (m *MockReorderRepo) ListPending(ctx context.Context) ([]model.PendingReorder, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	pending := []model.PendingReorder{}
	for _, r := range m.Reorders {
		if r.Status == model.ReorderStatusOrdered {
			pending = append(pending, model.PendingReorder{ReorderID: r.ReorderID})
		}
	}
	return pending, nil
}

func newTestLogger() logger.ZapLogger {
	return logger.NewZapLogger(&logger.ZapLoggerConfig{Level: "error", Encoding: "console"})
}

// --- Tests ---

func TestPlaceReorder_EmptyTableStartsAtOne(t *testing.T) {
	repo := &MockReorderRepo{}
	uc := NewReorderUseCase(repo, nil, newTestLogger())

	ro, err := uc.PlaceReorder(context.Background(), &dto.PlaceReorderInput{ProductID: 7, Quantity: 10})

	require.NoError(t, err)
	assert.Equal(t, 1, ro.ReorderID)
	assert.Equal(t, 7, ro.ProductID)
	assert.Equal(t, 10, ro.ReorderQuantity)
	assert.Equal(t, model.ReorderStatusOrdered, ro.Status)
	assert.Equal(t, 7, repo.lastPlacedProductID)
	assert.Equal(t, 10, repo.lastPlacedQuantity)
}

func TestPlaceReorder_IDIsMaxPlusOne(t *testing.T) {
	repo := &MockReorderRepo{
		Reorders: []model.Reorder{
			{ReorderID: 3, ProductID: 1, Status: model.ReorderStatusReceived},
			{ReorderID: 41, ProductID: 2, Status: model.ReorderStatusOrdered},
		},
	}
	uc := NewReorderUseCase(repo, nil, newTestLogger())

	ro, err := uc.PlaceReorder(context.Background(), &dto.PlaceReorderInput{ProductID: 5, Quantity: 3})

	require.NoError(t, err)
	assert.Equal(t, 42, ro.ReorderID)
}

func TestPlaceReorder_RepoErrorPropagates(t *testing.T) {
	repoErr := errors.New("fk violation")
	repo := &MockReorderRepo{Err: repoErr}
	uc := NewReorderUseCase(repo, nil, newTestLogger())

	ro, err := uc.PlaceReorder(context.Background(), &dto.PlaceReorderInput{ProductID: 99, Quantity: 1})

	assert.Nil(t, ro)
	assert.ErrorIs(t, err, repoErr)
}

func TestMarkAsReceived_TransitionsOnce(t *testing.T) {
	repo := &MockReorderRepo{
		Reorders: []model.Reorder{
			{ReorderID: 3, ProductID: 7, ReorderQuantity: 10, Status: model.ReorderStatusOrdered},
		},
	}
	uc := NewReorderUseCase(repo, nil, newTestLogger())

	ro, err := uc.MarkAsReceived(context.Background(), 3)
	require.NoError(t, err)
	assert.Equal(t, model.ReorderStatusReceived, ro.Status)
	assert.Equal(t, 7, ro.ProductID)
	assert.Equal(t, 10, ro.ReorderQuantity)

	// A second receipt must fail, not silently succeed.
	_, err = uc.MarkAsReceived(context.Background(), 3)
	assert.ErrorIs(t, err, reorder.ErrAlreadyReceived)
}

func TestMarkAsReceived_UnknownID(t *testing.T) {
	repo := &MockReorderRepo{}
	uc := NewReorderUseCase(repo, nil, newTestLogger())

	_, err := uc.MarkAsReceived(context.Background(), 12)
	assert.ErrorIs(t, err, reorder.ErrNotFound)
}

func TestListPending_OnlyOrdered(t *testing.T) {
	repo := &MockReorderRepo{
		Reorders: []model.Reorder{
			{ReorderID: 1, Status: model.ReorderStatusReceived},
			{ReorderID: 2, Status: model.ReorderStatusOrdered},
		},
	}
	uc := NewReorderUseCase(repo, nil, newTestLogger())

	pending, err := uc.ListPending(context.Background())
	require.NoError(t, err)
	require.Len(t, pending, 1)
	assert.Equal(t, 2, pending[0].ReorderID)
}

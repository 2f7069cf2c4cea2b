package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/restockd/inventory-service/internal/model"
	"github.com/restockd/inventory-service/internal/stock"
	"github.com/restockd/inventory-service/internal/stock/dto"
	"github.com/restockd/inventory-service/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// --- Mock Repo ---

type MockStockRepo struct {
	HistoryEntries []model.InventoryHistoryEntry
	Err            error

	lastSaleProductID int
	lastSaleQuantity  int
}

func (m *MockStockRepo) History(ctx context.Context, productID int) ([]model.InventoryHistoryEntry, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	entries := []model.InventoryHistoryEntry{}
	for _, e := range m.HistoryEntries {
		if e.ProductID == productID {
			entries = append(entries, e)
		}
	}
	return entries, nil
}

func (m *MockStockRepo) RecordSale(ctx context.Context, productID, quantity int) (*model.StockEntry, error) {
	m.lastSaleProductID = productID
	m.lastSaleQuantity = quantity
	if m.Err != nil {
		return nil, m.Err
	}
	return &model.StockEntry{
		EntryID:        1,
		ProductID:      productID,
		ChangeQuantity: quantity,
		ChangeType:     model.ChangeTypeSale,
		EntryDate:      time.Now(),
	}, nil
}

func newTestLogger() logger.ZapLogger {
	return logger.NewZapLogger(&logger.ZapLoggerConfig{Level: "error", Encoding: "console"})
}

// --- Tests ---

func TestRecordSale_AppendsSaleEntry(t *testing.T) {
	repo := &MockStockRepo{}
	uc := NewStockUseCase(repo, nil, newTestLogger())

	entry, err := uc.RecordSale(context.Background(), &dto.RecordSaleInput{ProductID: 7, Quantity: 3, ReferenceID: "evt-1"})

	require.NoError(t, err)
	assert.Equal(t, 7, entry.ProductID)
	assert.Equal(t, 3, entry.ChangeQuantity)
	assert.Equal(t, model.ChangeTypeSale, entry.ChangeType)
	assert.Equal(t, 7, repo.lastSaleProductID)
	assert.Equal(t, 3, repo.lastSaleQuantity)
}

func TestRecordSale_InsufficientStockPropagates(t *testing.T) {
	repo := &MockStockRepo{Err: stock.ErrInsufficientStock}
	uc := NewStockUseCase(repo, nil, newTestLogger())

	entry, err := uc.RecordSale(context.Background(), &dto.RecordSaleInput{ProductID: 7, Quantity: 999})

	assert.Nil(t, entry)
	assert.ErrorIs(t, err, stock.ErrInsufficientStock)
}

func TestProductHistory_EmptyWhenNoRecords(t *testing.T) {
	repo := &MockStockRepo{}
	uc := NewStockUseCase(repo, nil, newTestLogger())

	entries, err := uc.ProductHistory(context.Background(), 42)

	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestProductHistory_FiltersByProduct(t *testing.T) {
	repo := &MockStockRepo{
		HistoryEntries: []model.InventoryHistoryEntry{
			{ProductID: 7, ChangeType: model.ChangeTypeRestock, ChangeQuantity: 30},
			{ProductID: 8, ChangeType: model.ChangeTypeSale, ChangeQuantity: 2},
			{ProductID: 7, ChangeType: model.ChangeTypeSale, ChangeQuantity: 5},
		},
	}
	uc := NewStockUseCase(repo, nil, newTestLogger())

	entries, err := uc.ProductHistory(context.Background(), 7)

	require.NoError(t, err)
	require.Len(t, entries, 2)
	for _, e := range entries {
		assert.Equal(t, 7, e.ProductID)
	}
}

package listener

import (
	"context"
	"testing"

	"github.com/restockd/inventory-service/internal/model"
	"github.com/restockd/inventory-service/internal/stock"
	"github.com/restockd/inventory-service/internal/stock/dto"
	"github.com/restockd/inventory-service/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// --- Mock UseCase ---

type MockStockUseCase struct {
	Err error

	recordedInputs []*dto.RecordSaleInput
}

func (m *MockStockUseCase) ProductHistory(ctx context.Context, productID int) ([]model.InventoryHistoryEntry, error) {
	return nil, nil
}

func (m *MockStockUseCase) RecordSale(ctx context.Context, input *dto.RecordSaleInput) (*model.StockEntry, error) {
	m.recordedInputs = append(m.recordedInputs, input)
	if m.Err != nil {
		return nil, m.Err
	}
	return &model.StockEntry{
		ProductID:      input.ProductID,
		ChangeQuantity: input.Quantity,
		ChangeType:     model.ChangeTypeSale,
	}, nil
}

func newListener(uc stock.UseCase) *SaleListener {
	log := logger.NewZapLogger(&logger.ZapLoggerConfig{Level: "error", Encoding: "console"})
	return NewSaleListener(nil, uc, log)
}

// --- Tests ---

func TestProcessMessage_RecordsEachItem(t *testing.T) {
	uc := &MockStockUseCase{}
	l := newListener(uc)

	msg := []byte(`{
		"event_id": "evt-1",
		"event_type": "SaleRecorded",
		"payload": {"items": [
			{"product_id": 7, "quantity": 2},
			{"product_id": 9, "quantity": 1}
		]}
	}`)
	l.processMessage(context.Background(), msg)

	require.Len(t, uc.recordedInputs, 2)
	assert.Equal(t, 7, uc.recordedInputs[0].ProductID)
	assert.Equal(t, 2, uc.recordedInputs[0].Quantity)
	assert.Equal(t, "evt-1", uc.recordedInputs[0].ReferenceID)
	assert.Equal(t, 9, uc.recordedInputs[1].ProductID)
}

func TestProcessMessage_IgnoresOtherEventTypes(t *testing.T) {
	uc := &MockStockUseCase{}
	l := newListener(uc)

	l.processMessage(context.Background(), []byte(`{"event_id":"evt-2","event_type":"OrderCreated","payload":{"items":[{"product_id":7,"quantity":2}]}}`))

	assert.Empty(t, uc.recordedInputs)
}

func TestProcessMessage_SkipsNonPositiveQuantities(t *testing.T) {
	uc := &MockStockUseCase{}
	l := newListener(uc)

	msg := []byte(`{
		"event_id": "evt-3",
		"event_type": "SaleRecorded",
		"payload": {"items": [
			{"product_id": 7, "quantity": 0},
			{"product_id": 8, "quantity": -4},
			{"product_id": 9, "quantity": 5}
		]}
	}`)
	l.processMessage(context.Background(), msg)

	require.Len(t, uc.recordedInputs, 1)
	assert.Equal(t, 9, uc.recordedInputs[0].ProductID)
}

func TestProcessMessage_InsufficientStockDoesNotAbortRemainingItems(t *testing.T) {
	uc := &MockStockUseCase{Err: stock.ErrInsufficientStock}
	l := newListener(uc)

	msg := []byte(`{
		"event_id": "evt-4",
		"event_type": "SaleRecorded",
		"payload": {"items": [
			{"product_id": 7, "quantity": 100},
			{"product_id": 9, "quantity": 100}
		]}
	}`)
	l.processMessage(context.Background(), msg)

	assert.Len(t, uc.recordedInputs, 2)
}

func TestProcessMessage_MalformedPayloadIsDropped(t *testing.T) {
	uc := &MockStockUseCase{}
	l := newListener(uc)

	l.processMessage(context.Background(), []byte(`{not json`))

	assert.Empty(t, uc.recordedInputs)
}

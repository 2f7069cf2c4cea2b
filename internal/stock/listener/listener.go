package listener

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/restockd/inventory-service/internal/stock"
	"github.com/restockd/inventory-service/internal/stock/dto"
	"github.com/restockd/inventory-service/pkg/broker"
	"github.com/restockd/inventory-service/pkg/logger"
	"go.uber.org/zap"
)

// SaleListener consumes point-of-sale events and appends Sale entries to the
// stock ledger. This is the only write path for Sale-typed entries.
type SaleListener struct {
	consumer *broker.KafkaConsumer
	uc       stock.UseCase
	logger   logger.ZapLogger
}

func NewSaleListener(consumer *broker.KafkaConsumer, uc stock.UseCase, logger logger.ZapLogger) *SaleListener {
	return &SaleListener{
		consumer: consumer,
		uc:       uc,
		logger:   logger,
	}
}

func (l *SaleListener) Start(ctx context.Context) {
	l.logger.Info("Starting sale Kafka listener")
	for {
		select {
		case <-ctx.Done():
			l.logger.Info("Stopping sale Kafka listener")
			return
		default:
			msg, err := l.consumer.ReadMessage(ctx)
			if err != nil {
				if ctx.Err() != nil {
					return
				}
				l.logger.Error("Failed to read kafka message", zap.Error(err))
				time.Sleep(1 * time.Second)
				continue
			}
			l.processMessage(ctx, msg.Value)
		}
	}
}

type SaleRecordedEvent struct {
	EventID   string      `json:"event_id"`
	EventType string      `json:"event_type"`
	Payload   SalePayload `json:"payload"`
	Timestamp time.Time   `json:"timestamp"`
}

type SalePayload struct {
	Items []SaleItemPayload `json:"items"`
}

type SaleItemPayload struct {
	ProductID int `json:"product_id"`
	Quantity  int `json:"quantity"`
}

func (l *SaleListener) processMessage(ctx context.Context, value []byte) {
	var event SaleRecordedEvent
	if err := json.Unmarshal(value, &event); err != nil {
		l.logger.Error("Failed to unmarshal event", zap.Error(err))
		return
	}

	if event.EventType != "SaleRecorded" {
		return
	}

	for _, item := range event.Payload.Items {
		if item.Quantity <= 0 {
			continue
		}

		_, err := l.uc.RecordSale(ctx, &dto.RecordSaleInput{
			ProductID:   item.ProductID,
			Quantity:    item.Quantity,
			ReferenceID: event.EventID,
		})
		if err != nil {
			if errors.Is(err, stock.ErrInsufficientStock) {
				l.logger.Warn("sale exceeds available stock, dropped",
					zap.String("event_id", event.EventID),
					zap.Int("product_id", item.ProductID),
					zap.Int("quantity", item.Quantity),
				)
				continue
			}
			l.logger.Error("Failed to record sale for event item",
				zap.String("event_id", event.EventID),
				zap.Int("product_id", item.ProductID),
				zap.Error(err),
			)
		}
	}
}

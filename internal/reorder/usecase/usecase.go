package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/restockd/inventory-service/internal/model"
	"github.com/restockd/inventory-service/internal/reorder"
	"github.com/restockd/inventory-service/internal/reorder/dto"
	"github.com/restockd/inventory-service/internal/report"
	"github.com/restockd/inventory-service/pkg/cache"
	"github.com/restockd/inventory-service/pkg/logger"
	"go.uber.org/zap"
)

// placeLockKey serializes id assignment across sessions: the id is the table
// max plus one, so two concurrent placements must not read the same max.
const placeLockKey = "lock:reorders:next-id"

type reorderUseCase struct {
	repo   reorder.Repository
	cache  *cache.RedisClient
	logger logger.ZapLogger
}

func NewReorderUseCase(repo reorder.Repository, cache *cache.RedisClient, log logger.ZapLogger) reorder.UseCase {
	return &reorderUseCase{
		repo:   repo,
		cache:  cache,
		logger: log,
	}
}

func (uc *reorderUseCase) PlaceReorder(ctx context.Context, input *dto.PlaceReorderInput) (*model.Reorder, error) {
	release, err := uc.acquireLock(ctx, placeLockKey)
	if err != nil {
		return nil, err
	}
	defer release()

	ro, err := uc.repo.Place(ctx, input.ProductID, input.Quantity)
	if err != nil {
		return nil, err
	}

	go uc.invalidateMetricsCache(context.Background())

	return ro, nil
}

func (uc *reorderUseCase) MarkAsReceived(ctx context.Context, reorderID int) (*model.Reorder, error) {
	release, err := uc.acquireLock(ctx, fmt.Sprintf("lock:reorder:%d", reorderID))
	if err != nil {
		return nil, err
	}
	defer release()

	ro, err := uc.repo.MarkReceived(ctx, reorderID)
	if err != nil {
		return nil, err
	}

	go uc.invalidateMetricsCache(context.Background())

	return ro, nil
}

func (uc *reorderUseCase) ListPending(ctx context.Context) ([]model.PendingReorder, error) {
	return uc.repo.ListPending(ctx)
}

// acquireLock tries a few times before giving up. Returns a release func that
// only deletes the lock if this session still holds it.
func (uc *reorderUseCase) acquireLock(ctx context.Context, key string) (func(), error) {
	if uc.cache == nil {
		return func() {}, nil
	}

	lockValue := uuid.New().String()
	acquired := false
	for i := 0; i < 3; i++ {
		ok, err := uc.cache.AcquireLock(ctx, key, lockValue, 5*time.Second)
		if err != nil {
			uc.logger.Error("failed to acquire lock redis error", zap.Error(err))
		}
		if ok {
			acquired = true
			break
		}
		time.Sleep(100 * time.Millisecond)
	}
	if !acquired {
		return nil, errors.New("system busy, please try again later (lock)")
	}

	return func() {
		if err := uc.cache.ReleaseLock(ctx, key, lockValue); err != nil {
			uc.logger.Error("failed to release lock", zap.String("key", key), zap.Error(err))
		}
	}, nil
}

func (uc *reorderUseCase) invalidateMetricsCache(ctx context.Context) {
	if uc.cache == nil {
		return
	}
	if err := uc.cache.Client.Del(ctx, report.MetricsCacheKey).Err(); err != nil {
		uc.logger.Error("failed to invalidate dashboard metrics cache", zap.Error(err))
	}
}

package inventory

import (
	"context"
	"fmt"
	"time"

	"bilheteria/internal/shared/constants"
	"bilheteria/pkg/cache"
	"bilheteria/pkg/logger"

	"github.com/google/uuid"
)

// Service is the Inventory Ledger's entry point for the external
// checkout/cancellation workflow. Failures are immediate and non-retriable
// here; retry policy belongs to the caller.
type Service interface {
	AdjustLotStock(ctx context.Context, req AdjustLotRequest) (*AdjustmentResult, error)
	SetSeatAvailability(ctx context.Context, req SeatAvailabilityRequest) (*AdjustmentResult, error)
	AdjustCompanionQuota(ctx context.Context, req AdjustQuotaRequest) (*QuotaResult, error)

	SetCacheService(cacheService cache.Service)
	SetSyncProducer(producer SyncProducer)
}

type service struct {
	repo         Repository
	cacheService cache.Service
	producer     SyncProducer
	log          *logger.Logger
}

// NewService creates a new inventory service instance
func NewService(repo Repository) Service {
	return &service{repo: repo, log: logger.GetDefault()}
}

// SetCacheService injects the cache service dependency
func (s *service) SetCacheService(cacheService cache.Service) {
	s.cacheService = cacheService
}

// SetSyncProducer injects the storefront stock-sync producer
func (s *service) SetSyncProducer(producer SyncProducer) {
	s.producer = producer
}

func (s *service) AdjustLotStock(ctx context.Context, req AdjustLotRequest) (*AdjustmentResult, error) {
	lotID, classID, err := parseLotClassIDs(req.LotID, req.ClassID)
	if err != nil {
		return nil, err
	}

	result, err := s.repo.AdjustLotStock(ctx, req.Delta, lotID, classID)
	if err != nil {
		s.log.LogStockRejected(ctx, req.ClassID, req.LotID, req.Delta, err)
		return nil, err
	}

	s.log.LogStockAdjusted(ctx, req.ClassID, req.LotID, req.Delta, result.MirroredQuantity)
	s.afterAdjustment(ctx, result)
	return result, nil
}

func (s *service) SetSeatAvailability(ctx context.Context, req SeatAvailabilityRequest) (*AdjustmentResult, error) {
	lotID, classID, err := parseLotClassIDs(req.LotID, req.ClassID)
	if err != nil {
		return nil, err
	}

	seatIDs := make([]uuid.UUID, 0, len(req.SeatIDs))
	for _, raw := range req.SeatIDs {
		id, err := uuid.Parse(raw)
		if err != nil {
			return nil, fmt.Errorf("%w: seat id %q", ErrInvalidID, raw)
		}
		seatIDs = append(seatIDs, id)
	}

	result, err := s.repo.SetSeatAvailability(ctx, seatIDs, lotID, classID, *req.Available)
	if err != nil {
		s.log.LogStockRejected(ctx, req.ClassID, req.LotID, len(seatIDs), err)
		return nil, err
	}

	s.log.LogStockAdjusted(ctx, req.ClassID, req.LotID, result.SeatsChanged, result.MirroredQuantity)
	s.afterAdjustment(ctx, result)
	return result, nil
}

func (s *service) AdjustCompanionQuota(ctx context.Context, req AdjustQuotaRequest) (*QuotaResult, error) {
	classID, err := uuid.Parse(req.ClassID)
	if err != nil {
		return nil, fmt.Errorf("%w: class id %q", ErrInvalidID, req.ClassID)
	}

	result, err := s.repo.AdjustCompanionQuota(ctx, req.Delta, classID, req.Label)
	if err != nil {
		return nil, err
	}

	s.invalidateEventCache(ctx, result.EventID)
	return result, nil
}

// afterAdjustment invalidates the event's cached reports and notifies the
// storefront mirroring sink. Both are best-effort: the authoritative state
// was already committed.
func (s *service) afterAdjustment(ctx context.Context, result *AdjustmentResult) {
	s.invalidateEventCache(ctx, result.EventID)

	if s.producer != nil {
		event := &StockSyncEvent{
			EventID:          result.EventID.String(),
			ClassID:          result.ClassID.String(),
			LotID:            result.LotID.String(),
			MirroredQuantity: result.MirroredQuantity,
			RolledOver:       result.RolledOver,
			AdjustedAt:       time.Now(),
		}
		if err := s.producer.PublishStockSync(ctx, event); err != nil {
			s.log.ErrorWithContext(ctx, "failed to publish stock sync", err, map[string]interface{}{
				"class_id": result.ClassID.String(),
				"lot_id":   result.LotID.String(),
			})
		}
	}
}

func (s *service) invalidateEventCache(ctx context.Context, eventID uuid.UUID) {
	if s.cacheService == nil {
		return
	}
	pattern := constants.EventCachePattern(eventID.String())
	if err := s.cacheService.DeletePattern(ctx, pattern); err != nil {
		s.log.ErrorWithContext(ctx, "failed to invalidate report cache", err, map[string]interface{}{
			"event_id": eventID.String(),
		})
	}
}

func parseLotClassIDs(rawLot, rawClass string) (uuid.UUID, uuid.UUID, error) {
	lotID, err := uuid.Parse(rawLot)
	if err != nil {
		return uuid.Nil, uuid.Nil, fmt.Errorf("%w: lot id %q", ErrInvalidID, rawLot)
	}
	classID, err := uuid.Parse(rawClass)
	if err != nil {
		return uuid.Nil, uuid.Nil, fmt.Errorf("%w: class id %q", ErrInvalidID, rawClass)
	}
	return lotID, classID, nil
}

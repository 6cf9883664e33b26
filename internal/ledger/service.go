package ledger

import (
	"context"

	"bilheteria/internal/reconcile"
	"bilheteria/internal/shared/constants"
	"bilheteria/pkg/cache"
	"bilheteria/pkg/logger"

	"github.com/google/uuid"
)

// Service answers the detailed and cancelled ledgers plus the discrete
// filter-option lists.
type Service interface {
	GetDetailedLedger(ctx context.Context, eventID uuid.UUID, params QueryParams) (*Ledger, error)
	GetCancelledLedger(ctx context.Context, eventID uuid.UUID) (*Ledger, error)
	GetFilterOptions(ctx context.Context, eventID uuid.UUID) (*FilterOptions, error)

	SetCacheService(cacheService cache.Service)
}

type service struct {
	repo         Repository
	cacheService cache.Service
	log          *logger.Logger
}

// NewService creates a new ledger service instance
func NewService(repo Repository) Service {
	return &service{repo: repo, log: logger.GetDefault()}
}

// SetCacheService injects the cache service dependency
func (s *service) SetCacheService(cacheService cache.Service) {
	s.cacheService = cacheService
}

func (s *service) GetDetailedLedger(ctx context.Context, eventID uuid.UUID, params QueryParams) (*Ledger, error) {
	key := constants.BuildLedgerKey(eventID.String(), params.cacheKey())
	if s.cacheService != nil {
		var cached Ledger
		if s.cacheService.Get(ctx, key, &cached) == nil {
			return &cached, nil
		}
	}

	tickets, err := s.resolvedTickets(ctx, eventID)
	if err != nil {
		return nil, err
	}

	matched, err := applyQuery(tickets, params)
	if err != nil {
		return nil, err
	}

	result := &Ledger{EventID: eventID.String(), Rows: buildRows(matched)}
	if perPage, page, ok := params.pagination(); ok {
		paged, totalPages := paginate(result.Rows, perPage, page)
		result.Rows = paged
		result.Pagina = &page
		result.TotalPaginas = &totalPages
	}

	if s.cacheService != nil {
		if err := s.cacheService.Set(ctx, key, result, constants.TTL_LEDGER); err != nil {
			s.log.ErrorWithContext(ctx, "failed to cache ledger", err, map[string]interface{}{
				"event_id": eventID.String(),
			})
		}
	}
	return result, nil
}

// GetCancelledLedger lists tickets that are cancelled under the
// cancelled-ledger rule, which is distinct from "not active".
func (s *service) GetCancelledLedger(ctx context.Context, eventID uuid.UUID) (*Ledger, error) {
	tickets, err := s.resolvedTickets(ctx, eventID)
	if err != nil {
		return nil, err
	}

	cancelled := make([]reconcile.Ticket, 0, len(tickets))
	for _, t := range tickets {
		if t.Cancelled {
			cancelled = append(cancelled, t)
		}
	}

	return &Ledger{EventID: eventID.String(), Rows: buildRows(cancelled)}, nil
}

func (s *service) GetFilterOptions(ctx context.Context, eventID uuid.UUID) (*FilterOptions, error) {
	key := constants.BuildLedgerKey(eventID.String(), "filter-options")
	if s.cacheService != nil {
		var cached FilterOptions
		if s.cacheService.Get(ctx, key, &cached) == nil {
			return &cached, nil
		}
	}

	tickets, err := s.resolvedTickets(ctx, eventID)
	if err != nil {
		return nil, err
	}

	pdvs := make(map[string]bool)
	terminals := make(map[string]bool)
	statuses := make(map[string]bool)
	classes := make(map[string]bool)
	for _, t := range tickets {
		pdvs[pdvDisplay(t)] = true
		if t.Terminal != "" {
			terminals[t.Terminal] = true
		}
		statuses[t.StatusLabel] = true
		classes[t.ClassName] = true
	}

	options := &FilterOptions{
		EventID:   eventID.String(),
		PDVs:      sortedKeys(pdvs),
		Terminals: sortedKeys(terminals),
		Statuses:  sortedKeys(statuses),
		Classes:   sortedKeys(classes),
	}

	if s.cacheService != nil {
		if err := s.cacheService.Set(ctx, key, options, constants.TTL_FILTER_OPTIONS); err != nil {
			s.log.ErrorWithContext(ctx, "failed to cache filter options", err, map[string]interface{}{
				"event_id": eventID.String(),
			})
		}
	}
	return options, nil
}

func (s *service) resolvedTickets(ctx context.Context, eventID uuid.UUID) ([]reconcile.Ticket, error) {
	rows, err := s.repo.GetTicketRows(ctx, eventID)
	if err != nil {
		return nil, err
	}
	return reconcile.ResolveAll(rows), nil
}

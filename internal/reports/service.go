package reports

import (
	"context"
	"time"

	"bilheteria/internal/catalog"
	"bilheteria/internal/reconcile"
	"bilheteria/internal/shared/constants"
	"bilheteria/pkg/cache"
	"bilheteria/pkg/logger"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

// Service generates every analytic report of an event. Reads are stateless
// and fail closed: any storage failure aborts the whole report, no partial
// payload is returned.
type Service interface {
	GetOverview(ctx context.Context, eventID uuid.UUID) (*Overview, error)
	GetStatusSummary(ctx context.Context, eventID uuid.UUID) (*StatusSummary, error)
	GetCategoryBreakdown(ctx context.Context, eventID uuid.UUID) (*CategoryBreakdown, error)
	GetPDVBreakdown(ctx context.Context, eventID uuid.UUID) (*PDVBreakdown, error)
	GetDailyByClass(ctx context.Context, eventID uuid.UUID) (*DailyBreakdown, error)
	GetDailyByPDV(ctx context.Context, eventID uuid.UUID) (*DailyBreakdown, error)
	GetSeatReport(ctx context.Context, eventID uuid.UUID) (*SeatReport, error)
	GetSalesCharts(ctx context.Context, eventID uuid.UUID) (*SalesCharts, error)

	SetCacheService(cacheService cache.Service)
}

type service struct {
	repo         Repository
	catalogRepo  catalog.Repository
	cacheService cache.Service
	log          *logger.Logger
}

// NewService creates a new reports service instance
func NewService(repo Repository, catalogRepo catalog.Repository) Service {
	return &service{repo: repo, catalogRepo: catalogRepo, log: logger.GetDefault()}
}

// SetCacheService injects the cache service dependency
func (s *service) SetCacheService(cacheService cache.Service) {
	s.cacheService = cacheService
}

func (s *service) GetOverview(ctx context.Context, eventID uuid.UUID) (*Overview, error) {
	var cached Overview
	if s.cacheFetch(ctx, "overview", eventID, &cached) {
		return &cached, nil
	}
	start := time.Now()

	// Event header and ticket stream are independent reads.
	var (
		event   *catalog.Event
		tickets []reconcile.Ticket
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		event, err = s.catalogRepo.GetEventByID(gctx, eventID)
		return err
	})
	g.Go(func() error {
		var err error
		tickets, err = s.resolvedTickets(gctx, eventID)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	overview := buildOverview(event, tickets, time.Now())
	s.cacheStore(ctx, "overview", eventID, overview, constants.TTL_REPORT_OVERVIEW)
	s.log.LogReportServed(ctx, "overview", eventID.String(), time.Since(start))
	return overview, nil
}

func (s *service) GetStatusSummary(ctx context.Context, eventID uuid.UUID) (*StatusSummary, error) {
	var cached StatusSummary
	if s.cacheFetch(ctx, "status", eventID, &cached) {
		return &cached, nil
	}

	tickets, err := s.resolvedTickets(ctx, eventID)
	if err != nil {
		return nil, err
	}

	summary := buildStatusSummary(eventID.String(), tickets)
	s.cacheStore(ctx, "status", eventID, summary, constants.TTL_REPORT_DEFAULT)
	return summary, nil
}

func (s *service) GetCategoryBreakdown(ctx context.Context, eventID uuid.UUID) (*CategoryBreakdown, error) {
	var cached CategoryBreakdown
	if s.cacheFetch(ctx, "categories", eventID, &cached) {
		return &cached, nil
	}

	var (
		tickets []reconcile.Ticket
		classes []catalog.TicketClass
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		tickets, err = s.resolvedTickets(gctx, eventID)
		return err
	})
	g.Go(func() error {
		var err error
		classes, err = s.catalogRepo.ListClassesByEvent(gctx, eventID)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	breakdown := buildCategoryBreakdown(eventID.String(), tickets, classes)
	s.cacheStore(ctx, "categories", eventID, breakdown, constants.TTL_REPORT_DEFAULT)
	return breakdown, nil
}

func (s *service) GetPDVBreakdown(ctx context.Context, eventID uuid.UUID) (*PDVBreakdown, error) {
	var cached PDVBreakdown
	if s.cacheFetch(ctx, "pdvs", eventID, &cached) {
		return &cached, nil
	}

	var (
		tickets []reconcile.Ticket
		pdvs    []catalog.PDV
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		tickets, err = s.resolvedTickets(gctx, eventID)
		return err
	})
	g.Go(func() error {
		var err error
		pdvs, err = s.catalogRepo.ListPDVs(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	breakdown := buildPDVBreakdown(eventID.String(), tickets, pdvs, time.Now())
	s.cacheStore(ctx, "pdvs", eventID, breakdown, constants.TTL_REPORT_DEFAULT)
	return breakdown, nil
}

func (s *service) GetDailyByClass(ctx context.Context, eventID uuid.UUID) (*DailyBreakdown, error) {
	var cached DailyBreakdown
	if s.cacheFetch(ctx, "daily-classes", eventID, &cached) {
		return &cached, nil
	}

	tickets, err := s.resolvedTickets(ctx, eventID)
	if err != nil {
		return nil, err
	}

	breakdown := buildDailyBreakdown(eventID.String(), tickets, classKey)
	s.cacheStore(ctx, "daily-classes", eventID, breakdown, constants.TTL_REPORT_DEFAULT)
	return breakdown, nil
}

func (s *service) GetDailyByPDV(ctx context.Context, eventID uuid.UUID) (*DailyBreakdown, error) {
	var cached DailyBreakdown
	if s.cacheFetch(ctx, "daily-pdvs", eventID, &cached) {
		return &cached, nil
	}

	tickets, err := s.resolvedTickets(ctx, eventID)
	if err != nil {
		return nil, err
	}

	breakdown := buildDailyBreakdown(eventID.String(), tickets, pdvKey)
	s.cacheStore(ctx, "daily-pdvs", eventID, breakdown, constants.TTL_REPORT_DEFAULT)
	return breakdown, nil
}

func (s *service) GetSeatReport(ctx context.Context, eventID uuid.UUID) (*SeatReport, error) {
	var cached SeatReport
	if s.cacheFetch(ctx, "seats", eventID, &cached) {
		return &cached, nil
	}

	var (
		tickets []reconcile.Ticket
		cat     *seatCatalog
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		tickets, err = s.resolvedTickets(gctx, eventID)
		return err
	})
	g.Go(func() error {
		var err error
		cat, err = s.loadSeatCatalog(gctx, eventID)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	report := buildSeatReport(eventID.String(), cat, tickets, time.Now())
	s.cacheStore(ctx, "seats", eventID, report, constants.TTL_REPORT_DEFAULT)
	return report, nil
}

func (s *service) GetSalesCharts(ctx context.Context, eventID uuid.UUID) (*SalesCharts, error) {
	var cached SalesCharts
	if s.cacheFetch(ctx, "charts", eventID, &cached) {
		return &cached, nil
	}

	var (
		tickets []reconcile.Ticket
		lots    []catalog.Lot
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		tickets, err = s.resolvedTickets(gctx, eventID)
		return err
	})
	g.Go(func() error {
		var err error
		lots, err = s.catalogRepo.ListLotsByEvent(gctx, eventID)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	charts := buildSalesCharts(eventID.String(), tickets, lots)
	s.cacheStore(ctx, "charts", eventID, charts, constants.TTL_REPORT_DEFAULT)
	return charts, nil
}

// resolvedTickets reads the event's raw rows and derives the canonical view.
func (s *service) resolvedTickets(ctx context.Context, eventID uuid.UUID) ([]reconcile.Ticket, error) {
	rows, err := s.repo.GetTicketRows(ctx, eventID)
	if err != nil {
		return nil, err
	}
	return reconcile.ResolveAll(rows), nil
}

func (s *service) loadSeatCatalog(ctx context.Context, eventID uuid.UUID) (*seatCatalog, error) {
	classes, err := s.catalogRepo.ListClassesByEvent(ctx, eventID)
	if err != nil {
		return nil, err
	}

	cat := &seatCatalog{
		Classes: classes,
		Groups:  make(map[uuid.UUID][]catalog.SeatGroup),
		Seats:   make(map[uuid.UUID][]catalog.Seat),
	}
	for _, class := range classes {
		if !class.Numbered {
			continue
		}
		groups, err := s.catalogRepo.ListSeatGroupsByClass(ctx, class.ID)
		if err != nil {
			return nil, err
		}
		cat.Groups[class.ID] = groups
		for _, group := range groups {
			seats, err := s.catalogRepo.ListSeatsByGroup(ctx, group.ID)
			if err != nil {
				return nil, err
			}
			cat.Seats[group.ID] = seats
		}
	}
	return cat, nil
}

func (s *service) cacheFetch(ctx context.Context, report string, eventID uuid.UUID, dest interface{}) bool {
	if s.cacheService == nil {
		return false
	}
	key := constants.BuildReportKey(report, eventID.String())
	return s.cacheService.Get(ctx, key, dest) == nil
}

func (s *service) cacheStore(ctx context.Context, report string, eventID uuid.UUID, value interface{}, ttl time.Duration) {
	if s.cacheService == nil {
		return
	}
	key := constants.BuildReportKey(report, eventID.String())
	if err := s.cacheService.Set(ctx, key, value, ttl); err != nil {
		s.log.ErrorWithContext(ctx, "failed to cache report", err, map[string]interface{}{
			"report":   report,
			"event_id": eventID.String(),
		})
	}
}

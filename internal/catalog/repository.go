package catalog

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Repository exposes the read-only lookups over the provisioned catalog.
// Everything here is created and mutated by the external back-office process;
// this engine only reads.
type Repository interface {
	GetEventByID(ctx context.Context, id uuid.UUID) (*Event, error)
	ListClassesByEvent(ctx context.Context, eventID uuid.UUID) ([]TicketClass, error)
	ListLotsByEvent(ctx context.Context, eventID uuid.UUID) ([]Lot, error)
	ListSeatGroupsByClass(ctx context.Context, classID uuid.UUID) ([]SeatGroup, error)
	ListSeatsByGroup(ctx context.Context, groupID uuid.UUID) ([]Seat, error)
	ListPDVs(ctx context.Context) ([]PDV, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) GetEventByID(ctx context.Context, id uuid.UUID) (*Event, error) {
	var event Event
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&event).Error
	if err != nil {
		return nil, err
	}
	return &event, nil
}

func (r *repository) ListClassesByEvent(ctx context.Context, eventID uuid.UUID) ([]TicketClass, error) {
	var classes []TicketClass
	err := r.db.WithContext(ctx).
		Preload("Category").
		Where("event_id = ?", eventID).
		Order("name ASC").
		Find(&classes).Error
	return classes, err
}

func (r *repository) ListLotsByEvent(ctx context.Context, eventID uuid.UUID) ([]Lot, error) {
	var lots []Lot
	err := r.db.WithContext(ctx).
		Joins("JOIN ticket_classes tc ON tc.id = lots.class_id").
		Where("tc.event_id = ?", eventID).
		Order("lots.priority ASC").
		Find(&lots).Error
	return lots, err
}

func (r *repository) ListSeatGroupsByClass(ctx context.Context, classID uuid.UUID) ([]SeatGroup, error) {
	var groups []SeatGroup
	err := r.db.WithContext(ctx).
		Where("class_id = ?", classID).
		Order("label ASC").
		Find(&groups).Error
	return groups, err
}

func (r *repository) ListSeatsByGroup(ctx context.Context, groupID uuid.UUID) ([]Seat, error) {
	var seats []Seat
	err := r.db.WithContext(ctx).
		Where("group_id = ?", groupID).
		Order("label ASC").
		Find(&seats).Error
	return seats, err
}

func (r *repository) ListPDVs(ctx context.Context) ([]PDV, error) {
	var pdvs []PDV
	err := r.db.WithContext(ctx).Order("name ASC").Find(&pdvs).Error
	return pdvs, err
}

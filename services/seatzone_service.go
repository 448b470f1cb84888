package services

import (
	"context"
	"strings"

	"github.com/Dosada05/event-console/models"
	"github.com/Dosada05/event-console/repositories"
	"github.com/google/uuid"
)

type SeatZoneService interface {
	Add(ctx context.Context, draftID string, input SeatZoneInput) (*models.SeatZone, error)
	Update(ctx context.Context, draftID, zoneID string, input SeatZoneInput) (*models.SeatZone, error)
	Remove(ctx context.Context, draftID, zoneID string) error
}

type SeatZoneInput struct {
	Name      string
	SeatCount int
	Price     float64
}

type seatZoneService struct {
	drafts repositories.DraftRepository
}

func NewSeatZoneService(drafts repositories.DraftRepository) SeatZoneService {
	return &seatZoneService{drafts: drafts}
}

func (in SeatZoneInput) validate() error {
	if strings.TrimSpace(in.Name) == "" {
		return ErrZoneNameRequired
	}
	if in.SeatCount <= 0 {
		return ErrInvalidSeatCount
	}
	if in.Price < 0 {
		return ErrInvalidPrice
	}
	return nil
}

func (s *seatZoneService) Add(ctx context.Context, draftID string, input SeatZoneInput) (*models.SeatZone, error) {
	if err := input.validate(); err != nil {
		return nil, err
	}

	var created models.SeatZone
	err := mutateDraft(ctx, s.drafts, draftID, func(d *models.EventDraft) error {
		created = models.SeatZone{
			ID:         uuid.NewString(),
			Name:       input.Name,
			SeatCount:  input.SeatCount,
			Price:      input.Price,
			SeatLabels: models.GenerateSeatLabels(input.Name, input.SeatCount),
		}
		d.SeatZones = append(d.SeatZones, created)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &created, nil
}

// Update replaces the zone's fields and regenerates the seat label list in
// full. No incremental patching of labels.
func (s *seatZoneService) Update(ctx context.Context, draftID, zoneID string, input SeatZoneInput) (*models.SeatZone, error) {
	if err := input.validate(); err != nil {
		return nil, err
	}

	var updated models.SeatZone
	err := mutateDraft(ctx, s.drafts, draftID, func(d *models.EventDraft) error {
		zone := d.SeatZoneByID(zoneID)
		if zone == nil {
			return ErrSeatZoneNotFound
		}
		zone.Name = input.Name
		zone.SeatCount = input.SeatCount
		zone.Price = input.Price
		zone.SeatLabels = models.GenerateSeatLabels(input.Name, input.SeatCount)

		updated = *zone
		updated.SeatLabels = append([]string(nil), zone.SeatLabels...)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

// Remove deletes the zone. Nothing references seat zones, so there is no
// cascade.
func (s *seatZoneService) Remove(ctx context.Context, draftID, zoneID string) error {
	return mutateDraft(ctx, s.drafts, draftID, func(d *models.EventDraft) error {
		for i := range d.SeatZones {
			if d.SeatZones[i].ID == zoneID {
				d.SeatZones = append(d.SeatZones[:i], d.SeatZones[i+1:]...)
				return nil
			}
		}
		return ErrSeatZoneNotFound
	})
}

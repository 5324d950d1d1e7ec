package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/pkordes/family-trips/internal/domain"
	"github.com/pkordes/family-trips/internal/repo"
)

// ItineraryService implements business logic for itinerary items.
// Every operation is scoped to the trip in the URL.
type ItineraryService struct {
	trips repo.TripRepo
	items repo.ItineraryRepo
}

// NewItineraryService constructs an ItineraryService backed by the provided repos.
func NewItineraryService(trips repo.TripRepo, items repo.ItineraryRepo) *ItineraryService {
	return &ItineraryService{trips: trips, items: items}
}

// List returns a trip's itinerary in schedule order.
func (s *ItineraryService) List(ctx context.Context, tripID uuid.UUID) ([]domain.ItineraryItem, error) {
	if _, err := loadTrip(ctx, s.trips, tripID); err != nil {
		return nil, fmt.Errorf("service.ItineraryService.List: %w", err)
	}
	items, err := s.items.ListByTripID(ctx, tripID)
	if err != nil {
		return nil, fmt.Errorf("service.ItineraryService.List: %w", err)
	}
	return emptyIfNil(items), nil
}

// Create validates and adds an item to a trip's itinerary.
// sortOrder defaults to 0.
func (s *ItineraryService) Create(ctx context.Context, tripID uuid.UUID, in domain.ItineraryItemInput) (domain.ItineraryItem, error) {
	title := trimmed(in.Title)
	if trimmed(in.Date) == "" || title == "" || trimmed(in.Type) == "" {
		return domain.ItineraryItem{}, domain.Invalid("Date, title, and type are required")
	}
	item, err := applyItineraryItem(domain.ItineraryItem{TripID: tripID, Title: title}, in)
	if err != nil {
		return domain.ItineraryItem{}, err
	}

	if _, err := loadTrip(ctx, s.trips, tripID); err != nil {
		return domain.ItineraryItem{}, fmt.Errorf("service.ItineraryService.Create: %w", err)
	}
	result, err := s.items.Create(ctx, item)
	if err != nil {
		return domain.ItineraryItem{}, fmt.Errorf("service.ItineraryService.Create: %w", err)
	}
	return result, nil
}

// Update applies a partial update to an item that belongs to tripID.
func (s *ItineraryService) Update(ctx context.Context, tripID, itemID uuid.UUID, in domain.ItineraryItemInput) (domain.ItineraryItem, error) {
	item, err := s.owned(ctx, tripID, itemID)
	if err != nil {
		return domain.ItineraryItem{}, fmt.Errorf("service.ItineraryService.Update: %w", err)
	}

	if item.Title, err = patchRequired(item.Title, in.Title, "title"); err != nil {
		return domain.ItineraryItem{}, err
	}
	if in.Date != nil && trimmed(in.Date) == "" {
		return domain.ItineraryItem{}, domain.Invalid("date is required")
	}
	if item, err = applyItineraryItem(item, in); err != nil {
		return domain.ItineraryItem{}, err
	}

	result, err := s.items.Update(ctx, item)
	if err != nil {
		return domain.ItineraryItem{}, fmt.Errorf("service.ItineraryService.Update: %w", mapNotFound(err, "Itinerary item not found"))
	}
	return result, nil
}

// Delete removes an item that belongs to tripID.
func (s *ItineraryService) Delete(ctx context.Context, tripID, itemID uuid.UUID) error {
	if _, err := s.owned(ctx, tripID, itemID); err != nil {
		return fmt.Errorf("service.ItineraryService.Delete: %w", err)
	}
	if err := s.items.Delete(ctx, itemID); err != nil {
		return fmt.Errorf("service.ItineraryService.Delete: %w", mapNotFound(err, "Itinerary item not found"))
	}
	return nil
}

func (s *ItineraryService) owned(ctx context.Context, tripID, itemID uuid.UUID) (domain.ItineraryItem, error) {
	return loadOwned(ctx, s.items.GetByID, itemID, tripID,
		func(i domain.ItineraryItem) uuid.UUID { return i.TripID }, "Itinerary item not found")
}

// applyItineraryItem merges every field of in except title into item and
// validates the result. A nil field keeps the current value.
func applyItineraryItem(item domain.ItineraryItem, in domain.ItineraryItemInput) (domain.ItineraryItem, error) {
	var err error
	if in.Date != nil {
		if item.Date, err = parseDate("date", *in.Date); err != nil {
			return domain.ItineraryItem{}, err
		}
	}
	if in.Type != nil {
		if item.Type, err = domain.ParseItineraryItemType(*in.Type); err != nil {
			return domain.ItineraryItem{}, err
		}
	}
	item.Location = patchText(item.Location, in.Location)
	item.Notes = patchText(item.Notes, in.Notes)
	if item.StartTime, err = patchClock(item.StartTime, in.StartTime, "startTime"); err != nil {
		return domain.ItineraryItem{}, err
	}
	if item.EndTime, err = patchClock(item.EndTime, in.EndTime, "endTime"); err != nil {
		return domain.ItineraryItem{}, err
	}
	// Zero-padded HH:MM strings order lexically.
	if item.StartTime != nil && item.EndTime != nil && *item.EndTime < *item.StartTime {
		return domain.ItineraryItem{}, domain.Invalid("endTime must not be before startTime")
	}
	item.SortOrder = orDefault(in.SortOrder, item.SortOrder)
	return item, nil
}

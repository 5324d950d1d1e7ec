package service

import (
	"context"
	"fmt"
	"sort"

	"github.com/google/uuid"
	openapi_types "github.com/oapi-codegen/runtime/types"

	"github.com/pkordes/family-trips/internal/domain"
	"github.com/pkordes/family-trips/internal/repo"
)

// ExportService assembles a full flat export of all trips, itinerary items,
// and participant names.
type ExportService struct {
	trips        repo.TripRepo
	items        repo.ItineraryRepo
	participants repo.ParticipantRepo
}

// NewExportService constructs an ExportService backed by the provided repos.
func NewExportService(trips repo.TripRepo, items repo.ItineraryRepo, participants repo.ParticipantRepo) *ExportService {
	return &ExportService{trips: trips, items: items, participants: participants}
}

// Export returns one ExportRow per itinerary item across all trips, in trip
// list order. Trips with no items contribute one row with empty item fields.
func (s *ExportService) Export(ctx context.Context) ([]domain.ExportRow, error) {
	trips, err := s.trips.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("service.ExportService.Export: %w", err)
	}
	items, err := s.items.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("service.ExportService.Export: %w", err)
	}
	participants, err := s.participants.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("service.ExportService.Export: %w", err)
	}

	itemsByTrip := make(map[uuid.UUID][]domain.ItineraryItem)
	for _, it := range items {
		itemsByTrip[it.TripID] = append(itemsByTrip[it.TripID], it)
	}
	namesByTrip := make(map[uuid.UUID][]string)
	for _, p := range participants {
		namesByTrip[p.TripID] = append(namesByTrip[p.TripID], p.Name)
	}

	rows := make([]domain.ExportRow, 0, len(items)+len(trips))
	for _, t := range trips {
		names := emptyIfNil(namesByTrip[t.ID])
		sort.Strings(names)

		base := domain.ExportRow{
			TripID:        t.ID.String(),
			TripName:      t.Name,
			Destination:   deref(t.Destination),
			TripStartDate: formatDate(t.StartDate),
			TripEndDate:   formatDate(t.EndDate),
			Participants:  names,
		}
		tripItems := itemsByTrip[t.ID]
		if len(tripItems) == 0 {
			rows = append(rows, base)
			continue
		}
		for _, it := range tripItems {
			row := base
			row.ItemDate = formatDate(&it.Date)
			row.ItemTitle = it.Title
			row.ItemType = string(it.Type)
			row.ItemLocation = deref(it.Location)
			row.StartTime = deref(it.StartTime)
			row.EndTime = deref(it.EndTime)
			rows = append(rows, row)
		}
	}
	return rows, nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func formatDate(d *openapi_types.Date) string {
	if d == nil {
		return ""
	}
	return d.Format(dateLayout)
}

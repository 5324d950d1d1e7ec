package repo

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/pkordes/family-trips/internal/domain"
)

// ItineraryRepo defines the persistence operations for itinerary items.
type ItineraryRepo interface {
	Create(ctx context.Context, item domain.ItineraryItem) (domain.ItineraryItem, error)

	// GetByID returns domain.ErrNotFound if no item with that ID exists.
	GetByID(ctx context.Context, id uuid.UUID) (domain.ItineraryItem, error)

	// ListByTripID returns a trip's items ordered by date, sort_order, start_time.
	ListByTripID(ctx context.Context, tripID uuid.UUID) ([]domain.ItineraryItem, error)

	// ListAll returns every item ordered by trip, then as ListByTripID.
	ListAll(ctx context.Context) ([]domain.ItineraryItem, error)

	Update(ctx context.Context, item domain.ItineraryItem) (domain.ItineraryItem, error)

	// Delete returns domain.ErrNotFound if no item with that ID exists.
	Delete(ctx context.Context, id uuid.UUID) error
}

type pgItineraryRepo struct {
	db db
}

// NewItineraryRepo constructs an ItineraryRepo backed by the provided db connection.
func NewItineraryRepo(db db) ItineraryRepo {
	return &pgItineraryRepo{db: db}
}

const itineraryColumns = `id, trip_id, date, title, type, location, start_time, end_time, notes, sort_order, created_at, updated_at`

const itineraryOrder = `date, sort_order, start_time NULLS LAST, created_at`

func itineraryArgs(item domain.ItineraryItem) pgx.NamedArgs {
	return pgx.NamedArgs{
		"id":         item.ID,
		"trip_id":    item.TripID,
		"date":       item.Date.Time,
		"title":      item.Title,
		"type":       string(item.Type),
		"location":   item.Location,
		"start_time": item.StartTime,
		"end_time":   item.EndTime,
		"notes":      item.Notes,
		"sort_order": item.SortOrder,
	}
}

func (r *pgItineraryRepo) Create(ctx context.Context, item domain.ItineraryItem) (domain.ItineraryItem, error) {
	const q = `
		INSERT INTO itinerary_items (trip_id, date, title, type, location, start_time, end_time, notes, sort_order)
		VALUES (@trip_id, @date, @title, @type, @location, @start_time, @end_time, @notes, @sort_order)
		RETURNING ` + itineraryColumns

	result, err := scanItineraryItem(r.db.QueryRow(ctx, q, itineraryArgs(item)))
	if err != nil {
		return domain.ItineraryItem{}, fmt.Errorf("repo.ItineraryRepo.Create: %w", err)
	}
	return result, nil
}

func (r *pgItineraryRepo) GetByID(ctx context.Context, id uuid.UUID) (domain.ItineraryItem, error) {
	const q = `SELECT ` + itineraryColumns + ` FROM itinerary_items WHERE id = @id`

	result, err := scanItineraryItem(r.db.QueryRow(ctx, q, pgx.NamedArgs{"id": id}))
	if err != nil {
		return domain.ItineraryItem{}, fmt.Errorf("repo.ItineraryRepo.GetByID: %w", err)
	}
	return result, nil
}

func (r *pgItineraryRepo) ListByTripID(ctx context.Context, tripID uuid.UUID) ([]domain.ItineraryItem, error) {
	const q = `SELECT ` + itineraryColumns + ` FROM itinerary_items WHERE trip_id = @trip_id ORDER BY ` + itineraryOrder

	rows, err := r.db.Query(ctx, q, pgx.NamedArgs{"trip_id": tripID})
	if err != nil {
		return nil, fmt.Errorf("repo.ItineraryRepo.ListByTripID: %w", err)
	}
	items, err := collect(rows, scanItineraryItem)
	if err != nil {
		return nil, fmt.Errorf("repo.ItineraryRepo.ListByTripID: %w", err)
	}
	return items, nil
}

func (r *pgItineraryRepo) ListAll(ctx context.Context) ([]domain.ItineraryItem, error) {
	const q = `SELECT ` + itineraryColumns + ` FROM itinerary_items ORDER BY trip_id, ` + itineraryOrder

	rows, err := r.db.Query(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("repo.ItineraryRepo.ListAll: %w", err)
	}
	items, err := collect(rows, scanItineraryItem)
	if err != nil {
		return nil, fmt.Errorf("repo.ItineraryRepo.ListAll: %w", err)
	}
	return items, nil
}

func (r *pgItineraryRepo) Update(ctx context.Context, item domain.ItineraryItem) (domain.ItineraryItem, error) {
	const q = `
		UPDATE itinerary_items
		SET date       = @date,
		    title      = @title,
		    type       = @type,
		    location   = @location,
		    start_time = @start_time,
		    end_time   = @end_time,
		    notes      = @notes,
		    sort_order = @sort_order,
		    updated_at = now()
		WHERE id = @id
		RETURNING ` + itineraryColumns

	result, err := scanItineraryItem(r.db.QueryRow(ctx, q, itineraryArgs(item)))
	if err != nil {
		return domain.ItineraryItem{}, fmt.Errorf("repo.ItineraryRepo.Update: %w", err)
	}
	return result, nil
}

func (r *pgItineraryRepo) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM itinerary_items WHERE id = @id`, pgx.NamedArgs{"id": id})
	if err != nil {
		return fmt.Errorf("repo.ItineraryRepo.Delete: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("repo.ItineraryRepo.Delete: %w", domain.ErrNotFound)
	}
	return nil
}

func scanItineraryItem(s scanner) (domain.ItineraryItem, error) {
	var (
		item     domain.ItineraryItem
		id       pgtype.UUID
		tripID   pgtype.UUID
		date     pgtype.Date
		itemType string
	)
	err := s.Scan(&id, &tripID, &date, &item.Title, &itemType, &item.Location, &item.StartTime,
		&item.EndTime, &item.Notes, &item.SortOrder, &item.CreatedAt, &item.UpdatedAt)
	if err != nil {
		return domain.ItineraryItem{}, notFound(err)
	}
	item.ID = uuid.UUID(id.Bytes)
	item.TripID = uuid.UUID(tripID.Bytes)
	item.Date.Time = date.Time
	item.Type = domain.ItineraryItemType(itemType)
	return item, nil
}

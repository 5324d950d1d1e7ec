// Package service contains the business logic for the family trips API.
// Services validate inputs, enforce business rules, and orchestrate repo calls.
// No SQL lives here; services depend on repo interfaces, not implementations.
package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/pkordes/family-trips/internal/domain"
	"github.com/pkordes/family-trips/internal/repo"
)

// TripService implements business logic for Trip operations.
type TripService struct {
	repo repo.TripRepo
}

// NewTripService constructs a TripService backed by the provided TripRepo.
func NewTripService(r repo.TripRepo) *TripService {
	return &TripService{repo: r}
}

// Create validates and persists a new trip.
func (s *TripService) Create(ctx context.Context, in domain.TripInput) (domain.Trip, error) {
	name := trimmed(in.Name)
	if name == "" {
		return domain.Trip{}, domain.Invalid("Name is required")
	}
	trip, err := applyTrip(domain.Trip{Name: name}, in)
	if err != nil {
		return domain.Trip{}, err
	}

	result, err := s.repo.Create(ctx, trip)
	if err != nil {
		return domain.Trip{}, fmt.Errorf("service.TripService.Create: %w", err)
	}
	return result, nil
}

// GetByID returns a single trip by ID.
func (s *TripService) GetByID(ctx context.Context, id uuid.UUID) (domain.Trip, error) {
	trip, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return domain.Trip{}, fmt.Errorf("service.TripService.GetByID: %w", mapNotFound(err, "Trip not found"))
	}
	return trip, nil
}

// List returns one page of trips, most recent first.
// Always returns a non-nil slice so callers can safely range over it.
func (s *TripService) List(ctx context.Context, p domain.PageRequest) ([]domain.Trip, error) {
	trips, err := s.repo.ListPaged(ctx, p)
	if err != nil {
		return nil, fmt.Errorf("service.TripService.List: %w", err)
	}
	return emptyIfNil(trips), nil
}

// Update applies a partial update to an existing trip.
func (s *TripService) Update(ctx context.Context, id uuid.UUID, in domain.TripInput) (domain.Trip, error) {
	current, err := s.GetByID(ctx, id)
	if err != nil {
		return domain.Trip{}, err
	}

	name, err := patchRequired(current.Name, in.Name, "Name")
	if err != nil {
		return domain.Trip{}, err
	}
	current.Name = name
	trip, err := applyTrip(current, in)
	if err != nil {
		return domain.Trip{}, err
	}

	result, err := s.repo.Update(ctx, trip)
	if err != nil {
		return domain.Trip{}, fmt.Errorf("service.TripService.Update: %w", mapNotFound(err, "Trip not found"))
	}
	return result, nil
}

// Delete removes a trip and everything scoped under it.
func (s *TripService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("service.TripService.Delete: %w", mapNotFound(err, "Trip not found"))
	}
	return nil
}

// applyTrip merges the optional fields of in into t and checks the date range.
func applyTrip(t domain.Trip, in domain.TripInput) (domain.Trip, error) {
	var err error
	t.Destination = patchText(t.Destination, in.Destination)
	if in.Notes != nil {
		t.Notes = trimmed(in.Notes)
	}
	if t.StartDate, err = patchDate(t.StartDate, in.StartDate, "startDate"); err != nil {
		return domain.Trip{}, err
	}
	if t.EndDate, err = patchDate(t.EndDate, in.EndDate, "endDate"); err != nil {
		return domain.Trip{}, err
	}
	if t.StartDate != nil && t.EndDate != nil && t.EndDate.Time.Before(t.StartDate.Time) {
		return domain.Trip{}, domain.Invalid("endDate must not be before startDate")
	}
	return t, nil
}

// loadTrip fetches the trip named in the URL, mapping absence to "Trip not found".
func loadTrip(ctx context.Context, trips repo.TripRepo, id uuid.UUID) (domain.Trip, error) {
	trip, err := trips.GetByID(ctx, id)
	if err != nil {
		return domain.Trip{}, mapNotFound(err, "Trip not found")
	}
	return trip, nil
}

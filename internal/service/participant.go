package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/pkordes/family-trips/internal/domain"
	"github.com/pkordes/family-trips/internal/repo"
)

// ParticipantService implements business logic for trip participants.
// It holds the trips and family repos because creating a participant requires
// verifying the parent trip and the optional family-member link.
type ParticipantService struct {
	trips        repo.TripRepo
	participants repo.ParticipantRepo
	family       repo.FamilyRepo
}

// NewParticipantService constructs a ParticipantService backed by the provided repos.
func NewParticipantService(trips repo.TripRepo, participants repo.ParticipantRepo, family repo.FamilyRepo) *ParticipantService {
	return &ParticipantService{trips: trips, participants: participants, family: family}
}

// List returns the participants of a trip.
// Returns a not-found error when the trip does not exist.
func (s *ParticipantService) List(ctx context.Context, tripID uuid.UUID) ([]domain.TripParticipant, error) {
	if _, err := loadTrip(ctx, s.trips, tripID); err != nil {
		return nil, fmt.Errorf("service.ParticipantService.List: %w", err)
	}
	participants, err := s.participants.ListByTripID(ctx, tripID)
	if err != nil {
		return nil, fmt.Errorf("service.ParticipantService.List: %w", err)
	}
	return emptyIfNil(participants), nil
}

// Create validates and adds a participant to a trip.
// The name is trimmed before the per-trip uniqueness check and before storage.
//
// The uniqueness check is read-then-insert; concurrent duplicates are caught
// by the (trip_id, name) unique index, which the repo reports as the same
// validation error.
func (s *ParticipantService) Create(ctx context.Context, tripID uuid.UUID, in domain.ParticipantInput) (domain.TripParticipant, error) {
	name := trimmed(in.Name)
	if name == "" {
		return domain.TripParticipant{}, domain.Invalid("Name is required")
	}
	participant := domain.TripParticipant{
		TripID:    tripID,
		Name:      name,
		Email:     patchText(nil, in.Email),
		GroupName: patchText(nil, in.GroupName),
	}

	if _, err := loadTrip(ctx, s.trips, tripID); err != nil {
		return domain.TripParticipant{}, fmt.Errorf("service.ParticipantService.Create: %w", err)
	}

	if raw := trimmed(in.FamilyMemberID); raw != "" {
		memberID, err := s.familyMember(ctx, raw)
		if err != nil {
			return domain.TripParticipant{}, fmt.Errorf("service.ParticipantService.Create: %w", err)
		}
		participant.FamilyMemberID = &memberID
	}

	_, err := s.participants.FindByName(ctx, tripID, name)
	switch {
	case err == nil:
		return domain.TripParticipant{}, domain.Invalidf("Participant %q already exists on this trip", name)
	case !errors.Is(err, domain.ErrNotFound):
		return domain.TripParticipant{}, fmt.Errorf("service.ParticipantService.Create: %w", err)
	}

	result, err := s.participants.Create(ctx, participant)
	if err != nil {
		return domain.TripParticipant{}, fmt.Errorf("service.ParticipantService.Create: %w", err)
	}
	return result, nil
}

// Delete removes a participant that belongs to tripID. Settlements that
// reference the participant are removed with it.
func (s *ParticipantService) Delete(ctx context.Context, tripID, participantID uuid.UUID) error {
	_, err := loadOwned(ctx, s.participants.GetByID, participantID, tripID,
		func(p domain.TripParticipant) uuid.UUID { return p.TripID }, "Participant not found")
	if err != nil {
		return fmt.Errorf("service.ParticipantService.Delete: %w", err)
	}
	if err := s.participants.Delete(ctx, participantID); err != nil {
		return fmt.Errorf("service.ParticipantService.Delete: %w", mapNotFound(err, "Participant not found"))
	}
	return nil
}

// familyMember resolves a familyMemberId reference.
func (s *ParticipantService) familyMember(ctx context.Context, raw string) (uuid.UUID, error) {
	const msg = "familyMemberId does not match a family member"
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, domain.Missing(msg)
	}
	if _, err := s.family.GetByID(ctx, id); err != nil {
		return uuid.Nil, mapNotFound(err, msg)
	}
	return id, nil
}

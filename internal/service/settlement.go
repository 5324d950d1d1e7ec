package service

import (
	"context"
	"fmt"
	"math"

	"github.com/google/uuid"

	"github.com/pkordes/family-trips/internal/domain"
	"github.com/pkordes/family-trips/internal/repo"
)

// SettlementService implements business logic for settlements between the
// participants of a trip.
type SettlementService struct {
	trips        repo.TripRepo
	participants repo.ParticipantRepo
	settlements  repo.SettlementRepo
}

// NewSettlementService constructs a SettlementService backed by the provided repos.
func NewSettlementService(trips repo.TripRepo, participants repo.ParticipantRepo, settlements repo.SettlementRepo) *SettlementService {
	return &SettlementService{trips: trips, participants: participants, settlements: settlements}
}

// List returns the settlements recorded on a trip.
func (s *SettlementService) List(ctx context.Context, tripID uuid.UUID) ([]domain.Settlement, error) {
	if _, err := loadTrip(ctx, s.trips, tripID); err != nil {
		return nil, fmt.Errorf("service.SettlementService.List: %w", err)
	}
	settlements, err := s.settlements.ListByTripID(ctx, tripID)
	if err != nil {
		return nil, fmt.Errorf("service.SettlementService.List: %w", err)
	}
	return emptyIfNil(settlements), nil
}

// Create validates and records a settlement. Checks run in order: presence,
// amount positivity, distinct participants, then both participants belonging
// to the trip.
func (s *SettlementService) Create(ctx context.Context, tripID uuid.UUID, in domain.SettlementInput) (domain.Settlement, error) {
	rawFrom, rawTo := trimmed(in.FromID), trimmed(in.ToID)
	if rawFrom == "" || rawTo == "" || in.Amount == nil {
		return domain.Settlement{}, domain.Invalid("fromId, toId, and amount are required")
	}
	amount, ok := positiveAmount(in.Amount)
	if !ok {
		return domain.Settlement{}, domain.Invalid("amount must be a positive number")
	}
	amount, err := decimal("amount", amount, settlementMoney)
	if err != nil {
		return domain.Settlement{}, err
	}
	if rawFrom == rawTo {
		return domain.Settlement{}, domain.Invalid("fromId and toId must be different participants")
	}

	if _, err := loadTrip(ctx, s.trips, tripID); err != nil {
		return domain.Settlement{}, fmt.Errorf("service.SettlementService.Create: %w", err)
	}
	fromID, err := s.tripParticipant(ctx, tripID, rawFrom, "fromId")
	if err != nil {
		return domain.Settlement{}, fmt.Errorf("service.SettlementService.Create: %w", err)
	}
	toID, err := s.tripParticipant(ctx, tripID, rawTo, "toId")
	if err != nil {
		return domain.Settlement{}, fmt.Errorf("service.SettlementService.Create: %w", err)
	}

	result, err := s.settlements.Create(ctx, domain.Settlement{
		TripID: tripID,
		FromID: fromID,
		ToID:   toID,
		Amount: amount,
		Note:   patchText(nil, in.Note),
	})
	if err != nil {
		return domain.Settlement{}, fmt.Errorf("service.SettlementService.Create: %w", err)
	}
	return result, nil
}

// Delete removes a settlement that belongs to tripID.
func (s *SettlementService) Delete(ctx context.Context, tripID, settlementID uuid.UUID) error {
	_, err := loadOwned(ctx, s.settlements.GetByID, settlementID, tripID,
		func(st domain.Settlement) uuid.UUID { return st.TripID }, "Settlement not found")
	if err != nil {
		return fmt.Errorf("service.SettlementService.Delete: %w", err)
	}
	if err := s.settlements.Delete(ctx, settlementID); err != nil {
		return fmt.Errorf("service.SettlementService.Delete: %w", mapNotFound(err, "Settlement not found"))
	}
	return nil
}

// tripParticipant resolves raw to a participant of tripID. The not-found
// message names field so the client knows which side failed.
func (s *SettlementService) tripParticipant(ctx context.Context, tripID uuid.UUID, raw, field string) (uuid.UUID, error) {
	msg := field + " participant not found on this trip"
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, domain.Missing(msg)
	}
	p, err := loadOwned(ctx, s.participants.GetByID, id, tripID,
		func(p domain.TripParticipant) uuid.UUID { return p.TripID }, msg)
	if err != nil {
		return uuid.Nil, err
	}
	return p.ID, nil
}

// positiveAmount accepts only a finite JSON number that is still greater
// than zero once rounded to cents. Quoted numbers arrive as strings and are
// rejected.
func positiveAmount(v any) (float64, bool) {
	f, ok := v.(float64)
	if !ok || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	if settlementMoney.round(f) <= 0 {
		return 0, false
	}
	return f, true
}

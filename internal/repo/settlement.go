package repo

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/pkordes/family-trips/internal/domain"
)

// SettlementRepo defines the persistence operations for settlements.
type SettlementRepo interface {
	Create(ctx context.Context, s domain.Settlement) (domain.Settlement, error)

	// GetByID returns domain.ErrNotFound if no settlement with that ID exists.
	GetByID(ctx context.Context, id uuid.UUID) (domain.Settlement, error)

	// ListByTripID returns a trip's settlements, newest first.
	ListByTripID(ctx context.Context, tripID uuid.UUID) ([]domain.Settlement, error)

	// Delete returns domain.ErrNotFound if no settlement with that ID exists.
	Delete(ctx context.Context, id uuid.UUID) error
}

type pgSettlementRepo struct {
	db db
}

// NewSettlementRepo constructs a SettlementRepo backed by the provided db connection.
func NewSettlementRepo(db db) SettlementRepo {
	return &pgSettlementRepo{db: db}
}

const settlementColumns = `id, trip_id, from_id, to_id, amount, note, created_at`

func (r *pgSettlementRepo) Create(ctx context.Context, s domain.Settlement) (domain.Settlement, error) {
	const q = `
		INSERT INTO settlements (trip_id, from_id, to_id, amount, note)
		VALUES (@trip_id, @from_id, @to_id, @amount, @note)
		RETURNING ` + settlementColumns

	args := pgx.NamedArgs{
		"trip_id": s.TripID,
		"from_id": s.FromID,
		"to_id":   s.ToID,
		"amount":  s.Amount,
		"note":    s.Note,
	}
	result, err := scanSettlement(r.db.QueryRow(ctx, q, args))
	if err != nil {
		return domain.Settlement{}, fmt.Errorf("repo.SettlementRepo.Create: %w", err)
	}
	return result, nil
}

func (r *pgSettlementRepo) GetByID(ctx context.Context, id uuid.UUID) (domain.Settlement, error) {
	const q = `SELECT ` + settlementColumns + ` FROM settlements WHERE id = @id`

	result, err := scanSettlement(r.db.QueryRow(ctx, q, pgx.NamedArgs{"id": id}))
	if err != nil {
		return domain.Settlement{}, fmt.Errorf("repo.SettlementRepo.GetByID: %w", err)
	}
	return result, nil
}

func (r *pgSettlementRepo) ListByTripID(ctx context.Context, tripID uuid.UUID) ([]domain.Settlement, error) {
	const q = `SELECT ` + settlementColumns + ` FROM settlements WHERE trip_id = @trip_id ORDER BY created_at DESC`

	rows, err := r.db.Query(ctx, q, pgx.NamedArgs{"trip_id": tripID})
	if err != nil {
		return nil, fmt.Errorf("repo.SettlementRepo.ListByTripID: %w", err)
	}
	settlements, err := collect(rows, scanSettlement)
	if err != nil {
		return nil, fmt.Errorf("repo.SettlementRepo.ListByTripID: %w", err)
	}
	return settlements, nil
}

func (r *pgSettlementRepo) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM settlements WHERE id = @id`, pgx.NamedArgs{"id": id})
	if err != nil {
		return fmt.Errorf("repo.SettlementRepo.Delete: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("repo.SettlementRepo.Delete: %w", domain.ErrNotFound)
	}
	return nil
}

func scanSettlement(s scanner) (domain.Settlement, error) {
	var (
		st     domain.Settlement
		id     pgtype.UUID
		tripID pgtype.UUID
		fromID pgtype.UUID
		toID   pgtype.UUID
	)
	if err := s.Scan(&id, &tripID, &fromID, &toID, &st.Amount, &st.Note, &st.CreatedAt); err != nil {
		return domain.Settlement{}, notFound(err)
	}
	st.ID = uuid.UUID(id.Bytes)
	st.TripID = uuid.UUID(tripID.Bytes)
	st.FromID = uuid.UUID(fromID.Bytes)
	st.ToID = uuid.UUID(toID.Bytes)
	return st, nil
}

package repo

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/pkordes/family-trips/internal/domain"
)

// participantNameKey is the unique constraint backing per-trip participant names.
const participantNameKey = "trip_participants_trip_id_name_key"

// ParticipantRepo defines the persistence operations for trip participants.
type ParticipantRepo interface {
	// Create returns a domain validation error when the (trip, name) pair
	// already exists, which covers inserts racing past the service-level check.
	Create(ctx context.Context, p domain.TripParticipant) (domain.TripParticipant, error)

	// GetByID returns domain.ErrNotFound if no participant with that ID exists.
	GetByID(ctx context.Context, id uuid.UUID) (domain.TripParticipant, error)

	// FindByName looks up a participant by exact name within a trip.
	// Returns domain.ErrNotFound when there is none.
	FindByName(ctx context.Context, tripID uuid.UUID, name string) (domain.TripParticipant, error)

	// ListByTripID returns a trip's participants ordered by group then name.
	ListByTripID(ctx context.Context, tripID uuid.UUID) ([]domain.TripParticipant, error)

	// ListAll returns every participant ordered by trip and name.
	ListAll(ctx context.Context) ([]domain.TripParticipant, error)

	// Delete returns domain.ErrNotFound if no participant with that ID exists.
	Delete(ctx context.Context, id uuid.UUID) error
}

type pgParticipantRepo struct {
	db db
}

// NewParticipantRepo constructs a ParticipantRepo backed by the provided db connection.
func NewParticipantRepo(db db) ParticipantRepo {
	return &pgParticipantRepo{db: db}
}

const participantColumns = `id, trip_id, name, email, group_name, family_member_id, created_at`

func (r *pgParticipantRepo) Create(ctx context.Context, p domain.TripParticipant) (domain.TripParticipant, error) {
	const q = `
		INSERT INTO trip_participants (trip_id, name, email, group_name, family_member_id)
		VALUES (@trip_id, @name, @email, @group_name, @family_member_id)
		RETURNING ` + participantColumns

	args := pgx.NamedArgs{
		"trip_id":          p.TripID,
		"name":             p.Name,
		"email":            p.Email,
		"group_name":       p.GroupName,
		"family_member_id": p.FamilyMemberID, // nil becomes NULL
	}
	result, err := scanParticipant(r.db.QueryRow(ctx, q, args))
	if err != nil {
		if isUniqueViolation(err, participantNameKey) {
			return domain.TripParticipant{}, domain.Invalidf("Participant %q already exists on this trip", p.Name)
		}
		return domain.TripParticipant{}, fmt.Errorf("repo.ParticipantRepo.Create: %w", err)
	}
	return result, nil
}

func (r *pgParticipantRepo) GetByID(ctx context.Context, id uuid.UUID) (domain.TripParticipant, error) {
	const q = `SELECT ` + participantColumns + ` FROM trip_participants WHERE id = @id`

	result, err := scanParticipant(r.db.QueryRow(ctx, q, pgx.NamedArgs{"id": id}))
	if err != nil {
		return domain.TripParticipant{}, fmt.Errorf("repo.ParticipantRepo.GetByID: %w", err)
	}
	return result, nil
}

func (r *pgParticipantRepo) FindByName(ctx context.Context, tripID uuid.UUID, name string) (domain.TripParticipant, error) {
	const q = `SELECT ` + participantColumns + ` FROM trip_participants WHERE trip_id = @trip_id AND name = @name`

	result, err := scanParticipant(r.db.QueryRow(ctx, q, pgx.NamedArgs{"trip_id": tripID, "name": name}))
	if err != nil {
		return domain.TripParticipant{}, fmt.Errorf("repo.ParticipantRepo.FindByName: %w", err)
	}
	return result, nil
}

func (r *pgParticipantRepo) ListByTripID(ctx context.Context, tripID uuid.UUID) ([]domain.TripParticipant, error) {
	const q = `
		SELECT ` + participantColumns + `
		FROM trip_participants
		WHERE trip_id = @trip_id
		ORDER BY group_name NULLS LAST, name`

	rows, err := r.db.Query(ctx, q, pgx.NamedArgs{"trip_id": tripID})
	if err != nil {
		return nil, fmt.Errorf("repo.ParticipantRepo.ListByTripID: %w", err)
	}
	participants, err := collect(rows, scanParticipant)
	if err != nil {
		return nil, fmt.Errorf("repo.ParticipantRepo.ListByTripID: %w", err)
	}
	return participants, nil
}

func (r *pgParticipantRepo) ListAll(ctx context.Context) ([]domain.TripParticipant, error) {
	const q = `SELECT ` + participantColumns + ` FROM trip_participants ORDER BY trip_id, name`

	rows, err := r.db.Query(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("repo.ParticipantRepo.ListAll: %w", err)
	}
	participants, err := collect(rows, scanParticipant)
	if err != nil {
		return nil, fmt.Errorf("repo.ParticipantRepo.ListAll: %w", err)
	}
	return participants, nil
}

func (r *pgParticipantRepo) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM trip_participants WHERE id = @id`, pgx.NamedArgs{"id": id})
	if err != nil {
		return fmt.Errorf("repo.ParticipantRepo.Delete: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("repo.ParticipantRepo.Delete: %w", domain.ErrNotFound)
	}
	return nil
}

func scanParticipant(s scanner) (domain.TripParticipant, error) {
	var (
		p              domain.TripParticipant
		id             pgtype.UUID
		tripID         pgtype.UUID
		familyMemberID pgtype.UUID
	)
	err := s.Scan(&id, &tripID, &p.Name, &p.Email, &p.GroupName, &familyMemberID, &p.CreatedAt)
	if err != nil {
		return domain.TripParticipant{}, notFound(err)
	}
	p.ID = uuid.UUID(id.Bytes)
	p.TripID = uuid.UUID(tripID.Bytes)
	p.FamilyMemberID = fromPgUUID(familyMemberID)
	return p, nil
}

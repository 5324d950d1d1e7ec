package repo

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/pkordes/family-trips/internal/domain"
)

// FamilyRepo defines the persistence operations for family members.
type FamilyRepo interface {
	Create(ctx context.Context, m domain.FamilyMember) (domain.FamilyMember, error)

	// GetByID returns domain.ErrNotFound if no member with that ID exists.
	GetByID(ctx context.Context, id uuid.UUID) (domain.FamilyMember, error)

	// List returns all members, parents first, then by name.
	List(ctx context.Context) ([]domain.FamilyMember, error)

	// Update returns domain.ErrNotFound if no member with that ID exists.
	Update(ctx context.Context, m domain.FamilyMember) (domain.FamilyMember, error)

	// Delete returns domain.ErrNotFound if no member with that ID exists.
	Delete(ctx context.Context, id uuid.UUID) error
}

type pgFamilyRepo struct {
	db db
}

// NewFamilyRepo constructs a FamilyRepo backed by the provided db connection.
func NewFamilyRepo(db db) FamilyRepo {
	return &pgFamilyRepo{db: db}
}

const familyColumns = `id, name, role, email, created_at, updated_at`

func (r *pgFamilyRepo) Create(ctx context.Context, m domain.FamilyMember) (domain.FamilyMember, error) {
	const q = `
		INSERT INTO family_members (name, role, email)
		VALUES (@name, @role, @email)
		RETURNING ` + familyColumns

	args := pgx.NamedArgs{"name": m.Name, "role": string(m.Role), "email": m.Email}
	result, err := scanFamilyMember(r.db.QueryRow(ctx, q, args))
	if err != nil {
		return domain.FamilyMember{}, fmt.Errorf("repo.FamilyRepo.Create: %w", err)
	}
	return result, nil
}

func (r *pgFamilyRepo) GetByID(ctx context.Context, id uuid.UUID) (domain.FamilyMember, error) {
	const q = `SELECT ` + familyColumns + ` FROM family_members WHERE id = @id`

	result, err := scanFamilyMember(r.db.QueryRow(ctx, q, pgx.NamedArgs{"id": id}))
	if err != nil {
		return domain.FamilyMember{}, fmt.Errorf("repo.FamilyRepo.GetByID: %w", err)
	}
	return result, nil
}

func (r *pgFamilyRepo) List(ctx context.Context) ([]domain.FamilyMember, error) {
	const q = `
		SELECT ` + familyColumns + `
		FROM family_members
		ORDER BY role = 'parent' DESC, name`

	rows, err := r.db.Query(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("repo.FamilyRepo.List: %w", err)
	}
	members, err := collect(rows, scanFamilyMember)
	if err != nil {
		return nil, fmt.Errorf("repo.FamilyRepo.List: %w", err)
	}
	return members, nil
}

func (r *pgFamilyRepo) Update(ctx context.Context, m domain.FamilyMember) (domain.FamilyMember, error) {
	const q = `
		UPDATE family_members
		SET name       = @name,
		    role       = @role,
		    email      = @email,
		    updated_at = now()
		WHERE id = @id
		RETURNING ` + familyColumns

	args := pgx.NamedArgs{"id": m.ID, "name": m.Name, "role": string(m.Role), "email": m.Email}
	result, err := scanFamilyMember(r.db.QueryRow(ctx, q, args))
	if err != nil {
		return domain.FamilyMember{}, fmt.Errorf("repo.FamilyRepo.Update: %w", err)
	}
	return result, nil
}

func (r *pgFamilyRepo) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM family_members WHERE id = @id`, pgx.NamedArgs{"id": id})
	if err != nil {
		return fmt.Errorf("repo.FamilyRepo.Delete: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("repo.FamilyRepo.Delete: %w", domain.ErrNotFound)
	}
	return nil
}

func scanFamilyMember(s scanner) (domain.FamilyMember, error) {
	var (
		m    domain.FamilyMember
		id   pgtype.UUID
		role string
	)
	if err := s.Scan(&id, &m.Name, &role, &m.Email, &m.CreatedAt, &m.UpdatedAt); err != nil {
		return domain.FamilyMember{}, notFound(err)
	}
	m.ID = uuid.UUID(id.Bytes)
	m.Role = domain.Role(role)
	return m, nil
}

package repo

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/pkordes/family-trips/internal/domain"
)

// BenefitRepo defines the persistence operations for card benefits.
// Single-row reads are by benefit ID alone; ownership against the card in
// the URL is checked by the service.
type BenefitRepo interface {
	Create(ctx context.Context, b domain.CardBenefit) (domain.CardBenefit, error)

	// GetByID returns domain.ErrNotFound if no benefit with that ID exists.
	GetByID(ctx context.Context, id uuid.UUID) (domain.CardBenefit, error)

	// ListByCardID returns a card's benefits ordered by name.
	ListByCardID(ctx context.Context, cardID uuid.UUID) ([]domain.CardBenefit, error)

	// ListAll returns every benefit ordered by card and name.
	ListAll(ctx context.Context) ([]domain.CardBenefit, error)

	Update(ctx context.Context, b domain.CardBenefit) (domain.CardBenefit, error)

	// Delete returns domain.ErrNotFound if no benefit with that ID exists.
	Delete(ctx context.Context, id uuid.UUID) error
}

type pgBenefitRepo struct {
	db db
}

// NewBenefitRepo constructs a BenefitRepo backed by the provided db connection.
func NewBenefitRepo(db db) BenefitRepo {
	return &pgBenefitRepo{db: db}
}

const benefitColumns = `id, card_id, name, value, frequency, used_amount, reset_date, created_at, updated_at`

func (r *pgBenefitRepo) Create(ctx context.Context, b domain.CardBenefit) (domain.CardBenefit, error) {
	const q = `
		INSERT INTO card_benefits (card_id, name, value, frequency, used_amount, reset_date)
		VALUES (@card_id, @name, @value, @frequency, @used_amount, @reset_date)
		RETURNING ` + benefitColumns

	args := pgx.NamedArgs{
		"card_id":     b.CardID,
		"name":        b.Name,
		"value":       b.Value,
		"frequency":   string(b.Frequency),
		"used_amount": b.UsedAmount,
		"reset_date":  dateArg(b.ResetDate),
	}
	result, err := scanBenefit(r.db.QueryRow(ctx, q, args))
	if err != nil {
		return domain.CardBenefit{}, fmt.Errorf("repo.BenefitRepo.Create: %w", err)
	}
	return result, nil
}

func (r *pgBenefitRepo) GetByID(ctx context.Context, id uuid.UUID) (domain.CardBenefit, error) {
	const q = `SELECT ` + benefitColumns + ` FROM card_benefits WHERE id = @id`

	result, err := scanBenefit(r.db.QueryRow(ctx, q, pgx.NamedArgs{"id": id}))
	if err != nil {
		return domain.CardBenefit{}, fmt.Errorf("repo.BenefitRepo.GetByID: %w", err)
	}
	return result, nil
}

func (r *pgBenefitRepo) ListByCardID(ctx context.Context, cardID uuid.UUID) ([]domain.CardBenefit, error) {
	const q = `SELECT ` + benefitColumns + ` FROM card_benefits WHERE card_id = @card_id ORDER BY name`

	rows, err := r.db.Query(ctx, q, pgx.NamedArgs{"card_id": cardID})
	if err != nil {
		return nil, fmt.Errorf("repo.BenefitRepo.ListByCardID: %w", err)
	}
	benefits, err := collect(rows, scanBenefit)
	if err != nil {
		return nil, fmt.Errorf("repo.BenefitRepo.ListByCardID: %w", err)
	}
	return benefits, nil
}

func (r *pgBenefitRepo) ListAll(ctx context.Context) ([]domain.CardBenefit, error) {
	const q = `SELECT ` + benefitColumns + ` FROM card_benefits ORDER BY card_id, name`

	rows, err := r.db.Query(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("repo.BenefitRepo.ListAll: %w", err)
	}
	benefits, err := collect(rows, scanBenefit)
	if err != nil {
		return nil, fmt.Errorf("repo.BenefitRepo.ListAll: %w", err)
	}
	return benefits, nil
}

func (r *pgBenefitRepo) Update(ctx context.Context, b domain.CardBenefit) (domain.CardBenefit, error) {
	const q = `
		UPDATE card_benefits
		SET name        = @name,
		    value       = @value,
		    frequency   = @frequency,
		    used_amount = @used_amount,
		    reset_date  = @reset_date,
		    updated_at  = now()
		WHERE id = @id
		RETURNING ` + benefitColumns

	args := pgx.NamedArgs{
		"id":          b.ID,
		"name":        b.Name,
		"value":       b.Value,
		"frequency":   string(b.Frequency),
		"used_amount": b.UsedAmount,
		"reset_date":  dateArg(b.ResetDate),
	}
	result, err := scanBenefit(r.db.QueryRow(ctx, q, args))
	if err != nil {
		return domain.CardBenefit{}, fmt.Errorf("repo.BenefitRepo.Update: %w", err)
	}
	return result, nil
}

func (r *pgBenefitRepo) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM card_benefits WHERE id = @id`, pgx.NamedArgs{"id": id})
	if err != nil {
		return fmt.Errorf("repo.BenefitRepo.Delete: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("repo.BenefitRepo.Delete: %w", domain.ErrNotFound)
	}
	return nil
}

func scanBenefit(s scanner) (domain.CardBenefit, error) {
	var (
		b         domain.CardBenefit
		id        pgtype.UUID
		cardID    pgtype.UUID
		frequency string
		resetDate pgtype.Date
	)
	err := s.Scan(&id, &cardID, &b.Name, &b.Value, &frequency, &b.UsedAmount, &resetDate, &b.CreatedAt, &b.UpdatedAt)
	if err != nil {
		return domain.CardBenefit{}, notFound(err)
	}
	b.ID = uuid.UUID(id.Bytes)
	b.CardID = uuid.UUID(cardID.Bytes)
	b.Frequency = domain.BenefitFrequency(frequency)
	b.ResetDate = fromPgDate(resetDate)
	return b, nil
}

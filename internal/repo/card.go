package repo

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/pkordes/family-trips/internal/domain"
)

// CardRepo defines the persistence operations for credit cards.
// Benefits are stored separately; see BenefitRepo.
type CardRepo interface {
	Create(ctx context.Context, c domain.CreditCard) (domain.CreditCard, error)

	// GetByID returns domain.ErrNotFound if no card with that ID exists.
	GetByID(ctx context.Context, id uuid.UUID) (domain.CreditCard, error)

	// List returns all cards ordered by name.
	List(ctx context.Context) ([]domain.CreditCard, error)

	Update(ctx context.Context, c domain.CreditCard) (domain.CreditCard, error)

	// Delete removes a card and, by cascade, its benefits.
	Delete(ctx context.Context, id uuid.UUID) error
}

type pgCardRepo struct {
	db db
}

// NewCardRepo constructs a CardRepo backed by the provided db connection.
func NewCardRepo(db db) CardRepo {
	return &pgCardRepo{db: db}
}

const cardColumns = `id, name, network, last_four, annual_fee, points_balance, points_name, points_cpp_value, created_at, updated_at`

func cardArgs(c domain.CreditCard) pgx.NamedArgs {
	return pgx.NamedArgs{
		"id":               c.ID,
		"name":             c.Name,
		"network":          c.Network,
		"last_four":        c.LastFour,
		"annual_fee":       c.AnnualFee,
		"points_balance":   c.PointsBalance,
		"points_name":      c.PointsName,
		"points_cpp_value": c.PointsCppValue,
	}
}

func (r *pgCardRepo) Create(ctx context.Context, c domain.CreditCard) (domain.CreditCard, error) {
	const q = `
		INSERT INTO credit_cards (name, network, last_four, annual_fee, points_balance, points_name, points_cpp_value)
		VALUES (@name, @network, @last_four, @annual_fee, @points_balance, @points_name, @points_cpp_value)
		RETURNING ` + cardColumns

	result, err := scanCard(r.db.QueryRow(ctx, q, cardArgs(c)))
	if err != nil {
		return domain.CreditCard{}, fmt.Errorf("repo.CardRepo.Create: %w", err)
	}
	return result, nil
}

func (r *pgCardRepo) GetByID(ctx context.Context, id uuid.UUID) (domain.CreditCard, error) {
	const q = `SELECT ` + cardColumns + ` FROM credit_cards WHERE id = @id`

	result, err := scanCard(r.db.QueryRow(ctx, q, pgx.NamedArgs{"id": id}))
	if err != nil {
		return domain.CreditCard{}, fmt.Errorf("repo.CardRepo.GetByID: %w", err)
	}
	return result, nil
}

func (r *pgCardRepo) List(ctx context.Context) ([]domain.CreditCard, error) {
	const q = `SELECT ` + cardColumns + ` FROM credit_cards ORDER BY name, created_at`

	rows, err := r.db.Query(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("repo.CardRepo.List: %w", err)
	}
	cards, err := collect(rows, scanCard)
	if err != nil {
		return nil, fmt.Errorf("repo.CardRepo.List: %w", err)
	}
	return cards, nil
}

func (r *pgCardRepo) Update(ctx context.Context, c domain.CreditCard) (domain.CreditCard, error) {
	const q = `
		UPDATE credit_cards
		SET name             = @name,
		    network          = @network,
		    last_four        = @last_four,
		    annual_fee       = @annual_fee,
		    points_balance   = @points_balance,
		    points_name      = @points_name,
		    points_cpp_value = @points_cpp_value,
		    updated_at       = now()
		WHERE id = @id
		RETURNING ` + cardColumns

	result, err := scanCard(r.db.QueryRow(ctx, q, cardArgs(c)))
	if err != nil {
		return domain.CreditCard{}, fmt.Errorf("repo.CardRepo.Update: %w", err)
	}
	return result, nil
}

func (r *pgCardRepo) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM credit_cards WHERE id = @id`, pgx.NamedArgs{"id": id})
	if err != nil {
		return fmt.Errorf("repo.CardRepo.Delete: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("repo.CardRepo.Delete: %w", domain.ErrNotFound)
	}
	return nil
}

func scanCard(s scanner) (domain.CreditCard, error) {
	var (
		c  domain.CreditCard
		id pgtype.UUID
	)
	err := s.Scan(&id, &c.Name, &c.Network, &c.LastFour, &c.AnnualFee, &c.PointsBalance,
		&c.PointsName, &c.PointsCppValue, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return domain.CreditCard{}, notFound(err)
	}
	c.ID = uuid.UUID(id.Bytes)
	return c, nil
}

package service

import (
	"context"
	"fmt"
	"regexp"

	"github.com/google/uuid"

	"github.com/pkordes/family-trips/internal/domain"
	"github.com/pkordes/family-trips/internal/repo"
)

var lastFourPattern = regexp.MustCompile(`^\d{4}$`)

// CardService implements business logic for credit cards and their benefits.
// Benefit operations are scoped to the card in the URL.
type CardService struct {
	cards    repo.CardRepo
	benefits repo.BenefitRepo
}

// NewCardService constructs a CardService backed by the provided repos.
func NewCardService(cards repo.CardRepo, benefits repo.BenefitRepo) *CardService {
	return &CardService{cards: cards, benefits: benefits}
}

// List returns all cards with their benefits nested.
func (s *CardService) List(ctx context.Context) ([]domain.CreditCard, error) {
	cards, err := s.cards.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("service.CardService.List: %w", err)
	}
	benefits, err := s.benefits.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("service.CardService.List: %w", err)
	}

	byCard := make(map[uuid.UUID][]domain.CardBenefit, len(cards))
	for _, b := range benefits {
		byCard[b.CardID] = append(byCard[b.CardID], b)
	}
	for i := range cards {
		cards[i].Benefits = emptyIfNil(byCard[cards[i].ID])
	}
	return emptyIfNil(cards), nil
}

// GetByID returns one card with its benefits.
func (s *CardService) GetByID(ctx context.Context, id uuid.UUID) (domain.CreditCard, error) {
	card, err := s.cards.GetByID(ctx, id)
	if err != nil {
		return domain.CreditCard{}, fmt.Errorf("service.CardService.GetByID: %w", mapNotFound(err, "Card not found"))
	}
	benefits, err := s.benefits.ListByCardID(ctx, id)
	if err != nil {
		return domain.CreditCard{}, fmt.Errorf("service.CardService.GetByID: %w", err)
	}
	card.Benefits = emptyIfNil(benefits)
	return card, nil
}

// Create validates and persists a new card. pointsBalance defaults to 0.
func (s *CardService) Create(ctx context.Context, in domain.CreditCardInput) (domain.CreditCard, error) {
	card := domain.CreditCard{
		Name:       trimmed(in.Name),
		Network:    trimmed(in.Network),
		LastFour:   trimmed(in.LastFour),
		PointsName: trimmed(in.PointsName),
	}
	if card.Name == "" || card.Network == "" || card.LastFour == "" || in.AnnualFee == nil ||
		card.PointsName == "" || in.PointsCppValue == nil {
		return domain.CreditCard{}, domain.Invalid("Name, network, lastFour, annualFee, pointsName, and pointsCppValue are required")
	}
	card.AnnualFee = *in.AnnualFee
	card.PointsCppValue = *in.PointsCppValue
	card.PointsBalance = orDefault(in.PointsBalance, 0)

	if err := validateCard(&card); err != nil {
		return domain.CreditCard{}, err
	}

	result, err := s.cards.Create(ctx, card)
	if err != nil {
		return domain.CreditCard{}, fmt.Errorf("service.CardService.Create: %w", err)
	}
	result.Benefits = []domain.CardBenefit{}
	return result, nil
}

// Update applies a partial update to a card.
func (s *CardService) Update(ctx context.Context, id uuid.UUID, in domain.CreditCardInput) (domain.CreditCard, error) {
	card, err := s.cards.GetByID(ctx, id)
	if err != nil {
		return domain.CreditCard{}, fmt.Errorf("service.CardService.Update: %w", mapNotFound(err, "Card not found"))
	}

	for _, f := range []struct {
		dst   *string
		in    *string
		field string
	}{
		{&card.Name, in.Name, "name"},
		{&card.Network, in.Network, "network"},
		{&card.LastFour, in.LastFour, "lastFour"},
		{&card.PointsName, in.PointsName, "pointsName"},
	} {
		if *f.dst, err = patchRequired(*f.dst, f.in, f.field); err != nil {
			return domain.CreditCard{}, err
		}
	}
	card.AnnualFee = orDefault(in.AnnualFee, card.AnnualFee)
	card.PointsBalance = orDefault(in.PointsBalance, card.PointsBalance)
	card.PointsCppValue = orDefault(in.PointsCppValue, card.PointsCppValue)

	if err := validateCard(&card); err != nil {
		return domain.CreditCard{}, err
	}

	result, err := s.cards.Update(ctx, card)
	if err != nil {
		return domain.CreditCard{}, fmt.Errorf("service.CardService.Update: %w", mapNotFound(err, "Card not found"))
	}
	return result, nil
}

// Delete removes a card and its benefits.
func (s *CardService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.cards.Delete(ctx, id); err != nil {
		return fmt.Errorf("service.CardService.Delete: %w", mapNotFound(err, "Card not found"))
	}
	return nil
}

// validateCard checks c and rounds its decimal fields to their stored scale.
func validateCard(c *domain.CreditCard) error {
	if !lastFourPattern.MatchString(c.LastFour) {
		return domain.Invalid("lastFour must be exactly 4 digits")
	}
	var err error
	if c.AnnualFee, err = decimal("annualFee", c.AnnualFee, cardMoney); err != nil {
		return err
	}
	if c.PointsBalance < 0 {
		return domain.Invalid("pointsBalance must not be negative")
	}
	c.PointsCppValue, err = decimal("pointsCppValue", c.PointsCppValue, centsPerPoint)
	return err
}

// ---- benefits ---------------------------------------------------------------

// ListBenefits returns the benefits of one card.
func (s *CardService) ListBenefits(ctx context.Context, cardID uuid.UUID) ([]domain.CardBenefit, error) {
	if err := s.requireCard(ctx, cardID); err != nil {
		return nil, fmt.Errorf("service.CardService.ListBenefits: %w", err)
	}
	benefits, err := s.benefits.ListByCardID(ctx, cardID)
	if err != nil {
		return nil, fmt.Errorf("service.CardService.ListBenefits: %w", err)
	}
	return emptyIfNil(benefits), nil
}

// CreateBenefit validates and attaches a new benefit to a card.
// usedAmount defaults to 0; resetDate is optional.
func (s *CardService) CreateBenefit(ctx context.Context, cardID uuid.UUID, in domain.CardBenefitInput) (domain.CardBenefit, error) {
	name, rawFreq := trimmed(in.Name), trimmed(in.Frequency)
	if name == "" || in.Value == nil || rawFreq == "" {
		return domain.CardBenefit{}, domain.Invalid("Name, value, and frequency are required")
	}
	frequency, err := domain.ParseBenefitFrequency(rawFreq)
	if err != nil {
		return domain.CardBenefit{}, err
	}
	benefit := domain.CardBenefit{
		CardID:     cardID,
		Name:       name,
		Value:      *in.Value,
		Frequency:  frequency,
		UsedAmount: orDefault(in.UsedAmount, 0),
	}
	if benefit.ResetDate, err = patchDate(nil, in.ResetDate, "resetDate"); err != nil {
		return domain.CardBenefit{}, err
	}
	if err := validateBenefit(&benefit); err != nil {
		return domain.CardBenefit{}, err
	}

	if err := s.requireCard(ctx, cardID); err != nil {
		return domain.CardBenefit{}, fmt.Errorf("service.CardService.CreateBenefit: %w", err)
	}
	result, err := s.benefits.Create(ctx, benefit)
	if err != nil {
		return domain.CardBenefit{}, fmt.Errorf("service.CardService.CreateBenefit: %w", err)
	}
	return result, nil
}

// UpdateBenefit applies a partial update to a benefit that belongs to cardID.
func (s *CardService) UpdateBenefit(ctx context.Context, cardID, benefitID uuid.UUID, in domain.CardBenefitInput) (domain.CardBenefit, error) {
	// Reject a bad enum before touching the store.
	var frequency domain.BenefitFrequency
	if in.Frequency != nil {
		f, err := domain.ParseBenefitFrequency(*in.Frequency)
		if err != nil {
			return domain.CardBenefit{}, err
		}
		frequency = f
	}

	benefit, err := s.ownedBenefit(ctx, cardID, benefitID)
	if err != nil {
		return domain.CardBenefit{}, fmt.Errorf("service.CardService.UpdateBenefit: %w", err)
	}

	if benefit.Name, err = patchRequired(benefit.Name, in.Name, "name"); err != nil {
		return domain.CardBenefit{}, err
	}
	if frequency != "" {
		benefit.Frequency = frequency
	}
	benefit.Value = orDefault(in.Value, benefit.Value)
	benefit.UsedAmount = orDefault(in.UsedAmount, benefit.UsedAmount)
	if benefit.ResetDate, err = patchDate(benefit.ResetDate, in.ResetDate, "resetDate"); err != nil {
		return domain.CardBenefit{}, err
	}
	if err := validateBenefit(&benefit); err != nil {
		return domain.CardBenefit{}, err
	}

	result, err := s.benefits.Update(ctx, benefit)
	if err != nil {
		return domain.CardBenefit{}, fmt.Errorf("service.CardService.UpdateBenefit: %w", mapNotFound(err, "Benefit not found"))
	}
	return result, nil
}

// DeleteBenefit removes a benefit that belongs to cardID.
func (s *CardService) DeleteBenefit(ctx context.Context, cardID, benefitID uuid.UUID) error {
	if _, err := s.ownedBenefit(ctx, cardID, benefitID); err != nil {
		return fmt.Errorf("service.CardService.DeleteBenefit: %w", err)
	}
	if err := s.benefits.Delete(ctx, benefitID); err != nil {
		return fmt.Errorf("service.CardService.DeleteBenefit: %w", mapNotFound(err, "Benefit not found"))
	}
	return nil
}

func (s *CardService) ownedBenefit(ctx context.Context, cardID, benefitID uuid.UUID) (domain.CardBenefit, error) {
	return loadOwned(ctx, s.benefits.GetByID, benefitID, cardID,
		func(b domain.CardBenefit) uuid.UUID { return b.CardID }, "Benefit not found")
}

func (s *CardService) requireCard(ctx context.Context, cardID uuid.UUID) error {
	_, err := s.cards.GetByID(ctx, cardID)
	return mapNotFound(err, "Card not found")
}

// validateBenefit rounds b's amounts to cents and checks their range.
func validateBenefit(b *domain.CardBenefit) error {
	var err error
	if b.Value, err = decimal("value", b.Value, cardMoney); err != nil {
		return err
	}
	b.UsedAmount, err = decimal("usedAmount", b.UsedAmount, cardMoney)
	return err
}

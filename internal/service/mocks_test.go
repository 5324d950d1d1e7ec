package service_test

import (
	"context"
	"io"
	"testing"
	"time"

	"github.com/google/uuid"
	openapi_types "github.com/oapi-codegen/runtime/types"

	"github.com/pkordes/family-trips/internal/domain"
	"github.com/pkordes/family-trips/internal/repo"
	"github.com/pkordes/family-trips/internal/service"
)

// Hand-written test doubles for the repo interfaces. Each method is a
// function field; set only the ones your test needs. Calling an unset
// method panics, which doubles as an assertion that it was never reached.

type mockTripRepo struct {
	create    func(ctx context.Context, trip domain.Trip) (domain.Trip, error)
	getByID   func(ctx context.Context, id uuid.UUID) (domain.Trip, error)
	list      func(ctx context.Context) ([]domain.Trip, error)
	listPaged func(ctx context.Context, p domain.PageRequest) ([]domain.Trip, error)
	update    func(ctx context.Context, trip domain.Trip) (domain.Trip, error)
	delete    func(ctx context.Context, id uuid.UUID) error
}

func (m *mockTripRepo) Create(ctx context.Context, t domain.Trip) (domain.Trip, error) {
	return m.create(ctx, t)
}
func (m *mockTripRepo) GetByID(ctx context.Context, id uuid.UUID) (domain.Trip, error) {
	return m.getByID(ctx, id)
}
func (m *mockTripRepo) List(ctx context.Context) ([]domain.Trip, error) { return m.list(ctx) }
func (m *mockTripRepo) ListPaged(ctx context.Context, p domain.PageRequest) ([]domain.Trip, error) {
	return m.listPaged(ctx, p)
}
func (m *mockTripRepo) Update(ctx context.Context, t domain.Trip) (domain.Trip, error) {
	return m.update(ctx, t)
}
func (m *mockTripRepo) Delete(ctx context.Context, id uuid.UUID) error { return m.delete(ctx, id) }

var _ repo.TripRepo = (*mockTripRepo)(nil)

// existingTrip returns a trip repo whose GetByID succeeds for any id.
func existingTrip() *mockTripRepo {
	return &mockTripRepo{
		getByID: func(_ context.Context, id uuid.UUID) (domain.Trip, error) {
			return domain.Trip{ID: id, Name: "Beach Week"}, nil
		},
	}
}

// missingTrip returns a trip repo whose GetByID always reports not found.
func missingTrip() *mockTripRepo {
	return &mockTripRepo{
		getByID: func(_ context.Context, _ uuid.UUID) (domain.Trip, error) {
			return domain.Trip{}, domain.ErrNotFound
		},
	}
}

type mockFamilyRepo struct {
	create  func(ctx context.Context, m domain.FamilyMember) (domain.FamilyMember, error)
	getByID func(ctx context.Context, id uuid.UUID) (domain.FamilyMember, error)
	list    func(ctx context.Context) ([]domain.FamilyMember, error)
	update  func(ctx context.Context, m domain.FamilyMember) (domain.FamilyMember, error)
	delete  func(ctx context.Context, id uuid.UUID) error
}

func (m *mockFamilyRepo) Create(ctx context.Context, fm domain.FamilyMember) (domain.FamilyMember, error) {
	return m.create(ctx, fm)
}
func (m *mockFamilyRepo) GetByID(ctx context.Context, id uuid.UUID) (domain.FamilyMember, error) {
	return m.getByID(ctx, id)
}
func (m *mockFamilyRepo) List(ctx context.Context) ([]domain.FamilyMember, error) {
	return m.list(ctx)
}
func (m *mockFamilyRepo) Update(ctx context.Context, fm domain.FamilyMember) (domain.FamilyMember, error) {
	return m.update(ctx, fm)
}
func (m *mockFamilyRepo) Delete(ctx context.Context, id uuid.UUID) error { return m.delete(ctx, id) }

var _ repo.FamilyRepo = (*mockFamilyRepo)(nil)

type mockCardRepo struct {
	create  func(ctx context.Context, c domain.CreditCard) (domain.CreditCard, error)
	getByID func(ctx context.Context, id uuid.UUID) (domain.CreditCard, error)
	list    func(ctx context.Context) ([]domain.CreditCard, error)
	update  func(ctx context.Context, c domain.CreditCard) (domain.CreditCard, error)
	delete  func(ctx context.Context, id uuid.UUID) error
}

func (m *mockCardRepo) Create(ctx context.Context, c domain.CreditCard) (domain.CreditCard, error) {
	return m.create(ctx, c)
}
func (m *mockCardRepo) GetByID(ctx context.Context, id uuid.UUID) (domain.CreditCard, error) {
	return m.getByID(ctx, id)
}
func (m *mockCardRepo) List(ctx context.Context) ([]domain.CreditCard, error) { return m.list(ctx) }
func (m *mockCardRepo) Update(ctx context.Context, c domain.CreditCard) (domain.CreditCard, error) {
	return m.update(ctx, c)
}
func (m *mockCardRepo) Delete(ctx context.Context, id uuid.UUID) error { return m.delete(ctx, id) }

var _ repo.CardRepo = (*mockCardRepo)(nil)

type mockBenefitRepo struct {
	create       func(ctx context.Context, b domain.CardBenefit) (domain.CardBenefit, error)
	getByID      func(ctx context.Context, id uuid.UUID) (domain.CardBenefit, error)
	listByCardID func(ctx context.Context, cardID uuid.UUID) ([]domain.CardBenefit, error)
	listAll      func(ctx context.Context) ([]domain.CardBenefit, error)
	update       func(ctx context.Context, b domain.CardBenefit) (domain.CardBenefit, error)
	delete       func(ctx context.Context, id uuid.UUID) error
}

func (m *mockBenefitRepo) Create(ctx context.Context, b domain.CardBenefit) (domain.CardBenefit, error) {
	return m.create(ctx, b)
}
func (m *mockBenefitRepo) GetByID(ctx context.Context, id uuid.UUID) (domain.CardBenefit, error) {
	return m.getByID(ctx, id)
}
func (m *mockBenefitRepo) ListByCardID(ctx context.Context, cardID uuid.UUID) ([]domain.CardBenefit, error) {
	return m.listByCardID(ctx, cardID)
}
func (m *mockBenefitRepo) ListAll(ctx context.Context) ([]domain.CardBenefit, error) {
	return m.listAll(ctx)
}
func (m *mockBenefitRepo) Update(ctx context.Context, b domain.CardBenefit) (domain.CardBenefit, error) {
	return m.update(ctx, b)
}
func (m *mockBenefitRepo) Delete(ctx context.Context, id uuid.UUID) error { return m.delete(ctx, id) }

var _ repo.BenefitRepo = (*mockBenefitRepo)(nil)

type mockParticipantRepo struct {
	create       func(ctx context.Context, p domain.TripParticipant) (domain.TripParticipant, error)
	getByID      func(ctx context.Context, id uuid.UUID) (domain.TripParticipant, error)
	findByName   func(ctx context.Context, tripID uuid.UUID, name string) (domain.TripParticipant, error)
	listByTripID func(ctx context.Context, tripID uuid.UUID) ([]domain.TripParticipant, error)
	listAll      func(ctx context.Context) ([]domain.TripParticipant, error)
	delete       func(ctx context.Context, id uuid.UUID) error
}

func (m *mockParticipantRepo) Create(ctx context.Context, p domain.TripParticipant) (domain.TripParticipant, error) {
	return m.create(ctx, p)
}
func (m *mockParticipantRepo) GetByID(ctx context.Context, id uuid.UUID) (domain.TripParticipant, error) {
	return m.getByID(ctx, id)
}
func (m *mockParticipantRepo) FindByName(ctx context.Context, tripID uuid.UUID, name string) (domain.TripParticipant, error) {
	return m.findByName(ctx, tripID, name)
}
func (m *mockParticipantRepo) ListByTripID(ctx context.Context, tripID uuid.UUID) ([]domain.TripParticipant, error) {
	return m.listByTripID(ctx, tripID)
}
func (m *mockParticipantRepo) ListAll(ctx context.Context) ([]domain.TripParticipant, error) {
	return m.listAll(ctx)
}
func (m *mockParticipantRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return m.delete(ctx, id)
}

var _ repo.ParticipantRepo = (*mockParticipantRepo)(nil)

type mockItineraryRepo struct {
	create       func(ctx context.Context, item domain.ItineraryItem) (domain.ItineraryItem, error)
	getByID      func(ctx context.Context, id uuid.UUID) (domain.ItineraryItem, error)
	listByTripID func(ctx context.Context, tripID uuid.UUID) ([]domain.ItineraryItem, error)
	listAll      func(ctx context.Context) ([]domain.ItineraryItem, error)
	update       func(ctx context.Context, item domain.ItineraryItem) (domain.ItineraryItem, error)
	delete       func(ctx context.Context, id uuid.UUID) error
}

func (m *mockItineraryRepo) Create(ctx context.Context, i domain.ItineraryItem) (domain.ItineraryItem, error) {
	return m.create(ctx, i)
}
func (m *mockItineraryRepo) GetByID(ctx context.Context, id uuid.UUID) (domain.ItineraryItem, error) {
	return m.getByID(ctx, id)
}
func (m *mockItineraryRepo) ListByTripID(ctx context.Context, tripID uuid.UUID) ([]domain.ItineraryItem, error) {
	return m.listByTripID(ctx, tripID)
}
func (m *mockItineraryRepo) ListAll(ctx context.Context) ([]domain.ItineraryItem, error) {
	return m.listAll(ctx)
}
func (m *mockItineraryRepo) Update(ctx context.Context, i domain.ItineraryItem) (domain.ItineraryItem, error) {
	return m.update(ctx, i)
}
func (m *mockItineraryRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return m.delete(ctx, id)
}

var _ repo.ItineraryRepo = (*mockItineraryRepo)(nil)

type mockSettlementRepo struct {
	create       func(ctx context.Context, s domain.Settlement) (domain.Settlement, error)
	getByID      func(ctx context.Context, id uuid.UUID) (domain.Settlement, error)
	listByTripID func(ctx context.Context, tripID uuid.UUID) ([]domain.Settlement, error)
	delete       func(ctx context.Context, id uuid.UUID) error
}

func (m *mockSettlementRepo) Create(ctx context.Context, s domain.Settlement) (domain.Settlement, error) {
	return m.create(ctx, s)
}
func (m *mockSettlementRepo) GetByID(ctx context.Context, id uuid.UUID) (domain.Settlement, error) {
	return m.getByID(ctx, id)
}
func (m *mockSettlementRepo) ListByTripID(ctx context.Context, tripID uuid.UUID) ([]domain.Settlement, error) {
	return m.listByTripID(ctx, tripID)
}
func (m *mockSettlementRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return m.delete(ctx, id)
}

var _ repo.SettlementRepo = (*mockSettlementRepo)(nil)

type mockReceiptStore struct {
	save func(ctx context.Context, name string, r io.Reader) error
}

func (m *mockReceiptStore) Save(ctx context.Context, name string, r io.Reader) error {
	return m.save(ctx, name, r)
}

var _ service.ReceiptStore = (*mockReceiptStore)(nil)

func ptr[T any](v T) *T { return &v }

// publicMessage asserts err carries a client-facing message and returns it.
func publicMessage(err error) string {
	msg, _ := domain.PublicMessage(err)
	return msg
}

func mustDate(t *testing.T, s string) openapi_types.Date {
	t.Helper()
	d, err := time.Parse("2006-01-02", s)
	if err != nil {
		t.Fatalf("bad test date %q: %v", s, err)
	}
	return openapi_types.Date{Time: d}
}

package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/family-trips/internal/domain"
	"github.com/pkordes/family-trips/internal/handler"
	"github.com/pkordes/family-trips/internal/service"
)

// Test doubles for the handler.*Servicer interfaces. Set only the method
// fields your test needs; an unset method panics when called.

type mockFamilyServicer struct {
	list   func(ctx context.Context) ([]domain.FamilyMember, error)
	create func(ctx context.Context, in domain.FamilyMemberInput) (domain.FamilyMember, error)
	update func(ctx context.Context, id uuid.UUID, in domain.FamilyMemberInput) (domain.FamilyMember, error)
	delete func(ctx context.Context, id uuid.UUID) error
}

func (m *mockFamilyServicer) List(ctx context.Context) ([]domain.FamilyMember, error) {
	return m.list(ctx)
}
func (m *mockFamilyServicer) Create(ctx context.Context, in domain.FamilyMemberInput) (domain.FamilyMember, error) {
	return m.create(ctx, in)
}
func (m *mockFamilyServicer) Update(ctx context.Context, id uuid.UUID, in domain.FamilyMemberInput) (domain.FamilyMember, error) {
	return m.update(ctx, id, in)
}
func (m *mockFamilyServicer) Delete(ctx context.Context, id uuid.UUID) error { return m.delete(ctx, id) }

var _ handler.FamilyServicer = (*mockFamilyServicer)(nil)

type mockCardServicer struct {
	list          func(ctx context.Context) ([]domain.CreditCard, error)
	getByID       func(ctx context.Context, id uuid.UUID) (domain.CreditCard, error)
	create        func(ctx context.Context, in domain.CreditCardInput) (domain.CreditCard, error)
	update        func(ctx context.Context, id uuid.UUID, in domain.CreditCardInput) (domain.CreditCard, error)
	delete        func(ctx context.Context, id uuid.UUID) error
	listBenefits  func(ctx context.Context, cardID uuid.UUID) ([]domain.CardBenefit, error)
	createBenefit func(ctx context.Context, cardID uuid.UUID, in domain.CardBenefitInput) (domain.CardBenefit, error)
	updateBenefit func(ctx context.Context, cardID, benefitID uuid.UUID, in domain.CardBenefitInput) (domain.CardBenefit, error)
	deleteBenefit func(ctx context.Context, cardID, benefitID uuid.UUID) error
}

func (m *mockCardServicer) List(ctx context.Context) ([]domain.CreditCard, error) { return m.list(ctx) }
func (m *mockCardServicer) GetByID(ctx context.Context, id uuid.UUID) (domain.CreditCard, error) {
	return m.getByID(ctx, id)
}
func (m *mockCardServicer) Create(ctx context.Context, in domain.CreditCardInput) (domain.CreditCard, error) {
	return m.create(ctx, in)
}
func (m *mockCardServicer) Update(ctx context.Context, id uuid.UUID, in domain.CreditCardInput) (domain.CreditCard, error) {
	return m.update(ctx, id, in)
}
func (m *mockCardServicer) Delete(ctx context.Context, id uuid.UUID) error { return m.delete(ctx, id) }
func (m *mockCardServicer) ListBenefits(ctx context.Context, cardID uuid.UUID) ([]domain.CardBenefit, error) {
	return m.listBenefits(ctx, cardID)
}
func (m *mockCardServicer) CreateBenefit(ctx context.Context, cardID uuid.UUID, in domain.CardBenefitInput) (domain.CardBenefit, error) {
	return m.createBenefit(ctx, cardID, in)
}
func (m *mockCardServicer) UpdateBenefit(ctx context.Context, cardID, benefitID uuid.UUID, in domain.CardBenefitInput) (domain.CardBenefit, error) {
	return m.updateBenefit(ctx, cardID, benefitID, in)
}
func (m *mockCardServicer) DeleteBenefit(ctx context.Context, cardID, benefitID uuid.UUID) error {
	return m.deleteBenefit(ctx, cardID, benefitID)
}

var _ handler.CardServicer = (*mockCardServicer)(nil)

type mockTripServicer struct {
	create  func(ctx context.Context, in domain.TripInput) (domain.Trip, error)
	getByID func(ctx context.Context, id uuid.UUID) (domain.Trip, error)
	list    func(ctx context.Context, p domain.PageRequest) ([]domain.Trip, error)
	update  func(ctx context.Context, id uuid.UUID, in domain.TripInput) (domain.Trip, error)
	delete  func(ctx context.Context, id uuid.UUID) error
}

func (m *mockTripServicer) Create(ctx context.Context, in domain.TripInput) (domain.Trip, error) {
	return m.create(ctx, in)
}
func (m *mockTripServicer) GetByID(ctx context.Context, id uuid.UUID) (domain.Trip, error) {
	return m.getByID(ctx, id)
}
func (m *mockTripServicer) List(ctx context.Context, p domain.PageRequest) ([]domain.Trip, error) {
	return m.list(ctx, p)
}
func (m *mockTripServicer) Update(ctx context.Context, id uuid.UUID, in domain.TripInput) (domain.Trip, error) {
	return m.update(ctx, id, in)
}
func (m *mockTripServicer) Delete(ctx context.Context, id uuid.UUID) error { return m.delete(ctx, id) }

var _ handler.TripServicer = (*mockTripServicer)(nil)

type mockParticipantServicer struct {
	list   func(ctx context.Context, tripID uuid.UUID) ([]domain.TripParticipant, error)
	create func(ctx context.Context, tripID uuid.UUID, in domain.ParticipantInput) (domain.TripParticipant, error)
	delete func(ctx context.Context, tripID, participantID uuid.UUID) error
}

func (m *mockParticipantServicer) List(ctx context.Context, tripID uuid.UUID) ([]domain.TripParticipant, error) {
	return m.list(ctx, tripID)
}
func (m *mockParticipantServicer) Create(ctx context.Context, tripID uuid.UUID, in domain.ParticipantInput) (domain.TripParticipant, error) {
	return m.create(ctx, tripID, in)
}
func (m *mockParticipantServicer) Delete(ctx context.Context, tripID, participantID uuid.UUID) error {
	return m.delete(ctx, tripID, participantID)
}

var _ handler.ParticipantServicer = (*mockParticipantServicer)(nil)

type mockSettlementServicer struct {
	list   func(ctx context.Context, tripID uuid.UUID) ([]domain.Settlement, error)
	create func(ctx context.Context, tripID uuid.UUID, in domain.SettlementInput) (domain.Settlement, error)
	delete func(ctx context.Context, tripID, settlementID uuid.UUID) error
}

func (m *mockSettlementServicer) List(ctx context.Context, tripID uuid.UUID) ([]domain.Settlement, error) {
	return m.list(ctx, tripID)
}
func (m *mockSettlementServicer) Create(ctx context.Context, tripID uuid.UUID, in domain.SettlementInput) (domain.Settlement, error) {
	return m.create(ctx, tripID, in)
}
func (m *mockSettlementServicer) Delete(ctx context.Context, tripID, settlementID uuid.UUID) error {
	return m.delete(ctx, tripID, settlementID)
}

var _ handler.SettlementServicer = (*mockSettlementServicer)(nil)

type mockItineraryServicer struct {
	list   func(ctx context.Context, tripID uuid.UUID) ([]domain.ItineraryItem, error)
	create func(ctx context.Context, tripID uuid.UUID, in domain.ItineraryItemInput) (domain.ItineraryItem, error)
	update func(ctx context.Context, tripID, itemID uuid.UUID, in domain.ItineraryItemInput) (domain.ItineraryItem, error)
	delete func(ctx context.Context, tripID, itemID uuid.UUID) error
}

func (m *mockItineraryServicer) List(ctx context.Context, tripID uuid.UUID) ([]domain.ItineraryItem, error) {
	return m.list(ctx, tripID)
}
func (m *mockItineraryServicer) Create(ctx context.Context, tripID uuid.UUID, in domain.ItineraryItemInput) (domain.ItineraryItem, error) {
	return m.create(ctx, tripID, in)
}
func (m *mockItineraryServicer) Update(ctx context.Context, tripID, itemID uuid.UUID, in domain.ItineraryItemInput) (domain.ItineraryItem, error) {
	return m.update(ctx, tripID, itemID, in)
}
func (m *mockItineraryServicer) Delete(ctx context.Context, tripID, itemID uuid.UUID) error {
	return m.delete(ctx, tripID, itemID)
}

var _ handler.ItineraryServicer = (*mockItineraryServicer)(nil)

type mockReceiptServicer struct {
	upload func(ctx context.Context, up *service.ReceiptUpload) (string, error)
}

func (m *mockReceiptServicer) Upload(ctx context.Context, up *service.ReceiptUpload) (string, error) {
	return m.upload(ctx, up)
}

var _ handler.ReceiptServicer = (*mockReceiptServicer)(nil)

type mockExportServicer struct {
	export func(ctx context.Context) ([]domain.ExportRow, error)
}

func (m *mockExportServicer) Export(ctx context.Context) ([]domain.ExportRow, error) {
	return m.export(ctx)
}

var _ handler.ExportServicer = (*mockExportServicer)(nil)

// ---- helpers ---------------------------------------------------------------

// newHTTPHandler wires a Server with the given services into its chi router,
// mirroring how main.go mounts it. Logs are discarded.
func newHTTPHandler(svc handler.Services) http.Handler {
	return handler.NewServer(svc, handler.Options{
		Logger:         slog.New(slog.NewJSONHandler(io.Discard, nil)),
		MaxJSONBytes:   1 << 20,
		MaxUploadBytes: 25 << 20,
	}).Routes()
}

// response is the decoded envelope with the data payload left raw.
type response struct {
	Data  json.RawMessage `json:"data"`
	Error *string         `json:"error"`
}

// do sends a request through h. body may be nil, a string (sent verbatim),
// or any value (JSON-encoded).
func do(t *testing.T, h http.Handler, method, target string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var r io.Reader
	switch b := body.(type) {
	case nil:
	case string:
		r = bytes.NewBufferString(b)
	default:
		raw, err := json.Marshal(b)
		require.NoError(t, err)
		r = bytes.NewBuffer(raw)
	}
	req := httptest.NewRequest(method, target, r)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

// decode parses the envelope and asserts exactly one side is set.
func decode(t *testing.T, rec *httptest.ResponseRecorder) response {
	t.Helper()
	require.Contains(t, rec.Header().Get("Content-Type"), "application/json")
	var resp response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	if resp.Error != nil {
		require.Equal(t, "null", string(resp.Data), "failure responses carry data: null")
	} else {
		require.NotEqual(t, "null", string(resp.Data), "success responses carry data")
	}
	return resp
}

// errorMessage decodes rec and returns its error message.
func errorMessage(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	resp := decode(t, rec)
	require.NotNil(t, resp.Error)
	return *resp.Error
}

// dataInto decodes rec and unmarshals its data payload into dst.
func dataInto(t *testing.T, rec *httptest.ResponseRecorder, dst any) {
	t.Helper()
	resp := decode(t, rec)
	require.Nil(t, resp.Error)
	require.NoError(t, json.Unmarshal(resp.Data, dst))
}

func ptr[T any](v T) *T { return &v }

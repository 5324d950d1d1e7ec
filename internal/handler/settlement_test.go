package handler_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/family-trips/internal/domain"
	"github.com/pkordes/family-trips/internal/handler"
	"github.com/pkordes/family-trips/internal/repo"
	"github.com/pkordes/family-trips/internal/service"
)

// settlementsThroughService wires the real SettlementService over repos that
// must never be reached, so only its input validation can respond.
func settlementsThroughService() http.Handler {
	var (
		trips        repo.TripRepo
		participants repo.ParticipantRepo
		settlements  repo.SettlementRepo
	)
	return newHTTPHandler(handler.Services{
		Settlements: service.NewSettlementService(trips, participants, settlements),
	})
}

func TestCreateSettlement_SameParticipant(t *testing.T) {
	h := settlementsThroughService()

	rec := do(t, h, http.MethodPost, "/trips/"+uuid.NewString()+"/settlements",
		map[string]any{"fromId": "a", "toId": "a", "amount": 10})

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, errorMessage(t, rec), "different")
}

func TestCreateSettlement_AmountRejected(t *testing.T) {
	h := settlementsThroughService()

	for _, body := range []string{
		`{"fromId":"a","toId":"b","amount":0}`,
		`{"fromId":"a","toId":"b","amount":-5}`,
		`{"fromId":"a","toId":"b","amount":"10"}`,
		`{"fromId":"a","toId":"b","amount":true}`,
	} {
		rec := do(t, h, http.MethodPost, "/trips/"+uuid.NewString()+"/settlements", body)

		require.Equal(t, http.StatusBadRequest, rec.Code, body)
		assert.Contains(t, errorMessage(t, rec), "positive", body)
	}
}

func TestCreateSettlement_MissingFields(t *testing.T) {
	h := settlementsThroughService()

	rec := do(t, h, http.MethodPost, "/trips/"+uuid.NewString()+"/settlements", map[string]any{"amount": 10})

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "fromId, toId, and amount are required", errorMessage(t, rec))
}

func TestCreateSettlement_201(t *testing.T) {
	tripID, from, to := uuid.New(), uuid.New(), uuid.New()
	h := newHTTPHandler(handler.Services{Settlements: &mockSettlementServicer{
		create: func(_ context.Context, id uuid.UUID, in domain.SettlementInput) (domain.Settlement, error) {
			assert.Equal(t, 25.5, in.Amount)
			return domain.Settlement{ID: uuid.New(), TripID: id, FromID: from, ToID: to, Amount: 25.5}, nil
		},
	}})

	rec := do(t, h, http.MethodPost, "/trips/"+tripID.String()+"/settlements",
		map[string]any{"fromId": from.String(), "toId": to.String(), "amount": 25.5})

	require.Equal(t, http.StatusCreated, rec.Code)
	var got domain.Settlement
	dataInto(t, rec, &got)
	assert.Equal(t, tripID, got.TripID)
}

func TestDeleteSettlement_OtherTrip(t *testing.T) {
	h := newHTTPHandler(handler.Services{Settlements: &mockSettlementServicer{
		delete: func(_ context.Context, _, _ uuid.UUID) error { return domain.Missing("Settlement not found") },
	}})

	rec := do(t, h, http.MethodDelete, "/trips/"+uuid.NewString()+"/settlements/"+uuid.NewString(), nil)

	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Settlement not found", errorMessage(t, rec))
}

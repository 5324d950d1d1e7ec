package handler

import (
	"net/http"

	"github.com/pkordes/family-trips/internal/domain"
)

// ListSettlements handles GET /trips/{id}/settlements.
func (s *Server) ListSettlements(w http.ResponseWriter, r *http.Request) {
	tripID, ok := pathID(w, r, "id", msgTripNotFound)
	if !ok {
		return
	}
	settlements, err := s.svc.Settlements.List(r.Context(), tripID)
	if err != nil {
		s.fail(w, r, err, "Failed to fetch settlements")
		return
	}
	writeData(w, http.StatusOK, settlements)
}

// CreateSettlement handles POST /trips/{id}/settlements.
// amount is decoded loosely so a quoted number reaches the service and is
// rejected there with the positivity message rather than a generic body error.
func (s *Server) CreateSettlement(w http.ResponseWriter, r *http.Request) {
	tripID, ok := pathID(w, r, "id", msgTripNotFound)
	if !ok {
		return
	}
	var in domain.SettlementInput
	if !decodeJSON(w, r, &in) {
		return
	}
	created, err := s.svc.Settlements.Create(r.Context(), tripID, in)
	if err != nil {
		s.fail(w, r, err, "Failed to create settlement")
		return
	}
	writeData(w, http.StatusCreated, created)
}

// DeleteSettlement handles DELETE /trips/{id}/settlements/{settlementId}.
func (s *Server) DeleteSettlement(w http.ResponseWriter, r *http.Request) {
	const notFound = "Settlement not found"
	tripID, ok := pathID(w, r, "id", notFound)
	if !ok {
		return
	}
	settlementID, ok := pathID(w, r, "settlementId", notFound)
	if !ok {
		return
	}
	if err := s.svc.Settlements.Delete(r.Context(), tripID, settlementID); err != nil {
		s.fail(w, r, err, "Failed to delete settlement")
		return
	}
	writeData(w, http.StatusOK, idBody{ID: settlementID.String()})
}

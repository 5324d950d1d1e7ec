package handler

import (
	"net/http"

	"github.com/pkordes/family-trips/internal/domain"
)

// ListBenefits handles GET /cards/{id}/benefits.
func (s *Server) ListBenefits(w http.ResponseWriter, r *http.Request) {
	cardID, ok := pathID(w, r, "id", msgCardNotFound)
	if !ok {
		return
	}
	benefits, err := s.svc.Cards.ListBenefits(r.Context(), cardID)
	if err != nil {
		s.fail(w, r, err, "Failed to fetch card benefits")
		return
	}
	writeData(w, http.StatusOK, benefits)
}

// CreateBenefit handles POST /cards/{id}/benefits.
func (s *Server) CreateBenefit(w http.ResponseWriter, r *http.Request) {
	cardID, ok := pathID(w, r, "id", msgCardNotFound)
	if !ok {
		return
	}
	var in domain.CardBenefitInput
	if !decodeJSON(w, r, &in) {
		return
	}
	created, err := s.svc.Cards.CreateBenefit(r.Context(), cardID, in)
	if err != nil {
		s.fail(w, r, err, "Failed to create card benefit")
		return
	}
	writeData(w, http.StatusCreated, created)
}

// UpdateBenefit handles PATCH /cards/{id}/benefits/{benefitId}.
func (s *Server) UpdateBenefit(w http.ResponseWriter, r *http.Request) {
	cardID, ok := pathID(w, r, "id", msgBenefitNotFound)
	if !ok {
		return
	}
	benefitID, ok := pathID(w, r, "benefitId", msgBenefitNotFound)
	if !ok {
		return
	}
	var in domain.CardBenefitInput
	if !decodeJSON(w, r, &in) {
		return
	}
	updated, err := s.svc.Cards.UpdateBenefit(r.Context(), cardID, benefitID, in)
	if err != nil {
		s.fail(w, r, err, "Failed to update card benefit")
		return
	}
	writeData(w, http.StatusOK, updated)
}

// DeleteBenefit handles DELETE /cards/{id}/benefits/{benefitId}.
func (s *Server) DeleteBenefit(w http.ResponseWriter, r *http.Request) {
	cardID, ok := pathID(w, r, "id", msgBenefitNotFound)
	if !ok {
		return
	}
	benefitID, ok := pathID(w, r, "benefitId", msgBenefitNotFound)
	if !ok {
		return
	}
	if err := s.svc.Cards.DeleteBenefit(r.Context(), cardID, benefitID); err != nil {
		s.fail(w, r, err, "Failed to delete card benefit")
		return
	}
	writeData(w, http.StatusOK, idBody{ID: benefitID.String()})
}

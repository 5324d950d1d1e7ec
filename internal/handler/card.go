package handler

import (
	"net/http"

	"github.com/pkordes/family-trips/internal/domain"
)

const (
	msgCardNotFound    = "Card not found"
	msgBenefitNotFound = "Benefit not found"
)

// ListCards handles GET /cards. Each card carries its benefits.
func (s *Server) ListCards(w http.ResponseWriter, r *http.Request) {
	cards, err := s.svc.Cards.List(r.Context())
	if err != nil {
		s.fail(w, r, err, "Failed to fetch cards")
		return
	}
	writeData(w, http.StatusOK, cards)
}

// CreateCard handles POST /cards.
func (s *Server) CreateCard(w http.ResponseWriter, r *http.Request) {
	var in domain.CreditCardInput
	if !decodeJSON(w, r, &in) {
		return
	}
	created, err := s.svc.Cards.Create(r.Context(), in)
	if err != nil {
		s.fail(w, r, err, "Failed to create card")
		return
	}
	writeData(w, http.StatusCreated, created)
}

// GetCard handles GET /cards/{id}.
func (s *Server) GetCard(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id", msgCardNotFound)
	if !ok {
		return
	}
	card, err := s.svc.Cards.GetByID(r.Context(), id)
	if err != nil {
		s.fail(w, r, err, "Failed to fetch cards")
		return
	}
	writeData(w, http.StatusOK, card)
}

// UpdateCard handles PATCH /cards/{id}.
func (s *Server) UpdateCard(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id", msgCardNotFound)
	if !ok {
		return
	}
	var in domain.CreditCardInput
	if !decodeJSON(w, r, &in) {
		return
	}
	updated, err := s.svc.Cards.Update(r.Context(), id, in)
	if err != nil {
		s.fail(w, r, err, "Failed to update card")
		return
	}
	writeData(w, http.StatusOK, updated)
}

// DeleteCard handles DELETE /cards/{id}. Benefits go with the card.
func (s *Server) DeleteCard(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id", msgCardNotFound)
	if !ok {
		return
	}
	if err := s.svc.Cards.Delete(r.Context(), id); err != nil {
		s.fail(w, r, err, "Failed to delete card")
		return
	}
	writeData(w, http.StatusOK, idBody{ID: id.String()})
}

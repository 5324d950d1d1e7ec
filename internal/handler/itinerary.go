package handler

import (
	"net/http"

	"github.com/pkordes/family-trips/internal/domain"
)

const msgItemNotFound = "Itinerary item not found"

// ListItinerary handles GET /trips/{id}/itinerary.
func (s *Server) ListItinerary(w http.ResponseWriter, r *http.Request) {
	tripID, ok := pathID(w, r, "id", msgTripNotFound)
	if !ok {
		return
	}
	items, err := s.svc.Itinerary.List(r.Context(), tripID)
	if err != nil {
		s.fail(w, r, err, "Failed to fetch itinerary")
		return
	}
	writeData(w, http.StatusOK, items)
}

// CreateItineraryItem handles POST /trips/{id}/itinerary.
func (s *Server) CreateItineraryItem(w http.ResponseWriter, r *http.Request) {
	tripID, ok := pathID(w, r, "id", msgTripNotFound)
	if !ok {
		return
	}
	var in domain.ItineraryItemInput
	if !decodeJSON(w, r, &in) {
		return
	}
	created, err := s.svc.Itinerary.Create(r.Context(), tripID, in)
	if err != nil {
		s.fail(w, r, err, "Failed to create itinerary item")
		return
	}
	writeData(w, http.StatusCreated, created)
}

// UpdateItineraryItem handles PATCH /trips/{id}/itinerary/{itemId}.
func (s *Server) UpdateItineraryItem(w http.ResponseWriter, r *http.Request) {
	tripID, ok := pathID(w, r, "id", msgItemNotFound)
	if !ok {
		return
	}
	itemID, ok := pathID(w, r, "itemId", msgItemNotFound)
	if !ok {
		return
	}
	var in domain.ItineraryItemInput
	if !decodeJSON(w, r, &in) {
		return
	}
	updated, err := s.svc.Itinerary.Update(r.Context(), tripID, itemID, in)
	if err != nil {
		s.fail(w, r, err, "Failed to update itinerary item")
		return
	}
	writeData(w, http.StatusOK, updated)
}

// DeleteItineraryItem handles DELETE /trips/{id}/itinerary/{itemId}.
func (s *Server) DeleteItineraryItem(w http.ResponseWriter, r *http.Request) {
	tripID, ok := pathID(w, r, "id", msgItemNotFound)
	if !ok {
		return
	}
	itemID, ok := pathID(w, r, "itemId", msgItemNotFound)
	if !ok {
		return
	}
	if err := s.svc.Itinerary.Delete(r.Context(), tripID, itemID); err != nil {
		s.fail(w, r, err, "Failed to delete itinerary item")
		return
	}
	writeData(w, http.StatusOK, idBody{ID: itemID.String()})
}

package handler

import (
	"net/http"

	"github.com/pkordes/family-trips/internal/domain"
)

const msgTripNotFound = "Trip not found"

// ListTrips handles GET /trips.
// Supports ?page= and ?limit= query parameters (defaults: page=1, limit=20, max=100).
func (s *Server) ListTrips(w http.ResponseWriter, r *http.Request) {
	var page, limit *int
	if !queryInt(w, r, "page", &page) || !queryInt(w, r, "limit", &limit) {
		return
	}
	trips, err := s.svc.Trips.List(r.Context(), domain.NewPageRequest(page, limit))
	if err != nil {
		s.fail(w, r, err, "Failed to fetch trips")
		return
	}
	writeData(w, http.StatusOK, trips)
}

// CreateTrip handles POST /trips.
func (s *Server) CreateTrip(w http.ResponseWriter, r *http.Request) {
	var in domain.TripInput
	if !decodeJSON(w, r, &in) {
		return
	}
	created, err := s.svc.Trips.Create(r.Context(), in)
	if err != nil {
		s.fail(w, r, err, "Failed to create trip")
		return
	}
	writeData(w, http.StatusCreated, created)
}

// GetTrip handles GET /trips/{id}.
func (s *Server) GetTrip(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id", msgTripNotFound)
	if !ok {
		return
	}
	trip, err := s.svc.Trips.GetByID(r.Context(), id)
	if err != nil {
		s.fail(w, r, err, "Failed to fetch trip")
		return
	}
	writeData(w, http.StatusOK, trip)
}

// UpdateTrip handles PATCH /trips/{id}.
func (s *Server) UpdateTrip(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id", msgTripNotFound)
	if !ok {
		return
	}
	var in domain.TripInput
	if !decodeJSON(w, r, &in) {
		return
	}
	updated, err := s.svc.Trips.Update(r.Context(), id, in)
	if err != nil {
		s.fail(w, r, err, "Failed to update trip")
		return
	}
	writeData(w, http.StatusOK, updated)
}

// DeleteTrip handles DELETE /trips/{id}.
func (s *Server) DeleteTrip(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id", msgTripNotFound)
	if !ok {
		return
	}
	if err := s.svc.Trips.Delete(r.Context(), id); err != nil {
		s.fail(w, r, err, "Failed to delete trip")
		return
	}
	writeData(w, http.StatusOK, idBody{ID: id.String()})
}

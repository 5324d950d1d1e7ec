package handler

import (
	"net/http"

	"github.com/pkordes/family-trips/internal/domain"
)

// ListParticipants handles GET /trips/{id}/participants.
func (s *Server) ListParticipants(w http.ResponseWriter, r *http.Request) {
	tripID, ok := pathID(w, r, "id", msgTripNotFound)
	if !ok {
		return
	}
	participants, err := s.svc.Participants.List(r.Context(), tripID)
	if err != nil {
		s.fail(w, r, err, "Failed to fetch participants")
		return
	}
	writeData(w, http.StatusOK, participants)
}

// CreateParticipant handles POST /trips/{id}/participants.
func (s *Server) CreateParticipant(w http.ResponseWriter, r *http.Request) {
	tripID, ok := pathID(w, r, "id", msgTripNotFound)
	if !ok {
		return
	}
	var in domain.ParticipantInput
	if !decodeJSON(w, r, &in) {
		return
	}
	created, err := s.svc.Participants.Create(r.Context(), tripID, in)
	if err != nil {
		s.fail(w, r, err, "Failed to add participant")
		return
	}
	writeData(w, http.StatusCreated, created)
}

// DeleteParticipant handles DELETE /trips/{id}/participants/{participantId}.
func (s *Server) DeleteParticipant(w http.ResponseWriter, r *http.Request) {
	const notFound = "Participant not found"
	tripID, ok := pathID(w, r, "id", notFound)
	if !ok {
		return
	}
	participantID, ok := pathID(w, r, "participantId", notFound)
	if !ok {
		return
	}
	if err := s.svc.Participants.Delete(r.Context(), tripID, participantID); err != nil {
		s.fail(w, r, err, "Failed to remove participant")
		return
	}
	writeData(w, http.StatusOK, idBody{ID: participantID.String()})
}

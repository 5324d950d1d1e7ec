package handler

import (
	"net/http"

	"github.com/pkordes/family-trips/internal/domain"
)

const msgFamilyNotFound = "Family member not found"

// ListFamily handles GET /family.
func (s *Server) ListFamily(w http.ResponseWriter, r *http.Request) {
	members, err := s.svc.Family.List(r.Context())
	if err != nil {
		s.fail(w, r, err, "Failed to fetch family members")
		return
	}
	writeData(w, http.StatusOK, members)
}

// CreateFamilyMember handles POST /family.
func (s *Server) CreateFamilyMember(w http.ResponseWriter, r *http.Request) {
	var in domain.FamilyMemberInput
	if !decodeJSON(w, r, &in) {
		return
	}
	created, err := s.svc.Family.Create(r.Context(), in)
	if err != nil {
		s.fail(w, r, err, "Failed to create family member")
		return
	}
	writeData(w, http.StatusCreated, created)
}

// UpdateFamilyMember handles PATCH /family/{id}.
func (s *Server) UpdateFamilyMember(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id", msgFamilyNotFound)
	if !ok {
		return
	}
	var in domain.FamilyMemberInput
	if !decodeJSON(w, r, &in) {
		return
	}
	updated, err := s.svc.Family.Update(r.Context(), id, in)
	if err != nil {
		s.fail(w, r, err, "Failed to update family member")
		return
	}
	writeData(w, http.StatusOK, updated)
}

// DeleteFamilyMember handles DELETE /family/{id}.
func (s *Server) DeleteFamilyMember(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id", msgFamilyNotFound)
	if !ok {
		return
	}
	if err := s.svc.Family.Delete(r.Context(), id); err != nil {
		s.fail(w, r, err, "Failed to delete family member")
		return
	}
	writeData(w, http.StatusOK, idBody{ID: id.String()})
}

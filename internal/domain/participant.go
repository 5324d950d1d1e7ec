package domain

import (
	"time"

	"github.com/google/uuid"
)

// TripParticipant is someone taking part in a trip's expenses. A participant
// may be linked to a FamilyMember; guests are not.
type TripParticipant struct {
	ID             uuid.UUID  `json:"id"`
	TripID         uuid.UUID  `json:"tripId"`
	Name           string     `json:"name"`
	Email          *string    `json:"email"`
	GroupName      *string    `json:"groupName"`
	FamilyMemberID *uuid.UUID `json:"familyMemberId"`
	CreatedAt      time.Time  `json:"createdAt"`
}

// ParticipantInput is the request shape for POST /trips/{id}/participants.
type ParticipantInput struct {
	Name           *string `json:"name"`
	Email          *string `json:"email"`
	GroupName      *string `json:"groupName"`
	FamilyMemberID *string `json:"familyMemberId"`
}

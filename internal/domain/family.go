package domain

import (
	"time"

	"github.com/google/uuid"
)

// FamilyMember is a person in the household who can be linked to trip participants.
type FamilyMember struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Role      Role      `json:"role"`
	Email     *string   `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// FamilyMemberInput is the request shape for POST /family and PATCH /family/{id}.
type FamilyMemberInput struct {
	Name  *string `json:"name"`
	Role  *string `json:"role"`
	Email *string `json:"email"`
}

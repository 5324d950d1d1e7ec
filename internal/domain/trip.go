// Package domain contains the core data types for the family trips application.
// It is imported by every other internal package (repo, service, handler) and
// depends only on id and date value types.
package domain

import (
	"time"

	"github.com/google/uuid"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

// Trip is the top-level aggregate; participants, itinerary items, and
// settlements belong to a trip.
type Trip struct {
	ID          uuid.UUID           `json:"id"`
	Name        string              `json:"name"`
	Destination *string             `json:"destination"`
	StartDate   *openapi_types.Date `json:"startDate"`
	EndDate     *openapi_types.Date `json:"endDate"` // nil when open-ended
	Notes       string              `json:"notes"`
	CreatedAt   time.Time           `json:"createdAt"`
	UpdatedAt   time.Time           `json:"updatedAt"`
}

// TripInput is the request shape for creating or patching a trip.
// Nil fields are "not provided"; on patch they leave the stored value unchanged.
type TripInput struct {
	Name        *string `json:"name"`
	Destination *string `json:"destination"`
	StartDate   *string `json:"startDate"`
	EndDate     *string `json:"endDate"`
	Notes       *string `json:"notes"`
}

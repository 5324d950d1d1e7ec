package domain

import (
	"time"

	"github.com/google/uuid"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

// ItineraryItem is one scheduled entry of a trip. StartTime and EndTime are
// "15:04" wall-clock strings local to the item's date.
type ItineraryItem struct {
	ID        uuid.UUID          `json:"id"`
	TripID    uuid.UUID          `json:"tripId"`
	Date      openapi_types.Date `json:"date"`
	Title     string             `json:"title"`
	Type      ItineraryItemType  `json:"type"`
	Location  *string            `json:"location"`
	StartTime *string            `json:"startTime"`
	EndTime   *string            `json:"endTime"`
	Notes     *string            `json:"notes"`
	SortOrder int                `json:"sortOrder"`
	CreatedAt time.Time          `json:"createdAt"`
	UpdatedAt time.Time          `json:"updatedAt"`
}

// ItineraryItemInput is the request shape for creating or patching an item.
type ItineraryItemInput struct {
	Date      *string `json:"date"`
	Title     *string `json:"title"`
	Type      *string `json:"type"`
	Location  *string `json:"location"`
	StartTime *string `json:"startTime"`
	EndTime   *string `json:"endTime"`
	Notes     *string `json:"notes"`
	SortOrder *int    `json:"sortOrder"`
}

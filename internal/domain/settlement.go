package domain

import (
	"time"

	"github.com/google/uuid"
)

// Settlement records a payment from one trip participant to another.
type Settlement struct {
	ID        uuid.UUID `json:"id"`
	TripID    uuid.UUID `json:"tripId"`
	FromID    uuid.UUID `json:"fromId"`
	ToID      uuid.UUID `json:"toId"`
	Amount    float64   `json:"amount"`
	Note      *string   `json:"note"`
	CreatedAt time.Time `json:"createdAt"`
}

// SettlementInput is the request shape for POST /trips/{id}/settlements.
// Amount is decoded as any so that a quoted number can be told apart from a
// JSON number and rejected.
type SettlementInput struct {
	FromID *string `json:"fromId"`
	ToID   *string `json:"toId"`
	Amount any     `json:"amount"`
	Note   *string `json:"note"`
}

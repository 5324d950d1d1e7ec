package domain

import (
	"time"

	"github.com/google/uuid"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

// CreditCard is a household credit card and its rewards-points balance.
// PointsCppValue is the estimated value of one point in cents.
type CreditCard struct {
	ID             uuid.UUID     `json:"id"`
	Name           string        `json:"name"`
	Network        string        `json:"network"`
	LastFour       string        `json:"lastFour"`
	AnnualFee      float64       `json:"annualFee"`
	PointsBalance  int64         `json:"pointsBalance"`
	PointsName     string        `json:"pointsName"`
	PointsCppValue float64       `json:"pointsCppValue"`
	Benefits       []CardBenefit `json:"benefits"`
	CreatedAt      time.Time     `json:"createdAt"`
	UpdatedAt      time.Time     `json:"updatedAt"`
}

// CreditCardInput is the request shape for POST /cards and PATCH /cards/{id}.
type CreditCardInput struct {
	Name           *string  `json:"name"`
	Network        *string  `json:"network"`
	LastFour       *string  `json:"lastFour"`
	AnnualFee      *float64 `json:"annualFee"`
	PointsBalance  *int64   `json:"pointsBalance"`
	PointsName     *string  `json:"pointsName"`
	PointsCppValue *float64 `json:"pointsCppValue"`
}

// CardBenefit is a recurring credit (lounge access, travel credit, ...) attached
// to a card. UsedAmount tracks how much of Value has been consumed since ResetDate.
type CardBenefit struct {
	ID         uuid.UUID           `json:"id"`
	CardID     uuid.UUID           `json:"cardId"`
	Name       string              `json:"name"`
	Value      float64             `json:"value"`
	Frequency  BenefitFrequency    `json:"frequency"`
	UsedAmount float64             `json:"usedAmount"`
	ResetDate  *openapi_types.Date `json:"resetDate"`
	CreatedAt  time.Time           `json:"createdAt"`
	UpdatedAt  time.Time           `json:"updatedAt"`
}

// CardBenefitInput is the request shape for creating or patching a benefit.
type CardBenefitInput struct {
	Name       *string  `json:"name"`
	Value      *float64 `json:"value"`
	Frequency  *string  `json:"frequency"`
	UsedAmount *float64 `json:"usedAmount"`
	ResetDate  *string  `json:"resetDate"`
}

package domain

import "strings"

// Role is the household role of a family member.
type Role string

const (
	RoleParent Role = "parent"
	RoleTeen   Role = "teen"
)

// ParseRole trims s and returns the matching Role.
func ParseRole(s string) (Role, error) {
	switch r := Role(strings.TrimSpace(s)); r {
	case RoleParent, RoleTeen:
		return r, nil
	default:
		return "", Invalid("role must be 'parent' or 'teen'")
	}
}

// BenefitFrequency is how often a card benefit's value resets.
type BenefitFrequency string

const (
	FrequencyAnnual  BenefitFrequency = "annual"
	FrequencyMonthly BenefitFrequency = "monthly"
	FrequencyPerTrip BenefitFrequency = "per_trip"
)

// ParseBenefitFrequency trims s and returns the matching BenefitFrequency.
func ParseBenefitFrequency(s string) (BenefitFrequency, error) {
	switch f := BenefitFrequency(strings.TrimSpace(s)); f {
	case FrequencyAnnual, FrequencyMonthly, FrequencyPerTrip:
		return f, nil
	default:
		return "", Invalid("frequency must be 'annual', 'monthly', or 'per_trip'")
	}
}

// ItineraryItemType classifies an itinerary entry.
type ItineraryItemType string

const (
	ItemFlight    ItineraryItemType = "flight"
	ItemLodging   ItineraryItemType = "lodging"
	ItemActivity  ItineraryItemType = "activity"
	ItemDining    ItineraryItemType = "dining"
	ItemTransport ItineraryItemType = "transport"
	ItemOther     ItineraryItemType = "other"
)

// ParseItineraryItemType trims s and returns the matching ItineraryItemType.
func ParseItineraryItemType(s string) (ItineraryItemType, error) {
	switch t := ItineraryItemType(strings.TrimSpace(s)); t {
	case ItemFlight, ItemLodging, ItemActivity, ItemDining, ItemTransport, ItemOther:
		return t, nil
	default:
		return "", Invalid("type must be 'flight', 'lodging', 'activity', 'dining', 'transport', or 'other'")
	}
}

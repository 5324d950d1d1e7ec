package domain

// ExportRow is a single row in the full-data export.
// It is a flat, denormalized view: one row per itinerary item, with trip fields
// repeated for every item on that trip. Trips with no items yield one row with
// zero values for all item fields.
type ExportRow struct {
	// Trip fields, repeated for every item on the trip.
	TripID        string `json:"tripId"`
	TripName      string `json:"tripName"`
	Destination   string `json:"destination"`
	TripStartDate string `json:"tripStartDate"` // "2006-01-02", empty when unset
	TripEndDate   string `json:"tripEndDate"`

	// Item fields; zero values when the trip has no itinerary.
	ItemDate     string `json:"itemDate"`
	ItemTitle    string `json:"itemTitle"`
	ItemType     string `json:"itemType"`
	ItemLocation string `json:"itemLocation"`
	StartTime    string `json:"startTime"`
	EndTime      string `json:"endTime"`

	// Participants holds the names of everyone on the trip, ordered alphabetically.
	Participants []string `json:"participants"`
}

package domain

// ExportRow is a single row in the itinerary export of one trip.
// It is a flat, denormalized view: one row per activity, with day fields
// repeated for every activity on that day. Days with no activities yield one
// row with zero values for all activity fields.
type ExportRow struct {
	// Day fields, repeated for every activity on the day.
	DayNumber int    // 1-based position of the day in the trip
	Date      string // "2006-01-02"

	// Activity fields, zero values when the day has no activities.
	Title        string
	Category     Category
	TimeStart    string
	TimeEnd      string
	LocationText string
	MapLink      string
	CostEstimate *float64
	Notes        string
}

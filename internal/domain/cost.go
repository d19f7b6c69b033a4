package domain

// CostBreakdown is the aggregated view of a trip's costs.
//
// ByDay holds one entry per day in trip order, including days with a zero
// total. ByCategory holds only categories with a nonzero total, in category
// declaration order; callers that want a ranking must sort it themselves.
type CostBreakdown struct {
	Total      float64        `json:"total"`
	PerPerson  float64        `json:"perPerson"`
	ByDay      []DayCost      `json:"byDay"`
	ByCategory []CategoryCost `json:"byCategory"`
}

// DayCost is the total of one day's activities.
type DayCost struct {
	DayID string  `json:"dayId"`
	Date  string  `json:"date"`
	Total float64 `json:"total"`
}

// CategoryCost is the total of all activities in one category.
type CategoryCost struct {
	Category Category `json:"category"`
	Total    float64  `json:"total"`
}

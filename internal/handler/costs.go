package handler

import (
	"net/http"

	"github.com/pkordes/trip-planner/internal/domain"
)

// CostsResponse is the body of GET /trips/{tripId}/costs. Every amount comes
// with a display string formatted for the server's locale.
type CostsResponse struct {
	Currency           string                 `json:"currency"`
	NumberOfPeople     int                    `json:"numberOfPeople"`
	Total              float64                `json:"total"`
	TotalFormatted     string                 `json:"totalFormatted"`
	PerPerson          float64                `json:"perPerson"`
	PerPersonFormatted string                 `json:"perPersonFormatted"`
	ByDay              []DayCostResponse      `json:"byDay"`
	ByCategory         []CategoryCostResponse `json:"byCategory"`
}

// DayCostResponse is one day's entry in CostsResponse.
type DayCostResponse struct {
	DayID          string  `json:"dayId"`
	Date           string  `json:"date"`
	DateFormatted  string  `json:"dateFormatted"`
	Total          float64 `json:"total"`
	TotalFormatted string  `json:"totalFormatted"`
}

// CategoryCostResponse is one category's entry in CostsResponse.
type CategoryCostResponse struct {
	Category       domain.Category `json:"category"`
	Total          float64         `json:"total"`
	TotalFormatted string          `json:"totalFormatted"`
}

// GetCosts handles GET /trips/{tripId}/costs.
func (s *Server) GetCosts(w http.ResponseWriter, r *http.Request) {
	tripID, ok := pathParam(w, r, "tripId")
	if !ok {
		return
	}
	trip, err := s.trips.GetTrip(tripID)
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}
	costs, err := s.trips.TripCosts(tripID)
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, s.costsResponse(trip, costs))
}

// costsResponse decorates a breakdown with locale-formatted strings.
func (s *Server) costsResponse(trip domain.Trip, b domain.CostBreakdown) CostsResponse {
	money := func(v float64) string { return s.format.Currency(v, trip.Currency) }

	resp := CostsResponse{
		Currency:           trip.Currency,
		NumberOfPeople:     trip.NumberOfPeople,
		Total:              b.Total,
		TotalFormatted:     money(b.Total),
		PerPerson:          b.PerPerson,
		PerPersonFormatted: money(b.PerPerson),
		ByDay:              make([]DayCostResponse, len(b.ByDay)),
		ByCategory:         make([]CategoryCostResponse, len(b.ByCategory)),
	}
	for i, d := range b.ByDay {
		resp.ByDay[i] = DayCostResponse{
			DayID:          d.DayID,
			Date:           d.Date,
			DateFormatted:  s.format.Date(d.Date),
			Total:          d.Total,
			TotalFormatted: money(d.Total),
		}
	}
	for i, c := range b.ByCategory {
		resp.ByCategory[i] = CategoryCostResponse{
			Category:       c.Category,
			Total:          c.Total,
			TotalFormatted: money(c.Total),
		}
	}
	return resp
}

package handler

import (
	"net/http"

	"github.com/oapi-codegen/runtime"
	openapi_types "github.com/oapi-codegen/runtime/types"

	"github.com/pkordes/trip-planner/internal/domain"
	"github.com/pkordes/trip-planner/internal/service"
)

// CreateTripRequest is the body of POST /trips.
type CreateTripRequest struct {
	Title          string             `json:"title"`
	StartDate      openapi_types.Date `json:"startDate"`
	EndDate        openapi_types.Date `json:"endDate"`
	NumberOfPeople *int               `json:"numberOfPeople,omitempty"`
	Currency       *string            `json:"currency,omitempty"`
}

// UpdateTripRequest is the body of PATCH /trips/{tripId}.
// Absent fields are left unchanged.
type UpdateTripRequest struct {
	Title          *string              `json:"title,omitempty"`
	StartDate      *openapi_types.Date  `json:"startDate,omitempty"`
	EndDate        *openapi_types.Date  `json:"endDate,omitempty"`
	Timezone       *string              `json:"timezone,omitempty"`
	Currency       *string              `json:"currency,omitempty"`
	NumberOfPeople *int                 `json:"numberOfPeople,omitempty"`
	Notes          *string              `json:"notes,omitempty"`
	CostSettings   *domain.CostSettings `json:"costSettings,omitempty"`
}

// CurrentTripRequest is the body of PUT /current-trip. A null tripId clears it.
type CurrentTripRequest struct {
	TripID *string `json:"tripId"`
}

// Pagination describes one page of a list response.
type Pagination struct {
	Page  int `json:"page"`
	Limit int `json:"limit"`
	Total int `json:"total"`
}

// TripList is the body of GET /trips.
type TripList struct {
	Data       []domain.Trip `json:"data"`
	Pagination Pagination    `json:"pagination"`
}

// CreateTrip handles POST /trips.
func (s *Server) CreateTrip(w http.ResponseWriter, r *http.Request) {
	var body CreateTripRequest
	if !decodeBody(w, r, &body) {
		return
	}
	in, msg := requestToNewTrip(body)
	if msg != "" {
		writeJSON(w, http.StatusUnprocessableEntity, requestBody(msg))
		return
	}

	created, err := s.trips.CreateTrip(r.Context(), in)
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

// ListTrips handles GET /trips.
// Supports ?page= and ?limit= query parameters (defaults: page=1, limit=20, max=100).
func (s *Server) ListTrips(w http.ResponseWriter, r *http.Request) {
	var page, limit *int
	if err := runtime.BindQueryParameter("form", true, false, "page", r.URL.Query(), &page); err != nil {
		writeJSON(w, http.StatusUnprocessableEntity, requestBody("invalid page parameter"))
		return
	}
	if err := runtime.BindQueryParameter("form", true, false, "limit", r.URL.Query(), &limit); err != nil {
		writeJSON(w, http.StatusUnprocessableEntity, requestBody("invalid limit parameter"))
		return
	}

	params := domain.NewPaginationParams(page, limit)
	trips, total := s.trips.ListTripsPaged(params)
	writeJSON(w, http.StatusOK, TripList{
		Data:       trips,
		Pagination: Pagination{Page: params.Page, Limit: params.Limit, Total: total},
	})
}

// GetTrip handles GET /trips/{tripId}.
func (s *Server) GetTrip(w http.ResponseWriter, r *http.Request) {
	tripID, ok := pathParam(w, r, "tripId")
	if !ok {
		return
	}
	trip, err := s.trips.GetTrip(tripID)
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, trip)
}

// UpdateTrip handles PATCH /trips/{tripId}.
func (s *Server) UpdateTrip(w http.ResponseWriter, r *http.Request) {
	tripID, ok := pathParam(w, r, "tripId")
	if !ok {
		return
	}
	var body UpdateTripRequest
	if !decodeBody(w, r, &body) {
		return
	}

	updated, err := s.trips.UpdateTrip(r.Context(), tripID, requestToTripPatch(body))
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

// DeleteTrip handles DELETE /trips/{tripId}.
func (s *Server) DeleteTrip(w http.ResponseWriter, r *http.Request) {
	tripID, ok := pathParam(w, r, "tripId")
	if !ok {
		return
	}
	if err := s.trips.DeleteTrip(r.Context(), tripID); err != nil {
		s.writeServiceError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// GetCurrentTrip handles GET /current-trip.
func (s *Server) GetCurrentTrip(w http.ResponseWriter, _ *http.Request) {
	trip, ok := s.trips.CurrentTrip()
	if !ok {
		writeJSON(w, http.StatusNotFound, notFoundBody("no current trip"))
		return
	}
	writeJSON(w, http.StatusOK, trip)
}

// PutCurrentTrip handles PUT /current-trip.
// Responds with the new current trip, or 204 when the marker was cleared.
func (s *Server) PutCurrentTrip(w http.ResponseWriter, r *http.Request) {
	var body CurrentTripRequest
	if !decodeBody(w, r, &body) {
		return
	}
	var tripID string
	if body.TripID != nil {
		tripID = *body.TripID
	}
	if err := s.trips.SetCurrentTrip(r.Context(), tripID); err != nil {
		s.writeServiceError(w, r, err)
		return
	}
	trip, ok := s.trips.CurrentTrip()
	if !ok {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	writeJSON(w, http.StatusOK, trip)
}

// --- mapping helpers --------------------------------------------------------

// requestToNewTrip converts a CreateTripRequest body into service input.
// Returns a non-empty message if required fields are missing.
func requestToNewTrip(body CreateTripRequest) (service.NewTrip, string) {
	if body.StartDate.IsZero() {
		return service.NewTrip{}, "startDate is required"
	}
	if body.EndDate.IsZero() {
		return service.NewTrip{}, "endDate is required"
	}
	in := service.NewTrip{
		Title:     body.Title,
		StartDate: dateString(body.StartDate),
		EndDate:   dateString(body.EndDate),
	}
	if body.NumberOfPeople != nil {
		if *body.NumberOfPeople <= 0 {
			return service.NewTrip{}, "numberOfPeople must be positive"
		}
		in.NumberOfPeople = *body.NumberOfPeople
	}
	if body.Currency != nil {
		in.Currency = *body.Currency
	}
	return in, ""
}

// requestToTripPatch converts an UpdateTripRequest body into a service patch.
func requestToTripPatch(body UpdateTripRequest) service.TripPatch {
	p := service.TripPatch{
		Title:          body.Title,
		Timezone:       body.Timezone,
		Currency:       body.Currency,
		NumberOfPeople: body.NumberOfPeople,
		Notes:          body.Notes,
		CostSettings:   body.CostSettings,
	}
	if body.StartDate != nil {
		d := dateString(*body.StartDate)
		p.StartDate = &d
	}
	if body.EndDate != nil {
		d := dateString(*body.EndDate)
		p.EndDate = &d
	}
	return p
}

func dateString(d openapi_types.Date) string {
	return d.Format(openapi_types.DateFormat)
}

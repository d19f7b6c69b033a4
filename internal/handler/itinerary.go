package handler

import (
	"net/http"

	"github.com/pkordes/trip-planner/internal/domain"
	"github.com/pkordes/trip-planner/internal/service"
)

// ActivityRequest is the body of POST /trips/{tripId}/days/{dayId}/activities.
type ActivityRequest struct {
	Title        string          `json:"title"`
	Category     domain.Category `json:"category"`
	TimeStart    string          `json:"timeStart,omitempty"`
	TimeEnd      string          `json:"timeEnd,omitempty"`
	LocationText string          `json:"locationText,omitempty"`
	MapLink      string          `json:"mapLink,omitempty"`
	CostEstimate *float64        `json:"costEstimate,omitempty"`
	Notes        string          `json:"notes,omitempty"`
}

// UpdateActivityRequest is the body of PATCH /trips/{tripId}/activities/{activityId}.
// Absent fields are left unchanged; clearCost removes the cost estimate.
type UpdateActivityRequest struct {
	Title        *string          `json:"title,omitempty"`
	Category     *domain.Category `json:"category,omitempty"`
	TimeStart    *string          `json:"timeStart,omitempty"`
	TimeEnd      *string          `json:"timeEnd,omitempty"`
	LocationText *string          `json:"locationText,omitempty"`
	MapLink      *string          `json:"mapLink,omitempty"`
	CostEstimate *float64         `json:"costEstimate,omitempty"`
	ClearCost    bool             `json:"clearCost,omitempty"`
	Notes        *string          `json:"notes,omitempty"`
}

// ReorderRequest is the body of POST /trips/{tripId}/days/{dayId}/reorder.
// The activity activeId takes the position currently held by overId.
type ReorderRequest struct {
	ActiveID string `json:"activeId"`
	OverID   string `json:"overId"`
}

// MoveRequest is the body of POST /trips/{tripId}/activities/{activityId}/move.
type MoveRequest struct {
	DayID string `json:"dayId"`
}

// AddDay handles POST /trips/{tripId}/days.
func (s *Server) AddDay(w http.ResponseWriter, r *http.Request) {
	tripID, ok := pathParam(w, r, "tripId")
	if !ok {
		return
	}
	trip, err := s.trips.AddDay(r.Context(), tripID)
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, trip)
}

// RemoveDay handles DELETE /trips/{tripId}/days/{dayId}.
func (s *Server) RemoveDay(w http.ResponseWriter, r *http.Request) {
	tripID, ok := pathParam(w, r, "tripId")
	if !ok {
		return
	}
	dayID, ok := pathParam(w, r, "dayId")
	if !ok {
		return
	}
	trip, err := s.trips.RemoveDay(r.Context(), tripID, dayID)
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, trip)
}

// AddActivity handles POST /trips/{tripId}/days/{dayId}/activities.
func (s *Server) AddActivity(w http.ResponseWriter, r *http.Request) {
	tripID, ok := pathParam(w, r, "tripId")
	if !ok {
		return
	}
	dayID, ok := pathParam(w, r, "dayId")
	if !ok {
		return
	}
	var body ActivityRequest
	if !decodeBody(w, r, &body) {
		return
	}

	created, err := s.trips.AddActivity(r.Context(), tripID, dayID, service.ActivityInput{
		Title:        body.Title,
		Category:     body.Category,
		TimeStart:    body.TimeStart,
		TimeEnd:      body.TimeEnd,
		LocationText: body.LocationText,
		MapLink:      body.MapLink,
		CostEstimate: body.CostEstimate,
		Notes:        body.Notes,
	})
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

// UpdateActivity handles PATCH /trips/{tripId}/activities/{activityId}.
func (s *Server) UpdateActivity(w http.ResponseWriter, r *http.Request) {
	tripID, ok := pathParam(w, r, "tripId")
	if !ok {
		return
	}
	activityID, ok := pathParam(w, r, "activityId")
	if !ok {
		return
	}
	var body UpdateActivityRequest
	if !decodeBody(w, r, &body) {
		return
	}

	updated, err := s.trips.UpdateActivity(r.Context(), tripID, activityID, service.ActivityPatch{
		Title:        body.Title,
		Category:     body.Category,
		TimeStart:    body.TimeStart,
		TimeEnd:      body.TimeEnd,
		LocationText: body.LocationText,
		MapLink:      body.MapLink,
		CostEstimate: body.CostEstimate,
		ClearCost:    body.ClearCost,
		Notes:        body.Notes,
	})
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

// DeleteActivity handles DELETE /trips/{tripId}/activities/{activityId}.
func (s *Server) DeleteActivity(w http.ResponseWriter, r *http.Request) {
	tripID, ok := pathParam(w, r, "tripId")
	if !ok {
		return
	}
	activityID, ok := pathParam(w, r, "activityId")
	if !ok {
		return
	}
	if err := s.trips.DeleteActivity(r.Context(), tripID, activityID); err != nil {
		s.writeServiceError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ReorderActivities handles POST /trips/{tripId}/days/{dayId}/reorder.
func (s *Server) ReorderActivities(w http.ResponseWriter, r *http.Request) {
	tripID, ok := pathParam(w, r, "tripId")
	if !ok {
		return
	}
	dayID, ok := pathParam(w, r, "dayId")
	if !ok {
		return
	}
	var body ReorderRequest
	if !decodeBody(w, r, &body) {
		return
	}
	if body.ActiveID == "" || body.OverID == "" {
		writeJSON(w, http.StatusUnprocessableEntity, requestBody("activeId and overId are required"))
		return
	}

	day, err := s.trips.ReorderActivities(r.Context(), tripID, dayID, body.ActiveID, body.OverID)
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, day)
}

// MoveActivity handles POST /trips/{tripId}/activities/{activityId}/move.
func (s *Server) MoveActivity(w http.ResponseWriter, r *http.Request) {
	tripID, ok := pathParam(w, r, "tripId")
	if !ok {
		return
	}
	activityID, ok := pathParam(w, r, "activityId")
	if !ok {
		return
	}
	var body MoveRequest
	if !decodeBody(w, r, &body) {
		return
	}
	if body.DayID == "" {
		writeJSON(w, http.StatusUnprocessableEntity, requestBody("dayId is required"))
		return
	}

	moved, err := s.trips.MoveActivityToDay(r.Context(), tripID, activityID, body.DayID)
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, moved)
}

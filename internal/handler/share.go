package handler

import (
	"net/http"

	"github.com/pkordes/trip-planner/internal/domain"
	"github.com/pkordes/trip-planner/internal/service"
)

// ShareLinkResponse is the body of GET /trips/{tripId}/share.
type ShareLinkResponse struct {
	Token string `json:"token"`
	URL   string `json:"url"`
}

// SharedTripResponse is the body of GET /share/{token}: the read-only trip
// carried by the token and its cost breakdown.
type SharedTripResponse struct {
	Trip  domain.Trip   `json:"trip"`
	Costs CostsResponse `json:"costs"`
}

// GetShareLink handles GET /trips/{tripId}/share.
func (s *Server) GetShareLink(w http.ResponseWriter, r *http.Request) {
	tripID, ok := pathParam(w, r, "tripId")
	if !ok {
		return
	}
	trip, err := s.trips.GetTrip(tripID)
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}
	token, err := s.share.Encode(trip)
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, ShareLinkResponse{Token: token, URL: s.share.Link(token)})
}

// GetSharedTrip handles GET /share/{token}.
// Any token that does not decode yields 404; the shared trip is never stored.
func (s *Server) GetSharedTrip(w http.ResponseWriter, r *http.Request) {
	token, ok := pathParam(w, r, "token")
	if !ok {
		return
	}
	trip, ok := s.share.Decode(token)
	if !ok {
		writeJSON(w, http.StatusNotFound, notFoundBody("shared trip not found or link is invalid"))
		return
	}
	writeJSON(w, http.StatusOK, SharedTripResponse{
		Trip:  trip,
		Costs: s.costsResponse(trip, service.CostBreakdown(trip)),
	})
}

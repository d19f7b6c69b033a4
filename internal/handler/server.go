// Package handler implements the HTTP handlers for the trip planner API.
// All handlers are methods on Server. Methods are split into domain-specific
// files (health.go, trip.go, itinerary.go, etc.) but all share the same Server
// struct so they can access its dependencies.
package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/pkordes/trip-planner/internal/domain"
	"github.com/pkordes/trip-planner/internal/format"
	"github.com/pkordes/trip-planner/internal/service"
)

// TripServicer defines the business operations the trip handlers depend on.
// Defining the interface here (in the consumer package) follows the Go
// convention: "accept interfaces, return concrete types". It lets handler
// tests inject a mock without touching storage or the service layer.
type TripServicer interface {
	CreateTrip(ctx context.Context, in service.NewTrip) (domain.Trip, error)
	UpdateTrip(ctx context.Context, tripID string, patch service.TripPatch) (domain.Trip, error)
	DeleteTrip(ctx context.Context, tripID string) error
	GetTrip(tripID string) (domain.Trip, error)
	ListTripsPaged(p domain.PaginationParams) ([]domain.Trip, int)
	SetCurrentTrip(ctx context.Context, tripID string) error
	CurrentTrip() (domain.Trip, bool)

	AddDay(ctx context.Context, tripID string) (domain.Trip, error)
	RemoveDay(ctx context.Context, tripID, dayID string) (domain.Trip, error)
	AddActivity(ctx context.Context, tripID, dayID string, in service.ActivityInput) (domain.Activity, error)
	UpdateActivity(ctx context.Context, tripID, activityID string, patch service.ActivityPatch) (domain.Activity, error)
	DeleteActivity(ctx context.Context, tripID, activityID string) error
	ReorderActivities(ctx context.Context, tripID, dayID, activeID, overID string) (domain.Day, error)
	MoveActivityToDay(ctx context.Context, tripID, activityID, dayID string) (domain.Activity, error)

	TripCosts(tripID string) (domain.CostBreakdown, error)
}

// Exporter flattens a trip into itinerary rows.
type Exporter interface {
	Export(tripID string) ([]domain.ExportRow, error)
}

// Sharer turns trips into share tokens and back.
type Sharer interface {
	Encode(trip domain.Trip) (string, error)
	Decode(token string) (domain.Trip, bool)
	Link(token string) string
}

// Server serves every API endpoint.
// Methods are in domain-specific files but all operate on this struct.
type Server struct {
	trips  TripServicer
	export Exporter
	share  Sharer
	format *format.Formatter
	log    *slog.Logger
}

// NewServer constructs the Server with all its dependencies.
// A nil formatter uses the default locale and a nil logger uses slog.Default().
func NewServer(trips TripServicer, export Exporter, share Sharer, f *format.Formatter, log *slog.Logger) *Server {
	if f == nil {
		f = format.New(format.DefaultLocale)
	}
	if log == nil {
		log = slog.Default()
	}
	return &Server{trips: trips, export: export, share: share, format: f, log: log}
}

// NewHealthHandler returns a Server for health-check-only use.
func NewHealthHandler() *Server {
	return NewServer(nil, nil, nil, nil, nil)
}

// Handler returns the chi router with every route registered.
// Mount it at "/" in main.go behind the shared middleware stack.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusNotFound, notFoundBody("route not found"))
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusMethodNotAllowed, errorBody("method_not_allowed", "method not allowed"))
	})

	r.Get("/healthz", s.GetHealth)
	r.Get("/openapi.yaml", s.GetOpenAPI)

	r.Route("/trips", func(r chi.Router) {
		r.Get("/", s.ListTrips)
		r.Post("/", s.CreateTrip)

		r.Route("/{tripId}", func(r chi.Router) {
			r.Get("/", s.GetTrip)
			r.Patch("/", s.UpdateTrip)
			r.Delete("/", s.DeleteTrip)

			r.Post("/days", s.AddDay)
			r.Delete("/days/{dayId}", s.RemoveDay)
			r.Post("/days/{dayId}/activities", s.AddActivity)
			r.Post("/days/{dayId}/reorder", s.ReorderActivities)

			r.Patch("/activities/{activityId}", s.UpdateActivity)
			r.Delete("/activities/{activityId}", s.DeleteActivity)
			r.Post("/activities/{activityId}/move", s.MoveActivity)

			r.Get("/costs", s.GetCosts)
			r.Get("/share", s.GetShareLink)
			r.Get("/export", s.GetExport)
		})
	})

	r.Get("/current-trip", s.GetCurrentTrip)
	r.Put("/current-trip", s.PutCurrentTrip)

	r.Get("/share/{token}", s.GetSharedTrip)

	return r
}

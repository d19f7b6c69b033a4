// Package service contains the business logic for the trip planner.
// TripService owns every trip in the process, enforces the ordering
// invariants of days and activities, and persists the whole collection
// through a repo.StateStore after each mutation. No SQL lives here.
package service

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/pkordes/trip-planner/internal/domain"
	"github.com/pkordes/trip-planner/internal/repo"
	"github.com/pkordes/trip-planner/internal/sample"
)

// state is the persisted shape of the trip collection.
type state struct {
	Trips         []domain.Trip `json:"trips"`
	CurrentTripID *string       `json:"currentTripId"`
}

// Options configures a TripService. The zero value is valid.
type Options struct {
	// Key is the storage key the collection is saved under.
	// Defaults to repo.DefaultStateKey.
	Key string

	// Now is the clock used for timestamps. Defaults to time.Now.
	Now func() time.Time

	// NewID generates trip, day and activity ids. Defaults to uuid.NewString.
	NewID func() string

	// Seed builds the example trip stored when the collection loads empty.
	// Defaults to sample.HaLongTrip.
	Seed func(now time.Time) domain.Trip

	// Logger defaults to slog.Default().
	Logger *slog.Logger
}

// TripService implements the trip state engine.
//
// All methods are safe for concurrent use: a single mutex serializes every
// operation, including the store write, so each operation is atomic with
// respect to the others. Returned values are deep copies.
type TripService struct {
	mu    sync.Mutex
	store repo.StateStore
	key   string
	now   func() time.Time
	newID func() string
	log   *slog.Logger
	state state
}

// Open loads the trip collection from store and returns a ready TripService.
// A missing blob loads as an empty collection. When the loaded collection is
// empty, the seed trip is added, made current, and saved.
func Open(ctx context.Context, store repo.StateStore, opts Options) (*TripService, error) {
	s := &TripService{
		store: store,
		key:   opts.Key,
		now:   opts.Now,
		newID: opts.NewID,
		log:   opts.Logger,
	}
	if s.key == "" {
		s.key = repo.DefaultStateKey
	}
	if s.now == nil {
		s.now = time.Now
	}
	if s.newID == nil {
		s.newID = uuid.NewString
	}
	if s.log == nil {
		s.log = slog.Default()
	}
	seed := opts.Seed
	if seed == nil {
		seed = sample.HaLongTrip
	}

	blob, err := store.Load(ctx, s.key)
	if err != nil {
		return nil, fmt.Errorf("service.Open: %w", err)
	}
	if len(blob) > 0 {
		if err := json.Unmarshal(blob, &s.state); err != nil {
			return nil, fmt.Errorf("service.Open: decode state: %w", err)
		}
	}
	s.normalize()

	if len(s.state.Trips) == 0 {
		t := seed(s.clock())
		s.state.Trips = []domain.Trip{t}
		s.state.CurrentTripID = &t.ID
		if err := s.saveLocked(ctx); err != nil {
			return nil, fmt.Errorf("service.Open: seed: %w", err)
		}
		s.log.Info("seeded sample trip", "trip_id", t.ID)
	}

	s.log.Debug("trip state loaded", "key", s.key, "trips", len(s.state.Trips))
	return s, nil
}

// NewTrip is the input to CreateTrip.
// Zero NumberOfPeople and empty Currency fall back to the defaults.
type NewTrip struct {
	Title          string
	StartDate      string
	EndDate        string
	NumberOfPeople int
	Currency       string
}

// CreateTrip validates in, generates one day per date in the inclusive
// [StartDate, EndDate] range, stores the trip and makes it current.
// Returns domain.ErrValidation if input violates business rules.
func (s *TripService) CreateTrip(ctx context.Context, in NewTrip) (domain.Trip, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.clock()
	t := domain.Trip{
		ID:             s.newID(),
		Title:          in.Title,
		StartDate:      in.StartDate,
		EndDate:        in.EndDate,
		Timezone:       domain.DefaultTimezone,
		Currency:       normalizeCurrency(in.Currency),
		NumberOfPeople: in.NumberOfPeople,
		CostSettings:   domain.DefaultCostSettings(),
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if t.Currency == "" {
		t.Currency = domain.DefaultCurrency
	}
	if t.NumberOfPeople == 0 {
		t.NumberOfPeople = domain.DefaultNumberOfPeople
	}
	if err := validateTrip(t); err != nil {
		return domain.Trip{}, fmt.Errorf("service.TripService.CreateTrip: %w", err)
	}

	start, _ := domain.ParseDate(t.StartDate)
	end, _ := domain.ParseDate(t.EndDate)
	n := domain.DaysBetween(start, end) + 1
	t.Days = make([]domain.Day, n)
	for i := range t.Days {
		t.Days[i] = domain.Day{
			ID:         s.newID(),
			TripID:     t.ID,
			Date:       domain.FormatDate(start.AddDate(0, 0, i)),
			OrderIndex: i,
			Activities: []domain.Activity{},
		}
	}

	prevCurrent := s.state.CurrentTripID
	s.state.Trips = append(s.state.Trips, t)
	s.state.CurrentTripID = &t.ID
	if err := s.saveLocked(ctx); err != nil {
		s.state.Trips = s.state.Trips[:len(s.state.Trips)-1]
		s.state.CurrentTripID = prevCurrent
		return domain.Trip{}, fmt.Errorf("service.TripService.CreateTrip: %w", err)
	}

	s.log.Debug("trip created", "trip_id", t.ID, "days", n)
	return t.Clone(), nil
}

// TripPatch lists the trip fields UpdateTrip may change.
// Nil fields are left untouched. Days are never regenerated by a patch.
type TripPatch struct {
	Title          *string
	StartDate      *string
	EndDate        *string
	Timezone       *string
	Currency       *string
	NumberOfPeople *int
	Notes          *string
	CostSettings   *domain.CostSettings
}

// UpdateTrip applies the non-nil fields of patch to the trip.
// Returns domain.ErrNotFound for an unknown trip and domain.ErrValidation
// when the merged trip violates business rules.
func (s *TripService) UpdateTrip(ctx context.Context, tripID string, patch TripPatch) (domain.Trip, error) {
	return s.mutate(ctx, "UpdateTrip", tripID, func(t *domain.Trip) error {
		if patch.Title != nil {
			t.Title = *patch.Title
		}
		if patch.StartDate != nil {
			t.StartDate = *patch.StartDate
		}
		if patch.EndDate != nil {
			t.EndDate = *patch.EndDate
		}
		if patch.Timezone != nil {
			t.Timezone = *patch.Timezone
		}
		if patch.Currency != nil {
			t.Currency = normalizeCurrency(*patch.Currency)
		}
		if patch.NumberOfPeople != nil {
			t.NumberOfPeople = *patch.NumberOfPeople
		}
		if patch.Notes != nil {
			t.Notes = *patch.Notes
		}
		if patch.CostSettings != nil {
			t.CostSettings = patch.CostSettings.Clone()
		}
		return validateTrip(*t)
	})
}

// DeleteTrip removes the trip together with its days and activities.
// If it was the current trip, no trip is current afterwards.
func (s *TripService) DeleteTrip(ctx context.Context, tripID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(tripID)
	if i < 0 {
		return fmt.Errorf("service.TripService.DeleteTrip: trip %s: %w", tripID, domain.ErrNotFound)
	}

	prev := s.state
	s.state.Trips = slices.Delete(slices.Clone(s.state.Trips), i, i+1)
	if s.state.CurrentTripID != nil && *s.state.CurrentTripID == tripID {
		s.state.CurrentTripID = nil
	}
	if err := s.saveLocked(ctx); err != nil {
		s.state = prev
		return fmt.Errorf("service.TripService.DeleteTrip: %w", err)
	}

	s.log.Debug("trip deleted", "trip_id", tripID)
	return nil
}

// SetCurrentTrip points the current-trip marker at tripID.
// An empty tripID clears the marker.
func (s *TripService) SetCurrentTrip(ctx context.Context, tripID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	var next *string
	if tripID != "" {
		if s.indexOf(tripID) < 0 {
			return fmt.Errorf("service.TripService.SetCurrentTrip: trip %s: %w", tripID, domain.ErrNotFound)
		}
		next = &tripID
	}

	prev := s.state.CurrentTripID
	s.state.CurrentTripID = next
	if err := s.saveLocked(ctx); err != nil {
		s.state.CurrentTripID = prev
		return fmt.Errorf("service.TripService.SetCurrentTrip: %w", err)
	}
	return nil
}

// CurrentTrip returns the current trip, if one is set.
func (s *TripService) CurrentTrip() (domain.Trip, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state.CurrentTripID == nil {
		return domain.Trip{}, false
	}
	i := s.indexOf(*s.state.CurrentTripID)
	if i < 0 {
		return domain.Trip{}, false
	}
	return s.state.Trips[i].Clone(), true
}

// GetTrip returns a single trip by id.
// Returns domain.ErrNotFound if no trip with that id exists.
func (s *TripService) GetTrip(tripID string) (domain.Trip, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(tripID)
	if i < 0 {
		return domain.Trip{}, fmt.Errorf("service.TripService.GetTrip: trip %s: %w", tripID, domain.ErrNotFound)
	}
	return s.state.Trips[i].Clone(), nil
}

// ListTrips returns all trips in creation order.
// Always returns a non-nil slice so callers can safely range over it.
func (s *TripService) ListTrips() []domain.Trip {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]domain.Trip, 0, len(s.state.Trips))
	for _, t := range s.state.Trips {
		out = append(out, t.Clone())
	}
	return out
}

// ListTripsPaged returns one page of trips and the total number of trips.
func (s *TripService) ListTripsPaged(p domain.PaginationParams) ([]domain.Trip, int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	total := len(s.state.Trips)
	start, end := p.Window(total)
	out := make([]domain.Trip, 0, end-start)
	for _, t := range s.state.Trips[start:end] {
		out = append(out, t.Clone())
	}
	return out, total
}

// TripCosts returns the cost breakdown of a stored trip.
func (s *TripService) TripCosts(tripID string) (domain.CostBreakdown, error) {
	t, err := s.GetTrip(tripID)
	if err != nil {
		return domain.CostBreakdown{}, fmt.Errorf("service.TripService.TripCosts: %w", err)
	}
	return CostBreakdown(t), nil
}

// mutate runs fn against a private copy of the trip. The copy replaces the
// stored trip only if fn succeeds and the store accepts the new state, so a
// failed operation never leaves a partial change behind.
func (s *TripService) mutate(ctx context.Context, op, tripID string, fn func(t *domain.Trip) error) (domain.Trip, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(tripID)
	if i < 0 {
		return domain.Trip{}, fmt.Errorf("service.TripService.%s: trip %s: %w", op, tripID, domain.ErrNotFound)
	}

	prev := s.state.Trips[i]
	working := prev.Clone()
	if err := fn(&working); err != nil {
		return domain.Trip{}, fmt.Errorf("service.TripService.%s: %w", op, err)
	}
	s.touch(&working)

	s.state.Trips[i] = working
	if err := s.saveLocked(ctx); err != nil {
		s.state.Trips[i] = prev
		return domain.Trip{}, fmt.Errorf("service.TripService.%s: %w", op, err)
	}

	s.log.Debug("trip updated", "op", op, "trip_id", tripID)
	return working.Clone(), nil
}

// touch advances UpdatedAt. If the clock has not moved past the previous
// value, UpdatedAt still advances by one nanosecond.
func (s *TripService) touch(t *domain.Trip) {
	now := s.clock()
	if !now.After(t.UpdatedAt) {
		now = t.UpdatedAt.Add(time.Nanosecond)
	}
	t.UpdatedAt = now
}

func (s *TripService) clock() time.Time {
	return s.now().UTC()
}

func (s *TripService) indexOf(tripID string) int {
	return slices.IndexFunc(s.state.Trips, func(t domain.Trip) bool { return t.ID == tripID })
}

// saveLocked writes the full collection to the store. Callers hold s.mu.
func (s *TripService) saveLocked(ctx context.Context) error {
	blob, err := json.Marshal(s.state)
	if err != nil {
		return fmt.Errorf("encode state: %w", err)
	}
	if err := s.store.Save(ctx, s.key, blob); err != nil {
		s.log.ErrorContext(ctx, "failed to save trip state", "key", s.key, "error", err)
		return err
	}
	return nil
}

// normalize repairs loaded state so the ordering invariants hold even if the
// stored blob was produced by an older or hand-edited client.
func (s *TripService) normalize() {
	if s.state.Trips == nil {
		s.state.Trips = []domain.Trip{}
	}
	for i := range s.state.Trips {
		renumberDays(&s.state.Trips[i])
	}
	if s.state.CurrentTripID != nil && s.indexOf(*s.state.CurrentTripID) < 0 {
		s.state.CurrentTripID = nil
	}
}

package service

import (
	"context"
	"fmt"
	"slices"

	"github.com/pkordes/trip-planner/internal/domain"
)

// AddDay appends a day dated one day after the current last day and moves
// the trip's EndDate to it. The trip may not grow past maxTripDays.
func (s *TripService) AddDay(ctx context.Context, tripID string) (domain.Trip, error) {
	return s.mutate(ctx, "AddDay", tripID, func(t *domain.Trip) error {
		date := t.StartDate
		if n := len(t.Days); n > 0 {
			next, err := domain.AddDays(t.Days[n-1].Date, 1)
			if err != nil {
				return err
			}
			date = next
		}
		if slices.ContainsFunc(t.Days, func(d domain.Day) bool { return d.Date == date }) {
			return fmt.Errorf("%w: trip already has a day dated %s", domain.ErrValidation, date)
		}
		start, err := domain.ParseDate(t.StartDate)
		if err != nil {
			return err
		}
		end, err := domain.ParseDate(date)
		if err != nil {
			return err
		}
		if err := validateSpan(start, end); err != nil {
			return err
		}
		t.Days = append(t.Days, domain.Day{
			ID:         s.newID(),
			TripID:     t.ID,
			Date:       date,
			OrderIndex: len(t.Days),
			Activities: []domain.Activity{},
		})
		t.EndDate = date
		return nil
	})
}

// RemoveDay deletes a day and all of its activities, then renumbers the
// remaining days. The last remaining day of a trip cannot be removed.
// Dates of the remaining days are left as they were.
func (s *TripService) RemoveDay(ctx context.Context, tripID, dayID string) (domain.Trip, error) {
	return s.mutate(ctx, "RemoveDay", tripID, func(t *domain.Trip) error {
		i := dayIndex(t, dayID)
		if i < 0 {
			return fmt.Errorf("day %s: %w", dayID, domain.ErrNotFound)
		}
		if len(t.Days) == 1 {
			return fmt.Errorf("%w: a trip must keep at least one day", domain.ErrValidation)
		}
		t.Days = slices.Delete(t.Days, i, i+1)
		renumberDays(t)
		return nil
	})
}

// ActivityInput is the input to AddActivity.
type ActivityInput struct {
	Title        string
	Category     domain.Category
	TimeStart    string
	TimeEnd      string
	LocationText string
	MapLink      string
	CostEstimate *float64
	Notes        string
}

// AddActivity appends a new activity to the end of a day.
// Returns domain.ErrNotFound if the trip or day does not exist and
// domain.ErrValidation if in violates business rules.
func (s *TripService) AddActivity(ctx context.Context, tripID, dayID string, in ActivityInput) (domain.Activity, error) {
	var created domain.Activity
	_, err := s.mutate(ctx, "AddActivity", tripID, func(t *domain.Trip) error {
		i := dayIndex(t, dayID)
		if i < 0 {
			return fmt.Errorf("day %s: %w", dayID, domain.ErrNotFound)
		}
		a := domain.Activity{
			ID:           s.newID(),
			DayID:        dayID,
			Title:        in.Title,
			Category:     in.Category,
			TimeStart:    in.TimeStart,
			TimeEnd:      in.TimeEnd,
			LocationText: in.LocationText,
			MapLink:      in.MapLink,
			CostEstimate: in.CostEstimate,
			Notes:        in.Notes,
			OrderIndex:   len(t.Days[i].Activities),
		}
		if err := validateActivity(a); err != nil {
			return err
		}
		a = a.Clone()
		t.Days[i].Activities = append(t.Days[i].Activities, a)
		created = a.Clone()
		return nil
	})
	if err != nil {
		return domain.Activity{}, err
	}
	return created, nil
}

// ActivityPatch lists the activity fields UpdateActivity may change.
// Nil fields are left untouched. ClearCost removes the cost estimate and
// takes precedence over CostEstimate.
type ActivityPatch struct {
	Title        *string
	Category     *domain.Category
	TimeStart    *string
	TimeEnd      *string
	LocationText *string
	MapLink      *string
	CostEstimate *float64
	ClearCost    bool
	Notes        *string
}

// UpdateActivity applies the non-nil fields of patch to the activity.
// The activity's id, day and position never change.
func (s *TripService) UpdateActivity(ctx context.Context, tripID, activityID string, patch ActivityPatch) (domain.Activity, error) {
	var updated domain.Activity
	_, err := s.mutate(ctx, "UpdateActivity", tripID, func(t *domain.Trip) error {
		d, i := activityIndex(t, activityID)
		if d < 0 {
			return fmt.Errorf("activity %s: %w", activityID, domain.ErrNotFound)
		}
		a := &t.Days[d].Activities[i]
		applyActivityPatch(a, patch)
		if err := validateActivity(*a); err != nil {
			return err
		}
		updated = a.Clone()
		return nil
	})
	if err != nil {
		return domain.Activity{}, err
	}
	return updated, nil
}

func applyActivityPatch(a *domain.Activity, p ActivityPatch) {
	if p.Title != nil {
		a.Title = *p.Title
	}
	if p.Category != nil {
		a.Category = *p.Category
	}
	if p.TimeStart != nil {
		a.TimeStart = *p.TimeStart
	}
	if p.TimeEnd != nil {
		a.TimeEnd = *p.TimeEnd
	}
	if p.LocationText != nil {
		a.LocationText = *p.LocationText
	}
	if p.MapLink != nil {
		a.MapLink = *p.MapLink
	}
	switch {
	case p.ClearCost:
		a.CostEstimate = nil
	case p.CostEstimate != nil:
		c := *p.CostEstimate
		a.CostEstimate = &c
	}
	if p.Notes != nil {
		a.Notes = *p.Notes
	}
}

// DeleteActivity removes an activity and renumbers the rest of its day.
func (s *TripService) DeleteActivity(ctx context.Context, tripID, activityID string) error {
	_, err := s.mutate(ctx, "DeleteActivity", tripID, func(t *domain.Trip) error {
		d, i := activityIndex(t, activityID)
		if d < 0 {
			return fmt.Errorf("activity %s: %w", activityID, domain.ErrNotFound)
		}
		t.Days[d].Activities = slices.Delete(t.Days[d].Activities, i, i+1)
		renumberActivities(&t.Days[d])
		return nil
	})
	return err
}

// ReorderActivities moves activeID to the position currently held by overID
// within one day, shifting the activities in between by one place.
func (s *TripService) ReorderActivities(ctx context.Context, tripID, dayID, activeID, overID string) (domain.Day, error) {
	var out domain.Day
	_, err := s.mutate(ctx, "ReorderActivities", tripID, func(t *domain.Trip) error {
		di := dayIndex(t, dayID)
		if di < 0 {
			return fmt.Errorf("day %s: %w", dayID, domain.ErrNotFound)
		}
		day := &t.Days[di]
		from := slices.IndexFunc(day.Activities, func(a domain.Activity) bool { return a.ID == activeID })
		if from < 0 {
			return fmt.Errorf("activity %s in day %s: %w", activeID, dayID, domain.ErrNotFound)
		}
		to := slices.IndexFunc(day.Activities, func(a domain.Activity) bool { return a.ID == overID })
		if to < 0 {
			return fmt.Errorf("activity %s in day %s: %w", overID, dayID, domain.ErrNotFound)
		}
		moved := day.Activities[from]
		day.Activities = slices.Delete(day.Activities, from, from+1)
		day.Activities = slices.Insert(day.Activities, to, moved)
		renumberActivities(day)
		out = day.Clone()
		return nil
	})
	if err != nil {
		return domain.Day{}, err
	}
	return out, nil
}

// MoveActivityToDay detaches an activity from its day and appends it to the
// end of dayID. Moving an activity to its own day sends it to the end.
func (s *TripService) MoveActivityToDay(ctx context.Context, tripID, activityID, dayID string) (domain.Activity, error) {
	var moved domain.Activity
	_, err := s.mutate(ctx, "MoveActivityToDay", tripID, func(t *domain.Trip) error {
		target := dayIndex(t, dayID)
		if target < 0 {
			return fmt.Errorf("day %s: %w", dayID, domain.ErrNotFound)
		}
		d, i := activityIndex(t, activityID)
		if d < 0 {
			return fmt.Errorf("activity %s: %w", activityID, domain.ErrNotFound)
		}
		a := t.Days[d].Activities[i]
		t.Days[d].Activities = slices.Delete(t.Days[d].Activities, i, i+1)
		renumberActivities(&t.Days[d])

		a.DayID = dayID
		a.OrderIndex = len(t.Days[target].Activities)
		t.Days[target].Activities = append(t.Days[target].Activities, a)
		moved = a.Clone()
		return nil
	})
	if err != nil {
		return domain.Activity{}, err
	}
	return moved, nil
}

func dayIndex(t *domain.Trip, dayID string) int {
	return slices.IndexFunc(t.Days, func(d domain.Day) bool { return d.ID == dayID })
}

// activityIndex locates an activity anywhere in the trip.
// It returns (-1, -1) when the activity does not exist.
func activityIndex(t *domain.Trip, activityID string) (day, pos int) {
	for d := range t.Days {
		for i := range t.Days[d].Activities {
			if t.Days[d].Activities[i].ID == activityID {
				return d, i
			}
		}
	}
	return -1, -1
}

// renumberDays rewrites OrderIndex on every day and activity so each
// matches its slice position, and points activities at their owning day.
func renumberDays(t *domain.Trip) {
	for i := range t.Days {
		t.Days[i].OrderIndex = i
		t.Days[i].TripID = t.ID
		if t.Days[i].Activities == nil {
			t.Days[i].Activities = []domain.Activity{}
		}
		renumberActivities(&t.Days[i])
	}
}

func renumberActivities(d *domain.Day) {
	for i := range d.Activities {
		d.Activities[i].OrderIndex = i
		d.Activities[i].DayID = d.ID
	}
}

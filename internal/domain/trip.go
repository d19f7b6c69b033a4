// Package domain contains the core data types for the trip planner.
// This package has zero external dependencies and is imported by every other
// internal package (repo, service, share, handler).
package domain

import "time"

// SplitMode selects how the trip total is divided between travellers.
type SplitMode string

const (
	SplitEqual        SplitMode = "equal"
	SplitSimpleCustom SplitMode = "simple_custom"
)

// Valid reports whether m is one of the known split modes.
func (m SplitMode) Valid() bool {
	return m == SplitEqual || m == SplitSimpleCustom
}

// Exclusion marks people who do not pay for a given activity.
// Exclusions are stored with the trip but the cost aggregator does not
// consume them yet.
type Exclusion struct {
	ActivityID            string `json:"activityId"`
	ExcludedCount         *int   `json:"excludedCount,omitempty"`
	ExcludedPeopleIndexes []int  `json:"excludedPeopleIndexes,omitempty"`
}

// CostSettings groups the cost-splitting preferences of a trip.
type CostSettings struct {
	SplitMode              SplitMode   `json:"splitMode"`
	SimpleCustomExclusions []Exclusion `json:"simpleCustomExclusions,omitempty"`
}

// Trip is the top-level planning unit. A trip exclusively owns its days,
// and each day exclusively owns its activities.
type Trip struct {
	ID             string       `json:"id"`
	Title          string       `json:"title"`
	StartDate      string       `json:"startDate"` // "2006-01-02"
	EndDate        string       `json:"endDate"`   // inclusive
	Timezone       string       `json:"timezone"`  // advisory only
	Currency       string       `json:"currency"`
	NumberOfPeople int          `json:"numberOfPeople"`
	Notes          string       `json:"notes,omitempty"`
	Days           []Day        `json:"days"`
	CostSettings   CostSettings `json:"costSettings"`
	CreatedAt      time.Time    `json:"createdAt"`
	UpdatedAt      time.Time    `json:"updatedAt"`
}

// Day is one calendar date within a trip.
// OrderIndex always equals the day's position in Trip.Days.
type Day struct {
	ID         string     `json:"id"`
	TripID     string     `json:"tripId"`
	Date       string     `json:"date"`
	OrderIndex int        `json:"orderIndex"`
	Activities []Activity `json:"activities"`
}

// Activity is a single planned item within a day.
// A nil CostEstimate and a zero CostEstimate both contribute nothing to totals.
type Activity struct {
	ID           string   `json:"id"`
	DayID        string   `json:"dayId"`
	Title        string   `json:"title"`
	Category     Category `json:"category"`
	TimeStart    string   `json:"timeStart,omitempty"`
	TimeEnd      string   `json:"timeEnd,omitempty"`
	LocationText string   `json:"locationText,omitempty"`
	MapLink      string   `json:"mapLink,omitempty"`
	CostEstimate *float64 `json:"costEstimate,omitempty"`
	Notes        string   `json:"notes,omitempty"`
	OrderIndex   int      `json:"orderIndex"`
}

// Cost returns the activity's cost contribution, treating a missing
// estimate as zero.
func (a Activity) Cost() float64 {
	if a.CostEstimate == nil {
		return 0
	}
	return *a.CostEstimate
}

// ActivityCount returns the number of activities across all days.
func (t Trip) ActivityCount() int {
	n := 0
	for _, d := range t.Days {
		n += len(d.Activities)
	}
	return n
}

// Clone returns a deep copy of t. Mutating the copy never affects t.
func (t Trip) Clone() Trip {
	out := t
	out.CostSettings = t.CostSettings.Clone()
	if t.Days != nil {
		out.Days = make([]Day, len(t.Days))
		for i, d := range t.Days {
			out.Days[i] = d.Clone()
		}
	}
	return out
}

// Clone returns a deep copy of d.
func (d Day) Clone() Day {
	out := d
	if d.Activities != nil {
		out.Activities = make([]Activity, len(d.Activities))
		for i, a := range d.Activities {
			out.Activities[i] = a.Clone()
		}
	}
	return out
}

// Clone returns a deep copy of a.
func (a Activity) Clone() Activity {
	out := a
	if a.CostEstimate != nil {
		c := *a.CostEstimate
		out.CostEstimate = &c
	}
	return out
}

// Clone returns a deep copy of s.
func (s CostSettings) Clone() CostSettings {
	out := s
	if s.SimpleCustomExclusions != nil {
		out.SimpleCustomExclusions = make([]Exclusion, len(s.SimpleCustomExclusions))
		for i, e := range s.SimpleCustomExclusions {
			ec := e
			if e.ExcludedCount != nil {
				n := *e.ExcludedCount
				ec.ExcludedCount = &n
			}
			if e.ExcludedPeopleIndexes != nil {
				ec.ExcludedPeopleIndexes = append([]int(nil), e.ExcludedPeopleIndexes...)
			}
			out.SimpleCustomExclusions[i] = ec
		}
	}
	return out
}

package main

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/trip-planner/internal/domain"
	"github.com/pkordes/trip-planner/internal/format"
	"github.com/pkordes/trip-planner/internal/repo"
	"github.com/pkordes/trip-planner/internal/sample"
	"github.com/pkordes/trip-planner/internal/service"
	"github.com/pkordes/trip-planner/internal/share"
)

// newTestApp returns an app backed by one in-memory store shared across
// every command run through it.
func newTestApp(t *testing.T) (*app, *bytes.Buffer) {
	t.Helper()
	store := repo.NewMemoryStateStore()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	var out bytes.Buffer
	a := &app{
		out:    &out,
		format: format.New("vi-VN"),
		codec: share.Codec{
			BaseURL: "https://trips.example.com",
			Now:     func() time.Time { return time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC) },
			Logger:  logger,
		},
		open: func(ctx context.Context, _, _ string) (*service.TripService, func(), error) {
			svc, err := service.Open(ctx, store, service.Options{Logger: logger})
			if err != nil {
				return nil, nil, err
			}
			return svc, func() {}, nil
		},
	}
	return a, &out
}

func run(t *testing.T, a *app, args ...string) error {
	t.Helper()
	cmd := rootCmd(a)
	cmd.SetArgs(args)
	cmd.SetErr(&bytes.Buffer{})
	return cmd.ExecuteContext(context.Background())
}

func TestList_StarsCurrentSampleTrip(t *testing.T) {
	a, out := newTestApp(t)

	require.NoError(t, run(t, a, "list"))

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], "TITLE")
	assert.True(t, strings.HasPrefix(lines[1], "*"))
	assert.Contains(t, lines[1], sample.TripID)
}

func TestCreate_ThenShowAsJSON(t *testing.T) {
	a, out := newTestApp(t)

	require.NoError(t, run(t, a, "create", "--title", "Da Lat weekend", "--start", "2026-03-10", "--end", "2026-03-12", "--currency", "usd"))
	assert.Contains(t, out.String(), "(3 days)")

	id := strings.Fields(out.String())[1]
	out.Reset()

	require.NoError(t, run(t, a, "show", id, "--json"))
	var trip domain.Trip
	require.NoError(t, json.Unmarshal(out.Bytes(), &trip))
	assert.Equal(t, "Da Lat weekend", trip.Title)
	assert.Equal(t, "USD", trip.Currency)
	assert.Equal(t, domain.DefaultNumberOfPeople, trip.NumberOfPeople)
	assert.Len(t, trip.Days, 3)
}

func TestCreate_RequiresTitle(t *testing.T) {
	a, _ := newTestApp(t)

	err := run(t, a, "create", "--start", "2026-03-10", "--end", "2026-03-12")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "title")
}

func TestCreate_RejectsReversedDates(t *testing.T) {
	a, _ := newTestApp(t)

	err := run(t, a, "create", "--title", "Backwards", "--start", "2026-03-12", "--end", "2026-03-10")

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestShow_UnknownTrip(t *testing.T) {
	a, _ := newTestApp(t)

	err := run(t, a, "show", "missing")

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCosts_FormatsInTripCurrency(t *testing.T) {
	a, out := newTestApp(t)

	require.NoError(t, run(t, a, "costs", sample.TripID))

	assert.Contains(t, out.String(), "Total")
	assert.Contains(t, out.String(), "₫")
	assert.Contains(t, out.String(), "Per person (")
}

func TestCosts_JSONMatchesBreakdown(t *testing.T) {
	a, out := newTestApp(t)

	require.NoError(t, run(t, a, "costs", sample.TripID, "--json"))

	var got domain.CostBreakdown
	require.NoError(t, json.Unmarshal(out.Bytes(), &got))
	assert.Equal(t, service.CostBreakdown(sample.HaLongTrip(time.Now())).Total, got.Total)
}

func TestShareThenOpen_RoundTrips(t *testing.T) {
	a, out := newTestApp(t)

	require.NoError(t, run(t, a, "share", sample.TripID))
	url := strings.TrimSpace(out.String())
	require.True(t, strings.HasPrefix(url, "https://trips.example.com/share/"))
	token := strings.TrimPrefix(url, "https://trips.example.com/share/")
	out.Reset()

	require.NoError(t, run(t, a, "open", token, "--json"))
	var trip domain.Trip
	require.NoError(t, json.Unmarshal(out.Bytes(), &trip))
	assert.True(t, strings.HasPrefix(trip.ID, share.SharedIDPrefix))
	assert.Equal(t, sample.HaLongTrip(time.Now()).Title, trip.Title)
}

func TestOpen_BadToken(t *testing.T) {
	a, _ := newTestApp(t)
	a.open = func(context.Context, string, string) (*service.TripService, func(), error) {
		t.Fatal("open must not touch storage")
		return nil, nil, nil
	}

	err := run(t, a, "open", "not-a-token!")

	assert.ErrorIs(t, err, errBadToken)
}

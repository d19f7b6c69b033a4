package service_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/trip-planner/internal/domain"
	"github.com/pkordes/trip-planner/internal/service"
)

// mockTripReader is a hand-written test double for service.TripReader.
type mockTripReader struct {
	getTrip func(tripID string) (domain.Trip, error)
}

func (m *mockTripReader) GetTrip(tripID string) (domain.Trip, error) {
	return m.getTrip(tripID)
}

var _ service.TripReader = (*mockTripReader)(nil)

func readerOf(trip domain.Trip) *mockTripReader {
	return &mockTripReader{getTrip: func(string) (domain.Trip, error) { return trip, nil }}
}

func TestExportService_Export_RowsInItineraryOrder(t *testing.T) {
	trip := domain.Trip{
		ID: "t1",
		Days: []domain.Day{
			{ID: "d1", Date: "2026-03-10", Activities: []domain.Activity{
				{ID: "a1", Title: "Fly to Da Lat", Category: domain.CategoryTransport, TimeStart: "07:00", CostEstimate: costPtr(1_200_000)},
				{ID: "a2", Title: "Check in", Category: domain.CategoryStay, LocationText: "Old town"},
			}},
			{ID: "d2", Date: "2026-03-11"},
			{ID: "d3", Date: "2026-03-12", Activities: []domain.Activity{
				{ID: "a3", Title: "Market", Category: domain.CategoryFood, Notes: "bring cash"},
			}},
		},
	}
	svc := service.NewExportService(readerOf(trip))

	rows, err := svc.Export("t1")

	require.NoError(t, err)
	require.Len(t, rows, 4)
	assert.Equal(t, domain.ExportRow{
		DayNumber: 1, Date: "2026-03-10", Title: "Fly to Da Lat", Category: domain.CategoryTransport,
		TimeStart: "07:00", CostEstimate: costPtr(1_200_000),
	}, rows[0])
	assert.Equal(t, "Check in", rows[1].Title)
	assert.Equal(t, domain.ExportRow{DayNumber: 2, Date: "2026-03-11"}, rows[2])
	assert.Equal(t, 3, rows[3].DayNumber)
	assert.Equal(t, "bring cash", rows[3].Notes)
}

func TestExportService_Export_CopiesCosts(t *testing.T) {
	trip := domain.Trip{Days: []domain.Day{{ID: "d1", Date: "2026-03-10", Activities: []domain.Activity{
		{ID: "a1", Title: "Boat", Category: domain.CategoryTickets, CostEstimate: costPtr(10)},
	}}}}
	svc := service.NewExportService(readerOf(trip))

	rows, err := svc.Export("t1")
	require.NoError(t, err)
	*rows[0].CostEstimate = 99

	assert.Equal(t, 10.0, *trip.Days[0].Activities[0].CostEstimate)
}

func TestExportService_Export_NotFound(t *testing.T) {
	svc := service.NewExportService(&mockTripReader{
		getTrip: func(string) (domain.Trip, error) { return domain.Trip{}, domain.ErrNotFound },
	})

	_, err := svc.Export("missing")

	assert.True(t, errors.Is(err, domain.ErrNotFound))
}

func TestExportService_Export_AgainstTripService(t *testing.T) {
	svc, _ := emptyService(t)
	trip := createTrip(t, svc, "2026-03-10", "2026-03-11")
	addActivity(t, svc, trip.ID, trip.Days[1].ID, "Waterfall")

	rows, err := service.NewExportService(svc).Export(trip.ID)

	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Empty(t, rows[0].Title)
	assert.Equal(t, "Waterfall", rows[1].Title)
	assert.Equal(t, 2, rows[1].DayNumber)
}

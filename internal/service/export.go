package service

import (
	"fmt"

	"github.com/pkordes/trip-planner/internal/domain"
)

// TripReader is the read side of TripService that ExportService depends on.
type TripReader interface {
	GetTrip(tripID string) (domain.Trip, error)
}

// ExportService flattens a trip into itinerary rows for CSV or JSON download.
type ExportService struct {
	trips TripReader
}

// NewExportService constructs an ExportService that reads trips from trips.
func NewExportService(trips TripReader) *ExportService {
	return &ExportService{trips: trips}
}

// Export returns one ExportRow per activity in day order, then activity order.
// Days with no activities contribute one row with empty activity fields.
// Returns domain.ErrNotFound if the trip does not exist.
func (s *ExportService) Export(tripID string) ([]domain.ExportRow, error) {
	trip, err := s.trips.GetTrip(tripID)
	if err != nil {
		return nil, fmt.Errorf("service.ExportService.Export: %w", err)
	}

	rows := make([]domain.ExportRow, 0, trip.ActivityCount()+len(trip.Days))
	for i, d := range trip.Days {
		if len(d.Activities) == 0 {
			rows = append(rows, domain.ExportRow{DayNumber: i + 1, Date: d.Date})
			continue
		}
		for _, a := range d.Activities {
			a = a.Clone()
			rows = append(rows, domain.ExportRow{
				DayNumber:    i + 1,
				Date:         d.Date,
				Title:        a.Title,
				Category:     a.Category,
				TimeStart:    a.TimeStart,
				TimeEnd:      a.TimeEnd,
				LocationText: a.LocationText,
				MapLink:      a.MapLink,
				CostEstimate: a.CostEstimate,
				Notes:        a.Notes,
			})
		}
	}
	return rows, nil
}

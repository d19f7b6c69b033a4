package handler_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/trip-planner/internal/domain"
	"github.com/pkordes/trip-planner/internal/handler"
	"github.com/pkordes/trip-planner/internal/service"
)

func TestGetCosts_200(t *testing.T) {
	fixture := tripFixture()
	svc := &mockTripServicer{
		getTrip:   func(string) (domain.Trip, error) { return fixture, nil },
		tripCosts: func(string) (domain.CostBreakdown, error) { return service.CostBreakdown(fixture), nil },
	}

	rec := serve(newHTTPHandler(svc), http.MethodGet, "/trips/trip-1/costs", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	var resp handler.CostsResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))

	assert.Equal(t, "VND", resp.Currency)
	assert.Equal(t, 4, resp.NumberOfPeople)
	assert.Equal(t, 800000.0, resp.Total)
	assert.Equal(t, 200000.0, resp.PerPerson)
	assert.Contains(t, resp.TotalFormatted, "800.000")
	assert.Contains(t, resp.PerPersonFormatted, "200.000")

	require.Len(t, resp.ByDay, 3)
	assert.Equal(t, "10/03/2026", resp.ByDay[0].DateFormatted)
	assert.Equal(t, 0.0, resp.ByDay[2].Total)

	require.Len(t, resp.ByCategory, 2)
	assert.Equal(t, domain.CategoryTransport, resp.ByCategory[0].Category)
	assert.Equal(t, domain.CategoryStay, resp.ByCategory[1].Category)
}

func TestGetCosts_404(t *testing.T) {
	svc := &mockTripServicer{
		getTrip: func(string) (domain.Trip, error) { return domain.Trip{}, domain.ErrNotFound },
	}

	rec := serve(newHTTPHandler(svc), http.MethodGet, "/trips/missing/costs", nil)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

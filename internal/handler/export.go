package handler

import (
	"bytes"
	"encoding/csv"
	"mime"
	"net/http"
	"strconv"

	"github.com/oapi-codegen/runtime"

	"github.com/pkordes/trip-planner/internal/domain"
)

// csvHeaders defines the column names written as the first row of any CSV export.
var csvHeaders = []string{
	"day", "date", "title", "category", "time_start", "time_end",
	"location", "map_link", "cost_estimate", "notes",
}

// ExportRow is one JSON itinerary row. Empty activity fields are omitted.
type ExportRow struct {
	DayNumber    int             `json:"dayNumber"`
	Date         string          `json:"date"`
	Title        string          `json:"title,omitempty"`
	Category     domain.Category `json:"category,omitempty"`
	TimeStart    string          `json:"timeStart,omitempty"`
	TimeEnd      string          `json:"timeEnd,omitempty"`
	LocationText string          `json:"locationText,omitempty"`
	MapLink      string          `json:"mapLink,omitempty"`
	CostEstimate *float64        `json:"costEstimate,omitempty"`
	Notes        string          `json:"notes,omitempty"`
}

// GetExport handles GET /trips/{tripId}/export.
// It returns one row per activity in itinerary order.
// Use ?format=csv to receive CSV; default is JSON.
func (s *Server) GetExport(w http.ResponseWriter, r *http.Request) {
	tripID, ok := pathParam(w, r, "tripId")
	if !ok {
		return
	}
	var formatParam *string
	if err := runtime.BindQueryParameter("form", true, false, "format", r.URL.Query(), &formatParam); err != nil {
		writeJSON(w, http.StatusUnprocessableEntity, requestBody("invalid format parameter"))
		return
	}
	wantCSV := false
	if formatParam != nil {
		switch *formatParam {
		case "csv":
			wantCSV = true
		case "json":
		default:
			writeJSON(w, http.StatusUnprocessableEntity, requestBody("format must be csv or json"))
			return
		}
	}

	rows, err := s.export.Export(tripID)
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}

	if wantCSV {
		writeCSV(w, tripID, rows)
		return
	}
	out := make([]ExportRow, 0, len(rows))
	for _, row := range rows {
		out = append(out, ExportRow(row))
	}
	writeJSON(w, http.StatusOK, out)
}

// writeCSV encodes rows as a CSV attachment.
func writeCSV(w http.ResponseWriter, tripID string, rows []domain.ExportRow) {
	var buf bytes.Buffer
	cw := csv.NewWriter(&buf)

	// bytes.Buffer.Write never returns an error.
	_ = cw.Write(csvHeaders)
	for _, row := range rows {
		_ = cw.Write(rowToCSVRecord(row))
	}
	cw.Flush()

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", mime.FormatMediaType("attachment", map[string]string{"filename": "trip-" + tripID + ".csv"}))
	w.Header().Set("Content-Length", strconv.Itoa(buf.Len()))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(buf.Bytes())
}

// rowToCSVRecord encodes a domain.ExportRow as a flat string slice.
// A missing cost estimate is encoded as an empty string.
func rowToCSVRecord(r domain.ExportRow) []string {
	cost := ""
	if r.CostEstimate != nil {
		cost = strconv.FormatFloat(*r.CostEstimate, 'f', -1, 64)
	}
	return []string{
		strconv.Itoa(r.DayNumber),
		r.Date,
		r.Title,
		string(r.Category),
		r.TimeStart,
		r.TimeEnd,
		r.LocationText,
		r.MapLink,
		cost,
		r.Notes,
	}
}

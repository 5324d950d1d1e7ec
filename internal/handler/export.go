package handler

import (
	"bytes"
	"encoding/csv"
	"net/http"
	"strings"

	"github.com/pkordes/family-trips/internal/domain"
)

// csvHeaders defines the column names written as the first row of any CSV export.
var csvHeaders = []string{
	"trip_id", "trip_name", "destination", "trip_start_date", "trip_end_date",
	"item_date", "item_title", "item_type", "item_location", "start_time", "end_time",
	"participants",
}

// GetExport handles GET /export.
// It returns a flat table of every trip and itinerary item.
// Use ?format=csv to receive CSV; default is JSON.
func (s *Server) GetExport(w http.ResponseWriter, r *http.Request) {
	var format *string
	if !queryString(w, r, "format", &format) {
		return
	}
	wantCSV := false
	if format != nil {
		switch *format {
		case "json":
		case "csv":
			wantCSV = true
		default:
			writeError(w, http.StatusBadRequest, "format must be 'json' or 'csv'")
			return
		}
	}

	rows, err := s.svc.Export.Export(r.Context())
	if err != nil {
		s.fail(w, r, err, "Failed to export trips")
		return
	}

	if wantCSV {
		writeCSV(w, rows)
		return
	}
	writeData(w, http.StatusOK, rows)
}

// writeCSV encodes rows as an attachment. Participants within a row are
// pipe-separated ("|") to keep each item on a single CSV line.
func writeCSV(w http.ResponseWriter, rows []domain.ExportRow) {
	var buf bytes.Buffer
	cw := csv.NewWriter(&buf)

	// bytes.Buffer writes never fail; csv.Writer surfaces nothing else here.
	cw.Write(csvHeaders) //nolint:errcheck
	for _, r := range rows {
		cw.Write(exportRecord(r)) //nolint:errcheck
	}
	cw.Flush()

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="trips.csv"`)
	w.WriteHeader(http.StatusOK)
	w.Write(buf.Bytes()) //nolint:errcheck
}

// exportRecord encodes a domain.ExportRow as a flat string slice.
func exportRecord(r domain.ExportRow) []string {
	return []string{
		r.TripID,
		r.TripName,
		r.Destination,
		r.TripStartDate,
		r.TripEndDate,
		r.ItemDate,
		r.ItemTitle,
		r.ItemType,
		r.ItemLocation,
		r.StartTime,
		r.EndTime,
		strings.Join(r.Participants, "|"),
	}
}

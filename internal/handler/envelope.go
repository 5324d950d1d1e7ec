package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/pkordes/family-trips/internal/domain"
)

// envelope is the body of every JSON response. Exactly one of Data and
// Error is non-null.
type envelope struct {
	Data  any     `json:"data"`
	Error *string `json:"error"`
}

const (
	msgInvalidBody  = "Invalid request body"
	msgBodyTooLarge = "Request body too large"
)

// idBody is the data payload of a successful DELETE.
type idBody struct {
	ID string `json:"id"`
}

func writeJSON(w http.ResponseWriter, status int, body envelope) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body) //nolint:errcheck
}

// writeData writes a success envelope.
func writeData(w http.ResponseWriter, status int, data any) {
	writeJSON(w, status, envelope{Data: data})
}

// writeError writes a failure envelope with the given client-facing message.
func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, envelope{Error: &message})
}

// fail maps a service error to a response. Validation errors become 400 and
// not-found errors 404, both carrying their own message. Anything else is
// logged with the request id and answered with 500 and fallback, so store
// details never reach the client.
func (s *Server) fail(w http.ResponseWriter, r *http.Request, err error, fallback string) {
	if msg, ok := domain.PublicMessage(err); ok {
		if errors.Is(err, domain.ErrNotFound) {
			writeError(w, http.StatusNotFound, msg)
			return
		}
		writeError(w, http.StatusBadRequest, msg)
		return
	}
	s.log.ErrorContext(r.Context(), fallback,
		"error", err,
		"method", r.Method,
		"path", r.URL.Path,
		"request_id", chimiddleware.GetReqID(r.Context()),
	)
	writeError(w, http.StatusInternalServerError, fallback)
}

// decodeJSON reads the request body into dst. Unknown fields, trailing data,
// and an empty body are rejected. On failure it writes the response itself
// and returns false.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) bool {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()

	err := dec.Decode(dst)
	if err == nil && dec.More() {
		err = errors.New("trailing data after JSON value")
	}
	if err == nil {
		return true
	}

	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		writeError(w, http.StatusRequestEntityTooLarge, msgBodyTooLarge)
		return false
	}
	writeError(w, http.StatusBadRequest, msgInvalidBody)
	return false
}

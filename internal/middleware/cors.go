package middleware

import (
	"net/http"

	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/cors"
)

// preflightMaxAge is how long, in seconds, browsers may cache a preflight answer.
const preflightMaxAge = 300

// NewCORSHandler returns a middleware that answers cross-origin requests from
// allowedOrigins. Origins are full scheme://host[:port] values.
//
// Content-Disposition is exposed so browser clients can read the file name of
// a CSV export; the request id header lets them correlate failures with logs.
func NewCORSHandler(allowedOrigins []string) func(http.Handler) http.Handler {
	c := cors.New(cors.Options{
		AllowedOrigins: allowedOrigins,
		AllowedMethods: []string{
			http.MethodGet, http.MethodPost, http.MethodPatch, http.MethodDelete, http.MethodOptions,
		},
		AllowedHeaders: []string{"Content-Type", chimiddleware.RequestIDHeader},
		ExposedHeaders: []string{"Content-Disposition", chimiddleware.RequestIDHeader},
		MaxAge:         preflightMaxAge,
	})
	return c.Handler
}

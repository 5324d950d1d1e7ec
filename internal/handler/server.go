// Package handler implements the HTTP handlers for the family trips API.
// All handlers are methods on Server. Methods are split into domain-specific
// files (family.go, card.go, trip.go, etc.) but share the same Server struct
// so they can access its dependencies.
package handler

import (
	"context"
	"io/fs"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/pkordes/family-trips/internal/domain"
	"github.com/pkordes/family-trips/internal/middleware"
	"github.com/pkordes/family-trips/internal/service"
	"github.com/pkordes/family-trips/spec"
)

// The servicer interfaces below are defined here, in the consumer package,
// so handler tests can inject mocks without a database or service layer.

// FamilyServicer defines the family member operations the handlers depend on.
type FamilyServicer interface {
	List(ctx context.Context) ([]domain.FamilyMember, error)
	Create(ctx context.Context, in domain.FamilyMemberInput) (domain.FamilyMember, error)
	Update(ctx context.Context, id uuid.UUID, in domain.FamilyMemberInput) (domain.FamilyMember, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// CardServicer defines the card and benefit operations the handlers depend on.
type CardServicer interface {
	List(ctx context.Context) ([]domain.CreditCard, error)
	GetByID(ctx context.Context, id uuid.UUID) (domain.CreditCard, error)
	Create(ctx context.Context, in domain.CreditCardInput) (domain.CreditCard, error)
	Update(ctx context.Context, id uuid.UUID, in domain.CreditCardInput) (domain.CreditCard, error)
	Delete(ctx context.Context, id uuid.UUID) error

	ListBenefits(ctx context.Context, cardID uuid.UUID) ([]domain.CardBenefit, error)
	CreateBenefit(ctx context.Context, cardID uuid.UUID, in domain.CardBenefitInput) (domain.CardBenefit, error)
	UpdateBenefit(ctx context.Context, cardID, benefitID uuid.UUID, in domain.CardBenefitInput) (domain.CardBenefit, error)
	DeleteBenefit(ctx context.Context, cardID, benefitID uuid.UUID) error
}

// TripServicer defines the trip operations the handlers depend on.
type TripServicer interface {
	Create(ctx context.Context, in domain.TripInput) (domain.Trip, error)
	GetByID(ctx context.Context, id uuid.UUID) (domain.Trip, error)
	List(ctx context.Context, p domain.PageRequest) ([]domain.Trip, error)
	Update(ctx context.Context, id uuid.UUID, in domain.TripInput) (domain.Trip, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// ParticipantServicer defines the trip participant operations the handlers depend on.
type ParticipantServicer interface {
	List(ctx context.Context, tripID uuid.UUID) ([]domain.TripParticipant, error)
	Create(ctx context.Context, tripID uuid.UUID, in domain.ParticipantInput) (domain.TripParticipant, error)
	Delete(ctx context.Context, tripID, participantID uuid.UUID) error
}

// SettlementServicer defines the settlement operations the handlers depend on.
type SettlementServicer interface {
	List(ctx context.Context, tripID uuid.UUID) ([]domain.Settlement, error)
	Create(ctx context.Context, tripID uuid.UUID, in domain.SettlementInput) (domain.Settlement, error)
	Delete(ctx context.Context, tripID, settlementID uuid.UUID) error
}

// ItineraryServicer defines the itinerary operations the handlers depend on.
type ItineraryServicer interface {
	List(ctx context.Context, tripID uuid.UUID) ([]domain.ItineraryItem, error)
	Create(ctx context.Context, tripID uuid.UUID, in domain.ItineraryItemInput) (domain.ItineraryItem, error)
	Update(ctx context.Context, tripID, itemID uuid.UUID, in domain.ItineraryItemInput) (domain.ItineraryItem, error)
	Delete(ctx context.Context, tripID, itemID uuid.UUID) error
}

// ReceiptServicer defines the receipt upload operation.
type ReceiptServicer interface {
	Upload(ctx context.Context, up *service.ReceiptUpload) (string, error)
}

// ExportServicer defines the flat export operation.
type ExportServicer interface {
	Export(ctx context.Context) ([]domain.ExportRow, error)
}

// Services groups the business services the Server dispatches to.
// A nil service leaves its routes unregistered, which keeps focused
// handler tests small.
type Services struct {
	Family       FamilyServicer
	Cards        CardServicer
	Trips        TripServicer
	Participants ParticipantServicer
	Settlements  SettlementServicer
	Itinerary    ItineraryServicer
	Receipts     ReceiptServicer
	Export       ExportServicer
}

// Options carries transport settings for the Server.
type Options struct {
	// Logger receives one line per 500 response. Defaults to slog.Default().
	Logger *slog.Logger
	// MaxJSONBytes caps JSON request bodies. Zero disables the cap.
	MaxJSONBytes int64
	// MaxUploadBytes caps the multipart upload request. It is larger than the
	// receipt limit so oversized files reach the handler and get a 400.
	MaxUploadBytes int64
	// UploadDir, when set, is served read-only under /uploads/receipts/.
	UploadDir string
}

// Server holds the dependencies shared by every handler.
type Server struct {
	svc  Services
	log  *slog.Logger
	opts Options
}

// NewServer constructs the Server with all its dependencies.
func NewServer(svc Services, opts Options) *Server {
	log := opts.Logger
	if log == nil {
		log = slog.Default()
	}
	return &Server{svc: svc, log: log, opts: opts}
}

// Routes returns a chi router with every API route registered.
// Cross-cutting middleware (request id, logging, CORS, recovery) is applied
// by the caller.
func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()

	r.Get("/healthz", s.GetHealth)
	r.Get("/openapi.yaml", serveOpenAPI)

	r.Group(func(r chi.Router) {
		if s.opts.MaxJSONBytes > 0 {
			r.Use(middleware.NewMaxBodySizeHandler(s.opts.MaxJSONBytes))
		}

		if s.svc.Family != nil {
			r.Route("/family", func(r chi.Router) {
				r.Get("/", s.ListFamily)
				r.Post("/", s.CreateFamilyMember)
				r.Patch("/{id}", s.UpdateFamilyMember)
				r.Delete("/{id}", s.DeleteFamilyMember)
			})
		}

		if s.svc.Cards != nil {
			r.Route("/cards", func(r chi.Router) {
				r.Get("/", s.ListCards)
				r.Post("/", s.CreateCard)
				r.Route("/{id}", func(r chi.Router) {
					r.Get("/", s.GetCard)
					r.Patch("/", s.UpdateCard)
					r.Delete("/", s.DeleteCard)
					r.Get("/benefits", s.ListBenefits)
					r.Post("/benefits", s.CreateBenefit)
					r.Patch("/benefits/{benefitId}", s.UpdateBenefit)
					r.Delete("/benefits/{benefitId}", s.DeleteBenefit)
				})
			})
		}

		r.Route("/trips", func(r chi.Router) {
			if s.svc.Trips != nil {
				r.Get("/", s.ListTrips)
				r.Post("/", s.CreateTrip)
				r.Get("/{id}", s.GetTrip)
				r.Patch("/{id}", s.UpdateTrip)
				r.Delete("/{id}", s.DeleteTrip)
			}
			if s.svc.Participants != nil {
				r.Get("/{id}/participants", s.ListParticipants)
				r.Post("/{id}/participants", s.CreateParticipant)
				r.Delete("/{id}/participants/{participantId}", s.DeleteParticipant)
			}
			if s.svc.Settlements != nil {
				r.Get("/{id}/settlements", s.ListSettlements)
				r.Post("/{id}/settlements", s.CreateSettlement)
				r.Delete("/{id}/settlements/{settlementId}", s.DeleteSettlement)
			}
			if s.svc.Itinerary != nil {
				r.Get("/{id}/itinerary", s.ListItinerary)
				r.Post("/{id}/itinerary", s.CreateItineraryItem)
				r.Patch("/{id}/itinerary/{itemId}", s.UpdateItineraryItem)
				r.Delete("/{id}/itinerary/{itemId}", s.DeleteItineraryItem)
			}
		})

		if s.svc.Export != nil {
			r.Get("/export", s.GetExport)
		}
	})

	if s.svc.Receipts != nil {
		r.Group(func(r chi.Router) {
			if s.opts.MaxUploadBytes > 0 {
				// An oversized declared body gets the same answer as one
				// that overruns the cap while streaming.
				r.Use(middleware.NewMaxBodySizeHandlerWithError(s.opts.MaxUploadBytes, http.StatusBadRequest, msgFileTooLarge))
			}
			r.Post("/uploads/receipt", s.UploadReceipt)
		})
	}
	if s.opts.UploadDir != "" {
		files := http.StripPrefix(service.ReceiptPathPrefix, http.FileServer(filesOnly{http.Dir(s.opts.UploadDir)}))
		r.Get(service.ReceiptPathPrefix+"*", files.ServeHTTP)
	}

	return r
}

// filesOnly serves regular files and reports directories as missing, so
// stored receipt names cannot be listed.
type filesOnly struct {
	root http.FileSystem
}

func (f filesOnly) Open(name string) (http.File, error) {
	file, err := f.root.Open(name)
	if err != nil {
		return nil, err
	}
	info, err := file.Stat()
	if err != nil {
		file.Close()
		return nil, err
	}
	if info.IsDir() {
		file.Close()
		return nil, fs.ErrNotExist
	}
	return file, nil
}

func serveOpenAPI(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/yaml")
	w.Write(spec.OpenAPI) //nolint:errcheck
}

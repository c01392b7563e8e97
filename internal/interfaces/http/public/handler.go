package public

import (
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	publicapp "github.com/mzansibiz/mzansibiz-services/api/internal/public/application"
)

// Handler wires public HTTP endpoints to application services.
type Handler struct {
	logger       *log.Logger
	registration publicapp.RegistrationService
	directory    publicapp.DirectoryQueryService
	geocoder     publicapp.ReverseGeocoder
}

// Config defines dependencies required by Handler.
type Config struct {
	Logger       *log.Logger
	Registration publicapp.RegistrationService
	Directory    publicapp.DirectoryQueryService
	Geocoder     publicapp.ReverseGeocoder
}

// NewHandler constructs a public HTTP handler set.
func NewHandler(cfg Config) *Handler {
	return &Handler{
		logger:       cfg.Logger,
		registration: cfg.Registration,
		directory:    cfg.Directory,
		geocoder:     cfg.Geocoder,
	}
}

// Register mounts all public routes onto the router. Registration is the
// only write path and sits behind the auth middleware.
func (h *Handler) Register(r chi.Router, authMiddleware func(http.Handler) http.Handler) {
	r.Get("/businesses", h.businessListHandler())
	r.Get("/geocode/reverse", h.reverseGeocodeHandler())
	r.With(authMiddleware).Post("/businesses", h.businessCreateHandler())
}

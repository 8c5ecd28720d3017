package server

import (
	"net/http"

	"github.com/rs/zerolog/log"
	"github.com/woozymasta/geojson/internal/config"
)

// ServerContext holds dependencies for request handlers.
type ServerContext struct {
	Config *config.Config
}

// NewServerContext initializes the context from a validated configuration.
func NewServerContext(cfg *config.Config) *ServerContext {
	log.Info().
		Str("orientation", string(cfg.Orientation)).
		Int64("max_body_bytes", cfg.MaxBodyBytes).
		Int("indent", cfg.Indent).
		Msg("Server context initialized successfully")

	return &ServerContext{Config: cfg}
}

// Routes returns the API handler wrapped in the request logger.
func (s *ServerContext) Routes() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/validate", s.HandleValidate)
	mux.HandleFunc("/api/types", s.HandleTypes)
	mux.HandleFunc("/health", s.HandleHealth)

	return RequestLogger(mux)
}

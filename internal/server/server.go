package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/dmunro/gigpitch/internal/database"
	"github.com/dmunro/gigpitch/internal/generator"
	"github.com/dmunro/gigpitch/internal/mailer"
)

type Server struct {
	db        *database.DB
	generator *generator.Generator
	mail      *mailer.Service
	httpSrv   *http.Server
	port      int
}

// Config holds configuration for server creation
type Config struct {
	DB        *database.DB
	Generator *generator.Generator
	Mail      *mailer.Service
	Port      int
}

func New(cfg Config) *Server {
	s := &Server{
		db:        cfg.DB,
		generator: cfg.Generator,
		mail:      cfg.Mail,
		port:      cfg.Port,
	}

	mux := http.NewServeMux()
	s.registerRoutes(mux)

	s.httpSrv = &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      s.corsMiddleware(mux),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 120 * time.Second, // sequence generation makes eight LLM calls
		IdleTimeout:  60 * time.Second,
	}

	return s
}

func (s *Server) registerRoutes(mux *http.ServeMux) {
	// Health check
	mux.HandleFunc("GET /health", s.handleHealthCheck)

	// Campaigns API
	mux.HandleFunc("POST /api/campaigns", s.handleCreateCampaign)
	mux.HandleFunc("GET /api/campaigns", s.handleListCampaigns)
	mux.HandleFunc("GET /api/campaigns/{id}", s.handleGetCampaign)
	mux.HandleFunc("GET /api/campaigns/{id}/emails", s.handleListCampaignEmails)
	mux.HandleFunc("POST /api/campaigns/{id}/cancel", s.handleCancelCampaign)

	// Availability API
	mux.HandleFunc("POST /api/availability/preview", s.handleAvailabilityPreview)
}

func (s *Server) Start() error {
	fmt.Printf("Starting HTTP server on http://localhost:%d\n", s.port)
	return s.httpSrv.ListenAndServe()
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpSrv.Shutdown(ctx)
}

// Handler returns the server's HTTP handler for testing purposes
func (s *Server) Handler() http.Handler {
	return s.httpSrv.Handler
}

// corsMiddleware adds CORS headers to allow the web form to call the API
func (s *Server) corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		// Handle preflight requests
		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

package api

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/cors"

	"github.com/marklens/marklens/internal/config"
	"github.com/marklens/marklens/internal/fetch"
	"github.com/marklens/marklens/internal/pipeline"
)

// Server is the HTTP API server for marklens.
type Server struct {
	router       chi.Router
	orchestrator *pipeline.Orchestrator
	fetcher      *fetch.Client
	log          *slog.Logger
	cfg          config.Config
}

// NewServer creates and configures the HTTP server.
func NewServer(orch *pipeline.Orchestrator, fetcher *fetch.Client, log *slog.Logger, cfg config.Config) *Server {
	s := &Server{
		orchestrator: orch,
		fetcher:      fetcher,
		log:          log,
		cfg:          cfg,
	}
	s.setupRoutes()
	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) setupRoutes() {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(RequestLogger(s.log))
	// The view arrays are consumed by a browser charting UI.
	r.Use(cors.New(cors.Options{
		AllowedOrigins: s.cfg.AllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost},
		AllowedHeaders: []string{"Authorization", "Content-Type"},
	}).Handler)

	// Public endpoints.
	r.Get("/health", s.handleHealth)

	// Authenticated endpoints.
	r.Group(func(r chi.Router) {
		r.Use(AuthMiddleware(s.cfg.APIKey, s.log))

		r.Post("/api/analyze", s.handleAnalyze)
		r.Get("/api/analyze/{jobID}/status", s.handleAnalyzeStatus)
		r.Get("/api/analyze/{jobID}/result", s.handleResult)
		r.Get("/api/analyze/{jobID}/views/{view}", s.handleView)
		r.Get("/api/analyze/{jobID}/tree.txt", s.handleTreeText)
		r.Get("/api/stats/pipeline", s.handlePipelineStats)
	})

	s.router = r
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Write([]byte(`{"status":"ok"}`))
}

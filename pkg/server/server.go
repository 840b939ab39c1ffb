package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/careerdesk/core/internal/config"
	"github.com/careerdesk/core/pkg/database"
	"github.com/careerdesk/core/pkg/handlers/auth"
	"github.com/careerdesk/core/pkg/handlers/health"
	"github.com/careerdesk/core/pkg/handlers/jobs"
	"github.com/careerdesk/core/pkg/handlers/reference"
	"github.com/careerdesk/core/pkg/handlers/visitors"
	"github.com/careerdesk/core/pkg/logger"
	"github.com/careerdesk/core/pkg/middleware"
	"github.com/careerdesk/core/pkg/repository"
	"github.com/careerdesk/core/pkg/services"
)

// Server represents the API server
type Server struct {
	router     *http.ServeMux
	httpServer *http.Server
	port       string
	logger     *logger.Logger
	client     *mongo.Client
	handlers   struct {
		health    *health.Handler
		jobs      *jobs.Handler
		auth      *auth.Handler
		reference *reference.Handler
		visitors  *visitors.Handler
	}
}

// New creates a new server instance
func New(cfg *config.Config, log *logger.Logger) (*Server, error) {
	connectCtx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Database.ConnectTimeout)*time.Second)
	defer cancel()

	client, err := database.Connect(connectCtx, cfg.Database.URI, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to store: %w", err)
	}

	// Verify the store stays reachable with retry logic
	if err := testStoreConnection(client, cfg.Database.PingRetries, log); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, err
	}

	db := client.Database(cfg.Database.Name)
	breaker := database.NewBreaker("mongodb", log)

	jobRepo := repository.NewJobRepository(db, breaker)
	userRepo := repository.NewUserRepository(db, breaker)
	counterRepo := repository.NewCounterRepository(db, breaker)

	// The unique username index enforces the uniqueness invariant in the
	// store instead of through a racy pre-check.
	indexCtx, cancelIndex := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancelIndex()
	if err := userRepo.EnsureIndexes(indexCtx); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("failed to ensure user indexes: %w", err)
	}

	referenceService := services.NewReferenceService(counterRepo, log)
	visitorService := services.NewVisitorService(counterRepo, log)
	credentialService := services.NewCredentialService(userRepo, log)

	server := &Server{
		router: http.NewServeMux(),
		port:   cfg.Server.Port,
		logger: log,
		client: client,
	}

	server.handlers.health = health.NewHandler(log)
	server.handlers.jobs = jobs.NewHandler(jobRepo, log)
	server.handlers.auth = auth.NewHandler(credentialService, log)
	server.handlers.reference = reference.NewHandler(referenceService, log)
	server.handlers.visitors = visitors.NewHandler(visitorService, log)

	server.setupRoutes()

	server.httpServer = &http.Server{
		Addr:         ":" + server.port,
		Handler:      server.router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	log.Info().
		Str("action", "store_connected").
		Str("database", cfg.Database.Name).
		Msg("Store connection established")

	return server, nil
}

// setupRoutes configures all the API routes
func (s *Server) setupRoutes() {
	wrap := func(h http.HandlerFunc) http.HandlerFunc {
		return middleware.Chain(h,
			middleware.CORS,
			middleware.RequestLog(s.logger),
			middleware.Recover(s.logger),
		)
	}

	// Health check endpoint
	s.router.HandleFunc("/health", wrap(s.handlers.health.HealthCheck))

	// Simple root endpoint
	s.router.HandleFunc("/", wrap(func(w http.ResponseWriter, r *http.Request) {
		if _, err := fmt.Fprintf(w, "CareerDesk API Service - OK"); err != nil {
			http.Error(w, "Failed to write response", http.StatusInternalServerError)
		}
	}))

	// Reference number endpoint
	s.router.HandleFunc("/api/reference", wrap(s.handlers.reference.Generate))

	// Job endpoints
	s.router.HandleFunc("/api/jobs", wrap(s.handlers.jobs.Collection))
	s.router.HandleFunc("/api/jobs/", wrap(s.handlers.jobs.Item)) // handles /api/jobs/{id}

	// Auth endpoints
	s.router.HandleFunc("/api/register", wrap(s.handlers.auth.Register))
	s.router.HandleFunc("/api/login", wrap(s.handlers.auth.Login))

	// Visitor counter endpoint
	s.router.HandleFunc("/api/visitorCount", wrap(s.handlers.visitors.Count))
}

// Start starts the HTTP server and blocks until it stops
func (s *Server) Start() error {
	s.logger.Info().
		Str("action", "server_start").
		Str("port", s.port).
		Msg("Starting API server")

	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("server failed to start on port %s: %w", s.port, err)
	}

	return nil
}

// Shutdown drains in-flight requests and closes the store connection
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info().
		Str("action", "server_shutdown").
		Msg("Shutting down API server")

	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("failed to shut down http server: %w", err)
	}

	if err := s.client.Disconnect(ctx); err != nil {
		return fmt.Errorf("failed to disconnect store client: %w", err)
	}
	s.logger.Info().Msg("Store connection closed")

	return nil
}

// testStoreConnection tests the store connection with retry logic
func testStoreConnection(client *mongo.Client, maxRetries int, log *logger.Logger) error {
	if maxRetries < 1 {
		maxRetries = 1
	}

	for i := 0; i < maxRetries; i++ {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		err := client.Ping(ctx, readpref.Primary())
		cancel()

		if err == nil {
			return nil
		}

		if i == maxRetries-1 {
			return fmt.Errorf("failed to ping store after %d retries: %w", maxRetries, err)
		}

		log.Warn().
			Err(err).
			Int("attempt", i+1).
			Str("action", "store_ping_retry").
			Msg("Retrying store connection")
		time.Sleep(2 * time.Second)
	}

	return nil
}

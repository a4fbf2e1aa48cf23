package web

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"

	"github.com/college-data/internal/web/handlers"
	"github.com/college-data/internal/web/middleware"
)

// Server represents the web server
type Server struct {
	config     *Config
	db         *sqlx.DB
	httpServer *http.Server
	router     *mux.Router
}

// NewServer creates a new web server instance
func NewServer(config *Config) (*Server, error) {
	db, err := sqlx.Open("postgres", config.Database.URL)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Configure database connection pool
	db.SetMaxOpenConns(config.Database.MaxConnections)
	db.SetMaxIdleConns(config.Database.MaxConnections / 2)
	db.SetConnMaxLifetime(time.Hour)

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	server := &Server{
		config: config,
		db:     db,
	}

	server.setupRoutes()

	server.httpServer = &http.Server{
		Addr:         fmt.Sprintf("%s:%d", config.Server.Host, config.Server.Port),
		Handler:      server.router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	return server, nil
}

// setupRoutes configures all HTTP routes
func (s *Server) setupRoutes() {
	s.router = mux.NewRouter()

	// Convert config for handlers (to avoid import cycle)
	handlerConfig := &handlers.Config{}
	handlerConfig.Features.ExportEnabled = s.config.Features.ExportEnabled

	statsHandler := &handlers.StatsHandler{DB: s.db, Config: handlerConfig}
	tuitionHandler := &handlers.TuitionHandler{DB: s.db, Config: handlerConfig}
	financeHandler := &handlers.FinanceHandler{DB: s.db, Config: handlerConfig}
	exportHandler := &handlers.ExportHandler{DB: s.db, Config: handlerConfig}

	api := s.router.PathPrefix("/api").Subrouter()

	// Institution count endpoints
	api.HandleFunc("/institutions/states", statsHandler.InstitutionsByState).Methods("GET")
	api.HandleFunc("/institutions/types", statsHandler.InstitutionsByType).Methods("GET")

	// Tuition endpoints
	api.HandleFunc("/tuition/states", tuitionHandler.ByState).Methods("GET")
	api.HandleFunc("/tuition/classifications", tuitionHandler.ByClassification).Methods("GET")

	// Repayment, salary, and trend endpoints
	api.HandleFunc("/repayment/extremes", financeHandler.RepaymentExtremes).Methods("GET")
	api.HandleFunc("/trends", financeHandler.Trends).Methods("GET")
	api.HandleFunc("/debt/trend", financeHandler.DebtTrend).Methods("GET")
	api.HandleFunc("/salaries/top", financeHandler.TopSalaries).Methods("GET")
	api.HandleFunc("/correlation", financeHandler.Correlation).Methods("GET")

	// Export endpoint (if enabled)
	if s.config.Features.ExportEnabled {
		api.HandleFunc("/export", exportHandler.ExportData).Methods("POST")
	}

	s.router.HandleFunc("/health", s.handleHealth).Methods("GET")

	// Apply middleware
	s.router.Use(middleware.CORS())
	s.router.Use(middleware.RequestLogging())

	if s.config.Auth.Enabled {
		// Apply authentication middleware to API routes only
		api.Use(middleware.Authentication(s.config.Auth.APIKey))
	}
}

// handleHealth reports store connectivity
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if err := s.db.Ping(); err != nil {
		http.Error(w, "Database unavailable", http.StatusServiceUnavailable)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.Write([]byte(`{"status":"ok"}`))
}

// Start starts the web server
func (s *Server) Start() error {
	// Setup graceful shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	// Start server in background
	go func() {
		fmt.Printf("Starting server on http://%s\n", s.httpServer.Addr)
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			fmt.Printf("Server error: %v\n", err)
		}
	}()

	// Wait for shutdown signal
	<-stop
	fmt.Println("Shutting down server...")

	// Graceful shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := s.httpServer.Shutdown(ctx); err != nil {
		fmt.Printf("Server shutdown error: %v\n", err)
	}

	if err := s.db.Close(); err != nil {
		fmt.Printf("Database close error: %v\n", err)
	}

	fmt.Println("Server stopped")
	return nil
}

package server

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jonathan/recruiter-agent/internal/config"
	"github.com/jonathan/recruiter-agent/internal/db"
	"github.com/jonathan/recruiter-agent/internal/llm"
	"github.com/jonathan/recruiter-agent/internal/pipeline"
	"github.com/jonathan/recruiter-agent/internal/server/middleware"
)

// Server is the HTTP API for the recruiter assistant.
type Server struct {
	port       string
	llm        llm.Client
	pipeline   *pipeline.Pipeline
	recruiters *RecruiterService
	jwtService *JWTService
	httpServer *http.Server
}

// Config holds the dependencies needed to build a Server.
type Config struct {
	Port      string
	LLM       llm.Client
	Pipeline  *pipeline.Pipeline
	Store     *db.DB
	JWT       *config.JWTConfig
	Passwords *config.PasswordConfig
}

// New builds a Server from the given configuration.
func New(cfg Config) (*Server, error) {
	if cfg.Port == "" {
		cfg.Port = "8080"
	}
	if cfg.Pipeline == nil {
		return nil, fmt.Errorf("pipeline is required")
	}
	if cfg.JWT == nil {
		return nil, fmt.Errorf("JWT config is required")
	}
	if cfg.Passwords == nil {
		return nil, fmt.Errorf("password config is required")
	}

	jwtService := NewJWTService(cfg.JWT)
	s := &Server{
		port:       cfg.Port,
		llm:        cfg.LLM,
		pipeline:   cfg.Pipeline,
		recruiters: NewRecruiterService(cfg.Store, cfg.Passwords, jwtService),
		jwtService: jwtService,
	}

	s.httpServer = &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      s.routes(),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 5 * time.Minute,
	}
	return s, nil
}

// routes builds the request multiplexer with middleware applied.
func (s *Server) routes() http.Handler {
	mux := http.NewServeMux()

	auth := middleware.AuthMiddleware(s.jwtService.AsTokenValidator())

	mux.HandleFunc("GET /health", s.handleHealth)
	mux.HandleFunc("POST /auth/register", s.handleRegister)
	mux.HandleFunc("POST /auth/login", s.handleLogin)
	mux.Handle("POST /parse-query", auth(http.HandlerFunc(s.handleParseQuery)))
	mux.Handle("POST /enhance", auth(http.HandlerFunc(s.handleEnhance)))
	mux.Handle("POST /search", auth(http.HandlerFunc(s.handleSearch)))

	return withCORS(withLogging(mux))
}

// Start runs the server until an interrupt signal arrives, then shuts down
// gracefully.
func (s *Server) Start() error {
	errCh := make(chan error, 1)
	go func() {
		log.Printf("[SERVER] Listening on port %s", s.port)
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return fmt.Errorf("server error: %w", err)
	case sig := <-stop:
		log.Printf("[SERVER] Received %s, shutting down", sig)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("failed to shut down server: %w", err)
	}
	return nil
}

// Handler exposes the routed handler for tests.
func (s *Server) Handler() http.Handler {
	return s.routes()
}

func withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		log.Printf("[SERVER] %s %s %s", r.Method, r.URL.Path, time.Since(start))
	})
}

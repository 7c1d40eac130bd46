package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"go.uber.org/zap"

	"wttrloc/internal/pkg/logger"
)

// Extractor turns a free-text weather question into a location token
type Extractor interface {
	ExtractQuestion(ctx context.Context, question string) (string, error)
}

// Server represents the HTTP server
type Server struct {
	addr      string
	extractor Extractor
	log       *logger.Logger
	server    *http.Server
}

// New creates a new Server instance
func New(addr string, extractor Extractor, log *logger.Logger) *Server {
	if log == nil {
		log = logger.NewLogger(nil)
	}
	return &Server{
		addr:      addr,
		extractor: extractor,
		log:       log.Named("server"),
	}
}

// Handler returns the routed handler without starting a listener
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	// Health check endpoint
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	})

	mux.HandleFunc("/v1/locations", s.handleLocations)

	return mux
}

// Start serves until ctx is cancelled, then shuts down gracefully
func (s *Server) Start(ctx context.Context) error {
	s.server = &http.Server{
		Addr:         s.addr,
		Handler:      s.Handler(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 180 * time.Second, // long enough for a slow model
		IdleTimeout:  60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.log.Info("Starting wttrloc server", zap.String("addr", s.addr))
		if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	s.log.Info("Shutting down server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	return s.server.Shutdown(shutdownCtx)
}

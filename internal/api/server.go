package api

import (
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/tentapress/tentapress/internal/export"
)

// Server routes exporter HTTP traffic.
type Server struct {
	mux    *http.ServeMux
	logger *slog.Logger
}

// NewServer creates a server exposing the export endpoint.
func NewServer(assembler *export.Assembler, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	s := &Server{mux: http.NewServeMux(), logger: logger}

	es := NewExportServer(assembler, logger)
	s.mux.HandleFunc("POST /api/export", es.HandleExport)
	s.mux.HandleFunc("GET /healthz", s.handleHealth)

	return s
}

// Handler returns the root handler, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.mux
}

// ListenAndServe blocks serving on the given port.
func (s *Server) ListenAndServe(port int) error {
	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", port),
		Handler:           s.mux,
		ReadHeaderTimeout: 10 * time.Second,
	}
	s.logger.Info("listening", "addr", srv.Addr)
	return srv.ListenAndServe()
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write([]byte(`{"status":"ok"}` + "\n"))
}

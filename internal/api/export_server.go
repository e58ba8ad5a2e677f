// Package api provides the HTTP surface of the exporter.
package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"

	"github.com/tentapress/tentapress/internal/export"
	tperrors "github.com/tentapress/tentapress/internal/errors"
)

// ExportRequest is the JSON request body for export. Absent flags default
// to true; content is always included and has no flag.
type ExportRequest struct {
	IncludeSettings *bool `json:"includeSettings"`
	IncludeTheme    *bool `json:"includeTheme"`
	IncludePlugins  *bool `json:"includePlugins"`
	IncludeSeo      *bool `json:"includeSeo"`
}

// options resolves the request flags against the defaults.
func (r ExportRequest) options() export.Options {
	opts := export.DefaultOptions()
	if r.IncludeSettings != nil {
		opts.Settings = *r.IncludeSettings
	}
	if r.IncludeTheme != nil {
		opts.Theme = *r.IncludeTheme
	}
	if r.IncludePlugins != nil {
		opts.Plugins = *r.IncludePlugins
	}
	if r.IncludeSeo != nil {
		opts.Seo = *r.IncludeSeo
	}
	return opts
}

// ExportServer handles export download requests.
type ExportServer struct {
	assembler *export.Assembler
	logger    *slog.Logger
}

// NewExportServer creates a new export server.
func NewExportServer(assembler *export.Assembler, logger *slog.Logger) *ExportServer {
	if logger == nil {
		logger = slog.Default()
	}
	return &ExportServer{assembler: assembler, logger: logger}
}

// HandleExport handles POST /api/export requests.
// Runs one export and returns the archive as a binary download. The
// staged archive file is deleted after delivery.
func (s *ExportServer) HandleExport(w http.ResponseWriter, r *http.Request) {
	var req ExportRequest
	if r.Body != nil {
		body, err := io.ReadAll(r.Body)
		if err != nil {
			s.jsonError(w, fmt.Sprintf("read request body: %v", err), http.StatusBadRequest)
			return
		}
		if len(body) > 0 {
			if err := json.Unmarshal(body, &req); err != nil {
				s.jsonError(w, fmt.Sprintf("invalid request body: %v", err), http.StatusBadRequest)
				return
			}
		}
	}

	res, err := s.assembler.Run(r.Context(), req.options())
	if err != nil {
		s.logger.Error("export failed", "error", err)
		status := http.StatusInternalServerError
		var tpErr *tperrors.TPError
		if errors.As(err, &tpErr) {
			status = tpErr.HTTPStatus()
		}
		s.jsonError(w, "export failed", status)
		return
	}
	defer func() {
		if err := os.Remove(res.Path); err != nil {
			s.logger.Warn("remove staged archive", "path", res.Path, "error", err)
		}
	}()

	f, err := os.Open(res.Path)
	if err != nil {
		s.jsonError(w, "archive not readable", http.StatusInternalServerError)
		return
	}
	defer func() { _ = f.Close() }()

	info, err := f.Stat()
	if err != nil {
		s.jsonError(w, "archive not readable", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/zip")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", res.Filename))
	w.Header().Set("Content-Length", fmt.Sprintf("%d", info.Size()))

	if _, err := io.Copy(w, f); err != nil {
		// Headers are gone; all we can do is log.
		s.logger.Warn("stream archive", "error", err)
	}
}

// jsonError writes a JSON error response.
func (s *ExportServer) jsonError(w http.ResponseWriter, msg string, status int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": msg})
}

// Package server exposes statement processing over HTTP.
package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"path/filepath"
	"strconv"
	"strings"
	"sync"

	"github.com/charmbracelet/log"

	"github.com/cesarvalentimjr/ContabilidadeMEI/pkg/classifier"
	"github.com/cesarvalentimjr/ContabilidadeMEI/pkg/config"
	"github.com/cesarvalentimjr/ContabilidadeMEI/pkg/csv"
	"github.com/cesarvalentimjr/ContabilidadeMEI/pkg/models"
	"github.com/cesarvalentimjr/ContabilidadeMEI/pkg/parser"
	"github.com/cesarvalentimjr/ContabilidadeMEI/pkg/report"
)

// Server handles HTTP requests for statement processing.
type Server struct {
	config       *config.Config
	logger       *log.Logger
	mux          *http.ServeMux
	parser       *parser.Parser
	transactions sync.Map // filename -> []models.Transaction
	routesOnce   sync.Once
}

// New creates a new HTTP server.
func New(cfg *config.Config, logger *log.Logger) *Server {
	return &Server{
		config: cfg,
		logger: logger,
		mux:    http.NewServeMux(),
		parser: parser.New(logger),
	}
}

// Start starts the HTTP server.
func (s *Server) Start(addr string) error {
	s.setupRoutes()
	return http.ListenAndServe(addr, s.mux)
}

func (s *Server) setupRoutes() {
	s.routesOnce.Do(func() {
		s.mux.HandleFunc("/healthz", s.withLogging(s.handleHealth))
		s.mux.HandleFunc("/api/process", s.withLogging(s.handleProcess))
		s.mux.HandleFunc("/api/files/", s.withLogging(s.handleFiles))
	})
}

// Handler returns the configured route handler, mostly for tests.
func (s *Server) Handler() http.Handler {
	s.setupRoutes()
	return s.mux
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if err := s.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"}); err != nil {
		s.logger.Warn("failed to write json response", "err", err)
	}
}

// Transaction is the JSON shape of one classified transaction.
type Transaction struct {
	Date        string `json:"date"`
	Description string `json:"description"`
	Category    string `json:"category"`
	Amount      string `json:"amount"`
}

// handleProcess accepts a multipart statement upload plus layout/year form
// values, and responds with the classified transactions and their cash-flow
// summary. A statement that yields nothing is a warning, not an error, so
// the UI can prompt for a different layout.
func (s *Server) handleProcess(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		s.respondError(w, r, http.StatusMethodNotAllowed, "method not allowed", nil)
		return
	}

	file, header, err := r.FormFile("statement")
	if err != nil {
		s.respondError(w, r, http.StatusBadRequest, "statement file required", err)
		return
	}
	defer file.Close()
	data, err := io.ReadAll(file)
	if err != nil {
		s.respondError(w, r, http.StatusInternalServerError, "failed to read file", err)
		return
	}

	layout := parser.Layout(r.FormValue("layout"))
	if layout == "" {
		layout = parser.DetectLayout(header.Filename)
	}
	if layout == "" {
		s.respondError(w, r, http.StatusBadRequest, "layout required", nil)
		return
	}

	year := s.config.Year
	if raw := r.FormValue("year"); raw != "" {
		year, err = strconv.Atoi(raw)
		if err != nil {
			s.respondError(w, r, http.StatusBadRequest, "invalid year", err)
			return
		}
	}

	txs, err := s.parser.ProcessText(string(data), layout, year)
	if err != nil {
		if errors.Is(err, parser.ErrNoTransactions) {
			if err := s.writeJSON(w, http.StatusOK, map[string]interface{}{
				"status": "empty",
				"error":  "no transactions found; try a different layout",
			}); err != nil {
				s.logger.Warn("failed to write json response", "err", err)
			}
			return
		}
		s.respondError(w, r, http.StatusBadRequest, "failed to process statement", err)
		return
	}

	classified := classifier.Categorize(txs)
	flow := report.CashFlow(classified)

	filename := strings.TrimSuffix(header.Filename, filepath.Ext(header.Filename)) + "-mei.csv"
	s.transactions.Store(filename, classified)

	out := make([]Transaction, len(classified))
	for i, t := range classified {
		out[i] = Transaction{
			Date:        t.Date.Format("2006-01-02"),
			Description: t.Description,
			Category:    t.Category,
			Amount:      t.Amount.StringFixed(2),
		}
	}

	summary := map[string]interface{}{
		"credits": flow.Credits,
		"debits":  flow.Debits,
		"balance": flow.Balance.StringFixed(2),
	}

	if err := s.writeJSON(w, http.StatusOK, map[string]interface{}{
		"status":  "success",
		"file":    filename,
		"data":    out,
		"summary": summary,
	}); err != nil {
		s.logger.Warn("failed to write json response", "err", err)
	}
}

// handleFiles serves the generated CSV for a previously processed statement.
func (s *Server) handleFiles(w http.ResponseWriter, r *http.Request) {
	filename := strings.TrimPrefix(r.URL.Path, "/api/files/")
	if filename == "" {
		s.respondError(w, r, http.StatusBadRequest, "filename required", nil)
		return
	}

	value, ok := s.transactions.Load(filename)
	if !ok {
		s.respondError(w, r, http.StatusNotFound, "file not found", nil)
		return
	}
	txs, ok := value.([]models.Transaction)
	if !ok {
		s.respondError(w, r, http.StatusInternalServerError, "internal type assertion error", nil)
		return
	}

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	if _, err := w.Write(csv.Create(txs, nil)); err != nil {
		s.logger.Warn("failed to write csv response", "err", err)
	}
}

// --- helpers ---

// writeJSON encodes v as JSON with the given status and writes headers.
func (s *Server) writeJSON(w http.ResponseWriter, status int, v interface{}) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	return json.NewEncoder(w).Encode(v)
}

// respondError logs the error and returns a minimal JSON error body.
func (s *Server) respondError(w http.ResponseWriter, r *http.Request, status int, message string, err error) {
	if err != nil {
		s.logger.Warn("request error", "status", status, "msg", message, "err", err, "method", r.Method, "path", r.URL.Path)
	} else {
		s.logger.Warn("request error", "status", status, "msg", message, "method", r.Method, "path", r.URL.Path)
	}
	_ = s.writeJSON(w, status, map[string]string{
		"status": "error",
		"error":  message,
	})
}

// withLogging wraps a handler to log request start/end and recover panics.
func (s *Server) withLogging(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s.logger.Debug("http request", "method", r.Method, "path", r.URL.Path, "remote", r.RemoteAddr)
		defer func() {
			if rec := recover(); rec != nil {
				s.logger.Error("panic recovered", "panic", rec, "method", r.Method, "path", r.URL.Path)
				s.respondError(w, r, http.StatusInternalServerError, "internal server error", fmt.Errorf("panic: %v", rec))
			}
		}()
		next(w, r)
	}
}

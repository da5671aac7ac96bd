// Package server exposes flag evaluation over an HTTP API.
package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/finflags/flag-probe/internal/rules"
	"github.com/finflags/flag-probe/internal/statement"
	"github.com/finflags/flag-probe/pkg/constants"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

type handler struct {
	logger      *zap.Logger
	evaluator   *rules.Evaluator
	maxBodySize int64
	version     string
}

// NewHandler constructs the HTTP handler that serves the probe API.
func NewHandler(logger *zap.Logger, evaluator *rules.Evaluator, maxBodySize int64, version string) http.Handler {
	if logger == nil {
		logger = zap.NewNop()
	}

	if maxBodySize <= 0 {
		maxBodySize = constants.DefaultMaxBodySizeBytes
	}

	trimmedVersion := strings.TrimSpace(version)
	if trimmedVersion == "" {
		trimmedVersion = "dev"
	}

	h := &handler{
		logger:      logger,
		evaluator:   evaluator,
		maxBodySize: maxBodySize,
		version:     trimmedVersion,
	}

	router := chi.NewRouter()
	router.Use(requestLogger(logger))
	router.Use(middleware.Recoverer)

	router.Route("/api/v1", func(r chi.Router) {
		r.Post("/probe", h.handleProbe)
		r.Get("/version", h.handleVersion)
	})
	router.Get("/healthz", h.handleHealth)

	return router
}

type probeResponse struct {
	Flags    map[string]bool `json:"flags"`
	Metrics  *rules.Metrics  `json:"metrics,omitempty"`
	Duration string          `json:"duration"`
}

func (h *handler) handleProbe(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	if h.maxBodySize > 0 {
		r.Body = http.MaxBytesReader(w, r.Body, h.maxBodySize)
	}

	rec, err := statement.LoadRecordFromReader(r.Body)
	if err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			h.respondError(w, http.StatusRequestEntityTooLarge,
				fmt.Sprintf("record exceeds limit of %d bytes", h.maxBodySize), "server.handleProbe")
			return
		}
		h.respondError(w, http.StatusBadRequest,
			fmt.Sprintf("failed to decode record: %v", err), "server.handleProbe")
		return
	}

	result, err := h.evaluator.Probe(rec)
	if err != nil {
		var invalid *statement.InvalidRecordError
		if errors.As(err, &invalid) {
			h.respondError(w, http.StatusUnprocessableEntity, invalid.Error(), "server.handleProbe")
			return
		}
		h.respondError(w, http.StatusInternalServerError,
			fmt.Sprintf("failed to evaluate record: %v", err), "server.handleProbe")
		return
	}

	elapsed := time.Since(start)
	h.logger.Info("probe computed",
		zap.String("op", "server.handleProbe"),
		zap.Int("statements", len(rec.Financials)),
		zap.Duration("duration", elapsed),
	)

	h.writeJSON(w, http.StatusOK, probeResponse{
		Flags:    result.Flags,
		Metrics:  result.Metrics,
		Duration: elapsed.String(),
	})
}

func (h *handler) handleVersion(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, map[string]string{
		"version": h.version,
	})
}

func (h *handler) handleHealth(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *handler) respondError(w http.ResponseWriter, status int, msg string, op string) {
	if h.logger != nil {
		h.logger.Error("probe request failed",
			zap.String("op", op),
			zap.Int("status", status),
			zap.String("error", msg),
		)
	}

	h.writeJSON(w, status, map[string]string{"error": msg})
}

func (h *handler) writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil && h.logger != nil {
		h.logger.Error("failed to write JSON response", zap.Error(err))
	}
}

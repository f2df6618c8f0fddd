// Package server exposes the detector over HTTP. Requests carry raw text as
// the body; responses are JSON.
package server

import (
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/julienschmidt/httprouter"

	"WordWatch/internal/automaton"
	"WordWatch/internal/detect"
)

// maxBodyBytes caps request bodies; scanning is linear in text size but a
// shared service should still bound its inputs.
const maxBodyBytes = 1 << 20

// Handler holds the HTTP handlers for the detection API.
type Handler struct {
	det            *detect.Detector
	defaultMaxSkip int
	logger         *slog.Logger
}

// NewHandler creates a Handler backed by the given detector.
func NewHandler(det *detect.Detector, defaultMaxSkip int, logger *slog.Logger) *Handler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Handler{det: det, defaultMaxSkip: defaultMaxSkip, logger: logger}
}

// RegisterRoutes registers all API routes on the given router.
func (h *Handler) RegisterRoutes(router *httprouter.Router) {
	router.POST("/scan", h.handleScanExact)
	router.POST("/scan/fuzzy", h.handleScanFuzzy)
	router.POST("/censor", h.handleCensor)
	router.GET("/dictionary", h.handleDictionary)
}

func (h *Handler) handleScanExact(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	text, ok := h.readBody(w, r)
	if !ok {
		return
	}

	start := time.Now()
	matches, err := h.det.ScanExact(text)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	took := time.Since(start)

	h.logger.Info("exact scan",
		"bytes", len(text),
		"matches", len(matches),
		"took", took,
	)
	writeJSON(w, http.StatusOK, nonNil(matches))
}

func (h *Handler) handleScanFuzzy(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	maxSkip := h.defaultMaxSkip
	if raw := r.URL.Query().Get("max_skip"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil {
			writeError(w, http.StatusBadRequest, "max_skip must be an integer")
			return
		}
		maxSkip = v
	}

	text, ok := h.readBody(w, r)
	if !ok {
		return
	}

	start := time.Now()
	matches, err := h.det.ScanFuzzy(text, maxSkip)
	if err != nil {
		if errors.Is(err, automaton.ErrNegativeSkip) {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	took := time.Since(start)

	h.logger.Info("fuzzy scan",
		"bytes", len(text),
		"max_skip", maxSkip,
		"matches", len(matches),
		"took", took,
	)
	writeJSON(w, http.StatusOK, nonNil(matches))
}

func (h *Handler) handleCensor(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	text, ok := h.readBody(w, r)
	if !ok {
		return
	}

	masked, matched := h.det.Censor(text)
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"text":    masked,
		"matched": matched,
	})
}

func (h *Handler) handleDictionary(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	writeJSON(w, http.StatusOK, h.det.Stats())
}

// readBody reads the raw text body, enforcing the size cap. On failure it
// writes the error response itself and reports false.
func (h *Handler) readBody(w http.ResponseWriter, r *http.Request) (string, bool) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		writeError(w, http.StatusBadRequest, "read request body: "+err.Error())
		return "", false
	}
	return string(body), true
}

// nonNil keeps empty result sets serializing as [] rather than null.
func nonNil(matches []automaton.Match) []automaton.Match {
	if matches == nil {
		return []automaton.Match{}
	}
	return matches
}

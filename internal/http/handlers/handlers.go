package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	nethttp "net/http"

	"github.com/preston-bernstein/record-filter-service/internal/app/records"
	"github.com/preston-bernstein/record-filter-service/internal/domain"
	"github.com/preston-bernstein/record-filter-service/internal/logging"
)

const maxBodyBytes = 1 << 20

// Handler wires HTTP routes to the records service.
type Handler struct {
	svc    *records.Service
	logger *slog.Logger
}

// NewHandler constructs a Handler with defaults.
func NewHandler(svc *records.Service, logger *slog.Logger) *Handler {
	return &Handler{
		svc:    svc,
		logger: logger,
	}
}

// Health reports the service health.
func (h *Handler) Health(w nethttp.ResponseWriter, r *nethttp.Request) {
	if r.Method != nethttp.MethodGet {
		writeError(w, r, nethttp.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}
	if err := r.Context().Err(); err != nil {
		writeError(w, r, nethttp.StatusServiceUnavailable, "shutting down", h.logger)
		return
	}
	writeJSON(w, nethttp.StatusOK, map[string]string{"status": "ok"}, h.logger)
}

// Ready reports readiness for traffic (e.g., for Kubernetes probes).
func (h *Handler) Ready(w nethttp.ResponseWriter, r *nethttp.Request) {
	if r.Method != nethttp.MethodGet {
		writeError(w, r, nethttp.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}
	if h.svc == nil {
		writeError(w, r, nethttp.StatusServiceUnavailable, "not ready", h.logger)
		return
	}
	writeJSON(w, nethttp.StatusOK, map[string]string{"status": "ready"}, h.logger)
}

// ProcessRecords runs a lookup/filter/save cycle. GET reads the query string,
// POST reads a JSON ProcessRequest body.
func (h *Handler) ProcessRecords(w nethttp.ResponseWriter, r *nethttp.Request) {
	var req domain.ProcessRequest
	switch r.Method {
	case nethttp.MethodGet:
		q := r.URL.Query()
		req = domain.ProcessRequest{
			SearchKey: q.Get("searchKey"),
			FilterA:   q.Get("filterA"),
			FilterB:   q.Get("filterB"),
			FilterC:   q.Get("filterC"),
		}
	case nethttp.MethodPost:
		dec := json.NewDecoder(nethttp.MaxBytesReader(w, r.Body, maxBodyBytes))
		if err := dec.Decode(&req); err != nil {
			writeError(w, r, nethttp.StatusBadRequest, "invalid request body", h.logger)
			return
		}
	default:
		writeError(w, r, nethttp.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}

	logger := loggerFromContext(r, h.logger)
	kept, err := h.svc.Process(r.Context(), req.SearchKey, req.FilterA, req.FilterB, req.FilterC)
	if errors.Is(err, records.ErrInvalidArgument) {
		writeError(w, r, nethttp.StatusBadRequest, err.Error(), h.logger)
		return
	}
	if err != nil {
		logging.Error(logger, "process records failed", err, slog.String(logging.FieldSearchKey, req.SearchKey))
		writeError(w, r, nethttp.StatusBadGateway, "failed to save records", h.logger)
		return
	}

	logging.Info(logger, "processed records",
		slog.String(logging.FieldSearchKey, req.SearchKey),
		slog.Int(logging.FieldCount, len(kept)),
	)
	writeJSON(w, nethttp.StatusOK, domain.ProcessResponse{
		SearchKey: req.SearchKey,
		Count:     len(kept),
		Records:   kept,
	}, h.logger)
}

// Package api exposes the slicer compilers over HTTP.
package api

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"sliceql/internal/domain"
	"sliceql/internal/service/slicer"
)

// Handler serves the slicer endpoints.
type Handler struct {
	services map[string]*slicer.Service
	names    []string
	logger   *slog.Logger
}

// NewHandler returns a handler over the given compiler services. The slice
// order fixes the listing order.
func NewHandler(services []*slicer.Service, logger *slog.Logger) *Handler {
	h := &Handler{
		services: make(map[string]*slicer.Service, len(services)),
		logger:   logger.With("component", "api"),
	}
	for _, svc := range services {
		name := svc.Registry().Name()
		h.services[name] = svc
		h.names = append(h.names, name)
	}
	return h
}

// ListSlicers returns the registered slicers.
func (h *Handler) ListSlicers(w http.ResponseWriter, r *http.Request) {
	infos := make([]SlicerInfo, 0, len(h.names))
	for _, name := range h.names {
		infos = append(infos, slicerInfo(h.services[name].Registry()))
	}
	writeJSON(w, http.StatusOK, infos)
}

// GetSlicer returns one slicer's registry description.
func (h *Handler) GetSlicer(w http.ResponseWriter, r *http.Request) {
	svc, ok := h.services[chi.URLParam(r, "name")]
	if !ok {
		writeError(w, http.StatusNotFound, "slicer not found")
		return
	}
	writeJSON(w, http.StatusOK, slicerInfo(svc.Registry()))
}

// QuerySchema compiles a slice request into its execution plan.
func (h *Handler) QuerySchema(w http.ResponseWriter, r *http.Request) {
	svc, ok := h.services[chi.URLParam(r, "name")]
	if !ok {
		writeError(w, http.StatusNotFound, "slicer not found")
		return
	}

	req, ok := h.decodeRequest(w, r)
	if !ok {
		return
	}

	qs, err := svc.QuerySchema(req)
	if err != nil {
		h.writeCompileError(w, r, err)
		return
	}
	resp, err := NewQuerySchemaResponse(qs)
	if err != nil {
		h.logger.ErrorContext(r.Context(), "render query schema", "error", err)
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

// DisplaySchema compiles a slice request into its presentation metadata.
func (h *Handler) DisplaySchema(w http.ResponseWriter, r *http.Request) {
	svc, ok := h.services[chi.URLParam(r, "name")]
	if !ok {
		writeError(w, http.StatusNotFound, "slicer not found")
		return
	}

	req, ok := h.decodeRequest(w, r)
	if !ok {
		return
	}

	ds, err := svc.DisplaySchema(req)
	if err != nil {
		h.writeCompileError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, ds)
}

// Health reports liveness.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) decodeRequest(w http.ResponseWriter, r *http.Request) (req domain.SliceRequest, ok bool) {
	var body CompileRequest
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return req, false
	}
	dreq, err := body.ToDomain()
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return req, false
	}
	return dreq, true
}

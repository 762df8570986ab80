package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"

	"praetordesk/internal/models"
	"praetordesk/internal/store"
)

// maxBodyBytes caps JSON request bodies.
const maxBodyBytes = 1 << 20

// Handlers holds the HTTP handlers and their dependencies.
type Handlers struct {
	store  store.Store
	logger *log.Logger
	now    func() time.Time
}

// New creates a new Handlers instance. A nil logger discards output.
func New(s store.Store, logger *log.Logger) *Handlers {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Handlers{
		store:  s,
		logger: logger,
		now:    time.Now,
	}
}

// today is the caller's local calendar day.
func (h *Handlers) today() string {
	return models.DateOf(h.now())
}

// parseID extracts and parses an integer ID from URL parameters.
func parseID(r *http.Request, param string) (int64, error) {
	idStr := chi.URLParam(r, param)
	return strconv.ParseInt(idStr, 10, 64)
}

// decodeJSON reads the request body into dst, rejecting unknown fields and
// trailing data.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst interface{}) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		return err
	}
	if dec.More() {
		return errors.New("unexpected data after JSON body")
	}
	return nil
}

// invalidBody describes a decode failure. Validation errors raised while
// decoding, such as an unknown project status, keep their message.
func invalidBody(err error) string {
	if errors.Is(err, models.ErrInvalid) {
		return err.Error()
	}
	return "invalid json"
}

type reorderRequest struct {
	Items []models.PositionUpdate `json:"items"`
}

type createdResponse struct {
	ID int64 `json:"id"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func (h *Handlers) respondJSON(w http.ResponseWriter, code int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.logger.Warn("failed to write response", "err", err)
	}
}

func (h *Handlers) respondCreated(w http.ResponseWriter, id int64) {
	h.respondJSON(w, http.StatusCreated, createdResponse{ID: id})
}

// respondError sends an error response.
func (h *Handlers) respondError(w http.ResponseWriter, code int, message string) {
	h.respondJSON(w, code, errorResponse{Error: message})
}

// respondStoreError maps store and validation errors onto status codes.
func (h *Handlers) respondStoreError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, models.ErrInvalid):
		h.respondError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, store.ErrNotFound):
		h.respondError(w, http.StatusNotFound, err.Error())
	default:
		h.logger.Error("internal server error",
			"err", err,
			"method", r.Method,
			"path", r.URL.Path,
			"request_id", RequestID(r.Context()),
		)
		h.respondError(w, http.StatusInternalServerError, "internal server error")
	}
}

// Health reports whether the database is reachable.
func (h *Handlers) Health(w http.ResponseWriter, r *http.Request) {
	if err := h.store.Ping(r.Context()); err != nil {
		h.logger.Error("health check failed", "err", err)
		h.respondError(w, http.StatusServiceUnavailable, "database unavailable")
		return
	}
	h.respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

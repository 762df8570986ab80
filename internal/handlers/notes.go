package handlers

import (
	"net/http"

	"praetordesk/internal/models"
)

type createNoteRequest struct {
	Title string  `json:"title"`
	Notes *string `json:"notes"`
}

// ListIdeas returns all ideas, newest first.
func (h *Handlers) ListIdeas(w http.ResponseWriter, r *http.Request) {
	ideas, err := h.store.ListIdeas(r.Context())
	if err != nil {
		h.respondStoreError(w, r, err)
		return
	}
	h.respondJSON(w, http.StatusOK, ideas)
}

// CreateIdea creates a new idea.
func (h *Handlers) CreateIdea(w http.ResponseWriter, r *http.Request) {
	var req createNoteRequest
	if err := decodeJSON(w, r, &req); err != nil {
		h.respondError(w, http.StatusBadRequest, invalidBody(err))
		return
	}

	idea := &models.Idea{Title: req.Title, Notes: req.Notes}
	if err := h.store.CreateIdea(r.Context(), idea); err != nil {
		h.respondStoreError(w, r, err)
		return
	}

	h.respondCreated(w, idea.ID)
}

// UpdateIdea applies a partial update to an idea.
func (h *Handlers) UpdateIdea(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "id")
	if err != nil {
		h.respondError(w, http.StatusBadRequest, "invalid idea id")
		return
	}

	var patch models.IdeaPatch
	if err := decodeJSON(w, r, &patch); err != nil {
		h.respondError(w, http.StatusBadRequest, invalidBody(err))
		return
	}

	idea, err := h.store.UpdateIdea(r.Context(), id, patch)
	if err != nil {
		h.respondStoreError(w, r, err)
		return
	}

	h.respondJSON(w, http.StatusOK, idea)
}

// DeleteIdea deletes an idea.
func (h *Handlers) DeleteIdea(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "id")
	if err != nil {
		h.respondError(w, http.StatusBadRequest, "invalid idea id")
		return
	}

	if err := h.store.DeleteIdea(r.Context(), id); err != nil {
		h.respondStoreError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// ListHouseItems returns all house items, newest first.
func (h *Handlers) ListHouseItems(w http.ResponseWriter, r *http.Request) {
	items, err := h.store.ListHouseItems(r.Context())
	if err != nil {
		h.respondStoreError(w, r, err)
		return
	}
	h.respondJSON(w, http.StatusOK, items)
}

// CreateHouseItem creates a new, open house item.
func (h *Handlers) CreateHouseItem(w http.ResponseWriter, r *http.Request) {
	var req createNoteRequest
	if err := decodeJSON(w, r, &req); err != nil {
		h.respondError(w, http.StatusBadRequest, invalidBody(err))
		return
	}

	item := &models.HouseItem{Title: req.Title, Notes: req.Notes}
	if err := h.store.CreateHouseItem(r.Context(), item); err != nil {
		h.respondStoreError(w, r, err)
		return
	}

	h.respondCreated(w, item.ID)
}

// UpdateHouseItem applies a partial update to a house item.
func (h *Handlers) UpdateHouseItem(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "id")
	if err != nil {
		h.respondError(w, http.StatusBadRequest, "invalid house item id")
		return
	}

	var patch models.HouseItemPatch
	if err := decodeJSON(w, r, &patch); err != nil {
		h.respondError(w, http.StatusBadRequest, invalidBody(err))
		return
	}

	item, err := h.store.UpdateHouseItem(r.Context(), id, patch)
	if err != nil {
		h.respondStoreError(w, r, err)
		return
	}

	h.respondJSON(w, http.StatusOK, item)
}

// DeleteHouseItem deletes a house item.
func (h *Handlers) DeleteHouseItem(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "id")
	if err != nil {
		h.respondError(w, http.StatusBadRequest, "invalid house item id")
		return
	}

	if err := h.store.DeleteHouseItem(r.Context(), id); err != nil {
		h.respondStoreError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

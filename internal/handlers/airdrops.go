package handlers

import (
	"net/http"

	"praetordesk/internal/models"
)

type createAirdropRequest struct {
	Name          string  `json:"name"`
	URL           string  `json:"url"`
	AirdropTypeID *int64  `json:"airdrop_type_id"`
	Chain         *string `json:"chain"`
	WalletAddress *string `json:"wallet_address"`
	Notes         *string `json:"notes"`
	Active        *bool   `json:"active"`
}

// ListAirdrops returns all airdrops in display order.
func (h *Handlers) ListAirdrops(w http.ResponseWriter, r *http.Request) {
	airdrops, err := h.store.ListAirdrops(r.Context())
	if err != nil {
		h.respondStoreError(w, r, err)
		return
	}
	h.respondJSON(w, http.StatusOK, airdrops)
}

// CreateAirdrop appends a new airdrop. Airdrops are active unless the body
// says otherwise.
func (h *Handlers) CreateAirdrop(w http.ResponseWriter, r *http.Request) {
	var req createAirdropRequest
	if err := decodeJSON(w, r, &req); err != nil {
		h.respondError(w, http.StatusBadRequest, invalidBody(err))
		return
	}

	airdrop := &models.Airdrop{
		Name:          req.Name,
		URL:           req.URL,
		AirdropTypeID: req.AirdropTypeID,
		Chain:         req.Chain,
		WalletAddress: req.WalletAddress,
		Notes:         req.Notes,
		Active:        true,
	}
	if req.Active != nil {
		airdrop.Active = *req.Active
	}

	if err := h.store.CreateAirdrop(r.Context(), airdrop); err != nil {
		h.respondStoreError(w, r, err)
		return
	}

	h.respondCreated(w, airdrop.ID)
}

// UpdateAirdrop applies a partial update to an airdrop.
func (h *Handlers) UpdateAirdrop(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "id")
	if err != nil {
		h.respondError(w, http.StatusBadRequest, "invalid airdrop id")
		return
	}

	var patch models.AirdropPatch
	if err := decodeJSON(w, r, &patch); err != nil {
		h.respondError(w, http.StatusBadRequest, invalidBody(err))
		return
	}

	airdrop, err := h.store.UpdateAirdrop(r.Context(), id, patch)
	if err != nil {
		h.respondStoreError(w, r, err)
		return
	}

	h.respondJSON(w, http.StatusOK, airdrop)
}

// DeleteAirdrop deletes an airdrop and its daily tasks.
func (h *Handlers) DeleteAirdrop(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "id")
	if err != nil {
		h.respondError(w, http.StatusBadRequest, "invalid airdrop id")
		return
	}

	if err := h.store.DeleteAirdrop(r.Context(), id); err != nil {
		h.respondStoreError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// ReorderAirdrops writes a batch of positions in one transaction.
func (h *Handlers) ReorderAirdrops(w http.ResponseWriter, r *http.Request) {
	var req reorderRequest
	if err := decodeJSON(w, r, &req); err != nil {
		h.respondError(w, http.StatusBadRequest, invalidBody(err))
		return
	}

	if err := h.store.ReorderAirdrops(r.Context(), req.Items); err != nil {
		h.respondStoreError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

type createAirdropTypeRequest struct {
	Name         string   `json:"name"`
	DefaultTasks []string `json:"default_tasks"`
}

// ListAirdropTypes returns all airdrop types by name.
func (h *Handlers) ListAirdropTypes(w http.ResponseWriter, r *http.Request) {
	types, err := h.store.ListAirdropTypes(r.Context())
	if err != nil {
		h.respondStoreError(w, r, err)
		return
	}
	h.respondJSON(w, http.StatusOK, types)
}

// CreateAirdropType creates a template for new airdrops.
func (h *Handlers) CreateAirdropType(w http.ResponseWriter, r *http.Request) {
	var req createAirdropTypeRequest
	if err := decodeJSON(w, r, &req); err != nil {
		h.respondError(w, http.StatusBadRequest, invalidBody(err))
		return
	}

	airdropType := &models.AirdropType{Name: req.Name, DefaultTasks: req.DefaultTasks}
	if err := h.store.CreateAirdropType(r.Context(), airdropType); err != nil {
		h.respondStoreError(w, r, err)
		return
	}

	h.respondCreated(w, airdropType.ID)
}

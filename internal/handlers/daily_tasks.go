package handlers

import (
	"net/http"

	"praetordesk/internal/models"
)

// dailyTaskView is a daily task as seen on the handler's clock.
type dailyTaskView struct {
	models.DailyTask
	DoneToday bool `json:"done_today"`
}

func (h *Handlers) viewDailyTask(t models.DailyTask, today string) dailyTaskView {
	return dailyTaskView{DailyTask: t, DoneToday: t.DoneOn(today)}
}

type createDailyTaskRequest struct {
	Title string `json:"title"`
}

// ListDailyTasks returns the tasks of an airdrop in display order, each
// flagged with whether it was done today.
func (h *Handlers) ListDailyTasks(w http.ResponseWriter, r *http.Request) {
	airdropID, err := parseID(r, "id")
	if err != nil {
		h.respondError(w, http.StatusBadRequest, "invalid airdrop id")
		return
	}

	ctx := r.Context()
	if _, err := h.store.GetAirdrop(ctx, airdropID); err != nil {
		h.respondStoreError(w, r, err)
		return
	}

	tasks, err := h.store.ListDailyTasks(ctx, airdropID)
	if err != nil {
		h.respondStoreError(w, r, err)
		return
	}

	today := h.today()
	views := make([]dailyTaskView, 0, len(tasks))
	for _, t := range tasks {
		views = append(views, h.viewDailyTask(t, today))
	}

	h.respondJSON(w, http.StatusOK, views)
}

// CreateDailyTask appends a task to an airdrop.
func (h *Handlers) CreateDailyTask(w http.ResponseWriter, r *http.Request) {
	airdropID, err := parseID(r, "id")
	if err != nil {
		h.respondError(w, http.StatusBadRequest, "invalid airdrop id")
		return
	}

	var req createDailyTaskRequest
	if err := decodeJSON(w, r, &req); err != nil {
		h.respondError(w, http.StatusBadRequest, invalidBody(err))
		return
	}

	task := &models.DailyTask{AirdropID: airdropID, Title: req.Title}
	if err := h.store.CreateDailyTask(r.Context(), task); err != nil {
		h.respondStoreError(w, r, err)
		return
	}

	h.respondCreated(w, task.ID)
}

// ReorderDailyTasks writes a batch of positions for one airdrop's tasks.
func (h *Handlers) ReorderDailyTasks(w http.ResponseWriter, r *http.Request) {
	airdropID, err := parseID(r, "id")
	if err != nil {
		h.respondError(w, http.StatusBadRequest, "invalid airdrop id")
		return
	}

	var req reorderRequest
	if err := decodeJSON(w, r, &req); err != nil {
		h.respondError(w, http.StatusBadRequest, invalidBody(err))
		return
	}

	if err := h.store.ReorderDailyTasks(r.Context(), airdropID, req.Items); err != nil {
		h.respondStoreError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// MarkDailyTaskDone records today in the task's completion set. Repeating the
// request on the same day changes nothing.
func (h *Handlers) MarkDailyTaskDone(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "id")
	if err != nil {
		h.respondError(w, http.StatusBadRequest, "invalid task id")
		return
	}

	today := h.today()
	task, err := h.store.MarkDailyTaskDone(r.Context(), id, today)
	if err != nil {
		h.respondStoreError(w, r, err)
		return
	}

	h.respondJSON(w, http.StatusOK, h.viewDailyTask(*task, today))
}

// DeleteDailyTask deletes a daily task.
func (h *Handlers) DeleteDailyTask(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "id")
	if err != nil {
		h.respondError(w, http.StatusBadRequest, "invalid task id")
		return
	}

	if err := h.store.DeleteDailyTask(r.Context(), id); err != nil {
		h.respondStoreError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

package handlers

import (
	"net/http"

	"praetordesk/internal/models"
)

type createProjectRequest struct {
	Name        string               `json:"name"`
	Description *string              `json:"description"`
	Status      models.ProjectStatus `json:"status"`
}

// ListProjects returns all projects, newest first.
func (h *Handlers) ListProjects(w http.ResponseWriter, r *http.Request) {
	projects, err := h.store.ListProjects(r.Context())
	if err != nil {
		h.respondStoreError(w, r, err)
		return
	}
	h.respondJSON(w, http.StatusOK, projects)
}

// CreateProject creates a new project. A missing status means active.
func (h *Handlers) CreateProject(w http.ResponseWriter, r *http.Request) {
	var req createProjectRequest
	if err := decodeJSON(w, r, &req); err != nil {
		h.respondError(w, http.StatusBadRequest, invalidBody(err))
		return
	}

	project := &models.Project{
		Name:        req.Name,
		Description: req.Description,
		Status:      req.Status,
	}

	if err := h.store.CreateProject(r.Context(), project); err != nil {
		h.respondStoreError(w, r, err)
		return
	}

	h.respondCreated(w, project.ID)
}

// UpdateProject applies a partial update to a project.
func (h *Handlers) UpdateProject(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "id")
	if err != nil {
		h.respondError(w, http.StatusBadRequest, "invalid project id")
		return
	}

	var patch models.ProjectPatch
	if err := decodeJSON(w, r, &patch); err != nil {
		h.respondError(w, http.StatusBadRequest, invalidBody(err))
		return
	}

	project, err := h.store.UpdateProject(r.Context(), id, patch)
	if err != nil {
		h.respondStoreError(w, r, err)
		return
	}

	h.respondJSON(w, http.StatusOK, project)
}

// DeleteProject deletes a project and its tasks.
func (h *Handlers) DeleteProject(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "id")
	if err != nil {
		h.respondError(w, http.StatusBadRequest, "invalid project id")
		return
	}

	if err := h.store.DeleteProject(r.Context(), id); err != nil {
		h.respondStoreError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

type createProjectTaskRequest struct {
	Title string `json:"title"`
}

// ListProjectTasks returns the tasks of a project in display order.
func (h *Handlers) ListProjectTasks(w http.ResponseWriter, r *http.Request) {
	projectID, err := parseID(r, "id")
	if err != nil {
		h.respondError(w, http.StatusBadRequest, "invalid project id")
		return
	}

	ctx := r.Context()
	if _, err := h.store.GetProject(ctx, projectID); err != nil {
		h.respondStoreError(w, r, err)
		return
	}

	tasks, err := h.store.ListProjectTasks(ctx, projectID)
	if err != nil {
		h.respondStoreError(w, r, err)
		return
	}

	h.respondJSON(w, http.StatusOK, tasks)
}

// CreateProjectTask appends a task to a project.
func (h *Handlers) CreateProjectTask(w http.ResponseWriter, r *http.Request) {
	projectID, err := parseID(r, "id")
	if err != nil {
		h.respondError(w, http.StatusBadRequest, "invalid project id")
		return
	}

	var req createProjectTaskRequest
	if err := decodeJSON(w, r, &req); err != nil {
		h.respondError(w, http.StatusBadRequest, invalidBody(err))
		return
	}

	task := &models.ProjectTask{ProjectID: projectID, Title: req.Title}
	if err := h.store.CreateProjectTask(r.Context(), task); err != nil {
		h.respondStoreError(w, r, err)
		return
	}

	h.respondCreated(w, task.ID)
}

// ReorderProjectTasks writes a batch of positions for one project's tasks.
func (h *Handlers) ReorderProjectTasks(w http.ResponseWriter, r *http.Request) {
	projectID, err := parseID(r, "id")
	if err != nil {
		h.respondError(w, http.StatusBadRequest, "invalid project id")
		return
	}

	var req reorderRequest
	if err := decodeJSON(w, r, &req); err != nil {
		h.respondError(w, http.StatusBadRequest, invalidBody(err))
		return
	}

	if err := h.store.ReorderProjectTasks(r.Context(), projectID, req.Items); err != nil {
		h.respondStoreError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// UpdateProjectTask applies a partial update to a project task.
func (h *Handlers) UpdateProjectTask(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "id")
	if err != nil {
		h.respondError(w, http.StatusBadRequest, "invalid task id")
		return
	}

	var patch models.ProjectTaskPatch
	if err := decodeJSON(w, r, &patch); err != nil {
		h.respondError(w, http.StatusBadRequest, invalidBody(err))
		return
	}

	task, err := h.store.UpdateProjectTask(r.Context(), id, patch)
	if err != nil {
		h.respondStoreError(w, r, err)
		return
	}

	h.respondJSON(w, http.StatusOK, task)
}

// DeleteProjectTask deletes a project task.
func (h *Handlers) DeleteProjectTask(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "id")
	if err != nil {
		h.respondError(w, http.StatusBadRequest, "invalid task id")
		return
	}

	if err := h.store.DeleteProjectTask(r.Context(), id); err != nil {
		h.respondStoreError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

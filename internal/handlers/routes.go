package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Routes builds the router for the JSON API.
func (h *Handlers) Routes() http.Handler {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.RealIP)
	r.Use(requestIDMiddleware)
	r.Use(h.accessLog)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Compress(5))

	r.Get("/healthz", h.Health)

	r.Route("/api", func(r chi.Router) {
		// Airdrops
		r.Get("/airdrops", h.ListAirdrops)
		r.Post("/airdrops", h.CreateAirdrop)
		r.Post("/airdrops/reorder", h.ReorderAirdrops)
		r.Patch("/airdrops/{id}", h.UpdateAirdrop)
		r.Delete("/airdrops/{id}", h.DeleteAirdrop)
		r.Get("/airdrops/{id}/tasks", h.ListDailyTasks)
		r.Post("/airdrops/{id}/tasks", h.CreateDailyTask)
		r.Post("/airdrops/{id}/tasks/reorder", h.ReorderDailyTasks)

		r.Get("/airdrop-types", h.ListAirdropTypes)
		r.Post("/airdrop-types", h.CreateAirdropType)

		r.Post("/daily-tasks/{id}/done", h.MarkDailyTaskDone)
		r.Delete("/daily-tasks/{id}", h.DeleteDailyTask)

		// Projects
		r.Get("/projects", h.ListProjects)
		r.Post("/projects", h.CreateProject)
		r.Patch("/projects/{id}", h.UpdateProject)
		r.Delete("/projects/{id}", h.DeleteProject)
		r.Get("/projects/{id}/tasks", h.ListProjectTasks)
		r.Post("/projects/{id}/tasks", h.CreateProjectTask)
		r.Post("/projects/{id}/tasks/reorder", h.ReorderProjectTasks)

		r.Patch("/project-tasks/{id}", h.UpdateProjectTask)
		r.Delete("/project-tasks/{id}", h.DeleteProjectTask)

		// Notes
		r.Get("/ideas", h.ListIdeas)
		r.Post("/ideas", h.CreateIdea)
		r.Patch("/ideas/{id}", h.UpdateIdea)
		r.Delete("/ideas/{id}", h.DeleteIdea)

		r.Get("/house-items", h.ListHouseItems)
		r.Post("/house-items", h.CreateHouseItem)
		r.Patch("/house-items/{id}", h.UpdateHouseItem)
		r.Delete("/house-items/{id}", h.DeleteHouseItem)
	})

	return r
}

// Package http provides the inbound HTTP adapter including routing and server lifecycle.
package http

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/jsamuelsen11/project-tracker/internal/adapters/http/dto"
	"github.com/jsamuelsen11/project-tracker/internal/adapters/http/handlers"
	"github.com/jsamuelsen11/project-tracker/internal/adapters/http/middleware"
	"github.com/jsamuelsen11/project-tracker/internal/domain"
	"github.com/jsamuelsen11/project-tracker/internal/platform/config"
	"github.com/jsamuelsen11/project-tracker/internal/ports"
)

// Handlers groups the inbound handlers mounted by NewRouter.
type Handlers struct {
	Health       *handlers.HealthHandler
	User         *handlers.UserHandler
	Team         *handlers.TeamHandler
	Project      *handlers.ProjectHandler
	Task         *handlers.TaskHandler
	Notification *handlers.NotificationHandler
	Admin        *handlers.AdminHandler
	WebSocket    *handlers.WebSocketHandler
}

// RouterConfig holds the per-route policies applied under /api/v1.
type RouterConfig struct {
	Auth ports.Authenticator
	// RequestTimeout bounds every API request except the websocket stream.
	// Zero disables the timeout.
	RequestTimeout time.Duration
	RateLimit      config.RateLimitConfig
}

// NewRouter creates an HTTP handler with all application routes registered.
// Middleware is applied globally in the order given.
func NewRouter(h Handlers, cfg RouterConfig, middlewares ...func(http.Handler) http.Handler) http.Handler {
	r := chi.NewRouter()

	for _, mw := range middlewares {
		r.Use(mw)
	}

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		dto.WriteErrorStatus(w, r, http.StatusNotFound, domain.CodeNotFound, "route not found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		dto.WriteErrorStatus(w, r, http.StatusMethodNotAllowed, domain.CodeValidation, "method not allowed")
	})

	// Health endpoints (outside /api/v1 prefix).
	r.Get("/health/live", h.Health.Liveness)
	r.Get("/health/ready", h.Health.Readiness)

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(middleware.RateLimit(cfg.RateLimit.RequestsPerSecond, cfg.RateLimit.BurstSize))

		// Public.
		r.Group(func(r chi.Router) {
			r.Use(middleware.Timeout(cfg.RequestTimeout))
			r.Post("/auth/register", h.User.Register)
			r.Post("/auth/login", h.User.Login)
		})

		// Authenticated.
		r.Group(func(r chi.Router) {
			r.Use(middleware.Authenticate(cfg.Auth))

			// Long-lived; never wrapped in the request timeout.
			r.Get("/ws", h.WebSocket.Stream)

			r.Group(func(r chi.Router) {
				r.Use(middleware.Timeout(cfg.RequestTimeout))

				r.Get("/auth/me", h.User.Me)

				r.Get("/users", h.User.ListUsers)
				r.Get("/users/{id}", h.User.GetUser)
				r.Patch("/users/{id}", h.User.UpdateUser)
				r.Delete("/users/{id}", h.User.DeactivateUser)

				r.Get("/teams", h.Team.ListTeams)
				r.Post("/teams", h.Team.CreateTeam)
				r.Get("/teams/{id}", h.Team.GetTeam)
				r.Get("/teams/{id}/members", h.Team.ListMembers)
				r.Post("/teams/{id}/members", h.Team.AddMember)
				r.Delete("/teams/{id}/members/{userId}", h.Team.RemoveMember)

				r.Get("/projects", h.Project.ListProjects)
				r.Post("/projects", h.Project.CreateProject)
				r.Get("/projects/{id}", h.Project.GetProject)
				r.Patch("/projects/{id}", h.Project.UpdateProject)
				r.Delete("/projects/{id}", h.Project.DeleteProject)
				r.Post("/projects/{id}/completion", h.Project.RecomputeCompletion)
				r.Get("/projects/{id}/kanban", h.Project.GetKanbanBoard)
				r.Get("/projects/{id}/stats", h.Project.GetProjectStats)

				r.Get("/tasks", h.Task.ListTasks)
				r.Post("/tasks", h.Task.CreateTask)
				r.Patch("/tasks/bulk-status", h.Task.BulkUpdateStatus)
				r.Get("/tasks/{id}", h.Task.GetTask)
				r.Patch("/tasks/{id}", h.Task.UpdateTask)
				r.Delete("/tasks/{id}", h.Task.DeleteTask)
				r.Patch("/tasks/{id}/status", h.Task.UpdateTaskStatus)
				r.Patch("/tasks/{id}/assign", h.Task.AssignTask)

				r.Get("/notifications", h.Notification.ListNotifications)
				r.Get("/notifications/unread-count", h.Notification.UnreadCount)
				r.Patch("/notifications/read-all", h.Notification.MarkAllRead)
				r.Patch("/notifications/{id}/read", h.Notification.MarkRead)

				r.Get("/admin/stats", h.Admin.GetSystemStats)
				r.Get("/admin/activity", h.Admin.ListActivity)
			})
		})
	})

	return r
}

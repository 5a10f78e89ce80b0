package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"go-todo-service/internal/config"
	"go-todo-service/internal/handler"
	"go-todo-service/internal/middleware"
	"go-todo-service/internal/model"
)

type Handlers struct {
	Auth  *handler.AuthHandler
	Todo  *handler.TodoHandler
	Admin *handler.AdminHandler
	User  *handler.UserHandler
}

func New(cfg *config.Config, authMiddleware *middleware.AuthMiddleware, handlers Handlers) http.Handler {
	r := chi.NewRouter()
	rateLimitMiddleware := middleware.NewRateLimitMiddleware(cfg.RateLimitRPM, cfg.AuthRateLimitRPM)

	r.Use(middleware.Recovery)
	r.Use(middleware.Logging)
	r.Use(middleware.CORS(cfg.CORSOrigins))
	r.Use(rateLimitMiddleware.Handler)
	r.Use(middleware.Timeout(cfg.RequestTimeout))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})

	r.Route("/auth", func(auth chi.Router) {
		auth.Post("/", handlers.Auth.Register)
		auth.Post("/token", handlers.Auth.Token)
	})

	r.Route("/todos", func(todos chi.Router) {
		todos.Use(authMiddleware.RequireAuth)
		todos.Get("/", handlers.Todo.List)
		todos.Post("/", handlers.Todo.Create)
		todos.Get("/todo/{todo_id}", handlers.Todo.Get)
		todos.Put("/{todo_id}", handlers.Todo.Update)
		todos.Delete("/{todo_id}", handlers.Todo.Delete)
	})

	// Admin routes skip the owner filter, so they additionally require the
	// admin role, not just a valid token.
	r.Route("/admin", func(admin chi.Router) {
		admin.Use(authMiddleware.RequireAuth, authMiddleware.RequireRole(model.RoleAdmin))
		admin.Get("/todo", handlers.Admin.ListTodos)
		admin.Delete("/todo/{todo_id}", handlers.Admin.DeleteTodo)
	})

	r.Route("/user", func(user chi.Router) {
		user.Use(authMiddleware.RequireAuth)
		user.Get("/", handlers.User.Me)
		user.Put("/password", handlers.User.ChangePassword)
		user.Put("/phonenumber/{phone_number}", handlers.User.UpdatePhoneNumber)
	})

	return r
}

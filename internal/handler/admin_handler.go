package handler

import (
	"net/http"

	"go-todo-service/internal/service"
)

// AdminHandler serves the unscoped todo views. Its routes are role-gated to
// administrators by the router.
type AdminHandler struct {
	service *service.TodoService
}

func NewAdminHandler(service *service.TodoService) *AdminHandler {
	return &AdminHandler{service: service}
}

func (h *AdminHandler) ListTodos(w http.ResponseWriter, r *http.Request) {
	todos, err := h.service.ListAll(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, todos)
}

func (h *AdminHandler) DeleteTodo(w http.ResponseWriter, r *http.Request) {
	id, err := todoIDParam(r)
	if err != nil {
		writeError(w, err)
		return
	}

	if err := h.service.DeleteAny(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

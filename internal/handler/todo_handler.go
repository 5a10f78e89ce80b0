package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"go-todo-service/internal/model"
	"go-todo-service/internal/service"
	"go-todo-service/pkg/apierror"
)

type TodoHandler struct {
	service *service.TodoService
}

func NewTodoHandler(service *service.TodoService) *TodoHandler {
	return &TodoHandler{service: service}
}

func (h *TodoHandler) List(w http.ResponseWriter, r *http.Request) {
	caller, ok := identityFromRequest(w, r)
	if !ok {
		return
	}

	todos, err := h.service.List(r.Context(), caller)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, todos)
}

func (h *TodoHandler) Get(w http.ResponseWriter, r *http.Request) {
	caller, ok := identityFromRequest(w, r)
	if !ok {
		return
	}

	id, err := todoIDParam(r)
	if err != nil {
		writeError(w, err)
		return
	}

	todo, err := h.service.Get(r.Context(), caller, id)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, todo)
}

func (h *TodoHandler) Create(w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close()

	caller, ok := identityFromRequest(w, r)
	if !ok {
		return
	}

	var payload model.TodoRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeError(w, apierror.New("BAD_REQUEST", "Invalid JSON body", http.StatusBadRequest))
		return
	}

	todo, err := h.service.Create(r.Context(), caller, payload)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, todo)
}

func (h *TodoHandler) Update(w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close()

	caller, ok := identityFromRequest(w, r)
	if !ok {
		return
	}

	id, err := todoIDParam(r)
	if err != nil {
		writeError(w, err)
		return
	}

	var payload model.TodoRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeError(w, apierror.New("BAD_REQUEST", "Invalid JSON body", http.StatusBadRequest))
		return
	}

	if err := h.service.Update(r.Context(), caller, id, payload); err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, model.MessageResponse{Message: "Todo updated successfully"})
}

func (h *TodoHandler) Delete(w http.ResponseWriter, r *http.Request) {
	caller, ok := identityFromRequest(w, r)
	if !ok {
		return
	}

	id, err := todoIDParam(r)
	if err != nil {
		writeError(w, err)
		return
	}

	if err := h.service.Delete(r.Context(), caller, id); err != nil {
		writeError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func todoIDParam(r *http.Request) (int64, error) {
	raw := chi.URLParam(r, "todo_id")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, apierror.Validation(map[string]string{"todo_id": "todo_id must be a positive integer"})
	}
	return id, nil
}

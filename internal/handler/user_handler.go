package handler

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"go-todo-service/internal/model"
	"go-todo-service/internal/service"
	"go-todo-service/pkg/apierror"
)

type UserHandler struct {
	service *service.UserService
}

func NewUserHandler(service *service.UserService) *UserHandler {
	return &UserHandler{service: service}
}

// Me handles GET /user, returning the caller's own record.
func (h *UserHandler) Me(w http.ResponseWriter, r *http.Request) {
	caller, ok := identityFromRequest(w, r)
	if !ok {
		return
	}

	user, err := h.service.Get(r.Context(), caller.UserID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, user)
}

// ChangePassword handles PUT /user/password.
func (h *UserHandler) ChangePassword(w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close()

	caller, ok := identityFromRequest(w, r)
	if !ok {
		return
	}

	var payload model.PasswordChangeRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeError(w, apierror.New("BAD_REQUEST", "Invalid JSON body", http.StatusBadRequest))
		return
	}

	if err := h.service.ChangePassword(r.Context(), caller.UserID, payload.Password, payload.NewPassword); err != nil {
		writeError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// UpdatePhoneNumber handles PUT /user/phonenumber/{phone_number}.
func (h *UserHandler) UpdatePhoneNumber(w http.ResponseWriter, r *http.Request) {
	caller, ok := identityFromRequest(w, r)
	if !ok {
		return
	}

	if err := h.service.UpdatePhoneNumber(r.Context(), caller.UserID, chi.URLParam(r, "phone_number")); err != nil {
		writeError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

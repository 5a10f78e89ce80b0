package handler

import (
	"encoding/json"
	"net/http"

	"go-todo-service/internal/model"
	"go-todo-service/internal/service"
	"go-todo-service/pkg/apierror"
)

type AuthHandler struct {
	service *service.AuthService
}

func NewAuthHandler(service *service.AuthService) *AuthHandler {
	return &AuthHandler{service: service}
}

// Register handles POST /auth/.
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close()

	var payload model.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeError(w, apierror.New("BAD_REQUEST", "Invalid JSON body", http.StatusBadRequest))
		return
	}

	if _, err := h.service.Register(r.Context(), payload); err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, model.MessageResponse{Message: "User created successfully"})
}

// Token handles POST /auth/token. Credentials arrive form-encoded, matching
// the OAuth2 password-grant request shape.
func (h *AuthHandler) Token(w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close()

	if err := r.ParseForm(); err != nil {
		writeError(w, apierror.New("BAD_REQUEST", "Invalid form body", http.StatusBadRequest))
		return
	}

	token, err := h.service.Login(r.Context(), r.PostFormValue("username"), r.PostFormValue("password"))
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, model.TokenResponse{AccessToken: token, TokenType: "bearer"})
}

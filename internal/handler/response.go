package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"go-todo-service/internal/model"
	"go-todo-service/pkg/apierror"
)

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

// detailResponse is the error wire shape: {"detail": ...} with optional
// per-field messages on validation failures.
type detailResponse struct {
	Detail string            `json:"detail"`
	Fields map[string]string `json:"fields,omitempty"`
}

func writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	body := detailResponse{Detail: "Internal server error"}

	var apiErr *apierror.APIError
	switch {
	case errors.As(err, &apiErr):
		status = apiErr.HTTPStatus
		body.Detail = apiErr.Detail
		body.Fields = apiErr.Fields
	case errors.Is(err, model.ErrTodoNotFound):
		status = http.StatusNotFound
		body.Detail = "Todo not found"
	case errors.Is(err, model.ErrUserNotFound):
		status = http.StatusNotFound
		body.Detail = "User not found"
	case errors.Is(err, model.ErrUserAlreadyExists):
		status = http.StatusConflict
		body.Detail = "Username or email already registered"
	case errors.Is(err, model.ErrInvalidCredentials), errors.Is(err, model.ErrInvalidToken):
		status = http.StatusUnauthorized
		body.Detail = "Could not validate credentials"
	default:
		// Keep unclassified errors visible in the logs without leaking
		// internals to the client.
		slog.Error("unhandled error in writeError", "error", err.Error())
	}

	writeJSON(w, status, body)
}

package handler

import (
	"net/http"

	"go-todo-service/internal/middleware"
	"go-todo-service/internal/model"
)

// identityFromRequest pulls the resolved identity out of the request context.
// Protected routes always run behind RequireAuth, so a miss here means a
// wiring mistake; the request is rejected rather than served anonymously.
func identityFromRequest(w http.ResponseWriter, r *http.Request) (model.Identity, bool) {
	identity, ok := middleware.IdentityFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, detailResponse{Detail: "Authentication required"})
		return model.Identity{}, false
	}
	return identity, true
}

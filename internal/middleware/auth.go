package middleware

import (
	"context"
	"net/http"
	"strings"

	"go-todo-service/internal/model"
)

type tokenVerifier interface {
	Verify(tokenString string) (*model.Identity, error)
}

type contextKey string

const identityContextKey contextKey = "identity"

// AuthMiddleware resolves the caller's identity from the Authorization
// header on every protected request. The resolved identity lives in the
// request context only; nothing is cached between requests.
type AuthMiddleware struct {
	verifier tokenVerifier
}

func NewAuthMiddleware(verifier tokenVerifier) *AuthMiddleware {
	return &AuthMiddleware{verifier: verifier}
}

func (m *AuthMiddleware) RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := strings.TrimSpace(r.Header.Get("Authorization"))
		if header == "" || !strings.HasPrefix(strings.ToLower(header), "bearer ") {
			writeDetail(w, http.StatusUnauthorized, "Could not validate credentials")
			return
		}

		identity, err := m.verifier.Verify(strings.TrimSpace(header[7:]))
		if err != nil {
			writeDetail(w, http.StatusUnauthorized, "Could not validate credentials")
			return
		}

		ctx := context.WithValue(r.Context(), identityContextKey, *identity)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequireRole admits only callers whose resolved role is in allowedRoles.
// It must run after RequireAuth.
func (m *AuthMiddleware) RequireRole(allowedRoles ...string) func(http.Handler) http.Handler {
	roleSet := map[string]struct{}{}
	for _, role := range allowedRoles {
		roleSet[strings.ToLower(strings.TrimSpace(role))] = struct{}{}
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			identity, ok := IdentityFromContext(r.Context())
			if !ok {
				writeDetail(w, http.StatusUnauthorized, "Could not validate credentials")
				return
			}

			if _, allowed := roleSet[strings.ToLower(identity.Role)]; !allowed {
				writeDetail(w, http.StatusForbidden, "Insufficient permissions")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func IdentityFromContext(ctx context.Context) (model.Identity, bool) {
	identity, ok := ctx.Value(identityContextKey).(model.Identity)
	return identity, ok
}

func writeDetail(w http.ResponseWriter, status int, detail string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = jsonEncode(w, map[string]string{"detail": detail})
}

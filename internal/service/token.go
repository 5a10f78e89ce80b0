package service

import (
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"go-todo-service/internal/model"
	"go-todo-service/pkg/apierror"
)

// TokenService issues and verifies HS256-signed bearer tokens. The signing
// secret is injected at construction and read-only afterwards.
type TokenService struct {
	secret []byte
	ttl    time.Duration
}

func NewTokenService(secret string, ttl time.Duration) *TokenService {
	return &TokenService{secret: []byte(secret), ttl: ttl}
}

// TTL returns the configured validity window for issued tokens.
func (s *TokenService) TTL() time.Duration {
	return s.ttl
}

// Issue mints a signed token whose claims carry the subject username, the
// numeric user id, the role, and an expiration of now+ttl.
func (s *TokenService) Issue(username string, userID int64, role string, ttl time.Duration) (string, error) {
	now := time.Now().UTC()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":  username,
		"id":   userID,
		"role": role,
		"iat":  now.Unix(),
		"exp":  now.Add(ttl).Unix(),
	})

	return token.SignedString(s.secret)
}

// Verify checks the signature and expiration and decodes the claims into a
// resolved identity. Every failure mode — bad signature, malformed payload,
// expired token, missing sub or id claim — collapses into one uniform
// unauthorized error so callers cannot tell which check failed.
func (s *TokenService) Verify(tokenString string) (*model.Identity, error) {
	parsed, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errUnauthorized()
		}
		return s.secret, nil
	})
	if err != nil || !parsed.Valid {
		return nil, errUnauthorized()
	}

	claims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok {
		return nil, errUnauthorized()
	}

	// A valid signature is not enough: a signed token missing its subject or
	// id claims is still rejected, never resolved partially.
	username, _ := claims["sub"].(string)
	rawID, hasID := claims["id"].(float64)
	if username == "" || !hasID {
		return nil, errUnauthorized()
	}

	role, _ := claims["role"].(string)

	return &model.Identity{
		Username: username,
		UserID:   int64(rawID),
		Role:     role,
	}, nil
}

func errUnauthorized() *apierror.APIError {
	return apierror.New("UNAUTHORIZED", "Could not validate credentials", http.StatusUnauthorized)
}

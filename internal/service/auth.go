package service

import (
	"context"
	"errors"
	"strings"

	"go-todo-service/internal/model"
	"go-todo-service/pkg/apierror"
)

// UserStore is the slice of the user repository the auth layer depends on.
type UserStore interface {
	FindByID(ctx context.Context, id int64) (model.User, error)
	FindByUsername(ctx context.Context, username string) (model.User, error)
	Create(ctx context.Context, u model.User) (int64, error)
	UpdatePassword(ctx context.Context, userID int64, hashedPassword string) error
	UpdatePhoneNumber(ctx context.Context, userID int64, phoneNumber string) error
}

type AuthService struct {
	users  UserStore
	hasher *PasswordHasher
	tokens *TokenService
}

func NewAuthService(users UserStore, hasher *PasswordHasher, tokens *TokenService) *AuthService {
	return &AuthService{users: users, hasher: hasher, tokens: tokens}
}

// Register hashes the supplied password and persists a new active user. A
// duplicate username or email propagates as model.ErrUserAlreadyExists.
func (s *AuthService) Register(ctx context.Context, req model.RegisterRequest) (int64, error) {
	fields := map[string]string{}
	if strings.TrimSpace(req.Username) == "" {
		fields["username"] = "username is required"
	}
	if strings.TrimSpace(req.Email) == "" {
		fields["email"] = "email is required"
	}
	if req.Password == "" {
		fields["password"] = "password is required"
	}
	if len(fields) > 0 {
		return 0, apierror.Validation(fields)
	}

	role := strings.ToLower(strings.TrimSpace(req.Role))
	if role == "" {
		role = model.RoleUser
	}

	hashed, err := s.hasher.Hash(req.Password)
	if err != nil {
		return 0, err
	}

	return s.users.Create(ctx, model.User{
		Username:       strings.TrimSpace(req.Username),
		Email:          strings.TrimSpace(req.Email),
		FirstName:      req.FirstName,
		LastName:       req.LastName,
		HashedPassword: hashed,
		Role:           role,
		IsActive:       true,
		PhoneNumber:    req.PhoneNumber,
	})
}

// Authenticate looks the user up and checks the password. The bool is a
// uniform negative: an unknown username and a wrong password both come back
// as (zero, false, nil), indistinguishable to the caller. The error is
// reserved for store failures.
func (s *AuthService) Authenticate(ctx context.Context, username string, password string) (model.User, bool, error) {
	user, err := s.users.FindByUsername(ctx, username)
	if errors.Is(err, model.ErrUserNotFound) {
		return model.User{}, false, nil
	}
	if err != nil {
		return model.User{}, false, err
	}

	if !s.hasher.Verify(password, user.HashedPassword) {
		return model.User{}, false, nil
	}

	return user, true, nil
}

// Login authenticates the credentials and issues a bearer token with the
// configured TTL. A failed authentication maps to a generic unauthorized
// error regardless of why it failed.
func (s *AuthService) Login(ctx context.Context, username string, password string) (string, error) {
	user, ok, err := s.Authenticate(ctx, username, password)
	if err != nil {
		return "", err
	}
	if !ok {
		return "", errUnauthorized()
	}

	return s.tokens.Issue(user.Username, user.ID, user.Role, s.tokens.TTL())
}

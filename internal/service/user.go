package service

import (
	"context"
	"net/http"
	"strings"

	"go-todo-service/internal/model"
	"go-todo-service/pkg/apierror"
)

// UserService serves the profile operations of the authenticated caller.
type UserService struct {
	users  UserStore
	hasher *PasswordHasher
}

func NewUserService(users UserStore, hasher *PasswordHasher) *UserService {
	return &UserService{users: users, hasher: hasher}
}

func (s *UserService) Get(ctx context.Context, userID int64) (model.User, error) {
	return s.users.FindByID(ctx, userID)
}

// ChangePassword verifies the current password before storing a hash of the
// new one. A wrong current password is unauthorized, not a validation error.
func (s *UserService) ChangePassword(ctx context.Context, userID int64, current string, next string) error {
	if next == "" {
		return apierror.Validation(map[string]string{"new_password": "new_password is required"})
	}

	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return err
	}

	if !s.hasher.Verify(current, user.HashedPassword) {
		return apierror.New("UNAUTHORIZED", "Error on password change", http.StatusUnauthorized)
	}

	hashed, err := s.hasher.Hash(next)
	if err != nil {
		return err
	}

	return s.users.UpdatePassword(ctx, userID, hashed)
}

func (s *UserService) UpdatePhoneNumber(ctx context.Context, userID int64, phoneNumber string) error {
	if strings.TrimSpace(phoneNumber) == "" {
		return apierror.Validation(map[string]string{"phone_number": "phone_number is required"})
	}

	return s.users.UpdatePhoneNumber(ctx, userID, strings.TrimSpace(phoneNumber))
}

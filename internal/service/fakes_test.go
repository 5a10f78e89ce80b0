package service

import (
	"context"
	"strings"

	"go-todo-service/internal/model"
)

// In-memory stores standing in for the pgx repositories.

type fakeUserStore struct {
	users  map[int64]model.User
	nextID int64
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{users: map[int64]model.User{}, nextID: 1}
}

func (s *fakeUserStore) FindByID(_ context.Context, id int64) (model.User, error) {
	u, ok := s.users[id]
	if !ok {
		return model.User{}, model.ErrUserNotFound
	}
	return u, nil
}

func (s *fakeUserStore) FindByUsername(_ context.Context, username string) (model.User, error) {
	for _, u := range s.users {
		if strings.EqualFold(u.Username, strings.TrimSpace(username)) {
			return u, nil
		}
	}
	return model.User{}, model.ErrUserNotFound
}

func (s *fakeUserStore) Create(_ context.Context, u model.User) (int64, error) {
	for _, existing := range s.users {
		if strings.EqualFold(existing.Username, u.Username) || strings.EqualFold(existing.Email, u.Email) {
			return 0, model.ErrUserAlreadyExists
		}
	}

	u.ID = s.nextID
	s.nextID++
	s.users[u.ID] = u
	return u.ID, nil
}

func (s *fakeUserStore) UpdatePassword(_ context.Context, userID int64, hashedPassword string) error {
	u, ok := s.users[userID]
	if !ok {
		return model.ErrUserNotFound
	}
	u.HashedPassword = hashedPassword
	s.users[userID] = u
	return nil
}

func (s *fakeUserStore) UpdatePhoneNumber(_ context.Context, userID int64, phoneNumber string) error {
	u, ok := s.users[userID]
	if !ok {
		return model.ErrUserNotFound
	}
	u.PhoneNumber = phoneNumber
	s.users[userID] = u
	return nil
}

type fakeTodoStore struct {
	todos  map[int64]model.Todo
	nextID int64
}

func newFakeTodoStore() *fakeTodoStore {
	return &fakeTodoStore{todos: map[int64]model.Todo{}, nextID: 1}
}

func (s *fakeTodoStore) ListByOwner(_ context.Context, ownerID int64) ([]model.Todo, error) {
	out := make([]model.Todo, 0)
	for _, t := range s.todos {
		if t.OwnerID == ownerID {
			out = append(out, t)
		}
	}
	return out, nil
}

func (s *fakeTodoStore) FindByIDAndOwner(_ context.Context, id int64, ownerID int64) (model.Todo, error) {
	t, ok := s.todos[id]
	if !ok || t.OwnerID != ownerID {
		return model.Todo{}, model.ErrTodoNotFound
	}
	return t, nil
}

func (s *fakeTodoStore) Create(_ context.Context, t model.Todo) (int64, error) {
	t.ID = s.nextID
	s.nextID++
	s.todos[t.ID] = t
	return t.ID, nil
}

func (s *fakeTodoStore) Update(_ context.Context, t model.Todo) error {
	existing, ok := s.todos[t.ID]
	if !ok || existing.OwnerID != t.OwnerID {
		return model.ErrTodoNotFound
	}
	s.todos[t.ID] = t
	return nil
}

func (s *fakeTodoStore) Delete(_ context.Context, id int64, ownerID int64) error {
	t, ok := s.todos[id]
	if !ok || t.OwnerID != ownerID {
		return model.ErrTodoNotFound
	}
	delete(s.todos, id)
	return nil
}

func (s *fakeTodoStore) ListAll(_ context.Context) ([]model.Todo, error) {
	out := make([]model.Todo, 0, len(s.todos))
	for _, t := range s.todos {
		out = append(out, t)
	}
	return out, nil
}

func (s *fakeTodoStore) DeleteAny(_ context.Context, id int64) error {
	if _, ok := s.todos[id]; !ok {
		return model.ErrTodoNotFound
	}
	delete(s.todos, id)
	return nil
}

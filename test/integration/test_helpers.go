//go:build integration

package integration

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"go-todo-service/internal/config"
	"go-todo-service/internal/handler"
	"go-todo-service/internal/middleware"
	"go-todo-service/internal/model"
	"go-todo-service/internal/router"
	"go-todo-service/internal/service"
)

const testSecret = "test-secret"

// newTestServer wires the full router over in-memory stores, so the API
// scenarios run without a database.
func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()

	cfg := &config.Config{
		ServerPort:       "8080",
		RequestTimeout:   30 * time.Second,
		JWTSecret:        testSecret,
		JWTTTL:           20 * time.Minute,
		BcryptCost:       4,
		CORSOrigins:      []string{"*"},
		RateLimitRPM:     1000,
		AuthRateLimitRPM: 1000,
	}

	hasher := service.NewPasswordHasher(cfg.BcryptCost)
	tokenService := service.NewTokenService(cfg.JWTSecret, cfg.JWTTTL)

	userStore := newMemUserStore()
	authService := service.NewAuthService(userStore, hasher, tokenService)
	userService := service.NewUserService(userStore, hasher)
	todoService := service.NewTodoService(newMemTodoStore())

	authMiddleware := middleware.NewAuthMiddleware(tokenService)

	server := httptest.NewServer(router.New(cfg, authMiddleware, router.Handlers{
		Auth:  handler.NewAuthHandler(authService),
		Todo:  handler.NewTodoHandler(todoService),
		Admin: handler.NewAdminHandler(todoService),
		User:  handler.NewUserHandler(userService),
	}))
	t.Cleanup(server.Close)

	return server
}

func registerUser(t *testing.T, server *httptest.Server, username string, password string, role string) {
	t.Helper()

	payload, err := json.Marshal(map[string]string{
		"username":   username,
		"email":      username + "@example.com",
		"first_name": "Test",
		"last_name":  "User",
		"password":   password,
		"role":       role,
	})
	require.NoError(t, err)

	resp, err := http.Post(server.URL+"/auth/", "application/json", bytes.NewReader(payload))
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusCreated, resp.StatusCode)
}

func loginUser(t *testing.T, server *httptest.Server, username string, password string) string {
	t.Helper()

	form := url.Values{"username": {username}, "password": {password}}
	resp, err := http.Post(server.URL+"/auth/token", "application/x-www-form-urlencoded", strings.NewReader(form.Encode()))
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body model.TokenResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	require.Equal(t, "bearer", body.TokenType)
	require.NotEmpty(t, body.AccessToken)
	return body.AccessToken
}

func doAuthRequest(t *testing.T, method string, targetURL string, token string, body []byte) *http.Response {
	t.Helper()

	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}

	req, err := http.NewRequest(method, targetURL, reader)
	require.NoError(t, err)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	t.Cleanup(func() { _ = resp.Body.Close() })
	return resp
}

func decodeJSON[T any](t *testing.T, resp *http.Response) T {
	t.Helper()

	var out T
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

// In-memory stores implementing the service store interfaces.

type memUserStore struct {
	users  map[int64]model.User
	nextID int64
}

func newMemUserStore() *memUserStore {
	return &memUserStore{users: map[int64]model.User{}, nextID: 1}
}

func (s *memUserStore) FindByID(_ context.Context, id int64) (model.User, error) {
	u, ok := s.users[id]
	if !ok {
		return model.User{}, model.ErrUserNotFound
	}
	return u, nil
}

func (s *memUserStore) FindByUsername(_ context.Context, username string) (model.User, error) {
	for _, u := range s.users {
		if strings.EqualFold(u.Username, strings.TrimSpace(username)) {
			return u, nil
		}
	}
	return model.User{}, model.ErrUserNotFound
}

func (s *memUserStore) Create(_ context.Context, u model.User) (int64, error) {
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

func (s *memUserStore) UpdatePassword(_ context.Context, userID int64, hashedPassword string) error {
	u, ok := s.users[userID]
	if !ok {
		return model.ErrUserNotFound
	}
	u.HashedPassword = hashedPassword
	s.users[userID] = u
	return nil
}

func (s *memUserStore) UpdatePhoneNumber(_ context.Context, userID int64, phoneNumber string) error {
	u, ok := s.users[userID]
	if !ok {
		return model.ErrUserNotFound
	}
	u.PhoneNumber = phoneNumber
	s.users[userID] = u
	return nil
}

type memTodoStore struct {
	todos  map[int64]model.Todo
	nextID int64
}

func newMemTodoStore() *memTodoStore {
	return &memTodoStore{todos: map[int64]model.Todo{}, nextID: 1}
}

func (s *memTodoStore) ListByOwner(_ context.Context, ownerID int64) ([]model.Todo, error) {
	out := make([]model.Todo, 0)
	for _, todo := range s.todos {
		if todo.OwnerID == ownerID {
			out = append(out, todo)
		}
	}
	return out, nil
}

func (s *memTodoStore) FindByIDAndOwner(_ context.Context, id int64, ownerID int64) (model.Todo, error) {
	todo, ok := s.todos[id]
	if !ok || todo.OwnerID != ownerID {
		return model.Todo{}, model.ErrTodoNotFound
	}
	return todo, nil
}

func (s *memTodoStore) Create(_ context.Context, todo model.Todo) (int64, error) {
	todo.ID = s.nextID
	s.nextID++
	s.todos[todo.ID] = todo
	return todo.ID, nil
}

func (s *memTodoStore) Update(_ context.Context, todo model.Todo) error {
	existing, ok := s.todos[todo.ID]
	if !ok || existing.OwnerID != todo.OwnerID {
		return model.ErrTodoNotFound
	}
	s.todos[todo.ID] = todo
	return nil
}

func (s *memTodoStore) Delete(_ context.Context, id int64, ownerID int64) error {
	todo, ok := s.todos[id]
	if !ok || todo.OwnerID != ownerID {
		return model.ErrTodoNotFound
	}
	delete(s.todos, id)
	return nil
}

func (s *memTodoStore) ListAll(_ context.Context) ([]model.Todo, error) {
	out := make([]model.Todo, 0, len(s.todos))
	for _, todo := range s.todos {
		out = append(out, todo)
	}
	return out, nil
}

func (s *memTodoStore) DeleteAny(_ context.Context, id int64) error {
	if _, ok := s.todos[id]; !ok {
		return model.ErrTodoNotFound
	}
	delete(s.todos, id)
	return nil
}

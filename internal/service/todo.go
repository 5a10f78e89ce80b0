package service

import (
	"context"
	"fmt"
	"strings"

	"go-todo-service/internal/model"
	"go-todo-service/pkg/apierror"
)

// TodoStore is the slice of the todo repository the service depends on.
type TodoStore interface {
	ListByOwner(ctx context.Context, ownerID int64) ([]model.Todo, error)
	FindByIDAndOwner(ctx context.Context, id int64, ownerID int64) (model.Todo, error)
	Create(ctx context.Context, t model.Todo) (int64, error)
	Update(ctx context.Context, t model.Todo) error
	Delete(ctx context.Context, id int64, ownerID int64) error
	ListAll(ctx context.Context) ([]model.Todo, error)
	DeleteAny(ctx context.Context, id int64) error
}

// TodoService applies ownership filtering on behalf of the resolved caller.
// The admin methods bypass the owner filter and are reachable only through
// role-gated routes.
type TodoService struct {
	todos TodoStore
}

func NewTodoService(todos TodoStore) *TodoService {
	return &TodoService{todos: todos}
}

func (s *TodoService) List(ctx context.Context, caller model.Identity) ([]model.Todo, error) {
	return s.todos.ListByOwner(ctx, caller.UserID)
}

func (s *TodoService) Get(ctx context.Context, caller model.Identity, id int64) (model.Todo, error) {
	return s.todos.FindByIDAndOwner(ctx, id, caller.UserID)
}

func (s *TodoService) Create(ctx context.Context, caller model.Identity, req model.TodoRequest) (model.Todo, error) {
	if err := validateTodoRequest(req); err != nil {
		return model.Todo{}, err
	}

	todo := model.Todo{
		Title:       req.Title,
		Description: req.Description,
		Priority:    req.Priority,
		Complete:    req.Complete,
		OwnerID:     caller.UserID,
	}

	id, err := s.todos.Create(ctx, todo)
	if err != nil {
		return model.Todo{}, err
	}

	todo.ID = id
	return todo, nil
}

func (s *TodoService) Update(ctx context.Context, caller model.Identity, id int64, req model.TodoRequest) error {
	if err := validateTodoRequest(req); err != nil {
		return err
	}

	return s.todos.Update(ctx, model.Todo{
		ID:          id,
		Title:       req.Title,
		Description: req.Description,
		Priority:    req.Priority,
		Complete:    req.Complete,
		OwnerID:     caller.UserID,
	})
}

func (s *TodoService) Delete(ctx context.Context, caller model.Identity, id int64) error {
	return s.todos.Delete(ctx, id, caller.UserID)
}

func (s *TodoService) ListAll(ctx context.Context) ([]model.Todo, error) {
	return s.todos.ListAll(ctx)
}

func (s *TodoService) DeleteAny(ctx context.Context, id int64) error {
	return s.todos.DeleteAny(ctx, id)
}

func validateTodoRequest(req model.TodoRequest) error {
	fields := map[string]string{}

	if len(strings.TrimSpace(req.Title)) < 3 {
		fields["title"] = "title must be at least 3 characters"
	}
	if l := len(strings.TrimSpace(req.Description)); l < 3 || l > 100 {
		fields["description"] = "description must be between 3 and 100 characters"
	}
	if req.Priority < 1 || req.Priority > 5 {
		fields["priority"] = fmt.Sprintf("priority must be between 1 and 5, got %d", req.Priority)
	}

	if len(fields) > 0 {
		return apierror.Validation(fields)
	}
	return nil
}

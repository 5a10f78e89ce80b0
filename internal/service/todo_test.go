package service

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-todo-service/internal/model"
	"go-todo-service/pkg/apierror"
)

var (
	alice = model.Identity{Username: "alice", UserID: 1, Role: model.RoleUser}
	bob   = model.Identity{Username: "bob", UserID: 2, Role: model.RoleUser}

	validTodo = model.TodoRequest{Title: "Buy milk", Description: "Two liters", Priority: 3}
)

func TestTodoService_CreateSetsOwner(t *testing.T) {
	svc := NewTodoService(newFakeTodoStore())

	todo, err := svc.Create(context.Background(), alice, validTodo)
	require.NoError(t, err)
	assert.Equal(t, int64(1), todo.ID)
	assert.Equal(t, alice.UserID, todo.OwnerID)
}

func TestTodoService_CreateValidation(t *testing.T) {
	svc := NewTodoService(newFakeTodoStore())

	cases := []struct {
		name  string
		req   model.TodoRequest
		field string
	}{
		{"short title", model.TodoRequest{Title: "ab", Description: "Two liters", Priority: 3}, "title"},
		{"short description", model.TodoRequest{Title: "Buy milk", Description: "ab", Priority: 3}, "description"},
		{"long description", model.TodoRequest{Title: "Buy milk", Description: strings.Repeat("x", 101), Priority: 3}, "description"},
		{"priority too low", model.TodoRequest{Title: "Buy milk", Description: "Two liters", Priority: 0}, "priority"},
		{"priority too high", model.TodoRequest{Title: "Buy milk", Description: "Two liters", Priority: 6}, "priority"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Create(context.Background(), alice, tc.req)

			var apiErr *apierror.APIError
			require.ErrorAs(t, err, &apiErr)
			assert.Equal(t, 422, apiErr.HTTPStatus)
			assert.Contains(t, apiErr.Fields, tc.field)
		})
	}
}

// A record owned by someone else comes back as not-found, never as a
// forbidden that would confirm its existence.
func TestTodoService_OwnershipIsolation(t *testing.T) {
	svc := NewTodoService(newFakeTodoStore())

	created, err := svc.Create(context.Background(), alice, validTodo)
	require.NoError(t, err)

	_, err = svc.Get(context.Background(), bob, created.ID)
	assert.ErrorIs(t, err, model.ErrTodoNotFound)

	err = svc.Update(context.Background(), bob, created.ID, validTodo)
	assert.ErrorIs(t, err, model.ErrTodoNotFound)

	err = svc.Delete(context.Background(), bob, created.ID)
	assert.ErrorIs(t, err, model.ErrTodoNotFound)

	// Still readable by the owner.
	got, err := svc.Get(context.Background(), alice, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created, got)
}

func TestTodoService_ListFiltersByOwner(t *testing.T) {
	svc := NewTodoService(newFakeTodoStore())

	_, err := svc.Create(context.Background(), alice, validTodo)
	require.NoError(t, err)
	_, err = svc.Create(context.Background(), bob, validTodo)
	require.NoError(t, err)

	todos, err := svc.List(context.Background(), alice)
	require.NoError(t, err)
	require.Len(t, todos, 1)
	assert.Equal(t, alice.UserID, todos[0].OwnerID)
}

func TestTodoService_UpdateNotFound(t *testing.T) {
	svc := NewTodoService(newFakeTodoStore())

	err := svc.Update(context.Background(), alice, 999, validTodo)
	assert.ErrorIs(t, err, model.ErrTodoNotFound)
}

func TestTodoService_DeleteNotFound(t *testing.T) {
	svc := NewTodoService(newFakeTodoStore())

	err := svc.Delete(context.Background(), alice, 999)
	assert.ErrorIs(t, err, model.ErrTodoNotFound)
}

func TestTodoService_AdminBypassesOwnerFilter(t *testing.T) {
	svc := NewTodoService(newFakeTodoStore())

	_, err := svc.Create(context.Background(), alice, validTodo)
	require.NoError(t, err)
	created, err := svc.Create(context.Background(), bob, validTodo)
	require.NoError(t, err)

	all, err := svc.ListAll(context.Background())
	require.NoError(t, err)
	assert.Len(t, all, 2)

	require.NoError(t, svc.DeleteAny(context.Background(), created.ID))

	all, err = svc.ListAll(context.Background())
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestTodoService_AdminDeleteNotFound(t *testing.T) {
	svc := NewTodoService(newFakeTodoStore())

	err := svc.DeleteAny(context.Background(), 999)
	assert.ErrorIs(t, err, model.ErrTodoNotFound)
}

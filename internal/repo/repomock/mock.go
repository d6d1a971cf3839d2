// Package repomock holds testify mocks of the repo interfaces.
package repomock

import (
	"context"

	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/BuzzLyutic/todo-api/internal/model"
)

// TodoRepository - мок репозитория задач
type TodoRepository struct {
	mock.Mock
}

func (m *TodoRepository) List(ctx context.Context) ([]model.Todo, error) {
	args := m.Called(ctx)
	if todos := args.Get(0); todos != nil {
		return todos.([]model.Todo), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *TodoRepository) Get(ctx context.Context, id primitive.ObjectID) (model.Todo, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(model.Todo), args.Error(1)
}

func (m *TodoRepository) Create(ctx context.Context, t model.Todo) (primitive.ObjectID, error) {
	args := m.Called(ctx, t)
	return args.Get(0).(primitive.ObjectID), args.Error(1)
}

func (m *TodoRepository) Update(ctx context.Context, id primitive.ObjectID, t model.Todo) error {
	args := m.Called(ctx, id, t)
	return args.Error(0)
}

func (m *TodoRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type CategoryRepository struct {
	mock.Mock
}

func (m *CategoryRepository) List(ctx context.Context) ([]model.Category, error) {
	args := m.Called(ctx)
	if categories := args.Get(0); categories != nil {
		return categories.([]model.Category), args.Error(1)
	}
	return nil, args.Error(1)
}

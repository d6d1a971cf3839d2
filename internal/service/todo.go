package service

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/BuzzLyutic/todo-api/internal/model"
	"github.com/BuzzLyutic/todo-api/internal/repo"
)

var (
	ErrInvalidID = errors.New("invalid id format")
)

type TodoService struct {
	todos      repo.TodoRepository
	categories repo.CategoryRepository
}

func NewTodoService(todos repo.TodoRepository, categories repo.CategoryRepository) *TodoService {
	return &TodoService{todos: todos, categories: categories}
}

func (s *TodoService) List(ctx context.Context) ([]model.Todo, error) {
	return s.todos.List(ctx)
}

func (s *TodoService) Get(ctx context.Context, id string) (model.Todo, error) {
	oid, err := ParseID(id)
	if err != nil {
		return model.Todo{}, err
	}
	return s.todos.Get(ctx, oid)
}

// Create не валидирует поля: priority, due_date и т.д. сохраняются как пришли
func (s *TodoService) Create(ctx context.Context, t model.Todo) (primitive.ObjectID, error) {
	t.ID = nil
	return s.todos.Create(ctx, t)
}

// Update проверяет только формат id, существование документа не проверяется
func (s *TodoService) Update(ctx context.Context, id string, t model.Todo) error {
	oid, err := ParseID(id)
	if err != nil {
		return err
	}
	t.ID = nil
	return s.todos.Update(ctx, oid, t)
}

func (s *TodoService) Delete(ctx context.Context, id string) error {
	oid, err := ParseID(id)
	if err != nil {
		return err
	}
	return s.todos.Delete(ctx, oid)
}

func (s *TodoService) ListCategories(ctx context.Context) ([]model.Category, error) {
	return s.categories.List(ctx)
}

// ParseID accepts only the 24-character hex form of an ObjectID.
func ParseID(id string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, ErrInvalidID
	}
	return oid, nil
}

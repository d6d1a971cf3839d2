package repo

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/BuzzLyutic/todo-api/internal/model"
)

// TodoRepository определяет интерфейс для работы с задачами
type TodoRepository interface {
	List(ctx context.Context) ([]model.Todo, error)
	Get(ctx context.Context, id primitive.ObjectID) (model.Todo, error)
	Create(ctx context.Context, t model.Todo) (primitive.ObjectID, error)
	Update(ctx context.Context, id primitive.ObjectID, t model.Todo) error
	Delete(ctx context.Context, id primitive.ObjectID) error
}

// CategoryRepository только читает категории, записи заводятся напрямую в БД
type CategoryRepository interface {
	List(ctx context.Context) ([]model.Category, error)
}

package repo

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/BuzzLyutic/todo-api/internal/model"
)

const (
	TodosCollection      = "todos"
	CategoriesCollection = "categories"
)

var ErrNotFound = errors.New("not found")

type TodoRepo struct { // Репозиторий для работы непосредственно с коллекцией todos
	coll *mongo.Collection
}

func NewTodoRepo(db *mongo.Database) *TodoRepo {
	return &TodoRepo{
		coll: db.Collection(TodosCollection),
	}
}

func (r *TodoRepo) List(ctx context.Context) ([]model.Todo, error) {
	cur, err := r.coll.Find(ctx, bson.D{})
	if err != nil {
		return nil, err
	}

	todos := make([]model.Todo, 0)
	if err := cur.All(ctx, &todos); err != nil {
		return nil, err
	}
	return todos, nil
}

func (r *TodoRepo) Get(ctx context.Context, id primitive.ObjectID) (model.Todo, error) {
	var t model.Todo
	err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&t)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return t, ErrNotFound
	}
	return t, err
}

// Create вставляет документ, идентификатор всегда выдает БД
func (r *TodoRepo) Create(ctx context.Context, t model.Todo) (primitive.ObjectID, error) {
	t.ID = nil
	res, err := r.coll.InsertOne(ctx, t)
	if err != nil {
		return primitive.NilObjectID, err
	}

	id, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return primitive.NilObjectID, fmt.Errorf("unexpected inserted id type %T", res.InsertedID)
	}
	return id, nil
}

// Update replaces every field of the document via $set. Zero matched
// documents is not an error.
func (r *TodoRepo) Update(ctx context.Context, id primitive.ObjectID, t model.Todo) error {
	t.ID = nil // _id неизменяем
	_, err := r.coll.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": t})
	return err
}

func (r *TodoRepo) Delete(ctx context.Context, id primitive.ObjectID) error {
	_, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	return err
}

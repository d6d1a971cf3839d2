// internal/repo/todo_test.go
package repo

import (
	"context"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/BuzzLyutic/todo-api/internal/model"
)

func setupTestDB(t *testing.T) *mongo.Database {
	uri := os.Getenv("TEST_MONGODB_URI")
	if uri == "" {
		t.Skip("TEST_MONGODB_URI not set")
	}

	ctx := context.Background()
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { client.Disconnect(ctx) })

	db := client.Database("todoapp_repo_test")
	// Очистка
	require.NoError(t, db.Drop(ctx))
	return db
}

func TestTodoRepo_CreateAndGet(t *testing.T) {
	db := setupTestDB(t)
	repo := NewTodoRepo(db)
	ctx := context.Background()

	due := "2026-01-01"
	preset := primitive.NewObjectID()
	id, err := repo.Create(ctx, model.Todo{ID: &preset, Title: "Test", Priority: "high", DueDate: &due})
	require.NoError(t, err)
	assert.False(t, id.IsZero())
	assert.NotEqual(t, preset, id, "client supplied id must be ignored")

	got, err := repo.Get(ctx, id)
	require.NoError(t, err)
	require.NotNil(t, got.ID)
	assert.Equal(t, id, *got.ID)
	assert.Equal(t, "Test", got.Title)
	require.NotNil(t, got.DueDate)
	assert.Equal(t, due, *got.DueDate)
}

func TestTodoRepo_GetMissing(t *testing.T) {
	db := setupTestDB(t)
	repo := NewTodoRepo(db)

	_, err := repo.Get(context.Background(), primitive.NewObjectID())
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestTodoRepo_ListEmpty(t *testing.T) {
	db := setupTestDB(t)
	repo := NewTodoRepo(db)

	todos, err := repo.List(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, todos)
	assert.Empty(t, todos)
}

func TestTodoRepo_UpdateAndDelete(t *testing.T) {
	db := setupTestDB(t)
	repo := NewTodoRepo(db)
	ctx := context.Background()

	id, err := repo.Create(ctx, model.Todo{Title: "Original", Priority: "low"})
	require.NoError(t, err)

	require.NoError(t, repo.Update(ctx, id, model.Todo{Title: "Updated", Priority: "high", Completed: true}))

	got, err := repo.Get(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "Updated", got.Title)
	assert.True(t, got.Completed)
	assert.Nil(t, got.DueDate)

	// несуществующий id не ошибка
	require.NoError(t, repo.Update(ctx, primitive.NewObjectID(), model.Todo{Title: "ghost"}))

	require.NoError(t, repo.Delete(ctx, id))
	require.NoError(t, repo.Delete(ctx, id))

	todos, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, todos)
}

func TestCategoryRepo_List(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	_, err := db.Collection(CategoriesCollection).InsertMany(ctx, []interface{}{
		bson.M{"name": "work", "color": "#ff0000"},
		bson.M{"name": "home", "color": "#00ff00"},
	})
	require.NoError(t, err)

	categories, err := NewCategoryRepo(db).List(ctx)
	require.NoError(t, err)
	assert.ElementsMatch(t, []model.Category{
		{Name: "work", Color: "#ff0000"},
		{Name: "home", Color: "#00ff00"},
	}, categories)
}

package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/BuzzLyutic/todo-api/internal/model"
)

var errTrailingData = errors.New("unexpected data after JSON body")

// todoRequest - тело POST/PUT. Обязательные поля указателями, чтобы отличить
// отсутствующий ключ (или null) от нулевого значения. _id не читается.
type todoRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Priority    *string `json:"priority"`
	Category    *string `json:"category"`
	DueDate     *string `json:"due_date"`
	Completed   *bool   `json:"completed"`
	CreatedAt   *string `json:"created_at"`
}

// decodeTodo reads exactly one JSON object from body. Every field except
// due_date must be present and non-null.
func decodeTodo(body io.Reader) (model.Todo, error) {
	dec := json.NewDecoder(body)

	var req todoRequest
	if err := dec.Decode(&req); err != nil {
		return model.Todo{}, err
	}
	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return model.Todo{}, errTrailingData
	}

	required := []struct {
		name    string
		present bool
	}{
		{"title", req.Title != nil},
		{"description", req.Description != nil},
		{"priority", req.Priority != nil},
		{"category", req.Category != nil},
		{"completed", req.Completed != nil},
		{"created_at", req.CreatedAt != nil},
	}
	for _, f := range required {
		if !f.present {
			return model.Todo{}, fmt.Errorf("missing field `%s`", f.name)
		}
	}

	return model.Todo{
		Title:       *req.Title,
		Description: *req.Description,
		Priority:    *req.Priority,
		Category:    *req.Category,
		DueDate:     req.DueDate,
		Completed:   *req.Completed,
		CreatedAt:   *req.CreatedAt,
	}, nil
}

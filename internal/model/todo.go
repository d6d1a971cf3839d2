package model

import "go.mongodb.org/mongo-driver/bson/primitive"

// Todo is a single item of the todo list. ID is assigned by the store on insert.
type Todo struct {
	ID          *primitive.ObjectID `json:"_id,omitempty" bson:"_id,omitempty"`
	Title       string              `json:"title" bson:"title"`
	Description string              `json:"description" bson:"description"`
	Priority    string              `json:"priority" bson:"priority"`
	Category    string              `json:"category" bson:"category"`
	DueDate     *string             `json:"due_date" bson:"due_date"`
	Completed   bool                `json:"completed" bson:"completed"`
	CreatedAt   string              `json:"created_at" bson:"created_at"`
}

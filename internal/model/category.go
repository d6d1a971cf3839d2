package model

// Category is read-only through the API; records are seeded directly into the store.
type Category struct {
	Name  string `json:"name" bson:"name"`
	Color string `json:"color" bson:"color"`
}

package domain

import "time"

// Product is a catalog item. ID is the external lookup key, generated at
// creation; the store's own document id is never exposed.
type Product struct {
	ID              string            `json:"id" bson:"id"`
	Name            string            `json:"name" bson:"name"`
	Description     string            `json:"description" bson:"description"`
	Price           float64           `json:"price" bson:"price"`
	Category        string            `json:"category" bson:"category"`
	ImageURL        string            `json:"image_url" bson:"image_url"`
	ModelImageURL   string            `json:"model_image_url" bson:"model_image_url"`
	MaterialDetails map[string]string `json:"material_details" bson:"material_details"`
	IsFeatured      bool              `json:"is_featured" bson:"is_featured"`
	CreatedAt       time.Time         `json:"created_at" bson:"created_at"`
}

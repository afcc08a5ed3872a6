package product

import (
	"context"

	"luxe-jewelry-api/internal/domain"
)

// ListLimit caps unpaginated list responses.
const ListLimit = 1000

type Repository interface {
	List(ctx context.Context) ([]domain.Product, error)
	ListFeatured(ctx context.Context) ([]domain.Product, error)
	GetByID(ctx context.Context, id string) (*domain.Product, error)
	Insert(ctx context.Context, p domain.Product) error
	InsertMany(ctx context.Context, ps []domain.Product) error
	// Update applies only the given fields to the record; keys are the
	// stored field names. Fields not present are left untouched.
	Update(ctx context.Context, id string, fields map[string]interface{}) error
	// Delete removes the record, returning domain.ErrNotFound when nothing
	// was actually deleted.
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int64, error)
}

package contact

import (
	"context"

	"luxe-jewelry-api/internal/domain"
)

// ListLimit caps unpaginated list responses.
const ListLimit = 1000

type Repository interface {
	Insert(ctx context.Context, c domain.Contact) error
	List(ctx context.Context) ([]domain.Contact, error)
}

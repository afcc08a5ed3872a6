package contact

import (
	"context"
	"time"

	"github.com/google/uuid"

	"luxe-jewelry-api/internal/domain"
	contactrepo "luxe-jewelry-api/internal/repository/contact"
)

type Service struct {
	repo contactrepo.Repository
}

func New(repo contactrepo.Repository) *Service {
	return &Service{repo: repo}
}

type CreateInput struct {
	Name    string
	Email   string
	Phone   string
	Message string
}

// Create stores a lead. Required-field presence is enforced by the HTTP
// binding layer; no format validation happens here.
func (s *Service) Create(ctx context.Context, in CreateInput) (*domain.Contact, error) {
	c := domain.Contact{
		ID:        uuid.NewString(),
		Name:      in.Name,
		Email:     in.Email,
		Phone:     in.Phone,
		Message:   in.Message,
		CreatedAt: time.Now().UTC(),
	}

	if err := s.repo.Insert(ctx, c); err != nil {
		return nil, err
	}
	return &c, nil
}

func (s *Service) List(ctx context.Context) ([]domain.Contact, error) {
	return s.repo.List(ctx)
}

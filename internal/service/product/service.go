package product

import (
	"context"
	"time"

	"github.com/google/uuid"

	"luxe-jewelry-api/internal/domain"
	productrepo "luxe-jewelry-api/internal/repository/product"
)

type Service struct {
	repo productrepo.Repository
}

func New(repo productrepo.Repository) *Service {
	return &Service{repo: repo}
}

// CreateInput carries the caller-supplied fields for a new product.
type CreateInput struct {
	Name            string
	Description     string
	Price           float64
	Category        string
	ImageURL        string
	ModelImageURL   string
	MaterialDetails map[string]string
	IsFeatured      bool
}

// UpdateInput carries a partial update. Nil pointers mean "leave untouched";
// only explicitly supplied fields are written (exclude-unset semantics).
type UpdateInput struct {
	Name            *string           `json:"name"`
	Description     *string           `json:"description"`
	Price           *float64          `json:"price"`
	Category        *string           `json:"category"`
	ImageURL        *string           `json:"image_url"`
	ModelImageURL   *string           `json:"model_image_url"`
	MaterialDetails map[string]string `json:"material_details"`
	IsFeatured      *bool             `json:"is_featured"`
}

func (s *Service) List(ctx context.Context) ([]domain.Product, error) {
	return s.repo.List(ctx)
}

func (s *Service) ListFeatured(ctx context.Context) ([]domain.Product, error) {
	return s.repo.ListFeatured(ctx)
}

func (s *Service) Get(ctx context.Context, id string) (*domain.Product, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) Create(ctx context.Context, in CreateInput) (*domain.Product, error) {
	if !validateModelImage(in.ImageURL, in.ModelImageURL) {
		return nil, domain.ErrModelImageMismatch
	}

	details := in.MaterialDetails
	if details == nil {
		details = map[string]string{}
	}

	p := domain.Product{
		ID:              uuid.NewString(),
		Name:            in.Name,
		Description:     in.Description,
		Price:           in.Price,
		Category:        in.Category,
		ImageURL:        in.ImageURL,
		ModelImageURL:   in.ModelImageURL,
		MaterialDetails: details,
		IsFeatured:      in.IsFeatured,
		CreatedAt:       time.Now().UTC(),
	}

	if err := s.repo.Insert(ctx, p); err != nil {
		return nil, err
	}
	return &p, nil
}

// Update applies the supplied fields to an existing product. When the update
// touches an image URL, the pair is re-validated: a field missing from the
// update is checked against the currently stored value, not assumed valid.
// Validation failure aborts the whole update before any write.
func (s *Service) Update(ctx context.Context, id string, in UpdateInput) (*domain.Product, error) {
	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	switch {
	case in.ImageURL != nil && in.ModelImageURL != nil:
		if !validateModelImage(*in.ImageURL, *in.ModelImageURL) {
			return nil, domain.ErrModelImageMismatch
		}
	case in.ModelImageURL != nil:
		if !validateModelImage(existing.ImageURL, *in.ModelImageURL) {
			return nil, domain.ErrModelImageMismatch
		}
	case in.ImageURL != nil:
		if !validateModelImage(*in.ImageURL, existing.ModelImageURL) {
			return nil, domain.ErrModelImageMismatch
		}
	}

	fields := in.fields()
	if len(fields) == 0 {
		return existing, nil
	}

	if err := s.repo.Update(ctx, id, fields); err != nil {
		return nil, err
	}
	return s.repo.GetByID(ctx, id)
}

func (s *Service) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

func (in UpdateInput) fields() map[string]interface{} {
	fields := map[string]interface{}{}
	if in.Name != nil {
		fields["name"] = *in.Name
	}
	if in.Description != nil {
		fields["description"] = *in.Description
	}
	if in.Price != nil {
		fields["price"] = *in.Price
	}
	if in.Category != nil {
		fields["category"] = *in.Category
	}
	if in.ImageURL != nil {
		fields["image_url"] = *in.ImageURL
	}
	if in.ModelImageURL != nil {
		fields["model_image_url"] = *in.ModelImageURL
	}
	if in.MaterialDetails != nil {
		fields["material_details"] = in.MaterialDetails
	}
	if in.IsFeatured != nil {
		fields["is_featured"] = *in.IsFeatured
	}
	return fields
}

// validateModelImage checks that the model photo shows the same physical
// item as the product photo. Today it only rejects empty URLs; callers must
// not assume stronger checking.
// TODO: replace with real image matching once the recognition pipeline lands.
func validateModelImage(productImageURL, modelImageURL string) bool {
	return productImageURL != "" && modelImageURL != ""
}

package product

import (
	"context"
	"sync"

	"luxe-jewelry-api/internal/domain"
)

// memoryRepo keeps products in insertion order, mirroring the store's
// natural ordering. Used as a substitute backend in tests.
type memoryRepo struct {
	mu       sync.Mutex
	products []domain.Product
}

func NewMemory() Repository {
	return &memoryRepo{}
}

func (r *memoryRepo) List(_ context.Context) ([]domain.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	n := len(r.products)
	if n > ListLimit {
		n = ListLimit
	}
	out := make([]domain.Product, n)
	copy(out, r.products[:n])
	return out, nil
}

func (r *memoryRepo) ListFeatured(_ context.Context) ([]domain.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var out []domain.Product
	for _, p := range r.products {
		if p.IsFeatured {
			out = append(out, p)
		}
		if len(out) == ListLimit {
			break
		}
	}
	return out, nil
}

func (r *memoryRepo) GetByID(_ context.Context, id string) (*domain.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.products {
		if r.products[i].ID == id {
			p := r.products[i]
			return &p, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (r *memoryRepo) Insert(_ context.Context, p domain.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.products = append(r.products, p)
	return nil
}

func (r *memoryRepo) InsertMany(_ context.Context, ps []domain.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.products = append(r.products, ps...)
	return nil
}

func (r *memoryRepo) Update(_ context.Context, id string, fields map[string]interface{}) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.products {
		if r.products[i].ID != id {
			continue
		}
		applyFields(&r.products[i], fields)
		return nil
	}
	return domain.ErrNotFound
}

func (r *memoryRepo) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.products {
		if r.products[i].ID == id {
			r.products = append(r.products[:i], r.products[i+1:]...)
			return nil
		}
	}
	return domain.ErrNotFound
}

func (r *memoryRepo) Count(_ context.Context) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return int64(len(r.products)), nil
}

func applyFields(p *domain.Product, fields map[string]interface{}) {
	for key, raw := range fields {
		switch key {
		case "name":
			if v, ok := raw.(string); ok {
				p.Name = v
			}
		case "description":
			if v, ok := raw.(string); ok {
				p.Description = v
			}
		case "price":
			if v, ok := raw.(float64); ok {
				p.Price = v
			}
		case "category":
			if v, ok := raw.(string); ok {
				p.Category = v
			}
		case "image_url":
			if v, ok := raw.(string); ok {
				p.ImageURL = v
			}
		case "model_image_url":
			if v, ok := raw.(string); ok {
				p.ModelImageURL = v
			}
		case "material_details":
			if v, ok := raw.(map[string]string); ok {
				p.MaterialDetails = v
			}
		case "is_featured":
			if v, ok := raw.(bool); ok {
				p.IsFeatured = v
			}
		}
	}
}

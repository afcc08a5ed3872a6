package product

import (
	"context"
	"errors"
	"testing"

	"luxe-jewelry-api/internal/domain"
)

type stubRepo struct {
	products      []domain.Product
	getByID       *domain.Product
	getByIDErr    error
	insertErr     error
	updateErr     error
	deleteErr     error
	lastInserted  *domain.Product
	lastUpdateID  string
	lastFields    map[string]interface{}
	updateCalls   int
	getByIDCalls  int
	listFeatured  []domain.Product
	listErr       error
}

func (s *stubRepo) List(_ context.Context) ([]domain.Product, error) {
	return s.products, s.listErr
}

func (s *stubRepo) ListFeatured(_ context.Context) ([]domain.Product, error) {
	return s.listFeatured, s.listErr
}

func (s *stubRepo) GetByID(_ context.Context, _ string) (*domain.Product, error) {
	s.getByIDCalls++
	return s.getByID, s.getByIDErr
}

func (s *stubRepo) Insert(_ context.Context, p domain.Product) error {
	s.lastInserted = &p
	return s.insertErr
}

func (s *stubRepo) InsertMany(_ context.Context, ps []domain.Product) error {
	return nil
}

func (s *stubRepo) Update(_ context.Context, id string, fields map[string]interface{}) error {
	s.updateCalls++
	s.lastUpdateID = id
	s.lastFields = fields
	return s.updateErr
}

func (s *stubRepo) Delete(_ context.Context, _ string) error {
	return s.deleteErr
}

func (s *stubRepo) Count(_ context.Context) (int64, error) {
	return int64(len(s.products)), nil
}

func strPtr(v string) *string { return &v }

func floatPtr(v float64) *float64 { return &v }

func validCreateInput() CreateInput {
	return CreateInput{
		Name:          "Premium Gold Ring",
		Description:   "A timeless gold ring",
		Price:         1800,
		Category:      "Rings",
		ImageURL:      "https://example.com/ring.jpg",
		ModelImageURL: "https://example.com/ring-model.jpg",
	}
}

func TestCreateGeneratesIDAndTimestamp(t *testing.T) {
	repo := &stubRepo{}
	svc := New(repo)

	got, err := svc.Create(context.Background(), validCreateInput())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.ID == "" {
		t.Fatalf("expected generated id")
	}
	if got.CreatedAt.IsZero() {
		t.Fatalf("expected created_at to be set")
	}
	if got.MaterialDetails == nil {
		t.Fatalf("expected material details map to be initialized")
	}
	if repo.lastInserted == nil || repo.lastInserted.ID != got.ID {
		t.Fatalf("expected product inserted with id %s", got.ID)
	}
}

func TestCreateRejectsEmptyImageURL(t *testing.T) {
	repo := &stubRepo{}
	svc := New(repo)

	in := validCreateInput()
	in.ImageURL = ""
	if _, err := svc.Create(context.Background(), in); !errors.Is(err, domain.ErrModelImageMismatch) {
		t.Fatalf("expected model image mismatch, got %v", err)
	}

	in = validCreateInput()
	in.ModelImageURL = ""
	if _, err := svc.Create(context.Background(), in); !errors.Is(err, domain.ErrModelImageMismatch) {
		t.Fatalf("expected model image mismatch, got %v", err)
	}

	if repo.lastInserted != nil {
		t.Fatalf("expected no insert on validation failure")
	}
}

func TestUpdateNotFound(t *testing.T) {
	svc := New(&stubRepo{getByIDErr: domain.ErrNotFound})
	_, err := svc.Update(context.Background(), "missing", UpdateInput{Price: floatPtr(10)})
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestUpdateWritesOnlySuppliedFields(t *testing.T) {
	existing := &domain.Product{
		ID:            "p1",
		Name:          "Premium Gold Ring",
		Category:      "Rings",
		ImageURL:      "https://example.com/ring.jpg",
		ModelImageURL: "https://example.com/ring-model.jpg",
		Price:         1800,
	}
	repo := &stubRepo{getByID: existing}
	svc := New(repo)

	if _, err := svc.Update(context.Background(), "p1", UpdateInput{Price: floatPtr(2499.99)}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(repo.lastFields) != 1 {
		t.Fatalf("expected exactly one field, got %v", repo.lastFields)
	}
	if repo.lastFields["price"] != 2499.99 {
		t.Fatalf("expected price field, got %v", repo.lastFields)
	}
}

func TestUpdateEmptyPayloadSkipsWrite(t *testing.T) {
	existing := &domain.Product{ID: "p1", Name: "Ring"}
	repo := &stubRepo{getByID: existing}
	svc := New(repo)

	got, err := svc.Update(context.Background(), "p1", UpdateInput{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if repo.updateCalls != 0 {
		t.Fatalf("expected no store write for empty payload")
	}
	if got != existing {
		t.Fatalf("expected stored record returned, got %+v", got)
	}
}

func TestUpdateModelImageValidatedAgainstStoredImage(t *testing.T) {
	// Stored record has no product image, so supplying only a new model
	// image must fail against the stored value.
	repo := &stubRepo{getByID: &domain.Product{ID: "p1", ImageURL: ""}}
	svc := New(repo)

	_, err := svc.Update(context.Background(), "p1", UpdateInput{ModelImageURL: strPtr("https://example.com/model.jpg")})
	if !errors.Is(err, domain.ErrModelImageMismatch) {
		t.Fatalf("expected model image mismatch, got %v", err)
	}
	if repo.updateCalls != 0 {
		t.Fatalf("expected validation failure to abort before any write")
	}
}

func TestUpdateImageValidatedAgainstStoredModelImage(t *testing.T) {
	repo := &stubRepo{getByID: &domain.Product{ID: "p1", ModelImageURL: ""}}
	svc := New(repo)

	_, err := svc.Update(context.Background(), "p1", UpdateInput{ImageURL: strPtr("https://example.com/item.jpg")})
	if !errors.Is(err, domain.ErrModelImageMismatch) {
		t.Fatalf("expected model image mismatch, got %v", err)
	}
}

func TestUpdateBothImagesValidatedAgainstEachOther(t *testing.T) {
	// Stored values are valid; the new pair carries an empty model image
	// and must be rejected on its own merits.
	repo := &stubRepo{getByID: &domain.Product{
		ID:            "p1",
		ImageURL:      "https://example.com/old.jpg",
		ModelImageURL: "https://example.com/old-model.jpg",
	}}
	svc := New(repo)

	_, err := svc.Update(context.Background(), "p1", UpdateInput{
		ImageURL:      strPtr("https://example.com/new.jpg"),
		ModelImageURL: strPtr(""),
	})
	if !errors.Is(err, domain.ErrModelImageMismatch) {
		t.Fatalf("expected model image mismatch, got %v", err)
	}
}

func TestDeletePropagatesNotFound(t *testing.T) {
	svc := New(&stubRepo{deleteErr: domain.ErrNotFound})
	if err := svc.Delete(context.Background(), "missing"); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestListUnavailableStore(t *testing.T) {
	svc := New(&stubRepo{listErr: domain.ErrStoreUnavailable})
	if _, err := svc.List(context.Background()); !errors.Is(err, domain.ErrStoreUnavailable) {
		t.Fatalf("expected store unavailable, got %v", err)
	}
}

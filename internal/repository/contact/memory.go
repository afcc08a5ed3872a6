package contact

import (
	"context"
	"sync"

	"luxe-jewelry-api/internal/domain"
)

// memoryRepo is an insertion-ordered substitute backend for tests.
type memoryRepo struct {
	mu       sync.Mutex
	contacts []domain.Contact
}

func NewMemory() Repository {
	return &memoryRepo{}
}

func (r *memoryRepo) Insert(_ context.Context, c domain.Contact) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.contacts = append(r.contacts, c)
	return nil
}

func (r *memoryRepo) List(_ context.Context) ([]domain.Contact, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	n := len(r.contacts)
	if n > ListLimit {
		n = ListLimit
	}
	out := make([]domain.Contact, n)
	copy(out, r.contacts[:n])
	return out, nil
}

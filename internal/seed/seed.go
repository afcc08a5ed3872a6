package seed

import (
	"context"
	"fmt"
	"io"
	"log"
	"time"

	"github.com/google/uuid"

	"luxe-jewelry-api/internal/domain"
	productrepo "luxe-jewelry-api/internal/repository/product"
)

// Result messages returned by Apply.
const (
	MsgInitialized = "Sample data initialized successfully"
	MsgUpdated     = "Sample data updated successfully"
	MsgExists      = "Sample data already exists"
)

// Provisioner seeds the catalog with the canonical sample set and migrates
// previously-seeded records in place. Runs on explicit trigger only.
type Provisioner struct {
	repo   productrepo.Repository
	logger *log.Logger
}

func New(repo productrepo.Repository, logger *log.Logger) *Provisioner {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &Provisioner{repo: repo, logger: logger}
}

// Apply is idempotent: an empty collection gets the full sample set; a
// populated one gets model image and material details backfilled into
// records that still lack them; repeated calls converge to a no-op.
func (p *Provisioner) Apply(ctx context.Context) (string, error) {
	count, err := p.repo.Count(ctx)
	if err != nil {
		return "", fmt.Errorf("count products: %w", err)
	}

	if count == 0 {
		if err := p.repo.InsertMany(ctx, sampleSet()); err != nil {
			return "", fmt.Errorf("insert sample products: %w", err)
		}
		p.logger.Printf("seed: initialized %d sample products", len(sampleProducts))
		return MsgInitialized, nil
	}

	updated, err := p.backfill(ctx)
	if err != nil {
		return "", err
	}
	if updated == 0 {
		return MsgExists, nil
	}
	p.logger.Printf("seed: backfilled %d legacy products", updated)
	return MsgUpdated, nil
}

// backfill fills model_image_url and material_details into records missing
// either, mapping record position onto the fixed lookup tables. The mapping
// is positional over the collection's natural order; see DESIGN.md.
func (p *Provisioner) backfill(ctx context.Context) (int, error) {
	products, err := p.repo.List(ctx)
	if err != nil {
		return 0, fmt.Errorf("list products: %w", err)
	}

	updated := 0
	for i, prod := range products {
		if prod.ModelImageURL != "" && len(prod.MaterialDetails) > 0 {
			continue
		}
		fields := map[string]interface{}{
			"model_image_url":  modelImageURLs[i%len(modelImageURLs)],
			"material_details": materialDetailSets[i%len(materialDetailSets)],
		}
		if err := p.repo.Update(ctx, prod.ID, fields); err != nil {
			return updated, fmt.Errorf("backfill product %s: %w", prod.ID, err)
		}
		updated++
	}
	return updated, nil
}

func sampleSet() []domain.Product {
	now := time.Now().UTC()
	out := make([]domain.Product, len(sampleProducts))
	for i, p := range sampleProducts {
		p.ID = uuid.NewString()
		p.CreatedAt = now
		out[i] = p
	}
	return out
}

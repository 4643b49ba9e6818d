package store

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/ldupont/garage-desk/internal/model"
)

// CatalogueRepository holds the service catalog: prestations and the
// vehicle-specific forfaits built on top of them.
type CatalogueRepository struct {
	mu          sync.Mutex
	opts        Options
	prestations []model.Prestation
	forfaits    []model.Forfait
}

func NewCatalogueRepository(opts Options) *CatalogueRepository {
	return &CatalogueRepository{opts: opts}
}

func (r *CatalogueRepository) ListPrestations() []model.Prestation {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]model.Prestation, len(r.prestations))
	copy(out, r.prestations)
	return out
}

func (r *CatalogueRepository) GetPrestation(id uuid.UUID) (*model.Prestation, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, p := range r.prestations {
		if p.ID == id {
			prestation := p
			return &prestation, nil
		}
	}
	return nil, ErrNotFound
}

func (r *CatalogueRepository) AddPrestation(prestation model.Prestation) model.Prestation {
	r.opts.simulateLatency()

	r.mu.Lock()
	defer r.mu.Unlock()

	if prestation.ID == uuid.Nil {
		prestation.ID = uuid.New()
	}
	if prestation.CreatedAt.IsZero() {
		prestation.CreatedAt = time.Now()
	}
	r.prestations = append(r.prestations, prestation)
	return prestation
}

func (r *CatalogueRepository) UpdatePrestation(prestation model.Prestation) (*model.Prestation, error) {
	r.opts.simulateLatency()

	r.mu.Lock()
	defer r.mu.Unlock()
	for i, p := range r.prestations {
		if p.ID == prestation.ID {
			prestation.CreatedAt = p.CreatedAt
			r.prestations[i] = prestation
			return &prestation, nil
		}
	}
	return nil, ErrNotFound
}

func (r *CatalogueRepository) ListForfaits() []model.Forfait {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]model.Forfait, len(r.forfaits))
	copy(out, r.forfaits)
	return out
}

func (r *CatalogueRepository) GetForfait(id uuid.UUID) (*model.Forfait, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, f := range r.forfaits {
		if f.ID == id {
			forfait := f
			return &forfait, nil
		}
	}
	return nil, ErrNotFound
}

func (r *CatalogueRepository) AddForfait(forfait model.Forfait) model.Forfait {
	r.opts.simulateLatency()

	r.mu.Lock()
	defer r.mu.Unlock()

	if forfait.ID == uuid.Nil {
		forfait.ID = uuid.New()
	}
	r.forfaits = append(r.forfaits, forfait)
	return forfait
}

func (r *CatalogueRepository) RemoveForfait(id uuid.UUID) error {
	r.opts.simulateLatency()

	r.mu.Lock()
	defer r.mu.Unlock()
	for i, f := range r.forfaits {
		if f.ID == id {
			r.forfaits = append(r.forfaits[:i], r.forfaits[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

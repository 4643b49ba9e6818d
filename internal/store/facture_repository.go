package store

import (
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/ldupont/garage-desk/internal/model"
)

type FactureRepository struct {
	mu   sync.Mutex
	opts Options
	rows []model.Facture
	seq  int
}

func NewFactureRepository(opts Options) *FactureRepository {
	return &FactureRepository{opts: opts}
}

func (r *FactureRepository) List() []model.Facture {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]model.Facture, len(r.rows))
	copy(out, r.rows)
	return out
}

func (r *FactureRepository) Get(id uuid.UUID) (*model.Facture, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, f := range r.rows {
		if f.ID == id {
			facture := f
			return &facture, nil
		}
	}
	return nil, ErrNotFound
}

func (r *FactureRepository) Add(facture model.Facture) model.Facture {
	r.opts.simulateLatency()

	r.mu.Lock()
	defer r.mu.Unlock()

	if facture.ID == uuid.Nil {
		facture.ID = uuid.New()
	}
	if facture.DateEmission.IsZero() {
		facture.DateEmission = time.Now()
	}
	if facture.Numero == "" {
		r.seq++
		facture.Numero = fmt.Sprintf("FAC-%d-%04d", facture.DateEmission.Year(), r.seq)
	}
	r.rows = append(r.rows, facture)
	return facture
}

func (r *FactureRepository) Update(facture model.Facture) (*model.Facture, error) {
	r.opts.simulateLatency()

	r.mu.Lock()
	defer r.mu.Unlock()
	for i, f := range r.rows {
		if f.ID == facture.ID {
			facture.Numero = f.Numero
			facture.DateEmission = f.DateEmission
			r.rows[i] = facture
			return &facture, nil
		}
	}
	return nil, ErrNotFound
}

func (r *FactureRepository) Remove(id uuid.UUID) error {
	r.opts.simulateLatency()

	r.mu.Lock()
	defer r.mu.Unlock()
	for i, f := range r.rows {
		if f.ID == id {
			r.rows = append(r.rows[:i], r.rows[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

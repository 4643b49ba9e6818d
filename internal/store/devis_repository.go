package store

import (
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/ldupont/garage-desk/internal/model"
)

type DevisRepository struct {
	mu   sync.Mutex
	opts Options
	rows []model.Devis
	seq  int
}

func NewDevisRepository(opts Options) *DevisRepository {
	return &DevisRepository{opts: opts}
}

func (r *DevisRepository) List() []model.Devis {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]model.Devis, len(r.rows))
	copy(out, r.rows)
	return out
}

func (r *DevisRepository) Get(id uuid.UUID) (*model.Devis, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, d := range r.rows {
		if d.ID == id {
			devis := d
			return &devis, nil
		}
	}
	return nil, ErrNotFound
}

// Add assigns the id and the yearly sequential number, then appends.
func (r *DevisRepository) Add(devis model.Devis) model.Devis {
	r.opts.simulateLatency()

	r.mu.Lock()
	defer r.mu.Unlock()

	if devis.ID == uuid.Nil {
		devis.ID = uuid.New()
	}
	if devis.DateCreation.IsZero() {
		devis.DateCreation = time.Now()
	}
	if devis.Numero == "" {
		r.seq++
		devis.Numero = fmt.Sprintf("DEV-%d-%04d", devis.DateCreation.Year(), r.seq)
	}
	r.rows = append(r.rows, devis)
	return devis
}

func (r *DevisRepository) Update(devis model.Devis) (*model.Devis, error) {
	r.opts.simulateLatency()

	r.mu.Lock()
	defer r.mu.Unlock()
	for i, d := range r.rows {
		if d.ID == devis.ID {
			devis.Numero = d.Numero
			devis.DateCreation = d.DateCreation
			r.rows[i] = devis
			return &devis, nil
		}
	}
	return nil, ErrNotFound
}

func (r *DevisRepository) Remove(id uuid.UUID) error {
	r.opts.simulateLatency()

	r.mu.Lock()
	defer r.mu.Unlock()
	for i, d := range r.rows {
		if d.ID == id {
			r.rows = append(r.rows[:i], r.rows[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

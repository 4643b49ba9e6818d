package store

import (
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/ldupont/garage-desk/internal/model"
)

type ODRRepository struct {
	mu   sync.Mutex
	opts Options
	rows []model.ODR
	seq  int
}

func NewODRRepository(opts Options) *ODRRepository {
	return &ODRRepository{opts: opts}
}

func (r *ODRRepository) List() []model.ODR {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]model.ODR, len(r.rows))
	copy(out, r.rows)
	for i := range out {
		out[i].Articles = copyArticles(out[i].Articles)
	}
	return out
}

func (r *ODRRepository) Get(id uuid.UUID) (*model.ODR, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, o := range r.rows {
		if o.ID == id {
			odr := o
			odr.Articles = copyArticles(o.Articles)
			return &odr, nil
		}
	}
	return nil, ErrNotFound
}

func (r *ODRRepository) Add(odr model.ODR) model.ODR {
	r.opts.simulateLatency()

	r.mu.Lock()
	defer r.mu.Unlock()

	if odr.ID == uuid.Nil {
		odr.ID = uuid.New()
	}
	if odr.DateCreation.IsZero() {
		odr.DateCreation = time.Now()
	}
	if odr.Numero == "" {
		r.seq++
		odr.Numero = fmt.Sprintf("ODR-%d-%04d", odr.DateCreation.Year(), r.seq)
	}
	r.rows = append(r.rows, odr)
	return odr
}

func (r *ODRRepository) Update(odr model.ODR) (*model.ODR, error) {
	r.opts.simulateLatency()

	r.mu.Lock()
	defer r.mu.Unlock()
	for i, o := range r.rows {
		if o.ID == odr.ID {
			odr.Numero = o.Numero
			odr.DateCreation = o.DateCreation
			r.rows[i] = odr
			return &odr, nil
		}
	}
	return nil, ErrNotFound
}

func (r *ODRRepository) Remove(id uuid.UUID) error {
	r.opts.simulateLatency()

	r.mu.Lock()
	defer r.mu.Unlock()
	for i, o := range r.rows {
		if o.ID == id {
			r.rows = append(r.rows[:i], r.rows[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

func copyArticles(articles []model.Article) []model.Article {
	if articles == nil {
		return nil
	}
	out := make([]model.Article, len(articles))
	copy(out, articles)
	return out
}

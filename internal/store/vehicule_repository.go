package store

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/ldupont/garage-desk/internal/model"
)

type VehiculeRepository struct {
	mu        sync.Mutex
	opts      Options
	vehicules []model.Vehicule
}

func NewVehiculeRepository(opts Options) *VehiculeRepository {
	return &VehiculeRepository{opts: opts}
}

func (r *VehiculeRepository) List() []model.Vehicule {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]model.Vehicule, len(r.vehicules))
	copy(out, r.vehicules)
	return out
}

func (r *VehiculeRepository) Get(id uuid.UUID) (*model.Vehicule, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, v := range r.vehicules {
		if v.ID == id {
			vehicule := v
			return &vehicule, nil
		}
	}
	return nil, ErrNotFound
}

// ListByClient returns the client's vehicles in insertion order.
func (r *VehiculeRepository) ListByClient(clientID uuid.UUID) []model.Vehicule {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []model.Vehicule
	for _, v := range r.vehicules {
		if v.ClientID == clientID {
			out = append(out, v)
		}
	}
	return out
}

// CountByClient maps each client id to the number of vehicles it owns.
func (r *VehiculeRepository) CountByClient() map[uuid.UUID]int {
	r.mu.Lock()
	defer r.mu.Unlock()
	counts := make(map[uuid.UUID]int, len(r.vehicules))
	for _, v := range r.vehicules {
		counts[v.ClientID]++
	}
	return counts
}

func (r *VehiculeRepository) Add(vehicule model.Vehicule) model.Vehicule {
	r.opts.simulateLatency()

	r.mu.Lock()
	defer r.mu.Unlock()

	if vehicule.ID == uuid.Nil {
		vehicule.ID = uuid.New()
	}
	if vehicule.CreatedAt.IsZero() {
		vehicule.CreatedAt = time.Now()
	}
	r.vehicules = append(r.vehicules, vehicule)
	return vehicule
}

func (r *VehiculeRepository) Update(vehicule model.Vehicule) (*model.Vehicule, error) {
	r.opts.simulateLatency()

	r.mu.Lock()
	defer r.mu.Unlock()
	for i, v := range r.vehicules {
		if v.ID == vehicule.ID {
			vehicule.CreatedAt = v.CreatedAt
			r.vehicules[i] = vehicule
			return &vehicule, nil
		}
	}
	return nil, ErrNotFound
}

func (r *VehiculeRepository) Remove(id uuid.UUID) error {
	r.opts.simulateLatency()

	r.mu.Lock()
	defer r.mu.Unlock()
	for i, v := range r.vehicules {
		if v.ID == id {
			r.vehicules = append(r.vehicules[:i], r.vehicules[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

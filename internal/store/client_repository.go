package store

import (
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/ldupont/garage-desk/internal/model"
)

type ClientRepository struct {
	mu      sync.Mutex
	opts    Options
	clients []model.Client
	seq     int
}

func NewClientRepository(opts Options) *ClientRepository {
	return &ClientRepository{opts: opts}
}

// List returns every client in insertion order.
func (r *ClientRepository) List() []model.Client {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]model.Client, len(r.clients))
	copy(out, r.clients)
	return out
}

func (r *ClientRepository) Get(id uuid.UUID) (*model.Client, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, c := range r.clients {
		if c.ID == id {
			client := c
			return &client, nil
		}
	}
	return nil, ErrNotFound
}

// Add assigns the id, client number and creation time, then appends.
func (r *ClientRepository) Add(client model.Client) model.Client {
	r.opts.simulateLatency()

	r.mu.Lock()
	defer r.mu.Unlock()

	if client.ID == uuid.Nil {
		client.ID = uuid.New()
	}
	if client.NumeroClient == "" {
		r.seq++
		client.NumeroClient = fmt.Sprintf("CLI-%04d", r.seq)
	}
	if client.CreatedAt.IsZero() {
		client.CreatedAt = time.Now()
	}
	r.clients = append(r.clients, client)
	return client
}

func (r *ClientRepository) Update(client model.Client) (*model.Client, error) {
	r.opts.simulateLatency()

	r.mu.Lock()
	defer r.mu.Unlock()
	for i, c := range r.clients {
		if c.ID == client.ID {
			client.NumeroClient = c.NumeroClient
			client.CreatedAt = c.CreatedAt
			r.clients[i] = client
			return &client, nil
		}
	}
	return nil, ErrNotFound
}

func (r *ClientRepository) Remove(id uuid.UUID) error {
	r.opts.simulateLatency()

	r.mu.Lock()
	defer r.mu.Unlock()
	for i, c := range r.clients {
		if c.ID == id {
			r.clients = append(r.clients[:i], r.clients[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

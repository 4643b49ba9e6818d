package service

import (
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/ldupont/garage-desk/internal/listview"
	"github.com/ldupont/garage-desk/internal/model"
	"github.com/ldupont/garage-desk/internal/store"
)

// ClientSortKey enumerates the orderings the client list offers. Adding a
// key means extending the switch in List, checked at compile time.
type ClientSortKey int

const (
	ClientSortNom ClientSortKey = iota
	ClientSortDateCreation
	ClientSortNbVehicules
)

type ClientService struct {
	clients   *store.ClientRepository
	vehicules *store.VehiculeRepository
	pageSize  int
}

func NewClientService(clients *store.ClientRepository, vehicules *store.VehiculeRepository, pageSize int) *ClientService {
	return &ClientService{clients: clients, vehicules: vehicules, pageSize: pageSize}
}

type ListClientsInput struct {
	Search     string
	TypeClient string // model.TypeClient value or listview.FilterAll
	SortKey    ClientSortKey
	Direction  listview.Direction
	Page       int
}

func (s *ClientService) List(input ListClientsInput) listview.Page[model.Client] {
	var compare func(a, b model.Client) int
	switch input.SortKey {
	case ClientSortNom:
		compare = func(a, b model.Client) int {
			return listview.CompareStrings(a.Nom+" "+a.Prenom, b.Nom+" "+b.Prenom)
		}
	case ClientSortDateCreation:
		compare = func(a, b model.Client) int {
			return listview.CompareTimes(a.CreatedAt, b.CreatedAt)
		}
	case ClientSortNbVehicules:
		counts := s.vehicules.CountByClient()
		compare = func(a, b model.Client) int {
			return listview.CompareInts(counts[a.ID], counts[b.ID])
		}
	}

	return listview.Run(s.clients.List(), listview.Query[model.Client]{
		Search:       input.Search,
		SearchFields: clientSearchFields,
		Filters: []listview.Filter[model.Client]{
			{Value: input.TypeClient, Field: func(c model.Client) string { return string(c.TypeClient) }},
		},
		Compare:   compare,
		Direction: input.Direction,
		Page:      input.Page,
		PageSize:  s.pageSize,
	})
}

func clientSearchFields(c model.Client) []string {
	fields := []string{c.Nom, c.Prenom, c.Email, c.NumeroClient}
	if c.Entreprise != nil {
		fields = append(fields, *c.Entreprise)
	}
	return fields
}

type CreateClientInput struct {
	Nom        string           `validate:"required"`
	Prenom     string           `validate:"required"`
	Email      string           `validate:"required,email"`
	Telephone  string           `validate:"required"`
	TypeClient model.TypeClient `validate:"required,oneof=NORMAL GRAND_COMPTE"`
	Entreprise string           `validate:"required_if=TypeClient GRAND_COMPTE"`
}

func (s *ClientService) Create(input CreateClientInput) (*model.Client, error) {
	if err := validateInput(input); err != nil {
		return nil, err
	}

	client := model.Client{
		Nom:        input.Nom,
		Prenom:     input.Prenom,
		Email:      input.Email,
		Telephone:  input.Telephone,
		TypeClient: input.TypeClient,
	}
	if input.Entreprise != "" {
		client.Entreprise = &input.Entreprise
	}

	created := s.clients.Add(client)
	return &created, nil
}

func (s *ClientService) Get(id uuid.UUID) (*model.Client, error) {
	client, err := s.clients.Get(id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return client, nil
}

func (s *ClientService) Update(client model.Client) (*model.Client, error) {
	updated, err := s.clients.Update(client)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return updated, nil
}

func (s *ClientService) Delete(id uuid.UUID) error {
	if err := s.clients.Remove(id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrNotFound
		}
		return err
	}
	return nil
}

type ClientStats struct {
	Total          int
	Normaux        int
	GrandsComptes  int
	NouveauxCeMois int
}

// Stats aggregates over the full unfiltered list, recomputed on demand.
func (s *ClientService) Stats() ClientStats {
	return s.statsAt(time.Now())
}

func (s *ClientService) statsAt(now time.Time) ClientStats {
	var stats ClientStats
	for _, c := range s.clients.List() {
		stats.Total++
		switch c.TypeClient {
		case model.TypeClientGrandCompte:
			stats.GrandsComptes++
		default:
			stats.Normaux++
		}
		if c.CreatedAt.Year() == now.Year() && c.CreatedAt.Month() == now.Month() {
			stats.NouveauxCeMois++
		}
	}
	return stats
}

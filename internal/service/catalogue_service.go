package service

import (
	"errors"

	"github.com/google/uuid"

	"github.com/ldupont/garage-desk/internal/listview"
	"github.com/ldupont/garage-desk/internal/model"
	"github.com/ldupont/garage-desk/internal/store"
)

type PrestationSortKey int

const (
	PrestationSortNom PrestationSortKey = iota
	PrestationSortPrix
	PrestationSortDuree
)

// Activity filter values for the prestation list.
const (
	PrestationActive   = "ACTIVE"
	PrestationInactive = "INACTIVE"
)

type ForfaitSortKey int

const (
	ForfaitSortNom ForfaitSortKey = iota
	ForfaitSortPrix
)

type CatalogueService struct {
	catalogue *store.CatalogueRepository
	pageSize  int
}

func NewCatalogueService(catalogue *store.CatalogueRepository, pageSize int) *CatalogueService {
	return &CatalogueService{catalogue: catalogue, pageSize: pageSize}
}

type ListPrestationsInput struct {
	Search      string
	TypeService string // model.TypeService value or listview.FilterAll
	Popularite  string
	Activite    string // PrestationActive, PrestationInactive or listview.FilterAll
	SortKey     PrestationSortKey
	Direction   listview.Direction
	Page        int
}

func (s *CatalogueService) ListPrestations(input ListPrestationsInput) listview.Page[model.Prestation] {
	var compare func(a, b model.Prestation) int
	switch input.SortKey {
	case PrestationSortNom:
		compare = func(a, b model.Prestation) int {
			return listview.CompareStrings(a.Nom, b.Nom)
		}
	case PrestationSortPrix:
		compare = func(a, b model.Prestation) int {
			return listview.CompareFloats(a.PrixBase, b.PrixBase)
		}
	case PrestationSortDuree:
		compare = func(a, b model.Prestation) int {
			return listview.CompareInts(a.DureeMinutes, b.DureeMinutes)
		}
	}

	return listview.Run(s.catalogue.ListPrestations(), listview.Query[model.Prestation]{
		Search: input.Search,
		SearchFields: func(p model.Prestation) []string {
			return []string{p.Nom, p.Description}
		},
		Filters: []listview.Filter[model.Prestation]{
			{Value: input.TypeService, Field: func(p model.Prestation) string { return string(p.TypeService) }},
			{Value: input.Popularite, Field: func(p model.Prestation) string { return string(p.Popularite) }},
			{Value: input.Activite, Field: activiteField},
		},
		Compare:   compare,
		Direction: input.Direction,
		Page:      input.Page,
		PageSize:  s.pageSize,
	})
}

func activiteField(p model.Prestation) string {
	if p.Active {
		return PrestationActive
	}
	return PrestationInactive
}

type ListForfaitsInput struct {
	Search    string
	Marque    string // exact make, or listview.FilterAll
	SortKey   ForfaitSortKey
	Direction listview.Direction
	Page      int
}

func (s *CatalogueService) ListForfaits(input ListForfaitsInput) listview.Page[model.Forfait] {
	var compare func(a, b model.Forfait) int
	switch input.SortKey {
	case ForfaitSortNom:
		compare = func(a, b model.Forfait) int {
			return listview.CompareStrings(a.Nom, b.Nom)
		}
	case ForfaitSortPrix:
		compare = func(a, b model.Forfait) int {
			return listview.CompareFloats(a.PrixBase, b.PrixBase)
		}
	}

	return listview.Run(s.catalogue.ListForfaits(), listview.Query[model.Forfait]{
		Search: input.Search,
		SearchFields: func(f model.Forfait) []string {
			return []string{f.Nom, f.Marque, f.Modele}
		},
		Filters: []listview.Filter[model.Forfait]{
			{Value: input.Marque, Field: func(f model.Forfait) string { return f.Marque }},
		},
		Compare:   compare,
		Direction: input.Direction,
		Page:      input.Page,
		PageSize:  s.pageSize,
	})
}

type CreatePrestationInput struct {
	Nom          string            `validate:"required"`
	Description  string            `validate:"required"`
	TypeService  model.TypeService `validate:"required,oneof=CARROSSERIE MECANIQUE"`
	PrixBase     float64           `validate:"required,gt=0"`
	DureeMinutes int               `validate:"required,gt=0"`
	Popularite   model.Popularite  `validate:"required,oneof=FAIBLE MOYENNE FORTE"`
}

func (s *CatalogueService) CreatePrestation(input CreatePrestationInput) (*model.Prestation, error) {
	if err := validateInput(input); err != nil {
		return nil, err
	}

	prestation := s.catalogue.AddPrestation(model.Prestation{
		Nom:          input.Nom,
		Description:  input.Description,
		TypeService:  input.TypeService,
		PrixBase:     input.PrixBase,
		DureeMinutes: input.DureeMinutes,
		Popularite:   input.Popularite,
		Active:       true,
	})
	return &prestation, nil
}

// SetPrestationActive flips the catalog visibility flag.
func (s *CatalogueService) SetPrestationActive(id uuid.UUID, active bool) (*model.Prestation, error) {
	prestation, err := s.catalogue.GetPrestation(id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	prestation.Active = active
	return s.catalogue.UpdatePrestation(*prestation)
}

type CreateForfaitInput struct {
	Nom          string    `validate:"required"`
	Description  string    `validate:"required"`
	PrestationID uuid.UUID `validate:"required"`
	Marque       string    `validate:"required"`
	Modele       string    `validate:"required"`
	PrixBase     float64   `validate:"required,gt=0"`
	TauxTVA      float64   `validate:"required,gt=0"`
	Unite        string    `validate:"required"`
}

func (s *CatalogueService) CreateForfait(input CreateForfaitInput) (*model.Forfait, error) {
	if err := validateInput(input); err != nil {
		return nil, err
	}
	if _, err := s.catalogue.GetPrestation(input.PrestationID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	forfait := s.catalogue.AddForfait(model.Forfait{
		Nom:          input.Nom,
		Description:  input.Description,
		PrestationID: input.PrestationID,
		Marque:       input.Marque,
		Modele:       input.Modele,
		PrixBase:     input.PrixBase,
		TauxTVA:      input.TauxTVA,
		Unite:        input.Unite,
	})
	return &forfait, nil
}

type CatalogueStats struct {
	Prestations         int
	PrestationsActives  int
	Forfaits            int
	PrixMoyenPrestation float64
}

func (s *CatalogueService) Stats() CatalogueStats {
	prestations := s.catalogue.ListPrestations()

	var stats CatalogueStats
	totalPrix := 0.0
	for _, p := range prestations {
		stats.Prestations++
		totalPrix += p.PrixBase
		if p.Active {
			stats.PrestationsActives++
		}
	}
	stats.Forfaits = len(s.catalogue.ListForfaits())
	if stats.Prestations > 0 {
		stats.PrixMoyenPrestation = round2(totalPrix / float64(stats.Prestations))
	}
	return stats
}

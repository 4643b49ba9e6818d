package service

import (
	"errors"
	"strconv"

	"github.com/google/uuid"

	"github.com/ldupont/garage-desk/internal/listview"
	"github.com/ldupont/garage-desk/internal/model"
	"github.com/ldupont/garage-desk/internal/store"
)

type VehiculeSortKey int

const (
	VehiculeSortImmatriculation VehiculeSortKey = iota
	VehiculeSortMarque
	VehiculeSortAnnee
	VehiculeSortKilometrage
)

type VehiculeService struct {
	vehicules *store.VehiculeRepository
	clients   *store.ClientRepository
	pageSize  int
}

func NewVehiculeService(vehicules *store.VehiculeRepository, clients *store.ClientRepository, pageSize int) *VehiculeService {
	return &VehiculeService{vehicules: vehicules, clients: clients, pageSize: pageSize}
}

type ListVehiculesInput struct {
	Search    string
	Marque    string // exact make, or listview.FilterAll
	Annee     string // exact year as text, or listview.FilterAll
	SortKey   VehiculeSortKey
	Direction listview.Direction
	Page      int
}

func (s *VehiculeService) List(input ListVehiculesInput) listview.Page[model.Vehicule] {
	var compare func(a, b model.Vehicule) int
	switch input.SortKey {
	case VehiculeSortImmatriculation:
		compare = func(a, b model.Vehicule) int {
			return listview.CompareStrings(a.Immatriculation, b.Immatriculation)
		}
	case VehiculeSortMarque:
		compare = func(a, b model.Vehicule) int {
			return listview.CompareStrings(a.Marque+" "+a.Modele, b.Marque+" "+b.Modele)
		}
	case VehiculeSortAnnee:
		compare = func(a, b model.Vehicule) int {
			return listview.CompareInts(a.Annee, b.Annee)
		}
	case VehiculeSortKilometrage:
		compare = func(a, b model.Vehicule) int {
			return listview.CompareInts(kilometrageOrZero(a), kilometrageOrZero(b))
		}
	}

	return listview.Run(s.vehicules.List(), listview.Query[model.Vehicule]{
		Search:       input.Search,
		SearchFields: vehiculeSearchFields,
		Filters: []listview.Filter[model.Vehicule]{
			{Value: input.Marque, Field: func(v model.Vehicule) string { return v.Marque }},
			{Value: input.Annee, Field: func(v model.Vehicule) string { return strconv.Itoa(v.Annee) }},
		},
		Compare:   compare,
		Direction: input.Direction,
		Page:      input.Page,
		PageSize:  s.pageSize,
	})
}

func vehiculeSearchFields(v model.Vehicule) []string {
	fields := []string{v.Immatriculation, v.Marque, v.Modele}
	if v.NumeroSerie != nil {
		fields = append(fields, *v.NumeroSerie)
	}
	if v.ImmatriculationAlt != nil {
		fields = append(fields, *v.ImmatriculationAlt)
	}
	return fields
}

func kilometrageOrZero(v model.Vehicule) int {
	if v.Kilometrage == nil {
		return 0
	}
	return *v.Kilometrage
}

type CreateVehiculeInput struct {
	ClientID        uuid.UUID `validate:"required"`
	Immatriculation string    `validate:"required,immat"`
	Marque          string    `validate:"required"`
	Modele          string    `validate:"required"`
	Annee           int       `validate:"required,gte=1950"`
	Couleur         string    `validate:"required"`
	Kilometrage     int       `validate:"gte=0"`
	NumeroSerie     string
}

func (s *VehiculeService) Create(input CreateVehiculeInput) (*model.Vehicule, error) {
	if err := validateInput(input); err != nil {
		return nil, err
	}
	if _, err := s.clients.Get(input.ClientID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	vehicule := model.Vehicule{
		ClientID:        input.ClientID,
		Immatriculation: input.Immatriculation,
		Marque:          input.Marque,
		Modele:          input.Modele,
		Annee:           input.Annee,
		Couleur:         input.Couleur,
	}
	if input.Kilometrage > 0 {
		vehicule.Kilometrage = &input.Kilometrage
	}
	if input.NumeroSerie != "" {
		vehicule.NumeroSerie = &input.NumeroSerie
	}

	created := s.vehicules.Add(vehicule)
	return &created, nil
}

func (s *VehiculeService) Get(id uuid.UUID) (*model.Vehicule, error) {
	vehicule, err := s.vehicules.Get(id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return vehicule, nil
}

func (s *VehiculeService) Delete(id uuid.UUID) error {
	if err := s.vehicules.Remove(id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrNotFound
		}
		return err
	}
	return nil
}

type VehiculeStats struct {
	Total            int
	Marques          int
	KilometrageMoyen int
}

func (s *VehiculeService) Stats() VehiculeStats {
	vehicules := s.vehicules.List()

	marques := make(map[string]struct{})
	totalKm := 0
	withKm := 0
	for _, v := range vehicules {
		marques[v.Marque] = struct{}{}
		if v.Kilometrage != nil {
			totalKm += *v.Kilometrage
			withKm++
		}
	}

	stats := VehiculeStats{
		Total:   len(vehicules),
		Marques: len(marques),
	}
	if withKm > 0 {
		stats.KilometrageMoyen = totalKm / withKm
	}
	return stats
}

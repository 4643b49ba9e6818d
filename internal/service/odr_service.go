package service

import (
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/ldupont/garage-desk/internal/listview"
	"github.com/ldupont/garage-desk/internal/model"
	"github.com/ldupont/garage-desk/internal/store"
)

type ODRSortKey int

const (
	ODRSortDateCreation ODRSortKey = iota
	ODRSortMontant
	ODRSortClientNom
)

type ODRService struct {
	odr      *store.ODRRepository
	pageSize int
}

func NewODRService(odr *store.ODRRepository, pageSize int) *ODRService {
	return &ODRService{odr: odr, pageSize: pageSize}
}

type ListODRInput struct {
	Search      string
	Statut      string // model.StatutODR value or listview.FilterAll
	TypeService string
	SortKey     ODRSortKey
	Direction   listview.Direction
	Page        int
}

func (s *ODRService) List(input ListODRInput) listview.Page[model.ODR] {
	var compare func(a, b model.ODR) int
	switch input.SortKey {
	case ODRSortDateCreation:
		compare = func(a, b model.ODR) int {
			return listview.CompareTimes(a.DateCreation, b.DateCreation)
		}
	case ODRSortMontant:
		compare = func(a, b model.ODR) int {
			return listview.CompareFloats(a.MontantTotal, b.MontantTotal)
		}
	case ODRSortClientNom:
		compare = func(a, b model.ODR) int {
			return listview.CompareStrings(a.ClientNom, b.ClientNom)
		}
	}

	return listview.Run(s.odr.List(), listview.Query[model.ODR]{
		Search:       input.Search,
		SearchFields: odrSearchFields,
		Filters: []listview.Filter[model.ODR]{
			{Value: input.Statut, Field: func(o model.ODR) string { return string(o.Statut) }},
			{Value: input.TypeService, Field: func(o model.ODR) string { return string(o.TypeService) }},
		},
		Compare:   compare,
		Direction: input.Direction,
		Page:      input.Page,
		PageSize:  s.pageSize,
	})
}

func odrSearchFields(o model.ODR) []string {
	return []string{o.Numero, o.ClientNom, o.VehiculeImmat}
}

type CreateODRInput struct {
	ClientNom     string            `validate:"required"`
	VehiculeImmat string            `validate:"required,immat"`
	TypeService   model.TypeService `validate:"required,oneof=CARROSSERIE MECANIQUE"`
	Observations  string
	Articles      []ArticleInput `validate:"min=1,dive"`
}

type ArticleInput struct {
	Designation  string  `validate:"required"`
	PrixUnitaire float64 `validate:"required,gt=0"`
	Quantite     int     `validate:"required,gt=0"`
}

func (s *ODRService) Create(input CreateODRInput) (*model.ODR, error) {
	if err := validateInput(input); err != nil {
		return nil, err
	}

	articles := make([]model.Article, len(input.Articles))
	total := 0.0
	for i, a := range input.Articles {
		articles[i] = model.Article{
			Designation:  a.Designation,
			PrixUnitaire: a.PrixUnitaire,
			Quantite:     a.Quantite,
		}
		total = round2(total + articles[i].Total())
	}

	odr := model.ODR{
		ClientNom:     input.ClientNom,
		VehiculeImmat: input.VehiculeImmat,
		TypeService:   input.TypeService,
		Statut:        model.StatutODREnCours,
		Observations:  input.Observations,
		Articles:      articles,
		MontantTotal:  total,
	}

	created := s.odr.Add(odr)
	return &created, nil
}

func (s *ODRService) Get(id uuid.UUID) (*model.ODR, error) {
	odr, err := s.odr.Get(id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return odr, nil
}

// Cloturer ends a repair order: statut TERMINE, clôture datée du jour.
func (s *ODRService) Cloturer(id uuid.UUID, observations string) (*model.ODR, error) {
	odr, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	if odr.Statut != model.StatutODREnCours {
		return nil, ErrInvalidInput
	}

	now := time.Now()
	odr.Statut = model.StatutODRTermine
	odr.DateCloture = &now
	if observations != "" {
		odr.Observations = observations
	}
	return s.odr.Update(*odr)
}

func (s *ODRService) Annuler(id uuid.UUID) (*model.ODR, error) {
	odr, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	if odr.Statut != model.StatutODREnCours {
		return nil, ErrInvalidInput
	}
	odr.Statut = model.StatutODRAnnule
	return s.odr.Update(*odr)
}

type ODRStats struct {
	Total        int
	EnCours      int
	Termines     int
	Annules      int
	MontantTotal float64
}

func (s *ODRService) Stats() ODRStats {
	var stats ODRStats
	for _, o := range s.odr.List() {
		stats.Total++
		stats.MontantTotal = round2(stats.MontantTotal + o.MontantTotal)
		switch o.Statut {
		case model.StatutODREnCours:
			stats.EnCours++
		case model.StatutODRTermine:
			stats.Termines++
		case model.StatutODRAnnule:
			stats.Annules++
		}
	}
	return stats
}

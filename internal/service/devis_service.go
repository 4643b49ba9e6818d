package service

import (
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/ldupont/garage-desk/internal/listview"
	"github.com/ldupont/garage-desk/internal/model"
	"github.com/ldupont/garage-desk/internal/store"
)

type DevisSortKey int

const (
	DevisSortDateCreation DevisSortKey = iota
	DevisSortMontant
	DevisSortClientNom
)

type DevisService struct {
	devis       *store.DevisRepository
	pageSize    int
	tauxTVA     float64
	validiteJrs int
}

func NewDevisService(devis *store.DevisRepository, pageSize int, tauxTVA float64, validiteJrs int) *DevisService {
	return &DevisService{devis: devis, pageSize: pageSize, tauxTVA: tauxTVA, validiteJrs: validiteJrs}
}

type ListDevisInput struct {
	Search      string
	Statut      string // model.StatutDevis value or listview.FilterAll
	TypeService string
	SortKey     DevisSortKey
	Direction   listview.Direction
	Page        int
}

func (s *DevisService) List(input ListDevisInput) listview.Page[model.Devis] {
	var compare func(a, b model.Devis) int
	switch input.SortKey {
	case DevisSortDateCreation:
		compare = func(a, b model.Devis) int {
			return listview.CompareTimes(a.DateCreation, b.DateCreation)
		}
	case DevisSortMontant:
		compare = func(a, b model.Devis) int {
			return listview.CompareFloats(a.MontantTTC, b.MontantTTC)
		}
	case DevisSortClientNom:
		compare = func(a, b model.Devis) int {
			return listview.CompareStrings(a.ClientNom, b.ClientNom)
		}
	}

	return listview.Run(s.devis.List(), listview.Query[model.Devis]{
		Search:       input.Search,
		SearchFields: devisSearchFields,
		Filters: []listview.Filter[model.Devis]{
			{Value: input.Statut, Field: func(d model.Devis) string { return string(d.Statut) }},
			{Value: input.TypeService, Field: func(d model.Devis) string { return string(d.TypeService) }},
		},
		Compare:   compare,
		Direction: input.Direction,
		Page:      input.Page,
		PageSize:  s.pageSize,
	})
}

func devisSearchFields(d model.Devis) []string {
	return []string{d.Numero, d.ClientNom}
}

type CreateDevisInput struct {
	ClientNom     string            `validate:"required"`
	TypeService   model.TypeService `validate:"required,oneof=CARROSSERIE MECANIQUE"`
	MontantHT     float64           `validate:"required,gt=0"`
	ValiditeJours int               `validate:"gte=0"`
}

func (s *DevisService) Create(input CreateDevisInput) (*model.Devis, error) {
	if err := validateInput(input); err != nil {
		return nil, err
	}

	validite := input.ValiditeJours
	if validite == 0 {
		validite = s.validiteJrs
	}

	now := time.Now()
	tva, ttc := computeTotaux(input.MontantHT, s.tauxTVA)
	devis := model.Devis{
		DateCreation: now,
		DateValidite: now.AddDate(0, 0, validite),
		ClientNom:    input.ClientNom,
		TypeService:  input.TypeService,
		Statut:       model.StatutDevisEnAttente,
		MontantHT:    input.MontantHT,
		MontantTVA:   tva,
		MontantTTC:   ttc,
	}

	created := s.devis.Add(devis)
	return &created, nil
}

func (s *DevisService) Get(id uuid.UUID) (*model.Devis, error) {
	devis, err := s.devis.Get(id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return devis, nil
}

// Accepter moves a pending quote to ACCEPTE.
func (s *DevisService) Accepter(id uuid.UUID) (*model.Devis, error) {
	return s.transition(id, model.StatutDevisAccepte)
}

// Refuser moves a pending quote to REFUSE.
func (s *DevisService) Refuser(id uuid.UUID) (*model.Devis, error) {
	return s.transition(id, model.StatutDevisRefuse)
}

func (s *DevisService) transition(id uuid.UUID, statut model.StatutDevis) (*model.Devis, error) {
	devis, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	if devis.Statut != model.StatutDevisEnAttente {
		return nil, ErrInvalidInput
	}
	devis.Statut = statut
	return s.devis.Update(*devis)
}

// ExpirerPerimes marks every pending quote whose validity date has passed
// as EXPIRE and reports how many changed.
func (s *DevisService) ExpirerPerimes(now time.Time) (int, error) {
	expired := 0
	for _, d := range s.devis.List() {
		if d.Statut != model.StatutDevisEnAttente || !d.DateValidite.Before(now) {
			continue
		}
		d.Statut = model.StatutDevisExpire
		if _, err := s.devis.Update(d); err != nil {
			return expired, err
		}
		expired++
	}
	return expired, nil
}

type DevisStats struct {
	Total           int
	EnAttente       int
	Acceptes        int
	Refuses         int
	Expires         int
	MontantTotalTTC float64
	MontantMoyenTTC float64
}

func (s *DevisService) Stats() DevisStats {
	var stats DevisStats
	for _, d := range s.devis.List() {
		stats.Total++
		stats.MontantTotalTTC = round2(stats.MontantTotalTTC + d.MontantTTC)
		switch d.Statut {
		case model.StatutDevisEnAttente:
			stats.EnAttente++
		case model.StatutDevisAccepte:
			stats.Acceptes++
		case model.StatutDevisRefuse:
			stats.Refuses++
		case model.StatutDevisExpire:
			stats.Expires++
		}
	}
	if stats.Total > 0 {
		stats.MontantMoyenTTC = round2(stats.MontantTotalTTC / float64(stats.Total))
	}
	return stats
}

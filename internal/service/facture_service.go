package service

import (
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/ldupont/garage-desk/internal/listview"
	"github.com/ldupont/garage-desk/internal/model"
	"github.com/ldupont/garage-desk/internal/store"
)

type FactureSortKey int

const (
	FactureSortDateEmission FactureSortKey = iota
	FactureSortDateEcheance
	FactureSortMontant
	FactureSortClientNom
)

type FactureService struct {
	factures    *store.FactureRepository
	clients     *store.ClientRepository
	pageSize    int
	tauxTVA     float64
	echeanceJrs int
}

func NewFactureService(factures *store.FactureRepository, clients *store.ClientRepository, pageSize int, tauxTVA float64, echeanceJrs int) *FactureService {
	return &FactureService{
		factures:    factures,
		clients:     clients,
		pageSize:    pageSize,
		tauxTVA:     tauxTVA,
		echeanceJrs: echeanceJrs,
	}
}

type ListFacturesInput struct {
	Search       string
	Statut       string // model.StatutFacture value or listview.FilterAll
	ModePaiement string
	SortKey      FactureSortKey
	Direction    listview.Direction
	Page         int
}

func (s *FactureService) List(input ListFacturesInput) listview.Page[model.Facture] {
	var compare func(a, b model.Facture) int
	switch input.SortKey {
	case FactureSortDateEmission:
		compare = func(a, b model.Facture) int {
			return listview.CompareTimes(a.DateEmission, b.DateEmission)
		}
	case FactureSortDateEcheance:
		compare = func(a, b model.Facture) int {
			return listview.CompareTimes(a.DateEcheance, b.DateEcheance)
		}
	case FactureSortMontant:
		compare = func(a, b model.Facture) int {
			return listview.CompareFloats(a.MontantTTC, b.MontantTTC)
		}
	case FactureSortClientNom:
		compare = func(a, b model.Facture) int {
			return listview.CompareStrings(a.ClientNom, b.ClientNom)
		}
	}

	return listview.Run(s.factures.List(), listview.Query[model.Facture]{
		Search:       input.Search,
		SearchFields: factureSearchFields,
		Filters: []listview.Filter[model.Facture]{
			{Value: input.Statut, Field: func(f model.Facture) string { return string(f.Statut) }},
			{Value: input.ModePaiement, Field: func(f model.Facture) string { return string(f.ModePaiement) }},
		},
		Compare:   compare,
		Direction: input.Direction,
		Page:      input.Page,
		PageSize:  s.pageSize,
	})
}

func factureSearchFields(f model.Facture) []string {
	return []string{f.Numero, f.ClientNom}
}

type CreateFactureInput struct {
	ClientID      uuid.UUID          `validate:"required"`
	TypeService   model.TypeService  `validate:"required,oneof=CARROSSERIE MECANIQUE"`
	ModePaiement  model.ModePaiement `validate:"required,oneof=CB ESPECES CHEQUE VIREMENT"`
	MontantHT     float64            `validate:"required,gt=0"`
	EcheanceJours int                `validate:"gte=0"`
	ODRID         *uuid.UUID
}

// Create resolves the client and freezes its display name on the invoice,
// so the denormalized ClientNom is consistent at the only write point.
func (s *FactureService) Create(input CreateFactureInput) (*model.Facture, error) {
	if err := validateInput(input); err != nil {
		return nil, err
	}

	client, err := s.clients.Get(input.ClientID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	echeance := input.EcheanceJours
	if echeance == 0 {
		echeance = s.echeanceJrs
	}

	now := time.Now()
	tva, ttc := computeTotaux(input.MontantHT, s.tauxTVA)
	facture := model.Facture{
		DateEmission: now,
		DateEcheance: now.AddDate(0, 0, echeance),
		ClientID:     client.ID,
		ClientNom:    client.NomComplet(),
		TypeService:  input.TypeService,
		Statut:       model.StatutFactureEnAttente,
		ModePaiement: input.ModePaiement,
		MontantHT:    input.MontantHT,
		MontantTVA:   tva,
		MontantTTC:   ttc,
		ODRID:        input.ODRID,
	}

	created := s.factures.Add(facture)
	return &created, nil
}

func (s *FactureService) Get(id uuid.UUID) (*model.Facture, error) {
	facture, err := s.factures.Get(id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return facture, nil
}

// MarquerPayee settles an invoice: statut PAYEE, règlement daté du jour.
func (s *FactureService) MarquerPayee(id uuid.UUID, mode model.ModePaiement) (*model.Facture, error) {
	facture, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	if facture.Statut == model.StatutFacturePayee || facture.Statut == model.StatutFactureAnnulee {
		return nil, ErrInvalidInput
	}

	now := time.Now()
	facture.Statut = model.StatutFacturePayee
	facture.ModePaiement = mode
	facture.DateReglement = &now
	return s.factures.Update(*facture)
}

func (s *FactureService) Annuler(id uuid.UUID) (*model.Facture, error) {
	facture, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	if facture.Statut == model.StatutFacturePayee {
		return nil, ErrInvalidInput
	}
	facture.Statut = model.StatutFactureAnnulee
	return s.factures.Update(*facture)
}

type FactureStats struct {
	Total           int
	EnAttente       int
	Impayees        int
	Payees          int
	MontantTotalTTC float64
	MontantImpaye   float64
}

func (s *FactureService) Stats() FactureStats {
	var stats FactureStats
	for _, f := range s.factures.List() {
		stats.Total++
		stats.MontantTotalTTC = round2(stats.MontantTotalTTC + f.MontantTTC)
		switch f.Statut {
		case model.StatutFactureEnAttente:
			stats.EnAttente++
		case model.StatutFactureImpayee:
			stats.Impayees++
			stats.MontantImpaye = round2(stats.MontantImpaye + f.MontantTTC)
		case model.StatutFacturePayee:
			stats.Payees++
		}
	}
	return stats
}

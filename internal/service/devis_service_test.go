package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ldupont/garage-desk/internal/listview"
	"github.com/ldupont/garage-desk/internal/model"
	"github.com/ldupont/garage-desk/internal/store"
)

func newDevisFixture(t *testing.T) (*DevisService, *store.Repos) {
	t.Helper()
	repos := store.NewRepos(store.Options{})
	store.Seed(repos)
	return NewDevisService(repos.Devis, 10, 20, 30), repos
}

func TestDevisListFilterStatut(t *testing.T) {
	repos := store.NewRepos(store.Options{})
	svc := NewDevisService(repos.Devis, 10, 20, 30)
	statuts := []model.StatutDevis{
		model.StatutDevisEnAttente,
		model.StatutDevisAccepte,
		model.StatutDevisRefuse,
		model.StatutDevisExpire,
		model.StatutDevisEnAttente,
	}
	for i, statut := range statuts {
		repos.Devis.Add(model.Devis{ClientNom: string(rune('A' + i)), Statut: statut})
	}

	page := svc.List(ListDevisInput{Statut: string(model.StatutDevisEnAttente)})

	require.Len(t, page.Items, 2)
	assert.Equal(t, "A", page.Items[0].ClientNom)
	assert.Equal(t, "E", page.Items[1].ClientNom)
}

func TestDevisListSortMontantDesc(t *testing.T) {
	repos := store.NewRepos(store.Options{})
	svc := NewDevisService(repos.Devis, 10, 20, 30)
	for _, ttc := range []float64{850.50, 1250.00, 450.75} {
		repos.Devis.Add(model.Devis{MontantTTC: ttc})
	}

	page := svc.List(ListDevisInput{SortKey: DevisSortMontant, Direction: listview.Desc})

	require.Len(t, page.Items, 3)
	assert.Equal(t, 1250.00, page.Items[0].MontantTTC)
	assert.Equal(t, 850.50, page.Items[1].MontantTTC)
	assert.Equal(t, 450.75, page.Items[2].MontantTTC)
}

func TestDevisCreateComputesTotaux(t *testing.T) {
	svc, _ := newDevisFixture(t)

	created, err := svc.Create(CreateDevisInput{
		ClientNom:   "Martin Dubois",
		TypeService: model.TypeServiceMecanique,
		MontantHT:   708.75,
	})

	require.NoError(t, err)
	assert.Equal(t, 141.75, created.MontantTVA)
	assert.Equal(t, 850.50, created.MontantTTC)
	assert.Equal(t, model.StatutDevisEnAttente, created.Statut)
	assert.Contains(t, created.Numero, "DEV-")
	assert.Equal(t, created.DateCreation.AddDate(0, 0, 30).Day(), created.DateValidite.Day())
}

func TestDevisCreateRejectsMontantNegatif(t *testing.T) {
	svc, _ := newDevisFixture(t)

	_, err := svc.Create(CreateDevisInput{
		ClientNom:   "Martin Dubois",
		TypeService: model.TypeServiceMecanique,
		MontantHT:   -5,
	})

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "doit être strictement positif", verr.Fields["montantHT"])
}

func TestDevisAccepterOnlyPending(t *testing.T) {
	svc, repos := newDevisFixture(t)
	pending := repos.Devis.Add(model.Devis{Statut: model.StatutDevisEnAttente})
	refused := repos.Devis.Add(model.Devis{Statut: model.StatutDevisRefuse})

	accepted, err := svc.Accepter(pending.ID)
	require.NoError(t, err)
	assert.Equal(t, model.StatutDevisAccepte, accepted.Statut)

	_, err = svc.Accepter(refused.ID)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestDevisExpirerPerimes(t *testing.T) {
	repos := store.NewRepos(store.Options{})
	svc := NewDevisService(repos.Devis, 10, 20, 30)
	now := time.Now()
	repos.Devis.Add(model.Devis{Statut: model.StatutDevisEnAttente, DateValidite: now.AddDate(0, 0, -1)})
	repos.Devis.Add(model.Devis{Statut: model.StatutDevisEnAttente, DateValidite: now.AddDate(0, 0, 10)})
	repos.Devis.Add(model.Devis{Statut: model.StatutDevisAccepte, DateValidite: now.AddDate(0, 0, -5)})

	expired, err := svc.ExpirerPerimes(now)

	require.NoError(t, err)
	assert.Equal(t, 1, expired)

	stats := svc.Stats()
	assert.Equal(t, 1, stats.Expires)
	assert.Equal(t, 1, stats.EnAttente)
	assert.Equal(t, 1, stats.Acceptes)
}

func TestDevisStats(t *testing.T) {
	svc, _ := newDevisFixture(t)

	stats := svc.Stats()

	assert.Equal(t, 4, stats.Total)
	assert.Equal(t, 1, stats.EnAttente)
	assert.Equal(t, 1, stats.Acceptes)
	assert.Equal(t, 1, stats.Refuses)
	assert.Equal(t, 1, stats.Expires)
	assert.InDelta(t, 2815.25, stats.MontantTotalTTC, 0.01)
}

package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ldupont/garage-desk/internal/listview"
	"github.com/ldupont/garage-desk/internal/model"
	"github.com/ldupont/garage-desk/internal/store"
)

func newODRFixture(t *testing.T) (*ODRService, *store.Repos) {
	t.Helper()
	repos := store.NewRepos(store.Options{})
	store.Seed(repos)
	return NewODRService(repos.ODR, 10), repos
}

func TestODRListSearchByImmatriculation(t *testing.T) {
	svc, _ := newODRFixture(t)

	page := svc.List(ListODRInput{Search: "ab-123"})

	require.Len(t, page.Items, 1)
	assert.Equal(t, "AB-123-CD", page.Items[0].VehiculeImmat)
}

func TestODRListFilterStatut(t *testing.T) {
	svc, _ := newODRFixture(t)

	page := svc.List(ListODRInput{Statut: string(model.StatutODREnCours)})

	require.NotEmpty(t, page.Items)
	for _, o := range page.Items {
		assert.Equal(t, model.StatutODREnCours, o.Statut)
	}
}

func TestODRCreateComputesTotal(t *testing.T) {
	svc, _ := newODRFixture(t)

	created, err := svc.Create(CreateODRInput{
		ClientNom:     "Martin Dubois",
		VehiculeImmat: "AB-123-CD",
		TypeService:   model.TypeServiceMecanique,
		Articles: []ArticleInput{
			{Designation: "Plaquettes avant", PrixUnitaire: 45.50, Quantite: 2},
			{Designation: "Main d'œuvre", PrixUnitaire: 72.00, Quantite: 1},
		},
	})

	require.NoError(t, err)
	assert.Equal(t, model.StatutODREnCours, created.Statut)
	assert.InDelta(t, 163.00, created.MontantTotal, 0.01)
	assert.Contains(t, created.Numero, "ODR-")
}

func TestODRCreateRequiresArticles(t *testing.T) {
	svc, _ := newODRFixture(t)

	_, err := svc.Create(CreateODRInput{
		ClientNom:     "Martin Dubois",
		VehiculeImmat: "AB-123-CD",
		TypeService:   model.TypeServiceMecanique,
	})

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Fields, "articles")
}

func TestODRCreateRejectsBadImmatriculation(t *testing.T) {
	svc, _ := newODRFixture(t)

	_, err := svc.Create(CreateODRInput{
		ClientNom:     "Martin Dubois",
		VehiculeImmat: "1234-AB",
		TypeService:   model.TypeServiceMecanique,
		Articles:      []ArticleInput{{Designation: "Vidange", PrixUnitaire: 89, Quantite: 1}},
	})

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "immatriculation attendue au format AA-123-AA", verr.Fields["vehiculeImmat"])
}

func TestODRCloturer(t *testing.T) {
	svc, repos := newODRFixture(t)
	open := repos.ODR.Add(model.ODR{Statut: model.StatutODREnCours})

	closed, err := svc.Cloturer(open.ID, "travaux terminés")

	require.NoError(t, err)
	assert.Equal(t, model.StatutODRTermine, closed.Statut)
	require.NotNil(t, closed.DateCloture)
	assert.Equal(t, "travaux terminés", closed.Observations)

	_, err = svc.Cloturer(open.ID, "")
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestODRListSortMontantDesc(t *testing.T) {
	repos := store.NewRepos(store.Options{})
	svc := NewODRService(repos.ODR, 10)
	for _, total := range []float64{100, 300, 200} {
		repos.ODR.Add(model.ODR{MontantTotal: total})
	}

	page := svc.List(ListODRInput{SortKey: ODRSortMontant, Direction: listview.Desc})

	require.Len(t, page.Items, 3)
	assert.Equal(t, 300.0, page.Items[0].MontantTotal)
	assert.Equal(t, 100.0, page.Items[2].MontantTotal)
}

func TestODRStats(t *testing.T) {
	svc, _ := newODRFixture(t)

	stats := svc.Stats()

	assert.Equal(t, 3, stats.Total)
	assert.Equal(t, 1, stats.EnCours)
	assert.Equal(t, 1, stats.Termines)
	assert.Equal(t, 1, stats.Annules)
}

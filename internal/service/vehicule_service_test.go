package service

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ldupont/garage-desk/internal/listview"
	"github.com/ldupont/garage-desk/internal/store"
)

func newVehiculeFixture(t *testing.T) (*VehiculeService, *store.Repos) {
	t.Helper()
	repos := store.NewRepos(store.Options{})
	store.Seed(repos)
	return NewVehiculeService(repos.Vehicules, repos.Clients, 10), repos
}

func TestVehiculeListSearchPlate(t *testing.T) {
	svc, _ := newVehiculeFixture(t)

	page := svc.List(ListVehiculesInput{Search: "ab-123"})

	require.Len(t, page.Items, 1)
	assert.Equal(t, "AB-123-CD", page.Items[0].Immatriculation)
}

func TestVehiculeListFilterMarqueAndAnnee(t *testing.T) {
	svc, _ := newVehiculeFixture(t)

	page := svc.List(ListVehiculesInput{Marque: "Renault", Annee: "2022"})

	require.NotEmpty(t, page.Items)
	for _, v := range page.Items {
		assert.Equal(t, "Renault", v.Marque)
		assert.Equal(t, 2022, v.Annee)
	}
}

func TestVehiculeListSortKilometrageTreatsMissingAsZero(t *testing.T) {
	svc, _ := newVehiculeFixture(t)

	page := svc.List(ListVehiculesInput{SortKey: VehiculeSortKilometrage, Direction: listview.Asc})

	require.NotEmpty(t, page.Items)
	assert.Nil(t, page.Items[0].Kilometrage)
}

func TestVehiculeCreate(t *testing.T) {
	svc, repos := newVehiculeFixture(t)
	owner := repos.Clients.List()[0]

	created, err := svc.Create(CreateVehiculeInput{
		ClientID:        owner.ID,
		Immatriculation: "ZZ-999-ZZ",
		Marque:          "Dacia",
		Modele:          "Sandero",
		Annee:           2023,
		Couleur:         "Noir",
		Kilometrage:     12000,
	})

	require.NoError(t, err)
	assert.Equal(t, owner.ID, created.ClientID)
	require.NotNil(t, created.Kilometrage)
	assert.Equal(t, 12000, *created.Kilometrage)
}

func TestVehiculeCreateBadPlate(t *testing.T) {
	svc, repos := newVehiculeFixture(t)
	owner := repos.Clients.List()[0]

	_, err := svc.Create(CreateVehiculeInput{
		ClientID:        owner.ID,
		Immatriculation: "ab123cd",
		Marque:          "Dacia",
		Modele:          "Sandero",
		Annee:           2023,
		Couleur:         "Noir",
	})

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "immatriculation attendue au format AA-123-AA", verr.Fields["immatriculation"])
}

func TestVehiculeCreateUnknownOwner(t *testing.T) {
	svc, _ := newVehiculeFixture(t)

	_, err := svc.Create(CreateVehiculeInput{
		ClientID:        uuid.New(),
		Immatriculation: "ZZ-999-ZZ",
		Marque:          "Dacia",
		Modele:          "Sandero",
		Annee:           2023,
		Couleur:         "Noir",
	})

	assert.ErrorIs(t, err, ErrNotFound)
}

func TestVehiculeStats(t *testing.T) {
	svc, _ := newVehiculeFixture(t)

	stats := svc.Stats()

	assert.Equal(t, 5, stats.Total)
	assert.Equal(t, 3, stats.Marques)
	// 48200, 87500, 98100, 103400 recorded; Trafic has no reading.
	assert.Equal(t, 84300, stats.KilometrageMoyen)
}

package model

import (
	"time"

	"github.com/google/uuid"
)

type Popularite string

const (
	PopulariteFaible  Popularite = "FAIBLE"
	PopulariteMoyenne Popularite = "MOYENNE"
	PopulariteForte   Popularite = "FORTE"
)

// Prestation is a catalog service offering with a base price and duration.
type Prestation struct {
	ID           uuid.UUID
	Nom          string
	Description  string
	TypeService  TypeService
	PrixBase     float64
	DureeMinutes int
	Popularite   Popularite
	Active       bool
	CreatedAt    time.Time
}

// Forfait is a fixed-price package binding a prestation to a vehicle make/model.
type Forfait struct {
	ID           uuid.UUID
	Nom          string
	Description  string
	PrestationID uuid.UUID
	Marque       string
	Modele       string
	PrixBase     float64
	TauxTVA      float64
	Unite        string
}

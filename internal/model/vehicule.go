package model

import (
	"time"

	"github.com/google/uuid"
)

type Vehicule struct {
	ID                 uuid.UUID
	ClientID           uuid.UUID
	Immatriculation    string
	Marque             string
	Modele             string
	Annee              int
	Couleur            string
	Kilometrage        *int
	NumeroSerie        *string
	ImmatriculationAlt *string // ancienne plaque, le cas échéant
	CreatedAt          time.Time
}

package model

import (
	"time"

	"github.com/google/uuid"
)

type TypeService string

const (
	TypeServiceCarrosserie TypeService = "CARROSSERIE"
	TypeServiceMecanique   TypeService = "MECANIQUE"
)

type StatutDevis string

const (
	StatutDevisEnAttente StatutDevis = "EN_ATTENTE"
	StatutDevisAccepte   StatutDevis = "ACCEPTE"
	StatutDevisRefuse    StatutDevis = "REFUSE"
	StatutDevisExpire    StatutDevis = "EXPIRE"
)

type Devis struct {
	ID           uuid.UUID
	Numero       string
	DateCreation time.Time
	DateValidite time.Time
	ClientNom    string // dénormalisé, figé à la création
	TypeService  TypeService
	Statut       StatutDevis
	MontantHT    float64
	MontantTVA   float64
	MontantTTC   float64
}

package model

import (
	"time"

	"github.com/google/uuid"
)

type StatutODR string

const (
	StatutODREnCours StatutODR = "EN_COURS"
	StatutODRTermine StatutODR = "TERMINE"
	StatutODRAnnule  StatutODR = "ANNULE"
)

type Article struct {
	Designation  string
	PrixUnitaire float64
	Quantite     int
}

func (a Article) Total() float64 {
	return a.PrixUnitaire * float64(a.Quantite)
}

// ODR is an "ordre de réparation", the work ticket for a vehicle job.
type ODR struct {
	ID            uuid.UUID
	Numero        string
	DateCreation  time.Time
	DateCloture   *time.Time
	ClientNom     string
	VehiculeImmat string
	TypeService   TypeService
	Statut        StatutODR
	MontantTotal  float64
	Observations  string
	Articles      []Article
}

package model

import (
	"time"

	"github.com/google/uuid"
)

type TypeClient string

const (
	TypeClientNormal      TypeClient = "NORMAL"
	TypeClientGrandCompte TypeClient = "GRAND_COMPTE"
)

type Client struct {
	ID           uuid.UUID
	NumeroClient string
	Nom          string
	Prenom       string
	Email        string
	Telephone    string
	TypeClient   TypeClient
	Entreprise   *string // renseigné pour les grands comptes
	CreatedAt    time.Time
}

// NomComplet is the display name used on documents and exports.
func (c Client) NomComplet() string {
	return c.Prenom + " " + c.Nom
}

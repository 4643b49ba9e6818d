package model

import (
	"time"

	"github.com/google/uuid"
)

type StatutFacture string

const (
	StatutFactureEnAttente     StatutFacture = "EN_ATTENTE"
	StatutFactureImpayee       StatutFacture = "IMPAYEE"
	StatutFacturePayee         StatutFacture = "PAYEE"
	StatutFacturePartiellement StatutFacture = "PARTIELLEMENT_PAYEE"
	StatutFactureAnnulee       StatutFacture = "ANNULEE"
)

type ModePaiement string

const (
	ModePaiementCB       ModePaiement = "CB"
	ModePaiementEspeces  ModePaiement = "ESPECES"
	ModePaiementCheque   ModePaiement = "CHEQUE"
	ModePaiementVirement ModePaiement = "VIREMENT"
)

type Facture struct {
	ID            uuid.UUID
	Numero        string
	DateEmission  time.Time
	DateEcheance  time.Time
	ClientID      uuid.UUID
	ClientNom     string
	TypeService   TypeService
	Statut        StatutFacture
	ModePaiement  ModePaiement
	MontantHT     float64
	MontantTVA    float64
	MontantTTC    float64
	DateReglement *time.Time
	ODRID         *uuid.UUID // ordre de réparation à l'origine de la facture
}

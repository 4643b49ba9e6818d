package store

import (
	"time"

	"github.com/ldupont/garage-desk/internal/model"
)

// Repos groups every repository behind one constructor so the wiring in
// cmd and in tests stays short.
type Repos struct {
	Clients   *ClientRepository
	Vehicules *VehiculeRepository
	Devis     *DevisRepository
	Factures  *FactureRepository
	ODR       *ODRRepository
	Catalogue *CatalogueRepository
}

func NewRepos(opts Options) *Repos {
	return &Repos{
		Clients:   NewClientRepository(opts),
		Vehicules: NewVehiculeRepository(opts),
		Devis:     NewDevisRepository(opts),
		Factures:  NewFactureRepository(opts),
		ODR:       NewODRRepository(opts),
		Catalogue: NewCatalogueRepository(opts),
	}
}

// Seed loads the demo dataset the dashboard ships with.
func Seed(repos *Repos) {
	dubois := repos.Clients.Add(model.Client{
		Nom:        "Dubois",
		Prenom:     "Martin",
		Email:      "martin.dubois@example.fr",
		Telephone:  "06 12 34 56 78",
		TypeClient: model.TypeClientNormal,
		CreatedAt:  date(2025, 1, 12),
	})
	lambert := repos.Clients.Add(model.Client{
		Nom:        "Lambert",
		Prenom:     "Sophie",
		Email:      "sophie.lambert@example.fr",
		Telephone:  "06 98 76 54 32",
		TypeClient: model.TypeClientNormal,
		CreatedAt:  date(2025, 2, 3),
	})
	morel := repos.Clients.Add(model.Client{
		Nom:        "Morel",
		Prenom:     "Julien",
		Email:      "j.morel@transports-morel.fr",
		Telephone:  "04 72 00 11 22",
		TypeClient: model.TypeClientGrandCompte,
		Entreprise: ptr("Transports Morel"),
		CreatedAt:  date(2024, 11, 20),
	})
	garcia := repos.Clients.Add(model.Client{
		Nom:        "Garcia",
		Prenom:     "Élodie",
		Email:      "elodie.garcia@example.fr",
		Telephone:  "07 45 12 98 63",
		TypeClient: model.TypeClientNormal,
		CreatedAt:  date(2025, 3, 8),
	})
	petit := repos.Clients.Add(model.Client{
		Nom:        "Petit",
		Prenom:     "Antoine",
		Email:      "antoine.petit@locavance.fr",
		Telephone:  "01 40 50 60 70",
		TypeClient: model.TypeClientGrandCompte,
		Entreprise: ptr("Locavance"),
		CreatedAt:  date(2025, 1, 27),
	})

	repos.Vehicules.Add(model.Vehicule{
		ClientID:        dubois.ID,
		Immatriculation: "AB-123-CD",
		Marque:          "Renault",
		Modele:          "Clio V",
		Annee:           2021,
		Couleur:         "Gris",
		Kilometrage:     ptr(48200),
	})
	repos.Vehicules.Add(model.Vehicule{
		ClientID:        lambert.ID,
		Immatriculation: "EF-456-GH",
		Marque:          "Peugeot",
		Modele:          "308",
		Annee:           2019,
		Couleur:         "Bleu",
		Kilometrage:     ptr(87500),
		NumeroSerie:     ptr("VF3LCYHZPJS123456"),
	})
	repos.Vehicules.Add(model.Vehicule{
		ClientID:        morel.ID,
		Immatriculation: "IJ-789-KL",
		Marque:          "Renault",
		Modele:          "Master",
		Annee:           2022,
		Couleur:         "Blanc",
		Kilometrage:     ptr(98100),
	})
	repos.Vehicules.Add(model.Vehicule{
		ClientID:        morel.ID,
		Immatriculation: "MN-321-OP",
		Marque:          "Renault",
		Modele:          "Trafic",
		Annee:           2020,
		Couleur:         "Blanc",
	})
	repos.Vehicules.Add(model.Vehicule{
		ClientID:        garcia.ID,
		Immatriculation: "QR-654-ST",
		Marque:          "Citroën",
		Modele:          "C3",
		Annee:           2018,
		Couleur:         "Rouge",
		Kilometrage:     ptr(103400),
	})

	repos.Devis.Add(model.Devis{
		DateCreation: date(2025, 6, 2),
		DateValidite: date(2025, 7, 2),
		ClientNom:    dubois.NomComplet(),
		TypeService:  model.TypeServiceMecanique,
		Statut:       model.StatutDevisEnAttente,
		MontantHT:    708.75,
		MontantTVA:   141.75,
		MontantTTC:   850.50,
	})
	repos.Devis.Add(model.Devis{
		DateCreation: date(2025, 6, 10),
		DateValidite: date(2025, 7, 10),
		ClientNom:    morel.NomComplet(),
		TypeService:  model.TypeServiceCarrosserie,
		Statut:       model.StatutDevisAccepte,
		MontantHT:    1041.67,
		MontantTVA:   208.33,
		MontantTTC:   1250.00,
	})
	repos.Devis.Add(model.Devis{
		DateCreation: date(2025, 5, 21),
		DateValidite: date(2025, 6, 20),
		ClientNom:    lambert.NomComplet(),
		TypeService:  model.TypeServiceMecanique,
		Statut:       model.StatutDevisRefuse,
		MontantHT:    375.63,
		MontantTVA:   75.12,
		MontantTTC:   450.75,
	})
	repos.Devis.Add(model.Devis{
		DateCreation: date(2025, 4, 1),
		DateValidite: date(2025, 5, 1),
		ClientNom:    garcia.NomComplet(),
		TypeService:  model.TypeServiceCarrosserie,
		Statut:       model.StatutDevisExpire,
		MontantHT:    220.00,
		MontantTVA:   44.00,
		MontantTTC:   264.00,
	})

	odr := repos.ODR.Add(model.ODR{
		DateCreation:  date(2025, 6, 12),
		ClientNom:     morel.NomComplet(),
		VehiculeImmat: "IJ-789-KL",
		TypeService:   model.TypeServiceCarrosserie,
		Statut:        model.StatutODRTermine,
		DateCloture:   ptr(date(2025, 6, 18)),
		Observations:  "Remplacement pare-chocs arrière, peinture raccord.",
		Articles: []model.Article{
			{Designation: "Pare-chocs arrière", PrixUnitaire: 420.00, Quantite: 1},
			{Designation: "Main d'œuvre carrosserie", PrixUnitaire: 65.00, Quantite: 6},
			{Designation: "Peinture", PrixUnitaire: 231.67, Quantite: 1},
		},
		MontantTotal: 1041.67,
	})
	repos.ODR.Add(model.ODR{
		DateCreation:  date(2025, 6, 20),
		ClientNom:     dubois.NomComplet(),
		VehiculeImmat: "AB-123-CD",
		TypeService:   model.TypeServiceMecanique,
		Statut:        model.StatutODREnCours,
		Observations:  "Bruit de roulement avant droit à contrôler.",
		Articles: []model.Article{
			{Designation: "Roulement avant", PrixUnitaire: 89.90, Quantite: 1},
			{Designation: "Main d'œuvre mécanique", PrixUnitaire: 72.00, Quantite: 2},
		},
		MontantTotal: 233.90,
	})
	repos.ODR.Add(model.ODR{
		DateCreation:  date(2025, 5, 5),
		ClientNom:     petit.NomComplet(),
		VehiculeImmat: "UV-987-WX",
		TypeService:   model.TypeServiceMecanique,
		Statut:        model.StatutODRAnnule,
		Observations:  "Annulé à la demande du client.",
	})

	repos.Factures.Add(model.Facture{
		DateEmission: date(2025, 6, 19),
		DateEcheance: date(2025, 7, 19),
		ClientID:     morel.ID,
		ClientNom:    morel.NomComplet(),
		TypeService:  model.TypeServiceCarrosserie,
		Statut:       model.StatutFactureEnAttente,
		ModePaiement: model.ModePaiementVirement,
		MontantHT:    1041.67,
		MontantTVA:   208.33,
		MontantTTC:   1250.00,
		ODRID:        ptr(odr.ID),
	})
	repos.Factures.Add(model.Facture{
		DateEmission:  date(2025, 5, 2),
		DateEcheance:  date(2025, 6, 1),
		ClientID:      dubois.ID,
		ClientNom:     dubois.NomComplet(),
		TypeService:   model.TypeServiceMecanique,
		Statut:        model.StatutFacturePayee,
		ModePaiement:  model.ModePaiementCB,
		MontantHT:     708.75,
		MontantTVA:    141.75,
		MontantTTC:    850.50,
		DateReglement: ptr(date(2025, 5, 9)),
	})
	repos.Factures.Add(model.Facture{
		DateEmission: date(2025, 4, 14),
		DateEcheance: date(2025, 5, 14),
		ClientID:     lambert.ID,
		ClientNom:    lambert.NomComplet(),
		TypeService:  model.TypeServiceMecanique,
		Statut:       model.StatutFactureImpayee,
		ModePaiement: model.ModePaiementCheque,
		MontantHT:    375.63,
		MontantTVA:   75.12,
		MontantTTC:   450.75,
	})

	vidange := repos.Catalogue.AddPrestation(model.Prestation{
		Nom:          "Vidange + filtre",
		Description:  "Vidange huile moteur et remplacement du filtre à huile",
		TypeService:  model.TypeServiceMecanique,
		PrixBase:     89.00,
		DureeMinutes: 45,
		Popularite:   model.PopulariteForte,
		Active:       true,
	})
	repos.Catalogue.AddPrestation(model.Prestation{
		Nom:          "Remplacement plaquettes de frein",
		Description:  "Plaquettes avant, contrôle disques inclus",
		TypeService:  model.TypeServiceMecanique,
		PrixBase:     149.00,
		DureeMinutes: 90,
		Popularite:   model.PopulariteMoyenne,
		Active:       true,
	})
	repos.Catalogue.AddPrestation(model.Prestation{
		Nom:          "Débosselage aile",
		Description:  "Débosselage sans peinture, impact léger",
		TypeService:  model.TypeServiceCarrosserie,
		PrixBase:     120.00,
		DureeMinutes: 120,
		Popularite:   model.PopulariteFaible,
		Active:       false,
	})

	repos.Catalogue.AddForfait(model.Forfait{
		Nom:          "Vidange Clio V",
		Description:  "Forfait vidange spécifique Renault Clio V 1.0 TCe",
		PrestationID: vidange.ID,
		Marque:       "Renault",
		Modele:       "Clio V",
		PrixBase:     79.00,
		TauxTVA:      20,
		Unite:        "forfait",
	})
	repos.Catalogue.AddForfait(model.Forfait{
		Nom:          "Vidange 308",
		Description:  "Forfait vidange spécifique Peugeot 308 1.2 PureTech",
		PrestationID: vidange.ID,
		Marque:       "Peugeot",
		Modele:       "308",
		PrixBase:     85.00,
		TauxTVA:      20,
		Unite:        "forfait",
	})
}

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func ptr[T any](v T) *T {
	return &v
}

package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/ldupont/garage-desk/internal/config"
	"github.com/ldupont/garage-desk/internal/export"
	"github.com/ldupont/garage-desk/internal/listview"
	"github.com/ldupont/garage-desk/internal/logger"
	"github.com/ldupont/garage-desk/internal/service"
	"github.com/ldupont/garage-desk/internal/store"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(cfg.Environment)

	repos := store.NewRepos(store.Options{Latency: cfg.Store.Latency})
	store.Seed(repos)

	clientSvc := service.NewClientService(repos.Clients, repos.Vehicules, cfg.Listing.PageSize)
	vehiculeSvc := service.NewVehiculeService(repos.Vehicules, repos.Clients, cfg.Listing.PageSize)
	devisSvc := service.NewDevisService(repos.Devis, cfg.Listing.PageSize, cfg.Billing.VATRate, cfg.Billing.DevisValiditeJrs)
	factureSvc := service.NewFactureService(repos.Factures, repos.Clients, cfg.Listing.PageSize, cfg.Billing.VATRate, cfg.Billing.EcheanceJrs)
	odrSvc := service.NewODRService(repos.ODR, cfg.Listing.PageSize)
	catalogueSvc := service.NewCatalogueService(repos.Catalogue, cfg.Listing.PageSize)

	expired, err := devisSvc.ExpirerPerimes(time.Now())
	if err != nil {
		log.Error().Err(err).Msg("failed to expire stale quotes")
	} else if expired > 0 {
		log.Info().Int("count", expired).Msg("expired stale quotes")
	}

	clientStats := clientSvc.Stats()
	vehiculeStats := vehiculeSvc.Stats()
	devisStats := devisSvc.Stats()
	factureStats := factureSvc.Stats()
	odrStats := odrSvc.Stats()
	catalogueStats := catalogueSvc.Stats()

	log.Info().
		Int("clients", clientStats.Total).
		Int("grands_comptes", clientStats.GrandsComptes).
		Int("vehicules", vehiculeStats.Total).
		Int("devis", devisStats.Total).
		Int("factures", factureStats.Total).
		Float64("montant_impaye", factureStats.MontantImpaye).
		Int("odr_en_cours", odrStats.EnCours).
		Int("prestations", catalogueStats.Prestations).
		Msg("dashboard ready")

	if err := os.MkdirAll(cfg.Export.Dir, 0o755); err != nil {
		log.Fatal().Err(err).Msg("failed to create export directory")
	}

	excelGen := export.NewExcelGenerator()
	pdfGen := export.NewPDFGenerator(export.GarageInfo{
		Nom:       "Garage Desk",
		Adresse:   "14 rue des Forges, 69003 Lyon",
		Telephone: "04 72 00 00 00",
		Email:     "contact@garage-desk.fr",
		SIRET:     "123 456 789 00012",
	})

	today := time.Now().Format("20060102")

	facturesPage := factureSvc.List(service.ListFacturesInput{
		SortKey:   service.FactureSortDateEmission,
		Direction: listview.Desc,
		Page:      1,
	})
	content, err := excelGen.Factures(facturesPage.Items)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to build invoice workbook")
	}
	name := export.BuildFileName("factures", today, "xlsx")
	if err := os.WriteFile(filepath.Join(cfg.Export.Dir, name), content, 0o644); err != nil {
		log.Fatal().Err(err).Msg("failed to write invoice workbook")
	}
	log.Info().Str("file", name).Int("rows", len(facturesPage.Items)).Msg("invoice export written")

	devisPage := devisSvc.List(service.ListDevisInput{
		Statut:  listview.FilterAll,
		SortKey: service.DevisSortDateCreation,
		Page:    1,
	})
	if len(devisPage.Items) > 0 {
		devis := devisPage.Items[0]
		content, err := pdfGen.Devis(devis)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to render quote pdf")
		}
		name := export.BuildFileName("devis", devis.Numero, "pdf")
		if err := os.WriteFile(filepath.Join(cfg.Export.Dir, name), content, 0o644); err != nil {
			log.Fatal().Err(err).Msg("failed to write quote pdf")
		}
		log.Info().Str("file", name).Msg("quote pdf written")
	}
}

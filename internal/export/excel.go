package export

import (
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/ldupont/garage-desk/internal/model"
)

// ExcelGenerator renders list exports as workbooks: one summary sheet,
// one detail sheet with the exported rows.
type ExcelGenerator struct{}

func NewExcelGenerator() *ExcelGenerator {
	return &ExcelGenerator{}
}

// Clients exports the given client rows, typically the current selection
// or the filtered list.
func (g *ExcelGenerator) Clients(clients []model.Client) ([]byte, error) {
	file := excelize.NewFile()

	summarySheet := "Synthèse"
	file.SetSheetName("Sheet1", summarySheet)

	set := func(sheet, cell string, value interface{}) {
		_ = file.SetCellValue(sheet, cell, value)
	}

	grandsComptes := 0
	for _, c := range clients {
		if c.TypeClient == model.TypeClientGrandCompte {
			grandsComptes++
		}
	}

	set(summarySheet, "A1", "Export clients")
	set(summarySheet, "A2", "Date d'export")
	set(summarySheet, "B2", formatDate(time.Now()))
	set(summarySheet, "A3", "Nombre de clients")
	set(summarySheet, "B3", len(clients))
	set(summarySheet, "A4", "Grands comptes")
	set(summarySheet, "B4", grandsComptes)
	_ = file.SetColWidth(summarySheet, "A", "A", 24)
	_ = file.SetColWidth(summarySheet, "B", "B", 16)

	detailSheet := "Clients"
	_, err := file.NewSheet(detailSheet)
	if err != nil {
		return nil, err
	}

	headers := []string{"N° client", "Nom", "Prénom", "E-mail", "Téléphone", "Type", "Entreprise", "Créé le"}
	for i, header := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		set(detailSheet, cell, header)
	}
	for i, c := range clients {
		row := i + 2
		set(detailSheet, fmt.Sprintf("A%d", row), c.NumeroClient)
		set(detailSheet, fmt.Sprintf("B%d", row), c.Nom)
		set(detailSheet, fmt.Sprintf("C%d", row), c.Prenom)
		set(detailSheet, fmt.Sprintf("D%d", row), c.Email)
		set(detailSheet, fmt.Sprintf("E%d", row), c.Telephone)
		set(detailSheet, fmt.Sprintf("F%d", row), string(c.TypeClient))
		set(detailSheet, fmt.Sprintf("G%d", row), formatOptional(c.Entreprise))
		set(detailSheet, fmt.Sprintf("H%d", row), formatDate(c.CreatedAt))
	}
	_ = file.SetColWidth(detailSheet, "A", "A", 12)
	_ = file.SetColWidth(detailSheet, "B", "C", 18)
	_ = file.SetColWidth(detailSheet, "D", "D", 30)
	_ = file.SetColWidth(detailSheet, "E", "H", 18)

	file.SetActiveSheet(0)
	buf, err := file.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Factures exports the given invoice rows with per-status totals.
func (g *ExcelGenerator) Factures(factures []model.Facture) ([]byte, error) {
	file := excelize.NewFile()

	summarySheet := "Synthèse"
	file.SetSheetName("Sheet1", summarySheet)

	set := func(sheet, cell string, value interface{}) {
		_ = file.SetCellValue(sheet, cell, value)
	}

	totalTTC := 0.0
	impaye := 0.0
	for _, f := range factures {
		totalTTC += f.MontantTTC
		if f.Statut == model.StatutFactureImpayee {
			impaye += f.MontantTTC
		}
	}

	set(summarySheet, "A1", "Export factures")
	set(summarySheet, "A2", "Date d'export")
	set(summarySheet, "B2", formatDate(time.Now()))
	set(summarySheet, "A3", "Nombre de factures")
	set(summarySheet, "B3", len(factures))
	set(summarySheet, "A4", "Total TTC")
	set(summarySheet, "B4", formatAmount(totalTTC))
	set(summarySheet, "A5", "Dont impayé")
	set(summarySheet, "B5", formatAmount(impaye))
	_ = file.SetColWidth(summarySheet, "A", "A", 24)
	_ = file.SetColWidth(summarySheet, "B", "B", 16)

	detailSheet := "Factures"
	_, err := file.NewSheet(detailSheet)
	if err != nil {
		return nil, err
	}

	headers := []string{"Numéro", "Client", "Émission", "Échéance", "Statut", "Mode de paiement", "HT", "TVA", "TTC", "Règlement"}
	for i, header := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		set(detailSheet, cell, header)
	}
	for i, f := range factures {
		row := i + 2
		set(detailSheet, fmt.Sprintf("A%d", row), f.Numero)
		set(detailSheet, fmt.Sprintf("B%d", row), f.ClientNom)
		set(detailSheet, fmt.Sprintf("C%d", row), formatDate(f.DateEmission))
		set(detailSheet, fmt.Sprintf("D%d", row), formatDate(f.DateEcheance))
		set(detailSheet, fmt.Sprintf("E%d", row), string(f.Statut))
		set(detailSheet, fmt.Sprintf("F%d", row), string(f.ModePaiement))
		set(detailSheet, fmt.Sprintf("G%d", row), formatAmount(f.MontantHT))
		set(detailSheet, fmt.Sprintf("H%d", row), formatAmount(f.MontantTVA))
		set(detailSheet, fmt.Sprintf("I%d", row), formatAmount(f.MontantTTC))
		if f.DateReglement != nil {
			set(detailSheet, fmt.Sprintf("J%d", row), formatDate(*f.DateReglement))
		}
	}
	_ = file.SetColWidth(detailSheet, "A", "A", 16)
	_ = file.SetColWidth(detailSheet, "B", "B", 24)
	_ = file.SetColWidth(detailSheet, "C", "J", 14)

	file.SetActiveSheet(0)
	buf, err := file.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func formatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format("2006-01-02")
}

func formatOptional(value *string) string {
	if value == nil {
		return ""
	}
	return *value
}

func formatAmount(value float64) string {
	return fmt.Sprintf("%.2f", value)
}

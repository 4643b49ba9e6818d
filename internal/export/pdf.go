package export

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"github.com/jung-kurt/gofpdf"

	"github.com/ldupont/garage-desk/internal/model"
)

// GarageInfo is the letterhead printed on every document.
type GarageInfo struct {
	Nom       string
	Adresse   string
	Telephone string
	Email     string
	SIRET     string
}

type PDFGenerator struct {
	garage GarageInfo
}

func NewPDFGenerator(garage GarageInfo) *PDFGenerator {
	return &PDFGenerator{garage: garage}
}

// Devis renders a printable quote.
func (g *PDFGenerator) Devis(devis model.Devis) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(15, 15, 15)
	pdf.AddPage()
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pdf.SetFont("Helvetica", "B", 14)
	pdf.CellFormat(0, 10, tr("DEVIS"), "", 1, "C", false, 0, "")

	pdf.SetFont("Helvetica", "", 11)
	pdf.CellFormat(0, 6, tr(fmt.Sprintf("Devis n° %s du %s", devis.Numero, formatDateFR(devis.DateCreation))), "", 1, "C", false, 0, "")
	pdf.CellFormat(0, 6, tr(fmt.Sprintf("Valable jusqu'au %s", formatDateFR(devis.DateValidite))), "", 1, "C", false, 0, "")
	pdf.Ln(4)

	g.addGarageBlock(pdf, tr)
	pdf.Ln(2)
	addPartyBlock(pdf, tr, "Client", devis.ClientNom)
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.CellFormat(0, 8, tr("Détail"), "", 1, "L", false, 0, "")

	headers := []string{"Désignation", "Montant HT"}
	widths := []float64{135, 45}
	drawTableRow(pdf, tr, headers, widths, true)
	drawTableRow(pdf, tr, []string{
		fmt.Sprintf("Prestations %s", labelTypeService(devis.TypeService)),
		formatAmountFR(devis.MontantHT),
	}, widths, false)

	addTotals(pdf, tr, devis.MontantHT, devis.MontantTVA, devis.MontantTTC)

	pdf.Ln(6)
	pdf.SetFont("Helvetica", "", 10)
	pdf.MultiCell(0, 5, tr("Bon pour accord (date et signature du client) :"), "", "L", false)
	pdf.Ln(12)
	pdf.CellFormat(0, 6, tr("______________________"), "", 1, "L", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Facture renders a printable invoice. When the originating repair order
// is provided its line items are detailed, otherwise a single summary
// line is printed.
func (g *PDFGenerator) Facture(facture model.Facture, odr *model.ODR) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(15, 15, 15)
	pdf.AddPage()
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pdf.SetFont("Helvetica", "B", 14)
	pdf.CellFormat(0, 10, tr("FACTURE"), "", 1, "C", false, 0, "")

	pdf.SetFont("Helvetica", "", 11)
	pdf.CellFormat(0, 6, tr(fmt.Sprintf("Facture n° %s du %s", facture.Numero, formatDateFR(facture.DateEmission))), "", 1, "C", false, 0, "")
	pdf.CellFormat(0, 6, tr(fmt.Sprintf("Échéance : %s", formatDateFR(facture.DateEcheance))), "", 1, "C", false, 0, "")
	if odr != nil {
		pdf.CellFormat(0, 6, tr(fmt.Sprintf("Référence ODR : %s", odr.Numero)), "", 1, "C", false, 0, "")
	}
	pdf.Ln(4)

	g.addGarageBlock(pdf, tr)
	pdf.Ln(2)
	addPartyBlock(pdf, tr, "Client", facture.ClientNom)
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.CellFormat(0, 8, tr("Détail"), "", 1, "L", false, 0, "")

	headers := []string{"Désignation", "P.U. HT", "Qté", "Total HT"}
	widths := []float64{100, 30, 20, 30}
	drawTableRow(pdf, tr, headers, widths, true)

	if odr != nil && len(odr.Articles) > 0 {
		for _, article := range odr.Articles {
			drawTableRow(pdf, tr, []string{
				article.Designation,
				formatAmountFR(article.PrixUnitaire),
				fmt.Sprintf("%d", article.Quantite),
				formatAmountFR(article.Total()),
			}, widths, false)
		}
	} else {
		drawTableRow(pdf, tr, []string{
			fmt.Sprintf("Prestations %s", labelTypeService(facture.TypeService)),
			formatAmountFR(facture.MontantHT),
			"1",
			formatAmountFR(facture.MontantHT),
		}, widths, false)
	}

	addTotals(pdf, tr, facture.MontantHT, facture.MontantTVA, facture.MontantTTC)

	pdf.Ln(2)
	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(0, 6, tr(fmt.Sprintf("Mode de paiement : %s", labelModePaiement(facture.ModePaiement))), "", 1, "L", false, 0, "")
	if facture.DateReglement != nil {
		pdf.CellFormat(0, 6, tr(fmt.Sprintf("Réglée le %s", formatDateFR(*facture.DateReglement))), "", 1, "L", false, 0, "")
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (g *PDFGenerator) addGarageBlock(pdf *gofpdf.Fpdf, tr func(string) string) {
	pdf.SetFont("Helvetica", "B", 11)
	pdf.CellFormat(0, 6, tr(g.garage.Nom), "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	lines := []string{
		g.garage.Adresse,
		fmt.Sprintf("Tél : %s — %s", g.garage.Telephone, g.garage.Email),
		fmt.Sprintf("SIRET : %s", g.garage.SIRET),
	}
	for _, line := range lines {
		pdf.MultiCell(0, 5, tr(line), "", "L", false)
	}
}

func addPartyBlock(pdf *gofpdf.Fpdf, tr func(string) string, title, name string) {
	pdf.SetFont("Helvetica", "B", 11)
	pdf.CellFormat(0, 6, tr(title), "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	pdf.MultiCell(0, 5, tr(name), "", "L", false)
}

func addTotals(pdf *gofpdf.Fpdf, tr func(string) string, ht, tva, ttc float64) {
	pdf.Ln(2)
	pdf.SetFont("Helvetica", "", 11)
	pdf.CellFormat(0, 6, tr(fmt.Sprintf("Total HT : %s", formatAmountFR(ht))), "", 1, "R", false, 0, "")
	pdf.CellFormat(0, 6, tr(fmt.Sprintf("TVA : %s", formatAmountFR(tva))), "", 1, "R", false, 0, "")
	pdf.SetFont("Helvetica", "B", 11)
	pdf.CellFormat(0, 6, tr(fmt.Sprintf("Total TTC : %s", formatAmountFR(ttc))), "", 1, "R", false, 0, "")
}

func drawTableRow(pdf *gofpdf.Fpdf, tr func(string) string, cols []string, widths []float64, header bool) {
	style := ""
	if header {
		style = "B"
	}
	pdf.SetFont("Helvetica", style, 10)
	for i, col := range cols {
		align := "L"
		if i > 0 {
			align = "R"
		}
		pdf.CellFormat(widths[i], 8, tr(col), "1", 0, align, false, 0, "")
	}
	pdf.Ln(-1)
}

func labelTypeService(t model.TypeService) string {
	switch t {
	case model.TypeServiceCarrosserie:
		return "carrosserie"
	case model.TypeServiceMecanique:
		return "mécanique"
	default:
		return strings.ToLower(string(t))
	}
}

func labelModePaiement(m model.ModePaiement) string {
	switch m {
	case model.ModePaiementCB:
		return "carte bancaire"
	case model.ModePaiementEspeces:
		return "espèces"
	case model.ModePaiementCheque:
		return "chèque"
	case model.ModePaiementVirement:
		return "virement"
	default:
		return strings.ToLower(string(m))
	}
}

func formatDateFR(t time.Time) string {
	if t.IsZero() {
		return "—"
	}
	return t.Format("02/01/2006")
}

func formatAmountFR(value float64) string {
	return fmt.Sprintf("%.2f €", value)
}

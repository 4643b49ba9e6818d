package export

import (
	"bytes"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/ldupont/garage-desk/internal/listview"
	"github.com/ldupont/garage-desk/internal/model"
	"github.com/ldupont/garage-desk/internal/store"
)

func seededRepos() *store.Repos {
	repos := store.NewRepos(store.Options{})
	store.Seed(repos)
	return repos
}

func testGarage() GarageInfo {
	return GarageInfo{
		Nom:       "Garage Desk",
		Adresse:   "14 rue des Forges, 69003 Lyon",
		Telephone: "04 72 00 00 00",
		Email:     "contact@garage-desk.fr",
		SIRET:     "123 456 789 00012",
	}
}

func TestExcelClientsWorkbook(t *testing.T) {
	repos := seededRepos()
	clients := repos.Clients.List()

	content, err := NewExcelGenerator().Clients(clients)
	require.NoError(t, err)
	require.NotEmpty(t, content)

	file, err := excelize.OpenReader(bytes.NewReader(content))
	require.NoError(t, err)
	defer file.Close()

	count, err := file.GetCellValue("Synthèse", "B3")
	require.NoError(t, err)
	assert.Equal(t, "5", count)

	nom, err := file.GetCellValue("Clients", "B2")
	require.NoError(t, err)
	assert.Equal(t, "Dubois", nom)
}

func TestExcelFacturesWorkbook(t *testing.T) {
	repos := seededRepos()
	factures := repos.Factures.List()

	content, err := NewExcelGenerator().Factures(factures)
	require.NoError(t, err)

	file, err := excelize.OpenReader(bytes.NewReader(content))
	require.NoError(t, err)
	defer file.Close()

	total, err := file.GetCellValue("Synthèse", "B4")
	require.NoError(t, err)
	assert.Equal(t, "2551.25", total)

	impaye, err := file.GetCellValue("Synthèse", "B5")
	require.NoError(t, err)
	assert.Equal(t, "450.75", impaye)

	numero, err := file.GetCellValue("Factures", "A2")
	require.NoError(t, err)
	assert.Contains(t, numero, "FAC-")
}

func TestExcelEmptyList(t *testing.T) {
	content, err := NewExcelGenerator().Factures(nil)
	require.NoError(t, err)

	file, err := excelize.OpenReader(bytes.NewReader(content))
	require.NoError(t, err)
	defer file.Close()

	count, err := file.GetCellValue("Synthèse", "B3")
	require.NoError(t, err)
	assert.Equal(t, "0", count)
}

func TestPDFDevis(t *testing.T) {
	repos := seededRepos()
	devis := repos.Devis.List()[0]

	content, err := NewPDFGenerator(testGarage()).Devis(devis)

	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(content, []byte("%PDF")))
}

func TestPDFFactureWithArticles(t *testing.T) {
	repos := seededRepos()

	var withODR *model.Facture
	for _, f := range repos.Factures.List() {
		if f.ODRID != nil {
			facture := f
			withODR = &facture
			break
		}
	}
	require.NotNil(t, withODR)

	odr, err := repos.ODR.Get(*withODR.ODRID)
	require.NoError(t, err)

	content, err := NewPDFGenerator(testGarage()).Facture(*withODR, odr)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(content, []byte("%PDF")))

	// Without the repair order a summary line is still rendered.
	content, err = NewPDFGenerator(testGarage()).Facture(*withODR, nil)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(content, []byte("%PDF")))
}

func TestExcelExportOfSelectedRows(t *testing.T) {
	repos := seededRepos()
	factures := repos.Factures.List()
	require.GreaterOrEqual(t, len(factures), 2)

	sel := listview.NewSelection()
	sel.Toggle(factures[0].ID, true)
	sel.Toggle(factures[1].ID, true)

	selected := listview.Selected(factures, func(f model.Facture) uuid.UUID { return f.ID }, sel)
	require.Len(t, selected, 2)

	content, err := NewExcelGenerator().Factures(selected)
	require.NoError(t, err)

	file, err := excelize.OpenReader(bytes.NewReader(content))
	require.NoError(t, err)
	defer file.Close()

	count, err := file.GetCellValue("Synthèse", "B3")
	require.NoError(t, err)
	assert.Equal(t, "2", count)
}

func TestBuildFileName(t *testing.T) {
	assert.Equal(t, "devis-DEV-2025-0001.pdf", BuildFileName("devis", "DEV-2025-0001", "pdf"))
	assert.Equal(t, "factures-20250901.xlsx", BuildFileName("factures", "20250901", "xlsx"))
	assert.Equal(t, "export-Transports-Morel.xlsx", BuildFileName("export", "Transports Morel", "xlsx"))
	assert.Equal(t, "export.xlsx", BuildFileName("export", "///", "xlsx"))
}

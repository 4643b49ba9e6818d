package listview

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type row struct {
	id      int
	nom     string
	prenom  string
	immat   string
	statut  string
	montant float64
	date    time.Time
	extra   string // optional field, empty when absent
}

func searchFields(r row) []string {
	return []string{r.nom, r.prenom, r.immat, r.extra}
}

func byMontant(a, b row) int {
	return CompareFloats(a.montant, b.montant)
}

func fixtures() []row {
	return []row{
		{id: 1, nom: "Dubois", prenom: "Martin", immat: "AB-123-CD", statut: "EN_ATTENTE", montant: 850.50},
		{id: 2, nom: "Lambert", prenom: "Sophie", immat: "EF-456-GH", statut: "ACCEPTE", montant: 1250.00},
		{id: 3, nom: "Morel", prenom: "Julien", immat: "IJ-789-KL", statut: "REFUSE", montant: 450.75},
		{id: 4, nom: "Garcia", prenom: "Élodie", immat: "MN-321-OP", statut: "EXPIRE", montant: 264.00},
		{id: 5, nom: "Petit", prenom: "Antoine", immat: "QR-654-ST", statut: "EN_ATTENTE", montant: 264.00},
	}
}

func ids(items []row) []int {
	out := make([]int, len(items))
	for i, r := range items {
		out[i] = r.id
	}
	return out
}

func TestRunSearchCaseInsensitiveSubstring(t *testing.T) {
	page := Run(fixtures(), Query[row]{Search: "dubois", SearchFields: searchFields})

	require.Len(t, page.Items, 1)
	assert.Equal(t, "Martin", page.Items[0].prenom)
}

func TestRunSearchMatchesPlateWithHyphens(t *testing.T) {
	page := Run(fixtures(), Query[row]{Search: "ab-123", SearchFields: searchFields})

	require.Len(t, page.Items, 1)
	assert.Equal(t, "AB-123-CD", page.Items[0].immat)
}

func TestRunSearchIsMonotonic(t *testing.T) {
	all := Run(fixtures(), Query[row]{SearchFields: searchFields})
	narrowed := Run(fixtures(), Query[row]{Search: "mar", SearchFields: searchFields})

	assert.LessOrEqual(t, narrowed.TotalFiltered, all.TotalFiltered)
	assert.Subset(t, ids(all.Items), ids(narrowed.Items))
}

func TestRunSearchSkipsAbsentOptionalField(t *testing.T) {
	items := fixtures()
	items[0].extra = "fidélité"

	page := Run(items, Query[row]{Search: "fidélité", SearchFields: searchFields})

	require.Len(t, page.Items, 1)
	assert.Equal(t, 1, page.Items[0].id)
}

func TestRunFilterExactMatchKeepsOrder(t *testing.T) {
	items := []row{
		{id: 1, statut: "EN_ATTENTE"},
		{id: 2, statut: "ACCEPTE"},
		{id: 3, statut: "REFUSE"},
		{id: 4, statut: "EXPIRE"},
		{id: 5, statut: "EN_ATTENTE"},
	}
	filter := Filter[row]{Value: "EN_ATTENTE", Field: func(r row) string { return r.statut }}

	page := Run(items, Query[row]{Filters: []Filter[row]{filter}})

	assert.Equal(t, []int{1, 5}, ids(page.Items))
	for _, r := range page.Items {
		assert.Equal(t, "EN_ATTENTE", r.statut)
	}
}

func TestRunFilterAllSentinelIsNoop(t *testing.T) {
	filter := Filter[row]{Value: FilterAll, Field: func(r row) string { return r.statut }}

	page := Run(fixtures(), Query[row]{Filters: []Filter[row]{filter}})

	assert.Equal(t, len(fixtures()), page.TotalFiltered)
}

func TestRunSortMontantDesc(t *testing.T) {
	items := []row{
		{id: 1, montant: 850.50},
		{id: 2, montant: 1250.00},
		{id: 3, montant: 450.75},
	}

	page := Run(items, Query[row]{Compare: byMontant, Direction: Desc})

	require.Len(t, page.Items, 3)
	assert.Equal(t, []int{2, 1, 3}, ids(page.Items))
}

func TestRunSortAdjacentOrder(t *testing.T) {
	page := Run(fixtures(), Query[row]{Compare: byMontant, Direction: Asc})
	for i := 1; i < len(page.Items); i++ {
		assert.LessOrEqual(t, byMontant(page.Items[i-1], page.Items[i]), 0)
	}

	page = Run(fixtures(), Query[row]{Compare: byMontant, Direction: Desc})
	for i := 1; i < len(page.Items); i++ {
		assert.GreaterOrEqual(t, byMontant(page.Items[i-1], page.Items[i]), 0)
	}
}

func TestRunSortIsStable(t *testing.T) {
	// ids 4 and 5 share the same montant; pre-sort order must survive.
	page := Run(fixtures(), Query[row]{Compare: byMontant, Direction: Asc})

	require.Len(t, page.Items, 5)
	assert.Equal(t, []int{4, 5, 3, 1, 2}, ids(page.Items))
}

func TestRunSortFrenchCollation(t *testing.T) {
	items := []row{
		{id: 1, nom: "Zola"},
		{id: 2, nom: "Émile"},
		{id: 3, nom: "Albert"},
	}
	byNom := func(a, b row) int { return CompareStrings(a.nom, b.nom) }

	page := Run(items, Query[row]{Compare: byNom, Direction: Asc})

	// É sorts with E, not after Z.
	assert.Equal(t, []int{3, 2, 1}, ids(page.Items))
}

func TestRunPaginationWindows(t *testing.T) {
	items := make([]row, 23)
	for i := range items {
		items[i] = row{id: i + 1}
	}

	page1 := Run(items, Query[row]{Page: 1, PageSize: 10})
	page2 := Run(items, Query[row]{Page: 2, PageSize: 10})
	page3 := Run(items, Query[row]{Page: 3, PageSize: 10})

	assert.Equal(t, 3, page1.TotalPages)
	assert.Equal(t, 23, page1.TotalFiltered)
	assert.Len(t, page1.Items, 10)
	assert.Len(t, page2.Items, 10)
	assert.Len(t, page3.Items, 3)
}

func TestRunPaginationCoversEveryItemOnce(t *testing.T) {
	items := make([]row, 23)
	for i := range items {
		items[i] = row{id: i + 1, montant: float64(100 - i)}
	}

	var collected []int
	first := Run(items, Query[row]{Compare: byMontant, Page: 1, PageSize: 10})
	for p := 1; p <= first.TotalPages; p++ {
		page := Run(items, Query[row]{Compare: byMontant, Page: p, PageSize: 10})
		collected = append(collected, ids(page.Items)...)
	}

	require.Len(t, collected, 23)
	seen := make(map[int]bool, len(collected))
	for _, id := range collected {
		assert.False(t, seen[id], "id %d paged twice", id)
		seen[id] = true
	}
}

func TestRunEmptyItems(t *testing.T) {
	page := Run(nil, Query[row]{Search: "dubois", SearchFields: searchFields, Page: 4})

	assert.Empty(t, page.Items)
	assert.Equal(t, 0, page.TotalFiltered)
	assert.Equal(t, 0, page.TotalPages)
	assert.Equal(t, 1, page.Page)
}

func TestRunClampsOutOfRangePage(t *testing.T) {
	items := fixtures()

	beyond := Run(items, Query[row]{Page: 99, PageSize: 2})
	assert.Equal(t, 3, beyond.Page)
	assert.Len(t, beyond.Items, 1)

	below := Run(items, Query[row]{Page: -3, PageSize: 2})
	assert.Equal(t, 1, below.Page)
	assert.Len(t, below.Items, 2)
}

func TestRunPageSizeExceedingCount(t *testing.T) {
	page := Run(fixtures(), Query[row]{PageSize: 50})

	assert.Equal(t, 1, page.TotalPages)
	assert.Len(t, page.Items, len(fixtures()))
}

func TestRunIsIdempotent(t *testing.T) {
	q := Query[row]{
		Search:       "a",
		SearchFields: searchFields,
		Compare:      byMontant,
		Direction:    Desc,
		Page:         1,
		PageSize:     3,
	}

	first := Run(fixtures(), q)
	second := Run(fixtures(), q)

	assert.Equal(t, first, second)
}

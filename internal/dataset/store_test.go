package dataset

import (
	"testing"

	"github.com/shriyae/ladderboard/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleStore(t *testing.T) *Store {
	t.Helper()
	store, _, err := LoadSample()
	require.NoError(t, err)
	return store
}

// TestFilterRecordsEmpty tests that an empty filter returns everything.
func TestFilterRecordsEmpty(t *testing.T) {
	store := sampleStore(t)
	assert.Len(t, store.FilterRecords(schema.Filter{}), store.Len())
}

// TestFilterRecordsSubset tests that every filtered record satisfies the
// filter and nothing matching is left out.
func TestFilterRecordsSubset(t *testing.T) {
	store := sampleStore(t)
	f := schema.Filter{FromYear: 2015, ToYear: 2015, Regions: []string{"Western Europe"}}

	got := store.FilterRecords(f)
	require.NotEmpty(t, got)
	for _, rec := range got {
		assert.Equal(t, 2015, rec.Year)
		assert.Equal(t, "Western Europe", rec.Region)
	}

	// Exactness: the count matches a manual scan of the full dataset.
	want := 0
	for _, rec := range store.All() {
		if rec.Year == 2015 && rec.Region == "Western Europe" {
			want++
		}
	}
	assert.Len(t, got, want)
}

// TestFilterRecordsSorted tests that a single-year filter preserves rank
// order, which is descending score order.
func TestFilterRecordsSorted(t *testing.T) {
	store := sampleStore(t)
	got := store.FilterRecords(schema.Filter{FromYear: 2015, ToYear: 2015, Regions: []string{"Western Europe"}})

	require.NotEmpty(t, got)
	for i := 1; i < len(got); i++ {
		assert.GreaterOrEqual(t, got[i-1].Score, got[i].Score)
	}
}

// TestFilterRecordsNoMatch tests that an out-of-range filter yields an empty
// result, not an error.
func TestFilterRecordsNoMatch(t *testing.T) {
	store := sampleStore(t)

	assert.Empty(t, store.FilterRecords(schema.Filter{FromYear: 1990, ToYear: 1990}))
	assert.Empty(t, store.FilterRecords(schema.Filter{Countries: []string{"Atlantis"}}))
	assert.Empty(t, store.ForYear(1990))
}

// TestFilterRecordsCaseInsensitive tests country/region matching.
func TestFilterRecordsCaseInsensitive(t *testing.T) {
	store := sampleStore(t)

	got := store.FilterRecords(schema.Filter{Countries: []string{"finland", "CHILE"}})
	require.NotEmpty(t, got)
	for _, rec := range got {
		assert.Contains(t, []string{"Finland", "Chile"}, rec.Country)
	}
	assert.Len(t, got, 6) // two countries, three years each
}

// TestCountryRecords tests the per-country timeline view.
func TestCountryRecords(t *testing.T) {
	store := sampleStore(t)

	recs := store.CountryRecords("finland")
	require.Len(t, recs, 3)
	assert.Equal(t, []int{2015, 2019, 2024}, []int{recs[0].Year, recs[1].Year, recs[2].Year})

	assert.Empty(t, store.CountryRecords("Atlantis"))
}

// TestStoreCopies tests that accessors hand out copies, not internal slices.
func TestStoreCopies(t *testing.T) {
	store := sampleStore(t)

	all := store.All()
	all[0].Country = "Mutated"
	assert.NotEqual(t, "Mutated", store.All()[0].Country)

	years := store.Years()
	years[0] = 1800
	assert.NotEqual(t, 1800, store.Years()[0])
}

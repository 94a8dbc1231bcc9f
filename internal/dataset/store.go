package dataset

import (
	"sort"
	"strings"

	"github.com/shriyae/ladderboard/schema"
)

// Store is an immutable, indexed view of a loaded dataset. Build one with
// Load or Parse; all query methods are safe for concurrent use.
type Store struct {
	records []schema.HappinessRecord
	byYear  map[int][]schema.HappinessRecord

	years     []int
	countries []string
	regions   []string
}

// newStore indexes the given records. Records are assumed deduplicated and
// reranked by the loader.
func newStore(records []schema.HappinessRecord) *Store {
	s := &Store{
		records: records,
		byYear:  make(map[int][]schema.HappinessRecord),
	}

	countrySet := make(map[string]bool)
	regionSet := make(map[string]bool)
	for _, rec := range records {
		s.byYear[rec.Year] = append(s.byYear[rec.Year], rec)
		countrySet[rec.Country] = true
		if rec.Region != "" {
			regionSet[rec.Region] = true
		}
	}

	for year := range s.byYear {
		s.years = append(s.years, year)
	}
	sort.Ints(s.years)
	s.countries = sortedKeys(countrySet)
	s.regions = sortedKeys(regionSet)

	// Keep per-year groups in rank order so single-year queries come out
	// already sorted.
	for _, group := range s.byYear {
		sort.Slice(group, func(i, j int) bool { return group[i].Rank < group[j].Rank })
	}

	return s
}

// Len reports the number of records in the store.
func (s *Store) Len() int { return len(s.records) }

// Years returns all years present, ascending.
func (s *Store) Years() []int {
	out := make([]int, len(s.years))
	copy(out, s.years)
	return out
}

// LatestYear returns the most recent year with data, or 0 for an empty store.
func (s *Store) LatestYear() int {
	if len(s.years) == 0 {
		return 0
	}
	return s.years[len(s.years)-1]
}

// Countries returns all country names present, sorted.
func (s *Store) Countries() []string {
	out := make([]string, len(s.countries))
	copy(out, s.countries)
	return out
}

// Regions returns all region names present, sorted.
func (s *Store) Regions() []string {
	out := make([]string, len(s.regions))
	copy(out, s.regions)
	return out
}

// All returns a copy of every record in the store.
func (s *Store) All() []schema.HappinessRecord {
	out := make([]schema.HappinessRecord, len(s.records))
	copy(out, s.records)
	return out
}

// ForYear returns the records for one year in rank order. An absent year
// yields an empty slice, never an error.
func (s *Store) ForYear(year int) []schema.HappinessRecord {
	group := s.byYear[year]
	out := make([]schema.HappinessRecord, len(group))
	copy(out, group)
	return out
}

// FilterRecords returns the records matching the filter. All criteria are
// combined with AND; string matching is case-insensitive. A filter that
// matches nothing yields an empty slice.
func (s *Store) FilterRecords(f schema.Filter) []schema.HappinessRecord {
	if f.IsEmpty() {
		return s.All()
	}

	countryWanted := lowerSet(f.Countries)
	regionWanted := lowerSet(f.Regions)

	var out []schema.HappinessRecord
	for _, rec := range s.records {
		if f.FromYear != 0 && rec.Year < f.FromYear {
			continue
		}
		if f.ToYear != 0 && rec.Year > f.ToYear {
			continue
		}
		if countryWanted != nil && !countryWanted[strings.ToLower(rec.Country)] {
			continue
		}
		if regionWanted != nil && !regionWanted[strings.ToLower(rec.Region)] {
			continue
		}
		out = append(out, rec)
	}
	return out
}

// CountryRecords returns one country's records across years, ascending by
// year. The lookup is case-insensitive.
func (s *Store) CountryRecords(country string) []schema.HappinessRecord {
	want := strings.ToLower(country)
	var out []schema.HappinessRecord
	for _, year := range s.years {
		for _, rec := range s.byYear[year] {
			if strings.ToLower(rec.Country) == want {
				out = append(out, rec)
			}
		}
	}
	return out
}

func lowerSet(values []string) map[string]bool {
	if len(values) == 0 {
		return nil
	}
	set := make(map[string]bool, len(values))
	for _, v := range values {
		set[strings.ToLower(v)] = true
	}
	return set
}

func sortedKeys(set map[string]bool) []string {
	out := make([]string, 0, len(set))
	for k := range set {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

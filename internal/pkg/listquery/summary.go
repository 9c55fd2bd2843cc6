package listquery

// Summary carries the counts list screens show next to their filters.
type Summary struct {
	// TotalCount is the size of the collection that was summarized.
	TotalCount int `json:"total_count"`
	// FilteredCount is the number of records left after search and facets.
	// Summarize sets it to TotalCount; WithFiltered overrides it.
	FilteredCount int `json:"filtered_count"`
	// Counts maps facet name to observed value to number of records.
	Counts map[string]map[string]int `json:"counts"`
}

// Summarize counts, for each named facet, how many records hold each value.
// Records without the field are not counted for that facet.
func Summarize[R Record](records []R, facetNames []string) Summary {
	counts := make(map[string]map[string]int, len(facetNames))
	for _, name := range facetNames {
		counts[name] = make(map[string]int)
	}

	for _, rec := range records {
		for _, name := range facetNames {
			if v, ok := rec.Field(name); ok {
				counts[name][v]++
			}
		}
	}

	return Summary{
		TotalCount:    len(records),
		FilteredCount: len(records),
		Counts:        counts,
	}
}

// WithFiltered returns a copy of s with FilteredCount set to n.
func (s Summary) WithFiltered(n int) Summary {
	s.FilteredCount = n
	return s
}

// Count returns the number of records holding value for facet.
func (s Summary) Count(facet, value string) int {
	return s.Counts[facet][value]
}

package listquery

// Query bundles everything a list endpoint needs from the caller.
type Query struct {
	Search string
	Fields []string
	Facets Facets
	Page   Page
	// SummaryFacets lists the facets counted over the unfiltered collection.
	// When empty, the names in Facets are used.
	SummaryFacets []string
}

// Run applies Search, ApplyFacets and Paginate in that order. The summary is
// computed over the unfiltered records so it can populate filter options, and
// its FilteredCount is the number of matches before pagination.
func Run[R Record](records []R, q Query) (Result[R], Summary) {
	matched := ApplyFacets(Search(records, q.Search, q.Fields), q.Facets)
	result := Paginate(matched, q.Page)

	names := q.SummaryFacets
	if len(names) == 0 {
		names = q.Facets.Names()
	}
	summary := Summarize(records, names).WithFiltered(result.TotalMatched)

	return result, summary
}

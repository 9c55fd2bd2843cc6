package listquery

import (
	"slices"
	"strings"
)

// View holds the list state a client keeps between requests: the search
// text, the selected facet values and the current page. Changing the search
// or any facet selection moves the view back to page 1, so a narrowed result
// set never lands on a page that no longer exists.
//
// A View is not safe for concurrent use.
type View struct {
	search   string
	facets   Facets
	page     int
	pageSize int
}

// NewView returns a view on page 1 with the given page size.
func NewView(pageSize int) *View {
	if pageSize < 1 {
		pageSize = 1
	}
	return &View{facets: Facets{}, page: 1, pageSize: pageSize}
}

// SetSearch replaces the search text.
func (v *View) SetSearch(search string) {
	if strings.TrimSpace(search) == strings.TrimSpace(v.search) {
		v.search = search
		return
	}
	v.search = search
	v.page = 1
}

// ToggleFacet adds value to the facet selection, or removes it when it is
// already selected.
func (v *View) ToggleFacet(facet, value string) {
	selected := v.facets[facet]
	if i := slices.Index(selected, value); i >= 0 {
		v.facets[facet] = slices.Delete(slices.Clone(selected), i, i+1)
	} else {
		v.facets[facet] = append(slices.Clone(selected), value)
	}
	v.page = 1
}

// SetFacet replaces the selection of a facet.
func (v *View) SetFacet(facet string, values ...string) {
	if slices.Equal(v.facets[facet], values) {
		return
	}
	v.facets[facet] = slices.Clone(values)
	v.page = 1
}

// ClearFilters drops the search text and every facet selection.
func (v *View) ClearFilters() {
	v.search = ""
	v.facets = Facets{}
	v.page = 1
}

// SetPage moves to page n. Values below 1 are treated as 1.
func (v *View) SetPage(n int) {
	if n < 1 {
		n = 1
	}
	v.page = n
}

// Page returns the current page number.
func (v *View) Page() int { return v.page }

// Query builds the engine query for the current state.
func (v *View) Query(fields []string) Query {
	return Query{
		Search: v.search,
		Fields: fields,
		Facets: v.facets.Clone(),
		Page:   Page{Number: v.page, Size: v.pageSize},
	}
}

// Sync stores the page the engine actually served, so that a clamped page is
// reflected in the view.
func (v *View) Sync(servedPage int) {
	if servedPage >= 1 {
		v.page = servedPage
	}
}

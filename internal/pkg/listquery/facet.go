package listquery

import (
	"slices"
	"sort"
)

// Facets maps a facet name to its accepted values. A facet with no accepted
// values imposes no constraint.
type Facets map[string][]string

// Active reports whether at least one facet has a selected value.
func (f Facets) Active() bool {
	for _, values := range f {
		if len(values) > 0 {
			return true
		}
	}
	return false
}

// Names returns the facet names in sorted order.
func (f Facets) Names() []string {
	names := make([]string, 0, len(f))
	for name := range f {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Clone returns a deep copy of f.
func (f Facets) Clone() Facets {
	if f == nil {
		return nil
	}
	out := make(Facets, len(f))
	for name, values := range f {
		out[name] = slices.Clone(values)
	}
	return out
}

// ApplyFacets keeps the records that satisfy every facet in filters. Values
// within one facet are OR-ed, facets are AND-ed. Once a facet has a value
// selected, records without that field are excluded. Comparison is exact.
func ApplyFacets[R Record](records []R, filters Facets) []R {
	if !filters.Active() {
		return slices.Clone(records)
	}

	matched := make([]R, 0, len(records))
	for _, rec := range records {
		if matchesFacets(rec, filters) {
			matched = append(matched, rec)
		}
	}
	return matched
}

func matchesFacets(rec Record, filters Facets) bool {
	for name, accepted := range filters {
		if len(accepted) == 0 {
			continue
		}
		v, ok := rec.Field(name)
		if !ok || !slices.Contains(accepted, v) {
			return false
		}
	}
	return true
}

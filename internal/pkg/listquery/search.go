package listquery

import (
	"slices"
	"strings"
)

// Search returns the records where at least one of fields contains query as
// a case-insensitive substring. The query is trimmed first; an empty query
// matches every record. Order is preserved and absent fields count as "".
func Search[R Record](records []R, query string, fields []string) []R {
	q := normalize(query)
	if q == "" {
		return slices.Clone(records)
	}

	matched := make([]R, 0, len(records))
	for _, rec := range records {
		if matchesSearch(rec, q, fields) {
			matched = append(matched, rec)
		}
	}
	return matched
}

func matchesSearch(rec Record, q string, fields []string) bool {
	for _, name := range fields {
		v, _ := rec.Field(name)
		if strings.Contains(strings.ToLower(v), q) {
			return true
		}
	}
	return false
}

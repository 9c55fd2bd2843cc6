package http

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"
)

// listParams holds the query string of a list endpoint. Facet values may be
// repeated (status=Active&status=Probation) or comma separated.
type listParams struct {
	search string
	page   int
	limit  int
	values map[string][]string
}

func parseListParams(r *http.Request) listParams {
	q := r.URL.Query()
	return listParams{
		search: q.Get("search"),
		page:   atoiOrZero(q.Get("page")),
		limit:  atoiOrZero(q.Get("limit")),
		values: q,
	}
}

// facet returns the selected values of name.
func (p listParams) facet(name string) []string {
	var out []string
	for _, raw := range p.values[name] {
		for _, v := range strings.Split(raw, ",") {
			if v = strings.TrimSpace(v); v != "" {
				out = append(out, v)
			}
		}
	}
	return out
}

func atoiOrZero(s string) int {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0
	}
	return n
}

func decodeJSON(r *http.Request, dst interface{}) error {
	return json.NewDecoder(r.Body).Decode(dst)
}

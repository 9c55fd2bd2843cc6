package cli

import (
	"fmt"
	"io"
	"maps"
	"slices"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/cmlabs-hris/hris-admin-go/internal/pkg/apiclient"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
	mutedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#6C7086"))
)

func renderPage(w io.Writer, res resource, page apiclient.ListPage) {
	if len(page.Items) == 0 {
		fmt.Fprintln(w, "No "+res.name+" found.")
	} else {
		headers := make([]string, len(res.columns))
		for i, c := range res.columns {
			headers[i] = c.header
		}
		rows := make([][]string, 0, len(page.Items))
		for _, item := range page.Items {
			row := make([]string, len(res.columns))
			for i, c := range res.columns {
				row[i] = cell(item[c.key])
			}
			rows = append(rows, row)
		}

		t := table.New().
			Border(lipgloss.NormalBorder()).
			Headers(headers...).
			Rows(rows...).
			StyleFunc(func(row, col int) lipgloss.Style {
				if row == table.HeaderRow {
					return headerStyle
				}
				return cellStyle
			})
		fmt.Fprintln(w, t.Render())
	}

	m := page.Meta
	from, to := 0, 0
	if m.TotalItems > 0 {
		from = (m.Page-1)*m.Limit + 1
		to = from + len(page.Items) - 1
	}
	fmt.Fprintf(w, "Showing %d-%d of %d %s (page %d/%d, %d total)\n",
		from, to, m.TotalItems, res.name, m.Page, m.TotalPages, page.Summary.TotalCount)

	for _, facet := range slices.Sorted(maps.Keys(page.Summary.Counts)) {
		counts := page.Summary.Counts[facet]
		parts := make([]string, 0, len(counts))
		for _, value := range slices.Sorted(maps.Keys(counts)) {
			parts = append(parts, fmt.Sprintf("%s %d", value, counts[value]))
		}
		fmt.Fprintln(w, mutedStyle.Render(facet+": "+strings.Join(parts, ", ")))
	}
}

func cell(v any) string {
	switch x := v.(type) {
	case nil:
		return "-"
	case string:
		return x
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(x)
	default:
		return fmt.Sprint(x)
	}
}

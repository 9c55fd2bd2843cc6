package cli

import (
	"encoding/json"
	"fmt"
	"slices"
	"strings"

	"github.com/MakeNowJust/heredoc"
	"github.com/cmlabs-hris/hris-admin-go/internal/pkg/apiclient"
	"github.com/cmlabs-hris/hris-admin-go/internal/pkg/listquery"
	"github.com/spf13/cobra"
)

func resourceCommand(cfg *Config, res resource) *cobra.Command {
	cmd := &cobra.Command{
		Use:   res.name,
		Short: res.short,
	}
	cmd.AddCommand(listCommand(cfg, res))
	return cmd
}

func listCommand(cfg *Config, res resource) *cobra.Command {
	var (
		params apiclient.ListParams
		facets []string
		asJSON bool
		all    bool
	)
	cmd := &cobra.Command{
		Use:   "list",
		Short: "Search, filter and page " + res.name,
		Long: heredoc.Docf(`
			List %s. Facets: %s.

			--facet may be repeated; values of one facet are ORed and different
			facets are ANDed. The summary counts cover the unfiltered list.
		`, res.name, strings.Join(res.facets, ", ")),
		Example: heredoc.Docf(`
			$ hrisctl %[1]s list
			$ hrisctl %[1]s list --facet %[2]s=<value> --page 2
		`, res.name, res.facets[0]),
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			parsed, err := parseFacets(facets, res.facets)
			if err != nil {
				return err
			}

			view := listquery.NewView(max(params.Limit, 1))
			view.SetSearch(params.Search)
			for _, name := range listquery.Facets(parsed).Names() {
				view.SetFacet(name, parsed[name]...)
			}
			view.SetPage(params.Page)

			for {
				q := view.Query(nil)
				page, err := fetch(cmd, cfg, res, apiclient.ListParams{
					Search: q.Search,
					Facets: q.Facets,
					Page:   q.Page.Number,
					Limit:  params.Limit,
				})
				if err != nil {
					return err
				}
				view.Sync(page.Meta.Page)

				if err := printPage(cmd, res, page, asJSON); err != nil {
					return err
				}
				if !all || page.Meta.Page >= page.Meta.TotalPages {
					return nil
				}
				view.SetPage(view.Page() + 1)
			}
		},
	}

	cmd.Flags().StringVarP(&params.Search, "search", "s", "", "case-insensitive text search")
	cmd.Flags().StringArrayVarP(&facets, "facet", "f", nil, "facet filter as key=value (repeatable)")
	cmd.Flags().IntVar(&params.Page, "page", 1, "page number")
	cmd.Flags().IntVar(&params.Limit, "limit", 0, "page size (0 uses the screen default)")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the page as JSON")
	cmd.Flags().BoolVar(&all, "all", false, "print every page from --page to the last")
	return cmd
}

func printPage(cmd *cobra.Command, res resource, page apiclient.ListPage, asJSON bool) error {
	if asJSON {
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(struct {
			apiclient.ListPage
			Meta any `json:"meta"`
		}{page, page.Meta})
	}
	renderPage(cmd.OutOrStdout(), res, page)
	return nil
}

func fetch(cmd *cobra.Command, cfg *Config, res resource, params apiclient.ListParams) (apiclient.ListPage, error) {
	if cfg.Remote != "" {
		return cfg.client().List(cmd.Context(), res.path, params)
	}

	svcs, err := cfg.services()
	if err != nil {
		return apiclient.ListPage{}, err
	}
	data, meta, err := res.offline(cmd.Context(), svcs, params)
	if err != nil {
		return apiclient.ListPage{}, err
	}

	// Offline results go through the same JSON shape the API returns.
	raw, err := json.Marshal(data)
	if err != nil {
		return apiclient.ListPage{}, fmt.Errorf("failed to encode %s: %w", res.name, err)
	}
	var page apiclient.ListPage
	if err := json.Unmarshal(raw, &page); err != nil {
		return apiclient.ListPage{}, fmt.Errorf("failed to decode %s: %w", res.name, err)
	}
	page.Meta = meta
	return page, nil
}

// parseFacets turns key=value flags into facet selections. A value may list
// several options separated by commas.
func parseFacets(flags []string, allowed []string) (map[string][]string, error) {
	out := make(map[string][]string)
	for _, f := range flags {
		key, value, ok := strings.Cut(f, "=")
		key = strings.TrimSpace(key)
		if !ok || key == "" {
			return nil, fmt.Errorf("invalid facet %q: want key=value", f)
		}
		if !slices.Contains(allowed, key) {
			return nil, fmt.Errorf("unknown facet %q: want one of %s", key, strings.Join(allowed, ", "))
		}
		for _, v := range strings.Split(value, ",") {
			if v = strings.TrimSpace(v); v != "" {
				out[key] = append(out[key], v)
			}
		}
	}
	return out, nil
}

func loginCommand(cfg *Config) *cobra.Command {
	var email, password string
	cmd := &cobra.Command{
		Use:   "login",
		Short: "Get an access token from the API",
		Example: heredoc.Doc(`
			$ export HRIS_TOKEN=$(hrisctl login --remote http://localhost:8080/api/v1 --email hr@indianports.gov.in --password password123)
		`),
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if cfg.Remote == "" {
				return fmt.Errorf("login needs --remote")
			}
			token, err := cfg.client().Login(cmd.Context(), email, password)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), token.AccessToken)
			return nil
		},
	}
	cmd.Flags().StringVar(&email, "email", "", "account email")
	cmd.Flags().StringVar(&password, "password", "", "account password")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("password")
	return cmd
}

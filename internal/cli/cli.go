// Package cli implements hrisctl, which runs the admin list queries either
// offline against seed data or against a running API.
package cli

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/MakeNowJust/heredoc"
	"github.com/cmlabs-hris/hris-admin-go/internal/fixtures"
	"github.com/cmlabs-hris/hris-admin-go/internal/pkg/apiclient"
	"github.com/cmlabs-hris/hris-admin-go/internal/repository/memory"
	"github.com/cmlabs-hris/hris-admin-go/internal/service"
	"github.com/spf13/cobra"
)

type Config struct {
	// Remote is the API base URL. Empty means offline.
	Remote       string
	Token        string
	FixturesPath string
	Now          func() time.Time
}

func (c *Config) client() *apiclient.Client {
	return apiclient.New(c.Remote, apiclient.WithToken(c.Token))
}

// services builds in-memory services over the embedded seed data, or over
// FixturesPath when set.
func (c *Config) services() (service.Services, error) {
	now := time.Now
	if c.Now != nil {
		now = c.Now
	}
	var (
		set *fixtures.Set
		err error
	)
	if c.FixturesPath != "" {
		set, err = fixtures.LoadDir(c.FixturesPath, now())
	} else {
		set, err = fixtures.Load(now())
	}
	if err != nil {
		return service.Services{}, fmt.Errorf("failed to load fixtures: %w", err)
	}
	return service.New(memory.New(set), nil), nil
}

// New returns the hrisctl root command.
func New() *cobra.Command {
	cfg := &Config{}
	cmd := &cobra.Command{
		Use:   "hrisctl <command> <subcommand> [flags]",
		Short: "Query HR admin lists",
		Long: heredoc.Doc(`
			Search, filter and page the HR admin lists.

			Without --remote the queries run in-process over the seed data.
			With --remote they are sent to a running API server.
		`),
		Example: heredoc.Doc(`
			$ hrisctl employees list --facet status=Active --search kumar
			$ hrisctl payroll list --facet month=January --limit 5
			$ hrisctl login --remote http://localhost:8080/api/v1 --email admin@indianports.gov.in
		`),
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().StringVar(&cfg.Remote, "remote", os.Getenv("HRIS_API_URL"), "API base URL; queries run offline when empty")
	cmd.PersistentFlags().StringVar(&cfg.Token, "token", os.Getenv("HRIS_TOKEN"), "bearer token for --remote")
	cmd.PersistentFlags().StringVar(&cfg.FixturesPath, "fixtures", os.Getenv("FIXTURES_PATH"), "directory of seed YAML files for offline mode")

	for _, res := range resources {
		cmd.AddCommand(resourceCommand(cfg, res))
	}
	cmd.AddCommand(loginCommand(cfg))
	return cmd
}

// Execute runs the root command with ctx.
func Execute(ctx context.Context) error {
	return New().ExecuteContext(ctx)
}

package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mlanglet/coretrack/pkg/catalog"
	"github.com/mlanglet/coretrack/pkg/generator"
	"github.com/mlanglet/coretrack/pkg/integrations/github"
)

// generateCommand creates the generate subcommand.
func (c *CLI) generateCommand() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Refresh catalog records for the configured cores",
		Long: `Refresh catalog records for every core listed in the config file.

For each core the latest stable and prerelease builds are compared against
the cached catalog record; stale entries are rebuilt from the descriptor
files inside the matching release asset. The GitHub token is read from
GITHUB_TOKEN (or CORETRACK_GITHUB_TOKEN).

Examples:
  coretrack generate
  coretrack generate --config cores/coretrack.toml`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runGenerate(cmd.Context(), configPath)
		},
	}

	cmd.Flags().StringVar(&configPath, "config", defaultConfigPath, "path to the coretrack config file")

	return cmd
}

func (c *CLI) runGenerate(ctx context.Context, configPath string) error {
	cfg, err := LoadConfig(configPath)
	if err != nil {
		return err
	}

	token := github.TokenFromEnv()
	if token == "" {
		printWarning("No GitHub token in environment; using unauthenticated requests")
	}

	cached, err := catalog.Load(cfg.Catalog)
	if err != nil {
		return err
	}

	gen := generator.New(github.NewClient(token), generator.Options{
		Workdir:        cfg.Workdir,
		AssetOverrides: cfg.AssetOverrides,
		Logger:         c.Logger,
	})

	prog := newProgress(c.Logger)
	out := make(catalog.Catalog, 0, len(cfg.Cores))
	updated := 0

	for _, entry := range cfg.Cores {
		prior := cached.Find(entry.DisplayName)
		target := generator.Target{
			Owner:       entry.Owner,
			Repo:        entry.Repo,
			DisplayName: entry.DisplayName,
		}

		rec, err := gen.Run(ctx, target, prior)
		if err != nil {
			printError("%s: %v", entry.DisplayName, err)
			return err
		}

		switch {
		case rec == nil && prior == nil:
			printWarning("%s: no release contains a usable core, skipping", entry.DisplayName)
			continue
		case rec == nil:
			// No channel yielded a core this run; the prior record stays.
			rec = prior
			printDetail("%s: kept prior record", entry.DisplayName)
		case rec == prior:
			printDetail("%s: up to date", entry.DisplayName)
		default:
			updated++
			printSuccess("Updated %s (%s)", styleHighlight.Render(entry.DisplayName), rec.Identifier)
		}

		appendRecord(&out, entry.Owner, *rec)
	}

	if err := catalog.Save(out, cfg.Catalog); err != nil {
		return fmt.Errorf("write catalog %s: %w", cfg.Catalog, err)
	}

	total := 0
	for _, o := range out {
		total += len(o.Cores)
	}
	prog.done(fmt.Sprintf("Wrote %s: %d cores, %d updated", cfg.Catalog, total, updated))
	return nil
}

// appendRecord adds rec to the owner's group, preserving config order of
// both owners and cores.
func appendRecord(cat *catalog.Catalog, owner string, rec catalog.Record) {
	for i := range *cat {
		if (*cat)[i].Username == owner {
			(*cat)[i].Cores = append((*cat)[i].Cores, rec)
			return
		}
	}
	*cat = append(*cat, catalog.Owner{Username: owner, Cores: []catalog.Record{rec}})
}

package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
)

// cacheCommand creates the cache management command. The "cache" is the
// working directory holding downloaded release archives and their
// extractions, which make repeat runs skip the network.
func (c *CLI) cacheCommand() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "cache",
		Short: "Manage downloaded release archives",
	}
	cmd.PersistentFlags().StringVar(&configPath, "config", defaultConfigPath, "path to the coretrack config file")

	cmd.AddCommand(c.cacheClearCommand(&configPath))
	cmd.AddCommand(c.cachePathCommand(&configPath))

	return cmd
}

// cacheClearCommand creates the "cache clear" subcommand. Only archives and
// their matching extraction directories are removed; anything else in the
// working directory is left alone.
func (c *CLI) cacheClearCommand(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Remove downloaded archives and their extractions",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := LoadConfig(*configPath)
			if err != nil {
				return err
			}

			entries, err := os.ReadDir(cfg.Workdir)
			if os.IsNotExist(err) {
				printInfo("Cache is empty")
				return nil
			}
			if err != nil {
				return err
			}

			count := 0
			for _, e := range entries {
				if e.IsDir() || !strings.HasSuffix(e.Name(), ".zip") {
					continue
				}
				archive := filepath.Join(cfg.Workdir, e.Name())
				extracted := strings.TrimSuffix(archive, ".zip")
				if err := os.Remove(archive); err == nil {
					count++
				}
				if err := os.RemoveAll(extracted); err != nil {
					return err
				}
			}

			printSuccess("Cleared %d cached archives", count)
			printDetail("Directory: %s", cfg.Workdir)
			return nil
		},
	}
}

// cachePathCommand creates the "cache path" subcommand.
func (c *CLI) cachePathCommand(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Print the archive working directory",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := LoadConfig(*configPath)
			if err != nil {
				return err
			}
			fmt.Println(cfg.Workdir)
			return nil
		},
	}
}

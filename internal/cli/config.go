package cli

import (
	"os"

	"github.com/BurntSushi/toml"

	"github.com/mlanglet/coretrack/pkg/errors"
)

// Default paths relative to the invocation directory.
const (
	defaultConfigPath  = "coretrack.toml"
	defaultCatalogPath = "cores.yml"
)

// Config is the coretrack.toml file listing the cores to track.
//
//	catalog = "cores.yml"
//	workdir = "."
//
//	[asset_overrides]
//	"Spiritualized GBA" = 1
//
//	[[cores]]
//	owner = "budude2"
//	repo = "openfpga-GBA"
//	display_name = "GBA for Pocket"
type Config struct {
	// Catalog is the path of the catalog YAML file. Defaults to cores.yml.
	Catalog string `toml:"catalog"`

	// Workdir is where release archives are downloaded and extracted.
	// Defaults to the current working directory.
	Workdir string `toml:"workdir"`

	// AssetOverrides maps display names to the release asset index to use,
	// merged over the built-in override table.
	AssetOverrides map[string]int `toml:"asset_overrides"`

	Cores []CoreEntry `toml:"cores"`
}

// CoreEntry identifies one tracked core. DisplayName is the catalog
// identity and may differ from the repository name.
type CoreEntry struct {
	Owner       string `toml:"owner"`
	Repo        string `toml:"repo"`
	DisplayName string `toml:"display_name"`
}

// LoadConfig reads and validates the TOML config at path.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "read config %s", path)
	}

	var cfg Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "parse config %s", path)
	}

	if cfg.Catalog == "" {
		cfg.Catalog = defaultCatalogPath
	}
	if cfg.Workdir == "" {
		cfg.Workdir = "."
	}

	if len(cfg.Cores) == 0 {
		return nil, errors.New(errors.ErrCodeInvalidConfig, "%s lists no cores", path)
	}
	for i, c := range cfg.Cores {
		if c.Owner == "" || c.Repo == "" {
			return nil, errors.New(errors.ErrCodeInvalidConfig, "cores[%d]: owner and repo are required", i)
		}
		if c.DisplayName == "" {
			return nil, errors.New(errors.ErrCodeInvalidConfig, "cores[%d] (%s/%s): display_name is required", i, c.Owner, c.Repo)
		}
	}
	return &cfg, nil
}

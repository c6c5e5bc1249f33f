package config

import (
	"os"
	"path/filepath"
	"strings"

	"mcpackr/internal/assetindex"
)

const (
	defaultConfigPath          = "~/.config/mcpackr/config.toml"
	defaultProjectConfig       = "mcpackr.toml"
	defaultLogFormat           = "console"
	defaultLogLevel            = "info"
	defaultParallelism         = 1
	defaultParticlesCrop       = 128
	defaultLedgerFile          = "ledger.db"
	defaultLogSubdir           = "logs"
	defaultInlineParentDisplay = true
	defaultLowercasePaths      = true
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			StateDir: defaultStateDir(),
		},
		Port: Port{
			LowercasePaths:      defaultLowercasePaths,
			InlineParentDisplay: defaultInlineParentDisplay,
			Exclude:             append([]string(nil), assetindex.DefaultExclude...),
			Parallelism:         defaultParallelism,
			ParticlesCrop:       defaultParticlesCrop,
		},
		Ledger: Ledger{
			Enabled: true,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}

func defaultStateDir() string {
	if base, ok := os.LookupEnv("XDG_DATA_HOME"); ok && strings.TrimSpace(base) != "" {
		return filepath.Join(base, "mcpackr")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "~/.local/share/mcpackr"
	}
	return filepath.Join(home, ".local", "share", "mcpackr")
}

package porter

import (
	"log/slog"
	"time"

	"mcpackr/internal/config"
	"mcpackr/internal/ledger"
	"mcpackr/internal/logging"
	"mcpackr/internal/revision"
)

const (
	lockFileName         = ".mcpackr.lock"
	defaultParticlesCrop = 128
)

// Options configures one run.
type Options struct {
	PackDir string
	// OutputDir receives the archives. Empty selects PackDir.
	OutputDir string
	// Targets lists the revisions to build. Empty builds the whole catalog.
	Targets             []revision.ID
	LowercasePaths      bool
	InlineParentDisplay bool
	// Exclude holds junk file patterns. Nil selects the index defaults.
	Exclude          []string
	Parallelism      int
	ParticlesCrop    int
	CompressionLevel int

	// Ledger records produced archives when set.
	Ledger *ledger.Store
	// Logger receives progress. When nil, Log is used as a plain text sink.
	Logger *slog.Logger
	Log    func(string)

	// now stamps ledger entries; tests override it.
	now func() time.Time
}

// DefaultOptions returns options matching the configuration defaults.
func DefaultOptions(packDir string) Options {
	return Options{
		PackDir:             packDir,
		LowercasePaths:      true,
		InlineParentDisplay: true,
		Parallelism:         1,
		ParticlesCrop:       defaultParticlesCrop,
	}
}

// OptionsFromConfig maps the [port] and [paths] sections onto Options.
func OptionsFromConfig(cfg *config.Config, packDir string) Options {
	if cfg == nil {
		return DefaultOptions(packDir)
	}
	return Options{
		PackDir:             packDir,
		OutputDir:           cfg.Paths.OutputDir,
		Targets:             cfg.TargetRevisions(),
		LowercasePaths:      cfg.Port.LowercasePaths,
		InlineParentDisplay: cfg.Port.InlineParentDisplay,
		Exclude:             cfg.Port.Exclude,
		Parallelism:         cfg.Port.Parallelism,
		ParticlesCrop:       cfg.Port.ParticlesCrop,
		CompressionLevel:    cfg.Port.CompressionLevel,
	}
}

func (o Options) withDefaults() Options {
	if o.Parallelism < 1 {
		o.Parallelism = 1
	}
	if o.ParticlesCrop <= 0 {
		o.ParticlesCrop = defaultParticlesCrop
	}
	if o.now == nil {
		o.now = time.Now
	}
	if o.Logger == nil {
		o.Logger = logging.NewSinkLogger(o.Log)
	}
	return o
}

// Archive describes one produced archive.
type Archive struct {
	Revision   revision.ID
	Label      string
	Path       string
	Entries    int
	SHA256     string
	Complaints []string
}

// Result summarizes a run.
type Result struct {
	RunID    string
	PackName string
	Source   revision.ID
	// Archives follow catalog order.
	Archives []Archive
	// Complaints of every target, deduplicated, in target order.
	Complaints []string
}

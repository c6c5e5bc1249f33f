package preflight

import (
	"context"

	"mcpackr/internal/config"
)

// Result reports the outcome of a single preflight check.
type Result struct {
	Name   string
	Passed bool
	Detail string
}

// RunAll executes every applicable check for the pack at packDir.
func RunAll(ctx context.Context, cfg *config.Config, packDir string) []Result {
	var results []Result

	results = append(results, CheckManifest(packDir))
	results = append(results, CheckAssets(packDir))

	outputDir := packDir
	if cfg != nil {
		outputDir = cfg.OutputDirFor(packDir)
	}
	results = append(results, CheckDirectoryAccess("Output directory", outputDir))

	if cfg != nil && cfg.Ledger.Enabled {
		results = append(results, CheckLedger(ctx, cfg.Ledger.Path))
	}
	return results
}

// Failed returns the results that did not pass.
func Failed(results []Result) []Result {
	var out []Result
	for _, r := range results {
		if !r.Passed {
			out = append(out, r)
		}
	}
	return out
}

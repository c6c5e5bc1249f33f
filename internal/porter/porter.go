package porter

import (
	"context"
	"log/slog"
	"path/filepath"

	"github.com/gofrs/flock"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"mcpackr/internal/assetindex"
	"mcpackr/internal/complaint"
	"mcpackr/internal/fileutil"
	"mcpackr/internal/ledger"
	"mcpackr/internal/logging"
	"mcpackr/internal/manifest"
	"mcpackr/internal/preflight"
	"mcpackr/internal/resolver"
	"mcpackr/internal/revision"
	"mcpackr/internal/textutil"
)

// Port builds the requested target archives for the pack at opts.PackDir.
func Port(ctx context.Context, opts Options) (*Result, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	opts = opts.withDefaults()

	packDir, err := filepath.Abs(opts.PackDir)
	if err != nil {
		return nil, Wrap(ErrInvalidPack, "resolve pack directory", opts.PackDir, err)
	}
	for _, check := range []preflight.Result{preflight.CheckManifest(packDir), preflight.CheckAssets(packDir)} {
		if !check.Passed {
			return nil, Wrap(ErrInvalidPack, "validate", check.Detail, nil)
		}
	}
	source, err := manifest.Load(filepath.Join(packDir, assetindex.ManifestName))
	if err != nil {
		return nil, Wrap(ErrInvalidPack, "read manifest", "", err)
	}

	outputDir := opts.OutputDir
	if outputDir == "" {
		outputDir = packDir
	}
	if outputDir, err = filepath.Abs(outputDir); err != nil {
		return nil, Wrap(ErrOutput, "resolve output directory", opts.OutputDir, err)
	}
	if check := preflight.CheckDirectoryAccess("Output directory", outputDir); !check.Passed {
		return nil, Wrap(ErrOutput, "validate", check.Detail, nil)
	}

	runID := uuid.NewString()
	ctx = logging.WithRunID(ctx, runID)
	base := logging.NewComponentLogger(opts.Logger, "porter")
	logger := logging.WithContext(ctx, base)

	lock := flock.New(filepath.Join(outputDir, lockFileName))
	locked, err := lock.TryLock()
	if err != nil {
		return nil, Wrap(ErrOutput, "acquire lock", outputDir, err)
	}
	if !locked {
		return nil, Wrap(ErrBusy, "acquire lock", outputDir+" is in use by another mcpackr run", nil)
	}
	defer func() {
		if err := lock.Unlock(); err != nil {
			logger.Warn("failed to release output lock", logging.Error(err))
		}
	}()

	packName := filepath.Base(packDir)
	for _, rev := range revision.IDs() {
		stale := filepath.Join(outputDir, textutil.ArchiveName(packName, rev))
		if err := fileutil.RemoveIfExists(stale); err != nil {
			return nil, Wrap(ErrOutput, "remove previous archive", "Failed to delete "+stale, err)
		}
	}

	logger.Info("Indexing resource pack...",
		logging.String("pack", packDir),
		logging.Int("targets", len(revision.Normalize(opts.Targets))),
		logging.Bool("lowercase", opts.LowercasePaths))
	paths, err := assetindex.Index(packDir, assetindex.Options{Exclude: opts.Exclude})
	if err != nil {
		return nil, Wrap(ErrAsset, "index", packDir, err)
	}
	resolveComplaints := complaint.NewSet()
	sets := resolver.Resolve(paths, revision.IDs(), resolveComplaints)

	targets := revision.Normalize(opts.Targets)
	archives := make([]Archive, len(targets))
	perTarget := make([]*complaint.Set, len(targets))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(opts.Parallelism)
	for i, rev := range targets {
		perTarget[i] = complaint.NewSet()
		b := newBuild(buildParams{
			packDir:    packDir,
			packName:   packName,
			outputDir:  outputDir,
			manifest:   source,
			sets:       sets,
			target:     rev,
			complaints: perTarget[i],
			opts:       &opts,
			logger:     base,
		})
		g.Go(func() error {
			archive, err := b.run(logging.WithRevision(gctx, int(rev)))
			if err != nil {
				return err
			}
			archives[i] = archive
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	merged := complaint.NewSet()
	merged.Merge(resolveComplaints)
	for _, set := range perTarget {
		merged.Merge(set)
	}

	result := &Result{
		RunID:      runID,
		PackName:   packName,
		Source:     source.Format,
		Archives:   archives,
		Complaints: merged.List(),
	}
	if opts.Ledger != nil {
		recordArchives(ctx, opts, result, logger)
	}

	if len(result.Complaints) > 0 {
		logger.Info("The resource pack has been ported. However, there are some complaints:")
		for _, msg := range result.Complaints {
			logger.Warn(msg)
		}
	} else {
		logger.Info("The resource pack has successfully been ported.")
	}
	return result, nil
}

func recordArchives(ctx context.Context, opts Options, result *Result, logger *slog.Logger) {
	for _, a := range result.Archives {
		_, err := opts.Ledger.Record(ctx, ledger.Entry{
			RunID:          result.RunID,
			PackName:       result.PackName,
			SourceRevision: result.Source,
			Revision:       a.Revision,
			Label:          a.Label,
			Path:           a.Path,
			Entries:        a.Entries,
			SHA256:         a.SHA256,
			Complaints:     len(a.Complaints),
			CreatedAt:      opts.now(),
		})
		if err != nil {
			logger.Warn("failed to record archive in ledger",
				logging.String(logging.FieldArchive, a.Path),
				logging.Error(err))
		}
	}
}

package porter

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"mcpackr/internal/archive"
	"mcpackr/internal/assetindex"
	"mcpackr/internal/complaint"
	"mcpackr/internal/conversion"
	"mcpackr/internal/descriptor"
	"mcpackr/internal/fileutil"
	"mcpackr/internal/logging"
	"mcpackr/internal/manifest"
	"mcpackr/internal/pathmap"
	"mcpackr/internal/resolver"
	"mcpackr/internal/revision"
	"mcpackr/internal/textutil"
)

const (
	pngExt     = ".png"
	sidecarExt = ".png.mcmeta"
	jsonExt    = ".json"
)

type buildParams struct {
	packDir    string
	packName   string
	outputDir  string
	manifest   *manifest.Manifest
	sets       *resolver.WorkingSets
	target     revision.ID
	complaints *complaint.Set
	opts       *Options
	logger     *slog.Logger
}

// build produces the archive of one target revision. It is not safe for
// concurrent use; Port creates one per target.
type build struct {
	buildParams
	source   revision.ID
	table    conversion.Table
	rewriter *descriptor.Rewriter
	lower    cases.Caser
	zw       *archive.Writer
}

func newBuild(p buildParams) *build {
	source := p.manifest.Format
	rewriter := descriptor.New(source, p.target, p.complaints)
	rewriter.InlineParentDisplay = p.opts.InlineParentDisplay
	return &build{
		buildParams: p,
		source:      source,
		table:       rewriter.Table,
		rewriter:    rewriter,
		lower:       cases.Lower(language.English),
	}
}

func (b *build) run(ctx context.Context) (Archive, error) {
	b.logger = logging.WithContext(ctx, b.logger)
	logger := b.logger
	started := time.Now()

	dest := filepath.Join(b.outputDir, textutil.ArchiveName(b.packName, b.target))
	logger.Info("Creating " + b.target.Label() + " version...")

	zw, err := archive.Create(dest, b.complaints, archive.Options{Level: b.opts.CompressionLevel})
	if err != nil {
		return Archive{}, Wrap(ErrOutput, "create archive", dest, err)
	}
	b.zw = zw

	for _, p := range b.sets.Set(b.target) {
		if err := ctx.Err(); err != nil {
			zw.Abort()
			return Archive{}, err
		}
		if err := b.process(p); err != nil {
			zw.Abort()
			return Archive{}, err
		}
	}
	if !zw.Has(assetindex.ManifestName) {
		if err := b.writeManifest(assetindex.Path(assetindex.ManifestName), false); err != nil {
			zw.Abort()
			return Archive{}, err
		}
	}
	if err := zw.Close(); err != nil {
		return Archive{}, Wrap(ErrOutput, "close archive", dest, err)
	}

	sum, err := fileutil.SHA256File(dest)
	if err != nil {
		return Archive{}, Wrap(ErrOutput, "hash archive", dest, err)
	}
	logger.Info("archive written",
		logging.String(logging.FieldArchive, dest),
		logging.Int("entries", zw.Len()),
		logging.Int("complaints", b.complaints.Len()),
		logging.Duration("elapsed", time.Since(started)))

	return Archive{
		Revision:   b.target,
		Label:      b.target.Label(),
		Path:       dest,
		Entries:    zw.Len(),
		SHA256:     sum,
		Complaints: b.complaints.List(),
	}, nil
}

// process routes one working set file to its output entries.
func (b *build) process(p assetindex.Path) error {
	logical := p.Logical()
	_, override := p.Override()
	key := b.lower.String(logical)

	if key == assetindex.ManifestName {
		return b.writeManifest(p, override)
	}

	dir, file := path.Split(logical)
	dirKey, fileKey := b.lower.String(dir), b.lower.String(file)
	placed := false

	if cat, ok := b.textureCategory(dirKey); ok {
		if stem, ext := splitTextureExt(fileKey); ext != "" {
			if mapped, ok := b.table.Texture(stem); ok {
				if mapped == "" {
					b.skipped(p, "no texture counterpart")
					return nil
				}
				file = mapped + ext
			}
		}
		dir = pathmap.TextureDir(cat, b.target)
		placed = true
	} else if stem, ok := strings.CutSuffix(fileKey, jsonExt); ok {
		var (
			mapped string
			found  bool
		)
		switch {
		case dirKey == pathmap.BlockStatesRoot:
			mapped, found = b.table.BlockState(stem)
		case strings.HasPrefix(dirKey, pathmap.ModelsRoot):
			mapped, found = b.table.Model(stem)
		}
		if found {
			if mapped == "" {
				b.skipped(p, "no descriptor counterpart")
				return nil
			}
			file = mapped + jsonExt
		}
	}

	if handled, err := b.transcodeIcon(p, dirKey, fileKey); handled || err != nil {
		return err
	}
	if handled, err := b.particles(p, key, override); handled || err != nil {
		return err
	}

	name := dir + file
	if !placed {
		name = pathmap.Remap(name, b.source, b.target)
	}
	if b.opts.LowercasePaths {
		name = b.lower.String(name)
	}

	data, err := b.read(p)
	if err != nil {
		return err
	}
	nameKey := b.lower.String(name)
	if strings.HasSuffix(nameKey, jsonExt) {
		nameDir, _ := path.Split(nameKey)
		var ok bool
		switch {
		case nameDir == pathmap.BlockStatesRoot:
			data, ok = b.rewrite(p, name, data, b.rewriter.BlockState)
		case strings.HasPrefix(nameDir, pathmap.ModelsRoot):
			data, ok = b.rewrite(p, name, data, b.rewriter.Model)
		default:
			ok = true
		}
		if !ok {
			return nil
		}
	}
	_, err = b.add(name, data)
	return err
}

func (b *build) writeManifest(p assetindex.Path, override bool) error {
	m := b.manifest
	if override {
		data, err := b.read(p)
		if err != nil {
			return err
		}
		parsed, err := manifest.Parse(data)
		if err != nil {
			b.complaints.Addf("%s: %v; the base pack.mcmeta is used instead.", p, err)
		} else {
			m = parsed
		}
	}
	data, err := m.Render(b.target)
	if err != nil {
		return Wrap(ErrAsset, "render manifest", p.String(), err)
	}
	_, err = b.add(assetindex.ManifestName, data)
	return err
}

// rewrite runs a descriptor rewrite. ok is false when the asset has no
// counterpart and must be dropped. Unparseable descriptors are copied as-is.
func (b *build) rewrite(p assetindex.Path, name string, data []byte, fn func(string, []byte) ([]byte, error)) ([]byte, bool) {
	out, err := fn(name, data)
	switch {
	case err == nil:
		return out, true
	case errors.Is(err, descriptor.ErrNoEquivalent):
		b.skipped(p, err.Error())
		return nil, false
	default:
		b.complaints.Addf("%v; the file was copied unchanged.", err)
		return data, true
	}
}

func (b *build) textureCategory(dirKey string) (pathmap.Category, bool) {
	for _, c := range []pathmap.Category{pathmap.Blocks, pathmap.Items} {
		if dirKey == pathmap.TextureDir(c, b.source) {
			return c, true
		}
	}
	return 0, false
}

func splitTextureExt(name string) (string, string) {
	for _, ext := range []string{sidecarExt, pngExt} {
		if stem, ok := strings.CutSuffix(name, ext); ok {
			return stem, ext
		}
	}
	return name, ""
}

func (b *build) read(p assetindex.Path) ([]byte, error) {
	data, err := os.ReadFile(filepath.Join(b.packDir, filepath.FromSlash(p.String())))
	if err != nil {
		return nil, Wrap(ErrAsset, "read", p.String(), err)
	}
	return data, nil
}

// add writes an entry; false means the name was already taken and a
// complaint was recorded.
func (b *build) add(name string, data []byte) (bool, error) {
	added, err := b.zw.Add(name, data)
	if err != nil {
		return false, Wrap(ErrOutput, "write entry", name, err)
	}
	return added, nil
}

func (b *build) skipped(p assetindex.Path, reason string) {
	b.logger.Debug("asset dropped", logging.String(logging.FieldPath, p.String()), logging.String("reason", reason))
}

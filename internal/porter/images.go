package porter

import (
	"image"

	"mcpackr/internal/assetindex"
	"mcpackr/internal/atlas"
	"mcpackr/internal/pathmap"
	"mcpackr/internal/revision"
)

const particlesPath = pathmap.TexturesRoot + "particle/particles.png"

// transcodeIcon converts compass and clock textures when the build crosses
// the naming threshold. handled reports that p needs no further processing.
func (b *build) transcodeIcon(p assetindex.Path, dirKey, fileKey string) (bool, error) {
	if !revision.Crosses(b.source, b.target) || dirKey != pathmap.TextureDir(pathmap.Items, b.source) {
		return false, nil
	}
	icon, kind, index := atlas.Match(fileKey)
	targetDir := pathmap.TextureDir(pathmap.Items, b.target)

	if b.target.Class() == revision.Modern {
		switch kind {
		case atlas.KindSidecar:
			return true, nil
		case atlas.KindNone, atlas.KindAtlas:
			return false, nil
		}
		if index != 0 {
			return true, nil
		}
		return true, b.stackFrames(icon, targetDir)
	}

	switch kind {
	case atlas.KindSidecar:
		return true, nil
	case atlas.KindAtlas:
		return true, b.sliceAtlas(p, icon, targetDir)
	}
	return false, nil
}

func (b *build) stackFrames(icon atlas.Icon, targetDir string) error {
	sourceDir := pathmap.TextureDir(pathmap.Items, b.source)
	strip := targetDir + icon.AtlasName()

	frames := make([]image.Image, 0, icon.Frames)
	for i := 0; i < icon.Frames; i++ {
		frame, ok := b.sets.Lookup(b.target, sourceDir+icon.FrameName(i))
		if !ok {
			b.complaints.Addf("%s cannot be built because %s is missing.", strip, sourceDir+icon.FrameName(i))
			return nil
		}
		img, ok, err := b.decode(frame)
		if err != nil || !ok {
			return err
		}
		frames = append(frames, img)
	}

	stacked, err := atlas.Stack(frames)
	if err != nil {
		b.complaints.Addf("%s: %v", strip, err)
		return nil
	}
	data, err := atlas.Encode(stacked)
	if err != nil {
		return Wrap(ErrAsset, "encode", strip, err)
	}
	added, err := b.add(strip, data)
	if err != nil || !added {
		return err
	}
	_, err = b.add(targetDir+icon.SidecarName(), atlas.Sidecar())
	return err
}

func (b *build) sliceAtlas(p assetindex.Path, icon atlas.Icon, targetDir string) error {
	img, ok, err := b.decode(p)
	if err != nil || !ok {
		return err
	}
	frames, err := atlas.Slice(img, icon.Frames)
	if err != nil {
		b.complaints.Addf("%s: %v", p, err)
		return nil
	}
	for i, frame := range frames {
		data, err := atlas.Encode(frame)
		if err != nil {
			return Wrap(ErrAsset, "encode", icon.FrameName(i), err)
		}
		if _, err := b.add(targetDir+icon.FrameName(i), data); err != nil {
			return err
		}
	}
	return nil
}

// particles applies the particles atlas rule. Modern packs are cropped for
// legacy targets; legacy packs have no modern form unless an override exists.
func (b *build) particles(p assetindex.Path, key string, override bool) (bool, error) {
	if key != particlesPath {
		return false, nil
	}
	switch {
	case b.source.Class() == revision.Modern && b.target.Class() == revision.Legacy:
		img, ok, err := b.decode(p)
		if err != nil || !ok {
			return true, err
		}
		crop := b.opts.ParticlesCrop
		data, err := atlas.Encode(atlas.Crop(img, crop, crop))
		if err != nil {
			return true, Wrap(ErrAsset, "encode", particlesPath, err)
		}
		_, err = b.add(particlesPath, data)
		return true, err
	case b.source.Class() == revision.Legacy && b.target.Class() == revision.Modern && !override:
		b.complaints.Addf("%s will not be present in 1.13+ ports. Either create a version-specific file or upgrade your resource pack to 1.13+.", particlesPath)
		return true, nil
	}
	return false, nil
}

// decode reads a PNG asset. Undecodable images are reported as complaints
// and ok is false.
func (b *build) decode(p assetindex.Path) (image.Image, bool, error) {
	data, err := b.read(p)
	if err != nil {
		return nil, false, err
	}
	img, err := atlas.Decode(data)
	if err != nil {
		b.complaints.Addf("%s: %v", p, err)
		return nil, false, nil
	}
	return img, true, nil
}

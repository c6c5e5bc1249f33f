// Package atlas converts the animated compass and clock textures between the
// legacy layout (one numbered file per frame) and the modern layout (a single
// vertical strip plus an animation sidecar).
package atlas

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/png"
	"strconv"
	"strings"

	xdraw "golang.org/x/image/draw"
)

// ErrFrameLayout reports frames or strips whose geometry cannot be converted.
var ErrFrameLayout = errors.New("atlas: invalid frame layout")

// Icon is one animated texture handled by this package.
type Icon struct {
	Name   string
	Frames int
}

var (
	Compass = Icon{Name: "compass", Frames: 32}
	Clock   = Icon{Name: "clock", Frames: 64}
)

// Icons lists every animated icon.
var Icons = []Icon{Compass, Clock}

// FrameName returns the legacy file name of frame i.
func (ic Icon) FrameName(i int) string {
	return fmt.Sprintf("%s_%02d.png", ic.Name, i)
}

// AtlasName returns the modern strip file name.
func (ic Icon) AtlasName() string { return ic.Name + ".png" }

// SidecarName returns the animation metadata file name of the strip.
func (ic Icon) SidecarName() string { return ic.AtlasName() + ".mcmeta" }

// Kind classifies a file belonging to an icon.
type Kind int

const (
	KindNone Kind = iota
	// KindFrame is any legacy per-frame file, including frame sidecars.
	KindFrame
	KindAtlas
	KindSidecar
)

// Match classifies a texture file name (without directory). For frames the
// returned index is -1 unless the name is exactly "<icon>_NN.png".
func Match(filename string) (Icon, Kind, int) {
	name := strings.ToLower(filename)
	for _, ic := range Icons {
		switch {
		case name == ic.AtlasName():
			return ic, KindAtlas, -1
		case name == ic.SidecarName():
			return ic, KindSidecar, -1
		case strings.HasPrefix(name, ic.Name+"_"):
			return ic, KindFrame, frameIndex(name, ic)
		}
	}
	return Icon{}, KindNone, -1
}

func frameIndex(name string, ic Icon) int {
	digits, ok := strings.CutSuffix(strings.TrimPrefix(name, ic.Name+"_"), ".png")
	if !ok || len(digits) != 2 {
		return -1
	}
	n, err := strconv.Atoi(digits)
	if err != nil || n < 0 || n >= ic.Frames {
		return -1
	}
	return n
}

// Sidecar returns the metadata that declares a strip as an animation.
func Sidecar() []byte {
	return []byte(`{"animation":{}}`)
}

// Stack concatenates frames vertically in order. Frames whose size differs
// from the first are scaled to it with nearest-neighbour sampling.
func Stack(frames []image.Image) (*image.NRGBA, error) {
	if len(frames) == 0 || frames[0] == nil {
		return nil, fmt.Errorf("%w: no frames", ErrFrameLayout)
	}
	size := frames[0].Bounds().Size()
	if size.X == 0 || size.Y == 0 {
		return nil, fmt.Errorf("%w: empty first frame", ErrFrameLayout)
	}
	out := image.NewNRGBA(image.Rect(0, 0, size.X, size.Y*len(frames)))
	for i, frame := range frames {
		if frame == nil {
			return nil, fmt.Errorf("%w: frame %d missing", ErrFrameLayout, i)
		}
		src := toNRGBA(frame)
		if src.Bounds().Size() != size {
			scaled := image.NewNRGBA(image.Rect(0, 0, size.X, size.Y))
			xdraw.NearestNeighbor.Scale(scaled, scaled.Bounds(), src, src.Bounds(), xdraw.Src, nil)
			src = scaled
		}
		copyRows(out, image.Pt(0, i*size.Y), src)
	}
	return out, nil
}

// Slice cuts img into n equal-height frames from top to bottom.
func Slice(img image.Image, n int) ([]*image.NRGBA, error) {
	if n <= 0 {
		return nil, fmt.Errorf("%w: frame count %d", ErrFrameLayout, n)
	}
	src := toNRGBA(img)
	size := src.Bounds().Size()
	if size.Y == 0 || size.Y%n != 0 {
		return nil, fmt.Errorf("%w: height %d is not a multiple of %d", ErrFrameLayout, size.Y, n)
	}
	h := size.Y / n
	frames := make([]*image.NRGBA, n)
	for i := range frames {
		frame := image.NewNRGBA(image.Rect(0, 0, size.X, h))
		sub := src.SubImage(image.Rect(0, i*h, size.X, (i+1)*h).Add(src.Bounds().Min)).(*image.NRGBA)
		copyRows(frame, image.Point{}, sub)
		frames[i] = frame
	}
	return frames, nil
}

// Crop returns the top-left w×h region of img, clipped to its bounds.
func Crop(img image.Image, w, h int) *image.NRGBA {
	src := toNRGBA(img)
	b := src.Bounds()
	w = min(w, b.Dx())
	h = min(h, b.Dy())
	out := image.NewNRGBA(image.Rect(0, 0, w, h))
	sub := src.SubImage(image.Rect(b.Min.X, b.Min.Y, b.Min.X+w, b.Min.Y+h)).(*image.NRGBA)
	copyRows(out, image.Point{}, sub)
	return out
}

// Decode reads a PNG image.
func Decode(data []byte) (image.Image, error) {
	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decode png: %w", err)
	}
	return img, nil
}

// Encode writes img as PNG.
func Encode(img image.Image) ([]byte, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("encode png: %w", err)
	}
	return buf.Bytes(), nil
}

// toNRGBA returns img as a non-premultiplied image. Images that already are
// NRGBA are returned as-is so pixels survive untouched.
func toNRGBA(img image.Image) *image.NRGBA {
	if n, ok := img.(*image.NRGBA); ok {
		return n
	}
	b := img.Bounds()
	out := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	xdraw.Draw(out, out.Bounds(), img, b.Min, xdraw.Src)
	return out
}

// copyRows copies src into dst with src's top-left corner at at.
func copyRows(dst *image.NRGBA, at image.Point, src *image.NRGBA) {
	b := src.Bounds()
	rowLen := b.Dx() * 4
	for y := 0; y < b.Dy(); y++ {
		s := src.PixOffset(b.Min.X, b.Min.Y+y)
		d := dst.PixOffset(at.X, at.Y+y)
		copy(dst.Pix[d:d+rowLen], src.Pix[s:s+rowLen])
	}
}

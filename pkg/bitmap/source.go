package bitmap

import (
	"image"
	"image/draw"
	"math"

	"github.com/pkg/errors"
)

// Layout identifies the channel order of a pixel buffer. The value is the
// byte count per pixel.
type Layout int

const (
	Gray      Layout = 1
	GrayAlpha Layout = 2
	RGB       Layout = 3
	RGBA      Layout = 4
)

// threshold splits luminance into ink and blank.
const threshold = 128

func NewSource(pix []byte, width, height int, layout Layout) (*Source, error) {
	switch layout {
	case Gray, GrayAlpha, RGB, RGBA:
	default:
		return nil, errors.Errorf("unknown layout %d", layout)
	}

	if width <= 0 || height <= 0 {
		return nil, errors.Errorf("bad dimensions %dx%d", width, height)
	}

	// Divide before multiplying so hostile dimensions off the rpc hop cannot
	// wrap the product past the buffer check.
	if height > math.MaxInt/int(layout)/width {
		return nil, errors.Errorf("bad dimensions %dx%d", width, height)
	}

	if need := width * height * int(layout); len(pix) < need {
		return nil, errors.Errorf("pixel buffer holds %d bytes, need %d", len(pix), need)
	}

	return &Source{pix: pix, width: width, height: height, layout: layout}, nil
}

// Source is a read-only view of decoded pixels. Chunked printing reads row
// windows of it in place; nothing here copies the buffer.
type Source struct {
	pix    []byte
	width  int
	height int
	layout Layout
}

func (s *Source) Width() int {
	return s.width
}

func (s *Source) Height() int {
	return s.height
}

func (s *Source) Layout() Layout {
	return s.layout
}

func (s *Source) Pix() []byte {
	return s.pix
}

// Dark reports whether the dot at (x, y) prints as ink. Gray layouts compare
// the level directly; color layouts average r, g and b with truncating
// division first. Alpha never participates.
func (s *Source) Dark(x, y int) bool {
	i := (y*s.width + x) * int(s.layout)

	switch s.layout {
	case Gray, GrayAlpha:
		return s.pix[i] < threshold
	default:
		sum := int(s.pix[i]) + int(s.pix[i+1]) + int(s.pix[i+2])
		return sum/3 < threshold
	}
}

// FromImage flattens a decoded image into a Source. Grayscale images stay
// single channel; everything else lands in non-premultiplied RGBA so
// transparent dots keep their levels for thresholding.
func FromImage(img image.Image) *Source {
	b := img.Bounds()

	switch im := img.(type) {
	case *image.Gray:
		return fromGray(im)
	case *image.NRGBA:
		if im.Stride == 4*b.Dx() && b.Min == (image.Point{}) {
			return &Source{pix: im.Pix, width: b.Dx(), height: b.Dy(), layout: RGBA}
		}
	}

	dst := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(dst, dst.Bounds(), img, b.Min, draw.Src)

	return &Source{pix: dst.Pix, width: b.Dx(), height: b.Dy(), layout: RGBA}
}

func fromGray(g *image.Gray) *Source {
	b := g.Bounds()
	w, h := b.Dx(), b.Dy()

	pix := make([]byte, w*h)
	for y := 0; y < h; y++ {
		off := g.PixOffset(b.Min.X, b.Min.Y+y)
		copy(pix[y*w:(y+1)*w], g.Pix[off:off+w])
	}

	return &Source{pix: pix, width: w, height: h, layout: Gray}
}

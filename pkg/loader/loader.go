package loader

import (
	"bytes"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"net/http"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/go-resty/resty/v2"
	"github.com/pkg/errors"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/afero"
	"go.uber.org/zap"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"escprint/pkg/bitmap"
)

var ErrDecodeFailed = errors.New("image decode failed")

func New(logger *zap.Logger, opts ...Option) *Loader {
	l := &Loader{
		fs:       afero.NewOsFs(),
		cli:      resty.New().SetDoNotParseResponse(true),
		log:      logger,
		maxWidth: 576,
	}

	for _, opt := range opts {
		opt(l)
	}

	return l
}

// Loader turns a file path or URL into printable pixels.
type Loader struct {
	fs       afero.Fs
	cli      *resty.Client
	log      *zap.Logger
	maxWidth int
}

func (l *Loader) Load(ref string) (*bitmap.Source, error) {
	if strings.HasPrefix(ref, "http://") || strings.HasPrefix(ref, "https://") {
		return l.fetch(ref)
	}

	bs, err := afero.ReadFile(l.fs, ref)
	if err != nil {
		return nil, err
	}

	return l.Decode(bytes.NewReader(bs))
}

func (l *Loader) fetch(url string) (*bitmap.Source, error) {
	resp, err := l.cli.R().Get(url)
	if err != nil {
		return nil, err
	}

	defer func() {
		_ = resp.RawBody().Close()
	}()

	if resp.StatusCode() != http.StatusOK {
		return nil, errors.Errorf("fetch %s: %s", url, resp.Status())
	}

	bar := progressbar.DefaultBytes(resp.RawResponse.ContentLength, fmt.Sprintf("Fetching %s", url))

	var buf bytes.Buffer
	if _, err := io.Copy(io.MultiWriter(&buf, bar), resp.RawBody()); err != nil {
		return nil, err
	}

	l.log.With(zap.String("url", url), zap.Int("bytes", buf.Len())).Debug("fetched")

	return l.Decode(&buf)
}

// Decode reads one encoded image and scales it down to the print head width
// when it is wider. Narrower images keep their size.
func (l *Loader) Decode(r io.Reader) (*bitmap.Source, error) {
	img, _, err := image.Decode(r)
	if err != nil {
		return nil, errors.Wrapf(ErrDecodeFailed, "%v", err)
	}

	if l.maxWidth > 0 && img.Bounds().Dx() > l.maxWidth {
		img = imaging.Resize(img, l.maxWidth, 0, imaging.Lanczos)
	}

	return bitmap.FromImage(img), nil
}

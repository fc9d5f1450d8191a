package escpos

import (
	"time"

	"github.com/inhies/go-bytesize"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"escprint/pkg/bitmap"
	"escprint/pkg/proto"
)

const (
	// DefaultMaxWidth suits 80mm paper at 203 dpi.
	DefaultMaxWidth = 576
	// DefaultChunkHeight matches the image buffer of common units.
	DefaultChunkHeight = 1024

	// maxPlaneDots is the largest 32-aligned dimension whose byte size
	// still fits the single-byte fields of the define image header.
	maxPlaneDots = 2016
)

var (
	ErrUploadFailed = errors.New("image upload failed")
	ErrPrintFailed  = errors.New("image print failed")
)

func New(ch proto.Channel, logger *zap.Logger, opts ...Option) (*Printer, error) {
	p := &Printer{
		ch:          ch,
		logger:      logger,
		maxWidth:    DefaultMaxWidth,
		chunkHeight: DefaultChunkHeight,
	}

	for _, opt := range opts {
		opt(p)
	}

	if p.maxWidth < 1 || p.maxWidth > maxPlaneDots {
		return nil, errors.Errorf("max width %d out of range", p.maxWidth)
	}
	if p.chunkHeight < 32 || p.chunkHeight > maxPlaneDots || p.chunkHeight%32 != 0 {
		return nil, errors.Errorf("chunk height %d not a multiple of 32 within range", p.chunkHeight)
	}
	if p.overlap < 0 || p.overlap >= p.chunkHeight {
		return nil, errors.Errorf("overlap %d out of range", p.overlap)
	}

	p.plane = bitmap.NewPlane(p.maxWidth, p.chunkHeight)
	return p, nil
}

// Printer drives one ESC/POS unit over an exclusive channel. Calls are
// synchronous and must not run from two goroutines at once.
type Printer struct {
	ch     proto.Channel
	logger *zap.Logger
	plane  *bitmap.Plane

	maxWidth    int
	chunkHeight int
	overlap     int
}

// Print renders src into monochrome chunks and prints them top to bottom.
// Each chunk is fully uploaded before its print command; the first failure
// aborts the job with the paper stopped after the last complete chunk.
func (p *Printer) Print(src *bitmap.Source) error {
	if src.Width() > p.maxWidth {
		return errors.New("width overflow")
	}

	spans := planChunks(src.Height(), p.chunkHeight, p.overlap)

	payload := 0
	start := time.Now()

	for i, sp := range spans {
		p.plane.Pack(src, sp.off, sp.rows)

		if err := p.Upload(p.plane); err != nil {
			return err
		}
		if err := p.PrintUploaded(); err != nil {
			return err
		}

		payload += len(p.plane.Bytes())

		p.logger.With(
			zap.Int("chunk", i),
			zap.Int("offset", sp.off),
			zap.Int("rows", sp.rows),
		).Debug("chunk printed")
	}

	p.logger.With(
		zap.Int("width", src.Width()),
		zap.Int("height", src.Height()),
		zap.Int("chunks", len(spans)),
		zap.String("payload", bytesize.New(float64(payload)).String()),
		zap.String("cost", time.Since(start).String()),
	).Info("printed")

	return nil
}

// Upload loads one bit plane into the printer's image buffer.
func (p *Printer) Upload(plane *bitmap.Plane) error {
	bw, bh := plane.ByteWidth(), plane.ByteHeight()
	if bw < 1 || bw > 255 || bh < 1 || bh > 255 {
		return errors.Wrapf(ErrUploadFailed, "%dx%d dots exceeds the define image frame", plane.Width(), plane.Height())
	}

	header := []byte{cmdDefineImage[0], cmdDefineImage[1], byte(bw), byte(bh)}
	if err := p.send(header); err != nil {
		return errors.Wrapf(ErrUploadFailed, "header: %v", err)
	}

	if err := p.sendPayload(plane.Bytes()); err != nil {
		return errors.Wrapf(ErrUploadFailed, "%v", err)
	}

	return nil
}

// PrintUploaded prints whatever the image buffer holds.
func (p *Printer) PrintUploaded() error {
	if err := p.send(cmdPrintImage); err != nil {
		return errors.Wrapf(ErrPrintFailed, "%v", err)
	}
	return nil
}

func (p *Printer) Feed(lines uint8) error {
	return p.send([]byte{cmdFeed[0], cmdFeed[1], lines})
}

func (p *Printer) Cut() error {
	return p.send(cmdCut)
}

func (p *Printer) Close() error {
	return p.ch.Close()
}

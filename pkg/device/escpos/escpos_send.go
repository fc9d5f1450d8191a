package escpos

import (
	"fmt"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// uploadBurst is how many payload bytes go into one channel send.
const uploadBurst = 4

func (p *Printer) send(bs []byte) error {
	start := time.Now()
	if err := p.ch.Send(bs); err != nil {
		return err
	}
	cost := time.Since(start)

	ext := ""
	if len(bs) <= 16 {
		ext = fmt.Sprintf("%x", bs)
	}

	p.logger.With(
		zap.Int("sent", len(bs)),
		zap.String("cost", cost.String()),
		zap.String("data", ext),
	).Debug("transfer")

	return nil
}

func (p *Printer) sendPayload(bs []byte) error {
	start := time.Now()

	for off := 0; off < len(bs); off += uploadBurst {
		end := off + uploadBurst
		if end > len(bs) {
			end = len(bs)
		}

		if err := p.ch.Send(bs[off:end]); err != nil {
			return errors.Wrapf(err, "payload byte %d of %d", off, len(bs))
		}
	}

	p.logger.With(
		zap.Int("sent", len(bs)),
		zap.String("cost", time.Since(start).String()),
	).Debug("transfer")

	return nil
}

package virtual

import (
	"go.uber.org/zap"

	"escprint/pkg/bitmap"
	"escprint/pkg/proto"
)

func Mock(logger *zap.Logger) proto.Control {
	return &Mocker{logger}
}

type Mocker struct {
	l *zap.Logger
}

func (m *Mocker) Print(src *bitmap.Source) error {
	m.l.With(
		zap.Int("w", src.Width()),
		zap.Int("h", src.Height()),
		zap.Int("channels", int(src.Layout())),
	).Info("print")
	return nil
}

func (m *Mocker) Feed(lines uint8) error {
	m.l.With(zap.Uint8("lines", lines)).Info("feed")
	return nil
}

func (m *Mocker) Cut() error {
	m.l.Info("cut")
	return nil
}

func (m *Mocker) Close() error {
	m.l.Info("close")
	return nil
}

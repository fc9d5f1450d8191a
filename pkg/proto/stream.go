package proto

import (
	"io"
	"net"

	"github.com/pkg/errors"
)

var (
	ErrInvalidAddress   = errors.New("invalid printer address")
	ErrConnectionFailed = errors.New("printer connection failed")
	ErrSendFailed       = errors.New("send failed")
)

// maxStalls bounds consecutive zero-byte writes before Send gives up on a
// stream that accepts nothing yet reports no error.
const maxStalls = 100

func NewStream(w io.WriteCloser) *Stream {
	return &Stream{w: w}
}

// Stream adapts an ordered byte stream to the Channel contract. Short writes
// resume from where they stopped until the buffer is fully accepted or the
// stream reports a hard failure.
type Stream struct {
	w io.WriteCloser
}

func (s *Stream) Send(bs []byte) error {
	sent := 0
	stalls := 0

	for sent < len(bs) {
		n, err := s.w.Write(bs[sent:])
		sent += n

		if err != nil {
			return errors.Wrapf(ErrSendFailed, "%d of %d bytes sent: %v", sent, len(bs), err)
		}

		if n == 0 {
			stalls++
			if stalls >= maxStalls {
				return errors.Wrapf(ErrSendFailed, "stalled at %d of %d bytes", sent, len(bs))
			}
			continue
		}
		stalls = 0
	}

	return nil
}

func (s *Stream) Close() error {
	return s.w.Close()
}

// DialTCP connects to a printer listening on an IPv4 host:port.
func DialTCP(addr string) (*Stream, error) {
	if _, _, err := net.SplitHostPort(addr); err != nil {
		return nil, errors.Wrapf(ErrInvalidAddress, "%q: %v", addr, err)
	}

	conn, err := net.Dial("tcp4", addr)
	if err != nil {
		return nil, errors.Wrapf(ErrConnectionFailed, "%s: %v", addr, err)
	}

	return NewStream(conn), nil
}

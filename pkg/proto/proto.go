package proto

import (
	"escprint/pkg/bitmap"
)

// Control is a printer seen from the application side: decoded pixels in,
// paper out.
type Control interface {
	Print(src *bitmap.Source) error
	Feed(lines uint8) error
	Cut() error
	Close() error
}

// Channel is an ordered byte sink toward one device. Send delivers the whole
// buffer or fails; there is no partial success.
type Channel interface {
	Send(bs []byte) error
	Close() error
}

package proto

import (
	"strings"

	"github.com/pkg/errors"
	"go.bug.st/serial"
)

type Options struct {
	DTR      bool
	RTS      bool
	BaudRate int
}

func OpenSerial(name string, opts *Options) (*Stream, error) {
	ports, err := serial.GetPortsList()
	if err != nil {
		return nil, errors.Wrapf(ErrConnectionFailed, "list ports: %v", err)
	}

	var matched string
	for _, port := range ports {
		if strings.Contains(port, name) {
			matched = port
			break
		}
	}
	if matched == "" {
		return nil, errors.Wrapf(ErrInvalidAddress, "serial port %q not found", name)
	}

	port, err := serial.Open(matched, &serial.Mode{BaudRate: opts.BaudRate})
	if err != nil {
		return nil, errors.Wrapf(ErrConnectionFailed, "open %s: %v", matched, err)
	}

	if err := port.SetDTR(opts.DTR); err != nil {
		_ = port.Close()
		return nil, errors.Wrapf(ErrConnectionFailed, "set DTR: %v", err)
	}

	if err := port.SetRTS(opts.RTS); err != nil {
		_ = port.Close()
		return nil, errors.Wrapf(ErrConnectionFailed, "set RTS: %v", err)
	}

	return NewStream(port), nil
}

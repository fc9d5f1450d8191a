package loader

import (
	"github.com/go-resty/resty/v2"
	"github.com/spf13/afero"
)

type Option func(l *Loader)

func WithFs(fs afero.Fs) Option {
	return func(l *Loader) {
		l.fs = fs
	}
}

func WithHTTP(cli *resty.Client) Option {
	return func(l *Loader) {
		l.cli = cli.SetDoNotParseResponse(true)
	}
}

func WithMaxWidth(dots int) Option {
	return func(l *Loader) {
		l.maxWidth = dots
	}
}

package escpos

type Option func(p *Printer)

func WithMaxWidth(dots int) Option {
	return func(p *Printer) {
		p.maxWidth = dots
	}
}

func WithChunkHeight(rows int) Option {
	return func(p *Printer) {
		p.chunkHeight = rows
	}
}

func WithOverlap(rows int) Option {
	return func(p *Printer) {
		p.overlap = rows
	}
}

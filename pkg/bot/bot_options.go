package bot

type Option func(b *Bot)

// WithQRSize sets the rendered edge length of /qr codes in dots. Keep it at
// or below the print head width or every /qr will fail with width overflow.
func WithQRSize(dots int) Option {
	return func(b *Bot) {
		if dots > 0 {
			b.qrDots = dots
		}
	}
}

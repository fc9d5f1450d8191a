package escpos

const (
	esc = 0x1B
	gs  = 0x1D
)

var (
	cmdCut         = []byte{gs, 0x56, 0x00} // GS V 0, full cut
	cmdFeed        = []byte{esc, 0x64}      // ESC d n, feed n lines
	cmdDefineImage = []byte{gs, 0x2A}       // GS * bw bh d1..dk
	cmdPrintImage  = []byte{gs, 0x2F, 0x00} // GS / 0, print the defined image
)

package bitmap

// Pad returns the blank dots needed on each side to round size up to a
// multiple of 32, the alignment the printer's image buffer works in. An odd
// remainder goes to the right.
func Pad(size int) (left, right int) {
	if size%32 == 0 {
		return 0, 0
	}

	pad := 32 - size%32
	return pad / 2, pad/2 + pad%2
}

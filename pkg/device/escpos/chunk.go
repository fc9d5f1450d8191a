package escpos

// span is one vertical slice of a source image, sized to fit the printer's
// image buffer.
type span struct {
	off  int
	rows int
}

// planChunks slices height rows into printable spans. Offsets advance by
// limit-overlap so each span reprints the tail rows of the one before it,
// masking paper feed error between blocks; the final span clamps to the rows
// that remain.
func planChunks(height, limit, overlap int) []span {
	stride := limit - overlap

	var spans []span
	for off := 0; off < height; off += stride {
		rows := height - off
		if rows > limit {
			rows = limit
		}
		spans = append(spans, span{off: off, rows: rows})
	}

	return spans
}

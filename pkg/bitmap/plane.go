package bitmap

// SetBit writes one dot of a packed plane. Dot i lives in byte i/8 at bit
// 7-(i%8): most significant bit first, the order the printer consumes.
func SetBit(bits []byte, i int, ink bool) {
	if ink {
		bits[i/8] |= 1 << (7 - i%8)
	} else {
		bits[i/8] &^= 1 << (7 - i%8)
	}
}

func padded(size int) int {
	l, r := Pad(size)
	return size + l + r
}

// NewPlane allocates storage for the padded bounds of maxWidth by maxHeight
// dots. Pack reuses the buffer between chunks and grows it only when a chunk
// exceeds those bounds.
func NewPlane(maxWidth, maxHeight int) *Plane {
	return &Plane{bits: make([]byte, padded(maxWidth)*padded(maxHeight)/8)}
}

// Plane is a monochrome image in the printer's wire layout: dots run column
// by column, top to bottom, packed eight to a byte. Both dimensions are
// always multiples of 32.
type Plane struct {
	bits   []byte
	width  int
	height int
}

func (p *Plane) Width() int {
	return p.width
}

func (p *Plane) Height() int {
	return p.height
}

func (p *Plane) ByteWidth() int {
	return p.width / 8
}

func (p *Plane) ByteHeight() int {
	return p.height / 8
}

// Bytes is the packed payload of the current contents. The slice aliases the
// reusable buffer and stays valid until the next Pack.
func (p *Plane) Bytes() []byte {
	return p.bits[:p.width*p.height/8]
}

// Bit reads the dot at (x, y).
func (p *Plane) Bit(x, y int) bool {
	i := x*p.height + y
	return p.bits[i/8]&(1<<(7-i%8)) != 0
}

// Pack renders rows [rowOff, rowOff+rows) of src into the plane. Width
// padding splits between left and right; height padding goes entirely below
// the content, so a chunk never opens with blank rows that would gap it from
// the chunk printed above. Padding dots are always blank.
func (p *Plane) Pack(src *Source, rowOff, rows int) {
	padL, padR := Pad(src.width)
	padT, padB := Pad(rows)
	padB += padT

	p.width = src.width + padL + padR
	p.height = rows + padB

	n := p.width * p.height / 8
	if n > len(p.bits) {
		p.bits = make([]byte, n)
	}

	used := p.bits[:n]
	for i := range used {
		used[i] = 0
	}

	for x := 0; x < src.width; x++ {
		base := (padL + x) * p.height
		for y := 0; y < rows; y++ {
			if src.Dark(x, rowOff+y) {
				SetBit(used, base+y, true)
			}
		}
	}
}

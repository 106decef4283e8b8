package ean

// Decoder is a streaming EAN-13/EAN-8 decoder. Feed it edge widths in
// scan order with ProcessEdge; it returns a SymbolType as soon as a
// complete, checksum-valid symbol (optionally with a 2-digit add-on) has
// been recognized. UPC-E parity patterns are recognized but never
// reported as a symbol, and 5-digit add-ons are not decoded.
//
// A Decoder allocates nothing after construction and is safe to reuse
// indefinitely across many symbols; it is not safe for concurrent use by
// multiple goroutines.
type Decoder struct {
	win    Window
	s4     uint
	passes [4]pass
	acc    Accumulator

	// Lock, when set, suppresses output formatting: ProcessEdge still
	// recognizes and validates symbols but reports them as Partial
	// instead of writing to the output buffer. Clear it to resume normal
	// reporting.
	Lock bool

	output [18]byte
	outLen int
}

// NewDecoder returns a Decoder ready to process edges.
func NewDecoder() *Decoder {
	d := &Decoder{}
	for i := range d.passes {
		d.passes[i].reset()
	}
	d.acc.Reset()
	return d
}

// ProcessEdge feeds one more run-length edge (the width of the run that
// just ended, and the color of that run) into the decoder. It returns
// the completed symbol type when a symbol was just completed and
// validated, Partial when a symbol half was just accepted (or a symbol
// completed while Lock is set), and None otherwise.
func (d *Decoder) ProcessEdge(width uint, color Color) SymbolType {
	d.win.Push(width, color)

	d.s4 -= d.win.Width(4)
	d.s4 += d.win.Width(0)

	passIdx := d.win.pos & 3
	sym := None

	for i := range d.passes {
		p := &d.passes[i]
		if p.state < 0 && uint(i) != passIdx {
			continue
		}
		part := p.update(d)
		if part == None {
			continue
		}

		s := d.acc.integrate(p, part)
		if s == None {
			continue
		}

		for j := range d.passes {
			d.passes[j].reset()
		}

		if s > Partial {
			if d.Lock {
				s = Partial
			} else {
				d.outLen = d.acc.format(s, d.output[:])
			}
		}
		sym = s
	}
	return sym
}

// Output returns the ASCII digit string of the most recently formatted
// symbol (excluding the trailing NUL byte).
func (d *Decoder) Output() []byte {
	return d.output[:d.outLen]
}

// Reset abandons any in-progress symbol and clears all decoder state.
func (d *Decoder) Reset() {
	for i := range d.passes {
		d.passes[i].reset()
	}
	d.acc.Reset()
	d.win = Window{}
	d.s4 = 0
	d.outLen = 0
}

package ean

// pass tracks one of the four parallel phase-aligned attempts to find and
// decode a symbol half (or, speculatively, an add-on) starting at the
// current edge. state is -1 while the pass is idle; otherwise it is the
// number of edges elapsed since the pass was seeded by a recognized start
// or center guard. addon marks a pass that auxStart recognized as an
// add-on start rather than a normal symbol-half start.
type pass struct {
	state int
	addon bool
	raw   [7]byte
}

// addonChars is the number of characters this implementation decodes for
// a 2-digit add-on before emitting it. Full 5-digit add-on and end-guard
// validation for add-ons is not modeled; see accumulator.go and
// DESIGN.md.
const addonChars = 2

func (p *pass) reset() {
	p.state = -1
	p.addon = false
}

// update advances the pass by one edge and returns a non-None part when
// a symbol half (or add-on) has just been fully sampled, 0 otherwise.
func (p *pass) update(d *Decoder) SymbolType {
	p.state++
	idx := p.state
	rev := idx & 1

	if d.win.Color() == Bar && (idx == 0x10 || idx == 0x0f) && !p.addon {
		n := uint(4)
		if rev != 0 {
			n = 3
		}
		if auxEnd(d, n) == 0 {
			part := p.partEnd4(rev != 0)
			p.reset()
			return part
		}
	}

	if idx&0x03 == 0 && idx <= 0x14 {
		if d.s4 == 0 {
			return None
		}
		if p.state == 0 {
			seed := auxStart(d)
			if seed < 0 {
				p.reset()
				return None
			}
			p.addon = seed == 1
			idx = p.state
		}

		code := decode4(d)
		if code < 0 {
			p.reset()
		} else {
			if p.addon {
				p.raw[idx>>2] = digits[code]
				if idx>>2 == addonChars-1 {
					part := Addon2
					p.reset()
					return part
				}
			} else {
				p.raw[(idx>>2)+1] = digits[code]
			}
		}
	}

	if d.win.Color() == Bar && (idx == 0x18 || idx == 0x17) && !p.addon {
		part := None
		n := uint(4)
		if rev != 0 {
			n = 3
		}
		if auxEnd(d, n) == 0 {
			part = p.partEnd7(rev != 0)
		}
		p.reset()
		return part
	}
	return None
}

// partEnd4 finalizes a 4-character (EAN-8 half) sample: the parity
// pattern across the four sampled digits must be uniform (all A or all
// B), which also identifies whether this was the left or right half.
func (p *pass) partEnd4(rev bool) SymbolType {
	par := (p.raw[1]&0x10)>>1 |
		(p.raw[2]&0x10)>>2 |
		(p.raw[3]&0x10)>>3 |
		(p.raw[4]&0x10)>>4

	if par != 0 && par != 0xf {
		return None
	}

	if (par == 0) == !rev {
		p.raw[1], p.raw[4] = p.raw[4], p.raw[1]
		p.raw[2], p.raw[3] = p.raw[3], p.raw[2]
	}

	if par == 0 {
		return EAN8 | eanRight
	}
	return EAN8 | eanLeft
}

// partEnd7 finalizes a 6-character (EAN-13/UPC-E half) sample: the
// parity pattern across the six sampled digits is looked up in
// parityDecode to recover (or reject) the hidden leading digit and to
// tell a right half (uniform parity), an EAN-13 left half (mixed parity
// with bit 0x20 set) and a reserved UPC-E pattern apart.
func (p *pass) partEnd7(rev bool) SymbolType {
	var par byte
	if !rev {
		par = (p.raw[1]&0x10)<<1 |
			(p.raw[2] & 0x10) |
			(p.raw[3]&0x10)>>1 |
			(p.raw[4]&0x10)>>2 |
			(p.raw[5]&0x10)>>3 |
			(p.raw[6]&0x10)>>4
	} else {
		par = (p.raw[1]&0x10)>>4 |
			(p.raw[2]&0x10)>>3 |
			(p.raw[3]&0x10)>>2 |
			(p.raw[4]&0x10)>>1 |
			(p.raw[5] & 0x10) |
			(p.raw[6]&0x10)<<1
	}

	p.raw[0] = parityDecode[par>>1]
	if par&1 != 0 {
		p.raw[0] >>= 4
	}
	p.raw[0] &= 0xf

	if p.raw[0] == 0xf {
		return None
	}

	if (par == 0) == !rev {
		for i := 1; i < 4; i++ {
			p.raw[i], p.raw[7-i] = p.raw[7-i], p.raw[i]
		}
	}

	if par == 0 {
		return EAN13 | eanRight
	}
	if par&0x20 != 0 {
		return EAN13 | eanLeft
	}
	// Reserved UPC-E parity pattern: the table above can already resolve
	// the check digit, but emission is left as a future extension (see
	// DESIGN.md).
	return None
}

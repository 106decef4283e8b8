package ean

// decode4 classifies the four widths at the head of the window (the
// bar-space-bar-space that make up one character) into a digits[] index,
// or -1 if either edge-pair ratio is invalid. The ambiguous middle codes
// (where two digit encodings share the same coarse ratio pair) are
// disambiguated by comparing a second width sum against a scaled
// fraction of the reference width.
func decode4(d *Decoder) int {
	var e1 uint
	if d.win.Color() == Bar {
		e1 = d.win.Width(0) + d.win.Width(1)
	} else {
		e1 = d.win.Width(2) + d.win.Width(3)
	}
	e2 := d.win.Width(1) + d.win.Width(2)

	c1 := decodeE(e1, d.s4)
	c2 := decodeE(e2, d.s4)
	if c1 < 0 || c2 < 0 {
		return -1
	}
	code := (c1 << 2) | c2

	if (1<<uint(code))&0x0660 != 0 {
		var d2 uint
		if d.win.Color() == Bar {
			d2 = d.win.Width(0) + d.win.Width(2)
		} else {
			d2 = d.win.Width(1) + d.win.Width(3)
		}
		d2 *= 7

		mid := uint(4)
		if (1<<uint(code))&0x0420 != 0 {
			mid = 3
		}
		if d2 > mid*d.s4 {
			code = ((code >> 1) & 3) | 0x10
		}
	}
	return code
}

package ean

import (
	"testing"

	qt "github.com/frankban/quicktest"
)

func TestAccumulatorEAN13(t *testing.T) {
	c := qt.New(t)

	var a Accumulator
	a.Reset()

	// "4006381333931": raw[0] carries the parity-derived leading digit
	// for the left half; the right half has no such derived digit.
	leftPass := &pass{raw: [7]byte{4, 0, 0, 6, 3, 8, 1}}
	rightPass := &pass{raw: [7]byte{0, 3, 3, 3, 9, 3, 1}}

	sym := a.integrate(leftPass, EAN13|eanLeft)
	c.Assert(sym, qt.Equals, Partial)

	sym = a.integrate(rightPass, EAN13|eanRight)
	c.Assert(sym, qt.Equals, EAN13)

	out := make([]byte, 18)
	n := a.format(sym, out)
	c.Assert(string(out[:n]), qt.Equals, "4006381333931")
}

func TestAccumulatorMismatchResets(t *testing.T) {
	c := qt.New(t)

	var a Accumulator
	a.Reset()

	leftPass := &pass{raw: [7]byte{4, 0, 0, 6, 3, 8, 1}}
	a.integrate(leftPass, EAN13|eanLeft)

	otherRight := &pass{raw: [7]byte{0, 9, 9, 9, 9, 9, 9}}
	sym := a.integrate(otherRight, EAN13|eanRight)
	c.Assert(sym, qt.Not(qt.Equals), EAN13) // checksum mismatch against the left half already held

	// A second right reading inconsistent with the first right reading
	// must reset both halves, not just overwrite silently.
	conflictingRight := &pass{raw: [7]byte{0, 1, 1, 1, 1, 1, 1}}
	a.integrate(conflictingRight, EAN13|eanRight)
	c.Assert(a.left, qt.Equals, None)
}

func TestAccumulatorAddon(t *testing.T) {
	c := qt.New(t)

	var a Accumulator
	a.Reset()

	// "96385074" assembled from its EAN-8 left/right halves.
	left8 := &pass{raw: [7]byte{0, 9, 6, 3, 8, 0, 0}}
	right8 := &pass{raw: [7]byte{0, 5, 0, 7, 4, 0, 0}}
	sym := a.integrate(left8, EAN8|eanLeft)
	c.Assert(sym, qt.Equals, Partial)
	sym = a.integrate(right8, EAN8|eanRight)
	c.Assert(sym, qt.Equals, EAN8)

	addon := &pass{raw: [7]byte{1, 2, 0, 0, 0, 0, 0}}
	sym = a.integrate(addon, Addon2)
	c.Assert(sym, qt.Equals, EAN8|Addon2)

	out := make([]byte, 18)
	n := a.format(sym, out)
	c.Assert(string(out[:n]), qt.Equals, "9638507412")
}

// TestAccumulatorEAN13Addon covers the case symbolMask's bit layout must
// keep separate from addonMask: EAN-13's 13 main digits fill buf[0..12]
// with no gap before the add-on digits at buf[13..], so format's main-
// digit loop must stop at exactly 13 rather than running into them.
func TestAccumulatorEAN13Addon(t *testing.T) {
	c := qt.New(t)

	var a Accumulator
	a.Reset()

	leftPass := &pass{raw: [7]byte{4, 0, 0, 6, 3, 8, 1}}
	rightPass := &pass{raw: [7]byte{0, 3, 3, 3, 9, 3, 1}}
	a.integrate(leftPass, EAN13|eanLeft)
	sym := a.integrate(rightPass, EAN13|eanRight)
	c.Assert(sym, qt.Equals, EAN13)

	addon := &pass{raw: [7]byte{1, 2, 0, 0, 0, 0, 0}}
	sym = a.integrate(addon, Addon2)
	c.Assert(sym, qt.Equals, EAN13|Addon2)

	out := make([]byte, 18)
	n := a.format(sym, out)
	c.Assert(string(out[:n]), qt.Equals, "400638133393112")
}

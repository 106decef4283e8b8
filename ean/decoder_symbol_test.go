package ean

import (
	"testing"

	qt "github.com/frankban/quicktest"
)

// edge is one run-length (color, width) pair, the unit ProcessEdge
// consumes; tests build real unit-module bar/space streams out of these
// instead of hand-constructing pass/accumulator internals, so they
// exercise the window, ratio decoder, character decoder and guard
// recognizer the way a live scan would.
type edge struct {
	color Color
	width uint
}

// feed replays edges through d and returns the last non-None symbol
// ProcessEdge reported, or None if none completed.
func feed(d *Decoder, edges []edge) SymbolType {
	sym := None
	for _, e := range edges {
		if s := d.ProcessEdge(e.width, e.color); s != None {
			sym = s
		}
	}
	return sym
}

// priming is eight edges of plausible scan noise, enough to fill the
// 8-wide width window with real data before the symbol of interest so
// the ratio decoder isn't reading the window's zeroed initial state.
var priming = []edge{
	{Bar, 5}, {Space, 5}, {Bar, 5}, {Space, 5},
	{Bar, 5}, {Space, 5}, {Bar, 5}, {Space, 5},
}

var quietZone = edge{Space, 15}

// ean13Runs is the unit-module run-length encoding of a real,
// checksum-valid EAN-13 symbol, "4006381333931": start guard, six
// left-hand digits (odd/even parity per the leading digit 4's parity
// pattern LGLLGG), center guard, six right-hand digits (R-code), end
// guard.
var ean13Runs = []edge{
	{Bar, 1}, {Space, 1}, {Bar, 1}, {Space, 3}, {Bar, 2}, {Space, 1},
	{Bar, 1}, {Space, 1}, {Bar, 1}, {Space, 2}, {Bar, 3}, {Space, 1},
	{Bar, 1}, {Space, 1}, {Bar, 4}, {Space, 1}, {Bar, 4}, {Space, 1},
	{Bar, 1}, {Space, 3}, {Bar, 1}, {Space, 2}, {Bar, 1}, {Space, 1},
	{Bar, 2}, {Space, 2}, {Bar, 2}, {Space, 1}, {Bar, 1}, {Space, 1},
	{Bar, 1}, {Space, 1}, {Bar, 1}, {Space, 4}, {Bar, 1}, {Space, 1},
	{Bar, 1}, {Space, 4}, {Bar, 1}, {Space, 1}, {Bar, 1}, {Space, 4},
	{Bar, 1}, {Space, 1}, {Bar, 3}, {Space, 1}, {Bar, 1}, {Space, 2},
	{Bar, 1}, {Space, 4}, {Bar, 1}, {Space, 1}, {Bar, 2}, {Space, 2},
	{Bar, 2}, {Space, 1}, {Bar, 1}, {Space, 1}, {Bar, 1},
}

// ean8Runs is the unit-module run-length encoding of a real,
// checksum-valid EAN-8 symbol, "40123455".
var ean8Runs = []edge{
	{Bar, 1}, {Space, 1}, {Bar, 1}, {Space, 1}, {Bar, 1}, {Space, 3},
	{Bar, 2}, {Space, 3}, {Bar, 2}, {Space, 1}, {Bar, 1}, {Space, 2},
	{Bar, 2}, {Space, 2}, {Bar, 1}, {Space, 2}, {Bar, 1}, {Space, 2},
	{Bar, 2}, {Space, 1}, {Bar, 1}, {Space, 1}, {Bar, 1}, {Space, 1},
	{Bar, 1}, {Space, 4}, {Bar, 1}, {Space, 1}, {Bar, 1}, {Space, 1},
	{Bar, 3}, {Space, 2}, {Bar, 1}, {Space, 2}, {Bar, 3}, {Space, 1},
	{Bar, 1}, {Space, 2}, {Bar, 3}, {Space, 1}, {Bar, 1}, {Space, 1},
	{Bar, 1},
}

// addon2Runs is the unit-module run-length encoding of a 2-digit add-on
// "12" (both digits G-code; the decoder does not check add-on parity): a
// guard whose last bar is 2
// modules wide (distinguishing it from a normal start guard) followed
// directly by the two G-code digits.
var addon2Runs = []edge{
	{Bar, 1}, {Space, 1}, {Bar, 2}, {Space, 1}, {Bar, 2}, {Space, 2},
	{Bar, 2}, {Space, 2}, {Bar, 2}, {Space, 1}, {Bar, 2},
}

func reversed(edges []edge) []edge {
	out := make([]edge, len(edges))
	for i, e := range edges {
		out[len(edges)-1-i] = e
	}
	return out
}

func stream(groups ...[]edge) []edge {
	var out []edge
	for _, g := range groups {
		out = append(out, g...)
	}
	return out
}

func TestDecoderReadsEAN13Forward(t *testing.T) {
	c := qt.New(t)

	d := NewDecoder()
	sym := feed(d, stream(priming, []edge{quietZone}, ean13Runs, []edge{quietZone}))
	c.Assert(sym, qt.Equals, EAN13)
	c.Assert(string(d.Output()), qt.Equals, "4006381333931")
}

func TestDecoderReadsEAN13Reversed(t *testing.T) {
	c := qt.New(t)

	d := NewDecoder()
	sym := feed(d, stream(priming, []edge{quietZone}, reversed(ean13Runs), []edge{quietZone}))
	c.Assert(sym, qt.Equals, EAN13)
	c.Assert(string(d.Output()), qt.Equals, "4006381333931")
}

func TestDecoderReadsEAN8(t *testing.T) {
	c := qt.New(t)

	d := NewDecoder()
	sym := feed(d, stream(priming, []edge{quietZone}, ean8Runs, []edge{quietZone}))
	c.Assert(sym, qt.Equals, EAN8)
	c.Assert(string(d.Output()), qt.Equals, "40123455")
}

func TestDecoderReadsEAN13WithAddon2(t *testing.T) {
	c := qt.New(t)

	d := NewDecoder()
	gap := edge{Space, 4}
	sym := feed(d, stream(priming, []edge{quietZone}, ean13Runs, []edge{gap}, addon2Runs, []edge{quietZone}))
	c.Assert(sym, qt.Equals, EAN13|Addon2)
	c.Assert(string(d.Output()), qt.Equals, "400638133393112")
}

package ean

import (
	"testing"

	qt "github.com/frankban/quicktest"
)

func TestNewDecoderStartsIdle(t *testing.T) {
	c := qt.New(t)

	d := NewDecoder()
	for _, p := range d.passes {
		c.Assert(p.state, qt.Equals, -1)
	}
	c.Assert(d.Output(), qt.HasLen, 0)
}

func TestProcessEdgeNeverPanicsOnNoise(t *testing.T) {
	c := qt.New(t)

	d := NewDecoder()
	widths := []uint{3, 1, 4, 1, 5, 9, 2, 6, 5, 3, 5, 8, 9, 7, 9}
	for i, w := range widths {
		col := Bar
		if i%2 == 1 {
			col = Space
		}
		sym := d.ProcessEdge(w, col)
		c.Assert(sym&symbolMask, qt.Not(qt.Equals), EAN13)
		c.Assert(sym&symbolMask, qt.Not(qt.Equals), EAN8)
	}
}

func TestDecoderResetClearsState(t *testing.T) {
	c := qt.New(t)

	d := NewDecoder()
	d.ProcessEdge(2, Bar)
	d.ProcessEdge(2, Space)
	d.s4 = 42
	d.Reset()

	c.Assert(d.s4, qt.Equals, uint(0))
	for _, p := range d.passes {
		c.Assert(p.state, qt.Equals, -1)
	}
	c.Assert(d.acc.left, qt.Equals, None)
}

func TestDecoderLockSuppressesOutput(t *testing.T) {
	c := qt.New(t)

	scan := stream(priming, []edge{quietZone}, ean13Runs, []edge{quietZone})

	// Unlocked, this scan completes and validates an EAN-13 symbol.
	c.Assert(feed(NewDecoder(), scan), qt.Equals, EAN13)

	// Locked, ProcessEdge reports the same completion as Partial and
	// writes nothing to the output buffer.
	d := NewDecoder()
	d.Lock = true
	sym := feed(d, scan)
	c.Assert(sym, qt.Equals, Partial)
	c.Assert(d.Output(), qt.HasLen, 0)
}

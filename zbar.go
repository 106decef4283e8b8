// Package zbar ties the ean decoder core to a small demultiplexer and the
// bus/device interfaces its sibling domain-stack packages (display,
// waveshare-epd/epd2in66b) are built against, the way tinygo.org/x/drivers centralizes
// an SPI interface in its own root package rather than each device
// package declaring its own.
package zbar

import (
	"image/color"

	"github.com/zkrige/zbar/ean"
)

// SymbologyDecoder is anything that consumes one edge at a time and
// reports a completed symbol, the contract *ean.Decoder satisfies.
type SymbologyDecoder interface {
	ProcessEdge(width uint, c ean.Color) ean.SymbolType
}

// SPI is the bus a Displayer is driven over. It matches
// tinygo.org/x/drivers.SPI's Transfer/Tx shape so a host-provided
// machine.SPI value satisfies it without an adapter.
type SPI interface {
	Transfer(w byte) (byte, error)
	Tx(w, r []byte) error
}

// Displayer is a panel that can show decoded symbols: the subset of
// waveshare-epd/epd2in66b.Device's surface that display.Sink depends on.
type Displayer interface {
	SetPixel(x, y int16, c color.RGBA)
	Display() error
	ClearBuffer()
	Size() (x, y int16)
}

// Registry forwards each edge to every registered SymbologyDecoder in
// registration order and returns the first non-None result (which may be
// ean.Partial).
type Registry struct {
	decoders []SymbologyDecoder
}

// New returns a Registry with the one symbology decoder this module
// ships already registered.
func New() *Registry {
	r := &Registry{}
	r.Register(ean.NewDecoder())
	return r
}

// Register adds d to the set of decoders consulted on every edge.
func (r *Registry) Register(d SymbologyDecoder) {
	r.decoders = append(r.decoders, d)
}

// ProcessEdge forwards width/c to every registered decoder and returns
// the first non-NONE result, or ean.None if none of them completed a
// symbol on this edge.
func (r *Registry) ProcessEdge(width uint, c ean.Color) ean.SymbolType {
	for _, d := range r.decoders {
		if sym := d.ProcessEdge(width, c); sym != ean.None {
			return sym
		}
	}
	return ean.None
}

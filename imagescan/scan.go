// Package imagescan extracts a single scanline of bar/space run-lengths
// from a raster image and feeds them through a symbol decoder.
//
// It does not decode any image format itself: callers hand it an
// already-decoded image.Image (typically produced by the standard
// library's image/jpeg, image/png, etc.) and a row index to sample.
package imagescan

import (
	"fmt"
	"image"

	"github.com/zkrige/zbar/ean"
)

// luminanceThreshold separates "bar" (dark) from "space" (light) samples.
// Matches a mid-gray split of the 16-bit luminance range produced by
// color.Gray16Model, which is what image.Image.At(...).RGBA() effectively
// reduces to once averaged.
const luminanceThreshold = 0x7fff

// Edge is one run-length sample: a contiguous span of width pixels, all
// on the same side of luminanceThreshold.
type Edge struct {
	Width uint
	Color ean.Color
}

// Scan samples row y of img and returns its bar/space run-lengths left
// to right. The first edge is a Space run (the quiet zone or whatever
// light pixels precede the first bar) unless the row begins with a dark
// pixel, in which case it is a Bar run: a zero-width leading Space run
// is never emitted. It returns (nil, error) if row falls outside img's
// bounds.
func Scan(img image.Image, row int) ([]Edge, error) {
	bounds := img.Bounds()
	if row < bounds.Min.Y || row >= bounds.Max.Y {
		return nil, fmt.Errorf("imagescan: row %d out of range [%d,%d)", row, bounds.Min.Y, bounds.Max.Y)
	}

	var edges []Edge
	var run uint
	cur := ean.Space

	for x := bounds.Min.X; x < bounds.Max.X; x++ {
		c := sample(img, x, row)
		if c == cur {
			run++
			continue
		}
		if run > 0 {
			edges = append(edges, Edge{Width: run, Color: cur})
		}
		cur = c
		run = 1
	}
	if run > 0 {
		edges = append(edges, Edge{Width: run, Color: cur})
	}
	return edges, nil
}

// sample reduces a pixel to a bar/space classification using the average
// of its R, G and B channels, alpha-weighted the way image.Image.At
// already returns alpha-premultiplied values.
func sample(img image.Image, x, y int) ean.Color {
	r, g, b, _ := img.At(x, y).RGBA()
	lum := (r + g + b) / 3
	if lum < luminanceThreshold {
		return ean.Bar
	}
	return ean.Space
}

// Feed replays edges through dec one at a time and returns the first
// SymbolType with a symbol bit set (i.e. not None and not merely
// Partial), or ean.None if the edges run out without completing one.
func Feed(dec *ean.Decoder, edges []Edge) ean.SymbolType {
	for _, e := range edges {
		sym := dec.ProcessEdge(e.Width, e.Color)
		if sym != ean.None && sym != ean.Partial {
			return sym
		}
	}
	return ean.None
}

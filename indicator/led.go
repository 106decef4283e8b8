// Package indicator drives a single WS2812 status LED from decode
// results, adapted from the teacher's ws2812 driver: the same GRB(A)
// write convention, wrapped here with decode-result semantics instead of
// a bare color.RGBA writer.
package indicator

import (
	"image/color"

	"github.com/zkrige/zbar/ws2812"
)

var (
	colorGood = color.RGBA{G: 0x40, A: 0xff}
	colorBad  = color.RGBA{R: 0x40, A: 0xff}
	colorIdle = color.RGBA{B: 0x20, A: 0xff}
	colorOff  = color.RGBA{}
)

// LED is a single-pixel status indicator.
type LED struct {
	dev ws2812.Device
}

// New wraps dev, an already-configured ws2812 device driving exactly one
// pixel.
func New(dev ws2812.Device) *LED {
	return &LED{dev: dev}
}

// Good lights the indicator solid green for one decode cycle.
func (l *LED) Good() error {
	return l.show(colorGood)
}

// Bad lights the indicator solid red on checksum failure or
// invalid-guard rejection.
func (l *LED) Bad() error {
	return l.show(colorBad)
}

// Idle lights the indicator a dim blue while scanning with no decode
// yet.
func (l *LED) Idle() error {
	return l.show(colorIdle)
}

// Off turns the indicator dark.
func (l *LED) Off() error {
	return l.show(colorOff)
}

func (l *LED) show(c color.RGBA) error {
	return l.dev.WriteColors([]color.RGBA{c})
}

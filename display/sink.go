// Package display renders decoded symbols and a scrolling decode log on
// an e-paper status panel. It draws only through the zbar.Displayer
// interface; the black/red bit buffers and SPI command sequencing live in
// the panel driver behind it (such as waveshare-epd/epd2in66b).
package display

import (
	"image/color"

	"tinygo.org/x/tinyfont"
	"tinygo.org/x/tinyterm"

	"github.com/zkrige/zbar"
	"github.com/zkrige/zbar/ean"
)

var (
	black = color.RGBA{A: 0xff}
	red   = color.RGBA{R: 0xff, A: 0xff}
)

// Sink renders decoded symbols on a panel and keeps a scrolling log of
// recent decodes in a terminal drawn on the same panel.
type Sink struct {
	panel    zbar.Displayer
	headline *tinyfont.Font
	log      *tinyterm.Terminal

	logTop int16
}

// NewSink wraps panel, rendering headline digits with font and a
// scrolling log through a tinyterm terminal on the same panel. logTop is
// stored on the Sink but not applied: the terminal is configured with no
// vertical offset, so its lines are laid out from the panel's own origin.
func NewSink(panel zbar.Displayer, font *tinyfont.Font, logTop int16) *Sink {
	term := tinyterm.NewTerminal(panel)
	term.Configure(&tinyterm.Config{
		Font:       font,
		FontHeight: 16,
	})
	return &Sink{panel: panel, headline: font, log: term, logTop: logTop}
}

// ShowSymbol clears the panel's buffers and renders the decoded digit
// string large and centered, with the symbology name underneath. It
// returns the error from the panel's Display.
func (s *Sink) ShowSymbol(symType ean.SymbolType, text string) error {
	s.panel.ClearBuffer()

	w, _ := s.panel.Size()
	x := centerX(w, s.headline, text)
	tinyfont.WriteLine(s.panel, s.headline, x, 40, text, black)
	tinyfont.WriteLine(s.panel, s.headline, x, 60, symType.String(), red)

	return s.panel.Display()
}

// Log appends line to the scrolling terminal history.
func (s *Sink) Log(line string) {
	s.log.WriteString(line)
	s.log.WriteString("\n")
}

// centerX estimates the left pixel offset needed to center text of the
// given font within a panel of width w, using a fixed per-glyph advance
// since tinyfont proportional widths aren't known without a measuring
// pass.
func centerX(w int16, font *tinyfont.Font, text string) int16 {
	const glyphWidth = 8
	textWidth := int16(len(text)) * glyphWidth
	if textWidth >= w {
		return 0
	}
	return (w - textWidth) / 2
}

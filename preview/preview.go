// Package preview simulates a display on the console when no GPIO hardware
// is around.
package preview

import (
	"fmt"
	"image"
	"image/color"
	"strings"

	"github.com/coreman2200/funtimes-sevenseg/segment"
	"github.com/rs/zerolog/log"
	"periph.io/x/conn/v3/display"
	"periph.io/x/conn/v3/gpio/gpiotest"
	"periph.io/x/extra/devices/screen"
)

var (
	Lit  = color.NRGBA{R: 255, G: 32, A: 255}
	Dark = color.NRGBA{R: 24, G: 4, B: 4, A: 255}
)

// Panel is eight simulated pins, one per segment, and the drawer their
// levels are rendered to as a strip of pixels a..dp.
type Panel struct {
	// ActiveLow reads a low pin as a lit segment (common anode wiring).
	ActiveLow bool

	pins   [segment.Count]*gpiotest.Pin
	drawer display.Drawer
}

// NewPanel returns a panel rendering to d, or to an ANSI console strip when
// d is nil.
func NewPanel(d display.Drawer) *Panel {
	if d == nil {
		d = screen.New(segment.Count)
	}
	p := &Panel{drawer: d}
	for i := range p.pins {
		s := segment.Segment(i)
		p.pins[i] = &gpiotest.Pin{N: "SIM_" + strings.ToUpper(s.String()), Num: i}
	}
	return p
}

func (p *Panel) Pins() [segment.Count]*gpiotest.Pin {
	return p.pins
}

// Pattern reads the pin levels back into a figure byte.
func (p *Panel) Pattern() byte {
	var v byte
	for i, pin := range p.pins {
		if bool(pin.Read()) != p.ActiveLow {
			v |= segment.Segment(i).Bit()
		}
	}
	return v
}

func (p *Panel) Image() *image.NRGBA {
	pattern := p.Pattern()
	im := image.NewNRGBA(image.Rect(0, 0, segment.Count, 1))
	for x := 0; x < segment.Count; x++ {
		c := Dark
		if pattern&segment.Segment(x).Bit() != 0 {
			c = Lit
		}
		im.SetNRGBA(x, 0, c)
	}
	return im
}

func (p *Panel) Render() error {
	if err := p.drawer.Draw(p.drawer.Bounds(), p.Image(), image.Point{}); err != nil {
		return err
	}
	pattern := p.Pattern()
	log.Debug().Str("pattern", fmt.Sprintf("0b%08b", pattern)).Msg("\n" + Art(pattern))
	return nil
}

func (p *Panel) Halt() error {
	return p.drawer.Halt()
}

// Art draws a figure byte as a three column ASCII digit.
func Art(pattern byte) string {
	on := func(s segment.Segment, r string) string {
		if pattern&s.Bit() != 0 {
			return r
		}
		return " "
	}
	var b strings.Builder
	b.WriteString(" " + on(segment.A, "-") + " \n")
	b.WriteString(on(segment.F, "|") + " " + on(segment.B, "|") + "\n")
	b.WriteString(" " + on(segment.G, "-") + " \n")
	b.WriteString(on(segment.E, "|") + " " + on(segment.C, "|") + "\n")
	b.WriteString(" " + on(segment.D, "-") + " " + on(segment.DP, ".") + "\n")
	return b.String()
}

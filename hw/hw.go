// Package hw binds the eight lines named by a config to a display.
package hw

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/coreman2200/funtimes-sevenseg/config"
	"github.com/coreman2200/funtimes-sevenseg/preview"
	"github.com/coreman2200/funtimes-sevenseg/rpioline"
	"github.com/coreman2200/funtimes-sevenseg/segment"
	"github.com/rs/zerolog/log"
	"periph.io/x/conn/v3/display"
	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/gpio/gpioreg"
	"periph.io/x/host/v3"
)

// Setup is an opened display and what has to be released with it.
type Setup struct {
	segment.Display

	// Panel is set for the sim driver only.
	Panel  *preview.Panel
	closer func() error
}

// Open builds the display for c.Driver. drawer is only used by the sim
// driver; nil means the console.
func Open(c *config.Config, drawer display.Drawer) (*Setup, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	switch c.Driver {
	case config.DriverPeriph:
		return openPeriph(c)
	case config.DriverRPIO:
		return openRPIO(c)
	default:
		return openSim(c, drawer), nil
	}
}

func openPeriph(c *config.Config) (*Setup, error) {
	if _, err := host.Init(); err != nil {
		return nil, fmt.Errorf("hw: periph host init: %w", err)
	}
	var lines [segment.Count]gpio.PinIO
	for i, name := range c.Pins.Names() {
		p := gpioreg.ByName(name)
		if p == nil {
			return nil, fmt.Errorf("hw: no gpio named %q for segment %s", name, segment.Segment(i))
		}
		lines[i] = p
	}
	log.Info().Str("driver", c.Driver).Strs("pins", pinNames(lines)).Bool("common_anode", c.CommonAnode).Msg("display opened")
	return &Setup{Display: bind(lines, c.CommonAnode), closer: func() error { return nil }}, nil
}

func openRPIO(c *config.Config) (*Setup, error) {
	var bcm [segment.Count]int
	for i, name := range c.Pins.Names() {
		n, err := ParseBCM(name)
		if err != nil {
			return nil, fmt.Errorf("hw: segment %s: %w", segment.Segment(i), err)
		}
		bcm[i] = n
	}
	if err := rpioline.Open(); err != nil {
		return nil, err
	}
	lines := rpioline.Pins(bcm)
	log.Info().Str("driver", c.Driver).Ints("bcm", bcm[:]).Bool("common_anode", c.CommonAnode).Msg("display opened")
	return &Setup{Display: bind(lines, c.CommonAnode), closer: rpioline.Close}, nil
}

func openSim(c *config.Config, drawer display.Drawer) *Setup {
	p := preview.NewPanel(drawer)
	p.ActiveLow = c.CommonAnode
	log.Info().Str("driver", c.Driver).Bool("common_anode", c.CommonAnode).Msg("display opened")
	return &Setup{Display: bind(p.Pins(), c.CommonAnode), Panel: p, closer: p.Halt}
}

func bind[P segment.Line](l [segment.Count]P, commonAnode bool) segment.Display {
	if !commonAnode {
		return segment.New(l[0], l[1], l[2], l[3], l[4], l[5], l[6], l[7])
	}
	var inv [segment.Count]segment.Inverted
	for i := range l {
		inv[i] = segment.Inverted{Line: l[i]}
	}
	return segment.New(inv[0], inv[1], inv[2], inv[3], inv[4], inv[5], inv[6], inv[7])
}

// Render refreshes the console preview. It does nothing on real hardware.
func (s *Setup) Render() error {
	if s.Panel == nil {
		return nil
	}
	return s.Panel.Render()
}

func (s *Setup) Close() error {
	return s.closer()
}

// ParseBCM accepts "17" or "GPIO17".
func ParseBCM(name string) (int, error) {
	n, err := strconv.Atoi(strings.TrimPrefix(strings.ToUpper(name), "GPIO"))
	if err != nil || n < 0 || n > 53 {
		return 0, fmt.Errorf("invalid bcm pin %q", name)
	}
	return n, nil
}

func pinNames(lines [segment.Count]gpio.PinIO) []string {
	out := make([]string, 0, len(lines))
	for _, l := range lines {
		out = append(out, l.Name())
	}
	return out
}

// Package rpioline exposes Raspberry Pi GPIOs driven through go-rpio's
// memory map as segment lines.
package rpioline

import (
	"fmt"

	"github.com/stianeikeland/go-rpio"
	"periph.io/x/conn/v3/gpio"
)

// Open maps the GPIO registers. It must succeed before any Pin is used.
func Open() error {
	if err := rpio.Open(); err != nil {
		return fmt.Errorf("rpioline: open: %w", err)
	}
	return nil
}

func Close() error {
	return rpio.Close()
}

// Pin is a BCM numbered GPIO set to output mode.
type Pin struct {
	rpio.Pin
}

func New(bcm int) Pin {
	p := rpio.Pin(bcm)
	p.Output()
	return Pin{p}
}

// Pins returns the eight pins in the given order.
func Pins(bcm [8]int) [8]Pin {
	var out [8]Pin
	for i, n := range bcm {
		out[i] = New(n)
	}
	return out
}

// Out never fails, register writes cannot report an error.
func (p Pin) Out(l gpio.Level) error {
	p.Write(state(l))
	return nil
}

func (p Pin) String() string {
	return fmt.Sprintf("GPIO%d", uint8(p.Pin))
}

func state(l gpio.Level) rpio.State {
	if l {
		return rpio.High
	}
	return rpio.Low
}

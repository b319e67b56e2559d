package segmenttest

import (
	"errors"

	"periph.io/x/conn/v3/gpio"
)

// ErrInputMode is returned by a Flex that has not been switched to output.
var ErrInputMode = errors.New("segmenttest: flex pin is in input mode")

// Flex mimics a switchable-direction pin. It starts as an input and only
// forwards writes to its Line once Output has been called.
type Flex struct {
	*Line
	output bool
}

func NewFlex(l *Line) *Flex {
	return &Flex{Line: l}
}

func (f *Flex) Output() {
	f.output = true
}

func (f *Flex) Input() {
	f.output = false
}

func (f *Flex) Out(l gpio.Level) error {
	if !f.output {
		return ErrInputMode
	}
	return f.Line.Out(l)
}

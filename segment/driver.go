package segment

import (
	"fmt"

	"periph.io/x/conn/v3/gpio"
)

// Driver is implemented by every display variant. SetSegment drives a single
// line; it panics if s is not one of A..DP.
type Driver interface {
	SetSegment(s Segment, l gpio.Level) error
}

// Display is the figure writing surface both variants offer.
type Display interface {
	Driver
	WriteByte(pattern byte) error
	Clear() error
	SetDigit(digit uint8, dp bool) error
}

// Error is returned when a line could not be driven. Lines before Segment
// were already written and stay as they are.
type Error struct {
	Segment Segment
	Level   gpio.Level
	Err     error
}

func (e *Error) Error() string {
	return fmt.Sprintf("segment %s: set %s: %v", e.Segment, e.Level, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// WriteByte writes a figure in the 0b[dp][g][f][e][d][c][b][a] format,
// segment a first. It stops at the first line that fails.
func WriteByte(d Driver, pattern byte) error {
	for s := A; s <= DP; s++ {
		l := gpio.Level(pattern>>s&1 == 1)
		if err := d.SetSegment(s, l); err != nil {
			return &Error{Segment: s, Level: l, Err: err}
		}
	}
	return nil
}

// Clear drives every line off.
func Clear(d Driver) error {
	return WriteByte(d, 0)
}

// SetDigit shows a decimal digit, with the decimal point lit when dp is set.
// A previous figure does not need to be cleared first. It panics if digit is
// greater than 9, before any line is touched.
func SetDigit(d Driver, digit uint8, dp bool) error {
	pattern := DigitPattern(digit)
	if dp {
		pattern |= DP.Bit()
	}
	return WriteByte(d, pattern)
}

// Figures provides the figure writing methods on top of a Driver. Display
// variants embed it pointing at themselves.
type Figures struct {
	Driver
}

func (f Figures) WriteByte(pattern byte) error {
	return WriteByte(f.Driver, pattern)
}

func (f Figures) Clear() error {
	return Clear(f.Driver)
}

func (f Figures) SetDigit(digit uint8, dp bool) error {
	return SetDigit(f.Driver, digit, dp)
}

// Package segment drives a single seven-segment display with decimal point
// (5011AS pinout) through eight independent output lines.
package segment

import (
	"fmt"

	"periph.io/x/conn/v3/gpio"
)

// Segment identifies one of the eight display lines. The order is the
// pinout order and the bit order of a figure byte.
type Segment uint8

const (
	A Segment = iota
	B
	C
	D
	E
	F
	G
	DP
)

// Count is the number of lines a display is wired with.
const Count = 8

var names = [Count]string{"a", "b", "c", "d", "e", "f", "g", "dp"}

func (s Segment) String() string {
	if !s.Valid() {
		return fmt.Sprintf("segment(%d)", uint8(s))
	}
	return names[s]
}

func (s Segment) Valid() bool {
	return s <= DP
}

// Bit returns the figure byte mask of s.
func (s Segment) Bit() byte {
	return 1 << s
}

// dp is never set in the table, it is OR'd in by SetDigit.
var digits = [10]byte{
	0b0111111, // 0
	0b0000110, // 1
	0b1011011, // 2
	0b1001111, // 3
	0b1100110, // 4
	0b1101101, // 5
	0b1111101, // 6
	0b0000111, // 7
	0b1111111, // 8
	0b1101111, // 9
}

// DigitPattern returns the a..g pattern of a decimal digit. It panics if
// digit is greater than 9.
func DigitPattern(digit uint8) byte {
	if digit > 9 {
		panic(fmt.Sprintf("segment: digit %d out of range [0,9]", digit))
	}
	return digits[digit]
}

// Line is a settable binary output. Every periph gpio.PinOut is a Line.
type Line interface {
	Out(l gpio.Level) error
}

// Inverted drives the wrapped line with the opposite level, for common
// anode displays where a segment is lit by pulling its line low.
type Inverted struct {
	Line
}

func (i Inverted) Out(l gpio.Level) error {
	return i.Line.Out(!l)
}

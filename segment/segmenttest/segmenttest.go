// Package segmenttest provides fake display lines that record every write
// into one shared trace, for testing code built on package segment.
package segmenttest

import (
	"errors"
	"fmt"

	"github.com/coreman2200/funtimes-sevenseg/segment"
	"periph.io/x/conn/v3/gpio"
)

// ErrInjected is the default error returned by a Bank set up with FailAt.
var ErrInjected = errors.New("segmenttest: injected line fault")

// Call is one recorded write.
type Call struct {
	Segment segment.Segment
	Level   gpio.Level
}

func (c Call) String() string {
	return fmt.Sprintf("%s=%s", c.Segment, c.Level)
}

// Bank is a set of eight recording lines, one per segment.
type Bank struct {
	Calls []Call

	levels [segment.Count]gpio.Level
	lines  [segment.Count]*Line
	failAt int
	err    error
}

func NewBank() *Bank {
	b := &Bank{}
	for i := range b.lines {
		b.lines[i] = &Line{bank: b, seg: segment.Segment(i)}
	}
	return b
}

// FailAt makes the k-th write from now on (1-based) fail with err, or with
// ErrInjected when err is nil. The failing write is recorded but the line
// level is left unchanged.
func (b *Bank) FailAt(k int, err error) {
	if err == nil {
		err = ErrInjected
	}
	b.failAt = len(b.Calls) + k
	b.err = err
}

func (b *Bank) Line(s segment.Segment) *Line {
	return b.lines[s]
}

// Lines returns the lines in pinout order.
func (b *Bank) Lines() [segment.Count]*Line {
	return b.lines
}

// Levels returns the last level written to each line.
func (b *Bank) Levels() [segment.Count]gpio.Level {
	return b.levels
}

// Pattern folds the current line levels back into a figure byte.
func (b *Bank) Pattern() byte {
	var p byte
	for i, l := range b.levels {
		if l {
			p |= segment.Segment(i).Bit()
		}
	}
	return p
}

// Reset forgets the recorded calls and any pending fault, keeping levels.
func (b *Bank) Reset() {
	b.Calls = nil
	b.failAt = 0
	b.err = nil
}

func (b *Bank) out(s segment.Segment, l gpio.Level) error {
	b.Calls = append(b.Calls, Call{Segment: s, Level: l})
	if b.failAt > 0 && len(b.Calls) == b.failAt {
		return b.err
	}
	b.levels[s] = l
	return nil
}

// Line is one recording line of a Bank.
type Line struct {
	bank *Bank
	seg  segment.Segment
}

func (l *Line) Out(level gpio.Level) error {
	return l.bank.out(l.seg, level)
}

func (l *Line) String() string {
	return "segmenttest." + l.seg.String()
}

// Trace returns the calls a WriteByte of pattern is expected to record.
func Trace(pattern byte) []Call {
	calls := make([]Call, 0, segment.Count)
	for s := segment.A; s <= segment.DP; s++ {
		calls = append(calls, Call{Segment: s, Level: pattern&s.Bit() != 0})
	}
	return calls
}

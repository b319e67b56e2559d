package segmenttest

import (
	"errors"
	"testing"

	"github.com/coreman2200/funtimes-sevenseg/segment"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"periph.io/x/conn/v3/gpio"
)

func TestBankRecordsInOrder(t *testing.T) {
	b := NewBank()
	require.NoError(t, b.Line(segment.C).Out(gpio.High))
	require.NoError(t, b.Line(segment.A).Out(gpio.Low))

	assert.Equal(t, []Call{{segment.C, gpio.High}, {segment.A, gpio.Low}}, b.Calls)
	assert.Equal(t, segment.C.Bit(), b.Pattern())
	assert.Equal(t, "c=High", b.Calls[0].String())
}

func TestBankFailAt(t *testing.T) {
	b := NewBank()
	require.NoError(t, b.Line(segment.A).Out(gpio.High))

	fault := errors.New("stuck")
	b.FailAt(2, fault)
	require.NoError(t, b.Line(segment.B).Out(gpio.High))
	assert.ErrorIs(t, b.Line(segment.C).Out(gpio.High), fault)
	require.NoError(t, b.Line(segment.D).Out(gpio.High))

	assert.Len(t, b.Calls, 4)
	assert.Equal(t, segment.A.Bit()|segment.B.Bit()|segment.D.Bit(), b.Pattern())

	b.Reset()
	assert.Empty(t, b.Calls)
	assert.Equal(t, segment.A.Bit()|segment.B.Bit()|segment.D.Bit(), b.Pattern())
}

func TestTrace(t *testing.T) {
	calls := Trace(0b10000001)
	require.Len(t, calls, segment.Count)
	for i, c := range calls {
		assert.Equal(t, segment.Segment(i), c.Segment)
		assert.Equal(t, gpio.Level(i == 0 || i == 7), c.Level)
	}
}

func TestFlex(t *testing.T) {
	b := NewBank()
	f := NewFlex(b.Line(segment.G))
	assert.ErrorIs(t, f.Out(gpio.High), ErrInputMode)
	assert.Empty(t, b.Calls)

	f.Output()
	require.NoError(t, f.Out(gpio.High))
	assert.Equal(t, segment.G.Bit(), b.Pattern())

	f.Input()
	assert.ErrorIs(t, f.Out(gpio.Low), ErrInputMode)
}

func TestRecorder(t *testing.T) {
	r := &Recorder{Errs: map[int]error{1: ErrInjected}}
	require.NoError(t, r.SetSegment(segment.A, gpio.High))
	assert.ErrorIs(t, r.SetSegment(segment.B, gpio.High), ErrInjected)
	assert.Len(t, r.Calls, 2)
	assert.Panics(t, func() { _ = r.SetSegment(segment.Segment(9), gpio.Low) })
}

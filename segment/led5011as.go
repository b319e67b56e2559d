package segment

import (
	"fmt"

	"periph.io/x/conn/v3/gpio"
)

// LED5011AS drives a display whose eight lines all share the same type.
type LED5011AS[P Line] struct {
	Figures
	lines [Count]P
}

// New binds the lines in pinout order a, b, c, d, e, f, g, dp. If the lines
// are of different types use NewGeneric.
func New[P Line](a, b, c, d, e, f, g, dp P) *LED5011AS[P] {
	v := &LED5011AS[P]{
		lines: [Count]P{a, b, c, d, e, f, g, dp},
	}
	v.Figures = Figures{v}
	return v
}

func (v *LED5011AS[P]) SetSegment(s Segment, l gpio.Level) error {
	if !s.Valid() {
		panic(fmt.Sprintf("segment: invalid segment %d", uint8(s)))
	}
	return v.lines[s].Out(l)
}

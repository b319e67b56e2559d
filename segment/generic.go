package segment

import (
	"fmt"

	"periph.io/x/conn/v3/gpio"
)

// GenericLED5011AS drives a display whose lines may each be of a different
// type, for example a plain output on a and a switchable-direction pin on b.
// The cost is eight type parameters that any struct holding it has to carry
// too; when the lines share one type LED5011AS is simpler.
type GenericLED5011AS[PA, PB, PC, PD, PE, PF, PG, PDP Line] struct {
	Figures
	a  PA
	b  PB
	c  PC
	d  PD
	e  PE
	f  PF
	g  PG
	dp PDP
}

// NewGeneric binds the lines in pinout order a, b, c, d, e, f, g, dp.
func NewGeneric[PA, PB, PC, PD, PE, PF, PG, PDP Line](a PA, b PB, c PC, d PD, e PE, f PF, g PG, dp PDP) *GenericLED5011AS[PA, PB, PC, PD, PE, PF, PG, PDP] {
	v := &GenericLED5011AS[PA, PB, PC, PD, PE, PF, PG, PDP]{
		a:  a,
		b:  b,
		c:  c,
		d:  d,
		e:  e,
		f:  f,
		g:  g,
		dp: dp,
	}
	v.Figures = Figures{v}
	return v
}

func (v *GenericLED5011AS[PA, PB, PC, PD, PE, PF, PG, PDP]) SetSegment(s Segment, l gpio.Level) error {
	switch s {
	case A:
		return v.a.Out(l)
	case B:
		return v.b.Out(l)
	case C:
		return v.c.Out(l)
	case D:
		return v.d.Out(l)
	case E:
		return v.e.Out(l)
	case F:
		return v.f.Out(l)
	case G:
		return v.g.Out(l)
	case DP:
		return v.dp.Out(l)
	default:
		panic(fmt.Sprintf("segment: invalid segment %d", uint8(s)))
	}
}

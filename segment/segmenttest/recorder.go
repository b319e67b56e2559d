package segmenttest

import (
	"github.com/coreman2200/funtimes-sevenseg/segment"
	"periph.io/x/conn/v3/gpio"
)

// Recorder is a bare segment.Driver that records SetSegment calls. Errs, when
// set, is consulted per call index (0-based); a nil entry succeeds.
type Recorder struct {
	Calls []Call
	Errs  map[int]error
}

func (r *Recorder) SetSegment(s segment.Segment, l gpio.Level) error {
	if !s.Valid() {
		panic("segmenttest: invalid segment " + s.String())
	}
	i := len(r.Calls)
	r.Calls = append(r.Calls, Call{Segment: s, Level: l})
	return r.Errs[i]
}

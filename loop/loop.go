// Package loop steps a display at a fixed rate until it is told to stop.
package loop

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"time"

	"github.com/rs/zerolog/log"
)

const DefaultInterval = time.Second

// Step is called once per tick with the number of ticks so far.
type Step func(n int) error

type Looper struct {
	Interval time.Duration
	Step     Step

	// Signals stop the loop, os.Interrupt when nil.
	Signals []os.Signal
}

func New(interval time.Duration, step Step) *Looper {
	return &Looper{Interval: interval, Step: step}
}

// Run calls Step immediately and then on every tick. It returns nil when ctx
// is cancelled or a signal arrives, and the step's error when a step fails.
func (l *Looper) Run(ctx context.Context) error {
	if l.Step == nil {
		return errors.New("loop: no step")
	}
	interval := l.Interval
	if interval <= 0 {
		interval = DefaultInterval
	}
	sigs := l.Signals
	if sigs == nil {
		sigs = []os.Signal{os.Interrupt}
	}

	c := make(chan os.Signal, 1)
	signal.Notify(c, sigs...)
	defer signal.Stop(c)

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	n := 0
	for {
		if err := l.Step(n); err != nil {
			return err
		}
		n++

		select {
		case <-ticker.C:
		case sig := <-c:
			log.Info().Str("signal", sig.String()).Msg("stopping")
			return nil
		case <-ctx.Done():
			return nil
		}
	}
}

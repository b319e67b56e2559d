package cmd

import (
	"context"
	"errors"

	"github.com/coreman2200/funtimes-sevenseg/hw"
	"github.com/coreman2200/funtimes-sevenseg/loop"
	"github.com/coreman2200/funtimes-sevenseg/segment"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

// errDone ends a loop that ran its requested number of steps.
var errDone = errors.New("done")

var CountCmd = &cobra.Command{
	Use:   "count",
	Short: "Count 0-9 over and over until interrupted",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		dp, _ := cmd.Flags().GetBool("dp")
		return run(cmd, func(s *hw.Setup, n int) error {
			return s.SetDigit(uint8(n%10), dp && n%2 == 1)
		})
	},
}

var SegmentsCmd = &cobra.Command{
	Use:   "segments",
	Short: "Light a..dp one at a time to check the wiring",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return run(cmd, func(s *hw.Setup, n int) error {
			seg := segment.Segment(n % segment.Count)
			log.Info().Stringer("segment", seg).Msg("lit")
			return s.WriteByte(seg.Bit())
		})
	},
}

func init() {
	CountCmd.Flags().Bool("dp", false, "light the decimal point on odd digits")
	for _, c := range []*cobra.Command{CountCmd, SegmentsCmd} {
		c.Flags().Int("steps", 0, "stop after this many steps, 0 runs until Ctrl+C")
	}
}

// run steps the display at the configured interval and clears it on the way
// out.
func run(cmd *cobra.Command, step func(s *hw.Setup, n int) error) error {
	s, c, err := openDisplay(cmd)
	if err != nil {
		return err
	}
	defer s.Close()
	steps, _ := cmd.Flags().GetInt("steps")

	l := loop.New(c.Interval(), func(n int) error {
		if steps > 0 && n >= steps {
			return errDone
		}
		if err := step(s, n); err != nil {
			return err
		}
		return s.Render()
	})

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	err = l.Run(ctx)
	if errors.Is(err, errDone) {
		err = nil
	}
	if cerr := s.Clear(); cerr != nil && err == nil {
		err = cerr
	}
	return err
}

package cmd

import (
	"fmt"
	"strconv"

	"github.com/coreman2200/funtimes-sevenseg/hw"
	"github.com/spf13/cobra"
)

var DigitCmd = &cobra.Command{
	Use:   "digit <0-9>",
	Short: "Show a decimal digit",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := ParseDigit(args[0])
		if err != nil {
			return err
		}
		dp, _ := cmd.Flags().GetBool("dp")
		return show(cmd, func(s *hw.Setup) error { return s.SetDigit(d, dp) })
	},
}

var ByteCmd = &cobra.Command{
	Use:   "byte <pattern>",
	Short: "Write a raw figure, 0b[dp][g][f][e][d][c][b][a]",
	Long:  `Write a raw figure byte. The pattern may be given as binary (0b01110111), hex (0x77), octal (0o167) or decimal (119).`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := ParsePattern(args[0])
		if err != nil {
			return err
		}
		return show(cmd, func(s *hw.Setup) error { return s.WriteByte(p) })
	},
}

var ClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Turn every segment off",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return show(cmd, func(s *hw.Setup) error { return s.Clear() })
	},
}

func init() {
	DigitCmd.Flags().Bool("dp", false, "light the decimal point")
}

// ParseDigit accepts a single decimal digit.
func ParseDigit(s string) (uint8, error) {
	n, err := strconv.ParseUint(s, 10, 8)
	if err != nil || n > 9 {
		return 0, fmt.Errorf("digit must be 0-9, got %q", s)
	}
	return uint8(n), nil
}

// ParsePattern accepts a byte in any Go integer literal base.
func ParsePattern(s string) (byte, error) {
	n, err := strconv.ParseUint(s, 0, 8)
	if err != nil {
		return 0, fmt.Errorf("pattern must be a byte, got %q", s)
	}
	return byte(n), nil
}

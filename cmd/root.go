package cmd

import (
	"errors"
	"io/fs"
	"os"
	"time"

	"github.com/coreman2200/funtimes-sevenseg/config"
	"github.com/coreman2200/funtimes-sevenseg/hw"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"periph.io/x/conn/v3/display"
)

// drawer receives the sim preview, nil means the console.
var drawer display.Drawer

// Root is the sevenseg command. Subcommands map onto the display operations.
var Root = &cobra.Command{
	Use:          "sevenseg",
	Short:        "Drive a single seven-segment display wired to eight GPIOs",
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		debug, _ := cmd.Flags().GetBool("debug")
		setupLogging(debug)
	},
}

func init() {
	f := Root.PersistentFlags()
	f.StringP("config", "c", "sevenseg.yaml", "path to the yaml config")
	f.String("driver", "", "line driver: periph | rpio | sim (overrides config)")
	f.Bool("common-anode", false, "lines are active low (overrides config)")
	f.Bool("debug", false, "debug logging, prints the figure on every render")

	Root.AddCommand(DigitCmd, ByteCmd, ClearCmd, CountCmd, SegmentsCmd)
}

func setupLogging(debug bool) {
	zerolog.TimeFieldFormat = time.RFC3339
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
}

// loadConfig reads the config file, falling back to defaults when it does
// not exist, then applies the flags that were set explicitly.
func loadConfig(flags *pflag.FlagSet) (*config.Config, error) {
	path, _ := flags.GetString("config")

	c, err := config.Load(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		log.Debug().Str("path", path).Msg("no config file; using defaults")
		c = config.Default()
	case err != nil:
		return nil, err
	}

	if flags.Changed("driver") {
		c.Driver, _ = flags.GetString("driver")
	}
	if flags.Changed("common-anode") {
		c.CommonAnode, _ = flags.GetBool("common-anode")
	}
	return c, nil
}

func openDisplay(cmd *cobra.Command) (*hw.Setup, *config.Config, error) {
	c, err := loadConfig(cmd.Flags())
	if err != nil {
		return nil, nil, err
	}
	s, err := hw.Open(c, drawer)
	if err != nil {
		return nil, nil, err
	}
	return s, c, nil
}

// show opens the display, applies f and renders the result.
func show(cmd *cobra.Command, f func(s *hw.Setup) error) error {
	s, _, err := openDisplay(cmd)
	if err != nil {
		return err
	}
	defer s.Close()
	if err := f(s); err != nil {
		return err
	}
	return s.Render()
}

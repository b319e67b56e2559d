package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	DriverPeriph = "periph"
	DriverRPIO   = "rpio"
	DriverSim    = "sim"
)

var (
	ErrMissingPin   = errors.New("config: pin not set")
	ErrDuplicatePin = errors.New("config: pin used twice")
)

// Pins names the line wired to each segment. periph takes pin names
// ("GPIO6"), rpio takes BCM numbers, sim ignores them.
type Pins struct {
	A  string `yaml:"a"`
	B  string `yaml:"b"`
	C  string `yaml:"c"`
	D  string `yaml:"d"`
	E  string `yaml:"e"`
	F  string `yaml:"f"`
	G  string `yaml:"g"`
	DP string `yaml:"dp"`
}

// Names returns the pins in segment order a..dp.
func (p Pins) Names() [8]string {
	return [8]string{p.A, p.B, p.C, p.D, p.E, p.F, p.G, p.DP}
}

type Config struct {
	Driver      string `yaml:"driver"` // "periph" | "rpio" | "sim"
	CommonAnode bool   `yaml:"common_anode"`
	IntervalMs  int    `yaml:"interval_ms"`
	Pins        Pins   `yaml:"pins"`
}

// Default wires the segments to a run of free Raspberry Pi header pins and
// previews on the console.
func Default() *Config {
	return &Config{
		Driver:     DriverSim,
		IntervalMs: 1000,
		Pins: Pins{
			A:  "GPIO6",
			B:  "GPIO13",
			C:  "GPIO19",
			D:  "GPIO26",
			E:  "GPIO12",
			F:  "GPIO16",
			G:  "GPIO20",
			DP: "GPIO21",
		},
	}
}

func (c *Config) Interval() time.Duration {
	return time.Duration(c.IntervalMs) * time.Millisecond
}

func (c *Config) Validate() error {
	switch c.Driver {
	case DriverPeriph, DriverRPIO, DriverSim:
	default:
		return fmt.Errorf("config: unknown driver %q", c.Driver)
	}
	if c.IntervalMs <= 0 {
		return fmt.Errorf("config: interval_ms must be positive, got %d", c.IntervalMs)
	}
	if c.Driver == DriverSim {
		return nil
	}
	seen := map[string]string{}
	segs := [8]string{"a", "b", "c", "d", "e", "f", "g", "dp"}
	for i, name := range c.Pins.Names() {
		if name == "" {
			return fmt.Errorf("%w: %s", ErrMissingPin, segs[i])
		}
		if prev, ok := seen[name]; ok {
			return fmt.Errorf("%w: %s on %s and %s", ErrDuplicatePin, name, prev, segs[i])
		}
		seen[name] = segs[i]
	}
	return nil
}

// Load reads path over the defaults, so a file may only set what it changes.
func Load(path string) (*Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	c := Default()
	if err := yaml.Unmarshal(b, c); err != nil {
		return nil, fmt.Errorf("config: %s: %w", path, err)
	}
	return c, nil
}

func Save(path string, c *Config) error {
	b, err := yaml.Marshal(c)
	if err != nil {
		return err
	}
	return os.WriteFile(path, b, 0644)
}

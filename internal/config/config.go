// Package config loads settings for the planck commands.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"

	"github.com/gogpu/planck"
	"github.com/gogpu/planck/plot"
)

// ErrInvalid is wrapped by every validation error.
var ErrInvalid = errors.New("invalid configuration")

// Sweep renders one frame per temperature from From to To in Step
// increments. A zero Step disables the sweep.
type Sweep struct {
	From float64 `yaml:"from"`
	To   float64 `yaml:"to"`
	Step float64 `yaml:"step"`
}

// Enabled reports whether a sweep was requested.
func (s Sweep) Enabled() bool {
	return s.Step != 0
}

// MaxSweepFrames bounds the number of frames a sweep may render.
const MaxSweepFrames = 10000

// Frames returns the number of frames the sweep renders, or -1 when the
// bounds or step are not finite.
func (s Sweep) Frames() int {
	if !s.Enabled() {
		return 0
	}
	for _, v := range []float64{s.From, s.To, s.Step} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return -1
		}
	}
	n := math.Floor(math.Abs(s.To-s.From)/math.Abs(s.Step)) + 1
	if n > math.MaxInt32 {
		return math.MaxInt32
	}
	return int(n)
}

// Temperatures lists the sweep temperatures in order, inclusive of To when
// it falls on a step. Sweeps that are not finite or exceed MaxSweepFrames
// yield nil.
func (s Sweep) Temperatures() []float64 {
	n := s.Frames()
	if n <= 0 || n > MaxSweepFrames {
		return nil
	}
	step := math.Abs(s.Step)
	if s.To < s.From {
		step = -step
	}
	out := make([]float64, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, s.From+float64(i)*step)
	}
	return out
}

// Config holds the settings shared by planck and planckview.
type Config struct {
	Temperature float64 `yaml:"temperature"`
	Samples     int     `yaml:"samples"`
	Width       int     `yaml:"width"`
	Height      int     `yaml:"height"`
	Output      string  `yaml:"output"`
	FontPath    string  `yaml:"font"`
	LogLevel    string  `yaml:"log_level"`
	Title       string  `yaml:"title"`
	Sweep       Sweep   `yaml:"sweep"`
}

// NewConfig creates a Config with default values.
func NewConfig() *Config {
	return &Config{
		Temperature: plot.DefaultTemperature,
		Samples:     planck.DefaultSamples,
		Width:       1280,
		Height:      720,
		Output:      "planck.png",
		LogLevel:    "info",
		Title:       "Planck's Law",
	}
}

// LoadFromFile merges settings from a YAML file. Keys missing from the
// file keep their current values.
func (c *Config) LoadFromFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}
	return c.LoadFromBytes(data)
}

// LoadFromBytes merges settings from YAML data.
func (c *Config) LoadFromBytes(data []byte) error {
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("failed to parse config YAML: %w", err)
	}
	return nil
}

// LoadFromEnv loads configuration from environment variables with the
// PLANCK_ prefix. Unparseable values are ignored.
func (c *Config) LoadFromEnv() {
	if v := os.Getenv("PLANCK_TEMPERATURE"); v != "" {
		if t, err := strconv.ParseFloat(v, 64); err == nil {
			c.Temperature = t
		}
	}
	if v := os.Getenv("PLANCK_SAMPLES"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.Samples = n
		}
	}
	if v := os.Getenv("PLANCK_WIDTH"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.Width = n
		}
	}
	if v := os.Getenv("PLANCK_HEIGHT"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.Height = n
		}
	}
	if v := os.Getenv("PLANCK_OUTPUT"); v != "" {
		c.Output = v
	}
	if v := os.Getenv("PLANCK_FONT"); v != "" {
		c.FontPath = v
	}
	if v := os.Getenv("PLANCK_LOG_LEVEL"); v != "" {
		c.LogLevel = v
	}
}

// RegisterFlags binds command-line flags to c on fs. Defaults are taken
// from the current values, so call it after loading files and environment.
func (c *Config) RegisterFlags(fs *pflag.FlagSet) {
	fs.Float64VarP(&c.Temperature, "temperature", "t", c.Temperature, "Star temperature in Kelvin")
	fs.IntVarP(&c.Samples, "samples", "n", c.Samples, "Number of curve samples")
	fs.IntVar(&c.Width, "width", c.Width, "Image width in pixels")
	fs.IntVar(&c.Height, "height", c.Height, "Image height in pixels")
	fs.StringVarP(&c.Output, "output", "o", c.Output, "Output PNG path; %d is replaced by the temperature when sweeping")
	fs.StringVar(&c.FontPath, "font", c.FontPath, "TrueType font file (default: embedded Go Regular)")
	fs.StringVar(&c.LogLevel, "log-level", c.LogLevel, "Log level (debug, info, warn, error)")
	fs.StringVar(&c.Title, "title", c.Title, "Window title")
	fs.Float64Var(&c.Sweep.From, "sweep-from", c.Sweep.From, "First sweep temperature in Kelvin")
	fs.Float64Var(&c.Sweep.To, "sweep-to", c.Sweep.To, "Last sweep temperature in Kelvin")
	fs.Float64Var(&c.Sweep.Step, "sweep-step", c.Sweep.Step, "Sweep increment in Kelvin (0 renders a single frame)")
}

// Load applies defaults, the optional YAML file named by --config, the
// environment and finally the flags in args, then validates the result.
func Load(name string, args []string) (*Config, error) {
	c := NewConfig()

	// The config file must be known before other flags are registered so
	// that its values become the flag defaults.
	pre := pflag.NewFlagSet(name, pflag.ContinueOnError)
	pre.ParseErrorsWhitelist.UnknownFlags = true
	pre.Usage = func() {}
	path := pre.String("config", "", "YAML configuration file")
	_ = pre.Parse(args)

	if *path != "" {
		if err := c.LoadFromFile(*path); err != nil {
			return nil, err
		}
	}
	c.LoadFromEnv()

	fs := pflag.NewFlagSet(name, pflag.ContinueOnError)
	fs.String("config", *path, "YAML configuration file")
	c.RegisterFlags(fs)
	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// Validate checks that the configuration is usable.
func (c *Config) Validate() error {
	if !(c.Temperature > 0) {
		return fmt.Errorf("%w: temperature must be positive, got %g", ErrInvalid, c.Temperature)
	}
	if c.Samples < 2 {
		return fmt.Errorf("%w: samples must be at least 2, got %d", ErrInvalid, c.Samples)
	}
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("%w: image size must be positive, got %dx%d", ErrInvalid, c.Width, c.Height)
	}
	if c.Output == "" {
		return fmt.Errorf("%w: output path is required", ErrInvalid)
	}
	if _, err := ParseLevel(c.LogLevel); err != nil {
		return err
	}
	if c.Sweep.Enabled() {
		n := c.Sweep.Frames()
		if n < 0 {
			return fmt.Errorf("%w: sweep bounds and step must be finite, got %+v", ErrInvalid, c.Sweep)
		}
		if !(c.Sweep.From > 0) || !(c.Sweep.To > 0) {
			return fmt.Errorf("%w: sweep bounds must be positive", ErrInvalid)
		}
		if n > MaxSweepFrames {
			return fmt.Errorf("%w: sweep renders %d frames, limit is %d", ErrInvalid, n, MaxSweepFrames)
		}
		if !strings.Contains(c.Output, "%d") {
			return fmt.Errorf("%w: sweep output %q needs a %%d placeholder", ErrInvalid, c.Output)
		}
	}
	return nil
}

// ParseLevel maps a level name to a slog level.
func ParseLevel(s string) (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(s)); err != nil {
		return 0, fmt.Errorf("%w: log level %q", ErrInvalid, s)
	}
	return l, nil
}

// Level returns the configured log level, defaulting to info.
func (c *Config) Level() slog.Level {
	l, err := ParseLevel(c.LogLevel)
	if err != nil {
		return slog.LevelInfo
	}
	return l
}

// OutputFor returns the output path for a frame at temperature. In sweep
// mode the %d placeholder is replaced by the rounded temperature.
func (c *Config) OutputFor(temperature float64) string {
	if !strings.Contains(c.Output, "%d") {
		return c.Output
	}
	return strings.Replace(c.Output, "%d", strconv.Itoa(int(temperature+0.5)), 1)
}

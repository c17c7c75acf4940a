// Package config loads the settings shared by the commands.
//
// Values are layered, later sources winning:
//
//	defaults -> YAML file (--config or TICKER_CONFIG) -> TICKER_* env -> flags
//
// Only flags the user actually set override the earlier layers.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"
)

// Config holds the settings for a timer, ticker or stress run.
type Config struct {
	// Schedule
	Interval  time.Duration `yaml:"interval"`
	Timeout   time.Duration `yaml:"timeout"`
	Unbounded bool          `yaml:"unbounded"` // run until interrupted, ignoring Timeout

	// Stress
	Count    int `yaml:"count"`     // controllers to start
	MaxLoops int `yaml:"max_loops"` // pool size, 0 for the shared pool

	// Logging
	LogJSON  bool   `yaml:"log_json"`
	LogLevel string `yaml:"log_level"`

	// Metrics textfile written on exit, empty to skip
	MetricsFile string `yaml:"metrics_file"`
}

// Default returns the built-in settings.
func Default() *Config {
	return &Config{
		Interval: time.Second,
		Timeout:  5 * time.Second,
		Count:    1,
		LogLevel: "info",
	}
}

// Validate checks configuration for invalid values.
func (c *Config) Validate() error {
	var errs []error
	if c.Interval <= 0 {
		errs = append(errs, fmt.Errorf("interval must be > 0, got %s", c.Interval))
	}
	if !c.Unbounded && c.Timeout < 0 {
		errs = append(errs, fmt.Errorf("timeout must be >= 0 unless unbounded, got %s", c.Timeout))
	}
	if c.Count < 1 {
		errs = append(errs, fmt.Errorf("count must be >= 1, got %d", c.Count))
	}
	if c.MaxLoops < 0 {
		errs = append(errs, fmt.Errorf("max-loops must be >= 0, got %d", c.MaxLoops))
	}
	switch strings.ToLower(c.LogLevel) {
	case "debug", "info", "warn", "error":
		// valid
	default:
		errs = append(errs, fmt.Errorf("log-level must be debug, info, warn, or error, got %q", c.LogLevel))
	}
	return errors.Join(errs...)
}

// Decode overlays YAML from r onto c. Unknown keys are an error.
func (c *Config) Decode(r io.Reader) error {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(c); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("config: %w", err)
	}
	return nil
}

// LoadFile overlays the YAML file at path onto c.
func (c *Config) LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if err := c.Decode(bytes.NewReader(data)); err != nil {
		return fmt.Errorf("%w (%s)", err, path)
	}
	return nil
}

// ApplyEnv overlays TICKER_* environment variables onto c. Unset or
// unparsable variables leave the current value alone.
func (c *Config) ApplyEnv() {
	c.Interval = envDuration("TICKER_INTERVAL", c.Interval)
	c.Timeout = envDuration("TICKER_TIMEOUT", c.Timeout)
	c.Unbounded = envBool("TICKER_UNBOUNDED", c.Unbounded)
	c.Count = envInt("TICKER_COUNT", c.Count)
	c.MaxLoops = envInt("TICKER_MAX_LOOPS", c.MaxLoops)
	c.LogJSON = envBool("TICKER_LOG_JSON", c.LogJSON)
	c.LogLevel = envStr("TICKER_LOG_LEVEL", c.LogLevel)
	c.MetricsFile = envStr("TICKER_METRICS_FILE", c.MetricsFile)
}

// Flags binds the config options to a flag set.
type Flags struct {
	path string
	vals Config
}

// AddFlags registers the config flags on flagSet.
func (f *Flags) AddFlags(flagSet *pflag.FlagSet) {
	def := Default()
	flagSet.StringVar(&f.path, "config", "", "YAML config file (env TICKER_CONFIG)")
	flagSet.DurationVar(&f.vals.Interval, "interval", def.Interval, "tick interval")
	flagSet.DurationVar(&f.vals.Timeout, "timeout", def.Timeout, "overall deadline")
	flagSet.BoolVar(&f.vals.Unbounded, "unbounded", false, "never expire, run until interrupted")
	flagSet.IntVar(&f.vals.Count, "count", def.Count, "number of controllers to start")
	flagSet.IntVar(&f.vals.MaxLoops, "max-loops", 0, "limit on live schedule loops (0 uses the shared pool)")
	flagSet.BoolVar(&f.vals.LogJSON, "log-json", false, "log in JSON instead of text")
	flagSet.StringVar(&f.vals.LogLevel, "log-level", def.LogLevel, "log level: debug, info, warn, error")
	flagSet.StringVar(&f.vals.MetricsFile, "metrics-file", "", "write a Prometheus textfile here on exit")
}

// Load builds the final Config once flagSet has been parsed, and
// validates it.
func (f *Flags) Load(flagSet *pflag.FlagSet) (*Config, error) {
	c := Default()

	path := f.path
	if path == "" {
		path = os.Getenv("TICKER_CONFIG")
	}
	if path != "" {
		if err := c.LoadFile(path); err != nil {
			return nil, err
		}
	}

	c.ApplyEnv()
	f.apply(flagSet, c)

	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

func (f *Flags) apply(flagSet *pflag.FlagSet, c *Config) {
	if flagSet.Changed("interval") {
		c.Interval = f.vals.Interval
	}
	if flagSet.Changed("timeout") {
		c.Timeout = f.vals.Timeout
	}
	if flagSet.Changed("unbounded") {
		c.Unbounded = f.vals.Unbounded
	}
	if flagSet.Changed("count") {
		c.Count = f.vals.Count
	}
	if flagSet.Changed("max-loops") {
		c.MaxLoops = f.vals.MaxLoops
	}
	if flagSet.Changed("log-json") {
		c.LogJSON = f.vals.LogJSON
	}
	if flagSet.Changed("log-level") {
		c.LogLevel = f.vals.LogLevel
	}
	if flagSet.Changed("metrics-file") {
		c.MetricsFile = f.vals.MetricsFile
	}
}

func envStr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envInt(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}

func envBool(key string, def bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return def
	}
	return b
}

func envDuration(key string, def time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return def
	}
	return d
}

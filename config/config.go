// Package config provides configuration management for newspipe.
//
// Values are layered: built-in defaults, then an optional YAML file (with
// ${VAR} references expanded from the environment and a local .env file),
// then command-line flags that were explicitly set.
package config

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"

	"github.com/gaurav-prasanna/newspipe/core/fetch"
	"github.com/gaurav-prasanna/newspipe/core/pipeline"
	"github.com/gaurav-prasanna/newspipe/core/urls"
	"github.com/gaurav-prasanna/newspipe/logging"
)

// Configuration validation errors.
var (
	ErrMissingInput     = errors.New("input is required")
	ErrMissingOutput    = errors.New("output is required")
	ErrInvalidRange     = errors.New("start_line must be at least 1 and end_line 0 or not before start_line")
	ErrInvalidTimeout   = errors.New("fetch.timeout must be positive")
	ErrInvalidRetries   = errors.New("fetch.max_retries must be non-negative")
	ErrInvalidRateLimit = errors.New("fetch.rate_limit must be non-negative")
	ErrInvalidPause     = errors.New("throttle pauses must be non-negative")
	ErrInvalidLogLevel  = errors.New("log.level must be one of: debug, info, warn, error")
	ErrInvalidLogFormat = errors.New("log.format must be 'text' or 'json'")
)

// DefaultOutput is the dataset written when none is configured.
const DefaultOutput = "news.csv"

// Config is the complete run configuration.
type Config struct {
	Input     string         `yaml:"input"`
	Output    string         `yaml:"output"`
	StartLine int            `yaml:"start_line"`
	EndLine   int            `yaml:"end_line"`
	Fetch     FetchConfig    `yaml:"fetch"`
	Throttle  ThrottleConfig `yaml:"throttle"`
	Log       LogConfig      `yaml:"log"`
}

// FetchConfig controls HTTP retrieval.
type FetchConfig struct {
	Timeout    time.Duration `yaml:"timeout"`
	UserAgent  string        `yaml:"user_agent"`
	MaxRetries int           `yaml:"max_retries"`
	RateLimit  float64       `yaml:"rate_limit"` // requests per second, 0 = unpaced
}

// ThrottleConfig holds the pauses between URLs.
type ThrottleConfig struct {
	SuccessPause time.Duration `yaml:"success_pause"`
	FailurePause time.Duration `yaml:"failure_pause"`
}

type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// Default returns the configuration used when nothing else is given.
func Default() *Config {
	return &Config{
		Output:    DefaultOutput,
		StartLine: urls.All.Start,
		Fetch: FetchConfig{
			Timeout:    fetch.DefaultTimeout,
			UserAgent:  fetch.DefaultUserAgent,
			MaxRetries: fetch.DefaultMaxRetries,
		},
		Throttle: ThrottleConfig{
			SuccessPause: pipeline.DefaultSuccessPause,
			FailurePause: pipeline.DefaultFailurePause,
		},
		Log: LogConfig{Level: "info", Format: "text"},
	}
}

// Load returns the defaults overlaid with the YAML file at path, if path is
// not empty. A .env file in the working directory is loaded into the
// environment first; a missing .env is not an error.
func Load(path string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env: %w", err)
	}

	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	if err := cfg.decode(data); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) decode(data []byte) error {
	expanded := os.ExpandEnv(string(data))
	if err := yaml.Unmarshal([]byte(expanded), c); err != nil {
		return fmt.Errorf("failed to parse YAML: %w", err)
	}
	return nil
}

// Flag names shared by RegisterFlags and ApplyFlags.
const (
	flagInput        = "input"
	flagOutput       = "output"
	flagStartLine    = "start-line"
	flagEndLine      = "end-line"
	flagTimeout      = "timeout"
	flagUserAgent    = "user-agent"
	flagMaxRetries   = "max-retries"
	flagRateLimit    = "rate-limit"
	flagSuccessPause = "success-pause"
	flagFailurePause = "failure-pause"
	flagLogLevel     = "log-level"
	flagLogFormat    = "log-format"
)

// RegisterFlags defines the run flags on fs, with defaults for help text.
func RegisterFlags(fs *pflag.FlagSet) {
	d := Default()
	fs.StringP(flagInput, "i", "", "file with one article URL per line")
	fs.StringP(flagOutput, "o", d.Output, "dataset to append to (.csv, or .db/.sqlite/.sqlite3 for SQLite)")
	fs.Int(flagStartLine, d.StartLine, "first line of the URL list to process (1-based)")
	fs.Int(flagEndLine, d.EndLine, "last line of the URL list to process, inclusive (0 = end of file)")
	fs.Duration(flagTimeout, d.Fetch.Timeout, "per-request timeout")
	fs.String(flagUserAgent, d.Fetch.UserAgent, "User-Agent header sent with every request")
	fs.Int(flagMaxRetries, d.Fetch.MaxRetries, "retries for transient fetch failures")
	fs.Float64(flagRateLimit, d.Fetch.RateLimit, "maximum requests per second (0 = unpaced)")
	fs.Duration(flagSuccessPause, d.Throttle.SuccessPause, "pause after a saved article")
	fs.Duration(flagFailurePause, d.Throttle.FailurePause, "pause after a failed article")
	fs.String(flagLogLevel, d.Log.Level, "log level: debug, info, warn, error")
	fs.String(flagLogFormat, d.Log.Format, "log format: text or json")
}

// ApplyFlags copies every flag the user explicitly set onto c. Flags left
// at their defaults never override values from the config file.
func (c *Config) ApplyFlags(fs *pflag.FlagSet) error {
	var err error
	fs.Visit(func(f *pflag.Flag) {
		if err != nil {
			return
		}
		switch f.Name {
		case flagInput:
			c.Input, err = fs.GetString(f.Name)
		case flagOutput:
			c.Output, err = fs.GetString(f.Name)
		case flagStartLine:
			c.StartLine, err = fs.GetInt(f.Name)
		case flagEndLine:
			c.EndLine, err = fs.GetInt(f.Name)
		case flagTimeout:
			c.Fetch.Timeout, err = fs.GetDuration(f.Name)
		case flagUserAgent:
			c.Fetch.UserAgent, err = fs.GetString(f.Name)
		case flagMaxRetries:
			c.Fetch.MaxRetries, err = fs.GetInt(f.Name)
		case flagRateLimit:
			c.Fetch.RateLimit, err = fs.GetFloat64(f.Name)
		case flagSuccessPause:
			c.Throttle.SuccessPause, err = fs.GetDuration(f.Name)
		case flagFailurePause:
			c.Throttle.FailurePause, err = fs.GetDuration(f.Name)
		case flagLogLevel:
			c.Log.Level, err = fs.GetString(f.Name)
		case flagLogFormat:
			c.Log.Format, err = fs.GetString(f.Name)
		}
		if err != nil {
			err = fmt.Errorf("reading --%s: %w", f.Name, err)
		}
	})
	return err
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Input) == "" {
		return ErrMissingInput
	}
	if strings.TrimSpace(c.Output) == "" {
		return ErrMissingOutput
	}
	if err := c.Range().Validate(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidRange, err)
	}
	if c.Fetch.Timeout <= 0 {
		return ErrInvalidTimeout
	}
	if c.Fetch.MaxRetries < 0 {
		return ErrInvalidRetries
	}
	if c.Fetch.RateLimit < 0 {
		return ErrInvalidRateLimit
	}
	if c.Throttle.SuccessPause < 0 || c.Throttle.FailurePause < 0 {
		return ErrInvalidPause
	}
	if _, ok := logging.ParseLevel(c.Log.Level); !ok {
		return ErrInvalidLogLevel
	}
	switch strings.ToLower(c.Log.Format) {
	case "", "text", "json":
	default:
		return ErrInvalidLogFormat
	}
	return nil
}

// Range is the selected window of the URL list.
func (c *Config) Range() urls.Range {
	return urls.Range{Start: c.StartLine, End: c.EndLine}
}

// FetchOptions converts the fetch section into fetcher options.
func (c *Config) FetchOptions() fetch.Options {
	opts := fetch.DefaultOptions()
	opts.Timeout = c.Fetch.Timeout
	opts.UserAgent = c.Fetch.UserAgent
	opts.MaxRetries = c.Fetch.MaxRetries
	opts.RateLimit = c.Fetch.RateLimit
	return opts
}

// PipelineThrottle converts the throttle section into runner pauses.
func (c *Config) PipelineThrottle() pipeline.Throttle {
	return pipeline.Throttle{
		SuccessPause: c.Throttle.SuccessPause,
		FailurePause: c.Throttle.FailurePause,
	}
}

// Logger builds the logger described by the log section, writing to w.
func (c *Config) Logger(w io.Writer) *logging.Logger {
	return logging.New(c.Log.Level, c.Log.Format, w)
}

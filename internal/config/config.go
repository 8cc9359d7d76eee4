// Package config loads the service configuration.
//
// Values come from three layers, later ones winning: built-in defaults,
// an optional YAML file named by CONFIG_FILE, and environment variables.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"textstats/internal/observability/logging"
	envcfg "textstats/pkg/config"
)

// Defaults.
const (
	DefaultAddr              = ":8080"
	DefaultMaxBodyBytes      = 1 << 20
	DefaultRequestTimeout    = 10 * time.Second
	DefaultShutdownTimeout   = 5 * time.Second
	DefaultReadHeaderTimeout = 10 * time.Second
	DefaultLogLevel          = "info"
	DefaultLogFormat         = logging.FormatJSON
	DefaultSampleRatio       = 1.0
	DefaultVersion           = "dev"
)

// Config is the complete service configuration.
type Config struct {
	HTTP    HTTPConfig    `yaml:"http"`
	Log     LogConfig     `yaml:"log"`
	Tracing TracingConfig `yaml:"tracing"`
	Swagger SwaggerConfig `yaml:"swagger"`
	CSP     CSPConfig     `yaml:"csp"`
	Version string        `yaml:"version"`
}

// HTTPConfig configures the listener and per-request limits.
type HTTPConfig struct {
	Addr              string        `yaml:"addr"`
	MaxBodyBytes      int64         `yaml:"max_body_bytes"`
	RequestTimeout    time.Duration `yaml:"request_timeout"`
	ShutdownTimeout   time.Duration `yaml:"shutdown_timeout"`
	ReadHeaderTimeout time.Duration `yaml:"read_header_timeout"`
}

// LogConfig configures the slog logger.
type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// TracingConfig configures the OpenTelemetry tracer provider.
type TracingConfig struct {
	Enabled     bool    `yaml:"enabled"`
	SampleRatio float64 `yaml:"sample_ratio"`
}

// SwaggerConfig toggles the Swagger UI.
type SwaggerConfig struct {
	Enabled bool `yaml:"enabled"`
}

// CSPConfig controls the Content-Security-Policy header.
type CSPConfig struct {
	// ReportOnly sends Content-Security-Policy-Report-Only so violations are
	// reported without being blocked.
	ReportOnly bool `yaml:"report_only"`
}

// FieldError reports an invalid configuration value.
type FieldError struct {
	Field string
	Err   error
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%s: %v", e.Field, e.Err)
}

func (e *FieldError) Unwrap() error {
	return e.Err
}

// Default returns the configuration used when nothing is overridden.
func Default() *Config {
	return &Config{
		HTTP: HTTPConfig{
			Addr:              DefaultAddr,
			MaxBodyBytes:      DefaultMaxBodyBytes,
			RequestTimeout:    DefaultRequestTimeout,
			ShutdownTimeout:   DefaultShutdownTimeout,
			ReadHeaderTimeout: DefaultReadHeaderTimeout,
		},
		Log: LogConfig{
			Level:  DefaultLogLevel,
			Format: DefaultLogFormat,
		},
		Tracing: TracingConfig{
			Enabled:     true,
			SampleRatio: DefaultSampleRatio,
		},
		Swagger: SwaggerConfig{Enabled: true},
		Version: DefaultVersion,
	}
}

// Load builds the configuration from defaults, the CONFIG_FILE YAML file (if set)
// and environment variables, then validates it.
func Load() (*Config, error) {
	cfg := Default()

	if path := os.Getenv("CONFIG_FILE"); path != "" {
		if err := cfg.mergeFile(path); err != nil {
			return nil, err
		}
	}

	cfg.applyEnv()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	recordLoad()
	return cfg, nil
}

// mergeFile overlays the keys present in the YAML file at path.
// Unknown keys are rejected; an empty file changes nothing.
// The path comes from the operator (CONFIG_FILE), not from request input.
func (c *Config) mergeFile(path string) error {
	// #nosec G304 -- path is provided by trusted source (environment), not user input
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(c); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	return nil
}

func (c *Config) applyEnv() {
	c.HTTP.Addr = envcfg.GetEnvString("HTTP_ADDR", c.HTTP.Addr)
	c.HTTP.MaxBodyBytes = envcfg.GetEnvInt64("MAX_BODY_BYTES", c.HTTP.MaxBodyBytes)
	c.HTTP.RequestTimeout = envcfg.GetEnvDuration("REQUEST_TIMEOUT", c.HTTP.RequestTimeout)
	c.HTTP.ShutdownTimeout = envcfg.GetEnvDuration("SHUTDOWN_TIMEOUT", c.HTTP.ShutdownTimeout)
	c.HTTP.ReadHeaderTimeout = envcfg.GetEnvDuration("READ_HEADER_TIMEOUT", c.HTTP.ReadHeaderTimeout)
	c.Log.Level = envcfg.GetEnvString("LOG_LEVEL", c.Log.Level)
	c.Log.Format = envcfg.GetEnvString("LOG_FORMAT", c.Log.Format)
	c.Tracing.Enabled = envcfg.GetEnvBool("TRACING_ENABLED", c.Tracing.Enabled)
	c.Tracing.SampleRatio = envcfg.GetEnvFloat("TRACING_SAMPLE_RATIO", c.Tracing.SampleRatio)
	c.Swagger.Enabled = envcfg.GetEnvBool("SWAGGER_ENABLED", c.Swagger.Enabled)
	c.CSP.ReportOnly = envcfg.GetEnvBool("CSP_REPORT_ONLY", c.CSP.ReportOnly)
	c.Version = envcfg.GetEnvString("VERSION", c.Version)
}

// Validate reports every invalid value, joined into one error.
// Each failing field is counted in textstats_config_validation_errors_total.
func (c *Config) Validate() error {
	errs := c.validate()
	if len(errs) == 0 {
		return nil
	}
	joined := make([]error, len(errs))
	for i, e := range errs {
		recordValidationError(e.Field)
		joined[i] = e
	}
	return errors.Join(joined...)
}

func (c *Config) validate() []*FieldError {
	var errs []*FieldError
	check := func(field string, err error) {
		if err != nil {
			errs = append(errs, &FieldError{Field: field, Err: err})
		}
	}

	if c.HTTP.Addr == "" {
		check("http.addr", errors.New("must not be empty"))
	}
	check("http.max_body_bytes", envcfg.ValidatePositiveInt64(c.HTTP.MaxBodyBytes))
	check("http.request_timeout", envcfg.ValidatePositiveDuration(c.HTTP.RequestTimeout))
	check("http.shutdown_timeout", envcfg.ValidatePositiveDuration(c.HTTP.ShutdownTimeout))
	check("http.read_header_timeout", envcfg.ValidatePositiveDuration(c.HTTP.ReadHeaderTimeout))

	if _, err := logging.ParseLevel(c.Log.Level); err != nil {
		check("log.level", err)
	}
	if c.Log.Format != logging.FormatJSON && c.Log.Format != logging.FormatText {
		check("log.format", fmt.Errorf("unknown log format %q", c.Log.Format))
	}

	check("tracing.sample_ratio", envcfg.ValidateFloatRange(c.Tracing.SampleRatio, 0, 1))

	return errs
}

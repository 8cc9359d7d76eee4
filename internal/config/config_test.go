package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var envKeys = []string{
	"CONFIG_FILE", "HTTP_ADDR", "MAX_BODY_BYTES", "REQUEST_TIMEOUT", "SHUTDOWN_TIMEOUT",
	"READ_HEADER_TIMEOUT", "LOG_LEVEL", "LOG_FORMAT", "TRACING_ENABLED",
	"TRACING_SAMPLE_RATIO", "SWAGGER_ENABLED", "CSP_REPORT_ONLY", "VERSION",
}

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range envKeys {
		t.Setenv(k, "")
	}
}

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()
	require.NoError(t, err)

	if diff := cmp.Diff(Default(), cfg); diff != "" {
		t.Errorf("Load() mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, ":8080", cfg.HTTP.Addr)
	assert.Equal(t, int64(1048576), cfg.HTTP.MaxBodyBytes)
	assert.Equal(t, 10*time.Second, cfg.HTTP.RequestTimeout)
	assert.Equal(t, 5*time.Second, cfg.HTTP.ShutdownTimeout)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.True(t, cfg.Tracing.Enabled)
	assert.True(t, cfg.Swagger.Enabled)
	assert.Equal(t, "dev", cfg.Version)
}

func TestLoad_EnvOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("HTTP_ADDR", "127.0.0.1:9000")
	t.Setenv("MAX_BODY_BYTES", "2048")
	t.Setenv("REQUEST_TIMEOUT", "3s")
	t.Setenv("SHUTDOWN_TIMEOUT", "1s")
	t.Setenv("READ_HEADER_TIMEOUT", "2s")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("LOG_FORMAT", "text")
	t.Setenv("TRACING_ENABLED", "false")
	t.Setenv("TRACING_SAMPLE_RATIO", "0.1")
	t.Setenv("SWAGGER_ENABLED", "0")
	t.Setenv("CSP_REPORT_ONLY", "true")
	t.Setenv("VERSION", "1.2.3")

	cfg, err := Load()
	require.NoError(t, err)

	want := &Config{
		HTTP: HTTPConfig{
			Addr:              "127.0.0.1:9000",
			MaxBodyBytes:      2048,
			RequestTimeout:    3 * time.Second,
			ShutdownTimeout:   time.Second,
			ReadHeaderTimeout: 2 * time.Second,
		},
		Log:     LogConfig{Level: "debug", Format: "text"},
		Tracing: TracingConfig{Enabled: false, SampleRatio: 0.1},
		Swagger: SwaggerConfig{Enabled: false},
		CSP:     CSPConfig{ReportOnly: true},
		Version: "1.2.3",
	}
	if diff := cmp.Diff(want, cfg); diff != "" {
		t.Errorf("Load() mismatch (-want +got):\n%s", diff)
	}
}

func TestLoad_FileThenEnv(t *testing.T) {
	clearEnv(t)
	path := writeFile(t, `
http:
  addr: ":9090"
  request_timeout: 2s
log:
  level: warn
tracing:
  sample_ratio: 0.5
csp:
  report_only: true
version: "from-file"
`)
	t.Setenv("CONFIG_FILE", path)
	t.Setenv("VERSION", "from-env")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.HTTP.Addr)
	assert.Equal(t, 2*time.Second, cfg.HTTP.RequestTimeout)
	assert.Equal(t, int64(DefaultMaxBodyBytes), cfg.HTTP.MaxBodyBytes, "keys absent from the file keep defaults")
	assert.Equal(t, "warn", cfg.Log.Level)
	assert.Equal(t, 0.5, cfg.Tracing.SampleRatio)
	assert.True(t, cfg.Tracing.Enabled)
	assert.True(t, cfg.CSP.ReportOnly)
	assert.Equal(t, "from-env", cfg.Version, "environment wins over file")
}

func TestLoad_FileErrors(t *testing.T) {
	tests := []struct {
		name    string
		path    func(t *testing.T) string
		wantErr string
	}{
		{
			name:    "missing file",
			path:    func(t *testing.T) string { return filepath.Join(t.TempDir(), "absent.yaml") },
			wantErr: "failed to read config file",
		},
		{
			name:    "malformed yaml",
			path:    func(t *testing.T) string { return writeFile(t, "http: [unclosed") },
			wantErr: "failed to parse config file",
		},
		{
			name:    "unknown key",
			path:    func(t *testing.T) string { return writeFile(t, "http:\n  port: 8080\n") },
			wantErr: "failed to parse config file",
		},
		{
			name:    "bad duration",
			path:    func(t *testing.T) string { return writeFile(t, "http:\n  request_timeout: soon\n") },
			wantErr: "failed to parse config file",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			t.Setenv("CONFIG_FILE", tt.path(t))

			cfg, err := Load()
			require.Error(t, err)
			assert.Nil(t, cfg)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestLoad_EmptyFile(t *testing.T) {
	clearEnv(t)
	t.Setenv("CONFIG_FILE", writeFile(t, ""))

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(c *Config)
		field  string
	}{
		{name: "empty addr", mutate: func(c *Config) { c.HTTP.Addr = "" }, field: "http.addr"},
		{name: "zero body limit", mutate: func(c *Config) { c.HTTP.MaxBodyBytes = 0 }, field: "http.max_body_bytes"},
		{name: "negative request timeout", mutate: func(c *Config) { c.HTTP.RequestTimeout = -time.Second }, field: "http.request_timeout"},
		{name: "zero shutdown timeout", mutate: func(c *Config) { c.HTTP.ShutdownTimeout = 0 }, field: "http.shutdown_timeout"},
		{name: "zero read header timeout", mutate: func(c *Config) { c.HTTP.ReadHeaderTimeout = 0 }, field: "http.read_header_timeout"},
		{name: "unknown level", mutate: func(c *Config) { c.Log.Level = "verbose" }, field: "log.level"},
		{name: "unknown format", mutate: func(c *Config) { c.Log.Format = "xml" }, field: "log.format"},
		{name: "ratio above one", mutate: func(c *Config) { c.Tracing.SampleRatio = 1.5 }, field: "tracing.sample_ratio"},
		{name: "ratio below zero", mutate: func(c *Config) { c.Tracing.SampleRatio = -0.1 }, field: "tracing.sample_ratio"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)

			err := cfg.Validate()
			require.Error(t, err)

			var fieldErr *FieldError
			require.ErrorAs(t, err, &fieldErr)
			assert.Equal(t, tt.field, fieldErr.Field)
		})
	}
}

func TestValidate_ReportsEveryField(t *testing.T) {
	cfg := Default()
	cfg.HTTP.MaxBodyBytes = -1
	cfg.Log.Format = "xml"

	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "http.max_body_bytes")
	assert.Contains(t, err.Error(), "log.format")
}

func TestValidate_RecordsFieldErrors(t *testing.T) {
	before := testutil.ToFloat64(validationErrorsTotal.WithLabelValues("tracing.sample_ratio"))

	cfg := Default()
	cfg.Tracing.SampleRatio = 2
	require.Error(t, cfg.Validate())

	assert.Equal(t, before+1, testutil.ToFloat64(validationErrorsTotal.WithLabelValues("tracing.sample_ratio")))
}

func TestValidate_Default(t *testing.T) {
	assert.NoError(t, Default().Validate())
}

func TestLoad_RecordsValidationErrors(t *testing.T) {
	clearEnv(t)
	t.Setenv("LOG_FORMAT", "xml")
	before := testutil.ToFloat64(validationErrorsTotal.WithLabelValues("log.format"))

	_, err := Load()
	require.Error(t, err)

	assert.Equal(t, before+1, testutil.ToFloat64(validationErrorsTotal.WithLabelValues("log.format")))
}

func TestLoad_RecordsLoadTimestamp(t *testing.T) {
	clearEnv(t)
	loadTimestamp.Set(0)

	_, err := Load()
	require.NoError(t, err)

	assert.Greater(t, testutil.ToFloat64(loadTimestamp), 0.0)
}

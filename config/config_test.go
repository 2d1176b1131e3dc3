package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gaurav-prasanna/newspipe/core/urls"
)

// Helper to create a temp config file.
func createTempConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

const validConfigYAML = `
input: urls.txt
output: ${NEWSPIPE_TEST_DIR}/news.db
start_line: 3
end_line: 10
fetch:
  timeout: 20s
  max_retries: 4
  rate_limit: 0.5
throttle:
  success_pause: 1s
  failure_pause: 3s
log:
  level: debug
  format: json
`

func TestDefaults(t *testing.T) {
	cfg := Default()
	assert.Equal(t, DefaultOutput, cfg.Output)
	assert.Equal(t, 1, cfg.StartLine)
	assert.Equal(t, 0, cfg.EndLine)
	assert.Equal(t, urls.All, cfg.Range())
	assert.Equal(t, 15*time.Second, cfg.Fetch.Timeout)
	assert.Equal(t, "Mozilla/5.0 (Windows NT 10.0; Win64; x64)", cfg.Fetch.UserAgent)
	assert.Equal(t, 2, cfg.Fetch.MaxRetries)
	assert.Equal(t, 2*time.Second, cfg.Throttle.SuccessPause)
	assert.Equal(t, 5*time.Second, cfg.Throttle.FailurePause)
	assert.ErrorIs(t, cfg.Validate(), ErrMissingInput)
}

func TestLoadYAML(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("NEWSPIPE_TEST_DIR", "/data")

	cfg, err := Load(createTempConfigFile(t, validConfigYAML))
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())

	assert.Equal(t, "urls.txt", cfg.Input)
	assert.Equal(t, "/data/news.db", cfg.Output)
	assert.Equal(t, 3, cfg.Range().Start)
	assert.Equal(t, 10, cfg.Range().End)
	assert.Equal(t, 20*time.Second, cfg.Fetch.Timeout)
	assert.Equal(t, "Mozilla/5.0 (Windows NT 10.0; Win64; x64)", cfg.Fetch.UserAgent, "unset keys keep defaults")
	assert.Equal(t, 0.5, cfg.FetchOptions().RateLimit)
	assert.Equal(t, 4, cfg.FetchOptions().MaxRetries)
	assert.Equal(t, time.Second, cfg.PipelineThrottle().SuccessPause)
	assert.Equal(t, 3*time.Second, cfg.PipelineThrottle().FailurePause)
	assert.Equal(t, "json", cfg.Log.Format)
}

func TestLoadReadsDotEnv(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("NEWSPIPE_TEST_INPUT=from-dotenv.txt\n"), 0644))
	t.Cleanup(func() { os.Unsetenv("NEWSPIPE_TEST_INPUT") })

	cfg, err := Load(createTempConfigFile(t, "input: ${NEWSPIPE_TEST_INPUT}\n"))
	require.NoError(t, err)
	assert.Equal(t, "from-dotenv.txt", cfg.Input)
}

func TestLoadErrors(t *testing.T) {
	t.Chdir(t.TempDir())

	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	_, err = Load(createTempConfigFile(t, "fetch: [not, a, map]\n"))
	assert.Error(t, err)

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestApplyFlagsOnlyOverridesChanged(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("NEWSPIPE_TEST_DIR", "/data")
	cfg, err := Load(createTempConfigFile(t, validConfigYAML))
	require.NoError(t, err)

	fs := pflag.NewFlagSet("ingest", pflag.ContinueOnError)
	RegisterFlags(fs)
	require.NoError(t, fs.Parse([]string{"--output", "other.csv", "--end-line=0", "--failure-pause", "10s"}))
	require.NoError(t, cfg.ApplyFlags(fs))

	assert.Equal(t, "other.csv", cfg.Output)
	assert.Equal(t, 0, cfg.EndLine)
	assert.Equal(t, 10*time.Second, cfg.Throttle.FailurePause)
	assert.Equal(t, "urls.txt", cfg.Input, "unset flag keeps file value")
	assert.Equal(t, 3, cfg.StartLine)
	assert.Equal(t, 20*time.Second, cfg.Fetch.Timeout)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		want   error
	}{
		{"valid", func(*Config) {}, nil},
		{"missing input", func(c *Config) { c.Input = " " }, ErrMissingInput},
		{"missing output", func(c *Config) { c.Output = "" }, ErrMissingOutput},
		{"start zero", func(c *Config) { c.StartLine = 0 }, ErrInvalidRange},
		{"end before start", func(c *Config) { c.StartLine, c.EndLine = 5, 2 }, ErrInvalidRange},
		{"timeout", func(c *Config) { c.Fetch.Timeout = 0 }, ErrInvalidTimeout},
		{"retries", func(c *Config) { c.Fetch.MaxRetries = -1 }, ErrInvalidRetries},
		{"rate", func(c *Config) { c.Fetch.RateLimit = -2 }, ErrInvalidRateLimit},
		{"pause", func(c *Config) { c.Throttle.FailurePause = -time.Second }, ErrInvalidPause},
		{"level", func(c *Config) { c.Log.Level = "loud" }, ErrInvalidLogLevel},
		{"format", func(c *Config) { c.Log.Format = "xml" }, ErrInvalidLogFormat},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			cfg.Input = "urls.txt"
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.want == nil {
				assert.NoError(t, err)
				return
			}
			assert.True(t, errors.Is(err, tt.want), "got %v", err)
		})
	}
}

package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"lograt/src/internal/core"

	lconfig "github.com/lixenwraith/config"
)

// Config is the full configuration surface of lograt.
type Config struct {
	// Packages are the application package names to follow; empty means no
	// package filtering.
	Packages []string `toml:"packages"`

	// Tags restricts output to the named tags; empty means no tag
	// filtering.
	Tags []string `toml:"tags"`

	// Level is the minimum severity letter (V/D/I/W/E/A, either case).
	// Empty disables level filtering.
	Level string `toml:"level"`

	// TagWidth is the rendered tag column width.
	TagWidth int `toml:"tag_width"`

	// Quiet suppresses all operational logging.
	Quiet bool `toml:"quiet"`

	Source  SourceConfig  `toml:"source"`
	Logging LoggingConfig `toml:"logging"`
}

// SourceConfig selects and tunes the input stream.
type SourceConfig struct {
	// Type is "stdin" or "file".
	Type string `toml:"type"`

	// Path of the file to read when type is "file".
	Path string `toml:"path"`

	// Follow keeps a file source waiting for appended lines at EOF.
	Follow bool `toml:"follow"`

	// PollIntervalMs is how often a followed file is checked for new data.
	PollIntervalMs int `toml:"poll_interval_ms"`

	// BufferSize is the subscriber channel capacity.
	BufferSize int64 `toml:"buffer_size"`
}

func defaults() *Config {
	return &Config{
		TagWidth: 32,
		Source: SourceConfig{
			Type:           "stdin",
			PollIntervalMs: 100,
			BufferSize:     1000,
		},
		Logging: LoggingConfig{
			Output: "stderr",
			Level:  "info",
		},
	}
}

// Load builds the configuration from defaults, the config file, LOGRAT_*
// environment variables and CLI arguments, in ascending priority.
func Load(cliArgs []string) (*Config, error) {
	cfg, err := lconfig.NewBuilder().
		WithDefaults(defaults()).
		WithEnvPrefix("LOGRAT_").
		WithFile(GetConfigPath()).
		WithArgs(cliArgs).
		WithEnvTransform(customEnvTransform).
		WithSources(
			lconfig.SourceCLI,
			lconfig.SourceEnv,
			lconfig.SourceFile,
			lconfig.SourceDefault,
		).
		Build()

	if err != nil {
		if !strings.Contains(err.Error(), "not found") {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
	}

	finalConfig := &Config{}
	if err := cfg.Scan(finalConfig); err != nil {
		return nil, fmt.Errorf("failed to scan config: %w", err)
	}

	return finalConfig, finalConfig.validate()
}

func customEnvTransform(path string) string {
	env := strings.ReplaceAll(path, ".", "_")
	env = strings.ToUpper(env)
	return "LOGRAT_" + env
}

// GetConfigPath resolves the config file location from LOGRAT_CONFIG_FILE,
// LOGRAT_CONFIG_DIR, or the user's config directory, in that order.
func GetConfigPath() string {
	if configFile := os.Getenv("LOGRAT_CONFIG_FILE"); configFile != "" {
		if filepath.IsAbs(configFile) {
			return configFile
		}
		if configDir := os.Getenv("LOGRAT_CONFIG_DIR"); configDir != "" {
			return filepath.Join(configDir, configFile)
		}
		return configFile
	}

	if configDir := os.Getenv("LOGRAT_CONFIG_DIR"); configDir != "" {
		return filepath.Join(configDir, "lograt.toml")
	}

	if homeDir, err := os.UserHomeDir(); err == nil {
		return filepath.Join(homeDir, ".config", "lograt.toml")
	}

	return "lograt.toml"
}

// MinLevel parses the configured minimum severity. A nil Level with a nil
// error means the gate is disabled; an unrecognized letter returns the
// error so the caller can decide to warn and run ungated.
func (c *Config) MinLevel() (*core.Level, error) {
	if c.Level == "" {
		return nil, nil
	}
	lvl, err := core.ParseLevel(c.Level)
	if err != nil {
		return nil, err
	}
	return &lvl, nil
}

func (c *Config) validate() error {
	if c.TagWidth < 0 {
		return fmt.Errorf("tag width cannot be negative: %d", c.TagWidth)
	}

	switch c.Source.Type {
	case "stdin":
	case "file":
		if c.Source.Path == "" {
			return fmt.Errorf("file source requires a path")
		}
	default:
		return fmt.Errorf("invalid source type: %s (valid: stdin, file)", c.Source.Type)
	}

	if c.Source.PollIntervalMs < 10 {
		return fmt.Errorf("poll interval too small: %d ms", c.Source.PollIntervalMs)
	}
	if c.Source.BufferSize < 1 {
		return fmt.Errorf("source buffer size must be positive: %d", c.Source.BufferSize)
	}

	return c.Logging.validate()
}

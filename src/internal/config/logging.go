package config

import "fmt"

// LoggingConfig controls lograt's own operational logging, which goes to
// stderr or a file so it never interleaves with the rendered log feed on
// stdout.
type LoggingConfig struct {
	// Output is one of "stderr", "file", "both" or "none".
	Output string `toml:"output"`

	// Level is "debug", "info", "warn" or "error".
	Level string `toml:"level"`

	File *FileLoggingConfig `toml:"file"`
}

// FileLoggingConfig tunes file-based operational logging.
type FileLoggingConfig struct {
	Directory      string `toml:"directory"`
	Name           string `toml:"name"`
	MaxSizeMB      int64  `toml:"max_size_mb"`
	MaxTotalSizeMB int64  `toml:"max_total_size_mb"`
}

func (l *LoggingConfig) validate() error {
	switch l.Output {
	case "stderr", "file", "both", "none":
	default:
		return fmt.Errorf("invalid log output mode: %s", l.Output)
	}

	switch l.Level {
	case "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("invalid log level: %s", l.Level)
	}

	if (l.Output == "file" || l.Output == "both") && l.File == nil {
		return fmt.Errorf("log output %q requires a [logging.file] section", l.Output)
	}

	return nil
}

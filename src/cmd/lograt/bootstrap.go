package main

import (
	"fmt"
	"os"
	"strings"
	"time"

	"lograt/src/internal/config"
	"lograt/src/internal/pipeline"
	"lograt/src/internal/presenter"
	"lograt/src/internal/session"
	"lograt/src/internal/source"

	"github.com/lixenwraith/log"
)

// initializeLogger sets up operational logging from the configuration.
// Rendered output owns stdout, so the logger never writes there.
func initializeLogger(cfg *config.Config) (*log.Logger, error) {
	logger := log.NewLogger()

	var configArgs []string

	if cfg.Quiet {
		configArgs = append(configArgs,
			"disable_file=true",
			"enable_console=false",
			"level=255")
		if err := logger.ApplyConfigString(configArgs...); err != nil {
			return logger, err
		}
		return logger, logger.Start()
	}

	levelValue, err := parseLogLevel(cfg.Logging.Level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level: %w", err)
	}
	configArgs = append(configArgs, fmt.Sprintf("level=%d", levelValue))

	switch cfg.Logging.Output {
	case "none":
		configArgs = append(configArgs, "disable_file=true", "enable_console=false")

	case "stderr":
		configArgs = append(configArgs,
			"disable_file=true",
			"enable_console=true",
			"console_target=stderr")

	case "file":
		configArgs = append(configArgs, "enable_console=false")
		configureFileLogging(&configArgs, cfg)

	case "both":
		configArgs = append(configArgs,
			"enable_console=true",
			"console_target=stderr")
		configureFileLogging(&configArgs, cfg)

	default:
		return nil, fmt.Errorf("invalid log output mode: %s", cfg.Logging.Output)
	}

	if err := logger.ApplyConfigString(configArgs...); err != nil {
		return logger, err
	}
	return logger, logger.Start()
}

func configureFileLogging(configArgs *[]string, cfg *config.Config) {
	if cfg.Logging.File != nil {
		*configArgs = append(*configArgs,
			fmt.Sprintf("directory=%s", cfg.Logging.File.Directory),
			fmt.Sprintf("name=%s", cfg.Logging.File.Name),
			fmt.Sprintf("max_size_mb=%d", cfg.Logging.File.MaxSizeMB),
			fmt.Sprintf("max_total_size_mb=%d", cfg.Logging.File.MaxTotalSizeMB))
	}
}

func parseLogLevel(level string) (int, error) {
	switch strings.ToLower(level) {
	case "debug":
		return int(log.LevelDebug), nil
	case "info":
		return int(log.LevelInfo), nil
	case "warn", "warning":
		return int(log.LevelWarn), nil
	case "error":
		return int(log.LevelError), nil
	default:
		return 0, fmt.Errorf("unknown log level: %s", level)
	}
}

// buildPipeline assembles source, session filter and presenter from the
// configuration.
func buildPipeline(cfg *config.Config, logger *log.Logger) (*pipeline.Pipeline, error) {
	minLevel, err := cfg.MinLevel()
	if err != nil {
		// An unparseable minimum level disables the gate instead of
		// aborting the session.
		logger.Warn("msg", "Unrecognized minimum level - level filter disabled",
			"component", "bootstrap",
			"level", cfg.Level,
			"error", err)
		minLevel = nil
	}

	filter := session.New(session.Options{
		Packages: cfg.Packages,
		Tags:     cfg.Tags,
		MinLevel: minLevel,
	}, logger)

	printer := presenter.NewPrinter(os.Stdout, presenter.NewTermStyler(), presenter.TermWidth, cfg.TagWidth)

	src, err := buildSource(cfg, logger)
	if err != nil {
		return nil, err
	}

	return pipeline.New(src, filter, printer, logger), nil
}

func buildSource(cfg *config.Config, logger *log.Logger) (source.Source, error) {
	switch cfg.Source.Type {
	case "stdin":
		return source.NewStdinSource(cfg.Source.BufferSize, logger), nil
	case "file":
		return source.NewFileSource(source.FileConfig{
			Path:         cfg.Source.Path,
			PollInterval: time.Duration(cfg.Source.PollIntervalMs) * time.Millisecond,
			Follow:       cfg.Source.Follow,
			BufferSize:   cfg.Source.BufferSize,
		}, logger)
	default:
		return nil, fmt.Errorf("unknown source type: %s", cfg.Source.Type)
	}
}

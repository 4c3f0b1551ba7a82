package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"lograt/src/internal/config"
)

// Command-line flags
var (
	configFile  = flag.String("config", "", "Config file path")
	packages    = flag.String("packages", "", "Comma-separated application package name(s) to follow")
	tags        = flag.String("tags", "", "Comma-separated tag(s) to allow")
	level       = flag.String("level", "", "Minimum severity to display: V, D, I, W, E, A (either case)")
	tagWidth    = flag.Int("tag-width", 0, "Tag column width (default from config)")
	sourceType  = flag.String("source", "", "Input source: stdin, file (overrides config)")
	filePath    = flag.String("file", "", "Log file to read (implies -source file)")
	follow      = flag.Bool("follow", false, "Keep reading a file source as it grows")
	logOutput   = flag.String("log-output", "", "Operational log output: stderr, file, both, none (overrides config)")
	logLevel    = flag.String("log-level", "", "Operational log level: debug, info, warn, error (overrides config)")
	quiet       = flag.Bool("quiet", false, "Suppress all operational logging")
	showVersion = flag.Bool("version", false, "Show version information")
)

// flagConfig carries the parsed command line into config resolution.
type flagConfig struct {
	ConfigFile  string
	Packages    []string
	Tags        []string
	Level       string
	TagWidth    int
	SourceType  string
	FilePath    string
	Follow      bool
	LogOutput   string
	LogLevel    string
	Quiet       bool
	ShowVersion bool
}

func init() {
	flag.Usage = customUsage
}

func customUsage() {
	fmt.Fprintf(os.Stderr, "lograt - Device Log Classifier and Reformatter\n\n")
	fmt.Fprintf(os.Stderr, "Usage: %s [options]\n\n", os.Args[0])
	fmt.Fprintf(os.Stderr, "Options:\n")

	fmt.Fprintf(os.Stderr, "\nFiltering:\n")
	fmt.Fprintf(os.Stderr, "  -packages string\n\tComma-separated application package name(s) to follow\n")
	fmt.Fprintf(os.Stderr, "  -tags string\n\tComma-separated tag(s) to allow\n")
	fmt.Fprintf(os.Stderr, "  -level string\n\tMinimum severity to display: V, D, I, W, E, A\n")

	fmt.Fprintf(os.Stderr, "\nInput and layout:\n")
	fmt.Fprintf(os.Stderr, "  -source string\n\tInput source: stdin, file\n")
	fmt.Fprintf(os.Stderr, "  -file string\n\tLog file to read (implies -source file)\n")
	fmt.Fprintf(os.Stderr, "  -follow\n\tKeep reading a file source as it grows\n")
	fmt.Fprintf(os.Stderr, "  -tag-width int\n\tTag column width\n")

	fmt.Fprintf(os.Stderr, "\nGeneral:\n")
	fmt.Fprintf(os.Stderr, "  -config string\n\tConfig file path\n")
	fmt.Fprintf(os.Stderr, "  -log-output string\n\tOperational log output: stderr, file, both, none\n")
	fmt.Fprintf(os.Stderr, "  -log-level string\n\tOperational log level: debug, info, warn, error\n")
	fmt.Fprintf(os.Stderr, "  -quiet\n\tSuppress all operational logging\n")
	fmt.Fprintf(os.Stderr, "  -version\n\tShow version information\n")

	fmt.Fprintf(os.Stderr, "\nExamples:\n")
	fmt.Fprintf(os.Stderr, "  # Follow one application in a live adb feed\n")
	fmt.Fprintf(os.Stderr, "  adb logcat | %s -packages com.example.app\n\n", os.Args[0])
	fmt.Fprintf(os.Stderr, "  # Errors and worse from a captured log\n")
	fmt.Fprintf(os.Stderr, "  %s -file bugreport.log -level E\n\n", os.Args[0])
	fmt.Fprintf(os.Stderr, "  # Only two tags, wider tag column\n")
	fmt.Fprintf(os.Stderr, "  adb logcat | %s -tags ActivityManager,AppOps -tag-width 40\n\n", os.Args[0])

	fmt.Fprintf(os.Stderr, "Environment Variables:\n")
	fmt.Fprintf(os.Stderr, "  LOGRAT_CONFIG_FILE  Config file path\n")
	fmt.Fprintf(os.Stderr, "  LOGRAT_CONFIG_DIR   Config directory\n")
}

// ParseFlags parses and validates the command line.
func ParseFlags() (*flagConfig, error) {
	flag.Parse()

	cfg := &flagConfig{
		ConfigFile:  *configFile,
		Packages:    splitList(*packages),
		Tags:        splitList(*tags),
		Level:       *level,
		TagWidth:    *tagWidth,
		SourceType:  *sourceType,
		FilePath:    *filePath,
		Follow:      *follow,
		LogOutput:   *logOutput,
		LogLevel:    *logLevel,
		Quiet:       *quiet,
		ShowVersion: *showVersion,
	}

	if cfg.TagWidth < 0 {
		return nil, fmt.Errorf("invalid tag-width: %d", cfg.TagWidth)
	}

	if cfg.SourceType != "" {
		if cfg.SourceType != "stdin" && cfg.SourceType != "file" {
			return nil, fmt.Errorf("invalid source: %s (valid: stdin, file)", cfg.SourceType)
		}
	}

	if cfg.LogOutput != "" {
		validOutputs := map[string]bool{
			"stderr": true, "file": true, "both": true, "none": true,
		}
		if !validOutputs[cfg.LogOutput] {
			return nil, fmt.Errorf("invalid log-output: %s (valid: stderr, file, both, none)", cfg.LogOutput)
		}
	}

	if cfg.LogLevel != "" {
		validLevels := map[string]bool{
			"debug": true, "info": true, "warn": true, "warning": true, "error": true,
		}
		if !validLevels[cfg.LogLevel] {
			return nil, fmt.Errorf("invalid log-level: %s (valid: debug, info, warn, error)", cfg.LogLevel)
		}
	}

	return cfg, nil
}

// applyFlags overlays command-line values onto the loaded configuration.
func applyFlags(cfg *config.Config, flags *flagConfig) {
	if len(flags.Packages) > 0 {
		cfg.Packages = flags.Packages
	}
	if len(flags.Tags) > 0 {
		cfg.Tags = flags.Tags
	}
	if flags.Level != "" {
		cfg.Level = flags.Level
	}
	if flags.TagWidth > 0 {
		cfg.TagWidth = flags.TagWidth
	}
	if flags.FilePath != "" {
		cfg.Source.Type = "file"
		cfg.Source.Path = flags.FilePath
	}
	if flags.SourceType != "" {
		cfg.Source.Type = flags.SourceType
	}
	if flags.Follow {
		cfg.Source.Follow = true
	}
	if flags.LogOutput != "" {
		cfg.Logging.Output = flags.LogOutput
	}
	if flags.LogLevel != "" {
		cfg.Logging.Level = flags.LogLevel
	}
	if flags.Quiet {
		cfg.Quiet = true
	}
}

func splitList(s string) []string {
	if s == "" {
		return nil
	}
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

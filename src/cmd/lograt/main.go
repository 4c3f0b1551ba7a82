package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"lograt/src/internal/config"
	"lograt/src/internal/version"

	"github.com/lixenwraith/log"
)

var logger *log.Logger

func main() {
	flagCfg, err := ParseFlags()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if flagCfg.ShowVersion {
		fmt.Println(version.String())
		os.Exit(0)
	}

	if flagCfg.ConfigFile != "" {
		os.Setenv("LOGRAT_CONFIG_FILE", flagCfg.ConfigFile)
	}

	cfg, err := config.Load(nil)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}
	applyFlags(cfg, flagCfg)

	logger, err = initializeLogger(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer shutdownLogger()

	logger.Info("msg", "lograt starting",
		"version", version.Short(),
		"source", cfg.Source.Type,
		"package_count", len(cfg.Packages),
		"tag_count", len(cfg.Tags))

	p, err := buildPipeline(cfg, logger)
	if err != nil {
		logger.Error("msg", "Failed to build pipeline", "error", err)
		shutdownLogger()
		os.Exit(1)
	}

	if err := p.Start(); err != nil {
		logger.Error("msg", "Failed to start pipeline", "error", err)
		shutdownLogger()
		os.Exit(1)
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	select {
	case <-p.Done():
		// Input exhausted; fall through to the graceful stop.
	case sig := <-sigChan:
		logger.Info("msg", "Shutdown signal received", "signal", sig.String())
	}

	p.Shutdown()
	logger.Info("msg", "Shutdown complete")
}

func shutdownLogger() {
	if logger != nil {
		if err := logger.Shutdown(2 * time.Second); err != nil {
			fmt.Fprintf(os.Stderr, "Logger shutdown error: %v\n", err)
		}
	}
}

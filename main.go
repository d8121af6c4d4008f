package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/soocke/tk-calc-go/app"
	"github.com/soocke/tk-calc-go/config"
)

var (
	flagConfig      = flag.String("config", "calculator.json", "Path to the JSON configuration file")
	flagDebug       = flag.Bool("debug", false, "Enable debug logging and periodic stats")
	flagWriteConfig = flag.Bool("write-config", false, "Write the effective configuration to -config and exit")
)

func main() {
	flag.Parse()

	// Base config from file, falling back to defaults
	cfg, cfgErr := config.Load(*flagConfig)
	if *flagDebug {
		cfg.Debug = true
	}

	level := slog.LevelInfo
	if cfg.Debug {
		level = slog.LevelDebug
	}
	logger := NewLogger(level)
	if cfgErr != nil {
		logger.Error("config load failed, using defaults", "path", *flagConfig, "error", cfgErr)
	}

	if *flagWriteConfig {
		if err := cfg.Save(*flagConfig); err != nil {
			fmt.Fprintf(os.Stderr, "write config: %v\n", err)
			os.Exit(1)
		}
		logger.Info("config written", "path", *flagConfig)
		return
	}

	application := app.NewApp("Simple Calculator", cfg, logger)
	application.Start()
}

package main

import (
	"errors"
	"flag"
	"io/fs"
	"os"
	"runtime"

	"github.com/joho/godotenv"

	"flappy/internal/logger"
	"flappy/pkg/config"
	"flappy/pkg/engine"
)

func init() {
	// GLFW requires the program to be running on the main thread
	runtime.LockOSThread()
}

func main() {
	configPath := flag.String("config", "config.yaml", "Path to configuration file")
	logLevel := flag.String("log-level", "", "Log level (debug, info, warn, error); overrides the config")
	headless := flag.Bool("headless", false, "Run without a window, autopilot playing, frames printed as text")
	frames := flag.Int("frames", 0, "Stop after this many frames (0 runs until quit)")
	writeConfig := flag.String("write-config", "", "Write the effective configuration to this path and exit")
	flag.Parse()

	log := logger.NewLogger("info")

	envErr := godotenv.Load()
	if envErr != nil && !errors.Is(envErr, fs.ErrNotExist) {
		log.Warnf("Failed to read .env: %v", envErr)
	}

	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		log.Warnf("%v", err)
	}
	if err := cfg.ApplyEnv(os.LookupEnv); err != nil {
		log.Warnf("Ignoring environment overrides: %v", err)
	}
	if *logLevel != "" {
		cfg.Logging.Level = *logLevel
	}
	log.SetLevel(cfg.Logging.Level)
	if *headless {
		// stdout carries the frames
		log.SetOutput(os.Stderr)
	}

	if cfg.Logging.File != "" {
		open := logger.NewMultiLogger
		if *headless {
			open = logger.NewFileLogger
		}
		fileLogger, err := open(cfg.Logging.Level, cfg.Logging.File)
		if err != nil {
			log.Warnf("Not logging to file: %v", err)
		} else {
			log = fileLogger
			defer log.Close()
		}
	}

	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	if *writeConfig != "" {
		if err := config.SaveConfig(cfg, *writeConfig); err != nil {
			log.Fatalf("Failed to write configuration: %v", err)
		}
		log.Infof("Configuration written to %s", *writeConfig)
		return
	}

	log.Info("Starting Flappy...")
	game, err := engine.NewEngine(cfg, log, engine.Options{
		Headless: *headless,
		Output:   os.Stdout,
		Frames:   *frames,
	})
	if err != nil {
		log.Fatalf("Failed to initialize game engine: %v", err)
	}

	log.Info("Engine initialized, starting game loop...")
	game.Run()
}

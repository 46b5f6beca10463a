package main

import (
	"flag"
	"log"
	"runtime"

	"oasis/internal/logger"
	"oasis/pkg/config"
	"oasis/pkg/engine"
)

func init() {
	// GLFW requires the program to be running on the main thread
	runtime.LockOSThread()
}

func main() {
	configPath := flag.String("config", "config.yaml", "Path to configuration file")
	flag.Parse()

	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		// Defaults still apply; just note why the file was skipped
		log.Printf("%v", err)
	}

	logger := logger.NewLogger(cfg.LogLevel)
	logger.Info("Starting Oasis raytracer...")

	game, err := engine.NewEngine(cfg, logger)
	if err != nil {
		log.Fatalf("Failed to initialize engine: %v", err)
	}

	logger.Info("Engine initialized, starting render loop...")
	game.Run()
}

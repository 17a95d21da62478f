package main

import (
	"flag"
	"fmt"
	"os"

	"shooter/internal/audio"
	"shooter/internal/desktop"
	"shooter/internal/game"
	"shooter/internal/logging"
)

func main() {
	cfg := game.LoadConfig()
	acfg := audio.LoadConfig()

	debug := flag.Bool("debug", false, "write a debug log to logs/shooter.log")
	mute := flag.Bool("mute", !acfg.Enabled, "disable sound")
	flag.IntVar(&cfg.TickRate, "tickrate", cfg.TickRate, "simulation ticks per second")
	flag.IntVar(&cfg.Columns, "columns", cfg.Columns, "enemies per formation row")
	flag.Parse()
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "shooter: invalid configuration: %v\n", err)
		os.Exit(2)
	}
	acfg.Enabled = !*mute

	logger, logFile, err := logging.Setup(*debug, "shooter")
	if err != nil {
		fmt.Fprintf(os.Stderr, "logging: %v\n", err)
		os.Exit(1)
	}
	if logFile != nil {
		defer logFile.Close()
	}

	if err := desktop.Run(desktop.Options{Game: cfg, Audio: acfg, Logger: logger}); err != nil {
		fmt.Fprintf(os.Stderr, "shooter: %v\n", err)
		os.Exit(1)
	}
}

package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"runtime/debug"

	"github.com/gdamore/tcell/v2"

	"shooter/internal/audio"
	"shooter/internal/audio/beepplayer"
	"shooter/internal/game"
	"shooter/internal/logging"
	"shooter/internal/term"
)

func main() {
	cfg := game.LoadConfig()
	acfg := audio.LoadConfig()

	debugLog := flag.Bool("debug", false, "write a debug log to logs/shooter-term.log")
	mute := flag.Bool("mute", !acfg.Enabled, "disable sound")
	flag.IntVar(&cfg.TickRate, "tickrate", cfg.TickRate, "simulation ticks per second")
	flag.IntVar(&cfg.Columns, "columns", cfg.Columns, "enemies per formation row")
	flag.Parse()
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "shooter-term: invalid configuration: %v\n", err)
		os.Exit(2)
	}

	logger, logFile, err := logging.Setup(*debugLog, "shooter-term")
	if err != nil {
		fmt.Fprintf(os.Stderr, "logging: %v\n", err)
		os.Exit(1)
	}
	if logFile != nil {
		defer logFile.Close()
	}

	var sound game.SoundPlayer
	if !*mute {
		if p, err := beepplayer.New(acfg); err != nil {
			fmt.Fprintf(os.Stderr, "audio init failed (continuing without sound): %v\n", err)
		} else {
			defer p.Close()
			sound = p
		}
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "terminal: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "terminal init: %v\n", err)
		os.Exit(1)
	}

	// Restore the terminal before reporting a crash.
	defer func() {
		if r := recover(); r != nil {
			screen.Fini()
			fmt.Fprintf(os.Stderr, "shooter-term crashed: %v\n%s\n", r, debug.Stack())
			os.Exit(1)
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	err = term.Run(ctx, screen, term.Options{Game: cfg, Sound: sound, Logger: logger})
	screen.Fini()
	if err != nil {
		fmt.Fprintf(os.Stderr, "shooter-term: %v\n", err)
		os.Exit(1)
	}
}

package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"

	"tetris/scores"
	"tetris/settings"
	"tetris/terminal"

	"golang.org/x/term"
)

const (
	hideCursor = "\033[2J\033[?25l" // also clear screen
	showCursor = "\033[25;0H\n\r\033[?25h"
)

func main() {
	name := flag.String("name", "", "player name shown on the board and the score table")
	noGhost := flag.Bool("noghost", false, "disable the landing preview")
	debug := flag.Bool("debug", false, "log debug information to tetris.log")
	flag.Parse()

	logger, closeLog := newLogger(*debug)
	defer closeLog()

	cfg, err := settings.ReadSettings()
	if err != nil {
		log.Fatalf("unable to read settings: %v", err)
	}
	if *name != "" {
		if err := cfg.SetPlayerName(*name); err != nil {
			log.Fatalf("unable to save player name: %v", err)
		}
	}
	if *noGhost {
		if err := cfg.SetNoGhost(true); err != nil {
			log.Fatalf("unable to save ghost setting: %v", err)
		}
	}

	table, err := scores.Load()
	if err != nil {
		log.Fatalf("unable to load scores: %v", err)
	}

	t, err := terminal.New(&terminal.Options{
		Logger:  logger,
		Name:    cfg.GetPlayerName(),
		NoGhost: cfg.GetNoGhost(),
		Scores:  table,
	})
	if err != nil {
		log.Fatalf("unable to start the game: %v", err)
	}

	restore := startRawConsole()
	defer restore()

	t.Start()
}

func newLogger(debug bool) (*slog.Logger, func()) {
	if !debug {
		return slog.New(slog.NewTextHandler(io.Discard, nil)), func() {}
	}
	f, err := os.OpenFile("tetris.log", os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		log.Fatalf("unable to open log file: %v", err)
	}
	logger := slog.New(slog.NewJSONHandler(f, &slog.HandlerOptions{Level: slog.LevelDebug}))
	return logger, func() { f.Close() }
}

func startRawConsole() func() {
	fmt.Print(hideCursor)
	oldState, err := term.MakeRaw(int(os.Stdin.Fd()))
	if err != nil {
		log.Fatalf("Error setting terminal to raw mode: %v", err)
	}

	return func() {
		if err := term.Restore(int(os.Stdin.Fd()), oldState); err != nil {
			log.Fatalf("unable to retore the terminal original state: %v", err)
		}
		fmt.Print(showCursor)
	}
}

package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/gdamore/tcell/v2"
	"github.com/google/uuid"
	"github.com/plus3/towerdefense/audio"
	"github.com/plus3/towerdefense/config"
	"github.com/plus3/towerdefense/game"
	"github.com/plus3/towerdefense/term"
)

func main() {
	configPath := flag.String("config", "", "Path to a YAML config file (defaults to $TD_CONFIG).")
	logFile := flag.String("log", "", "Write logs to this file. The terminal is busy drawing, so logs are discarded by default.")
	logLevel := flag.String("log-level", "info", "Log level: debug, info, warn or error.")
	cells := flag.Float64("cells", 4, "Terminal columns per world unit.")
	mute := flag.Bool("mute", false, "Disable sound effects.")
	flag.Parse()

	if err := run(*configPath, *logFile, *logLevel, *cells, *mute); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(configPath, logFile, logLevel string, cells float64, mute bool) error {
	var out io.Writer = io.Discard
	if logFile != "" {
		f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("open log file: %w", err)
		}
		defer f.Close()
		out = f
	}
	var level slog.Level
	if err := level.UnmarshalText([]byte(logLevel)); err != nil {
		level = slog.LevelInfo
	}
	logger := slog.New(slog.NewTextHandler(out, &slog.HandlerOptions{Level: level})).
		With("run_id", uuid.NewString(), "frontend", "terminal")

	cfg, err := config.Resolve(configPath)
	if err != nil {
		return err
	}
	if mute {
		cfg.Audio.Muted = true
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	defer screen.Fini()

	sounds := audio.NewSoundManager(cfg.Audio.Volume, cfg.Audio.Muted)
	if err := sounds.Initialize(); err != nil {
		logger.Warn("audio disabled", "err", err)
	}
	defer sounds.Close()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	keys := make(chan game.Action, 64)
	go term.Listen(ctx, screen, keys)

	world := game.NewWorld(game.SettingsFromConfig(cfg),
		game.WithLogger(logger),
		game.WithSoundPlayer(sounds),
		game.WithInputSystem(&term.KeySystem{Keys: keys, OnQuit: cancel}),
		game.WithOutputSystem(&term.RenderSystem{Screen: screen, CellsPerUnit: cells}),
	)

	world.Run(ctx, cfg.TickInterval())
	return nil
}

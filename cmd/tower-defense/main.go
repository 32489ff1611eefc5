package main

import (
	"flag"
	"log/slog"
	"os"

	"github.com/google/uuid"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/plus3/towerdefense/audio"
	"github.com/plus3/towerdefense/config"
	"github.com/plus3/towerdefense/ecs/debugui"
	"github.com/plus3/towerdefense/game"
)

func main() {
	configPath := flag.String("config", "", "Path to a YAML config file (defaults to $TD_CONFIG).")
	logLevel := flag.String("log-level", "info", "Log level: debug, info, warn or error.")
	debug := flag.Bool("debug", false, "Start with the entity inspector open.")
	mute := flag.Bool("mute", false, "Disable sound effects.")
	flag.Parse()

	var level slog.Level
	if err := level.UnmarshalText([]byte(*logLevel)); err != nil {
		level = slog.LevelInfo
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})).
		With("run_id", uuid.NewString())
	slog.SetDefault(logger)

	cfg, err := config.Resolve(*configPath)
	if err != nil {
		logger.Error("failed to load config", "err", err)
		os.Exit(1)
	}
	if *mute {
		cfg.Audio.Muted = true
	}
	if *debug {
		cfg.Debug.Inspector = true
	}

	sounds := audio.NewSoundManager(cfg.Audio.Volume, cfg.Audio.Muted)
	if err := sounds.Initialize(); err != nil {
		logger.Warn("audio disabled", "err", err)
	}
	defer sounds.Close()

	world := game.NewWorld(game.SettingsFromConfig(cfg),
		game.WithLogger(logger),
		game.WithSoundPlayer(sounds),
		game.WithClearColor(game.ClearColorFromConfig(cfg)),
		game.WithComponents(debugui.RegisterDebugUIComponents),
	)

	g := NewGame(world, cfg, logger)

	if err := ebiten.RunGame(g); err != nil {
		logger.Error("game exited with error", "err", err)
		os.Exit(1)
	}
	logger.Info("bye", "ticks", world.Stats.Get().Ticks)
}

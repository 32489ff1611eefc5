package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"math"
	"math/rand/v2"
	"os"
	"runtime"
	"time"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/google/uuid"
	"github.com/plus3/towerdefense/config"
	"github.com/plus3/towerdefense/game"
)

func main() {
	duration := flag.Duration("duration", 10*time.Second, "The total duration the test should run for.")
	towerCount := flag.Int("towers", 200, "Number of towers to place.")
	targetCount := flag.Int("targets", 1000, "Number of targets to spawn.")
	configPath := flag.String("config", "", "Path to a YAML config file (defaults to $TD_CONFIG).")
	fixedStep := flag.Float64("step", 0, "Fixed tick in seconds; 0 uses wall-clock time between ticks.")
	gcPauseMetrics := flag.Bool("gc-pause-metrics", false, "Enable detailed GC pause metrics in the report.")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil)).With("run_id", uuid.NewString())

	cfg, err := config.Resolve(*configPath)
	if err != nil {
		logger.Error("failed to load config", "err", err)
		os.Exit(1)
	}

	logger.Info("starting tower defense stress test")

	world := game.NewWorld(game.SettingsFromConfig(cfg), game.WithoutScene(), game.WithLogger(logger))
	settings := world.Settings.Get()

	logger.Info("populating world", "towers", *towerCount, "targets", *targetCount)
	for _, pos := range grid(*towerCount, 1.5, 1.1) {
		world.Storage.Spawn(game.TowerBundle(settings, pos)...)
	}
	for _, pos := range scatter(*targetCount, 20, 0.4) {
		world.Storage.Spawn(game.TargetBundle(settings, pos)...)
	}
	logger.Info("population complete", "entities", world.Storage.Count())

	report := &Report{
		Duration:       *duration,
		Towers:         *towerCount,
		Targets:        *targetCount,
		Systems:        world.Scheduler.GetStats().SystemCount,
		GCPauseMetrics: *gcPauseMetrics,
		UpdateTime: Stats{
			Samples: make([]time.Duration, 0),
		},
	}

	runtime.ReadMemStats(&report.MemStatsStart)

	logger.Info("running simulation", "duration", *duration)
	ctx, cancel := context.WithTimeout(context.Background(), *duration)
	defer cancel()

	startTime := time.Now()
	var totalUpdates int64
	lastFrameTime := time.Now()

Loop:
	for {
		select {
		case <-ctx.Done():
			break Loop
		default:
			dt := *fixedStep
			if dt <= 0 {
				dt = time.Since(lastFrameTime).Seconds()
			}
			lastFrameTime = time.Now()

			updateStart := time.Now()
			world.Step(dt)
			updateDuration := time.Since(updateStart)

			report.UpdateTime.Samples = append(report.UpdateTime.Samples, updateDuration)
			totalUpdates++
		}
	}

	report.TotalTime = time.Since(startTime)
	report.TotalUpdates = totalUpdates
	report.UpdateTime.Finalize()
	runtime.ReadMemStats(&report.MemStatsEnd)
	report.Game = *world.Stats.Get()
	report.SystemStats = world.Scheduler.GetStats().Systems

	logger.Info("simulation finished", "updates", totalUpdates)

	fmt.Println("\n\n--- Stress Test Report ---")
	if err := report.Generate(os.Stdout); err != nil {
		logger.Error("failed to generate report", "err", err)
		os.Exit(1)
	}
	fmt.Println("--- End of Report ---")
}

// grid lays n points out in a square centered on the origin at height y.
func grid(n int, spacing, y float64) []mgl64.Vec3 {
	side := int(math.Ceil(math.Sqrt(float64(n))))
	half := float64(side-1) * spacing / 2
	out := make([]mgl64.Vec3, 0, n)
	for i := range n {
		x := float64(i%side)*spacing - half
		z := float64(i/side)*spacing - half
		out = append(out, mgl64.Vec3{x, y, z})
	}
	return out
}

// scatter places n points uniformly in a square of the given extent.
func scatter(n int, extent, y float64) []mgl64.Vec3 {
	out := make([]mgl64.Vec3, 0, n)
	for range n {
		out = append(out, mgl64.Vec3{
			(rand.Float64() - 0.5) * extent,
			y,
			(rand.Float64() - 0.5) * extent,
		})
	}
	return out
}

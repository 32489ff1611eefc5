package main

import (
	"fmt"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/AllenDang/cimgui-go/implot"
	"github.com/plus3/towerdefense/ecs"
	"github.com/plus3/towerdefense/ecs/debugui"
	"github.com/plus3/towerdefense/game"
)

const historySize = 300

// History is a fixed-size ring of samples.
type History struct {
	samples []float32
	offset  int
}

func NewHistory(size int) *History {
	return &History{samples: make([]float32, size)}
}

func (h *History) Push(v float32) {
	h.samples[h.offset] = v
	h.offset = (h.offset + 1) % len(h.samples)
}

// Ordered returns the samples oldest first.
func (h *History) Ordered() []float32 {
	out := make([]float32, len(h.samples))
	n := copy(out, h.samples[h.offset:])
	copy(out[n:], h.samples[:h.offset])
	return out
}

// spawnSessionPanel adds an inspector window with the session counters and a
// plot of live bullets and targets.
func spawnSessionPanel(storage *ecs.Storage) {
	bullets := NewHistory(historySize)
	targets := NewHistory(historySize)

	storage.Spawn(debugui.ImguiItem{
		Render: func() {
			var stats *game.Stats
			if !storage.ReadSingleton(&stats) {
				return
			}
			bullets.Push(float32(stats.LiveBullets))
			targets.Push(float32(stats.LiveTargets))

			imgui.SetNextWindowPosV(imgui.NewVec2(10, 420), imgui.CondOnce, imgui.NewVec2(0, 0))
			imgui.SetNextWindowSizeV(imgui.NewVec2(360, 280), imgui.CondOnce)
			if imgui.BeginV("Session", nil, 0) {
				imgui.Text(fmt.Sprintf("Time: %.1fs (%d ticks)", stats.Elapsed.Seconds(), stats.Ticks))
				imgui.Text(fmt.Sprintf("Shots: %d  Expired: %d", stats.ShotsFired, stats.BulletsExpired))
				imgui.Text(fmt.Sprintf("Towers built: %d  Targets spawned: %d", stats.TowersBuilt, stats.TargetsSpawned))
				imgui.Text(fmt.Sprintf("Targets destroyed: %d", stats.TargetsDestroyed))
				imgui.Separator()

				if implot.BeginPlotV("Live Entities", imgui.NewVec2(-1, -1), 0) {
					implot.SetupAxesV("Tick", "Count", 0, implot.AxisFlagsAutoFit)
					b := bullets.Ordered()
					implot.PlotLineFloatPtrInt("Bullets", &b[0], int32(len(b)))
					tg := targets.Ordered()
					implot.PlotLineFloatPtrInt("Targets", &tg[0], int32(len(tg)))
					implot.EndPlot()
				}
			}
			imgui.End()
		},
	})
}

package main

import (
	"bytes"
	"testing"
	"time"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/plus3/towerdefense/ecs"
	"github.com/plus3/towerdefense/game"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatsFinalize(t *testing.T) {
	s := Stats{Samples: []time.Duration{3 * time.Millisecond, time.Millisecond, 2 * time.Millisecond}}
	s.Finalize()
	assert.Equal(t, time.Millisecond, s.Min)
	assert.Equal(t, 3*time.Millisecond, s.Max)
	assert.Equal(t, 2*time.Millisecond, s.Avg)
}

func TestStatsFinalizeEmpty(t *testing.T) {
	var s Stats
	s.Finalize()
	assert.Zero(t, s.Avg)
}

func TestReportGenerate(t *testing.T) {
	r := &Report{
		Duration:     time.Second,
		Towers:       4,
		Targets:      9,
		Systems:      2,
		TotalUpdates: 60,
		Game:         game.Stats{ShotsFired: 12, LiveBullets: 7},
		SystemStats: []ecs.SystemStats{
			{Name: "TowerShootingSystem", AvgDuration: time.Microsecond, MaxDuration: 5 * time.Microsecond},
		},
	}

	var buf bytes.Buffer
	require.NoError(t, r.Generate(&buf))
	out := buf.String()

	assert.Contains(t, out, "**Towers:** 4")
	assert.Contains(t, out, "**Targets:** 9")
	assert.Contains(t, out, "TowerShootingSystem")
	assert.Contains(t, out, "Shots Fired:     12")
	assert.NotContains(t, out, "GC Pause")
}

func TestGridCentersOnOrigin(t *testing.T) {
	points := grid(4, 2, 1.1)
	require.Len(t, points, 4)
	assert.Equal(t, mgl64.Vec3{-1, 1.1, -1}, points[0])
	assert.Equal(t, mgl64.Vec3{1, 1.1, 1}, points[3])
}

func TestScatterStaysInBounds(t *testing.T) {
	for _, p := range scatter(100, 10, 0.4) {
		assert.LessOrEqual(t, p.X(), 5.0)
		assert.GreaterOrEqual(t, p.X(), -5.0)
		assert.Equal(t, 0.4, p.Y())
	}
}

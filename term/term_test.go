package term_test

import (
	"context"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/plus3/towerdefense/ecs"
	"github.com/plus3/towerdefense/game"
	"github.com/plus3/towerdefense/term"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKeyAction(t *testing.T) {
	tests := []struct {
		ev   *tcell.EventKey
		want game.Action
		ok   bool
	}{
		{tcell.NewEventKey(tcell.KeyRune, 'w', tcell.ModNone), game.ActionForward, true},
		{tcell.NewEventKey(tcell.KeyRune, 'W', tcell.ModShift), game.ActionForward, true},
		{tcell.NewEventKey(tcell.KeyRune, 'b', tcell.ModNone), game.ActionBuild, true},
		{tcell.NewEventKey(tcell.KeyLeft, 0, tcell.ModNone), game.ActionYawLeft, true},
		{tcell.NewEventKey(tcell.KeyTab, 0, tcell.ModNone), game.ActionCycleSelection, true},
		{tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone), game.ActionQuit, true},
		{tcell.NewEventKey(tcell.KeyRune, 'z', tcell.ModNone), 0, false},
		{tcell.NewEventKey(tcell.KeyF5, 0, tcell.ModNone), 0, false},
	}

	for _, tt := range tests {
		got, ok := term.KeyAction(tt.ev)
		assert.Equal(t, tt.ok, ok, tt.ev.Name())
		if tt.ok {
			assert.Equal(t, tt.want, got, tt.ev.Name())
		}
	}
}

func TestKeySystemFeedsInput(t *testing.T) {
	keys := make(chan game.Action, 4)
	quit := false
	ks := &term.KeySystem{Keys: keys, OnQuit: func() { quit = true }}

	w := game.NewWorld(game.DefaultSettings(), game.WithoutScene(), game.WithInputSystem(ks))

	keys <- game.ActionSpawnTarget
	w.Step(0.1)
	assert.Equal(t, 1, ecs.NewView[struct{ *game.Target }](w.Storage).Count())
	assert.False(t, quit)

	// Nothing queued, nothing happens
	w.Step(0.1)
	assert.Equal(t, 1, ecs.NewView[struct{ *game.Target }](w.Storage).Count())

	keys <- game.ActionQuit
	w.Step(0.1)
	assert.True(t, quit)
}

func TestMapCell(t *testing.T) {
	m := term.Map{CellsPerUnit: 4, Width: 40, Height: 20}

	x, y, ok := m.Cell(mgl64.Vec3{0, 7, 0})
	require.True(t, ok)
	assert.Equal(t, 20, x)
	assert.Equal(t, 10, y)

	x, y, ok = m.Cell(mgl64.Vec3{1, 0, 2})
	require.True(t, ok)
	assert.Equal(t, 24, x)
	assert.Equal(t, 14, y)

	_, _, ok = m.Cell(mgl64.Vec3{-6, 0, 0})
	assert.False(t, ok)
}

func newScreen(t *testing.T, w, h int) tcell.SimulationScreen {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, screen.Init())
	screen.SetSize(w, h)
	t.Cleanup(screen.Fini)
	return screen
}

func runeAt(screen tcell.Screen, x, y int) rune {
	r, _, _, _ := screen.GetContent(x, y)
	return r
}

func TestRenderSystemDrawsEntities(t *testing.T) {
	screen := newScreen(t, 40, 21)
	r := &term.RenderSystem{Screen: screen, CellsPerUnit: 4}
	w := game.NewWorld(game.DefaultSettings(), game.WithoutScene(), game.WithOutputSystem(r))

	settings := w.Settings.Get()
	w.Storage.Spawn(game.TowerBundle(settings, mgl64.Vec3{0, 1.1, 0})...)
	w.Storage.Spawn(game.TargetBundle(settings, mgl64.Vec3{2, 0.4, 0})...)
	ph := w.Storage.Spawn(game.PlaceholderBundle(mgl64.Vec3{-2, 0.15, 2})...)
	ground := game.NewTransform(0, 0, 0)
	w.Storage.Spawn(ground, game.GlobalFromTransform(ground), game.Mesh{Shape: game.MeshPlane, Size: 1})

	w.Step(0)

	// The map uses every row but the last, which holds the status line
	assert.Equal(t, 'T', runeAt(screen, 20, 10))
	assert.Equal(t, 'o', runeAt(screen, 28, 10))
	assert.Equal(t, '+', runeAt(screen, 12, 14))
	assert.Equal(t, '.', runeAt(screen, 19, 10))
	assert.Equal(t, 't', runeAt(screen, 0, 20))

	ecs.ReadComponent[game.Selectable](w.Storage, ph).Selected = true
	w.Step(0)
	_, _, style, _ := screen.GetContent(12, 14)
	_, _, attrs := style.Decompose()
	assert.NotZero(t, attrs&tcell.AttrReverse)
}

func TestStatusLine(t *testing.T) {
	line := term.StatusLine(&game.Stats{Elapsed: 3 * time.Second, LiveTowers: 2, ShotsFired: 5})
	assert.Contains(t, line, "t=3.0s")
	assert.Contains(t, line, "towers=2")
	assert.Contains(t, line, "fired=5")
}

func TestListenForwardsKeys(t *testing.T) {
	screen := newScreen(t, 10, 5)
	out := make(chan game.Action, 4)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go term.Listen(ctx, screen, out)
	screen.InjectKey(tcell.KeyRune, 't', tcell.ModNone)

	select {
	case a := <-out:
		assert.Equal(t, game.ActionSpawnTarget, a)
	case <-time.After(2 * time.Second):
		t.Fatal("no action forwarded")
	}
}

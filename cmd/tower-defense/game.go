package main

import (
	"log/slog"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/plus3/towerdefense/config"
	"github.com/plus3/towerdefense/ecs"
	"github.com/plus3/towerdefense/ecs/debugui"
	debugui_ebiten "github.com/plus3/towerdefense/ecs/debugui/ebiten"
	"github.com/plus3/towerdefense/game"
	"github.com/plus3/towerdefense/render"
)

// Game implements ebiten.Game. Update feeds input and ticks the simulation,
// Draw runs a separate scheduler so rendering never advances game time.
type Game struct {
	World           *game.World
	RenderScheduler *ecs.Scheduler
	UIScheduler     *ecs.Scheduler
	Inspector       *debugui.Inspector

	ImguiBackend *ecs.Singleton[debugui_ebiten.ImguiBackend]
	ImguiInput   *ecs.Singleton[debugui.ImguiInputState]
	Visibility   *ecs.Singleton[debugui.ImguiVisibility]
	Screen       *ecs.Singleton[render.Screen]

	dt            float64
	width, height int
	log           *slog.Logger
}

func NewGame(world *game.World, cfg config.Config, log *slog.Logger) *Game {
	backend := debugui_ebiten.NewImguiBackend(cfg.Window.Title, cfg.Window.Width, cfg.Window.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(int(cfg.Window.TickRate))

	storage := world.Storage
	g := &Game{
		World:        world,
		ImguiBackend: ecs.NewSingleton[debugui_ebiten.ImguiBackend](storage, backend),
		ImguiInput:   ecs.NewSingleton[debugui.ImguiInputState](storage),
		Visibility:   ecs.NewSingleton[debugui.ImguiVisibility](storage, debugui.ImguiVisibility{Hidden: !cfg.Debug.Inspector}),
		Screen:       ecs.NewSingleton[render.Screen](storage),
		dt:           1 / cfg.Window.TickRate,
		width:        cfg.Window.Width,
		height:       cfg.Window.Height,
		log:          log,
	}

	g.RenderScheduler = ecs.NewScheduler(storage)
	g.RenderScheduler.Register(&render.RenderSystem{})
	g.RenderScheduler.Register(&render.HUDSystem{})

	g.UIScheduler = ecs.NewScheduler(storage)
	g.UIScheduler.Register(&debugui.ImguiSystem{})
	g.Inspector = debugui.SpawnDebugUI(storage, world.Scheduler)
	spawnSessionPanel(storage)

	return g
}

func (g *Game) Update() error {
	backend := g.ImguiBackend.Get()
	backend.BeginFrame()
	defer backend.EndFrame()

	capture := g.ImguiInput.Get()
	input := g.World.Input.Get()
	render.ReadKeys(input, render.Keyboard, render.DefaultBindings, capture.WantCaptureKeyboard)
	if pr, ok := render.FindCamera(g.World.Storage, g.width, g.height); ok {
		render.ReadClick(input, g.World.Storage, pr, capture.WantCaptureMouse)
	}

	if input.JustPressed(game.ActionQuit) {
		g.log.Info("quit requested")
		return ebiten.Termination
	}
	if input.JustPressed(game.ActionToggleDebug) {
		vis := g.Visibility.Get()
		vis.Hidden = !vis.Hidden
		g.log.Debug("inspector toggled", "visible", !vis.Hidden)
	}
	if input.Picked != 0 {
		g.Inspector.Select(input.Picked)
	}

	g.World.Step(g.dt)
	g.UIScheduler.Once(g.dt)
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.Screen.Get().Image = screen
	g.RenderScheduler.Once(0)
	g.ImguiBackend.Get().Draw(screen)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.ImguiBackend.Get().Layout(outsideWidth, outsideHeight)
	g.width, g.height = outsideWidth, outsideHeight
	return outsideWidth, outsideHeight
}

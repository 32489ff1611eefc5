package game

import (
	"context"
	"log/slog"
	"time"

	"github.com/plus3/towerdefense/ecs"
)

// World wires storage, singletons and the tick order together.
type World struct {
	Storage   *ecs.Storage
	Scheduler *ecs.Scheduler

	Input    *ecs.Singleton[InputState]
	Settings *ecs.Singleton[Settings]
	Events   *ecs.Singleton[FrameEvents]
	Stats    *ecs.Singleton[Stats]
	Clear    *ecs.Singleton[ClearColor]

	log *slog.Logger
}

type worldOptions struct {
	player     SoundPlayer
	log        *slog.Logger
	scene      bool
	clearColor ClearColor
	register   []func(*ecs.ComponentRegistry)
	inputs     []ecs.System
	outputs    []ecs.System
}

type Option func(*worldOptions)

// WithSoundPlayer plays effects for shots, kills, builds and spawns.
func WithSoundPlayer(p SoundPlayer) Option {
	return func(o *worldOptions) { o.player = p }
}

func WithLogger(l *slog.Logger) Option {
	return func(o *worldOptions) { o.log = l }
}

// WithoutScene leaves storage empty apart from singletons.
func WithoutScene() Option {
	return func(o *worldOptions) { o.scene = false }
}

func WithClearColor(c ClearColor) Option {
	return func(o *worldOptions) { o.clearColor = c }
}

// WithComponents registers extra component types, e.g. debug UI items.
func WithComponents(register func(*ecs.ComponentRegistry)) Option {
	return func(o *worldOptions) { o.register = append(o.register, register) }
}

// WithInputSystem runs sys first every tick, before any game system reads
// InputState. Frontends that feed input asynchronously use it.
func WithInputSystem(sys ecs.System) Option {
	return func(o *worldOptions) { o.inputs = append(o.inputs, sys) }
}

// WithOutputSystem runs sys after the game systems and before input is
// cleared, e.g. a renderer driven by the same tick.
func WithOutputSystem(sys ecs.System) Option {
	return func(o *worldOptions) { o.outputs = append(o.outputs, sys) }
}

// NewWorld builds a ready-to-tick world.
func NewWorld(settings Settings, opts ...Option) *World {
	o := worldOptions{
		scene:      true,
		clearColor: ClearColor{Color: RGB(0.2, 0.2, 0.2)},
	}
	for _, opt := range opts {
		opt(&o)
	}
	log := logger(o.log)

	registry := ecs.NewComponentRegistry()
	RegisterComponents(registry)
	for _, register := range o.register {
		register(registry)
	}
	storage := ecs.NewStorage(registry)

	w := &World{
		Storage:  storage,
		Input:    ecs.NewSingleton[InputState](storage),
		Settings: ecs.NewSingleton[Settings](storage, settings),
		Events:   ecs.NewSingleton[FrameEvents](storage),
		Stats:    ecs.NewSingleton[Stats](storage),
		Clear:    ecs.NewSingleton[ClearColor](storage, o.clearColor),
		log:      log,
	}

	if o.scene {
		SpawnScene(storage, w.Settings.Get())
	}

	scheduler := ecs.NewScheduler(storage)
	for _, sys := range o.inputs {
		scheduler.Register(sys)
	}
	scheduler.Register(&EventResetSystem{})
	scheduler.Register(&CameraControlSystem{})
	scheduler.Register(&SelectionSystem{})
	scheduler.Register(&PlacementSystem{Log: log})
	scheduler.Register(&SpawnTargetSystem{Log: log})
	scheduler.Register(&MoveTargetsSystem{})
	scheduler.Register(&TowerShootingSystem{Log: log})
	scheduler.Register(&BulletMoveSystem{})
	scheduler.Register(&LifetimeSystem{})
	scheduler.Register(&TargetDespawnSystem{Log: log})
	scheduler.Register(&TransformPropagateSystem{})
	scheduler.Register(&SoundSystem{Player: o.player})
	scheduler.Register(&StatsSystem{})
	for _, sys := range o.outputs {
		scheduler.Register(sys)
	}
	scheduler.Register(&InputClearSystem{})
	w.Scheduler = scheduler

	log.Info("world ready",
		"entities", storage.Count(),
		"systems", scheduler.GetStats().SystemCount)
	return w
}

// Step advances the simulation by dt seconds.
func (w *World) Step(dt float64) {
	w.Scheduler.Once(dt)
}

// Run ticks at interval until ctx is done.
func (w *World) Run(ctx context.Context, interval time.Duration) {
	w.log.Info("simulation started", "interval", interval)
	w.Scheduler.Run(ctx, interval)
	w.log.Info("simulation stopped", "ticks", w.Stats.Get().Ticks)
}

// InputClearSystem consumes InputState at the end of the tick so an action
// is never seen twice.
type InputClearSystem struct {
	Input ecs.Singleton[InputState]
}

func (s *InputClearSystem) Execute(frame *ecs.UpdateFrame) {
	if input := s.Input.Get(); input != nil {
		input.Clear()
	}
}

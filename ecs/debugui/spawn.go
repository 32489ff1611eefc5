package debugui

import "github.com/plus3/towerdefense/ecs"

// Inspector bundles every debug panel and renders them as a single ImguiItem.
type Inspector struct {
	storage   *ecs.Storage
	scheduler *ecs.Scheduler
	frames    *FrameTimer

	Browser     *EntityBrowserComponent
	Components  *ComponentInspectorComponent
	Pools       *PoolViewerComponent
	Performance *PerformanceStatsComponent
	Queries     *QueryDebuggerComponent
}

// SpawnDebugUI creates the inspector panels and spawns an ImguiItem that draws them.
// scheduler may be nil, in which case per-system timings are omitted.
func SpawnDebugUI(storage *ecs.Storage, scheduler *ecs.Scheduler) *Inspector {
	browser := NewEntityBrowserComponent(100)
	components := NewComponentInspectorComponent()
	pools := NewPoolViewerComponent()
	perf := NewPerformanceStatsComponent(120)
	queries := NewQueryDebuggerComponent()

	inspector := &Inspector{
		storage:     storage,
		scheduler:   scheduler,
		frames:      NewFrameTimer(),
		Browser:     &browser,
		Components:  &components,
		Pools:       &pools,
		Performance: &perf,
		Queries:     &queries,
	}

	storage.Spawn(ImguiItem{Render: inspector.Render})
	return inspector
}

// Render draws every panel. It must run between the backend's BeginFrame and EndFrame.
func (in *Inspector) Render() {
	in.Browser.Render(in.storage)
	in.Components.Render(in.storage, in.Browser.GetSelectedEntity())
	if pool := in.Pools.Render(in.storage); pool != "" {
		in.Browser.filterComponent = pool
	}
	var stats *ecs.SchedulerStats
	if in.scheduler != nil {
		stats = in.scheduler.GetStats()
	}
	in.Performance.Render(in.storage, stats, in.frames.GetDeltaTime())
	in.Queries.Render(in.storage)
}

// Select points the entity browser and component inspector at id.
func (in *Inspector) Select(id ecs.EntityId) {
	in.Browser.selectedEntityId = id
}

func RegisterDebugUIComponents(registry *ecs.ComponentRegistry) {
	ecs.RegisterComponent[ImguiItem](registry)
}

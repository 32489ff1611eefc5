package debugui

import (
	"github.com/plus3/towerdefense/ecs"
)

type EntityBrowserComponent struct {
	cache              *EntityBrowserCache
	selectedEntityId   ecs.EntityId
	filterText         string
	filterComponent    string
	maxEntitiesPerPage int
	currentPage        int
}

type ComponentInspectorComponent struct {
	selectedEntityId ecs.EntityId
}

type PoolViewerComponent struct {
	cache         *PoolViewerCache
	selectedPool  string
	sortColumn    int
	sortAscending bool
}

type PerformanceStatsComponent struct {
	historyFrames int
	frameHistory  []float32
	frameIndex    int
}

type QueryDebuggerComponent struct {
	selectedComponentTypes map[string]bool
	cache                  *QueryDebuggerCache
}

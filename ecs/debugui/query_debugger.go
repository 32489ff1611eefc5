package debugui

import (
	"fmt"
	"reflect"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/towerdefense/ecs"
)

type QueryDebuggerCache struct {
	types []reflect.Type
}

func NewQueryDebuggerComponent() QueryDebuggerComponent {
	return QueryDebuggerComponent{
		selectedComponentTypes: make(map[string]bool),
		cache:                  &QueryDebuggerCache{},
	}
}

func (qd *QueryDebuggerComponent) Render(storage *ecs.Storage) {
	if !imgui.BeginV("Query Debugger", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	if qd.cache.types == nil {
		qd.cache.types = storage.Registry().Types()
	}

	imgui.Text("Select Component Types:")
	imgui.Separator()

	if imgui.Button("Clear All") {
		qd.selectedComponentTypes = make(map[string]bool)
	}

	for _, t := range qd.cache.types {
		name := t.String()
		selected := qd.selectedComponentTypes[name]
		if imgui.Checkbox(name, &selected) {
			if selected {
				qd.selectedComponentTypes[name] = true
			} else {
				delete(qd.selectedComponentTypes, name)
			}
		}
	}

	imgui.Separator()

	selected := qd.selectedTypes()
	if len(selected) == 0 {
		imgui.Text("No component types selected")
		imgui.End()
		return
	}

	matching := matchingEntities(storage, selected)
	imgui.Text(fmt.Sprintf("Matching Entities: %d", len(matching)))

	if imgui.TreeNodeStr("Entities") {
		for _, id := range matching {
			imgui.BulletText(fmt.Sprintf("slot %d gen %d", id.Index(), id.Generation()))
		}
		imgui.TreePop()
	}

	imgui.End()
}

func (qd *QueryDebuggerComponent) selectedTypes() []reflect.Type {
	types := make([]reflect.Type, 0, len(qd.selectedComponentTypes))
	for _, t := range qd.cache.types {
		if qd.selectedComponentTypes[t.String()] {
			types = append(types, t)
		}
	}
	return types
}

// matchingEntities returns the live entities that have every type in required,
// in ascending slot order.
func matchingEntities(storage *ecs.Storage, required []reflect.Type) []ecs.EntityId {
	var matching []ecs.EntityId
	for id := range storage.Entities() {
		ok := true
		for _, t := range required {
			if !storage.HasComponent(id, t) {
				ok = false
				break
			}
		}
		if ok {
			matching = append(matching, id)
		}
	}
	return matching
}

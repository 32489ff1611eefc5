package game

import (
	"iter"
	"log/slog"
	"reflect"

	"github.com/plus3/towerdefense/ecs"
)

type placeholderView struct {
	ecs.EntityId
	*Placeholder
	*Selectable
	*GlobalTransform
}

// SelectionSystem changes which placeholders are selected. A mouse pick
// toggles the picked placeholder; the cycle action moves a single selection
// to the next placeholder in slot order, wrapping around.
type SelectionSystem struct {
	Placeholders ecs.Query[placeholderView]
	Input        ecs.Singleton[InputState]
	Events       ecs.Singleton[FrameEvents]
}

func (s *SelectionSystem) Execute(frame *ecs.UpdateFrame) {
	input := s.Input.Get()
	if input == nil {
		return
	}

	changed := false
	if input.Picked != 0 {
		for p := range s.Placeholders.Iter() {
			if p.EntityId == input.Picked {
				p.Selected = !p.Selected
				changed = true
			}
		}
	}

	if input.JustPressed(ActionCycleSelection) && s.Placeholders.Len() > 0 {
		cycleSelection(s.Placeholders.Iter())
		changed = true
	}

	if changed {
		if events := s.Events.Get(); events != nil {
			events.SelectionChange = true
		}
	}
}

// cycleSelection selects the placeholder after the last selected one and
// clears the rest. With nothing selected the first placeholder is chosen.
func cycleSelection(placeholders iter.Seq[placeholderView]) {
	var all []placeholderView
	last := -1
	for p := range placeholders {
		if p.Selected {
			last = len(all)
		}
		all = append(all, p)
	}
	next := (last + 1) % len(all)
	for i, p := range all {
		p.Selected = i == next
	}
}

// PlacementSystem turns every selected placeholder into a tower when the
// build action fires.
type PlacementSystem struct {
	Placeholders ecs.Query[placeholderView]
	Input        ecs.Singleton[InputState]
	Settings     ecs.Singleton[Settings]
	Events       ecs.Singleton[FrameEvents]

	Log *slog.Logger
}

func (s *PlacementSystem) Execute(frame *ecs.UpdateFrame) {
	input := s.Input.Get()
	if input == nil || !input.JustPressed(ActionBuild) {
		return
	}
	settings := s.Settings.Get()
	events := s.Events.Get()

	for p := range s.Placeholders.Iter() {
		if !p.Selected {
			continue
		}
		position := p.GlobalTransform.Translation()
		frame.Commands.Delete(p.EntityId)
		frame.Commands.Spawn(TowerBundle(settings, position)...)

		if events != nil {
			events.TowersBuilt++
		}
		logger(s.Log).Debug("tower placed", "placeholder", p.EntityId, "position", position)
	}
}

var placeholderType = reflect.TypeFor[Placeholder]()

// IsPlaceholder reports whether id is a build spot, for frontends that pick.
func IsPlaceholder(storage *ecs.Storage, id ecs.EntityId) bool {
	return storage.HasComponent(id, placeholderType)
}

package game

import "github.com/plus3/towerdefense/ecs"

// Action is a logical input, independent of which key or frontend produced it.
type Action uint8

const (
	ActionForward Action = iota
	ActionBack
	ActionLeft
	ActionRight
	ActionYawLeft
	ActionYawRight
	ActionPitchUp
	ActionPitchDown
	ActionRise
	ActionFall
	ActionSpawnTarget
	ActionBuild
	ActionCycleSelection
	ActionToggleDebug
	ActionQuit
	actionCount
)

var actionNames = [actionCount]string{
	ActionForward:        "forward",
	ActionBack:           "back",
	ActionLeft:           "left",
	ActionRight:          "right",
	ActionYawLeft:        "yaw-left",
	ActionYawRight:       "yaw-right",
	ActionPitchUp:        "pitch-up",
	ActionPitchDown:      "pitch-down",
	ActionRise:           "rise",
	ActionFall:           "fall",
	ActionSpawnTarget:    "spawn-target",
	ActionBuild:          "build",
	ActionCycleSelection: "cycle-selection",
	ActionToggleDebug:    "toggle-debug",
	ActionQuit:           "quit",
}

func (a Action) String() string {
	if a < actionCount {
		return actionNames[a]
	}
	return "unknown"
}

// ActionSet is a bitset of actions.
type ActionSet uint32

func (s ActionSet) Has(a Action) bool {
	return s&(1<<a) != 0
}

func (s *ActionSet) Add(a Action) {
	*s |= 1 << a
}

// InputState is the singleton frontends fill before each tick. Held covers
// continuous actions such as camera movement; Pressed covers edge-triggered
// actions. Picked is the entity under a mouse click, or zero.
type InputState struct {
	Held    ActionSet
	Pressed ActionSet
	Picked  ecs.EntityId
}

// Hold marks a as held for this tick.
func (in *InputState) Hold(a Action) {
	in.Held.Add(a)
}

// Press marks a as newly pressed this tick.
func (in *InputState) Press(a Action) {
	in.Pressed.Add(a)
}

func (in *InputState) IsHeld(a Action) bool {
	return in.Held.Has(a)
}

func (in *InputState) JustPressed(a Action) bool {
	return in.Pressed.Has(a)
}

// Clear resets everything; frontends call it before filling the next tick.
func (in *InputState) Clear() {
	*in = InputState{}
}

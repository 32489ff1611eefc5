package render

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/plus3/towerdefense/ecs"
	"github.com/plus3/towerdefense/game"
)

// Binding ties a key to an action. Held bindings feed InputState.Held while
// the key is down; the rest fire once per key press.
type Binding struct {
	Key    ebiten.Key
	Action game.Action
	Held   bool
}

var DefaultBindings = []Binding{
	{ebiten.KeyW, game.ActionForward, true},
	{ebiten.KeyS, game.ActionBack, true},
	{ebiten.KeyA, game.ActionLeft, true},
	{ebiten.KeyD, game.ActionRight, true},
	{ebiten.KeyArrowLeft, game.ActionYawLeft, true},
	{ebiten.KeyArrowRight, game.ActionYawRight, true},
	{ebiten.KeyArrowUp, game.ActionPitchUp, true},
	{ebiten.KeyArrowDown, game.ActionPitchDown, true},
	{ebiten.KeySpace, game.ActionRise, true},
	{ebiten.KeyShiftLeft, game.ActionFall, true},
	{ebiten.KeyT, game.ActionSpawnTarget, false},
	{ebiten.KeyB, game.ActionBuild, false},
	{ebiten.KeyTab, game.ActionCycleSelection, false},
	{ebiten.KeyF1, game.ActionToggleDebug, false},
	{ebiten.KeyEscape, game.ActionQuit, false},
	{ebiten.KeyQ, game.ActionQuit, false},
}

// KeyState abstracts ebiten's keyboard queries.
type KeyState interface {
	Down(key ebiten.Key) bool
	JustPressed(key ebiten.Key) bool
}

type ebitenKeys struct{}

func (ebitenKeys) Down(key ebiten.Key) bool        { return ebiten.IsKeyPressed(key) }
func (ebitenKeys) JustPressed(key ebiten.Key) bool { return inpututil.IsKeyJustPressed(key) }

// Keyboard reads the live ebiten keyboard.
var Keyboard KeyState = ebitenKeys{}

// ReadKeys fills in from keys using bindings. Keyboard input is skipped
// entirely when captured is true, e.g. while the inspector has focus.
func ReadKeys(in *game.InputState, keys KeyState, bindings []Binding, captured bool) {
	if captured {
		return
	}
	for _, b := range bindings {
		if b.Held {
			if keys.Down(b.Key) {
				in.Hold(b.Action)
			}
			continue
		}
		if keys.JustPressed(b.Key) {
			in.Press(b.Action)
		}
	}
}

// ReadClick picks the selectable under a fresh left click.
func ReadClick(in *game.InputState, storage *ecs.Storage, pr Projection, captured bool) {
	if captured || !inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return
	}
	x, y := ebiten.CursorPosition()
	in.Picked = Pick(storage, pr, float64(x), float64(y))
}

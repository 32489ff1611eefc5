// Package term runs the tower defense world in a terminal: a top-down view
// drawn with tcell and keyboard input fed through a channel.
package term

import (
	"context"

	"github.com/gdamore/tcell/v2"
	"github.com/plus3/towerdefense/ecs"
	"github.com/plus3/towerdefense/game"
)

var runeActions = map[rune]game.Action{
	'w': game.ActionForward,
	's': game.ActionBack,
	'a': game.ActionLeft,
	'd': game.ActionRight,
	' ': game.ActionRise,
	'f': game.ActionFall,
	't': game.ActionSpawnTarget,
	'b': game.ActionBuild,
	'q': game.ActionQuit,
}

var keyActions = map[tcell.Key]game.Action{
	tcell.KeyLeft:   game.ActionYawLeft,
	tcell.KeyRight:  game.ActionYawRight,
	tcell.KeyUp:     game.ActionPitchUp,
	tcell.KeyDown:   game.ActionPitchDown,
	tcell.KeyTab:    game.ActionCycleSelection,
	tcell.KeyEscape: game.ActionQuit,
	tcell.KeyCtrlC:  game.ActionQuit,
}

// KeyAction maps a key event to a game action. Terminals report no key
// releases, so Shift cannot be held; 'f' lowers the camera instead.
func KeyAction(ev *tcell.EventKey) (game.Action, bool) {
	if ev.Key() == tcell.KeyRune {
		r := ev.Rune()
		if r >= 'A' && r <= 'Z' {
			r += 'a' - 'A'
		}
		a, ok := runeActions[r]
		return a, ok
	}
	a, ok := keyActions[ev.Key()]
	return a, ok
}

// Listen polls screen for key events until ctx is done and forwards the
// mapped actions. Actions are dropped when the channel is full.
func Listen(ctx context.Context, screen tcell.Screen, out chan<- game.Action) {
	events := make(chan tcell.Event, 64)
	go pumpEvents(ctx, screen.PollEvent, events)

	for {
		select {
		case <-ctx.Done():
			return
		case ev, ok := <-events:
			if !ok {
				return
			}
			key, isKey := ev.(*tcell.EventKey)
			if !isKey {
				if _, resized := ev.(*tcell.EventResize); resized {
					screen.Sync()
				}
				continue
			}
			if a, ok := KeyAction(key); ok {
				select {
				case out <- a:
				default:
				}
			}
		}
	}
}

// pumpEvents feeds poll's events into events until poll returns nil, which
// closes events, or ctx is done.
func pumpEvents(ctx context.Context, poll func() tcell.Event, events chan<- tcell.Event) {
	for {
		ev := poll()
		if ev == nil {
			close(events)
			return
		}
		select {
		case events <- ev:
		case <-ctx.Done():
			return
		}
	}
}

// KeySystem drains queued actions into InputState at the start of a tick.
// Each key press counts as both pressed and held for that one tick.
type KeySystem struct {
	Input ecs.Singleton[game.InputState]

	Keys   <-chan game.Action
	OnQuit func()
}

func (s *KeySystem) Execute(frame *ecs.UpdateFrame) {
	in := s.Input.Get()
	if in == nil {
		return
	}
	for {
		select {
		case a := <-s.Keys:
			if a == game.ActionQuit && s.OnQuit != nil {
				s.OnQuit()
				continue
			}
			in.Hold(a)
			in.Press(a)
		default:
			return
		}
	}
}

package render

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/plus3/towerdefense/ecs"
	"github.com/plus3/towerdefense/game"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

const controlsHelp = "WASD move  arrows look  Space/Shift up/down  T target  Tab/click select  B build  F1 inspector  Esc quit"

var (
	hudTextColor       = color.RGBA{230, 230, 230, 255}
	hudBackgroundColor = color.RGBA{0, 0, 0, 140}
)

// HUDSystem prints session counters and the control help over the scene.
type HUDSystem struct {
	Screen       ecs.Singleton[Screen]
	Stats        ecs.Singleton[game.Stats]
	Placeholders ecs.Query[struct {
		*game.Placeholder
		*game.Selectable
	}]

	Face font.Face
}

func (s *HUDSystem) Execute(frame *ecs.UpdateFrame) {
	screen := s.Screen.Get()
	stats := s.Stats.Get()
	if screen == nil || screen.Image == nil || stats == nil {
		return
	}
	face := s.Face
	if face == nil {
		face = basicfont.Face7x13
	}

	selected := 0
	for p := range s.Placeholders.Iter() {
		if p.Selected {
			selected++
		}
	}

	lines := HUDLines(stats, selected, s.Placeholders.Len())
	lineHeight := face.Metrics().Height.Ceil() + 2
	dst := screen.Image

	vector.DrawFilledRect(dst, 4, 4, 260, float32(lineHeight*len(lines)+8), hudBackgroundColor, false)
	for i, line := range lines {
		text.Draw(dst, line, face, 10, 4+lineHeight*(i+1), hudTextColor)
	}

	h := dst.Bounds().Dy()
	text.Draw(dst, controlsHelp, face, 10, h-10, hudTextColor)
}

// HUDLines formats the counters shown in the corner of the screen.
func HUDLines(stats *game.Stats, selected, placeholders int) []string {
	return []string{
		fmt.Sprintf("time     %6.1fs", stats.Elapsed.Seconds()),
		fmt.Sprintf("towers   %3d", stats.LiveTowers),
		fmt.Sprintf("targets  %3d  destroyed %d", stats.LiveTargets, stats.TargetsDestroyed),
		fmt.Sprintf("bullets  %3d  fired %d", stats.LiveBullets, stats.ShotsFired),
		fmt.Sprintf("selected %d/%d", selected, placeholders),
	}
}

package term

import (
	"fmt"
	"math"

	"github.com/gdamore/tcell/v2"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/plus3/towerdefense/ecs"
	"github.com/plus3/towerdefense/game"
)

var (
	groundStyle      = tcell.StyleDefault.Foreground(tcell.NewRGBColor(230, 64, 51))
	towerStyle       = tcell.StyleDefault.Foreground(tcell.ColorSilver).Bold(true)
	targetStyle      = tcell.StyleDefault.Foreground(tcell.ColorLightSkyBlue).Bold(true)
	bulletStyle      = tcell.StyleDefault.Foreground(tcell.NewRGBColor(222, 112, 107))
	placeholderStyle = tcell.StyleDefault.Foreground(tcell.ColorGreen)
	selectedStyle    = tcell.StyleDefault.Foreground(tcell.ColorYellow).Reverse(true)
	hudStyle         = tcell.StyleDefault.Foreground(tcell.ColorWhite)
)

// Glyph is how one entity is drawn on the map.
type Glyph struct {
	Rune  rune
	Style tcell.Style
	Layer int
}

// GlyphFor picks the glyph for id from the components it carries.
func GlyphFor(storage *ecs.Storage, id ecs.EntityId) (Glyph, bool) {
	switch {
	case ecs.ReadComponent[game.Bullet](storage, id) != nil:
		return Glyph{'*', bulletStyle, 4}, true
	case ecs.ReadComponent[game.Target](storage, id) != nil:
		return Glyph{'o', targetStyle, 3}, true
	case ecs.ReadComponent[game.Tower](storage, id) != nil:
		return Glyph{'T', towerStyle, 2}, true
	case ecs.ReadComponent[game.Placeholder](storage, id) != nil:
		if s := ecs.ReadComponent[game.Selectable](storage, id); s != nil && s.Selected {
			return Glyph{'+', selectedStyle, 1}, true
		}
		return Glyph{'+', placeholderStyle, 1}, true
	case ecs.ReadComponent[game.Camera](storage, id) != nil:
		return Glyph{'C', hudStyle, 1}, true
	case ecs.ReadComponent[game.PointLight](storage, id) != nil:
		return Glyph{'L', hudStyle.Foreground(tcell.ColorLightYellow), 1}, true
	case ecs.ReadComponent[game.Mesh](storage, id) != nil:
		if m := ecs.ReadComponent[game.Mesh](storage, id); m.Shape == game.MeshCube {
			return Glyph{'#', hudStyle.Foreground(tcell.ColorGray), 0}, true
		}
	}
	return Glyph{}, false
}

// Map projects the XZ plane onto terminal cells, centered on Center with
// CellsPerUnit columns per world unit. Rows are half as dense since
// terminal cells are about twice as tall as wide.
type Map struct {
	Center       mgl64.Vec3
	CellsPerUnit float64
	Width        int
	Height       int
}

// Cell returns the column and row for world position p, if on screen.
func (m Map) Cell(p mgl64.Vec3) (x, y int, ok bool) {
	x = int(math.Round(float64(m.Width)/2 + (p.X()-m.Center.X())*m.CellsPerUnit))
	y = int(math.Round(float64(m.Height)/2 + (p.Z()-m.Center.Z())*m.CellsPerUnit/2))
	return x, y, x >= 0 && y >= 0 && x < m.Width && y < m.Height
}

// RenderSystem draws the world top-down, with a status line at the bottom.
type RenderSystem struct {
	Entities ecs.Query[struct {
		ecs.EntityId
		*game.GlobalTransform
	}]
	Meshes ecs.Query[struct {
		*game.Mesh
		*game.GlobalTransform
	}]
	Stats ecs.Singleton[game.Stats]

	Screen       tcell.Screen
	CellsPerUnit float64

	layers [][]int
}

func (s *RenderSystem) Execute(frame *ecs.UpdateFrame) {
	if s.Screen == nil {
		return
	}
	w, h := s.Screen.Size()
	if w <= 0 || h <= 1 {
		return
	}
	scale := s.CellsPerUnit
	if scale <= 0 {
		scale = 4
	}
	m := Map{CellsPerUnit: scale, Width: w, Height: h - 1}

	s.Screen.Clear()
	s.resetLayers(w, h)

	for mesh := range s.Meshes.Iter() {
		if mesh.Shape != game.MeshPlane {
			continue
		}
		s.fillPlane(m, mesh.Mesh, mesh.GlobalTransform.Translation())
	}

	for e := range s.Entities.Iter() {
		g, ok := GlyphFor(frame.Storage, e.EntityId)
		if !ok {
			continue
		}
		x, y, visible := m.Cell(e.GlobalTransform.Translation())
		if !visible || s.layers[y][x] > g.Layer {
			continue
		}
		s.layers[y][x] = g.Layer
		s.Screen.SetContent(x, y, g.Rune, nil, g.Style)
	}

	if stats := s.Stats.Get(); stats != nil {
		drawText(s.Screen, 0, h-1, StatusLine(stats), hudStyle)
	}
	s.Screen.Show()
}

func (s *RenderSystem) resetLayers(w, h int) {
	if len(s.layers) != h || (h > 0 && len(s.layers[0]) != w) {
		s.layers = make([][]int, h)
		for i := range s.layers {
			s.layers[i] = make([]int, w)
		}
		return
	}
	for _, row := range s.layers {
		clear(row)
	}
}

func (s *RenderSystem) fillPlane(m Map, mesh *game.Mesh, center mgl64.Vec3) {
	half := mesh.Size / 2
	x0, y0, _ := m.Cell(center.Sub(mgl64.Vec3{half, 0, half}))
	x1, y1, _ := m.Cell(center.Add(mgl64.Vec3{half, 0, half}))
	for y := max(y0, 0); y <= min(y1, m.Height-1); y++ {
		for x := max(x0, 0); x <= min(x1, m.Width-1); x++ {
			s.Screen.SetContent(x, y, '.', nil, groundStyle)
		}
	}
}

// StatusLine summarizes the session in one line.
func StatusLine(stats *game.Stats) string {
	return fmt.Sprintf("t=%.1fs towers=%d targets=%d bullets=%d fired=%d destroyed=%d  [wasd/arrows t b tab q]",
		stats.Elapsed.Seconds(), stats.LiveTowers, stats.LiveTargets, stats.LiveBullets,
		stats.ShotsFired, stats.TargetsDestroyed)
}

func drawText(screen tcell.Screen, x, y int, text string, style tcell.Style) {
	for _, r := range text {
		screen.SetContent(x, y, r, nil, style)
		x++
	}
}

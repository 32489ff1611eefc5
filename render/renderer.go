package render

import (
	"image/color"
	"sort"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/plus3/towerdefense/ecs"
	"github.com/plus3/towerdefense/game"
)

// Screen is the singleton holding the image RenderSystem draws into.
type Screen struct {
	Image *ebiten.Image
}

var (
	selectedColor = color.RGBA{255, 220, 60, 255}
	lightColor    = color.RGBA{255, 250, 200, 255}
)

type drawable struct {
	mesh     *game.Mesh
	global   *game.GlobalTransform
	selected bool
	depth    float64
}

// RenderSystem draws every mesh as a wireframe from the camera's point of
// view, far to near, plus a marker for each light.
type RenderSystem struct {
	Screen ecs.Singleton[Screen]
	Clear  ecs.Singleton[game.ClearColor]

	Meshes ecs.Query[struct {
		*game.Mesh
		*game.GlobalTransform
		Selectable *game.Selectable `ecs:"optional"`
	}]
	Lights ecs.Query[struct {
		*game.PointLight
		*game.GlobalTransform
	}]

	drawables []drawable
}

func (s *RenderSystem) Execute(frame *ecs.UpdateFrame) {
	screen := s.Screen.Get()
	if screen == nil || screen.Image == nil {
		return
	}
	dst := screen.Image

	if bg := s.Clear.Get(); bg != nil {
		dst.Fill(bg.Color)
	}

	bounds := dst.Bounds()
	pr, ok := FindCamera(frame.Storage, bounds.Dx(), bounds.Dy())
	if !ok {
		return
	}

	s.drawables = s.drawables[:0]
	for m := range s.Meshes.Iter() {
		_, _, depth, visible := pr.Project(m.GlobalTransform.Translation())
		if !visible && m.Shape != game.MeshPlane {
			continue
		}
		s.drawables = append(s.drawables, drawable{
			mesh:     m.Mesh,
			global:   m.GlobalTransform,
			selected: m.Selectable != nil && m.Selectable.Selected,
			depth:    depth,
		})
	}
	sort.SliceStable(s.drawables, func(i, j int) bool {
		return s.drawables[i].depth > s.drawables[j].depth
	})

	for _, d := range s.drawables {
		clr := d.mesh.Color
		width := float32(1.5)
		if d.selected {
			clr = selectedColor
			width = 3
		}
		for _, e := range Edges(*d.mesh, *d.global) {
			x0, y0, x1, y1, ok := pr.Segment(e[0], e[1])
			if !ok {
				continue
			}
			vector.StrokeLine(dst, float32(x0), float32(y0), float32(x1), float32(y1), width, clr, true)
		}
	}

	for l := range s.Lights.Iter() {
		x, y, _, ok := pr.Project(l.GlobalTransform.Translation())
		if !ok {
			continue
		}
		vector.DrawFilledCircle(dst, float32(x), float32(y), 4, lightColor, true)
	}
}

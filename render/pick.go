package render

import (
	"math"

	"github.com/plus3/towerdefense/ecs"
	"github.com/plus3/towerdefense/game"
)

// minPickRadius keeps far away or tiny meshes clickable.
const minPickRadius = 10.0

// Pick returns the selectable entity under screen position (x, y), preferring
// the one nearest the camera, or zero when nothing is hit.
func Pick(storage *ecs.Storage, pr Projection, x, y float64) ecs.EntityId {
	var (
		hit   ecs.EntityId
		depth = math.Inf(1)
	)
	for c := range ecs.NewView[struct {
		ecs.EntityId
		*game.Selectable
		*game.Mesh
		*game.GlobalTransform
	}](storage).Iter() {
		center := c.GlobalTransform.Translation()
		sx, sy, d, ok := pr.Project(center)
		if !ok {
			continue
		}
		radius := screenRadius(pr, c.Mesh, c.GlobalTransform, sx, sy)
		if math.Hypot(x-sx, y-sy) > radius || d >= depth {
			continue
		}
		hit, depth = c.EntityId, d
	}
	return hit
}

// screenRadius is the largest distance from the projected center to a
// projected corner of the mesh.
func screenRadius(pr Projection, mesh *game.Mesh, global *game.GlobalTransform, cx, cy float64) float64 {
	r := minPickRadius
	for _, e := range Edges(*mesh, *global) {
		for _, p := range e {
			if px, py, _, ok := pr.Project(p); ok {
				r = math.Max(r, math.Hypot(px-cx, py-cy))
			}
		}
	}
	return r
}

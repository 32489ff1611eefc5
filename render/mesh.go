package render

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/plus3/towerdefense/game"
)

var cubeCorners = [8]mgl64.Vec3{
	{-1, -1, -1}, {1, -1, -1}, {1, 1, -1}, {-1, 1, -1},
	{-1, -1, 1}, {1, -1, 1}, {1, 1, 1}, {-1, 1, 1},
}

var cubeEdges = [12][2]int{
	{0, 1}, {1, 2}, {2, 3}, {3, 0},
	{4, 5}, {5, 6}, {6, 7}, {7, 4},
	{0, 4}, {1, 5}, {2, 6}, {3, 7},
}

const planeDivisions = 5

// Edges returns the world-space line segments outlining mesh under global.
func Edges(mesh game.Mesh, global game.GlobalTransform) [][2]mgl64.Vec3 {
	half := mesh.Size / 2
	at := func(p mgl64.Vec3) mgl64.Vec3 {
		return global.Matrix.Mul4x1(p.Mul(half).Vec4(1)).Vec3()
	}

	switch mesh.Shape {
	case game.MeshPlane:
		edges := make([][2]mgl64.Vec3, 0, 2*(planeDivisions+1))
		for i := 0; i <= planeDivisions; i++ {
			f := -1 + 2*float64(i)/planeDivisions
			edges = append(edges,
				[2]mgl64.Vec3{at(mgl64.Vec3{f, 0, -1}), at(mgl64.Vec3{f, 0, 1})},
				[2]mgl64.Vec3{at(mgl64.Vec3{-1, 0, f}), at(mgl64.Vec3{1, 0, f})},
			)
		}
		return edges
	default:
		var corners [8]mgl64.Vec3
		for i, c := range cubeCorners {
			corners[i] = at(c)
		}
		edges := make([][2]mgl64.Vec3, len(cubeEdges))
		for i, e := range cubeEdges {
			edges[i] = [2]mgl64.Vec3{corners[e[0]], corners[e[1]]}
		}
		return edges
	}
}

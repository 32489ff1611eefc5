// Package render draws the tower defense world with ebiten: a perspective
// wireframe of every mesh, a HUD and mouse picking.
package render

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/plus3/towerdefense/ecs"
	"github.com/plus3/towerdefense/game"
)

// Projection maps world positions onto a screen of Width x Height pixels.
type Projection struct {
	ViewProj mgl64.Mat4
	Eye      mgl64.Vec3
	Width    int
	Height   int
}

// NewProjection builds the projection for a camera sitting at global.
func NewProjection(cam game.Camera, global game.GlobalTransform, width, height int) Projection {
	near, far := cam.Near, cam.Far
	if near <= 0 {
		near = 0.1
	}
	if far <= near {
		far = near + 100
	}
	fov := cam.FovY
	if fov <= 0 {
		fov = mgl64.DegToRad(45)
	}
	aspect := 1.0
	if height > 0 {
		aspect = float64(width) / float64(height)
	}

	view := global.Matrix.Inv()
	proj := mgl64.Perspective(fov, aspect, near, far)
	return Projection{
		ViewProj: proj.Mul4(view),
		Eye:      global.Translation(),
		Width:    width,
		Height:   height,
	}
}

// FindCamera returns the projection of the first camera in storage.
func FindCamera(storage *ecs.Storage, width, height int) (Projection, bool) {
	for c := range ecs.NewView[struct {
		*game.Camera
		*game.GlobalTransform
	}](storage).Iter() {
		return NewProjection(*c.Camera, *c.GlobalTransform, width, height), true
	}
	return Projection{}, false
}

// Project returns the screen position of p and its clip-space depth. ok is
// false when p is behind the camera.
func (pr Projection) Project(p mgl64.Vec3) (x, y, depth float64, ok bool) {
	clip := pr.ViewProj.Mul4x1(p.Vec4(1))
	if clip.W() <= 1e-6 {
		return 0, 0, 0, false
	}
	ndc := clip.Vec3().Mul(1 / clip.W())
	x = (ndc.X() + 1) / 2 * float64(pr.Width)
	y = (1 - ndc.Y()) / 2 * float64(pr.Height)
	return x, y, clip.W(), true
}

// Segment clips the world segment a-b against the near plane and projects it.
func (pr Projection) Segment(a, b mgl64.Vec3) (x0, y0, x1, y1 float64, ok bool) {
	ca := pr.ViewProj.Mul4x1(a.Vec4(1))
	cb := pr.ViewProj.Mul4x1(b.Vec4(1))
	const near = 1e-3

	if ca.W() < near && cb.W() < near {
		return 0, 0, 0, 0, false
	}
	if ca.W() < near {
		ca = ca.Add(cb.Sub(ca).Mul((near - ca.W()) / (cb.W() - ca.W())))
	} else if cb.W() < near {
		cb = cb.Add(ca.Sub(cb).Mul((near - cb.W()) / (ca.W() - cb.W())))
	}

	toScreen := func(c mgl64.Vec4) (float64, float64) {
		ndc := c.Vec3().Mul(1 / c.W())
		return (ndc.X() + 1) / 2 * float64(pr.Width), (1 - ndc.Y()) / 2 * float64(pr.Height)
	}
	x0, y0 = toScreen(ca)
	x1, y1 = toScreen(cb)
	return x0, y0, x1, y1, true
}

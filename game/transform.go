package game

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Transform is an entity's placement relative to its parent, or to the world
// for root entities. A zero Rotation is treated as identity and a zero Scale
// as one, so partially filled literals behave.
//
//ecs:component
type Transform struct {
	Translation mgl64.Vec3
	Rotation    mgl64.Quat
	Scale       mgl64.Vec3
}

// GlobalTransform is the world matrix, rewritten by TransformPropagateSystem.
//
//ecs:component
type GlobalTransform struct {
	Matrix mgl64.Mat4
}

func NewTransform(x, y, z float64) Transform {
	return Transform{
		Translation: mgl64.Vec3{x, y, z},
		Rotation:    mgl64.QuatIdent(),
		Scale:       mgl64.Vec3{1, 1, 1},
	}
}

func TransformFromTranslation(v mgl64.Vec3) Transform {
	return NewTransform(v.X(), v.Y(), v.Z())
}

func (t Transform) rotation() mgl64.Quat {
	if t.Rotation.W == 0 && t.Rotation.V == (mgl64.Vec3{}) {
		return mgl64.QuatIdent()
	}
	return t.Rotation
}

func (t Transform) scale() mgl64.Vec3 {
	if t.Scale == (mgl64.Vec3{}) {
		return mgl64.Vec3{1, 1, 1}
	}
	return t.Scale
}

// Matrix is translate * rotate * scale.
func (t Transform) Matrix() mgl64.Mat4 {
	s := t.scale()
	return mgl64.Translate3D(t.Translation.Elem()).
		Mul4(t.rotation().Mat4()).
		Mul4(mgl64.Scale3D(s.Elem()))
}

// LookingAt returns t rotated so that its forward axis (-Z) points at target
// with up kept as close to the given up vector as possible.
func (t Transform) LookingAt(target, up mgl64.Vec3) Transform {
	forward := target.Sub(t.Translation)
	if forward.Len() < 1e-9 {
		return t
	}
	forward = forward.Normalize()

	right := forward.Cross(up)
	if right.Len() < 1e-9 {
		// up is parallel to the view direction, any perpendicular will do
		right = forward.Cross(mgl64.Vec3{0, 0, 1})
	}
	right = right.Normalize()
	trueUp := right.Cross(forward)

	basis := mgl64.Mat3FromCols(right, trueUp, forward.Mul(-1))
	t.Rotation = mgl64.Mat4ToQuat(basis.Mat4()).Normalize()
	return t
}

// Forward is the local -Z axis in parent space.
func (t Transform) Forward() mgl64.Vec3 {
	return t.rotation().Rotate(mgl64.Vec3{0, 0, -1})
}

// Left is the local -X axis in parent space.
func (t Transform) Left() mgl64.Vec3 {
	return t.rotation().Rotate(mgl64.Vec3{-1, 0, 0})
}

// Up is the local +Y axis in parent space.
func (t Transform) Up() mgl64.Vec3 {
	return t.rotation().Rotate(mgl64.Vec3{0, 1, 0})
}

// RotateWorld applies q in parent space, before the current rotation.
func (t *Transform) RotateWorld(q mgl64.Quat) {
	t.Rotation = q.Mul(t.rotation()).Normalize()
}

// RotateLocal applies q around the transform's own axes.
func (t *Transform) RotateLocal(q mgl64.Quat) {
	t.Rotation = t.rotation().Mul(q).Normalize()
}

func GlobalFromTransform(t Transform) GlobalTransform {
	return GlobalTransform{Matrix: t.Matrix()}
}

// Translation is the world position.
func (g GlobalTransform) Translation() mgl64.Vec3 {
	return g.Matrix.Col(3).Vec3()
}

// Mul composes a child's local transform under g.
func (g GlobalTransform) Mul(local Transform) GlobalTransform {
	return GlobalTransform{Matrix: g.Matrix.Mul4(local.Matrix())}
}

// flatten drops the vertical component and normalizes. ok is false when v was
// vertical, so nothing is left to normalize.
func flatten(v mgl64.Vec3) (mgl64.Vec3, bool) {
	v[1] = 0
	l := v.Len()
	if l < 1e-9 || math.IsNaN(l) {
		return mgl64.Vec3{}, false
	}
	return v.Mul(1 / l), true
}

package skill

import "math"

// Vector3 is a world-space position or direction.
type Vector3 struct {
	X, Y, Z float64
}

// Add returns v + o.
func (v Vector3) Add(o Vector3) Vector3 {
	return Vector3{v.X + o.X, v.Y + o.Y, v.Z + o.Z}
}

// Sub returns v - o.
func (v Vector3) Sub(o Vector3) Vector3 {
	return Vector3{v.X - o.X, v.Y - o.Y, v.Z - o.Z}
}

// Scale returns v * s.
func (v Vector3) Scale(s float64) Vector3 {
	return Vector3{v.X * s, v.Y * s, v.Z * s}
}

// Length returns the euclidean norm.
func (v Vector3) Length() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z)
}

// Normalize returns the unit vector, or +X for a zero vector.
func (v Vector3) Normalize() Vector3 {
	l := v.Length()
	if l == 0 {
		return Vector3{X: 1}
	}
	return v.Scale(1 / l)
}

// DistanceTo returns |v - o|.
func (v Vector3) DistanceTo(o Vector3) float64 {
	return v.Sub(o).Length()
}

// TargetID identifies an entity owned by the targeting collaborator.
type TargetID uint32

// EffectHandle identifies a visual effect owned by the rendering
// collaborator. Zero means no effect.
type EffectHandle uint64

// Renderer is the external rendering collaborator. The core never inspects
// effect internals; it only holds handles and requests disposal.
type Renderer interface {
	CreateVisualEffect(inst *Instance, pos, dir Vector3) (EffectHandle, error)
	UpdateVisualEffect(h EffectHandle, delta float64)
	DisposeVisualEffect(h EffectHandle)
}

// Targeting is the external hit-detection/world collaborator.
type Targeting interface {
	FindNearestTarget(pos Vector3, maxRange float64) (TargetID, bool)
	Position(id TargetID) Vector3
	IsDead(id TargetID) bool
}

// Notifier receives fire-and-forget player-facing messages.
type Notifier interface {
	Notify(message string)
}

// Mover is the caster's spatial state. Teleport-type skills reposition the
// caster through it.
type Mover interface {
	Position() Vector3
	SetPosition(v Vector3)
	Facing() Vector3
}

package skill

import "github.com/takkar/brimstone/internal/data"

// projectileSpeed is world units per second for ranged/multi projectiles.
const projectileSpeed = 14.0

// projectileStrategy moves the instance origin along its direction each
// tick, so the renderer draws the projectile where the cast logically is.
type projectileStrategy struct {
	kind data.SkillType
}

func (s projectileStrategy) Type() data.SkillType { return s.kind }

func (s projectileStrategy) Spawn(r Renderer, inst *Instance) (EffectHandle, error) {
	return r.CreateVisualEffect(inst, inst.Origin, inst.Direction)
}

func (s projectileStrategy) Advance(r Renderer, inst *Instance, delta float64) {
	inst.Origin = inst.Origin.Add(inst.Direction.Scale(projectileSpeed * delta))
	if h, ok := inst.Handle(); ok {
		r.UpdateVisualEffect(h, delta)
	}
}

func init() {
	RegisterStrategy(projectileStrategy{kind: data.SkillRanged})
	RegisterStrategy(projectileStrategy{kind: data.SkillMulti})
}

package skill

import "github.com/takkar/brimstone/internal/data"

// areaStrategy keeps the effect centered on the cast origin for its whole
// duration (frost nova and similar caster-centered zones).
type areaStrategy struct{}

func (areaStrategy) Type() data.SkillType { return data.SkillAoe }

func (areaStrategy) Spawn(r Renderer, inst *Instance) (EffectHandle, error) {
	return r.CreateVisualEffect(inst, inst.Origin, inst.Direction)
}

func (areaStrategy) Advance(r Renderer, inst *Instance, delta float64) {
	if h, ok := inst.Handle(); ok {
		r.UpdateVisualEffect(h, delta)
	}
}

// waveStrategy expands WaveRadius from zero to the definition's radius over
// the instance lifetime, a ring rolling outward from the caster.
type waveStrategy struct{}

func (waveStrategy) Type() data.SkillType { return data.SkillWave }

func (waveStrategy) Spawn(r Renderer, inst *Instance) (EffectHandle, error) {
	inst.WaveRadius = 0
	return r.CreateVisualEffect(inst, inst.Origin, inst.Direction)
}

func (waveStrategy) Advance(r Renderer, inst *Instance, delta float64) {
	inst.WaveRadius = inst.Def.Radius * inst.Progress()
	if h, ok := inst.Handle(); ok {
		r.UpdateVisualEffect(h, delta)
	}
}

func init() {
	RegisterStrategy(areaStrategy{})
	RegisterStrategy(waveStrategy{})
}

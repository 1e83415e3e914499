package skill

import "github.com/takkar/brimstone/internal/data"

// VisualEffectStrategy decides how one skill-type tag drives the rendering
// collaborator: what to spawn for a new cast and how its visual state
// advances each tick. One implementation per type tag, selected through the
// catalog entry's type field.
type VisualEffectStrategy interface {
	Type() data.SkillType
	Spawn(r Renderer, inst *Instance) (EffectHandle, error)
	Advance(r Renderer, inst *Instance, delta float64)
}

// strategyRegistry maps skill-type tag → strategy.
// Populated by init() in the strategy implementation files.
var strategyRegistry = map[data.SkillType]VisualEffectStrategy{}

// RegisterStrategy installs the strategy for a skill-type tag.
func RegisterStrategy(s VisualEffectStrategy) {
	strategyRegistry[s.Type()] = s
}

// strategyFor returns the strategy for a type tag, falling back to a static
// effect for unregistered tags.
func strategyFor(t data.SkillType) VisualEffectStrategy {
	if s, ok := strategyRegistry[t]; ok {
		return s
	}
	return staticStrategy{kind: t}
}

// staticStrategy spawns an effect at the cast origin and leaves it in place.
// Shared by the tags whose motion is entirely renderer-side.
type staticStrategy struct {
	kind data.SkillType
}

func (s staticStrategy) Type() data.SkillType { return s.kind }

func (s staticStrategy) Spawn(r Renderer, inst *Instance) (EffectHandle, error) {
	return r.CreateVisualEffect(inst, inst.Origin, inst.Direction)
}

func (s staticStrategy) Advance(r Renderer, inst *Instance, delta float64) {
	if h, ok := inst.Handle(); ok {
		r.UpdateVisualEffect(h, delta)
	}
}

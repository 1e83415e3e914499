package skill

import "github.com/takkar/brimstone/internal/data"

// Instance is one live cast of a skill: a runtime copy of the catalog
// definition plus its own elapsed time and visual handle. Multiple
// simultaneous instances of the same skill may coexist; the catalog
// cooldown only gates new casts.
type Instance struct {
	ID  uint64
	Def data.SkillDef

	Elapsed   float64
	Origin    Vector3
	Direction Vector3

	Target    TargetID
	HasTarget bool

	// WaveRadius is the current radius of an expanding wave effect,
	// advanced by the wave visual strategy.
	WaveRadius float64

	handle    EffectHandle
	hasHandle bool
}

// Expired reports whether the instance has outlived its duration.
func (i *Instance) Expired() bool {
	return i.Elapsed >= i.Def.Duration
}

// Progress returns elapsed/duration clamped to [0,1].
func (i *Instance) Progress() float64 {
	if i.Def.Duration <= 0 {
		return 1
	}
	p := i.Elapsed / i.Def.Duration
	if p > 1 {
		return 1
	}
	return p
}

// Handle returns the paired visual effect handle, if one was created.
func (i *Instance) Handle() (EffectHandle, bool) {
	return i.handle, i.hasHandle
}

package skill

import "github.com/takkar/brimstone/internal/data"

// The remaining type tags share the static placement behavior; their motion
// lives on the renderer side. Buff auras sit on the caster, summons stand
// where they appeared, marks pin the marked point, and teleports flash at
// the destination.
func init() {
	RegisterStrategy(staticStrategy{kind: data.SkillBuff})
	RegisterStrategy(staticStrategy{kind: data.SkillSummon})
	RegisterStrategy(staticStrategy{kind: data.SkillMark})
	RegisterStrategy(staticStrategy{kind: data.SkillTeleport})
}

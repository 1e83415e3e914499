package skill

import (
	"github.com/takkar/brimstone/internal/data"
)

// Catalog tracks one cooldown timer per skill identity. The timer gates new
// casts of that skill; it is independent of any in-flight cast's lifetime.
type Catalog struct {
	cooldowns map[string]float64 // skill id → seconds remaining
}

// NewCatalog returns a catalog with every cooldown ready.
func NewCatalog() *Catalog {
	return &Catalog{cooldowns: make(map[string]float64)}
}

// Ready reports whether a skill's cooldown has elapsed.
func (c *Catalog) Ready(skillID string) bool {
	return c.cooldowns[skillID] <= 0
}

// Cooldown returns the seconds remaining on a skill's cooldown, 0 if ready.
func (c *Catalog) Cooldown(skillID string) float64 {
	cd := c.cooldowns[skillID]
	if cd < 0 {
		return 0
	}
	return cd
}

// startCooldown arms the shared timer for a skill.
func (c *Catalog) startCooldown(skillID string, seconds float64) {
	if seconds <= 0 {
		return
	}
	c.cooldowns[skillID] = seconds
}

// resetCooldown clears the timer (teleport-miss refund path).
func (c *Catalog) resetCooldown(skillID string) {
	delete(c.cooldowns, skillID)
}

// Tick advances every cooldown timer, flooring at zero.
func (c *Catalog) Tick(delta float64) {
	if delta <= 0 {
		return
	}
	for id, cd := range c.cooldowns {
		cd -= delta
		if cd <= 0 {
			delete(c.cooldowns, id)
		} else {
			c.cooldowns[id] = cd
		}
	}
}

// Defs returns the static definitions of every skill in the catalog.
func (c *Catalog) Defs() []data.SkillDef {
	ids := data.SkillIDs()
	defs := make([]data.SkillDef, 0, len(ids))
	for _, id := range ids {
		if def, ok := data.GetSkillDef(id); ok {
			defs = append(defs, def)
		}
	}
	return defs
}

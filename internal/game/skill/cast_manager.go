package skill

import (
	"log/slog"

	"github.com/takkar/brimstone/internal/data"
	"github.com/takkar/brimstone/internal/game/buff"
	"github.com/takkar/brimstone/internal/model"
)

// CastManager owns the skill catalog's cooldown timers and the set of live
// cast instances for one caster. Collaborators are injected so the core
// never depends on rendering or world internals.
//
// Not safe for concurrent use: driven from the game loop.
type CastManager struct {
	catalog   *Catalog
	active    []*Instance
	renderer  Renderer
	targeting Targeting
	notifier  Notifier

	// boosts receives buff-type skill effects. Optional.
	boosts *buff.ModifierSet

	nextID uint64
}

// NewCastManager creates a cast manager with injected collaborators.
func NewCastManager(renderer Renderer, targeting Targeting, notifier Notifier) *CastManager {
	return &CastManager{
		catalog:   NewCatalog(),
		renderer:  renderer,
		targeting: targeting,
		notifier:  notifier,
	}
}

// Catalog exposes the shared cooldown state (HUD display).
func (cm *CastManager) Catalog() *Catalog { return cm.catalog }

// BindBoosts routes buff-type skills into the given modifier set.
func (cm *CastManager) BindBoosts(set *buff.ModifierSet) { cm.boosts = set }

// Cast attempts to cast a skill. The gate order is fixed: dead check,
// cooldown, mana. On success mana is deducted, the catalog cooldown starts,
// and a new independent instance is spawned with a visual effect handle.
//
// Teleport-type skills are the one rollback case: if no target is in range
// the cast fails, mana is refunded, and the cooldown is reset to zero.
// Other skill types succeed without a target, falling back to the caster's
// facing and the default sweep radius.
func (cm *CastManager) Cast(skillID string, caster *model.StatBlock, mover Mover) (*Instance, error) {
	def, ok := data.GetSkillDef(skillID)
	if !ok {
		return nil, castErr(CodeInvalidSkillID, skillID)
	}
	if caster.IsDead() {
		return nil, castErr(CodeCasterDead, skillID)
	}
	if !cm.catalog.Ready(skillID) {
		return nil, castErr(CodeOnCooldown, skillID)
	}
	if caster.Mana() < def.ManaCost {
		return nil, castErr(CodeInsufficientMana, skillID)
	}

	caster.SpendMana(def.ManaCost)
	cm.catalog.startCooldown(skillID, def.Cooldown)

	pos := mover.Position()
	searchRange := def.Range
	if searchRange <= 0 {
		searchRange = data.Combat().DefaultSweepRadius
	}

	target, found := cm.targeting.FindNearestTarget(pos, searchRange)
	if found && cm.targeting.IsDead(target) {
		found = false
	}

	if def.Type == data.SkillTeleport && !found {
		// Roll back the partial mutation. Only teleport-type skills refund
		// on a miss; every other type fires into empty space.
		caster.SetMana(caster.Mana() + def.ManaCost)
		cm.catalog.resetCooldown(skillID)
		if cm.notifier != nil {
			cm.notifier.Notify(def.Name + ": no target in range")
		}
		return nil, castErr(CodeNoTargetFound, skillID)
	}

	dir := mover.Facing().Normalize()
	if found {
		dir = cm.targeting.Position(target).Sub(pos).Normalize()
	}

	if def.Type == data.SkillTeleport {
		cm.teleportCaster(mover, cm.targeting.Position(target))
		pos = mover.Position()
	}

	if def.Type == data.SkillBuff && def.BuffStat != "" {
		if cm.boosts == nil {
			slog.Warn("buff skill cast without a bound modifier set", "skill", skillID)
		} else if err := cm.boosts.AddBoost(def.BuffStat, def.BuffAmount, def.Duration); err != nil {
			slog.Warn("buff skill boost rejected", "skill", skillID, "error", err)
		}
	}

	cm.nextID++
	inst := &Instance{
		ID:        cm.nextID,
		Def:       def,
		Origin:    pos,
		Direction: dir,
		Target:    target,
		HasTarget: found,
	}

	if handle, err := strategyFor(def.Type).Spawn(cm.renderer, inst); err != nil {
		// Visual failures are cosmetic: the cast stands.
		slog.Warn("visual effect creation failed", "skill", skillID, "error", err)
	} else if handle != 0 {
		inst.handle = handle
		inst.hasHandle = true
	}

	cm.active = append(cm.active, inst)

	slog.Debug("skill cast",
		"skill", def.Name,
		"type", def.Type,
		"instance", inst.ID,
		"target", target,
		"hasTarget", found,
		"cooldown", def.Cooldown)
	return inst, nil
}

// teleportCaster moves the caster toward targetPos, stopping short of the
// melee range so the teleport never overshoots into the target.
func (cm *CastManager) teleportCaster(mover Mover, targetPos Vector3) {
	pos := mover.Position()
	melee := data.Combat().MeleeRange
	dist := pos.DistanceTo(targetPos)
	if dist <= melee {
		return
	}
	dir := targetPos.Sub(pos).Normalize()
	mover.SetPosition(targetPos.Sub(dir.Scale(melee)))
}

// Update advances every live instance and the shared cooldowns. Expired
// instances have their visual handle disposed before removal, so the
// rendering collaborator never holds an orphaned effect.
func (cm *CastManager) Update(delta float64) {
	if delta > 0 {
		n := 0
		for _, inst := range cm.active {
			inst.Elapsed += delta
			if inst.Expired() {
				cm.dispose(inst)
				continue
			}
			strategyFor(inst.Def.Type).Advance(cm.renderer, inst, delta)
			cm.active[n] = inst
			n++
		}
		cm.active = cm.active[:n]
	}
	cm.catalog.Tick(delta)
}

// CancelAll removes every live instance, disposing visual handles first.
func (cm *CastManager) CancelAll() {
	for _, inst := range cm.active {
		cm.dispose(inst)
	}
	cm.active = cm.active[:0]
}

func (cm *CastManager) dispose(inst *Instance) {
	if inst.hasHandle {
		cm.renderer.DisposeVisualEffect(inst.handle)
		inst.hasHandle = false
	}
}

// Active returns a copy of the live instance list.
func (cm *CastManager) Active() []*Instance {
	out := make([]*Instance, len(cm.active))
	copy(out, cm.active)
	return out
}

// InstanceCount returns how many live instances of one skill exist.
func (cm *CastManager) InstanceCount(skillID string) int {
	n := 0
	for _, inst := range cm.active {
		if inst.Def.ID == skillID {
			n++
		}
	}
	return n
}

package combat

import (
	"fmt"
	"log/slog"
	"math"

	"github.com/takkar/brimstone/internal/data"
	"github.com/takkar/brimstone/internal/model"
)

// Notifier receives fire-and-forget player-facing combat messages.
type Notifier interface {
	Notify(message string)
}

// Resolver ties damage application, experience award, and the death/revive
// transition together. Hit detection itself is external: callers hand the
// resolver raw damage for targets the collaborator already determined were
// hit.
type Resolver struct {
	notifier Notifier
}

// NewResolver creates a resolver. notifier may be nil.
func NewResolver(notifier Notifier) *Resolver {
	return &Resolver{notifier: notifier}
}

// TakeDamage applies raw damage to a defender behind their equipment's
// damage reduction. Health clamps at zero and the death transition fires
// exactly once. Returns the damage actually dealt.
func (r *Resolver) TakeDamage(defender *model.StatBlock, equipment *model.EquipmentSet, raw float64) float64 {
	if defender.IsDead() {
		return 0
	}
	if math.IsNaN(raw) || math.IsInf(raw, 0) || raw <= 0 {
		return 0
	}

	reduction := 0.0
	if equipment != nil {
		reduction = equipment.DamageReduction()
	}
	actual := raw * (1 - reduction)

	defender.SetHealth(defender.Health() - actual)
	if defender.Health() <= 0 {
		r.handleDeath(defender)
	}

	slog.Debug("damage taken", "raw", raw, "reduction", reduction, "actual", actual, "health", defender.Health())
	return actual
}

// TakeTrueDamage applies damage that ignores equipment (burn and poison
// ticks). Same clamping and death semantics as TakeDamage.
func (r *Resolver) TakeTrueDamage(defender *model.StatBlock, raw float64) float64 {
	return r.TakeDamage(defender, nil, raw)
}

// ResolveHit applies an attacker's raw damage to a target the hit-detection
// collaborator reported as struck. Returns the applied damage and whether
// this hit killed the target.
func (r *Resolver) ResolveHit(attacker, target *model.StatBlock, targetEquipment *model.EquipmentSet, raw float64) (applied float64, killed bool) {
	wasDead := target.IsDead()
	applied = r.TakeDamage(target, targetEquipment, raw)
	return applied, !wasDead && target.IsDead()
}

// PunchDamage computes the next melee punch's damage for an attacker:
// attack power scaled by the current combo step's multiplier. ok is false
// when the punch cooldown has not elapsed.
func (r *Resolver) PunchDamage(attacker *model.StatBlock, combo *ComboController) (damage float64, ok bool) {
	mult, ok := combo.Punch()
	if !ok {
		return 0, false
	}
	return attacker.AttackPower() * mult, true
}

// AwardKill grants the killer an enemy's experience reward, scaled by the
// killer's current world tier. Level-ups are announced through the
// notifier. Returns the experience awarded.
func (r *Resolver) AwardKill(killer *model.StatBlock, enemy data.EnemyTemplate) int {
	tier := data.TierForLevel(killer.Level())
	award := int(math.Floor(float64(enemy.Experience) * tier.ExperienceMult))
	if award <= 0 {
		return 0
	}

	oldLevel := killer.Level()
	newLevel := killer.AddExperience(award)

	slog.Info("kill rewarded",
		"enemy", enemy.Name,
		"experience", award,
		"tier", tier.Name)

	if newLevel > 0 {
		r.notify(fmt.Sprintf("Level up! You reached level %d", newLevel))
		slog.Info("player leveled up", "oldLevel", oldLevel, "newLevel", newLevel)
	}
	return award
}

// Revive clears the dead state, restoring the configured fraction of
// health and mana.
func (r *Resolver) Revive(s *model.StatBlock) {
	if !s.IsDead() {
		return
	}
	s.Revive(data.Combat().ReviveFraction)
	r.notify("You have been revived")
	slog.Info("revived", "health", s.Health(), "mana", s.Mana())
}

func (r *Resolver) handleDeath(s *model.StatBlock) {
	s.MarkDead()
	r.notify("You died")
	slog.Info("death", "level", s.Level())
}

func (r *Resolver) notify(msg string) {
	if r.notifier != nil {
		r.notifier.Notify(msg)
	}
}

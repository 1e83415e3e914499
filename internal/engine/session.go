// Package engine owns the per-tick update ordering for one character and
// the fixed-step loop that drives it. All combat subsystems are advanced in
// a stable order so a freshly expired slow or boost never leaks into the
// same frame's movement or regeneration.
package engine

import (
	"fmt"

	"github.com/takkar/brimstone/internal/data"
	"github.com/takkar/brimstone/internal/game/buff"
	"github.com/takkar/brimstone/internal/game/combat"
	"github.com/takkar/brimstone/internal/game/skill"
	"github.com/takkar/brimstone/internal/game/status"
	"github.com/takkar/brimstone/internal/model"
)

// Session bundles one player character's combat state: stats, equipment,
// temporary modifiers, status effects, live casts, and the melee combo.
type Session struct {
	Stats     *model.StatBlock
	Equipment *model.EquipmentSet
	Boosts    *buff.ModifierSet
	Status    *status.Tracker
	Casts     *skill.CastManager
	Combo     *combat.ComboController
	Resolver  *combat.Resolver

	mover skill.Mover
}

// NewSession wires a full combat session for a fresh character. The
// collaborators come from outside the core; mover is the character's
// spatial state.
func NewSession(stats *model.StatBlock, mover skill.Mover, renderer skill.Renderer, targeting skill.Targeting, notifier skill.Notifier) *Session {
	s := &Session{
		Stats:     stats,
		Equipment: model.NewEquipmentSet(),
		Boosts:    buff.NewModifierSet(stats),
		Status:    status.NewTracker(stats),
		Casts:     skill.NewCastManager(renderer, targeting, notifier),
		Combo:     combat.NewComboController(data.Combat()),
		Resolver:  combat.NewResolver(notifier),
		mover:     mover,
	}
	s.Casts.BindBoosts(s.Boosts)
	// DOT ticks go through the resolver so burn/poison kills trigger the
	// normal death transition.
	s.Status.SetDamageSink(func(amount float64) {
		s.Resolver.TakeTrueDamage(s.Stats, amount)
	})
	return s
}

// Update advances every subsystem one tick. The order is fixed:
// status effects and temporary modifiers first, then resource
// regeneration, then live casts and cooldowns, then the combo timers.
func (s *Session) Update(delta float64) {
	s.Status.Update(delta)
	s.Boosts.Update(delta)
	s.Stats.RegenerateResources(delta)
	s.Casts.Update(delta)
	s.Combo.Update(delta)
}

// Punch attempts a melee punch, gated by the dead state and action-locking
// status effects on top of the combo's own cooldown.
func (s *Session) Punch() (damage float64, ok bool) {
	if s.Stats.IsDead() || s.Status.Stunned() {
		return 0, false
	}
	return s.Resolver.PunchDamage(s.Stats, s.Combo)
}

// Cast attempts a skill cast, rejecting while action-locked.
func (s *Session) Cast(skillID string) (*skill.Instance, error) {
	if s.Status.Stunned() {
		return nil, fmt.Errorf("cast %s: stunned", skillID)
	}
	return s.Casts.Cast(skillID, s.Stats, s.mover)
}

// EquipItem equips an item by id, applying its max-health/max-mana bonuses
// to the stat block. Returns the displaced item id, if any.
func (s *Session) EquipItem(itemID string) (displaced string, ok bool) {
	tmpl, found := data.GetItemTemplate(itemID)
	if !found {
		return "", false
	}
	prevBonuses := s.Equipment.Bonuses()
	old := s.Equipment.Equip(tmpl)
	s.applyBonusDelta(prevBonuses, s.Equipment.Bonuses())
	if old != nil {
		return old.ID, true
	}
	return "", true
}

// applyBonusDelta shifts the stat block's caps by the change in equipment
// bonuses, keeping current values clamped under the new caps.
func (s *Session) applyBonusDelta(before, after data.ItemBonuses) {
	s.Stats.SetMaxHealth(s.Stats.MaxHealth() - before.MaxHealth + after.MaxHealth)
	s.Stats.SetMaxMana(s.Stats.MaxMana() - before.MaxMana + after.MaxMana)
	s.Stats.SetAttackPower(s.Stats.AttackPower() - before.AttackPower + after.AttackPower)
	s.Stats.SetMovementSpeed(s.Stats.MovementSpeed() - before.MovementSpeed + after.MovementSpeed)
}

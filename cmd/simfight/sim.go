package main

import (
	"fmt"
	"log/slog"
	"math/rand/v2"

	"github.com/takkar/brimstone/internal/config"
	"github.com/takkar/brimstone/internal/data"
	"github.com/takkar/brimstone/internal/engine"
	"github.com/takkar/brimstone/internal/game/skill"
	"github.com/takkar/brimstone/internal/model"
)

const enemyAttackCooldown = 1.5 // seconds between enemy attacks

// waveRoster cycles as waves clear; later waves add more and harder kinds.
var waveRoster = [][]string{
	{"rotling", "rotling"},
	{"rotling", "bone_archer"},
	{"gravehound", "bone_archer", "rotling"},
	{"gravehound", "cinder_shade"},
	{"cinder_shade", "cinder_shade", "bone_archer"},
	{"pit_warden", "gravehound"},
	{"marrow_tyrant"},
}

// foe is one spawned wave member with its own swing timer.
type foe struct {
	enemy  *engine.Enemy
	attack float64 // seconds until next swing
}

// simulation is a scripted fight: the arena doubles as the targeting,
// rendering, notification, and movement collaborators for the combat core.
type simulation struct {
	session  *engine.Session
	rng      *rand.Rand
	rates    config.Rates
	rotation []string

	playerPos skill.Vector3
	foes      map[skill.TargetID]*foe
	nextFoeID skill.TargetID

	wave     int
	maxWaves int

	// Visual effect bookkeeping for the headless renderer.
	nextHandle  skill.EffectHandle
	liveEffects map[skill.EffectHandle]struct{}

	// Totals for the summary.
	kills       int
	deaths      int
	damageDealt float64
	damageTaken float64
	drops       []data.DropResult
}

func newSimulation(stats *model.StatBlock, rng *rand.Rand, rates config.Rates, maxWaves int, rotation []string) *simulation {
	s := &simulation{
		rng:         rng,
		rates:       rates,
		rotation:    rotation,
		foes:        make(map[skill.TargetID]*foe),
		maxWaves:    maxWaves,
		liveEffects: make(map[skill.EffectHandle]struct{}),
	}
	s.session = engine.NewSession(stats, (*playerMover)(s), s, s, s)
	return s
}

// --- skill.Renderer ---

func (s *simulation) CreateVisualEffect(inst *skill.Instance, pos, dir skill.Vector3) (skill.EffectHandle, error) {
	s.nextHandle++
	s.liveEffects[s.nextHandle] = struct{}{}
	return s.nextHandle, nil
}

func (s *simulation) UpdateVisualEffect(h skill.EffectHandle, delta float64) {}

func (s *simulation) DisposeVisualEffect(h skill.EffectHandle) {
	delete(s.liveEffects, h)
}

// --- skill.Targeting ---

func (s *simulation) FindNearestTarget(pos skill.Vector3, maxRange float64) (skill.TargetID, bool) {
	var bestID skill.TargetID
	best := maxRange
	found := false
	for id, f := range s.foes {
		if f.enemy.Stats.IsDead() {
			continue
		}
		if d := f.enemy.Pos.DistanceTo(pos); d <= best {
			best, bestID, found = d, id, true
		}
	}
	return bestID, found
}

func (s *simulation) Position(id skill.TargetID) skill.Vector3 {
	if f, ok := s.foes[id]; ok {
		return f.enemy.Pos
	}
	return skill.Vector3{}
}

func (s *simulation) IsDead(id skill.TargetID) bool {
	f, ok := s.foes[id]
	return !ok || f.enemy.Stats.IsDead()
}

// --- skill.Notifier ---

func (s *simulation) Notify(message string) {
	slog.Info("notify", "message", message)
}

// playerMover exposes the player's spatial state as skill.Mover without
// widening simulation's own method set.
type playerMover simulation

func (m *playerMover) Position() skill.Vector3     { return m.playerPos }
func (m *playerMover) SetPosition(v skill.Vector3) { m.playerPos = v }

func (m *playerMover) Facing() skill.Vector3 {
	s := (*simulation)(m)
	if id, ok := s.FindNearestTarget(m.playerPos, 100); ok {
		return s.Position(id).Sub(m.playerPos).Normalize()
	}
	return skill.Vector3{X: 1}
}

// spawnWave places the next roster entry in a loose ring around the player.
func (s *simulation) spawnWave() {
	roster := waveRoster[s.wave%len(waveRoster)]
	tier := data.TierForLevel(s.session.Stats.Level())
	for i, id := range roster {
		pos := s.playerPos.Add(skill.Vector3{
			X: 8 + 2*float64(i),
			Z: float64(i*3) - 3,
		})
		e, err := engine.SpawnEnemy(id, tier, pos)
		if err != nil {
			slog.Warn("skipping unknown wave enemy", "id", id, "err", err)
			continue
		}
		s.nextFoeID++
		s.foes[s.nextFoeID] = &foe{enemy: e}
	}
	s.wave++
	slog.Info("wave spawned", "wave", s.wave, "enemies", len(roster), "tier", tier.Name)
}

// tick advances the whole fight one fixed step.
func (s *simulation) tick(delta float64) error {
	s.session.Update(delta)

	if s.session.Stats.IsDead() {
		s.deaths++
		s.session.Resolver.Revive(s.session.Stats)
	}

	s.advanceFoes(delta)
	s.actPlayer()

	if s.cleared() {
		if s.maxWaves > 0 && s.wave >= s.maxWaves {
			return errSimDone
		}
		s.spawnWave()
	}
	return nil
}

// advanceFoes moves every living enemy toward the player and swings when in
// reach.
func (s *simulation) advanceFoes(delta float64) {
	for _, f := range s.foes {
		if f.enemy.Stats.IsDead() {
			continue
		}
		if f.attack > 0 {
			f.attack -= delta
		}
		if !f.enemy.InRangeOf(s.playerPos) {
			dir := s.playerPos.Sub(f.enemy.Pos).Normalize()
			f.enemy.Pos = f.enemy.Pos.Add(dir.Scale(f.enemy.Stats.MovementSpeed() * delta))
			continue
		}
		if f.attack <= 0 {
			dealt := s.session.Resolver.TakeDamage(s.session.Stats, s.session.Equipment, f.enemy.Template.Damage)
			s.damageTaken += dealt
			f.attack = enemyAttackCooldown
		}
	}
}

// actPlayer runs the scripted rotation: keep buffs from the loadout up,
// punch whatever is in melee reach, otherwise work through the loadout's
// damage skills.
func (s *simulation) actPlayer() {
	for _, id := range s.rotation {
		def, ok := data.GetSkillDef(id)
		if !ok || def.Type != data.SkillBuff {
			continue
		}
		if _, err := s.session.Cast(id); err == nil {
			return
		}
	}

	if id, ok := s.FindNearestTarget(s.playerPos, data.Combat().MeleeRange); ok {
		if dmg, ok := s.session.Punch(); ok {
			s.hitFoe(id, dmg)
		}
		return
	}

	for _, id := range s.rotation {
		def, ok := data.GetSkillDef(id)
		if !ok || def.Type == data.SkillBuff {
			continue
		}
		inst, err := s.session.Cast(id)
		if err != nil {
			continue
		}
		if inst.HasTarget {
			s.hitFoe(inst.Target, inst.Def.Damage)
		}
		return
	}
}

// hitFoe applies damage to one enemy and settles the kill: experience,
// loot roll, and auto-equip of whatever dropped.
func (s *simulation) hitFoe(id skill.TargetID, dmg float64) {
	f, ok := s.foes[id]
	if !ok {
		return
	}
	applied, killed := s.session.Resolver.ResolveHit(s.session.Stats, f.enemy.Stats, nil, dmg)
	s.damageDealt += applied
	if !killed {
		return
	}
	s.kills++
	s.session.Resolver.AwardKill(s.session.Stats, f.enemy.Template)

	quality := data.TierForLevel(s.session.Stats.Level()).DropQualityMult * s.rates.DropQualityMultiplier
	if drop, ok := data.RollDrop(f.enemy.Template.DropTable, s.rng, quality); ok {
		s.drops = append(s.drops, drop)
		if _, equipped := s.session.EquipItem(drop.ItemID); equipped {
			slog.Info("equipped drop", "item", drop.ItemID, "rarity", drop.Rarity.String())
		}
	}
	delete(s.foes, id)
}

func (s *simulation) cleared() bool {
	for _, f := range s.foes {
		if !f.enemy.Stats.IsDead() {
			return false
		}
	}
	return true
}

func (s *simulation) printSummary() {
	stats := s.session.Stats
	fmt.Println("--- simulation summary ---")
	fmt.Printf("waves cleared:  %d\n", s.wave)
	fmt.Printf("kills/deaths:   %d/%d\n", s.kills, s.deaths)
	fmt.Printf("damage dealt:   %.0f\n", s.damageDealt)
	fmt.Printf("damage taken:   %.0f\n", s.damageTaken)
	fmt.Printf("level:          %d (%d/%d xp)\n", stats.Level(), stats.Experience(), stats.ExperienceToNext())
	fmt.Printf("drops:          %d\n", len(s.drops))
	for _, d := range s.drops {
		fmt.Printf("  %-18s %s\n", d.ItemID, d.Rarity.String())
	}
}

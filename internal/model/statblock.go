package model

import (
	"log/slog"
	"math"

	"github.com/takkar/brimstone/internal/data"
)

// StatBlock owns a character's numeric state: level, experience, resources,
// and primary attributes. All setters clamp to valid ranges and coerce
// non-finite input to a safe default, so corruption (NaN leaking out of an
// upstream calculation) never sticks. Getters re-validate on read for the
// same reason.
//
// Not safe for concurrent use: the game loop is the single writer.
type StatBlock struct {
	level            int
	experience       int
	experienceToNext int

	health    float64
	maxHealth float64
	mana      float64
	maxMana   float64

	strength     int
	dexterity    int
	intelligence int

	movementSpeed float64
	attackPower   float64

	dead bool
}

// StatSnapshot is the serializable copy of every numeric StatBlock field.
type StatSnapshot struct {
	Level            int     `json:"level"`
	Experience       int     `json:"experience"`
	ExperienceToNext int     `json:"experienceToNext"`
	Health           float64 `json:"health"`
	MaxHealth        float64 `json:"maxHealth"`
	Mana             float64 `json:"mana"`
	MaxMana          float64 `json:"maxMana"`
	Strength         int     `json:"strength"`
	Dexterity        int     `json:"dexterity"`
	Intelligence     int     `json:"intelligence"`
	MovementSpeed    float64 `json:"movementSpeed"`
	AttackPower      float64 `json:"attackPower"`
	Dead             bool    `json:"dead"`
}

// NewStatBlock returns a level-1 character with the given base resources.
func NewStatBlock(maxHealth, maxMana, movementSpeed, attackPower float64) *StatBlock {
	s := &StatBlock{
		level:            1,
		experienceToNext: data.Combat().BaseExperienceToNext,
		maxHealth:        sanitize(maxHealth, 100, "maxHealth"),
		maxMana:          sanitize(maxMana, 50, "maxMana"),
		strength:         10,
		dexterity:        10,
		intelligence:     10,
		movementSpeed:    sanitize(movementSpeed, 5, "movementSpeed"),
		attackPower:      sanitize(attackPower, 10, "attackPower"),
	}
	s.health = s.maxHealth
	s.mana = s.maxMana
	return s
}

// sanitize replaces NaN/Inf with fallback, logging the coercion.
// Every numeric boundary of StatBlock goes through here.
func sanitize(v, fallback float64, field string) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		slog.Warn("invalid numeric input coerced", "field", field, "fallback", fallback)
		return fallback
	}
	return v
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Level returns the current level (>= 1).
func (s *StatBlock) Level() int { return s.level }

// Experience returns experience accumulated toward the next level.
func (s *StatBlock) Experience() int { return s.experience }

// ExperienceToNext returns the threshold for the next level-up.
func (s *StatBlock) ExperienceToNext() int { return s.experienceToNext }

// Health returns current health, re-validated.
func (s *StatBlock) Health() float64 {
	s.health = clamp(sanitize(s.health, 0, "health"), 0, s.MaxHealth())
	return s.health
}

// MaxHealth returns maximum health, re-validated.
func (s *StatBlock) MaxHealth() float64 {
	s.maxHealth = sanitize(s.maxHealth, 100, "maxHealth")
	return s.maxHealth
}

// Mana returns current mana, re-validated.
func (s *StatBlock) Mana() float64 {
	s.mana = clamp(sanitize(s.mana, 0, "mana"), 0, s.MaxMana())
	return s.mana
}

// MaxMana returns maximum mana, re-validated.
func (s *StatBlock) MaxMana() float64 {
	s.maxMana = sanitize(s.maxMana, 50, "maxMana")
	return s.maxMana
}

func (s *StatBlock) Strength() int     { return s.strength }
func (s *StatBlock) Dexterity() int    { return s.dexterity }
func (s *StatBlock) Intelligence() int { return s.intelligence }

// MovementSpeed returns movement speed, re-validated.
func (s *StatBlock) MovementSpeed() float64 {
	s.movementSpeed = sanitize(s.movementSpeed, 5, "movementSpeed")
	return s.movementSpeed
}

// AttackPower returns attack power, re-validated.
func (s *StatBlock) AttackPower() float64 {
	s.attackPower = sanitize(s.attackPower, 10, "attackPower")
	return s.attackPower
}

// SetHealth clamps v to [0, maxHealth].
func (s *StatBlock) SetHealth(v float64) {
	s.health = clamp(sanitize(v, s.health, "health"), 0, s.MaxHealth())
}

// SetMana clamps v to [0, maxMana].
func (s *StatBlock) SetMana(v float64) {
	s.mana = clamp(sanitize(v, s.mana, "mana"), 0, s.MaxMana())
}

// SetMaxHealth raises or lowers the cap, clamping current health under it.
func (s *StatBlock) SetMaxHealth(v float64) {
	s.maxHealth = math.Max(1, sanitize(v, s.maxHealth, "maxHealth"))
	s.health = clamp(s.health, 0, s.maxHealth)
}

// SetMaxMana raises or lowers the cap, clamping current mana under it.
func (s *StatBlock) SetMaxMana(v float64) {
	s.maxMana = math.Max(0, sanitize(v, s.maxMana, "maxMana"))
	s.mana = clamp(s.mana, 0, s.maxMana)
}

// SetMovementSpeed coerces invalid input and floors at zero.
func (s *StatBlock) SetMovementSpeed(v float64) {
	s.movementSpeed = math.Max(0, sanitize(v, s.movementSpeed, "movementSpeed"))
}

// SetAttackPower coerces invalid input and floors at zero.
func (s *StatBlock) SetAttackPower(v float64) {
	s.attackPower = math.Max(0, sanitize(v, s.attackPower, "attackPower"))
}

// Heal restores up to amount health and returns how much was actually
// restored: min(amount, maxHealth - health). Negative or invalid amounts
// heal nothing.
func (s *StatBlock) Heal(amount float64) float64 {
	amount = sanitize(amount, 0, "healAmount")
	if amount <= 0 {
		return 0
	}
	healed := math.Min(amount, s.MaxHealth()-s.Health())
	s.health += healed
	return healed
}

// SpendMana deducts cost if available. Returns false (and deducts nothing)
// when mana is insufficient.
func (s *StatBlock) SpendMana(cost float64) bool {
	cost = sanitize(cost, 0, "manaCost")
	if cost < 0 {
		cost = 0
	}
	if s.Mana() < cost {
		return false
	}
	s.mana -= cost
	return true
}

// AddExperience awards experience and performs as many level-ups as the
// total supports. Returns the new level, or 0 if no level-up occurred.
func (s *StatBlock) AddExperience(amount int) int {
	if amount <= 0 {
		return 0
	}
	s.experience += amount

	leveled := 0
	for s.experience >= s.experienceToNext {
		leveled = s.LevelUp()
	}
	return leveled
}

// LevelUp advances one level: carries surplus experience over, grows the
// next-level threshold, applies the configured flat stat deltas, and fully
// restores health and mana. Returns the new level.
func (s *StatBlock) LevelUp() int {
	table := data.Combat()

	s.level++
	s.experience -= s.experienceToNext
	if s.experience < 0 {
		s.experience = 0
	}
	s.experienceToNext = int(math.Floor(float64(s.experienceToNext) * table.ExperienceMultiplier))

	s.strength += table.LevelUp.Strength
	s.dexterity += table.LevelUp.Dexterity
	s.intelligence += table.LevelUp.Intelligence
	s.maxHealth += table.LevelUp.MaxHealth
	s.maxMana += table.LevelUp.MaxMana
	s.attackPower += table.LevelUp.AttackPower

	s.health = s.maxHealth
	s.mana = s.maxMana

	slog.Info("level up", "level", s.level, "experienceToNext", s.experienceToNext)
	return s.level
}

// RegenerateResources restores health and mana by the configured per-second
// rates, scaled by delta. Dead characters do not regenerate.
func (s *StatBlock) RegenerateResources(delta float64) {
	if s.dead {
		return
	}
	delta = sanitize(delta, 0, "delta")
	if delta <= 0 {
		return
	}
	table := data.Combat()
	s.SetHealth(s.Health() + delta*table.HealthRegenRate)
	s.SetMana(s.Mana() + delta*table.ManaRegenRate)
}

// IsDead reports whether the character is in the dead state.
func (s *StatBlock) IsDead() bool { return s.dead }

// MarkDead sets the dead flag. Idempotent.
func (s *StatBlock) MarkDead() { s.dead = true }

// Revive clears the dead flag and restores health and mana to the given
// fraction of their maxima.
func (s *StatBlock) Revive(fraction float64) {
	fraction = clamp(sanitize(fraction, 0.75, "reviveFraction"), 0, 1)
	s.dead = false
	s.SetHealth(s.MaxHealth() * fraction)
	s.SetMana(s.MaxMana() * fraction)
}

// Stat reads a named stat. Used by the temporary-modifier layer so it stays
// independent of StatBlock's field set.
func (s *StatBlock) Stat(name string) (float64, bool) {
	switch name {
	case "movementSpeed":
		return s.MovementSpeed(), true
	case "attackPower":
		return s.AttackPower(), true
	case "maxHealth":
		return s.MaxHealth(), true
	case "maxMana":
		return s.MaxMana(), true
	case "strength":
		return float64(s.strength), true
	case "dexterity":
		return float64(s.dexterity), true
	case "intelligence":
		return float64(s.intelligence), true
	default:
		return 0, false
	}
}

// SetStat writes a named stat. Returns false for unknown names.
func (s *StatBlock) SetStat(name string, v float64) bool {
	v = sanitize(v, 0, name)
	switch name {
	case "movementSpeed":
		s.SetMovementSpeed(v)
	case "attackPower":
		s.SetAttackPower(v)
	case "maxHealth":
		s.SetMaxHealth(v)
	case "maxMana":
		s.SetMaxMana(v)
	case "strength":
		s.strength = int(math.Max(0, v))
	case "dexterity":
		s.dexterity = int(math.Max(0, v))
	case "intelligence":
		s.intelligence = int(math.Max(0, v))
	default:
		return false
	}
	return true
}

// Snapshot copies every numeric field for serialization.
func (s *StatBlock) Snapshot() StatSnapshot {
	return StatSnapshot{
		Level:            s.level,
		Experience:       s.experience,
		ExperienceToNext: s.experienceToNext,
		Health:           s.Health(),
		MaxHealth:        s.MaxHealth(),
		Mana:             s.Mana(),
		MaxMana:          s.MaxMana(),
		Strength:         s.strength,
		Dexterity:        s.dexterity,
		Intelligence:     s.intelligence,
		MovementSpeed:    s.MovementSpeed(),
		AttackPower:      s.AttackPower(),
		Dead:             s.dead,
	}
}

// RestoreSnapshot overwrites every field from a snapshot, re-validating
// numeric values on the way in.
func (s *StatBlock) RestoreSnapshot(snap StatSnapshot) {
	s.level = max(1, snap.Level)
	s.experienceToNext = snap.ExperienceToNext
	if s.experienceToNext <= 0 {
		s.experienceToNext = data.Combat().BaseExperienceToNext
	}
	s.experience = max(0, snap.Experience)
	if s.experience >= s.experienceToNext {
		s.experience = s.experienceToNext - 1
	}
	s.maxHealth = math.Max(1, sanitize(snap.MaxHealth, 100, "maxHealth"))
	s.maxMana = math.Max(0, sanitize(snap.MaxMana, 50, "maxMana"))
	s.health = clamp(sanitize(snap.Health, s.maxHealth, "health"), 0, s.maxHealth)
	s.mana = clamp(sanitize(snap.Mana, s.maxMana, "mana"), 0, s.maxMana)
	s.strength = max(0, snap.Strength)
	s.dexterity = max(0, snap.Dexterity)
	s.intelligence = max(0, snap.Intelligence)
	s.movementSpeed = math.Max(0, sanitize(snap.MovementSpeed, 5, "movementSpeed"))
	s.attackPower = math.Max(0, sanitize(snap.AttackPower, 10, "attackPower"))
	s.dead = snap.Dead
}

package model

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/takkar/brimstone/internal/data"
)

func init() {
	if err := data.Load(""); err != nil {
		panic(err)
	}
}

func TestHeal_NeverExceedsMax(t *testing.T) {
	s := NewStatBlock(100, 50, 5, 10)
	s.SetHealth(60)

	healed := s.Heal(25)
	assert.Equal(t, 25.0, healed)
	assert.Equal(t, 85.0, s.Health())

	// Overheal returns only the missing part.
	healed = s.Heal(100)
	assert.Equal(t, 15.0, healed)
	assert.Equal(t, 100.0, s.Health())

	// Negative and invalid amounts heal nothing.
	assert.Equal(t, 0.0, s.Heal(-5))
	assert.Equal(t, 0.0, s.Heal(math.NaN()))
	assert.Equal(t, 100.0, s.Health())
}

func TestSetHealthAndMana_Clamped(t *testing.T) {
	s := NewStatBlock(100, 50, 5, 10)

	s.SetHealth(-20)
	assert.Equal(t, 0.0, s.Health())

	s.SetHealth(500)
	assert.Equal(t, 100.0, s.Health())

	s.SetMana(-1)
	assert.Equal(t, 0.0, s.Mana())

	s.SetMana(999)
	assert.Equal(t, 50.0, s.Mana())
}

func TestSanitize_CoercesCorruption(t *testing.T) {
	s := NewStatBlock(100, 50, 5, 10)

	before := s.Health()
	s.SetHealth(math.NaN())
	assert.Equal(t, before, s.Health(), "NaN must not stick")

	s.SetMovementSpeed(math.Inf(1))
	assert.Equal(t, 5.0, s.MovementSpeed(), "Inf must not stick")

	// Corruption planted directly on the field is caught by the getter.
	s.health = math.NaN()
	assert.False(t, math.IsNaN(s.Health()))
}

func TestAddExperience_MultiLevel(t *testing.T) {
	s := NewStatBlock(100, 50, 5, 10)
	require.Equal(t, 1, s.Level())
	toNext := s.ExperienceToNext()

	// One large award spanning several thresholds levels up repeatedly.
	newLevel := s.AddExperience(toNext * 4)
	assert.GreaterOrEqual(t, newLevel, 2)
	assert.Less(t, s.Experience(), s.ExperienceToNext(),
		"experience must be normalized below the threshold")
}

func TestAddExperience_NoLevelReturnsZero(t *testing.T) {
	s := NewStatBlock(100, 50, 5, 10)
	assert.Equal(t, 0, s.AddExperience(s.ExperienceToNext()-1))
	assert.Equal(t, 1, s.Level())
	assert.Equal(t, 0, s.AddExperience(0))
	assert.Equal(t, 0, s.AddExperience(-10))
}

func TestLevelUp_AppliesDeltasAndRestores(t *testing.T) {
	table := data.Combat()
	s := NewStatBlock(100, 50, 5, 10)
	s.SetHealth(10)
	s.SetMana(5)
	str := s.Strength()

	newLevel := s.LevelUp()
	assert.Equal(t, 2, newLevel)
	assert.Equal(t, str+table.LevelUp.Strength, s.Strength())
	assert.Equal(t, 100+table.LevelUp.MaxHealth, s.MaxHealth())
	assert.Equal(t, s.MaxHealth(), s.Health(), "level-up fully restores health")
	assert.Equal(t, s.MaxMana(), s.Mana(), "level-up fully restores mana")

	wantNext := int(math.Floor(float64(table.BaseExperienceToNext) * table.ExperienceMultiplier))
	assert.Equal(t, wantNext, s.ExperienceToNext())
}

func TestRegenerateResources(t *testing.T) {
	table := data.Combat()
	s := NewStatBlock(100, 50, 5, 10)
	s.SetHealth(50)
	s.SetMana(10)

	s.RegenerateResources(2.0)
	assert.Equal(t, 50+2*table.HealthRegenRate, s.Health())
	assert.Equal(t, 10+2*table.ManaRegenRate, s.Mana())

	// Clamped at max.
	s.RegenerateResources(1e6)
	assert.Equal(t, s.MaxHealth(), s.Health())

	// Dead characters do not regenerate.
	s.SetHealth(0)
	s.MarkDead()
	s.RegenerateResources(10)
	assert.Equal(t, 0.0, s.Health())
}

func TestRevive(t *testing.T) {
	s := NewStatBlock(200, 80, 5, 10)
	s.SetHealth(0)
	s.MarkDead()
	require.True(t, s.IsDead())

	s.Revive(0.75)
	assert.False(t, s.IsDead())
	assert.Equal(t, 150.0, s.Health())
	assert.Equal(t, 60.0, s.Mana())
}

func TestStatAccess_ByName(t *testing.T) {
	s := NewStatBlock(100, 50, 10, 7)

	v, ok := s.Stat("movementSpeed")
	require.True(t, ok)
	assert.Equal(t, 10.0, v)

	require.True(t, s.SetStat("movementSpeed", 15))
	assert.Equal(t, 15.0, s.MovementSpeed())

	_, ok = s.Stat("luck")
	assert.False(t, ok)
	assert.False(t, s.SetStat("luck", 1))
}

func TestSnapshot_RoundTrip(t *testing.T) {
	s := NewStatBlock(120, 60, 6, 14)
	s.AddExperience(s.ExperienceToNext() + 10)
	s.SetHealth(33)
	s.SetMana(12)

	snap := s.Snapshot()

	restored := NewStatBlock(1, 1, 1, 1)
	restored.RestoreSnapshot(snap)
	assert.Equal(t, snap, restored.Snapshot(), "round-trip must reproduce identical fields")
}

func TestRestoreSnapshot_RejectsCorruptFields(t *testing.T) {
	s := NewStatBlock(100, 50, 5, 10)
	s.RestoreSnapshot(StatSnapshot{
		Level:            0,
		Experience:       -5,
		ExperienceToNext: 0,
		Health:           math.NaN(),
		MaxHealth:        math.Inf(1),
		MovementSpeed:    -3,
	})

	assert.Equal(t, 1, s.Level())
	assert.GreaterOrEqual(t, s.Experience(), 0)
	assert.Greater(t, s.ExperienceToNext(), 0)
	assert.False(t, math.IsNaN(s.Health()))
	assert.False(t, math.IsInf(s.MaxHealth(), 0))
	assert.GreaterOrEqual(t, s.MovementSpeed(), 0.0)
}

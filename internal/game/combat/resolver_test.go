package combat

import (
	"math"
	"strings"
	"testing"

	"github.com/takkar/brimstone/internal/data"
	"github.com/takkar/brimstone/internal/model"
)

type recordingNotifier struct {
	messages []string
}

func (n *recordingNotifier) Notify(msg string) { n.messages = append(n.messages, msg) }

func (n *recordingNotifier) contains(substr string) bool {
	for _, m := range n.messages {
		if strings.Contains(m, substr) {
			return true
		}
	}
	return false
}

func armored(reduction float64) *model.EquipmentSet {
	e := model.NewEquipmentSet()
	e.Equip(data.ItemTemplate{ID: "test_armor", Slot: data.SlotChest,
		Bonuses: data.ItemBonuses{DamageReduction: reduction}})
	return e
}

func TestTakeDamage_AppliesReduction(t *testing.T) {
	r := NewResolver(nil)
	defender := model.NewStatBlock(200, 50, 5, 10)

	actual := r.TakeDamage(defender, armored(0.3), 100)
	if math.Abs(actual-70) > 1e-9 {
		t.Errorf("actual damage = %v, want 70", actual)
	}
	if math.Abs(defender.Health()-130) > 1e-9 {
		t.Errorf("health = %v, want 130", defender.Health())
	}
}

func TestTakeDamage_NoEquipmentNoReduction(t *testing.T) {
	r := NewResolver(nil)
	defender := model.NewStatBlock(100, 50, 5, 10)

	if actual := r.TakeDamage(defender, nil, 40); actual != 40 {
		t.Errorf("actual = %v, want 40", actual)
	}
}

func TestTakeDamage_DeathExactlyOnce(t *testing.T) {
	n := &recordingNotifier{}
	r := NewResolver(n)
	defender := model.NewStatBlock(50, 50, 5, 10)

	r.TakeDamage(defender, nil, 80)
	if defender.Health() != 0 {
		t.Errorf("health = %v, want clamped at 0", defender.Health())
	}
	if !defender.IsDead() {
		t.Fatal("defender should be dead")
	}

	// Further damage on a corpse does nothing and does not re-announce.
	if got := r.TakeDamage(defender, nil, 10); got != 0 {
		t.Errorf("damage on dead defender = %v, want 0", got)
	}
	deaths := 0
	for _, m := range n.messages {
		if strings.Contains(m, "died") {
			deaths++
		}
	}
	if deaths != 1 {
		t.Errorf("death announced %d times, want exactly once", deaths)
	}
}

func TestTakeDamage_RejectsInvalidRaw(t *testing.T) {
	r := NewResolver(nil)
	defender := model.NewStatBlock(100, 50, 5, 10)

	for _, raw := range []float64{math.NaN(), math.Inf(1), -10, 0} {
		if got := r.TakeDamage(defender, nil, raw); got != 0 {
			t.Errorf("TakeDamage(%v) = %v, want 0", raw, got)
		}
	}
	if defender.Health() != 100 {
		t.Errorf("health = %v, want untouched 100", defender.Health())
	}
}

func TestResolveHit_ReportsKill(t *testing.T) {
	r := NewResolver(nil)
	attacker := model.NewStatBlock(100, 50, 5, 10)
	target := model.NewStatBlock(30, 0, 5, 5)

	applied, killed := r.ResolveHit(attacker, target, nil, 50)
	if applied != 50 {
		t.Errorf("applied = %v, want 50", applied)
	}
	if !killed {
		t.Error("expected kill report")
	}

	// A second hit on the corpse is not a second kill.
	_, killed = r.ResolveHit(attacker, target, nil, 50)
	if killed {
		t.Error("corpse hit reported another kill")
	}
}

func TestPunchDamage(t *testing.T) {
	r := NewResolver(nil)
	attacker := model.NewStatBlock(100, 50, 5, 20)
	combo := NewComboController(data.Combat())

	damage, ok := r.PunchDamage(attacker, combo)
	if !ok {
		t.Fatal("punch did not register")
	}
	want := 20 * data.Combat().ComboMultipliers[0]
	if damage != want {
		t.Errorf("damage = %v, want %v", damage, want)
	}

	// Cooldown not elapsed: no damage.
	if _, ok := r.PunchDamage(attacker, combo); ok {
		t.Error("punch during cooldown registered")
	}
}

func TestAwardKill_TierScalingAndLevelUp(t *testing.T) {
	n := &recordingNotifier{}
	r := NewResolver(n)
	killer := model.NewStatBlock(100, 50, 5, 10)
	enemy, _ := data.GetEnemyTemplate("marrow_tyrant")

	award := r.AwardKill(killer, enemy)
	tier := data.TierForLevel(1)
	want := int(math.Floor(float64(enemy.Experience) * tier.ExperienceMult))
	if award != want {
		t.Errorf("award = %d, want %d", award, want)
	}
	if killer.Level() < 2 {
		t.Error("boss kill at level 1 should level up")
	}
	if !n.contains("Level up") {
		t.Error("level-up not announced")
	}
}

func TestAwardKill_ZeroReward(t *testing.T) {
	r := NewResolver(nil)
	killer := model.NewStatBlock(100, 50, 5, 10)

	if award := r.AwardKill(killer, data.EnemyTemplate{Name: "dummy"}); award != 0 {
		t.Errorf("award = %d, want 0", award)
	}
}

func TestRevive(t *testing.T) {
	n := &recordingNotifier{}
	r := NewResolver(n)
	s := model.NewStatBlock(200, 80, 5, 10)

	r.TakeDamage(s, nil, 500)
	if !s.IsDead() {
		t.Fatal("expected death")
	}

	r.Revive(s)
	if s.IsDead() {
		t.Error("still dead after revive")
	}
	frac := data.Combat().ReviveFraction
	if s.Health() != 200*frac {
		t.Errorf("health = %v, want %v", s.Health(), 200*frac)
	}
	if s.Mana() != 80*frac {
		t.Errorf("mana = %v, want %v", s.Mana(), 80*frac)
	}
	if !n.contains("revived") {
		t.Error("revive not announced")
	}

	// Reviving the living is a no-op.
	s.SetHealth(10)
	r.Revive(s)
	if s.Health() != 10 {
		t.Error("revive on a living character changed health")
	}
}

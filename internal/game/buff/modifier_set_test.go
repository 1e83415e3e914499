package buff

import (
	"math"
	"testing"
)

// fakeStats is a minimal StatAccessor for tests.
type fakeStats struct {
	stats map[string]float64
}

func newFakeStats() *fakeStats {
	return &fakeStats{stats: map[string]float64{
		"movementSpeed": 10,
		"attackPower":   20,
	}}
}

func (f *fakeStats) Stat(name string) (float64, bool) {
	v, ok := f.stats[name]
	return v, ok
}

func (f *fakeStats) SetStat(name string, v float64) bool {
	if _, ok := f.stats[name]; !ok {
		return false
	}
	f.stats[name] = v
	return true
}

func TestAddBoost_AppliesImmediately(t *testing.T) {
	stats := newFakeStats()
	m := NewModifierSet(stats)

	if err := m.AddBoost("movementSpeed", 0.5, 2); err != nil {
		t.Fatalf("AddBoost: %v", err)
	}
	if got := stats.stats["movementSpeed"]; got != 15 {
		t.Errorf("speed = %v, want 15", got)
	}
}

func TestBoost_ExpiryRestoresExactBaseline(t *testing.T) {
	stats := newFakeStats()
	m := NewModifierSet(stats)

	if err := m.AddBoost("movementSpeed", 0.5, 2); err != nil {
		t.Fatal(err)
	}
	m.Update(2.0)

	if got := stats.stats["movementSpeed"]; got != 10 {
		t.Errorf("speed after expiry = %v, want exactly 10", got)
	}
	if m.ActiveCount("movementSpeed") != 0 {
		t.Error("expired boost still tracked")
	}
	if _, ok := m.Baseline("movementSpeed"); ok {
		t.Error("record should be deleted once empty")
	}
}

func TestBoosts_Compound(t *testing.T) {
	stats := newFakeStats()
	m := NewModifierSet(stats)

	if err := m.AddBoost("attackPower", 0.5, 5); err != nil {
		t.Fatal(err)
	}
	if err := m.AddBoost("attackPower", 0.2, 1); err != nil {
		t.Fatal(err)
	}
	// Compounding: 20 * 1.5 * 1.2 = 36.
	if got := stats.stats["attackPower"]; math.Abs(got-36) > 1e-9 {
		t.Errorf("attackPower = %v, want 36", got)
	}

	// Shorter boost expires first; the longer one still applies to baseline.
	m.Update(1.0)
	if got := stats.stats["attackPower"]; math.Abs(got-30) > 1e-9 {
		t.Errorf("attackPower after partial expiry = %v, want 30", got)
	}

	m.Update(4.0)
	if got := stats.stats["attackPower"]; got != 20 {
		t.Errorf("attackPower after full expiry = %v, want exactly 20", got)
	}
}

func TestBaseline_RecordedOnFirstBoostOnly(t *testing.T) {
	stats := newFakeStats()
	m := NewModifierSet(stats)

	if err := m.AddBoost("movementSpeed", 1.0, 5); err != nil {
		t.Fatal(err)
	}
	// Second boost while the stat is already raised: baseline stays 10.
	if err := m.AddBoost("movementSpeed", 1.0, 5); err != nil {
		t.Fatal(err)
	}
	base, ok := m.Baseline("movementSpeed")
	if !ok || base != 10 {
		t.Errorf("baseline = %v (ok=%v), want 10", base, ok)
	}
	if got := stats.stats["movementSpeed"]; got != 40 {
		t.Errorf("speed = %v, want 10*2*2 = 40", got)
	}
}

func TestAddBoost_RejectsInvalidInput(t *testing.T) {
	stats := newFakeStats()
	m := NewModifierSet(stats)

	cases := []struct {
		name             string
		stat             string
		amount, duration float64
	}{
		{"nan amount", "movementSpeed", math.NaN(), 1},
		{"inf duration", "movementSpeed", 0.5, math.Inf(1)},
		{"zero duration", "movementSpeed", 0.5, 0},
		{"unknown stat", "luck", 0.5, 1},
	}
	for _, tc := range cases {
		if err := m.AddBoost(tc.stat, tc.amount, tc.duration); err == nil {
			t.Errorf("%s: expected error", tc.name)
		}
	}
	if got := stats.stats["movementSpeed"]; got != 10 {
		t.Errorf("rejected boosts must not touch the stat: speed = %v", got)
	}
}

func TestUpdate_IgnoresBadDelta(t *testing.T) {
	stats := newFakeStats()
	m := NewModifierSet(stats)
	if err := m.AddBoost("movementSpeed", 0.5, 1); err != nil {
		t.Fatal(err)
	}

	m.Update(math.NaN())
	m.Update(-1)
	if m.ActiveCount("movementSpeed") != 1 {
		t.Error("bad delta must not expire boosts")
	}
}

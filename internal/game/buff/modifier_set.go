// Package buff implements time-bounded percentage modifiers layered onto a
// character's stats. Each boosted stat remembers its pre-boost baseline and
// reverts to exactly that value when its last boost expires.
package buff

import (
	"fmt"
	"log/slog"
	"math"
)

// StatAccessor is the narrow view of a character the modifier set needs.
// *model.StatBlock satisfies it.
type StatAccessor interface {
	Stat(name string) (float64, bool)
	SetStat(name string, value float64) bool
}

// boost is one live percentage modifier on a stat.
type boost struct {
	amount    float64 // fractional, 0.5 = +50%
	remaining float64 // seconds
}

// record tracks all boosts on one stat plus the recorded baseline.
type record struct {
	baseline float64
	boosts   []boost
}

// ModifierSet layers temporary percentage boosts over a StatAccessor.
// Not safe for concurrent use: driven from the game loop.
type ModifierSet struct {
	target  StatAccessor
	records map[string]*record
}

// NewModifierSet creates an empty modifier set over target.
func NewModifierSet(target StatAccessor) *ModifierSet {
	return &ModifierSet{target: target, records: make(map[string]*record)}
}

// AddBoost applies a percentage boost (amount 0.5 = +50%) to the named stat
// for durationSeconds. The first boost on a stat records the current value
// as the baseline that the stat reverts to on full expiry.
func (m *ModifierSet) AddBoost(statName string, amount, durationSeconds float64) error {
	if math.IsNaN(amount) || math.IsInf(amount, 0) ||
		math.IsNaN(durationSeconds) || math.IsInf(durationSeconds, 0) {
		slog.Warn("rejected non-finite boost", "stat", statName)
		return fmt.Errorf("boost for %s: non-finite amount or duration", statName)
	}
	if durationSeconds <= 0 {
		return fmt.Errorf("boost for %s: duration must be > 0, got %v", statName, durationSeconds)
	}

	rec, ok := m.records[statName]
	if !ok {
		current, found := m.target.Stat(statName)
		if !found {
			return fmt.Errorf("boost for unknown stat %q", statName)
		}
		rec = &record{baseline: current}
		m.records[statName] = rec
	}

	rec.boosts = append(rec.boosts, boost{amount: amount, remaining: durationSeconds})
	m.apply(statName, rec)

	slog.Debug("boost added",
		"stat", statName,
		"amount", amount,
		"duration", durationSeconds,
		"active", len(rec.boosts))
	return nil
}

// apply resets the stat to its baseline and compounds every active boost
// on top of it.
func (m *ModifierSet) apply(statName string, rec *record) {
	value := rec.baseline
	for _, b := range rec.boosts {
		value *= 1 + b.amount
	}
	m.target.SetStat(statName, value)
}

// Update advances all boost timers by delta seconds. Expired boosts are
// purged; when a stat's last boost expires the stat is restored to its
// baseline and the record dropped.
func (m *ModifierSet) Update(delta float64) {
	if delta <= 0 || math.IsNaN(delta) || math.IsInf(delta, 0) {
		return
	}
	for statName, rec := range m.records {
		n := 0
		for _, b := range rec.boosts {
			b.remaining -= delta
			if b.remaining > 0 {
				rec.boosts[n] = b
				n++
			}
		}
		expired := len(rec.boosts) - n
		rec.boosts = rec.boosts[:n]

		if len(rec.boosts) == 0 {
			m.target.SetStat(statName, rec.baseline)
			delete(m.records, statName)
			slog.Debug("boosts expired, baseline restored", "stat", statName, "baseline", rec.baseline)
			continue
		}
		if expired > 0 {
			m.apply(statName, rec)
		}
	}
}

// ActiveCount returns the number of live boosts on a stat.
func (m *ModifierSet) ActiveCount(statName string) int {
	if rec, ok := m.records[statName]; ok {
		return len(rec.boosts)
	}
	return 0
}

// Baseline returns the recorded baseline for a boosted stat.
// ok is false when the stat currently carries no boosts.
func (m *ModifierSet) Baseline(statName string) (float64, bool) {
	if rec, ok := m.records[statName]; ok {
		return rec.baseline, true
	}
	return 0, false
}

// Package status tracks discrete named conditions (slow, stun, burn, poison,
// freeze) on a character: duration, intensity, and periodic tick damage.
package status

import (
	"fmt"
	"log/slog"
	"math"
	"math/rand/v2"

	"github.com/takkar/brimstone/internal/model"
)

// Kind names a status effect.
type Kind string

const (
	Slow   Kind = "slow"
	Stun   Kind = "stun"
	Burn   Kind = "burn"
	Poison Kind = "poison"
	Freeze Kind = "freeze"
)

const (
	// slowFactor scales how hard a full-intensity slow cuts movement speed.
	slowFactor = 0.6

	// dotTickRate is the expected tick-damage applications per second.
	// Each update rolls a Bernoulli trial with p = delta * dotTickRate, so
	// tick timing jitters with frame rate. Accepted imprecision.
	dotTickRate = 2.0

	burnTickDamage   = 8.0
	poisonTickDamage = 5.0
)

// record is one active status effect. originalSpeed keeps the pre-effect
// movement speed so removal restores it exactly instead of recomputing.
type record struct {
	kind          Kind
	remaining     float64
	intensity     float64
	tickDamage    float64
	originalSpeed float64
	touchedSpeed  bool
}

// Tracker holds at most one active record per effect kind on one character.
// Not safe for concurrent use: driven from the game loop.
type Tracker struct {
	target *model.StatBlock
	active map[Kind]*record

	// rng drives the tick-damage Bernoulli trial. Injectable for tests.
	rng func() float64

	// damage receives DOT damage. When nil, damage goes straight to the
	// target's health; the combat resolver installs itself here so burn and
	// poison kills go through the normal death transition.
	damage func(amount float64)
}

// NewTracker creates an empty tracker for target.
func NewTracker(target *model.StatBlock) *Tracker {
	return &Tracker{
		target: target,
		active: make(map[Kind]*record),
		rng:    rand.Float64,
	}
}

// SetRand overrides the tick-trial random source.
func (t *Tracker) SetRand(rng func() float64) { t.rng = rng }

// SetDamageSink routes DOT damage through fn instead of directly reducing
// the target's health.
func (t *Tracker) SetDamageSink(fn func(amount float64)) { t.damage = fn }

// Apply activates an effect of the given kind. If the kind is already
// active, the new effect wins only when strictly stronger (higher intensity
// or longer duration); the old record is rolled back through Remove before
// the new one is applied. Otherwise the existing record's duration is
// extended to cover the new one.
func (t *Tracker) Apply(kind Kind, duration, intensity float64) error {
	if !known(kind) {
		slog.Warn("unknown status effect", "kind", kind)
		return fmt.Errorf("unknown status effect %q", kind)
	}
	if math.IsNaN(duration) || math.IsInf(duration, 0) || duration <= 0 {
		return fmt.Errorf("status %s: duration must be a finite positive number", kind)
	}
	if math.IsNaN(intensity) || math.IsInf(intensity, 0) {
		intensity = 1
	}
	if intensity < 0 {
		intensity = 0
	}
	if intensity > 1 {
		intensity = 1
	}

	if existing, ok := t.active[kind]; ok {
		if intensity > existing.intensity || duration > existing.remaining {
			t.Remove(kind)
		} else {
			existing.remaining = math.Max(existing.remaining, duration)
			return nil
		}
	}

	rec := &record{kind: kind, remaining: duration, intensity: intensity}
	switch kind {
	case Slow:
		rec.originalSpeed = t.target.MovementSpeed()
		rec.touchedSpeed = true
		t.target.SetMovementSpeed(rec.originalSpeed * (1 - slowFactor*intensity))
	case Freeze:
		rec.originalSpeed = t.target.MovementSpeed()
		rec.touchedSpeed = true
		t.target.SetMovementSpeed(rec.originalSpeed * (1 - intensity))
	case Burn:
		rec.tickDamage = burnTickDamage
	case Poison:
		rec.tickDamage = poisonTickDamage
	case Stun:
		// No stat change: consumers check Stunned().
	}
	t.active[kind] = rec

	slog.Debug("status applied", "kind", kind, "duration", duration, "intensity", intensity)
	return nil
}

// Update advances all effect timers by delta seconds, applies stochastic
// tick damage for DOT kinds, and removes anything that expired.
func (t *Tracker) Update(delta float64) {
	if delta <= 0 || math.IsNaN(delta) || math.IsInf(delta, 0) {
		return
	}
	for kind, rec := range t.active {
		rec.remaining -= delta
		if rec.remaining <= 0 {
			t.Remove(kind)
			continue
		}
		if rec.tickDamage > 0 && t.rng() < delta*dotTickRate {
			t.applyTick(rec)
		}
	}
}

func (t *Tracker) applyTick(rec *record) {
	amount := rec.tickDamage * rec.intensity
	if amount <= 0 {
		return
	}
	if t.damage != nil {
		t.damage(amount)
	} else {
		t.target.SetHealth(t.target.Health() - amount)
	}
	slog.Debug("status tick", "kind", rec.kind, "damage", amount)
}

// Remove deactivates an effect, restoring whatever property it touched to
// its recorded pre-effect value. Removing an inactive kind is a no-op.
func (t *Tracker) Remove(kind Kind) {
	rec, ok := t.active[kind]
	if !ok {
		return
	}
	if rec.touchedSpeed {
		t.target.SetMovementSpeed(rec.originalSpeed)
	}
	delete(t.active, kind)
	slog.Debug("status removed", "kind", kind)
}

// Active reports whether an effect kind is currently live.
func (t *Tracker) Active(kind Kind) bool {
	_, ok := t.active[kind]
	return ok
}

// Stunned reports whether the character is action-locked (stun or a
// full-intensity freeze).
func (t *Tracker) Stunned() bool {
	if t.Active(Stun) {
		return true
	}
	if rec, ok := t.active[Freeze]; ok && rec.intensity >= 1 {
		return true
	}
	return false
}

// ActiveStatus is one entry of a tracker snapshot.
type ActiveStatus struct {
	Kind      Kind    `json:"kind"`
	Remaining float64 `json:"remaining"`
	Intensity float64 `json:"intensity"`
}

// Snapshot lists every active effect, for HUD display and serialization.
func (t *Tracker) Snapshot() []ActiveStatus {
	out := make([]ActiveStatus, 0, len(t.active))
	for _, rec := range t.active {
		out = append(out, ActiveStatus{Kind: rec.kind, Remaining: rec.remaining, Intensity: rec.intensity})
	}
	return out
}

func known(kind Kind) bool {
	switch kind {
	case Slow, Stun, Burn, Poison, Freeze:
		return true
	default:
		return false
	}
}

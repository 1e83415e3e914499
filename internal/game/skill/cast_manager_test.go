package skill

import (
	"errors"
	"math"
	"testing"

	"github.com/takkar/brimstone/internal/data"
	"github.com/takkar/brimstone/internal/game/buff"
	"github.com/takkar/brimstone/internal/model"
)

func init() {
	if err := data.Load(""); err != nil {
		panic(err)
	}
}

// fakeRenderer records create/dispose calls.
type fakeRenderer struct {
	next     EffectHandle
	live     map[EffectHandle]bool
	created  int
	disposed int
	failNext bool
}

func newFakeRenderer() *fakeRenderer {
	return &fakeRenderer{live: make(map[EffectHandle]bool)}
}

func (f *fakeRenderer) CreateVisualEffect(inst *Instance, pos, dir Vector3) (EffectHandle, error) {
	if f.failNext {
		f.failNext = false
		return 0, errors.New("renderer out of resources")
	}
	f.next++
	f.created++
	f.live[f.next] = true
	return f.next, nil
}

func (f *fakeRenderer) UpdateVisualEffect(h EffectHandle, delta float64) {}

func (f *fakeRenderer) DisposeVisualEffect(h EffectHandle) {
	delete(f.live, h)
	f.disposed++
}

// fakeTargeting serves one configurable target.
type fakeTargeting struct {
	target    TargetID
	pos       Vector3
	hasTarget bool
	dead      bool
}

func (f *fakeTargeting) FindNearestTarget(pos Vector3, maxRange float64) (TargetID, bool) {
	if !f.hasTarget || f.pos.DistanceTo(pos) > maxRange {
		return 0, false
	}
	return f.target, true
}

func (f *fakeTargeting) Position(id TargetID) Vector3 { return f.pos }
func (f *fakeTargeting) IsDead(id TargetID) bool      { return f.dead }

type fakeNotifier struct {
	messages []string
}

func (f *fakeNotifier) Notify(msg string) { f.messages = append(f.messages, msg) }

type fakeMover struct {
	pos    Vector3
	facing Vector3
}

func (f *fakeMover) Position() Vector3     { return f.pos }
func (f *fakeMover) SetPosition(v Vector3) { f.pos = v }
func (f *fakeMover) Facing() Vector3       { return f.facing }

func testRig(hasTarget bool) (*CastManager, *fakeRenderer, *fakeTargeting, *fakeNotifier, *fakeMover) {
	renderer := newFakeRenderer()
	targeting := &fakeTargeting{target: 7, pos: Vector3{X: 5}, hasTarget: hasTarget}
	notifier := &fakeNotifier{}
	mover := &fakeMover{facing: Vector3{X: 1}}
	return NewCastManager(renderer, targeting, notifier), renderer, targeting, notifier, mover
}

func TestCast_InvalidSkillID(t *testing.T) {
	cm, _, _, _, mover := testRig(true)
	caster := model.NewStatBlock(100, 100, 5, 10)

	_, err := cm.Cast("no_such_skill", caster, mover)
	if !errors.Is(err, ErrInvalidSkillID) {
		t.Fatalf("expected ErrInvalidSkillID, got %v", err)
	}
}

func TestCast_InsufficientManaLeavesStateUnchanged(t *testing.T) {
	cm, renderer, _, _, mover := testRig(true)
	caster := model.NewStatBlock(100, 20, 5, 10) // mana 20

	// blink_strike costs 30.
	_, err := cm.Cast("blink_strike", caster, mover)
	if !errors.Is(err, ErrInsufficientMana) {
		t.Fatalf("expected ErrInsufficientMana, got %v", err)
	}
	if caster.Mana() != 20 {
		t.Errorf("mana changed on failed cast: %v", caster.Mana())
	}
	if !cm.Catalog().Ready("blink_strike") {
		t.Error("cooldown started on failed cast")
	}
	if renderer.created != 0 {
		t.Error("visual effect created on failed cast")
	}
}

func TestCast_OnCooldown(t *testing.T) {
	cm, _, _, _, mover := testRig(true)
	caster := model.NewStatBlock(100, 200, 5, 10)

	if _, err := cm.Cast("fireball", caster, mover); err != nil {
		t.Fatalf("first cast: %v", err)
	}
	manaAfterFirst := caster.Mana()

	_, err := cm.Cast("fireball", caster, mover)
	if !errors.Is(err, ErrOnCooldown) {
		t.Fatalf("expected ErrOnCooldown, got %v", err)
	}
	if caster.Mana() != manaAfterFirst {
		t.Error("rejected cast consumed mana")
	}
}

func TestCast_DeadCaster(t *testing.T) {
	cm, _, _, _, mover := testRig(true)
	caster := model.NewStatBlock(100, 100, 5, 10)
	caster.MarkDead()

	if _, err := cm.Cast("fireball", caster, mover); !errors.Is(err, ErrCasterDead) {
		t.Fatalf("expected ErrCasterDead, got %v", err)
	}
}

func TestCast_SuccessDeductsAndArms(t *testing.T) {
	cm, renderer, _, _, mover := testRig(true)
	caster := model.NewStatBlock(100, 100, 5, 10)
	fireball, _ := data.GetSkillDef("fireball")

	inst, err := cm.Cast("fireball", caster, mover)
	if err != nil {
		t.Fatalf("Cast: %v", err)
	}
	if caster.Mana() != 100-fireball.ManaCost {
		t.Errorf("mana = %v, want %v", caster.Mana(), 100-fireball.ManaCost)
	}
	if cm.Catalog().Cooldown("fireball") != fireball.Cooldown {
		t.Errorf("cooldown = %v, want %v", cm.Catalog().Cooldown("fireball"), fireball.Cooldown)
	}
	if renderer.created != 1 {
		t.Errorf("created %d visual effects, want 1", renderer.created)
	}
	if !inst.HasTarget {
		t.Error("expected a resolved target")
	}
	// Direction points at the target.
	if math.Abs(inst.Direction.X-1) > 1e-9 {
		t.Errorf("direction = %+v, want +X", inst.Direction)
	}
}

func TestCast_NoTargetFallsBackToFacing(t *testing.T) {
	cm, _, _, _, mover := testRig(false)
	caster := model.NewStatBlock(100, 100, 5, 10)
	mover.facing = Vector3{Y: 1}

	inst, err := cm.Cast("fireball", caster, mover)
	if err != nil {
		t.Fatalf("ranged cast without target must succeed: %v", err)
	}
	if inst.HasTarget {
		t.Error("no target expected")
	}
	if inst.Direction != (Vector3{Y: 1}) {
		t.Errorf("direction = %+v, want facing", inst.Direction)
	}
}

func TestCast_TeleportMissRefunds(t *testing.T) {
	cm, _, _, notifier, mover := testRig(false)
	caster := model.NewStatBlock(100, 100, 5, 10)

	_, err := cm.Cast("blink_strike", caster, mover)
	if !errors.Is(err, ErrNoTargetFound) {
		t.Fatalf("expected ErrNoTargetFound, got %v", err)
	}
	if caster.Mana() != 100 {
		t.Errorf("mana = %v, want full refund to 100", caster.Mana())
	}
	if cm.Catalog().Cooldown("blink_strike") != 0 {
		t.Errorf("cooldown = %v, want reset to 0", cm.Catalog().Cooldown("blink_strike"))
	}
	if len(notifier.messages) == 0 {
		t.Error("teleport miss should notify the player")
	}
}

func TestCast_TeleportStopsAtMeleeRange(t *testing.T) {
	cm, _, targeting, _, mover := testRig(true)
	caster := model.NewStatBlock(100, 100, 5, 10)
	targeting.pos = Vector3{X: 8}

	if _, err := cm.Cast("blink_strike", caster, mover); err != nil {
		t.Fatalf("Cast: %v", err)
	}
	melee := data.Combat().MeleeRange
	if d := mover.pos.DistanceTo(targeting.pos); math.Abs(d-melee) > 1e-9 {
		t.Errorf("caster ended %v from target, want %v", d, melee)
	}
}

func TestCast_TeleportAlreadyInMeleeDoesNotMove(t *testing.T) {
	cm, _, targeting, _, mover := testRig(true)
	caster := model.NewStatBlock(100, 100, 5, 10)
	targeting.pos = Vector3{X: 1}
	start := mover.pos

	if _, err := cm.Cast("blink_strike", caster, mover); err != nil {
		t.Fatalf("Cast: %v", err)
	}
	if mover.pos != start {
		t.Errorf("caster moved from %+v to %+v inside melee range", start, mover.pos)
	}
}

func TestCast_ConcurrentInstancesAllowed(t *testing.T) {
	cm, _, _, _, mover := testRig(true)
	caster := model.NewStatBlock(100, 1000, 5, 10)

	if _, err := cm.Cast("fireball", caster, mover); err != nil {
		t.Fatal(err)
	}
	// Clear only the cooldown; the first instance stays live.
	cm.Catalog().Tick(100)
	if _, err := cm.Cast("fireball", caster, mover); err != nil {
		t.Fatalf("second concurrent cast must be allowed: %v", err)
	}
	if got := cm.InstanceCount("fireball"); got != 2 {
		t.Errorf("live fireball instances = %d, want 2", got)
	}
}

func TestUpdate_ExpiryDisposesHandle(t *testing.T) {
	cm, renderer, _, _, mover := testRig(true)
	caster := model.NewStatBlock(100, 100, 5, 10)
	fireball, _ := data.GetSkillDef("fireball")

	if _, err := cm.Cast("fireball", caster, mover); err != nil {
		t.Fatal(err)
	}
	cm.Update(fireball.Duration + 0.01)

	if len(cm.Active()) != 0 {
		t.Error("expired instance still tracked")
	}
	if renderer.disposed != 1 {
		t.Errorf("disposed %d handles, want 1", renderer.disposed)
	}
	if len(renderer.live) != 0 {
		t.Error("orphaned visual effect left behind")
	}
}

func TestUpdate_CooldownFloorsAtZero(t *testing.T) {
	cm, _, _, _, mover := testRig(true)
	caster := model.NewStatBlock(100, 100, 5, 10)

	if _, err := cm.Cast("fireball", caster, mover); err != nil {
		t.Fatal(err)
	}
	cm.Update(1000)
	if got := cm.Catalog().Cooldown("fireball"); got != 0 {
		t.Errorf("cooldown = %v, want floored at 0", got)
	}
	if !cm.Catalog().Ready("fireball") {
		t.Error("skill should be ready again")
	}
}

func TestCast_RendererFailureIsNonFatal(t *testing.T) {
	cm, renderer, _, _, mover := testRig(true)
	renderer.failNext = true
	caster := model.NewStatBlock(100, 100, 5, 10)

	inst, err := cm.Cast("fireball", caster, mover)
	if err != nil {
		t.Fatalf("renderer failure must not fail the cast: %v", err)
	}
	if _, ok := inst.Handle(); ok {
		t.Error("instance should carry no handle after renderer failure")
	}

	// Expiry of a handle-less instance must not dispose anything.
	cm.Update(100)
	if renderer.disposed != 0 {
		t.Errorf("disposed %d handles, want 0", renderer.disposed)
	}
}

func TestCancelAll(t *testing.T) {
	cm, renderer, _, _, mover := testRig(true)
	caster := model.NewStatBlock(100, 1000, 5, 10)

	for _, id := range []string{"fireball", "frost_nova", "shockwave"} {
		if _, err := cm.Cast(id, caster, mover); err != nil {
			t.Fatalf("cast %s: %v", id, err)
		}
	}
	cm.CancelAll()

	if len(cm.Active()) != 0 {
		t.Error("instances left after CancelAll")
	}
	if len(renderer.live) != 0 {
		t.Error("live visual effects left after CancelAll")
	}
}

func TestWaveStrategy_ExpandsRadius(t *testing.T) {
	cm, _, _, _, mover := testRig(false)
	caster := model.NewStatBlock(100, 100, 5, 10)
	shockwave, _ := data.GetSkillDef("shockwave")

	inst, err := cm.Cast("shockwave", caster, mover)
	if err != nil {
		t.Fatal(err)
	}
	cm.Update(shockwave.Duration / 2)
	if inst.WaveRadius <= 0 || inst.WaveRadius >= shockwave.Radius {
		t.Errorf("wave radius = %v, want strictly between 0 and %v", inst.WaveRadius, shockwave.Radius)
	}
}

func TestProjectileStrategy_MovesOrigin(t *testing.T) {
	cm, _, _, _, mover := testRig(false)
	caster := model.NewStatBlock(100, 100, 5, 10)
	mover.facing = Vector3{X: 1}

	inst, err := cm.Cast("fireball", caster, mover)
	if err != nil {
		t.Fatal(err)
	}
	cm.Update(0.5)
	if inst.Origin.X <= 0 {
		t.Errorf("projectile did not advance: origin %+v", inst.Origin)
	}
}

func TestCast_BuffSkillAppliesBoost(t *testing.T) {
	cm, _, _, _, mover := testRig(false)
	caster := model.NewStatBlock(100, 100, 5, 10)

	cm.BindBoosts(buff.NewModifierSet(caster))

	base := caster.AttackPower()
	if _, err := cm.Cast("battle_cry", caster, mover); err != nil {
		t.Fatal(err)
	}
	cry, _ := data.GetSkillDef("battle_cry")
	want := base * (1 + cry.BuffAmount)
	if got := caster.AttackPower(); math.Abs(got-want) > 1e-9 {
		t.Errorf("attackPower = %v, want %v", got, want)
	}
}

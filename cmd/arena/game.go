package main

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/takkar/brimstone/internal/data"
	"github.com/takkar/brimstone/internal/engine"
	"github.com/takkar/brimstone/internal/game/skill"
	"github.com/takkar/brimstone/internal/model"
)

const (
	maxMessages      = 4
	enemySwingPeriod = 1.5 // seconds
	moveStep         = 1.0 // world units per keypress
)

// hotbar maps the number row to the skill catalog.
var hotbar = []string{
	"fireball", "frost_nova", "fan_of_knives", "battle_cry",
	"spirit_wolf", "shockwave", "hunters_mark", "blink_strike",
}

// colorFor maps a skill's opaque color token onto a terminal color.
var colorFor = map[string]tcell.Color{
	"ember":    tcell.ColorOrangeRed,
	"ice":      tcell.ColorLightBlue,
	"steel":    tcell.ColorSilver,
	"gold":     tcell.ColorGold,
	"spectral": tcell.ColorAqua,
	"dust":     tcell.ColorTan,
	"crimson":  tcell.ColorRed,
	"violet":   tcell.ColorPurple,
}

type foe struct {
	enemy *engine.Enemy
	swing float64
}

// Game is the playground state. It doubles as the combat core's rendering,
// targeting, notification, and movement collaborators: visual effects are
// screen cells, targets are the grid enemies.
type Game struct {
	screen  tcell.Screen
	session *engine.Session
	rng     *rand.Rand

	playerPos skill.Vector3
	foes      map[skill.TargetID]*foe
	nextFoeID skill.TargetID
	wave      int

	effects    map[skill.EffectHandle]*skill.Instance
	nextHandle skill.EffectHandle

	messages []string
	kills    int
}

func NewGame(screen tcell.Screen, rng *rand.Rand) *Game {
	g := &Game{
		screen:    screen,
		rng:       rng,
		playerPos: skill.Vector3{X: 20, Z: 10},
		foes:      make(map[skill.TargetID]*foe),
		effects:   make(map[skill.EffectHandle]*skill.Instance),
	}
	stats := model.NewStatBlock(150, 80, 5, 14)
	g.session = engine.NewSession(stats, (*playerMover)(g), g, g, g)
	g.spawnWave()
	return g
}

// --- skill.Renderer ---

func (g *Game) CreateVisualEffect(inst *skill.Instance, pos, dir skill.Vector3) (skill.EffectHandle, error) {
	g.nextHandle++
	g.effects[g.nextHandle] = inst
	return g.nextHandle, nil
}

func (g *Game) UpdateVisualEffect(h skill.EffectHandle, delta float64) {}

func (g *Game) DisposeVisualEffect(h skill.EffectHandle) {
	delete(g.effects, h)
}

// --- skill.Targeting ---

func (g *Game) FindNearestTarget(pos skill.Vector3, maxRange float64) (skill.TargetID, bool) {
	var bestID skill.TargetID
	best := maxRange
	found := false
	for id, f := range g.foes {
		if f.enemy.Stats.IsDead() {
			continue
		}
		if d := f.enemy.Pos.DistanceTo(pos); d <= best {
			best, bestID, found = d, id, true
		}
	}
	return bestID, found
}

func (g *Game) Position(id skill.TargetID) skill.Vector3 {
	if f, ok := g.foes[id]; ok {
		return f.enemy.Pos
	}
	return skill.Vector3{}
}

func (g *Game) IsDead(id skill.TargetID) bool {
	f, ok := g.foes[id]
	return !ok || f.enemy.Stats.IsDead()
}

// --- skill.Notifier ---

func (g *Game) Notify(message string) {
	g.messages = append(g.messages, message)
	if len(g.messages) > maxMessages {
		g.messages = g.messages[len(g.messages)-maxMessages:]
	}
}

// playerMover exposes the player's spatial state as skill.Mover.
type playerMover Game

func (m *playerMover) Position() skill.Vector3     { return m.playerPos }
func (m *playerMover) SetPosition(v skill.Vector3) { m.playerPos = v }

func (m *playerMover) Facing() skill.Vector3 {
	g := (*Game)(m)
	if id, ok := g.FindNearestTarget(g.playerPos, 100); ok {
		return g.Position(id).Sub(g.playerPos).Normalize()
	}
	return skill.Vector3{X: 1}
}

// Run drives the playground until the player quits.
func (g *Game) Run(tickRate int) {
	if tickRate <= 0 {
		tickRate = 30
	}
	step := time.Second / time.Duration(tickRate)
	ticker := time.NewTicker(step)
	defer ticker.Stop()

	eventCh := make(chan tcell.Event, 64)
	go func() {
		for {
			eventCh <- g.screen.PollEvent()
		}
	}()

	for {
		select {
		case ev := <-eventCh:
			if !g.handleInput(ev) {
				return
			}
		case <-ticker.C:
			g.tick(step.Seconds())
			g.draw()
		}
	}
}

func (g *Game) handleInput(ev tcell.Event) bool {
	key, ok := ev.(*tcell.EventKey)
	if !ok {
		return true
	}
	if key.Key() == tcell.KeyEscape || key.Key() == tcell.KeyCtrlC {
		return false
	}

	switch key.Key() {
	case tcell.KeyUp:
		g.move(0, -moveStep)
	case tcell.KeyDown:
		g.move(0, moveStep)
	case tcell.KeyLeft:
		g.move(-moveStep, 0)
	case tcell.KeyRight:
		g.move(moveStep, 0)
	case tcell.KeyRune:
		return g.handleRune(key.Rune())
	}
	return true
}

func (g *Game) handleRune(r rune) bool {
	switch r {
	case 'q':
		return false
	case 'h':
		g.move(-moveStep, 0)
	case 'l':
		g.move(moveStep, 0)
	case 'k':
		g.move(0, -moveStep)
	case 'j':
		g.move(0, moveStep)
	case ' ':
		g.punch()
	case 'e':
		g.spawnWave()
	case 'r':
		g.session.Resolver.Revive(g.session.Stats)
	case '1', '2', '3', '4', '5', '6', '7', '8':
		g.cast(hotbar[r-'1'])
	}
	return true
}

// move shifts the player by a step scaled to their current movement speed,
// so slows and freezes are visible on the grid.
func (g *Game) move(dx, dz float64) {
	if g.session.Stats.IsDead() {
		return
	}
	scale := g.session.Stats.MovementSpeed() / 5.0
	g.playerPos.X += dx * scale
	g.playerPos.Z += dz * scale
}

func (g *Game) punch() {
	dmg, ok := g.session.Punch()
	if !ok {
		return
	}
	if id, found := g.FindNearestTarget(g.playerPos, data.Combat().MeleeRange); found {
		g.hitFoe(id, dmg)
	}
}

func (g *Game) cast(skillID string) {
	inst, err := g.session.Cast(skillID)
	if err != nil {
		var ce *skill.CastError
		if errors.As(err, &ce) {
			g.Notify(ce.Error())
		} else {
			g.Notify(err.Error())
		}
		return
	}
	if inst.HasTarget {
		g.hitFoe(inst.Target, inst.Def.Damage)
	}
}

func (g *Game) hitFoe(id skill.TargetID, dmg float64) {
	f, ok := g.foes[id]
	if !ok {
		return
	}
	_, killed := g.session.Resolver.ResolveHit(g.session.Stats, f.enemy.Stats, nil, dmg)
	if !killed {
		return
	}
	g.kills++
	g.session.Resolver.AwardKill(g.session.Stats, f.enemy.Template)
	quality := data.TierForLevel(g.session.Stats.Level()).DropQualityMult
	if drop, ok := data.RollDrop(f.enemy.Template.DropTable, g.rng, quality); ok {
		if _, equipped := g.session.EquipItem(drop.ItemID); equipped {
			g.Notify(fmt.Sprintf("Equipped %s (%s)", drop.ItemID, drop.Rarity.String()))
		}
	}
	delete(g.foes, id)
}

func (g *Game) spawnWave() {
	roster := []string{"rotling", "bone_archer", "gravehound"}
	tier := data.TierForLevel(g.session.Stats.Level())
	for i := 0; i < 2+g.wave%3; i++ {
		id := roster[g.rng.IntN(len(roster))]
		pos := skill.Vector3{
			X: g.playerPos.X + float64(g.rng.IntN(20)-10),
			Z: g.playerPos.Z + float64(g.rng.IntN(10)-5),
		}
		e, err := engine.SpawnEnemy(id, tier, pos)
		if err != nil {
			continue
		}
		g.nextFoeID++
		g.foes[g.nextFoeID] = &foe{enemy: e}
	}
	g.wave++
	g.Notify(fmt.Sprintf("Wave %d incoming", g.wave))
}

func (g *Game) tick(delta float64) {
	g.session.Update(delta)

	for _, f := range g.foes {
		if f.enemy.Stats.IsDead() {
			continue
		}
		if f.swing > 0 {
			f.swing -= delta
		}
		if !f.enemy.InRangeOf(g.playerPos) {
			dir := g.playerPos.Sub(f.enemy.Pos).Normalize()
			f.enemy.Pos = f.enemy.Pos.Add(dir.Scale(f.enemy.Stats.MovementSpeed() * delta))
			continue
		}
		if f.swing <= 0 && !g.session.Stats.IsDead() {
			g.session.Resolver.TakeDamage(g.session.Stats, g.session.Equipment, f.enemy.Template.Damage)
			f.swing = enemySwingPeriod
		}
	}
}

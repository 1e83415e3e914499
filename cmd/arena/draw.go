package main

import (
	"fmt"
	"math"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/takkar/brimstone/internal/data"
	"github.com/takkar/brimstone/internal/game/skill"
)

const hudRows = 4

// cell maps world coordinates to a screen cell inside the arena viewport.
func (g *Game) cell(pos skill.Vector3) (x, y int) {
	return int(math.Round(pos.X)), int(math.Round(pos.Z)) + hudRows
}

func (g *Game) draw() {
	g.screen.Clear()
	w, h := g.screen.Size()

	g.drawHUD(w)
	g.drawEffects(w, h)

	for _, f := range g.foes {
		if f.enemy.Stats.IsDead() {
			continue
		}
		x, y := g.cell(f.enemy.Pos)
		if x < 0 || x >= w || y < hudRows || y >= h {
			continue
		}
		style := tcell.StyleDefault.Foreground(tcell.ColorGreen)
		if f.enemy.Template.Boss {
			style = tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)
		}
		g.screen.SetContent(x, y, rune(f.enemy.Template.Name[0]), nil, style)
	}

	px, py := g.cell(g.playerPos)
	playerStyle := tcell.StyleDefault.Foreground(tcell.ColorWhite).Bold(true)
	if g.session.Stats.IsDead() {
		playerStyle = tcell.StyleDefault.Foreground(tcell.ColorGray)
	}
	if px >= 0 && px < w && py >= hudRows && py < h {
		g.screen.SetContent(px, py, '@', nil, playerStyle)
	}

	g.screen.Show()
}

// drawEffects renders live cast instances: projectiles as travelling dots,
// waves as expanding rings, zones as filled discs.
func (g *Game) drawEffects(w, h int) {
	for _, inst := range g.effects {
		style := tcell.StyleDefault.Foreground(effectColor(inst.Def.Color))
		switch inst.Def.Type {
		case data.SkillWave:
			g.drawRing(inst.Origin, inst.WaveRadius, '~', style, w, h)
		case data.SkillAoe:
			g.drawRing(inst.Origin, inst.Def.Radius, '·', style, w, h)
		default:
			x, y := g.cell(inst.Origin)
			if x >= 0 && x < w && y >= hudRows && y < h {
				g.screen.SetContent(x, y, '*', nil, style)
			}
		}
	}
}

func (g *Game) drawRing(center skill.Vector3, radius float64, r rune, style tcell.Style, w, h int) {
	if radius <= 0 {
		return
	}
	steps := int(radius * 8)
	for i := 0; i < steps; i++ {
		a := 2 * math.Pi * float64(i) / float64(steps)
		p := center.Add(skill.Vector3{X: radius * math.Cos(a), Z: radius * math.Sin(a)})
		x, y := g.cell(p)
		if x >= 0 && x < w && y >= hudRows && y < h {
			g.screen.SetContent(x, y, r, nil, style)
		}
	}
}

func (g *Game) drawHUD(w int) {
	stats := g.session.Stats
	line1 := fmt.Sprintf("Lv %d  XP %d/%d  Kills %d  Wave %d",
		stats.Level(), stats.Experience(), stats.ExperienceToNext(), g.kills, g.wave)
	line2 := fmt.Sprintf("HP %s  MP %s",
		bar(stats.Health(), stats.MaxHealth(), 20),
		bar(stats.Mana(), stats.MaxMana(), 20))

	status := ""
	for _, st := range g.session.Status.Snapshot() {
		status += fmt.Sprintf("[%s %.1fs] ", st.Kind, st.Remaining)
	}
	if stats.IsDead() {
		status += "DEAD (r to revive) "
	}

	g.print(0, 0, line1, tcell.StyleDefault, w)
	g.print(0, 1, line2, tcell.StyleDefault, w)
	g.print(0, 2, status, tcell.StyleDefault.Foreground(tcell.ColorYellow), w)

	msg := ""
	for _, m := range g.messages {
		msg += m + " | "
	}
	g.print(0, 3, runewidth.Truncate(msg, w, "…"), tcell.StyleDefault.Foreground(tcell.ColorAqua), w)
}

// print writes a string cell by cell, advancing by display width so
// double-width runes stay aligned.
func (g *Game) print(x, y int, s string, style tcell.Style, maxW int) {
	for _, r := range s {
		if x >= maxW {
			return
		}
		g.screen.SetContent(x, y, r, nil, style)
		x += runewidth.RuneWidth(r)
	}
}

func bar(cur, max float64, width int) string {
	if max <= 0 {
		return ""
	}
	filled := int(cur / max * float64(width))
	if filled < 0 {
		filled = 0
	}
	out := ""
	for i := 0; i < width; i++ {
		if i < filled {
			out += "█"
		} else {
			out += "░"
		}
	}
	return fmt.Sprintf("%s %.0f/%.0f", out, cur, max)
}

func effectColor(token string) tcell.Color {
	if c, ok := colorFor[token]; ok {
		return c
	}
	return tcell.ColorWhite
}

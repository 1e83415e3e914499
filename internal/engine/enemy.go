package engine

import (
	"fmt"

	"github.com/takkar/brimstone/internal/data"
	"github.com/takkar/brimstone/internal/game/skill"
	"github.com/takkar/brimstone/internal/model"
)

// Enemy is a spawned opponent: its template, a live stat block scaled to
// the world tier, and a position for the targeting collaborator.
type Enemy struct {
	Template data.EnemyTemplate
	Stats    *model.StatBlock
	Pos      skill.Vector3
}

// SpawnEnemy builds an enemy from its template, scaled by tier.
func SpawnEnemy(id string, tier data.DifficultyTier, pos skill.Vector3) (*Enemy, error) {
	tmpl, ok := data.ScaledEnemy(id, tier)
	if !ok {
		return nil, fmt.Errorf("unknown enemy template %q", id)
	}
	stats := model.NewStatBlock(tmpl.Health, 0, tmpl.MovementSpeed, tmpl.Damage)
	return &Enemy{Template: tmpl, Stats: stats, Pos: pos}, nil
}

// InRangeOf reports whether the enemy can reach a position with its attack.
func (e *Enemy) InRangeOf(pos skill.Vector3) bool {
	return e.Pos.DistanceTo(pos) <= e.Template.AttackRange
}

package data

import "math"

// EnemyTemplate is the immutable spawn template for one enemy kind.
// One instance per enemy id, shared — do not mutate after Load.
type EnemyTemplate struct {
	ID            string  `yaml:"id"`
	Name          string  `yaml:"name"`
	Level         int     `yaml:"level"`
	Health        float64 `yaml:"health"`
	Damage        float64 `yaml:"damage"`
	Experience    int     `yaml:"experience"`
	MovementSpeed float64 `yaml:"movement_speed"`
	AttackRange   float64 `yaml:"attack_range"`
	Boss          bool    `yaml:"boss"`
	DropTable     string  `yaml:"drop_table"`
}

// enemyTable maps enemy id → template. Set by Load.
var enemyTable = defaultEnemies()

func defaultEnemies() map[string]EnemyTemplate {
	list := []EnemyTemplate{
		{ID: "rotling", Name: "Rotling", Level: 1, Health: 40, Damage: 5, Experience: 12, MovementSpeed: 3.5, AttackRange: 1.2, DropTable: "trash"},
		{ID: "bone_archer", Name: "Bone Archer", Level: 3, Health: 55, Damage: 8, Experience: 20, MovementSpeed: 3.0, AttackRange: 7.0, DropTable: "trash"},
		{ID: "gravehound", Name: "Gravehound", Level: 5, Health: 80, Damage: 11, Experience: 32, MovementSpeed: 5.5, AttackRange: 1.4, DropTable: "beast"},
		{ID: "cinder_shade", Name: "Cinder Shade", Level: 9, Health: 130, Damage: 16, Experience: 55, MovementSpeed: 4.0, AttackRange: 5.0, DropTable: "elemental"},
		{ID: "pit_warden", Name: "Pit Warden", Level: 14, Health: 320, Damage: 24, Experience: 140, MovementSpeed: 2.8, AttackRange: 2.0, DropTable: "elite"},
		{ID: "marrow_tyrant", Name: "Marrow Tyrant", Level: 20, Health: 1400, Damage: 42, Experience: 900, MovementSpeed: 3.2, AttackRange: 2.5, Boss: true, DropTable: "boss"},
		{ID: "ember_colossus", Name: "Ember Colossus", Level: 32, Health: 3600, Damage: 70, Experience: 2600, MovementSpeed: 2.4, AttackRange: 3.0, Boss: true, DropTable: "boss"},
	}
	table := make(map[string]EnemyTemplate, len(list))
	for _, e := range list {
		table[e.ID] = e
	}
	return table
}

// GetEnemyTemplate returns the template for id, or false if unknown.
func GetEnemyTemplate(id string) (EnemyTemplate, bool) {
	t, ok := enemyTable[id]
	return t, ok
}

// EnemyIDs returns all known enemy ids.
func EnemyIDs() []string {
	ids := make([]string, 0, len(enemyTable))
	for id := range enemyTable {
		ids = append(ids, id)
	}
	return ids
}

// ScaledEnemy returns a copy of the template with the tier's health and
// damage multipliers applied. Experience scaling is applied at award time,
// not here, so the reward always reflects the killer's current tier.
func ScaledEnemy(id string, tier DifficultyTier) (EnemyTemplate, bool) {
	t, ok := enemyTable[id]
	if !ok {
		return EnemyTemplate{}, false
	}
	t.Health = math.Floor(t.Health * tier.EnemyHealthMult)
	t.Damage = math.Floor(t.Damage * tier.EnemyDamageMult)
	return t, true
}

package data

// DifficultyTier is a coarse multiplier bundle applied uniformly to enemy
// stats and loot quality. Tiers are unlocked by player level.
type DifficultyTier struct {
	Name            string  `yaml:"name"`
	MinLevel        int     `yaml:"min_level"`
	EnemyHealthMult float64 `yaml:"enemy_health_mult"`
	EnemyDamageMult float64 `yaml:"enemy_damage_mult"`
	ExperienceMult  float64 `yaml:"experience_mult"`
	DropQualityMult float64 `yaml:"drop_quality_mult"`
}

// tierTable is ordered by MinLevel ascending. Set by Load.
var tierTable = defaultTiers()

func defaultTiers() []DifficultyTier {
	return []DifficultyTier{
		{Name: "Adventurer", MinLevel: 1, EnemyHealthMult: 1.0, EnemyDamageMult: 1.0, ExperienceMult: 1.0, DropQualityMult: 1.0},
		{Name: "Veteran", MinLevel: 10, EnemyHealthMult: 1.6, EnemyDamageMult: 1.35, ExperienceMult: 1.25, DropQualityMult: 1.2},
		{Name: "Nightmare", MinLevel: 20, EnemyHealthMult: 2.4, EnemyDamageMult: 1.8, ExperienceMult: 1.6, DropQualityMult: 1.5},
		{Name: "Inferno", MinLevel: 35, EnemyHealthMult: 3.8, EnemyDamageMult: 2.5, ExperienceMult: 2.1, DropQualityMult: 2.0},
	}
}

// TierForLevel returns the highest tier whose MinLevel the player meets.
// Levels below the first tier fall back to the first tier.
func TierForLevel(level int) DifficultyTier {
	tier := tierTable[0]
	for _, t := range tierTable {
		if level >= t.MinLevel {
			tier = t
		}
	}
	return tier
}

// Tiers returns a copy of the active tier table.
func Tiers() []DifficultyTier {
	out := make([]DifficultyTier, len(tierTable))
	copy(out, tierTable)
	return out
}

package data

import (
	"fmt"
	"log/slog"
	"os"

	"gopkg.in/yaml.v3"
)

// balanceFile is the YAML override shape. Every section is optional; absent
// sections keep the built-in defaults.
type balanceFile struct {
	Combat  *CombatTable     `yaml:"combat"`
	Tiers   []DifficultyTier `yaml:"tiers"`
	Enemies []EnemyTemplate  `yaml:"enemies"`
	Items   []ItemTemplate   `yaml:"items"`
	Skills  []SkillDef       `yaml:"skills"`
	Drops   []DropTable      `yaml:"drops"`
}

// Load installs the built-in balance tables, then merges overrides from the
// YAML file at path. A missing file is not an error: defaults apply.
// Call once at startup before any table accessor.
func Load(path string) error {
	combatTable = DefaultCombatTable()
	tierTable = defaultTiers()
	enemyTable = defaultEnemies()
	itemTable = defaultItems()
	skillTable = defaultSkills()
	dropTables = defaultDropTables()

	if path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			if !os.IsNotExist(err) {
				return fmt.Errorf("reading balance file %s: %w", path, err)
			}
		} else {
			var file balanceFile
			if err := yaml.Unmarshal(raw, &file); err != nil {
				return fmt.Errorf("parsing balance file %s: %w", path, err)
			}
			merge(&file)
		}
	}

	if err := validate(); err != nil {
		return fmt.Errorf("validating balance tables: %w", err)
	}

	slog.Info("loaded balance tables",
		"tiers", len(tierTable),
		"enemies", len(enemyTable),
		"items", len(itemTable),
		"skills", len(skillTable),
		"dropTables", len(dropTables))
	return nil
}

// merge applies file overrides. List sections replace-or-append by id.
func merge(file *balanceFile) {
	if file.Combat != nil {
		combatTable = *file.Combat
	}
	if len(file.Tiers) > 0 {
		tierTable = file.Tiers
	}
	for _, e := range file.Enemies {
		enemyTable[e.ID] = e
	}
	for _, it := range file.Items {
		itemTable[it.ID] = it
	}
	for _, s := range file.Skills {
		skillTable[s.ID] = s
	}
	for _, d := range file.Drops {
		dropTables[d.ID] = d
	}
}

func validate() error {
	if len(combatTable.ComboMultipliers) == 0 {
		return fmt.Errorf("combat: combo_multipliers must not be empty")
	}
	if combatTable.ExperienceMultiplier <= 1 {
		return fmt.Errorf("combat: experience_multiplier must be > 1, got %v", combatTable.ExperienceMultiplier)
	}
	if combatTable.BaseExperienceToNext <= 0 {
		return fmt.Errorf("combat: base_experience_to_next must be > 0")
	}
	if combatTable.ReviveFraction <= 0 || combatTable.ReviveFraction > 1 {
		return fmt.Errorf("combat: revive_fraction must be in (0,1], got %v", combatTable.ReviveFraction)
	}
	if combatTable.MaxDamageReduction < 0 || combatTable.MaxDamageReduction >= 1 {
		return fmt.Errorf("combat: max_damage_reduction must be in [0,1), got %v", combatTable.MaxDamageReduction)
	}
	if len(tierTable) == 0 {
		return fmt.Errorf("tiers: at least one difficulty tier required")
	}
	for i := 1; i < len(tierTable); i++ {
		if tierTable[i].MinLevel <= tierTable[i-1].MinLevel {
			return fmt.Errorf("tiers: min_level must be strictly increasing (%s)", tierTable[i].Name)
		}
	}
	for id, s := range skillTable {
		if s.ManaCost < 0 || s.Cooldown < 0 || s.Duration <= 0 {
			return fmt.Errorf("skill %s: mana_cost/cooldown must be >= 0 and duration > 0", id)
		}
	}
	for id, e := range enemyTable {
		if e.Health <= 0 {
			return fmt.Errorf("enemy %s: health must be > 0", id)
		}
		if e.DropTable != "" {
			if _, ok := dropTables[e.DropTable]; !ok {
				return fmt.Errorf("enemy %s: unknown drop table %q", id, e.DropTable)
			}
		}
	}
	for id, t := range dropTables {
		for _, entry := range t.Entries {
			if entry.Weight <= 0 {
				return fmt.Errorf("drop table %s: entry weight must be > 0", id)
			}
			for _, item := range entry.Items {
				if _, ok := itemTable[item]; !ok {
					return fmt.Errorf("drop table %s: unknown item %q", id, item)
				}
			}
		}
	}
	return nil
}

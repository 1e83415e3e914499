package data

// LevelUpDeltas are the flat stat increases applied on every level-up.
type LevelUpDeltas struct {
	Strength     int     `yaml:"strength"`
	Dexterity    int     `yaml:"dexterity"`
	Intelligence int     `yaml:"intelligence"`
	MaxHealth    float64 `yaml:"max_health"`
	MaxMana      float64 `yaml:"max_mana"`
	AttackPower  float64 `yaml:"attack_power"`
}

// CombatTable holds the core combat and progression constants.
// Loaded once at startup; shared across all characters — do not mutate
// after Load.
type CombatTable struct {
	// Melee combo
	ComboMultipliers []float64 `yaml:"combo_multipliers"` // damage multiplier per combo step
	ComboWindow      float64   `yaml:"combo_window"`      // seconds to land the next punch
	PunchCooldown    float64   `yaml:"punch_cooldown"`    // seconds between punches
	BasePunchDamage  float64   `yaml:"base_punch_damage"`

	// Progression
	ExperienceMultiplier float64       `yaml:"experience_multiplier"` // growth of the next-level threshold
	BaseExperienceToNext int           `yaml:"base_experience_to_next"`
	LevelUp              LevelUpDeltas `yaml:"level_up"`

	// Resources
	HealthRegenRate float64 `yaml:"health_regen_rate"` // per second
	ManaRegenRate   float64 `yaml:"mana_regen_rate"`   // per second
	ReviveFraction  float64 `yaml:"revive_fraction"`   // health/mana fraction restored on revive

	// Defense
	MaxDamageReduction float64 `yaml:"max_damage_reduction"` // cap on stacked armor reduction

	// Spatial
	MeleeRange         float64 `yaml:"melee_range"`          // minimum distance a teleport may close to
	DefaultSweepRadius float64 `yaml:"default_sweep_radius"` // target search radius for untargeted skills
}

// DefaultCombatTable returns the built-in combat balance values.
func DefaultCombatTable() CombatTable {
	return CombatTable{
		ComboMultipliers:     []float64{1.0, 1.1, 1.3},
		ComboWindow:          1.2,
		PunchCooldown:        0.35,
		BasePunchDamage:      12,
		ExperienceMultiplier: 1.35,
		BaseExperienceToNext: 100,
		LevelUp: LevelUpDeltas{
			Strength:     2,
			Dexterity:    1,
			Intelligence: 1,
			MaxHealth:    15,
			MaxMana:      10,
			AttackPower:  3,
		},
		HealthRegenRate:    1.5,
		ManaRegenRate:      4.0,
		ReviveFraction:     0.75,
		MaxDamageReduction: 0.8,
		MeleeRange:         1.5,
		DefaultSweepRadius: 6.0,
	}
}

// combatTable is the active balance table, set by Load (or LoadDefaults).
var combatTable = DefaultCombatTable()

// Combat returns the active combat balance table.
func Combat() CombatTable {
	return combatTable
}

package data

// SkillType tags how a skill resolves and which visual strategy renders it.
type SkillType string

const (
	SkillRanged   SkillType = "ranged"   // single projectile toward a target
	SkillAoe      SkillType = "aoe"      // damage zone centered on the caster
	SkillMulti    SkillType = "multi"    // fan of projectiles
	SkillBuff     SkillType = "buff"     // temporary stat boost on the caster
	SkillSummon   SkillType = "summon"   // companion entity
	SkillWave     SkillType = "wave"     // expanding ring from the caster
	SkillMark     SkillType = "mark"     // delayed strike on a marked point
	SkillTeleport SkillType = "teleport" // reposition to the target, then strike
)

// SkillDef is the immutable catalog definition of one skill.
// Shared across all casts — do not mutate after Load.
type SkillDef struct {
	ID       string    `yaml:"id"`
	Name     string    `yaml:"name"`
	Type     SkillType `yaml:"type"`
	Damage   float64   `yaml:"damage"`
	ManaCost float64   `yaml:"mana_cost"`
	Cooldown float64   `yaml:"cooldown"` // seconds, shared across all casts
	Range    float64   `yaml:"range"`
	Radius   float64   `yaml:"radius"`
	Duration float64   `yaml:"duration"` // lifetime of one cast instance
	Color    string    `yaml:"color"`    // visual color token, opaque to the core

	// Buff skills only: boosted stat, percentage amount.
	BuffStat   string  `yaml:"buff_stat"`
	BuffAmount float64 `yaml:"buff_amount"`
}

// skillTable maps skill id → definition. Set by Load.
var skillTable = defaultSkills()

func defaultSkills() map[string]SkillDef {
	list := []SkillDef{
		{ID: "fireball", Name: "Fireball", Type: SkillRanged, Damage: 35, ManaCost: 20, Cooldown: 1.5, Range: 12, Radius: 0.8, Duration: 1.2, Color: "ember"},
		{ID: "frost_nova", Name: "Frost Nova", Type: SkillAoe, Damage: 25, ManaCost: 30, Cooldown: 5, Range: 0, Radius: 4.5, Duration: 0.9, Color: "ice"},
		{ID: "fan_of_knives", Name: "Fan of Knives", Type: SkillMulti, Damage: 14, ManaCost: 25, Cooldown: 3, Range: 9, Radius: 0.5, Duration: 0.8, Color: "steel"},
		{ID: "battle_cry", Name: "Battle Cry", Type: SkillBuff, Damage: 0, ManaCost: 35, Cooldown: 12, Range: 0, Radius: 0, Duration: 6, Color: "gold", BuffStat: "attackPower", BuffAmount: 0.4},
		{ID: "spirit_wolf", Name: "Spirit Wolf", Type: SkillSummon, Damage: 10, ManaCost: 50, Cooldown: 18, Range: 3, Radius: 0.6, Duration: 15, Color: "spectral"},
		{ID: "shockwave", Name: "Shockwave", Type: SkillWave, Damage: 30, ManaCost: 28, Cooldown: 6, Range: 0, Radius: 7, Duration: 1.1, Color: "dust"},
		{ID: "hunters_mark", Name: "Hunter's Mark", Type: SkillMark, Damage: 55, ManaCost: 22, Cooldown: 8, Range: 14, Radius: 1.2, Duration: 2.5, Color: "crimson"},
		{ID: "blink_strike", Name: "Blink Strike", Type: SkillTeleport, Damage: 45, ManaCost: 30, Cooldown: 7, Range: 10, Radius: 1.0, Duration: 0.5, Color: "violet"},
	}
	table := make(map[string]SkillDef, len(list))
	for _, s := range list {
		table[s.ID] = s
	}
	return table
}

// GetSkillDef returns the definition for id, or false if unknown.
func GetSkillDef(id string) (SkillDef, bool) {
	def, ok := skillTable[id]
	return def, ok
}

// SkillIDs returns all known skill ids.
func SkillIDs() []string {
	ids := make([]string, 0, len(skillTable))
	for id := range skillTable {
		ids = append(ids, id)
	}
	return ids
}

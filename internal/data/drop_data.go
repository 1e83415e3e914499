package data

import "math/rand/v2"

// Rarity grades loot quality.
type Rarity int8

const (
	RarityCommon Rarity = iota
	RarityUncommon
	RarityRare
	RarityEpic
	RarityLegendary
)

// String returns the display name of the rarity.
func (r Rarity) String() string {
	switch r {
	case RarityCommon:
		return "common"
	case RarityUncommon:
		return "uncommon"
	case RarityRare:
		return "rare"
	case RarityEpic:
		return "epic"
	case RarityLegendary:
		return "legendary"
	default:
		return "unknown"
	}
}

// DropEntry is one weighted rarity bucket inside a drop table.
type DropEntry struct {
	Rarity Rarity   `yaml:"rarity"`
	Weight int      `yaml:"weight"`
	Items  []string `yaml:"items"`
}

// DropTable is a weighted loot list keyed by table id.
// NothingWeight is the weight of the empty outcome.
type DropTable struct {
	ID            string      `yaml:"id"`
	NothingWeight int         `yaml:"nothing_weight"`
	Entries       []DropEntry `yaml:"entries"`
}

// DropResult is a rolled drop.
type DropResult struct {
	ItemID string
	Rarity Rarity
}

// dropTables maps table id → table. Set by Load.
var dropTables = defaultDropTables()

func defaultDropTables() map[string]DropTable {
	list := []DropTable{
		{
			ID:            "trash",
			NothingWeight: 60,
			Entries: []DropEntry{
				{Rarity: RarityCommon, Weight: 35, Items: []string{"rusty_blade", "cloth_hood", "worn_boots"}},
				{Rarity: RarityUncommon, Weight: 5, Items: []string{"iron_blade", "leather_gloves"}},
			},
		},
		{
			ID:            "beast",
			NothingWeight: 45,
			Entries: []DropEntry{
				{Rarity: RarityCommon, Weight: 40, Items: []string{"worn_boots", "leather_gloves"}},
				{Rarity: RarityUncommon, Weight: 12, Items: []string{"fang_amulet", "hide_chestplate"}},
				{Rarity: RarityRare, Weight: 3, Items: []string{"hunters_ring"}},
			},
		},
		{
			ID:            "elemental",
			NothingWeight: 40,
			Entries: []DropEntry{
				{Rarity: RarityUncommon, Weight: 40, Items: []string{"ember_ring", "iron_blade"}},
				{Rarity: RarityRare, Weight: 16, Items: []string{"cinder_amulet", "ashen_greaves"}},
				{Rarity: RarityEpic, Weight: 4, Items: []string{"flamebrand"}},
			},
		},
		{
			ID:            "elite",
			NothingWeight: 20,
			Entries: []DropEntry{
				{Rarity: RarityUncommon, Weight: 35, Items: []string{"hide_chestplate", "ashen_greaves"}},
				{Rarity: RarityRare, Weight: 30, Items: []string{"warden_helm", "hunters_ring"}},
				{Rarity: RarityEpic, Weight: 12, Items: []string{"flamebrand", "bulwark_chestplate"}},
				{Rarity: RarityLegendary, Weight: 3, Items: []string{"tyrants_maw"}},
			},
		},
		{
			ID:            "boss",
			NothingWeight: 0,
			Entries: []DropEntry{
				{Rarity: RarityRare, Weight: 40, Items: []string{"warden_helm", "bulwark_chestplate"}},
				{Rarity: RarityEpic, Weight: 40, Items: []string{"flamebrand", "colossus_band"}},
				{Rarity: RarityLegendary, Weight: 20, Items: []string{"tyrants_maw", "heart_of_embers"}},
			},
		},
	}
	tables := make(map[string]DropTable, len(list))
	for _, t := range list {
		tables[t.ID] = t
	}
	return tables
}

// GetDropTable returns the drop table for id, or false if unknown.
func GetDropTable(id string) (DropTable, bool) {
	t, ok := dropTables[id]
	return t, ok
}

// RollDrop draws one weighted entry from a drop table. qualityMult scales
// the weight of every non-empty bucket (higher world tiers roll empty less
// often and rare buckets more often). Returns ok=false on the empty outcome
// or an unknown table.
func RollDrop(tableID string, rng *rand.Rand, qualityMult float64) (DropResult, bool) {
	table, ok := dropTables[tableID]
	if !ok {
		return DropResult{}, false
	}
	if qualityMult <= 0 {
		qualityMult = 1
	}

	total := float64(table.NothingWeight)
	for _, e := range table.Entries {
		total += float64(e.Weight) * qualityMult
	}
	if total <= 0 {
		return DropResult{}, false
	}

	roll := rng.Float64() * total
	roll -= float64(table.NothingWeight)
	if roll < 0 {
		return DropResult{}, false
	}
	for _, e := range table.Entries {
		roll -= float64(e.Weight) * qualityMult
		if roll < 0 {
			if len(e.Items) == 0 {
				return DropResult{}, false
			}
			return DropResult{
				ItemID: e.Items[rng.IntN(len(e.Items))],
				Rarity: e.Rarity,
			}, true
		}
	}
	return DropResult{}, false
}
